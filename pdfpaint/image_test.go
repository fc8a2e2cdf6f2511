package pdfpaint

import (
	"image"
	"testing"
)

func TestResampleToFitLeavesSmallImagesAlone(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 100, 50))
	out := ResampleToFit(img)
	if out != image.Image(img) {
		t.Error("ResampleToFit should return the original image unchanged when within bounds")
	}
}

func TestResampleToFitScalesDownOversizedImages(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 3200, 1600))
	out := ResampleToFit(img)
	b := out.Bounds()
	if b.Dx() > MaxEmbeddedImageDim || b.Dy() > MaxEmbeddedImageDim {
		t.Errorf("ResampleToFit did not cap dimensions: got %dx%d", b.Dx(), b.Dy())
	}
	wantRatio := 3200.0 / 1600.0
	gotRatio := float64(b.Dx()) / float64(b.Dy())
	if diff := wantRatio - gotRatio; diff > 0.05 || diff < -0.05 {
		t.Errorf("ResampleToFit changed aspect ratio: got %v, want ~%v", gotRatio, wantRatio)
	}
}
