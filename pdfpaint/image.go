package pdfpaint

import (
	"image"

	"golang.org/x/image/draw"
)

// MaxEmbeddedImageDim caps the longer side of a raster image written into
// the PDF; assets larger than this are downsampled first, since nothing
// in this module's page sizes ever needs more resolution than that.
const MaxEmbeddedImageDim = 1600

// ResampleToFit scales img down so neither dimension exceeds
// MaxEmbeddedImageDim, preserving aspect ratio. Images already within
// bounds are returned unchanged.
func ResampleToFit(img image.Image) image.Image {
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	if w <= MaxEmbeddedImageDim && h <= MaxEmbeddedImageDim {
		return img
	}

	scale := float64(MaxEmbeddedImageDim) / float64(w)
	if hs := float64(MaxEmbeddedImageDim) / float64(h); hs < scale {
		scale = hs
	}
	dw := int(float64(w) * scale)
	dh := int(float64(h) * scale)
	if dw < 1 {
		dw = 1
	}
	if dh < 1 {
		dh = 1
	}

	dst := image.NewRGBA(image.Rect(0, 0, dw, dh))
	draw.CatmullRom.Scale(dst, dst.Bounds(), img, b, draw.Over, nil)
	return dst
}
