package pdfexport

import (
	"bytes"
	"image"
	_ "image/gif"
	"image/jpeg"
	_ "image/png"
	"sort"
	"strconv"

	"golang.org/x/exp/maps"
	"seehuhn.de/go/icc"

	"github.com/neronapier/jpoffice/doctree"
	"github.com/neronapier/jpoffice/pdfobj"
	"github.com/neronapier/jpoffice/pdfpaint"
	"github.com/neronapier/jpoffice/pdfwriter"
)

// imageRegistry tracks image XObject references already emitted, keyed
// by media src, so repeated references to the same asset are
// deduplicated (spec.md §4.M item 5 and SPEC_FULL.md supplemented
// feature 2: unreferenced registry entries are never opened at all).
type imageRegistry struct {
	w      *pdfwriter.Writer
	doc    *doctree.Document
	refs   map[string]pdfobj.Reference
	names  map[pdfobj.Reference]pdfobj.Name
	next   int
	useICC bool
	iccRef pdfobj.Reference
}

func newImageRegistry(w *pdfwriter.Writer, doc *doctree.Document, useICC bool) *imageRegistry {
	return &imageRegistry{
		w:      w,
		doc:    doc,
		refs:   make(map[string]pdfobj.Reference),
		names:  make(map[pdfobj.Reference]pdfobj.Name),
		useICC: useICC,
	}
}

// colorSpace returns the /ColorSpace entry every embedded image uses:
// the sRGB v4 ICC profile, embedded once and shared by reference, when
// Options.ICCColor is set, else plain DeviceRGB.
func (r *imageRegistry) colorSpace() pdfobj.Object {
	if !r.useICC {
		return pdfobj.Name("DeviceRGB")
	}
	if r.iccRef.IsZero() {
		dict := pdfobj.Dict{
			"N":         pdfobj.Integer(3),
			"Alternate": pdfobj.Name("DeviceRGB"),
		}
		r.iccRef = r.w.PutNew(&pdfobj.Stream{Dict: dict, Data: icc.SRGBv4Profile})
	}
	return pdfobj.Array{pdfobj.Name("ICCBased"), r.iccRef}
}

// resourceName returns the stable XObject resource name ("Im0", "Im1",
// ...) for ref, assigned in first-use order.
func (r *imageRegistry) resourceName(ref pdfobj.Reference) pdfobj.Name {
	if name, ok := r.names[ref]; ok {
		return name
	}
	name := pdfobj.Name("Im" + strconv.Itoa(r.next))
	r.next++
	r.names[ref] = name
	return name
}

// xobjectDict builds the /XObject resource subdictionary covering every
// image embedded so far, in deterministic resource-name order.
func (r *imageRegistry) xobjectDict() pdfobj.Dict {
	if len(r.names) == 0 {
		return nil
	}
	refs := maps.Keys(r.names)
	sort.Slice(refs, func(i, j int) bool { return r.names[refs[i]] < r.names[refs[j]] })
	dict := pdfobj.Dict{}
	for _, ref := range refs {
		dict[r.names[ref]] = ref
	}
	return dict
}

// Ref returns the XObject reference for src, decoding and writing it the
// first time it is requested. Missing or undecodable assets are skipped
// silently (spec.md §4.M "Failure semantics"), returning the zero
// Reference.
func (r *imageRegistry) Ref(src string) pdfobj.Reference {
	if ref, ok := r.refs[src]; ok {
		return ref
	}
	asset, ok := r.doc.Media(src)
	if !ok {
		return pdfobj.Reference(0)
	}
	ref, err := r.embed(asset)
	if err != nil {
		return pdfobj.Reference(0)
	}
	r.refs[src] = ref
	return ref
}

func (r *imageRegistry) embed(asset *doctree.MediaAsset) (pdfobj.Reference, error) {
	switch asset.MIME {
	case "image/jpeg":
		return r.embedJPEG(asset.Data)
	default:
		return r.embedDecoded(asset.Data)
	}
}

// embedJPEG writes a JPEG asset directly as a DCTDecode stream without
// re-encoding, the cheapest path spec.md §4.M names explicitly.
func (r *imageRegistry) embedJPEG(data []byte) (pdfobj.Reference, error) {
	cfg, err := jpeg.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return pdfobj.Reference(0), err
	}
	dict := pdfobj.Dict{
		"Type":             pdfobj.Name("XObject"),
		"Subtype":          pdfobj.Name("Image"),
		"Width":            pdfobj.Integer(cfg.Width),
		"Height":           pdfobj.Integer(cfg.Height),
		"ColorSpace":       r.colorSpace(),
		"BitsPerComponent": pdfobj.Integer(8),
		"Filter":           pdfobj.Name("DCTDecode"),
	}
	ref := r.w.Alloc()
	if err := r.w.Put(ref, &pdfobj.Stream{Dict: dict, Data: data}); err != nil {
		return pdfobj.Reference(0), err
	}
	return ref, nil
}

// embedDecoded decodes any other supported raster format (PNG, GIF, ...)
// to raw RGB8 samples and writes them as a FlateDecode image stream, per
// spec.md §4.M ("PNG -> FlateDecode, DeviceRGB, 8 bpc").
func (r *imageRegistry) embedDecoded(data []byte) (pdfobj.Reference, error) {
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return pdfobj.Reference(0), err
	}
	img = pdfpaint.ResampleToFit(img)
	bounds := img.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	raw := make([]byte, 0, w*h*3)
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			c := img.At(x, y)
			rr, gg, bb, _ := c.RGBA()
			raw = append(raw, byte(rr>>8), byte(gg>>8), byte(bb>>8))
		}
	}

	dict := pdfobj.Dict{
		"Type":             pdfobj.Name("XObject"),
		"Subtype":          pdfobj.Name("Image"),
		"Width":            pdfobj.Integer(w),
		"Height":           pdfobj.Integer(h),
		"ColorSpace":       r.colorSpace(),
		"BitsPerComponent": pdfobj.Integer(8),
	}
	ref := r.w.Alloc()
	if err := r.w.OpenStream(ref, dict, raw); err != nil {
		return pdfobj.Reference(0), err
	}
	return ref, nil
}
