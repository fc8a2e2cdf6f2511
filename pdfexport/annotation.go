package pdfexport

import (
	"github.com/neronapier/jpoffice/pdfobj"
	"github.com/neronapier/jpoffice/pdflayout"
	"github.com/neronapier/jpoffice/pdfpaint"
	"github.com/neronapier/jpoffice/pdfwriter"
)

// writeLinkAnnotations emits one /Annot /Subtype /Link per hyperlink
// fragment found in blocks (spec.md §6: "link annotations as /Annot
// /Subtype /Link with /A /Action /S /URI") and returns their references
// for the page's /Annots array.
func writeLinkAnnotations(w *pdfwriter.Writer, blocks []*pdflayout.Block, pageHeightPt float64) ([]pdfobj.Reference, error) {
	var refs []pdfobj.Reference
	for _, block := range blocks {
		if block.Kind != pdflayout.BlockParagraph {
			continue
		}
		for _, line := range block.Lines {
			for _, frag := range line.Fragments {
				if frag.Href == "" {
					continue
				}
				ref, err := writeLinkAnnotation(w, frag, pageHeightPt)
				if err != nil {
					return nil, err
				}
				refs = append(refs, ref)
			}
		}
	}
	return refs, nil
}

func writeLinkAnnotation(w *pdfwriter.Writer, frag *pdflayout.Fragment, pageHeightPt float64) (pdfobj.Reference, error) {
	x0 := pdfpaint.PxToPt(frag.Rect.X)
	x1 := x0 + pdfpaint.PxToPt(frag.Rect.W)
	y1 := pdfpaint.PageY(pageHeightPt, pdfpaint.PxToPt(frag.Rect.Y))
	y0 := pdfpaint.PageY(pageHeightPt, pdfpaint.PxToPt(frag.Rect.Y+frag.Rect.H))

	dict := pdfobj.Dict{
		"Type":    pdfobj.Name("Annot"),
		"Subtype": pdfobj.Name("Link"),
		"Rect":    pdfobj.Rectangle{LLx: x0, LLy: y0, URx: x1, URy: y1}.Round(2),
		"Border":  pdfobj.Array{pdfobj.Integer(0), pdfobj.Integer(0), pdfobj.Integer(0)},
		"A": pdfobj.Dict{
			"Type": pdfobj.Name("Action"),
			"S":    pdfobj.Name("URI"),
			"URI":  pdfobj.String(frag.Href),
		},
	}
	return w.PutNew(dict), nil
}
