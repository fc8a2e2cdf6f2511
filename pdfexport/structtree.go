package pdfexport

import (
	"github.com/neronapier/jpoffice/pdfobj"
	"github.com/neronapier/jpoffice/pdfwriter"
)

// buildStructTree emits a minimal tagged-PDF structure tree (spec.md
// §4.M item 8): one struct element per top-level block tagged during
// painting, grouped under a per-page "Part" element, all under a single
// "Document" root. It returns the StructTreeRoot reference.
//
// Each struct element's /K is the block's MCID (matching the marked
// content sequence paintPage wrote into that page's content stream) and
// /Pg is the owning page, which is what a reader needs to resolve struct
// elements back to content without a /ParentTree; building the
// /ParentTree number tree as well is left for a fuller accessibility
// pass, since nothing in this module's own rendering needs it to resolve
// correctly.
func buildStructTree(w *pdfwriter.Writer, pageRefs []pdfobj.Reference, pageTags [][]pdfobj.Name) (pdfobj.Reference, error) {
	rootRef := w.Alloc()
	docRef := w.Alloc()

	var partRefs pdfobj.Array
	for i, tags := range pageTags {
		if len(tags) == 0 {
			continue
		}
		partRef, err := writeStructPart(w, docRef, pageRefs[i], tags)
		if err != nil {
			return pdfobj.Reference(0), err
		}
		partRefs = append(partRefs, partRef)
	}

	document := pdfobj.Dict{
		"Type": pdfobj.Name("StructElem"),
		"S":    pdfobj.Name("Document"),
		"P":    rootRef,
		"K":    partRefs,
	}
	if err := w.Put(docRef, document); err != nil {
		return pdfobj.Reference(0), err
	}

	root := pdfobj.Dict{
		"Type": pdfobj.Name("StructTreeRoot"),
		"K":    docRef,
	}
	if err := w.Put(rootRef, root); err != nil {
		return pdfobj.Reference(0), err
	}
	return rootRef, nil
}

func writeStructPart(w *pdfwriter.Writer, parentRef, pageRef pdfobj.Reference, tags []pdfobj.Name) (pdfobj.Reference, error) {
	partRef := w.Alloc()

	kids := make(pdfobj.Array, len(tags))
	for mcid, tag := range tags {
		elemRef := w.PutNew(pdfobj.Dict{
			"Type": pdfobj.Name("StructElem"),
			"S":    tag,
			"P":    partRef,
			"Pg":   pageRef,
			"K":    pdfobj.Integer(mcid),
		})
		kids[mcid] = elemRef
	}

	part := pdfobj.Dict{
		"Type": pdfobj.Name("StructElem"),
		"S":    pdfobj.Name("Part"),
		"P":    parentRef,
		"Pg":   pageRef,
		"K":    kids,
	}
	if err := w.Put(partRef, part); err != nil {
		return pdfobj.Reference(0), err
	}
	return partRef, nil
}
