package pdfexport

import (
	"github.com/neronapier/jpoffice/pdfobj"
	"github.com/neronapier/jpoffice/pdfwriter"
)

// bookmarkEntry is one outline entry built from a heading paragraph
// (spec.md §4.M item 7): a flat list, each entry only ever nested one
// level below the synthetic root. OutlineLevel is carried from the
// heading but writeOutlines does not read it: the root's /Count is the
// number of entries, whatever their levels.
type bookmarkEntry struct {
	Title        string
	PageRef      pdfobj.Reference
	OutlineLevel int
}

// writeOutlines emits the flat doubly-linked bookmark list described in
// spec.md §6 ("outlines as a flat doubly-linked list under /Outlines")
// and returns its root reference, or the zero Reference if entries is
// empty.
func writeOutlines(w *pdfwriter.Writer, entries []bookmarkEntry) (pdfobj.Reference, error) {
	if len(entries) == 0 {
		return pdfobj.Reference(0), nil
	}

	refs := make([]pdfobj.Reference, len(entries))
	for i := range entries {
		refs[i] = w.Alloc()
	}
	rootRef := w.Alloc()

	for i, e := range entries {
		dict := pdfobj.Dict{
			"Title":  pdfobj.TextString(e.Title),
			"Parent": rootRef,
			"Dest":   pdfobj.Array{e.PageRef, pdfobj.Name("Fit")},
		}
		if i > 0 {
			dict["Prev"] = refs[i-1]
		}
		if i < len(entries)-1 {
			dict["Next"] = refs[i+1]
		}
		if err := w.Put(refs[i], dict); err != nil {
			return pdfobj.Reference(0), err
		}
	}

	root := pdfobj.Dict{
		"Type":  pdfobj.Name("Outlines"),
		"First": refs[0],
		"Last":  refs[len(refs)-1],
		"Count": pdfobj.Integer(len(entries)),
	}
	if err := w.Put(rootRef, root); err != nil {
		return pdfobj.Reference(0), err
	}
	return rootRef, nil
}
