package pdfexport

import (
	"github.com/neronapier/jpoffice/pdfobj"
	"github.com/neronapier/jpoffice/pdfwriter"
)

// writePagesTree fills the pre-allocated pagesRef with the flat /Pages
// tree node referencing every page in order. Each page dict must already
// carry "Parent": pagesRef (set by the caller before Put, since Put
// rejects writing the same reference twice). A flat Kids array is enough
// at this module's page-count scale; spec.md does not call for balanced
// page-tree nodes.
func writePagesTree(w *pdfwriter.Writer, pagesRef pdfobj.Reference, pageRefs []pdfobj.Reference) error {
	kids := make(pdfobj.Array, len(pageRefs))
	for i, ref := range pageRefs {
		kids[i] = ref
	}
	dict := pdfobj.Dict{
		"Type":  pdfobj.Name("Pages"),
		"Kids":  kids,
		"Count": pdfobj.Integer(len(pageRefs)),
	}
	return w.Put(pagesRef, dict)
}
