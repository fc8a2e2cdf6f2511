// jpoffice - a word-processor engine and PDF export pipeline

// Package pdfwriter implements the PDF Writer component of the export
// pipeline: a vector of indirect objects with auto-assigned ids, a
// reserve/fill protocol for forward references, and the final assembly of
// the xref table and trailer into a complete PDF 1.4 file.
//
// The writer never reads a PDF file back; it only accumulates objects in
// memory and serializes them once, in Generate.
package pdfwriter

import (
	"bytes"
	"fmt"
	"sort"

	"github.com/neronapier/jpoffice/pdfobj"
)

// Writer accumulates the indirect objects of a PDF document and emits them
// as a complete file. The zero value is not usable; use New.
type Writer struct {
	objects  map[pdfobj.Reference]pdfobj.Object
	reserved map[pdfobj.Reference]bool
	lastNum  uint32
}

// New creates an empty Writer.
func New() *Writer {
	return &Writer{
		objects:  make(map[pdfobj.Reference]pdfobj.Object),
		reserved: make(map[pdfobj.Reference]bool),
	}
}

// Alloc reserves a new object number for an indirect object and returns a
// reference to it. The object itself is filled in later via Put or
// OpenStream; if any reserved reference is never filled, Generate fails
// with InvalidObjectReferenceError.
func (w *Writer) Alloc() pdfobj.Reference {
	w.lastNum++
	ref := pdfobj.NewReference(w.lastNum, 0)
	w.reserved[ref] = true
	return ref
}

// Put stores obj under ref, which must have been returned by Alloc and
// must not already have been filled.
func (w *Writer) Put(ref pdfobj.Reference, obj pdfobj.Object) error {
	if !w.reserved[ref] {
		return pdfobj.ErrUnreservedRef
	}
	if _, exists := w.objects[ref]; exists {
		return pdfobj.ErrDuplicateRef
	}
	w.objects[ref] = obj
	return nil
}

// PutNew allocates a fresh reference, stores obj under it, and returns the
// reference. This is the common case where the caller does not need to
// reserve the reference ahead of time for a forward reference elsewhere.
func (w *Writer) PutNew(obj pdfobj.Object) pdfobj.Reference {
	ref := w.Alloc()
	w.objects[ref] = obj
	return ref
}

// OpenStream reserves ref (if not already reserved) for a stream object,
// compresses data when it is larger than pdfobj.CompressThreshold and the
// dict does not already set /Filter explicitly, and stores the resulting
// *pdfobj.Stream.
func (w *Writer) OpenStream(ref pdfobj.Reference, dict pdfobj.Dict, data []byte) error {
	if dict == nil {
		dict = pdfobj.Dict{}
	} else {
		dict = dict.Clone()
	}
	if _, hasFilter := dict["Filter"]; !hasFilter {
		if compressed, name := pdfobj.MaybeCompress(data); name != "" {
			data = compressed
			dict["Filter"] = name
		}
	}
	w.reserved[ref] = true
	return w.Put(ref, &pdfobj.Stream{Dict: dict, Data: data})
}

// InvalidObjectReferenceError is returned by Generate when a reference
// that was reserved via Alloc was never filled in via Put or OpenStream,
// whether or not any object in the file refers to it.
type InvalidObjectReferenceError struct {
	Ref pdfobj.Reference
}

func (e *InvalidObjectReferenceError) Error() string {
	return fmt.Sprintf("pdfwriter: reserved reference %s was never filled", e.Ref)
}

// Generate serializes every stored object plus a trailer pointing at
// rootRef (the document Catalog) and infoRef (the Info dictionary, or the
// zero Reference to omit it) into a complete PDF 1.4 file:
//
//	%PDF-1.4 header, binary comment, objects in ascending reference order,
//	xref table (10-digit offsets, 5-digit all-zero generation), trailer
//	with /Size /Root /Info, startxref, %%EOF.
//
// Output is deterministic: objects are written in ascending object-number
// order and every numeric field is formatted the same way on every call
// for the same input.
func (w *Writer) Generate(rootRef, infoRef pdfobj.Reference) ([]byte, error) {
	for ref := range w.reserved {
		if _, ok := w.objects[ref]; !ok {
			return nil, &InvalidObjectReferenceError{Ref: ref}
		}
	}

	var buf bytes.Buffer
	buf.WriteString("%PDF-1.4\n")
	buf.Write([]byte{'%', 0xE2, 0xE3, 0xCF, 0xD3, '\n'})

	maxNum := w.lastNum
	offsets := make([]int64, maxNum+1) // index 0 is the free-list head

	refs := make([]pdfobj.Reference, 0, len(w.objects))
	for ref := range w.objects {
		refs = append(refs, ref)
	}
	sort.Slice(refs, func(i, j int) bool { return refs[i].Number() < refs[j].Number() })

	for _, ref := range refs {
		offsets[ref.Number()] = int64(buf.Len())
		fmt.Fprintf(&buf, "%d %d obj\n", ref.Number(), ref.Generation())
		if _, err := w.objects[ref].AsPDF().WriteTo(&buf); err != nil {
			return nil, err
		}
		buf.WriteString("\nendobj\n")
	}

	xrefOffset := int64(buf.Len())
	fmt.Fprintf(&buf, "xref\n0 %d\n", maxNum+1)
	buf.WriteString("0000000000 65535 f \n")
	for num := uint32(1); num <= maxNum; num++ {
		off := offsets[num]
		if off == 0 {
			buf.WriteString("0000000000 65535 f \n")
			continue
		}
		fmt.Fprintf(&buf, "%010d 00000 n \n", off)
	}

	trailer := pdfobj.Dict{
		"Size": pdfobj.Integer(maxNum + 1),
		"Root": rootRef,
	}
	if !infoRef.IsZero() {
		trailer["Info"] = infoRef
	}
	buf.WriteString("trailer\n")
	if _, err := trailer.WriteTo(&buf); err != nil {
		return nil, err
	}
	fmt.Fprintf(&buf, "\nstartxref\n%d\n%%%%EOF", xrefOffset)

	return buf.Bytes(), nil
}
