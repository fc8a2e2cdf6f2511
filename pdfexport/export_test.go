package pdfexport

import (
	"bytes"
	"testing"

	"github.com/neronapier/jpoffice/doctree"
)

// helloWorldDoc builds the literal scenario from spec.md §8: one
// section, one paragraph, one run "Hello World".
func helloWorldDoc() *doctree.Document {
	doc := doctree.NewDocument("export-test")
	run := doctree.NewRun(doc, nil, "Hello World")
	para := doctree.NewParagraph(doc, nil, run)
	section := doctree.NewSection(doc, nil, para)
	doc.Body().Children = append(doc.Body().Children, section)
	return doc
}

func headingDoc() *doctree.Document {
	doc := doctree.NewDocument("export-test-heading")
	heading := doctree.NewParagraph(doc, &doctree.ParagraphProps{OutlineLevel: 1},
		doctree.NewRun(doc, nil, "Chapter One"))
	body := doctree.NewParagraph(doc, nil, doctree.NewRun(doc, nil, "Body text."))
	section := doctree.NewSection(doc, nil, heading, body)
	doc.Body().Children = append(doc.Body().Children, section)
	return doc
}

// TestExportIsDeterministic is spec.md testable property 8: the same
// (doc, opts) pair must produce byte-identical output across calls,
// since no wall-clock or random state ever enters the writer.
func TestExportIsDeterministic(t *testing.T) {
	doc := helloWorldDoc()
	opts := &Options{Title: "Hello"}

	first, err := ExportToPdf(doc, opts)
	if err != nil {
		t.Fatalf("ExportToPdf: %v", err)
	}
	second, err := ExportToPdf(doc, opts)
	if err != nil {
		t.Fatalf("ExportToPdf (second call): %v", err)
	}
	if !bytes.Equal(first, second) {
		t.Error("ExportToPdf produced different bytes for identical input")
	}
}

// TestExportStructuralValidity is spec.md testable property 9: the
// output must open with a %PDF header and carry the minimal object
// graph a reader needs (Catalog, Pages, at least one Page and Contents
// stream).
func TestExportStructuralValidity(t *testing.T) {
	doc := helloWorldDoc()
	data, err := ExportToPdf(doc, &Options{})
	if err != nil {
		t.Fatalf("ExportToPdf: %v", err)
	}
	if !bytes.HasPrefix(data, []byte("%PDF-1.4")) {
		t.Errorf("output does not start with %%PDF-1.4 header")
	}
	for _, want := range [][]byte{
		[]byte("/Type /Catalog"),
		[]byte("/Type /Pages"),
		[]byte("/Type /Page"),
		[]byte("/Contents "),
		[]byte("trailer"),
		[]byte("startxref"),
	} {
		if !bytes.Contains(data, want) {
			t.Errorf("output missing expected fragment %q", want)
		}
	}
}

func TestExportWithTaggedOutline(t *testing.T) {
	doc := headingDoc()
	data, err := ExportToPdf(doc, &Options{Tagged: true})
	if err != nil {
		t.Fatalf("ExportToPdf: %v", err)
	}
	for _, want := range [][]byte{
		[]byte(" /StructTreeRoot "),
		[]byte(" /MarkInfo "),
		[]byte(" /Outlines "),
	} {
		if !bytes.Contains(data, want) {
			t.Errorf("tagged export missing expected fragment %q", want)
		}
	}
}

func TestExportEmptyDocumentProducesValidPDF(t *testing.T) {
	doc := doctree.NewDocument("export-test-empty")
	data, err := ExportToPdf(doc, &Options{})
	if err != nil {
		t.Fatalf("ExportToPdf(empty doc): %v", err)
	}
	if !bytes.HasPrefix(data, []byte("%PDF-1.4")) {
		t.Error("empty-document export does not start with a PDF header")
	}
}
