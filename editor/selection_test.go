package editor

import (
	"testing"

	"github.com/neronapier/jpoffice/doctree"
)

// boldRangeDoc builds spec.md §8's "Bold range" scenario: one paragraph
// split into two runs, "Hello " and "World".
func boldRangeDoc() *doctree.Document {
	doc := doctree.NewDocument("test")
	run1 := doctree.NewRun(doc, nil, "Hello ")
	run2 := doctree.NewRun(doc, &doctree.RunProps{Bold: true}, "World")
	para := doctree.NewParagraph(doc, nil, run1, run2)
	section := doctree.NewSection(doc, nil, para)
	doc.Body().Children = append(doc.Body().Children, section)
	return doc
}

// TestGetSelectedTextAcrossRunsNoSpuriousNewline covers spec.md §8's
// "Bold range" scenario: a selection spanning both runs of a single
// paragraph must read back as one unbroken string, with no "\n" inserted
// at the run boundary.
func TestGetSelectedTextAcrossRunsNoSpuriousNewline(t *testing.T) {
	doc := boldRangeDoc()
	r := doctree.Range{
		Anchor: doctree.Point{Path: doctree.Path{0, 0, 0, 0, 0}, Offset: 0},
		Focus:  doctree.Point{Path: doctree.Path{0, 0, 0, 1, 0}, Offset: 5},
	}
	got := GetSelectedText(doc, r)
	if want := "Hello World"; got != want {
		t.Errorf("GetSelectedText = %q, want %q", got, want)
	}
}

// TestGetSelectedTextAcrossParagraphsInsertsNewline confirms the real
// paragraph-boundary case still separates with "\n".
func TestGetSelectedTextAcrossParagraphsInsertsNewline(t *testing.T) {
	doc := doctree.NewDocument("test")
	para1 := doctree.NewParagraph(doc, nil, doctree.NewRun(doc, nil, "First"))
	para2 := doctree.NewParagraph(doc, nil, doctree.NewRun(doc, nil, "Second"))
	section := doctree.NewSection(doc, nil, para1, para2)
	doc.Body().Children = append(doc.Body().Children, section)

	r := doctree.Range{
		Anchor: doctree.Point{Path: doctree.Path{0, 0, 0, 0, 0}, Offset: 0},
		Focus:  doctree.Point{Path: doctree.Path{0, 0, 1, 0, 0}, Offset: 6},
	}
	got := GetSelectedText(doc, r)
	if want := "First\nSecond"; got != want {
		t.Errorf("GetSelectedText = %q, want %q", got, want)
	}
}
