package docops

import (
	"testing"

	"github.com/neronapier/jpoffice/doctree"
)

// threeParagraphDoc builds one section containing three single-run
// paragraphs "A", "B", "C" — enough to exercise reordering within a
// single parent.
func threeParagraphDoc() *doctree.Document {
	doc := doctree.NewDocument("test")
	a := doctree.NewParagraph(doc, nil, doctree.NewRun(doc, nil, "A"))
	b := doctree.NewParagraph(doc, nil, doctree.NewRun(doc, nil, "B"))
	c := doctree.NewParagraph(doc, nil, doctree.NewRun(doc, nil, "C"))
	section := doctree.NewSection(doc, nil, a, b, c)
	doc.Body().Children = append(doc.Body().Children, section)
	return doc
}

func paragraphText(t *testing.T, doc *doctree.Document, idx int) string {
	t.Helper()
	return textAt(t, doc, doctree.Path{0, 0, idx, 0, 0})
}

// TestMoveNodeInvertRoundTrip is spec.md testable property 1 (inversion
// round-trip) for move_node: moving the first paragraph of three to the
// end, then applying its inverse, must restore the original order. The
// node's actual post-move path ([0,0,2], not the raw NewPath [0,0,3])
// is what the inverse needs to address.
func TestMoveNodeInvertRoundTrip(t *testing.T) {
	doc := threeParagraphDoc()
	move := MoveNode{Path: doctree.Path{0, 0, 0}, NewPath: doctree.Path{0, 0, 3}}

	applied, err := Apply(doc, move)
	if err != nil {
		t.Fatalf("Apply(move): %v", err)
	}
	if got := []string{
		paragraphText(t, applied, 0),
		paragraphText(t, applied, 1),
		paragraphText(t, applied, 2),
	}; got[0] != "B" || got[1] != "C" || got[2] != "A" {
		t.Fatalf("got order %v, want [B C A]", got)
	}

	inv := Invert(move)
	restored, err := Apply(applied, inv)
	if err != nil {
		t.Fatalf("Apply(invert(move)): %v", err)
	}
	if got := []string{
		paragraphText(t, restored, 0),
		paragraphText(t, restored, 1),
		paragraphText(t, restored, 2),
	}; got[0] != "A" || got[1] != "B" || got[2] != "C" {
		t.Fatalf("got order %v after round trip, want [A B C]", got)
	}
}
