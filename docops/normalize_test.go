package docops

import (
	"testing"

	"github.com/neronapier/jpoffice/doctree"
)

func TestNormalizeFillsEmptyParagraphAndCell(t *testing.T) {
	doc := doctree.NewDocument("test")
	emptyPara := doctree.NewParagraph(doc, nil)
	cell := doctree.NewTableCell(doc, nil)
	row := doctree.NewTableRow(doc, cell)
	table := doctree.NewTable(doc, nil, row)
	section := doctree.NewSection(doc, nil, emptyPara, table)
	doc.Body().Children = append(doc.Body().Children, section)

	normalized, ops, err := Normalize(doc)
	if err != nil {
		t.Fatalf("Normalize: %v", err)
	}
	if len(ops) == 0 {
		t.Fatal("expected normalization to emit operations for an empty paragraph and empty cell")
	}
	if NeedsNormalization(normalized) {
		t.Error("a freshly normalized document must not need further normalization")
	}

	_, ops2, err := Normalize(normalized)
	if err != nil {
		t.Fatalf("second Normalize: %v", err)
	}
	if len(ops2) != 0 {
		t.Errorf("normalizing an already-normalized document produced %d ops, want 0", len(ops2))
	}
}

func TestNormalizeMergesAdjacentEqualRuns(t *testing.T) {
	doc := doctree.NewDocument("test")
	bold := &doctree.RunProps{Bold: true}
	run1 := doctree.NewRun(doc, &doctree.RunProps{Bold: true}, "Hello")
	run2 := doctree.NewRun(doc, bold, " World")
	para := doctree.NewParagraph(doc, nil, run1, run2)
	section := doctree.NewSection(doc, nil, para)
	doc.Body().Children = append(doc.Body().Children, section)

	normalized, ops, err := Normalize(doc)
	if err != nil {
		t.Fatalf("Normalize: %v", err)
	}
	if len(ops) != 2 {
		t.Fatalf("expected a run merge followed by a text merge, got %d: %+v", len(ops), ops)
	}
	paraPath := doctree.Path{0, 0, 0}
	n, err := doctree.GetNodeAtPath(normalized.Root, paraPath)
	if err != nil {
		t.Fatalf("GetNodeAtPath: %v", err)
	}
	mergedPara := n.(*doctree.Element)
	if len(mergedPara.Children) != 1 {
		t.Fatalf("expected the two bold runs to merge into one, got %d children", len(mergedPara.Children))
	}
	run := mergedPara.Children[0].(*doctree.Element)
	text := run.Children[0].(*doctree.Leaf).Text
	if text != "Hello World" {
		t.Errorf("got merged text %q, want %q", text, "Hello World")
	}
}

func TestNormalizeKeepsSoleEmptyRun(t *testing.T) {
	doc := doctree.NewDocument("test")
	run := doctree.NewRun(doc, nil, "")
	para := doctree.NewParagraph(doc, nil, run)
	section := doctree.NewSection(doc, nil, para)
	doc.Body().Children = append(doc.Body().Children, section)

	_, ops, err := Normalize(doc)
	if err != nil {
		t.Fatalf("Normalize: %v", err)
	}
	if len(ops) != 0 {
		t.Errorf("a paragraph with a single empty run is already normalized, got %d ops", len(ops))
	}
}
