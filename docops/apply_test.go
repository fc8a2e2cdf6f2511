package docops

import (
	"testing"

	"github.com/neronapier/jpoffice/doctree"
)

// helloWorldDoc builds the literal scenario document from spec.md §8:
// one section containing one paragraph containing a run "Hello World".
func helloWorldDoc() *doctree.Document {
	doc := doctree.NewDocument("test")
	run := doctree.NewRun(doc, nil, "Hello World")
	para := doctree.NewParagraph(doc, nil, run)
	section := doctree.NewSection(doc, nil, para)
	body := doc.Body()
	body.Children = append(body.Children, section)
	return doc
}

func textAt(t *testing.T, doc *doctree.Document, path doctree.Path) string {
	t.Helper()
	n, err := doctree.GetNodeAtPath(doc.Root, path)
	if err != nil {
		t.Fatalf("GetNodeAtPath(%v): %v", path, err)
	}
	leaf, ok := n.(*doctree.Leaf)
	if !ok {
		t.Fatalf("node at %v is not a leaf", path)
	}
	return leaf.Text
}

func TestInsertTextScenario(t *testing.T) {
	doc := helloWorldDoc()
	path := doctree.Path{0, 0, 0, 0, 0}

	newDoc, err := Apply(doc, InsertText{Path: path, Offset: 5, Text: ","})
	if err != nil {
		t.Fatalf("Apply: %v", err)
	}
	got := textAt(t, newDoc, path)
	if got != "Hello, World" {
		t.Errorf("got %q, want %q", got, "Hello, World")
	}
	// the original document must be untouched.
	if orig := textAt(t, doc, path); orig != "Hello World" {
		t.Errorf("original document mutated: %q", orig)
	}
}

func TestInversionRoundTrip(t *testing.T) {
	doc := helloWorldDoc()
	path := doctree.Path{0, 0, 0, 0, 0}
	op := InsertText{Path: path, Offset: 5, Text: ", dear"}

	applied, err := Apply(doc, op)
	if err != nil {
		t.Fatalf("Apply: %v", err)
	}
	restored, err := Apply(applied, Invert(op))
	if err != nil {
		t.Fatalf("Apply(invert): %v", err)
	}
	if got, want := textAt(t, restored, path), textAt(t, doc, path); got != want {
		t.Errorf("round trip failed: got %q, want %q", got, want)
	}
}

func TestStructuralSharing(t *testing.T) {
	doc := helloWorldDoc()
	body := doc.Body()
	section := body.Children[0].(*doctree.Element)
	untouchedPara := section.Children[0]

	// add a second, untouched section so we can assert it survives by
	// reference after an edit to the first one.
	body.Children = append(body.Children, doctree.NewSection(doc, nil,
		doctree.NewParagraph(doc, nil, doctree.NewRun(doc, nil, "Other"))))
	untouchedSection := body.Children[1]
	newDoc, err := Apply(doc, InsertText{Path: doctree.Path{0, 0, 0, 0, 0}, Offset: 0, Text: "X"})
	if err != nil {
		t.Fatalf("Apply: %v", err)
	}
	if newDoc.Body().Children[1] != untouchedSection {
		t.Error("untouched sibling section must be shared by reference")
	}
	newSection := newDoc.Body().Children[0].(*doctree.Element)
	if newSection.Children[0] == untouchedPara {
		t.Error("paragraph on the mutation path must be a new object")
	}

	// the run's sibling run (none here) and the section's Props pointer
	// (untouched) must be reference-equal across old and new trees.
	if section.Props != newSection.Props {
		t.Error("untouched Props must be shared by reference")
	}
}

func TestDeleteTextOutOfBounds(t *testing.T) {
	doc := helloWorldDoc()
	path := doctree.Path{0, 0, 0, 0, 0}
	_, err := Apply(doc, DeleteText{Path: path, Offset: 100, Text: "x"})
	if err == nil {
		t.Error("expected PathOutOfBoundsError for an out-of-range delete")
	}
}

func TestSplitNodeAndMergeNodeInvert(t *testing.T) {
	doc := helloWorldDoc()
	path := doctree.Path{0, 0, 0, 0, 0}

	split := SplitNode{Path: path, Position: 5}
	applied, err := Apply(doc, split)
	if err != nil {
		t.Fatalf("Apply(split): %v", err)
	}
	first := textAt(t, applied, doctree.Path{0, 0, 0, 0, 0})
	second := textAt(t, applied, doctree.Path{0, 0, 0, 0, 1})
	if first != "Hello" || second != " World" {
		t.Fatalf("got (%q, %q), want (%q, %q)", first, second, "Hello", " World")
	}

	merged, err := Apply(applied, Invert(split))
	if err != nil {
		t.Fatalf("Apply(invert(split)): %v", err)
	}
	if got := textAt(t, merged, path); got != "Hello World" {
		t.Errorf("got %q, want %q", got, "Hello World")
	}
}

func TestMergeNodeNoPreviousSibling(t *testing.T) {
	doc := helloWorldDoc()
	_, err := Apply(doc, MergeNode{Path: doctree.Path{0, 0, 0, 0}})
	if _, ok := err.(*NoPreviousSiblingError); !ok {
		t.Errorf("got %v, want *NoPreviousSiblingError", err)
	}
}

func TestSetPropertiesToggleBoldAndInvert(t *testing.T) {
	doc := helloWorldDoc()
	runPath := doctree.Path{0, 0, 0, 0}

	set := SetProperties{
		Path:          runPath,
		Properties:    []PropertyEntry{{Key: "Bold", Value: true}},
		OldProperties: []PropertyEntry{{Key: "Bold", Value: false}},
	}
	applied, err := Apply(doc, set)
	if err != nil {
		t.Fatalf("Apply: %v", err)
	}
	n, err := doctree.GetNodeAtPath(applied.Root, runPath)
	if err != nil {
		t.Fatalf("GetNodeAtPath: %v", err)
	}
	run := n.(*doctree.Element)
	props, _ := run.Props.(*doctree.RunProps)
	if props == nil || !props.Bold {
		t.Fatalf("expected Bold=true after set_properties, got %+v", props)
	}

	restored, err := Apply(applied, Invert(set))
	if err != nil {
		t.Fatalf("Apply(invert): %v", err)
	}
	n2, _ := doctree.GetNodeAtPath(restored.Root, runPath)
	run2 := n2.(*doctree.Element)
	props2, _ := run2.Props.(*doctree.RunProps)
	if props2 != nil && props2.Bold {
		t.Fatalf("expected Bold=false after inverting set_properties, got %+v", props2)
	}
}
