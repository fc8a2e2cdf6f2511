package editor

import (
	"testing"

	"github.com/neronapier/jpoffice/docops"
	"github.com/neronapier/jpoffice/doctree"
)

func helloWorldDoc() *doctree.Document {
	doc := doctree.NewDocument("test")
	run := doctree.NewRun(doc, nil, "Hello World")
	para := doctree.NewParagraph(doc, nil, run)
	section := doctree.NewSection(doc, nil, para)
	doc.Body().Children = append(doc.Body().Children, section)
	return doc
}

func rangesEqual(a, b doctree.Range) bool {
	return a.Anchor.Equals(b.Anchor) && a.Focus.Equals(b.Focus)
}

func textAt(t *testing.T, doc *doctree.Document, path doctree.Path) string {
	t.Helper()
	n, err := doctree.GetNodeAtPath(doc.Root, path)
	if err != nil {
		t.Fatalf("GetNodeAtPath: %v", err)
	}
	return n.(*doctree.Leaf).Text
}

func TestApplyAndUndoRedoInvariant(t *testing.T) {
	e := New(Options{Document: helloWorldDoc()})
	path := doctree.Path{0, 0, 0, 0, 0}

	e.Apply(docops.InsertText{Path: path, Offset: 5, Text: ","})
	if got := textAt(t, e.GetDocument(), path); got != "Hello, World" {
		t.Fatalf("got %q after apply", got)
	}

	preUndoDoc := e.GetDocument()

	e.Undo()
	if got := textAt(t, e.GetDocument(), path); got != "Hello World" {
		t.Fatalf("got %q after undo, want original text", got)
	}
	if !e.CanRedo() {
		t.Error("CanRedo() must be true right after an undo")
	}

	e.Redo()
	if got := textAt(t, e.GetDocument(), path); got != "Hello, World" {
		t.Fatalf("got %q after redo, want %q", got, "Hello, World")
	}
	_ = preUndoDoc
}

func TestReadOnlyBlocksNonSelectionOps(t *testing.T) {
	e := New(Options{Document: helloWorldDoc()})
	e.SetReadOnly(true)
	path := doctree.Path{0, 0, 0, 0, 0}

	e.Apply(docops.InsertText{Path: path, Offset: 0, Text: "X"})
	if got := textAt(t, e.GetDocument(), path); got != "Hello World" {
		t.Fatalf("read-only editor applied a mutating op: got %q", got)
	}

	sel := doctree.Collapse(doctree.Point{Path: path, Offset: 3})
	e.SetSelection(sel)
	if got := e.GetSelection(); !rangesEqual(got, sel) {
		t.Error("read-only editor must still accept set_selection")
	}
}

func TestBatchCommitsOneUndoStep(t *testing.T) {
	e := New(Options{Document: helloWorldDoc()})
	path := doctree.Path{0, 0, 0, 0, 0}

	e.Batch(func() {
		e.Apply(docops.InsertText{Path: path, Offset: 0, Text: "A"})
		e.Apply(docops.InsertText{Path: path, Offset: 1, Text: "B"})
	})

	if got := textAt(t, e.GetDocument(), path); got != "ABHello World" {
		t.Fatalf("got %q after batch", got)
	}
	if len(e.undo) != 1 {
		t.Fatalf("expected one batch on the undo stack, got %d", len(e.undo))
	}

	e.Undo()
	if got := textAt(t, e.GetDocument(), path); got != "Hello World" {
		t.Fatalf("got %q after undoing the whole batch, want original text", got)
	}
}

// TestBatchSelectionPreludeAndPostludeRestoredByUndoRedo covers spec.md
// §4.F: a batch's leading/trailing set_selection is restored by Undo and
// Redo respectively, even though it never lands in Batch.Ops.
func TestBatchSelectionPreludeAndPostludeRestoredByUndoRedo(t *testing.T) {
	e := New(Options{Document: helloWorldDoc()})
	path := doctree.Path{0, 0, 0, 0, 0}

	before := doctree.Collapse(doctree.Point{Path: path, Offset: 0})
	after := doctree.Collapse(doctree.Point{Path: path, Offset: 2})
	e.SetSelection(before)

	e.Batch(func() {
		e.SetSelection(doctree.Collapse(doctree.Point{Path: path, Offset: 5}))
		e.Apply(docops.InsertText{Path: path, Offset: 5, Text: ","})
		e.SetSelection(after)
	})

	if got := textAt(t, e.GetDocument(), path); got != "Hello, World" {
		t.Fatalf("got %q after batch", got)
	}
	if got := e.GetSelection(); !rangesEqual(got, after) {
		t.Fatalf("selection after batch = %v, want %v", got, after)
	}

	e.Undo()
	if got := textAt(t, e.GetDocument(), path); got != "Hello World" {
		t.Fatalf("got %q after undo", got)
	}
	if got := e.GetSelection(); !rangesEqual(got, before) {
		t.Errorf("selection after undo = %v, want prelude selection %v", got, before)
	}

	e.Redo()
	if got := e.GetSelection(); !rangesEqual(got, after) {
		t.Errorf("selection after redo = %v, want postlude selection %v", got, after)
	}
}

type countingPlugin struct {
	id      string
	before  int
	after   int
}

func (p *countingPlugin) ID() string   { return p.id }
func (p *countingPlugin) Name() string { return p.id }
func (p *countingPlugin) Initialize(e *Editor) {}
func (p *countingPlugin) OnBeforeApply(e *Editor, ops []docops.Operation) []docops.Operation {
	p.before++
	return ops
}
func (p *countingPlugin) OnAfterApply(e *Editor, ops []docops.Operation) {
	p.after++
}

func TestPluginHooksFireOnApply(t *testing.T) {
	e := New(Options{Document: helloWorldDoc()})
	p := &countingPlugin{id: "counter"}
	e.RegisterPlugin(p)

	e.Apply(docops.InsertText{Path: doctree.Path{0, 0, 0, 0, 0}, Offset: 0, Text: "X"})

	if p.before != 1 || p.after != 1 {
		t.Errorf("got before=%d after=%d, want 1 and 1", p.before, p.after)
	}
}

func TestCommandRegistryLastRegistrationWins(t *testing.T) {
	e := New(Options{Document: helloWorldDoc()})
	calls := 0
	e.RegisterCommand(&Command{ID: "x", Execute: func(e *Editor, args any) { calls = 1 }})
	e.RegisterCommand(&Command{ID: "x", Execute: func(e *Editor, args any) { calls = 2 }})

	e.ExecuteCommand("x", nil)
	if calls != 2 {
		t.Errorf("got %d, want 2 (last registration should win)", calls)
	}
}
