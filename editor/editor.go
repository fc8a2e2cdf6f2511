package editor

import (
	"github.com/neronapier/jpoffice/docops"
	"github.com/neronapier/jpoffice/doctree"
)

// Editor is the single-threaded, cooperative coordinator described in
// spec.md §4.F and §5: it owns the document, selection, and history, and
// is the only writer of editor state. Nothing in Editor suspends; long
// running work (layout, PDF export) is invoked by callers outside this
// type.
type Editor struct {
	state State

	undo []Batch
	redo []Batch

	batchDepth          int
	pendingBatch        []docops.Operation
	pendingBatchStarted bool
	pendingSelBefore    doctree.Range
	pendingHasSelBefore bool
	pendingSelAfter     doctree.Range
	pendingHasSelAfter  bool

	plugins  *pluginManager
	commands *commandRegistry

	listeners []Listener

	log func(format string, args ...any)
}

// Options configures a new Editor.
type Options struct {
	Document *doctree.Document
	Log      func(format string, args ...any)
}

// New creates an Editor over opts.Document (or a fresh empty document if
// nil).
func New(opts Options) *Editor {
	doc := opts.Document
	if doc == nil {
		doc = doctree.NewDocument("")
	}
	e := &Editor{
		state:    State{Document: doc},
		plugins:  newPluginManager(),
		commands: newCommandRegistry(opts.Log),
		log:      opts.Log,
	}
	if e.log == nil {
		e.log = func(string, ...any) {}
	}
	return e
}

// GetDocument returns the editor's current document.
func (e *Editor) GetDocument() *doctree.Document { return e.state.Document }

// GetSelection returns the editor's current selection.
func (e *Editor) GetSelection() doctree.Range { return e.state.Selection }

// SetSelection applies a set_selection operation through the normal
// apply path, so history/subscribers observe it uniformly.
func (e *Editor) SetSelection(sel doctree.Range) {
	e.Apply(docops.SetSelection{OldSelection: e.state.Selection, NewSelection: sel})
}

// GetSelectedText returns the text covered by the current selection.
func (e *Editor) GetSelectedText() string {
	return GetSelectedText(e.state.Document, e.state.Selection)
}

// SetReadOnly toggles read-only mode.
func (e *Editor) SetReadOnly(flag bool) { e.state.ReadOnly = flag }

// SetDocument replaces the document wholesale, resets history, and
// notifies ResettablePlugin-implementing plugins.
func (e *Editor) SetDocument(doc *doctree.Document, sel doctree.Range) {
	e.state.Document = doc
	e.state.Selection = sel
	e.undo = nil
	e.redo = nil
	e.plugins.resetAll()
	e.notify()
}

// Subscribe registers a listener called after every apply, including
// each apply made inside a Batch (the batch commit itself sends no
// further notification), and after Undo and Redo; it returns an
// unsubscribe function.
func (e *Editor) Subscribe(l Listener) func() {
	e.listeners = append(e.listeners, l)
	idx := len(e.listeners) - 1
	return func() {
		e.listeners[idx] = nil
	}
}

func (e *Editor) notify() {
	for _, l := range e.listeners {
		if l != nil {
			l(e.state)
		}
	}
}

// RegisterPlugin registers p and calls its Initialize hook.
func (e *Editor) RegisterPlugin(p Plugin) {
	e.plugins.register(p)
	p.Initialize(e)
}

// UnregisterPlugin removes the plugin with the given id, calling its
// Destroy hook if implemented.
func (e *Editor) UnregisterPlugin(id string) { e.plugins.unregister(id) }

// GetPlugin returns the plugin registered under id, if any.
func (e *Editor) GetPlugin(id string) (Plugin, bool) { return e.plugins.get(id) }

// RegisterCommand registers cmd, overwriting any prior command with the
// same id (last registration wins).
func (e *Editor) RegisterCommand(cmd *Command) { e.commands.register(cmd) }

// CanExecuteCommand reports whether the named command can run right now.
func (e *Editor) CanExecuteCommand(id string, args any) bool {
	return e.commands.canExecute(e, id, args)
}

// ExecuteCommand runs the named command if it can execute. Re-entrant
// command execution (a command's Execute calling ExecuteCommand again)
// is allowed and participates in the current batch, since Execute just
// calls through to Apply/Batch like any other caller.
func (e *Editor) ExecuteCommand(id string, args any) {
	cmd, ok := e.commands.get(id)
	if !ok || !e.commands.canExecute(e, id, args) {
		return
	}
	cmd.Execute(e, args)
}

// CanUndo reports whether there is a batch to undo.
func (e *Editor) CanUndo() bool { return len(e.undo) > 0 }

// CanRedo reports whether there is a batch to redo.
func (e *Editor) CanRedo() bool { return len(e.redo) > 0 }

// Apply applies a single operation through the full pipeline: read-only
// guard, beforeApply plugin chain, applyOperation/selection update,
// history bookkeeping, afterApply, subscriber notification
// (spec.md §4.F).
func (e *Editor) Apply(op docops.Operation) {
	e.ApplyAll([]docops.Operation{op})
}

// ApplyAll applies ops as one logical step (spec.md's applyBatch),
// running the plugin chain and history bookkeeping once for the whole
// list rather than once per operation.
func (e *Editor) ApplyAll(ops []docops.Operation) {
	if e.state.ReadOnly {
		ops = selectionOnly(ops)
		if len(ops) == 0 {
			return
		}
	}

	rewritten, ok := e.plugins.beforeApply(e, ops)
	if !ok {
		return
	}

	applied := make([]docops.Operation, 0, len(rewritten))
	for _, op := range rewritten {
		if sel, isSel := op.(docops.SetSelection); isSel {
			e.state.Selection = sel.NewSelection
			applied = append(applied, op)
			continue
		}
		newDoc, err := docops.Apply(e.state.Document, op)
		if err != nil {
			e.log("editor: apply %T failed: %v", op, err)
			continue
		}
		e.state.Document = newDoc
		applied = append(applied, op)
	}

	e.recordHistory(applied)
	e.plugins.afterApply(e, applied)
	e.notify()
}

func selectionOnly(ops []docops.Operation) []docops.Operation {
	out := make([]docops.Operation, 0, len(ops))
	for _, op := range ops {
		if _, ok := op.(docops.SetSelection); ok {
			out = append(out, op)
		}
	}
	return out
}

func (e *Editor) recordHistory(applied []docops.Operation) {
	if e.batchDepth > 0 {
		e.captureBatchSelection(applied)
	}
	var nonSel []docops.Operation
	for _, op := range applied {
		if _, ok := op.(docops.SetSelection); ok {
			continue
		}
		nonSel = append(nonSel, op)
	}
	if len(nonSel) == 0 {
		return
	}
	if e.batchDepth > 0 {
		e.pendingBatch = append(e.pendingBatch, nonSel...)
		return
	}
	e.undo = append(e.undo, Batch{Ops: nonSel})
	e.redo = nil
}

// captureBatchSelection records a batch's set_selection prelude/postlude
// (spec.md §4.F): a set_selection that is the first operation applied in
// the batch is restored on Undo; one that is the last operation applied
// is restored on Redo. Non-leading/non-trailing set_selection ops pass
// through ApplyAll normally but carry no restore semantics.
func (e *Editor) captureBatchSelection(applied []docops.Operation) {
	if len(applied) == 0 {
		return
	}
	if !e.pendingBatchStarted {
		e.pendingBatchStarted = true
		if sel, ok := applied[0].(docops.SetSelection); ok {
			e.pendingSelBefore = sel.OldSelection
			e.pendingHasSelBefore = true
		}
	}
	if sel, ok := applied[len(applied)-1].(docops.SetSelection); ok {
		e.pendingSelAfter = sel.NewSelection
		e.pendingHasSelAfter = true
	} else {
		e.pendingHasSelAfter = false
	}
}

// Batch runs fn with batching active: operations it applies via Apply
// accumulate into one Batch pushed to the undo stack when the outermost
// Batch call returns. Batch calls nest.
func (e *Editor) Batch(fn func()) {
	e.batchDepth++
	if e.batchDepth == 1 {
		e.pendingBatch = nil
		e.pendingBatchStarted = false
		e.pendingHasSelBefore = false
		e.pendingHasSelAfter = false
	}
	fn()
	e.batchDepth--
	if e.batchDepth == 0 && len(e.pendingBatch) > 0 {
		e.undo = append(e.undo, Batch{
			Ops:                e.pendingBatch,
			SelectionBefore:    e.pendingSelBefore,
			HasSelectionBefore: e.pendingHasSelBefore,
			SelectionAfter:     e.pendingSelAfter,
			HasSelectionAfter:  e.pendingHasSelAfter,
		})
		e.redo = nil
		e.pendingBatch = nil
	}
}

// Undo pops the most recent batch, applies its inverse in reverse
// order, and moves it to the redo stack.
func (e *Editor) Undo() {
	if len(e.undo) == 0 {
		return
	}
	b := e.undo[len(e.undo)-1]
	e.undo = e.undo[:len(e.undo)-1]
	e.replay(docops.InvertBatch(b.Ops))
	if b.HasSelectionBefore {
		e.state.Selection = b.SelectionBefore
	}
	e.redo = append(e.redo, b)
	e.notify()
}

// Redo pops the most recently undone batch and reapplies it.
func (e *Editor) Redo() {
	if len(e.redo) == 0 {
		return
	}
	b := e.redo[len(e.redo)-1]
	e.redo = e.redo[:len(e.redo)-1]
	e.replay(b.Ops)
	if b.HasSelectionAfter {
		e.state.Selection = b.SelectionAfter
	}
	e.undo = append(e.undo, b)
	e.notify()
}

// replay applies ops to the document directly, bypassing plugins and
// history bookkeeping: undo/redo are history operations, not new edits.
func (e *Editor) replay(ops []docops.Operation) {
	for _, op := range ops {
		newDoc, err := docops.Apply(e.state.Document, op)
		if err != nil {
			e.log("editor: undo/redo replay of %T failed: %v", op, err)
			continue
		}
		e.state.Document = newDoc
	}
}
