// jpoffice - a word-processor engine and PDF export pipeline

// Package editor implements the editing engine's coordinator: the state
// container, undo/redo history, the plugin and command registries, and
// the selection manager. It is the single writer of editor state; every
// mutation funnels through Apply so history and subscribers stay in
// sync with the document (spec.md §4.F, §5).
package editor

import (
	"github.com/neronapier/jpoffice/docops"
	"github.com/neronapier/jpoffice/doctree"
)

// State is the editor's complete observable state at a point in time.
type State struct {
	Document *doctree.Document
	Selection doctree.Range
	ReadOnly bool
}

// Batch is an ordered list of non-selection operations committed
// atomically to the undo stack (spec.md's "Batch" glossary entry).
type Batch struct {
	Ops []docops.Operation
	// SelectionBefore/After let undo/redo restore selection exactly
	// when the batch carried an explicit set_selection prelude or
	// postlude (spec.md §4.F "Selection on undo/redo").
	SelectionBefore, SelectionAfter doctree.Range
	HasSelectionBefore, HasSelectionAfter bool
}

// Listener is called after every apply, including each apply inside a
// batch — see Editor.Subscribe.
type Listener func(State)
