// jpoffice - a word-processor engine and PDF export pipeline

// Package docops implements the operation algebra: the nine atomic
// operations that mutate a doctree.Document, their application and
// inversion, and the normalizer that restores structural invariants
// after a batch. Every Operation produces a new Document via structural
// sharing — applyOperation never mutates its input.
package docops

import "github.com/neronapier/jpoffice/doctree"

// Operation is implemented by each of the nine atomic operation kinds.
// It is a plain record type, not a closure, so batches can be logged,
// inverted, and replayed.
type Operation interface {
	isOperation()
}

// InsertText inserts Text into the text leaf at Path, before Offset.
type InsertText struct {
	Path   doctree.Path
	Offset int
	Text   string
}

func (InsertText) isOperation() {}

// DeleteText removes the Text found at Offset in the text leaf at Path.
// Text is carried so the operation can be inverted without consulting
// the document it was applied to.
type DeleteText struct {
	Path   doctree.Path
	Offset int
	Text   string
}

func (DeleteText) isOperation() {}

// InsertNode splices Node into the parent of Path at index Path[last].
type InsertNode struct {
	Path doctree.Path
	Node doctree.Node
}

func (InsertNode) isOperation() {}

// RemoveNode splices the node at Path out of its parent. Node is
// carried (filled in by the caller; Apply does not fill it) so the
// operation can be inverted.
type RemoveNode struct {
	Path doctree.Path
	Node doctree.Node
}

func (RemoveNode) isOperation() {}

// SplitNode splits the element or text node at Path at Position into
// two siblings; the second (new) sibling receives Properties.
type SplitNode struct {
	Path       doctree.Path
	Position   int
	Properties any
}

func (SplitNode) isOperation() {}

// MergeNode merges the node at Path into its previous sibling. Position
// and Properties describe the split point the inverse SplitNode should
// reproduce (Position is the length/child-count of the surviving
// sibling before the merge; Properties is the merged-away sibling's own
// properties).
type MergeNode struct {
	Path       doctree.Path
	Position   int
	Properties any
}

func (MergeNode) isOperation() {}

// MoveNode removes the node at Path and reinserts it at NewPath.
// NewPath is given in the coordinates of the tree before the removal;
// Apply adjusts it for the removal before inserting.
type MoveNode struct {
	Path    doctree.Path
	NewPath doctree.Path
}

func (MoveNode) isOperation() {}

// PropertyEntry is one key/value pair of a SetProperties operation.
// Properties are carried as an ordered slice rather than a map because
// spec.md §4.D's tie-break rule ("applied in insertion order... when the
// same key is set twice within one op, the latter wins") is only
// expressible with an order-preserving representation.
type PropertyEntry struct {
	Key   string
	Value any
}

// SetProperties field-wise merges Properties onto the node at Path, in
// order. A property set to PropertyDelete is removed (reset to its zero
// value) rather than overwritten. OldProperties carries the prior value
// of every key in Properties, for inversion.
type SetProperties struct {
	Path          doctree.Path
	Properties    []PropertyEntry
	OldProperties []PropertyEntry
}

func (SetProperties) isOperation() {}

// propertyDelete is the sentinel PropertyEntry.Value compares equal to
// (via ==) to mean "delete this key", mirroring the source spec's use of
// null for the same purpose (spec.md §4.D).
type propertyDelete struct{}

// PropertyDelete is assigned as a PropertyEntry.Value to delete that key
// rather than set it.
var PropertyDelete any = propertyDelete{}

// SetSelection is state-only: it is never applied to the document tree,
// only to the editor's current selection (spec.md §4.D).
type SetSelection struct {
	OldSelection doctree.Range
	NewSelection doctree.Range
}

func (SetSelection) isOperation() {}
