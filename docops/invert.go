package docops

import "github.com/neronapier/jpoffice/doctree"

// Invert returns the operation that undoes op, per the table in
// spec.md §4.D. Applying op and then Invert(op) to the same document
// must be the identity (spec §8.1); Invert never touches a document, it
// only rewrites the operation record.
func Invert(op Operation) Operation {
	switch o := op.(type) {
	case InsertText:
		return DeleteText{Path: o.Path, Offset: o.Offset, Text: o.Text}
	case DeleteText:
		return InsertText{Path: o.Path, Offset: o.Offset, Text: o.Text}
	case InsertNode:
		return RemoveNode{Path: o.Path, Node: o.Node}
	case RemoveNode:
		return InsertNode{Path: o.Path, Node: o.Node}
	case SplitNode:
		last := o.Path[len(o.Path)-1]
		mergePath := doctree.Sibling(o.Path, last+1)
		return MergeNode{Path: mergePath, Position: o.Position, Properties: o.Properties}
	case MergeNode:
		last := o.Path[len(o.Path)-1]
		splitPath := doctree.Sibling(o.Path, last-1)
		return SplitNode{Path: splitPath, Position: o.Position, Properties: o.Properties}
	case MoveNode:
		actual, ok := doctree.TransformAfterRemove(o.NewPath, o.Path)
		if !ok {
			actual = o.NewPath
		}
		// NewPath is read in pre-removal coordinates, so the original
		// slot is expressed as it stands before the node leaves actual.
		return MoveNode{Path: actual, NewPath: doctree.TransformAfterInsert(o.Path, actual)}
	case SetProperties:
		return SetProperties{Path: o.Path, Properties: o.OldProperties, OldProperties: o.Properties}
	case SetSelection:
		return SetSelection{OldSelection: o.NewSelection, NewSelection: o.OldSelection}
	default:
		return op
	}
}

// InvertBatch inverts a batch (ordered list of operations) by inverting
// each operation and reversing the overall order, so that replaying the
// result against the post-batch document restores the pre-batch state.
func InvertBatch(ops []Operation) []Operation {
	out := make([]Operation, len(ops))
	for i, op := range ops {
		out[len(ops)-1-i] = Invert(op)
	}
	return out
}
