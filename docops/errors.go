package docops

import (
	"fmt"

	"github.com/neronapier/jpoffice/doctree"
)

// PathOutOfBoundsError reports an operation addressing a child index
// that does not exist.
type PathOutOfBoundsError struct {
	Path doctree.Path
}

func (e *PathOutOfBoundsError) Error() string {
	return fmt.Sprintf("docops: path %v out of bounds", []int(e.Path))
}

// WrongNodeKindError reports an operation applied to a node of a kind it
// cannot act on (e.g. insert_text on a non-text node).
type WrongNodeKindError struct {
	Path doctree.Path
	Kind doctree.Kind
}

func (e *WrongNodeKindError) Error() string {
	return fmt.Sprintf("docops: node at %v has wrong kind %q for this operation", []int(e.Path), e.Kind)
}

// MergeMismatchError reports merge_node applied where the target and its
// previous sibling are different kinds.
type MergeMismatchError struct {
	Path doctree.Path
	A, B doctree.Kind
}

func (e *MergeMismatchError) Error() string {
	return fmt.Sprintf("docops: cannot merge %q into %q at %v", e.B, e.A, []int(e.Path))
}

// NoPreviousSiblingError reports merge_node applied to a node that is
// already its parent's first child.
type NoPreviousSiblingError struct {
	Path doctree.Path
}

func (e *NoPreviousSiblingError) Error() string {
	return fmt.Sprintf("docops: no previous sibling to merge into at %v", []int(e.Path))
}
