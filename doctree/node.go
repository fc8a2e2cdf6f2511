package doctree

import (
	"fmt"
	"iter"
)

// Kind tags every node with its variant, playing the role the teacher
// library's struct tags (`pdf:"Type=Catalog"`) play for PDF dictionaries:
// a stable, serializable discriminator.
type Kind string

// Element kinds: nodes that own an ordered list of children.
const (
	KindDocument    Kind = "document"
	KindBody        Kind = "body"
	KindSection     Kind = "section"
	KindParagraph   Kind = "paragraph"
	KindRun         Kind = "run"
	KindTable       Kind = "table"
	KindTableRow    Kind = "table-row"
	KindTableCell   Kind = "table-cell"
	KindHeader      Kind = "header"
	KindFooter      Kind = "footer"
	KindHyperlink   Kind = "hyperlink"
	KindDrawing     Kind = "drawing"
	KindShapeGroup  Kind = "shape-group"
	KindTextbox     Kind = "textbox"
)

// Leaf kinds: nodes with no children.
const (
	KindText             Kind = "text"
	KindImage            Kind = "image"
	KindPageBreak        Kind = "page-break"
	KindLineBreak        Kind = "line-break"
	KindColumnBreak      Kind = "column-break"
	KindTab              Kind = "tab"
	KindBookmarkStart    Kind = "bookmark-start"
	KindBookmarkEnd      Kind = "bookmark-end"
	KindCommentRangeStart Kind = "comment-range-start"
	KindCommentRangeEnd   Kind = "comment-range-end"
	KindField            Kind = "field"
	KindFootnoteRef      Kind = "footnote-ref"
	KindEndnoteRef       Kind = "endnote-ref"
	KindEquation         Kind = "equation"
	KindShape            Kind = "shape"
	KindMention          Kind = "mention"
)

var elementKinds = map[Kind]bool{
	KindDocument: true, KindBody: true, KindSection: true, KindParagraph: true,
	KindRun: true, KindTable: true, KindTableRow: true, KindTableCell: true,
	KindHeader: true, KindFooter: true, KindHyperlink: true, KindDrawing: true,
	KindShapeGroup: true, KindTextbox: true,
}

// IsElementKind reports whether k is an ordered-children ("element")
// node kind as opposed to a leaf kind.
func IsElementKind(k Kind) bool { return elementKinds[k] }

// Node is implemented by every node in the tree. Both *Element and *Leaf
// implement it; use a type switch or the IsElement/IsLeaf helpers to tell
// them apart, the way the teacher library uses a type switch on
// pdfobj.Object to distinguish Dict/Array/Stream.
type Node interface {
	NodeID() string
	NodeKind() Kind
}

// Element is a node with ordered children: document, body, section,
// paragraph, run, table and friends. Props holds the kind-specific
// property record (*ParagraphProps, *RunProps, ...) or nil for kinds that
// carry no properties of their own (body, table-row).
type Element struct {
	ID       string
	Kind     Kind
	Props    any
	Children []Node
}

func (e *Element) NodeID() string   { return e.ID }
func (e *Element) NodeKind() Kind   { return e.Kind }

// Clone returns a shallow copy of e: a new Element header with a new
// Children slice holding the same child nodes. Operations modify that
// copied slice and never the original's; every child left in place stays
// reference-equal to the original, which is how structural sharing
// (spec §8.3) is implemented.
func (e *Element) Clone() *Element {
	out := *e
	out.Children = append([]Node(nil), e.Children...)
	return &out
}

// Leaf is a node with no children: text, image, breaks, bookmarks, field
// codes, and similar markers. Text holds the string payload for KindText
// nodes; Props holds the kind-specific property record for the rest
// (*ImageProps, *FieldProps, ...).
type Leaf struct {
	ID    string
	Kind  Kind
	Text  string
	Props any
}

func (l *Leaf) NodeID() string { return l.ID }
func (l *Leaf) NodeKind() Kind { return l.Kind }

func (l *Leaf) Clone() *Leaf {
	out := *l
	return &out
}

// IsElement reports whether n is an *Element.
func IsElement(n Node) bool {
	_, ok := n.(*Element)
	return ok
}

// IsLeaf reports whether n is a *Leaf.
func IsLeaf(n Node) bool {
	_, ok := n.(*Leaf)
	return ok
}

// Children returns n's children, or nil if n is a leaf.
func Children(n Node) []Node {
	if e, ok := n.(*Element); ok {
		return e.Children
	}
	return nil
}

// PathOutOfBoundsError is returned when a path addresses a child index
// that does not exist.
type PathOutOfBoundsError struct {
	Path Path
}

func (e *PathOutOfBoundsError) Error() string {
	return fmt.Sprintf("doctree: path %v out of bounds", []int(e.Path))
}

// TraverseIntoLeafError is returned when a path tries to descend into a
// leaf node's (nonexistent) children.
type TraverseIntoLeafError struct {
	Path Path
}

func (e *TraverseIntoLeafError) Error() string {
	return fmt.Sprintf("doctree: path %v traverses into a leaf", []int(e.Path))
}

// GetNodeAtPath walks root following path and returns the node it
// addresses, or root itself for the empty path.
func GetNodeAtPath(root Node, path Path) (Node, error) {
	cur := root
	for depth, idx := range path {
		el, ok := cur.(*Element)
		if !ok {
			return nil, &TraverseIntoLeafError{Path: path[:depth]}
		}
		if idx < 0 || idx >= len(el.Children) {
			return nil, &PathOutOfBoundsError{Path: path[:depth+1]}
		}
		cur = el.Children[idx]
	}
	return cur, nil
}

// TraverseNodes walks the tree in depth-first pre-order, lazily yielding
// every (node, path) pair including the root at the empty path.
func TraverseNodes(root Node) iter.Seq2[Node, Path] {
	return func(yield func(Node, Path) bool) {
		var walk func(n Node, p Path) bool
		walk = func(n Node, p Path) bool {
			if !yield(n, p) {
				return false
			}
			for i, child := range Children(n) {
				if !walk(child, Child(p, i)) {
					return false
				}
			}
			return true
		}
		walk(root, Path{})
	}
}

// TraverseTexts yields every *Leaf with KindText, in document order.
func TraverseTexts(root Node) iter.Seq2[*Leaf, Path] {
	return func(yield func(*Leaf, Path) bool) {
		for n, p := range TraverseNodes(root) {
			if leaf, ok := n.(*Leaf); ok && leaf.Kind == KindText {
				if !yield(leaf, p) {
					return
				}
			}
		}
	}
}

// TraverseByType yields every node of the given kind, in document order.
func TraverseByType(root Node, kind Kind) iter.Seq2[Node, Path] {
	return func(yield func(Node, Path) bool) {
		for n, p := range TraverseNodes(root) {
			if n.NodeKind() == kind {
				if !yield(n, p) {
					return
				}
			}
		}
	}
}
