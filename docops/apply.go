package docops

import "github.com/neronapier/jpoffice/doctree"

// Apply returns a new Document reflecting op applied to doc. doc itself
// is never mutated; on error, doc is returned unchanged alongside the
// error (spec.md §4.D: "failures... must not partially mutate state").
// SetSelection is accepted for symmetry with the other eight operations
// but never touches the tree: the editor coordinator is responsible for
// threading selection state, this function only ever rewrites Root.
func Apply(doc *doctree.Document, op Operation) (*doctree.Document, error) {
	switch o := op.(type) {
	case InsertText:
		return applyInsertText(doc, o)
	case DeleteText:
		return applyDeleteText(doc, o)
	case InsertNode:
		return applyInsertNode(doc, o)
	case RemoveNode:
		return applyRemoveNode(doc, o)
	case SplitNode:
		return applySplitNode(doc, o)
	case MergeNode:
		return applyMergeNode(doc, o)
	case MoveNode:
		return applyMoveNode(doc, o)
	case SetProperties:
		return applySetProperties(doc, o)
	case SetSelection:
		return doc, nil
	default:
		return doc, &WrongNodeKindError{}
	}
}

func withRoot(doc *doctree.Document, newRoot doctree.Node) *doctree.Document {
	el, ok := newRoot.(*doctree.Element)
	if !ok {
		// Root is always the document element; callers never hand a
		// transform that replaces it with a leaf.
		panic("docops: document root replaced with a non-element node")
	}
	out := doc.Clone()
	out.Root = el
	return out
}

func applyInsertText(doc *doctree.Document, o InsertText) (*doctree.Document, error) {
	newRoot, err := updateAt(doc.Root, o.Path, func(n doctree.Node) (doctree.Node, error) {
		leaf, ok := n.(*doctree.Leaf)
		if !ok || leaf.Kind != doctree.KindText {
			return nil, &WrongNodeKindError{Path: o.Path, Kind: n.NodeKind()}
		}
		if o.Offset < 0 || o.Offset > len(leaf.Text) {
			return nil, &PathOutOfBoundsError{Path: o.Path}
		}
		clone := leaf.Clone()
		clone.Text = leaf.Text[:o.Offset] + o.Text + leaf.Text[o.Offset:]
		return clone, nil
	})
	if err != nil {
		return doc, err
	}
	return withRoot(doc, newRoot), nil
}

func applyDeleteText(doc *doctree.Document, o DeleteText) (*doctree.Document, error) {
	newRoot, err := updateAt(doc.Root, o.Path, func(n doctree.Node) (doctree.Node, error) {
		leaf, ok := n.(*doctree.Leaf)
		if !ok || leaf.Kind != doctree.KindText {
			return nil, &WrongNodeKindError{Path: o.Path, Kind: n.NodeKind()}
		}
		end := o.Offset + len(o.Text)
		if o.Offset < 0 || end > len(leaf.Text) {
			return nil, &PathOutOfBoundsError{Path: o.Path}
		}
		clone := leaf.Clone()
		clone.Text = leaf.Text[:o.Offset] + leaf.Text[end:]
		return clone, nil
	})
	if err != nil {
		return doc, err
	}
	return withRoot(doc, newRoot), nil
}

func applyInsertNode(doc *doctree.Document, o InsertNode) (*doctree.Document, error) {
	newRoot, err := insertAt(doc.Root, o.Path, o.Node)
	if err != nil {
		return doc, err
	}
	return withRoot(doc, newRoot), nil
}

func applyRemoveNode(doc *doctree.Document, o RemoveNode) (*doctree.Document, error) {
	newRoot, _, err := removeAt(doc.Root, o.Path)
	if err != nil {
		return doc, err
	}
	return withRoot(doc, newRoot), nil
}

func applySplitNode(doc *doctree.Document, o SplitNode) (*doctree.Document, error) {
	node, err := getAt(doc.Root, o.Path)
	if err != nil {
		return doc, err
	}

	var first, second doctree.Node
	switch n := node.(type) {
	case *doctree.Leaf:
		if o.Position < 0 || o.Position > len(n.Text) {
			return doc, &PathOutOfBoundsError{Path: o.Path}
		}
		f := n.Clone()
		f.Text = n.Text[:o.Position]
		s := n.Clone()
		s.Text = n.Text[o.Position:]
		if o.Properties != nil {
			s.Props = o.Properties
		}
		first, second = f, s
	case *doctree.Element:
		if o.Position < 0 || o.Position > len(n.Children) {
			return doc, &PathOutOfBoundsError{Path: o.Path}
		}
		f := n.Clone()
		f.Children = append([]doctree.Node(nil), n.Children[:o.Position]...)
		s := n.Clone()
		s.Children = append([]doctree.Node(nil), n.Children[o.Position:]...)
		if o.Properties != nil {
			s.Props = o.Properties
		}
		first, second = f, s
	default:
		return doc, &WrongNodeKindError{Path: o.Path, Kind: node.NodeKind()}
	}

	newRoot, err := updateAt(doc.Root, o.Path, func(doctree.Node) (doctree.Node, error) {
		return first, nil
	})
	if err != nil {
		return doc, err
	}
	insertPath := doctree.Sibling(o.Path, o.Path[len(o.Path)-1]+1)
	newRoot, err = insertAt(newRoot, insertPath, second)
	if err != nil {
		return doc, err
	}
	return withRoot(doc, newRoot), nil
}

func applyMergeNode(doc *doctree.Document, o MergeNode) (*doctree.Document, error) {
	if len(o.Path) == 0 {
		return doc, &NoPreviousSiblingError{Path: o.Path}
	}
	idx := o.Path[len(o.Path)-1]
	if idx == 0 {
		return doc, &NoPreviousSiblingError{Path: o.Path}
	}
	parentPath := doctree.Parent(o.Path)
	parentNode, err := getAt(doc.Root, parentPath)
	if err != nil {
		return doc, err
	}
	parent, ok := parentNode.(*doctree.Element)
	if !ok || idx >= len(parent.Children) {
		return doc, &PathOutOfBoundsError{Path: o.Path}
	}
	prev := parent.Children[idx-1]
	cur := parent.Children[idx]
	if prev.NodeKind() != cur.NodeKind() {
		return doc, &MergeMismatchError{Path: o.Path, A: prev.NodeKind(), B: cur.NodeKind()}
	}

	var merged doctree.Node
	switch p := prev.(type) {
	case *doctree.Leaf:
		c := cur.(*doctree.Leaf)
		m := p.Clone()
		m.Text = p.Text + c.Text
		merged = m
	case *doctree.Element:
		c := cur.(*doctree.Element)
		m := p.Clone()
		m.Children = append(append([]doctree.Node(nil), p.Children...), c.Children...)
		merged = m
	default:
		return doc, &WrongNodeKindError{Path: o.Path, Kind: prev.NodeKind()}
	}

	newRoot, err := editChildren(doc.Root, parentPath, func(children []doctree.Node) ([]doctree.Node, error) {
		out := make([]doctree.Node, 0, len(children)-1)
		out = append(out, children[:idx-1]...)
		out = append(out, merged)
		out = append(out, children[idx+1:]...)
		return out, nil
	})
	if err != nil {
		return doc, err
	}
	return withRoot(doc, newRoot), nil
}

func applyMoveNode(doc *doctree.Document, o MoveNode) (*doctree.Document, error) {
	newRoot, removed, err := removeAt(doc.Root, o.Path)
	if err != nil {
		return doc, err
	}
	adjusted, ok := doctree.TransformAfterRemove(o.NewPath, o.Path)
	if !ok {
		return doc, &PathOutOfBoundsError{Path: o.NewPath}
	}
	newRoot, err = insertAt(newRoot, adjusted, removed)
	if err != nil {
		return doc, err
	}
	return withRoot(doc, newRoot), nil
}

func applySetProperties(doc *doctree.Document, o SetProperties) (*doctree.Document, error) {
	newRoot, err := updateAt(doc.Root, o.Path, func(n doctree.Node) (doctree.Node, error) {
		switch node := n.(type) {
		case *doctree.Element:
			clone := node.Clone()
			merged, err := mergeProperties(clone.Props, o.Properties)
			if err != nil {
				return nil, err
			}
			clone.Props = merged
			return clone, nil
		case *doctree.Leaf:
			clone := node.Clone()
			merged, err := mergeProperties(clone.Props, o.Properties)
			if err != nil {
				return nil, err
			}
			clone.Props = merged
			return clone, nil
		default:
			return nil, &WrongNodeKindError{Path: o.Path, Kind: n.NodeKind()}
		}
	})
	if err != nil {
		return doc, err
	}
	return withRoot(doc, newRoot), nil
}
