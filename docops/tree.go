package docops

import "github.com/neronapier/jpoffice/doctree"

// updateAt rewrites the node at path by calling transform on it, cloning
// every ancestor on the way back up so that every subtree not on path is
// reused by reference (spec §8.3). The empty path addresses root itself.
func updateAt(root doctree.Node, path doctree.Path, transform func(doctree.Node) (doctree.Node, error)) (doctree.Node, error) {
	if len(path) == 0 {
		return transform(root)
	}
	el, ok := root.(*doctree.Element)
	if !ok {
		return nil, &PathOutOfBoundsError{Path: path}
	}
	idx := path[0]
	if idx < 0 || idx >= len(el.Children) {
		return nil, &PathOutOfBoundsError{Path: path}
	}
	newChild, err := updateAt(el.Children[idx], path[1:], transform)
	if err != nil {
		return nil, err
	}
	clone := el.Clone()
	clone.Children[idx] = newChild
	return clone, nil
}

// getAt resolves path against root without modifying anything.
func getAt(root doctree.Node, path doctree.Path) (doctree.Node, error) {
	return doctree.GetNodeAtPath(root, path)
}

// editChildren rewrites the children of the element at parentPath by
// calling edit on its current children slice, sharing every other
// subtree in the tree by reference.
func editChildren(root doctree.Node, parentPath doctree.Path, edit func(children []doctree.Node) ([]doctree.Node, error)) (doctree.Node, error) {
	return updateAt(root, parentPath, func(n doctree.Node) (doctree.Node, error) {
		el, ok := n.(*doctree.Element)
		if !ok {
			return nil, &WrongNodeKindError{Path: parentPath, Kind: n.NodeKind()}
		}
		newChildren, err := edit(el.Children)
		if err != nil {
			return nil, err
		}
		clone := *el
		clone.Children = newChildren
		return &clone, nil
	})
}

// insertAt splices node into root at path: path's parent gains a new
// child at path's last index, shifting any existing child there (and
// later) up by one.
func insertAt(root doctree.Node, path doctree.Path, node doctree.Node) (doctree.Node, error) {
	if len(path) == 0 {
		return nil, &PathOutOfBoundsError{Path: path}
	}
	parentPath := doctree.Parent(path)
	idx := path[len(path)-1]
	return editChildren(root, parentPath, func(children []doctree.Node) ([]doctree.Node, error) {
		if idx < 0 || idx > len(children) {
			return nil, &PathOutOfBoundsError{Path: path}
		}
		out := make([]doctree.Node, 0, len(children)+1)
		out = append(out, children[:idx]...)
		out = append(out, node)
		out = append(out, children[idx:]...)
		return out, nil
	})
}

// removeAt splices the node at path out of its parent's children and
// returns the new root plus the removed node.
func removeAt(root doctree.Node, path doctree.Path) (doctree.Node, doctree.Node, error) {
	if len(path) == 0 {
		return nil, nil, &PathOutOfBoundsError{Path: path}
	}
	parentPath := doctree.Parent(path)
	idx := path[len(path)-1]
	var removed doctree.Node
	newRoot, err := editChildren(root, parentPath, func(children []doctree.Node) ([]doctree.Node, error) {
		if idx < 0 || idx >= len(children) {
			return nil, &PathOutOfBoundsError{Path: path}
		}
		removed = children[idx]
		out := make([]doctree.Node, 0, len(children)-1)
		out = append(out, children[:idx]...)
		out = append(out, children[idx+1:]...)
		return out, nil
	})
	if err != nil {
		return nil, nil, err
	}
	return newRoot, removed, nil
}
