package doctree

import "testing"

func TestPathCompare(t *testing.T) {
	cases := []struct {
		a, b Path
		want int
	}{
		{Path{}, Path{}, 0},
		{Path{0}, Path{1}, -1},
		{Path{1}, Path{0}, 1},
		{Path{0, 1}, Path{0, 1}, 0},
		{Path{0}, Path{0, 1}, -1},
		{Path{0, 1}, Path{0}, 1},
	}
	for _, c := range cases {
		if got := Compare(c.a, c.b); got != c.want {
			t.Errorf("Compare(%v, %v) = %d, want %d", c.a, c.b, got, c.want)
		}
	}
}

func TestIsAncestor(t *testing.T) {
	if !IsAncestor(Path{0}, Path{0, 1}) {
		t.Error("expected [0] to be an ancestor of [0,1]")
	}
	if IsAncestor(Path{0, 1}, Path{0, 1}) {
		t.Error("a path is not its own strict ancestor")
	}
	if IsAncestor(Path{1}, Path{0, 1}) {
		t.Error("[1] is not an ancestor of [0,1]")
	}
}

func TestTransformAfterInsertShiftsSiblingsAtOrAfter(t *testing.T) {
	// inserting at [0,2] shifts [0,2] and [0,3] but not [0,1] or [1,0].
	got := TransformAfterInsert(Path{0, 2}, Path{0, 2})
	if !got.Equals(Path{0, 3}) {
		t.Errorf("got %v, want [0,3]", got)
	}
	got = TransformAfterInsert(Path{0, 1}, Path{0, 2})
	if !got.Equals(Path{0, 1}) {
		t.Errorf("got %v, want [0,1] unchanged", got)
	}
	got = TransformAfterInsert(Path{1, 0}, Path{0, 2})
	if !got.Equals(Path{1, 0}) {
		t.Errorf("got %v, want [1,0] unchanged", got)
	}
	// descendants of the shifted sibling shift too.
	got = TransformAfterInsert(Path{0, 2, 5}, Path{0, 2})
	if !got.Equals(Path{0, 3, 5}) {
		t.Errorf("got %v, want [0,3,5]", got)
	}
}

func TestTransformAfterRemoveDropsSubtree(t *testing.T) {
	_, ok := TransformAfterRemove(Path{0, 2}, Path{0, 2})
	if ok {
		t.Error("removing a path's own node must report ok=false")
	}
	_, ok = TransformAfterRemove(Path{0, 2, 1}, Path{0, 2})
	if ok {
		t.Error("removing an ancestor must drop descendants too")
	}
	got, ok := TransformAfterRemove(Path{0, 3}, Path{0, 2})
	if !ok || !got.Equals(Path{0, 2}) {
		t.Errorf("got (%v, %v), want ([0,2], true)", got, ok)
	}
	got, ok = TransformAfterRemove(Path{0, 1}, Path{0, 2})
	if !ok || !got.Equals(Path{0, 1}) {
		t.Errorf("got (%v, %v), want ([0,1], true) unchanged", got, ok)
	}
}

func TestTransformInsertRemoveRoundTrip(t *testing.T) {
	// a path unaffected by either transform survives both unchanged,
	// and a path shifted by insert is shifted back by removing the
	// same slot (spec §8.2's soundness property, restricted to the
	// pure-path layer).
	at := Path{0, 2}
	p := Path{0, 5}
	shifted := TransformAfterInsert(p, at)
	back, ok := TransformAfterRemove(shifted, at)
	if !ok || !back.Equals(p) {
		t.Errorf("round trip failed: got (%v, %v), want (%v, true)", back, ok, p)
	}
}

func TestRangeNormalizeAndCollapse(t *testing.T) {
	a := Point{Path: Path{0, 0}, Offset: 5}
	b := Point{Path: Path{0, 0}, Offset: 2}
	r := Range{Anchor: a, Focus: b}
	if r.IsCollapsed() {
		t.Error("distinct points must not be collapsed")
	}
	norm := r.Normalize()
	if !norm.Anchor.Equals(b) || !norm.Focus.Equals(a) {
		t.Errorf("Normalize did not reorder anchor<=focus: %+v", norm)
	}
	collapsed := Collapse(a)
	if !collapsed.IsCollapsed() {
		t.Error("Collapse must produce a collapsed range")
	}
}

func TestGetNodeAtPathErrors(t *testing.T) {
	leaf := &Leaf{ID: "t1", Kind: KindText, Text: "hi"}
	root := &Element{ID: "r", Kind: KindParagraph, Children: []Node{leaf}}

	if _, err := GetNodeAtPath(root, Path{5}); err == nil {
		t.Error("expected PathOutOfBoundsError for an out-of-range index")
	}
	if _, err := GetNodeAtPath(root, Path{0, 0}); err == nil {
		t.Error("expected TraverseIntoLeafError when descending into a leaf")
	}
	got, err := GetNodeAtPath(root, Path{0})
	if err != nil || got != Node(leaf) {
		t.Errorf("got (%v, %v), want (leaf, nil)", got, err)
	}
}
