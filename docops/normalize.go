package docops

import (
	"fmt"

	"github.com/neronapier/jpoffice/doctree"
)

// maxNormalizeIterations bounds the fixed-point loop so a bug in a rule
// (one that keeps "fixing" the same violation) fails loudly instead of
// hanging; 10000 is far beyond any document this engine is expected to
// normalize in one batch.
const maxNormalizeIterations = 10000

// Normalize runs the five structural rules (spec.md §4.E) against doc
// until none applies, returning the fixed-point document and the
// operations applied to reach it (for history/undo bookkeeping).
func Normalize(doc *doctree.Document) (*doctree.Document, []Operation, error) {
	var ops []Operation
	cur := doc
	for i := 0; ; i++ {
		if i >= maxNormalizeIterations {
			return doc, nil, fmt.Errorf("docops: normalization did not reach a fixed point after %d steps", maxNormalizeIterations)
		}
		op, found := findViolation(cur)
		if !found {
			return cur, ops, nil
		}
		next, err := Apply(cur, op)
		if err != nil {
			return doc, nil, err
		}
		ops = append(ops, op)
		cur = next
	}
}

// NeedsNormalization reports whether Normalize would produce any
// operations for doc.
func NeedsNormalization(doc *doctree.Document) bool {
	_, found := findViolation(doc)
	return found
}

// findViolation finds the first violation of one of the five structural
// rules and returns the single operation that fixes it. It scans doc in
// document order twice: the first pass checks rules 1 through 3 at each
// node, the second rules 4 and 5, so a rule 1-3 violation anywhere in
// the tree is reported before any rule 4-5 violation (rule numbering as
// in spec.md §4.E).
func findViolation(doc *doctree.Document) (Operation, bool) {
	for n, path := range doctree.TraverseNodes(doc.Root) {
		el, ok := n.(*doctree.Element)
		if !ok {
			continue
		}
		switch el.Kind {
		case doctree.KindTableCell:
			if len(el.Children) == 0 {
				return InsertNode{Path: doctree.Child(path, 0), Node: doctree.NewParagraph(doc, nil)}, true
			}
		case doctree.KindParagraph:
			if len(el.Children) == 0 {
				return InsertNode{Path: doctree.Child(path, 0), Node: doctree.NewRun(doc, nil, "")}, true
			}
		case doctree.KindRun:
			if op, found := adjacentTextMerge(el, path); found {
				return op, true
			}
		}
	}

	for n, path := range doctree.TraverseNodes(doc.Root) {
		el, ok := n.(*doctree.Element)
		if !ok || el.Kind != doctree.KindParagraph {
			continue
		}
		if op, found := emptyRunRemoval(el, path); found {
			return op, true
		}
		if op, found := adjacentRunMerge(el, path); found {
			return op, true
		}
	}

	return nil, false
}

// adjacentTextMerge implements rule 3: adjacent text leaves inside a run
// merge into one.
func adjacentTextMerge(run *doctree.Element, path doctree.Path) (Operation, bool) {
	for i := 0; i+1 < len(run.Children); i++ {
		a, aok := run.Children[i].(*doctree.Leaf)
		b, bok := run.Children[i+1].(*doctree.Leaf)
		if aok && bok && a.Kind == doctree.KindText && b.Kind == doctree.KindText {
			return MergeNode{Path: doctree.Child(path, i+1), Position: len(a.Text)}, true
		}
	}
	return nil, false
}

// emptyRunRemoval implements rule 4: empty runs are removed unless they
// are the sole child of their paragraph.
func emptyRunRemoval(paragraph *doctree.Element, path doctree.Path) (Operation, bool) {
	if len(paragraph.Children) <= 1 {
		return nil, false
	}
	for i, child := range paragraph.Children {
		run, ok := child.(*doctree.Element)
		if !ok || run.Kind != doctree.KindRun {
			continue
		}
		if isEmptyRun(run) {
			return RemoveNode{Path: doctree.Child(path, i), Node: child}, true
		}
	}
	return nil, false
}

func isEmptyRun(run *doctree.Element) bool {
	if len(run.Children) != 1 {
		return false
	}
	leaf, ok := run.Children[0].(*doctree.Leaf)
	return ok && leaf.Kind == doctree.KindText && leaf.Text == ""
}

// adjacentRunMerge implements rule 5: adjacent runs with byte-equal
// property records merge into one.
func adjacentRunMerge(paragraph *doctree.Element, path doctree.Path) (Operation, bool) {
	for i := 0; i+1 < len(paragraph.Children); i++ {
		a, aok := paragraph.Children[i].(*doctree.Element)
		b, bok := paragraph.Children[i+1].(*doctree.Element)
		if !aok || !bok || a.Kind != doctree.KindRun || b.Kind != doctree.KindRun {
			continue
		}
		ap, _ := a.Props.(*doctree.RunProps)
		bp, _ := b.Props.(*doctree.RunProps)
		if ap.Equal(bp) {
			return MergeNode{Path: doctree.Child(path, i+1), Position: runTextLen(a)}, true
		}
	}
	return nil, false
}

func runTextLen(run *doctree.Element) int {
	if len(run.Children) == 0 {
		return 0
	}
	if leaf, ok := run.Children[0].(*doctree.Leaf); ok {
		return len(leaf.Text)
	}
	return 0
}
