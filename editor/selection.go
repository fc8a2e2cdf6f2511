package editor

import (
	"strings"

	"github.com/neronapier/jpoffice/doctree"
)

// IsCollapsed reports whether r has zero width.
func IsCollapsed(r doctree.Range) bool { return r.IsCollapsed() }

// NormalizeSelection orients r so anchor precedes or equals focus.
func NormalizeSelection(r doctree.Range) doctree.Range { return r.Normalize() }

// CollapseSelection returns a zero-width range at p.
func CollapseSelection(p doctree.Point) doctree.Range { return doctree.Collapse(p) }

// CreateRange builds a Range from two points without normalizing; the
// caller's anchor/focus order is preserved so shift-click extension
// feels natural (extending backward keeps the original anchor).
func CreateRange(anchor, focus doctree.Point) doctree.Range {
	return doctree.Range{Anchor: anchor, Focus: focus}
}

// GetSelectedText implements spec.md §4.H: it walks every text leaf
// between r's normalized anchor and focus, slicing the first and last
// leaf by their offsets and inserting "\n" whenever the paragraph-prefix
// changes between consecutive leaves. Resolution failures (e.g. a stale
// path after an external mutation) yield "" rather than panicking or
// returning an error, per spec.
//
// Open question resolved (spec.md §9): inline non-text nodes (images,
// fields, breaks) between two text leaves of the *same* paragraph
// contribute no separator of their own — only a paragraph-prefix change
// inserts "\n". This matches the literal scenarios in spec.md §8, which
// only pin behavior across paragraph boundaries.
func GetSelectedText(doc *doctree.Document, r doctree.Range) string {
	norm := r.Normalize()
	_, startPath, ok := resolveTextLeaf(doc, norm.Anchor.Path)
	if !ok {
		return ""
	}
	_, endPath, ok := resolveTextLeaf(doc, norm.Focus.Path)
	if !ok {
		return ""
	}

	var b strings.Builder
	var prevParagraph doctree.Path
	havePrev := false

	for leaf, path := range doctree.TraverseTexts(doc.Root) {
		if doctree.Compare(path, startPath) < 0 || doctree.Compare(path, endPath) > 0 {
			continue
		}
		paragraphPath := paragraphPrefix(doc, path)
		if havePrev && !paragraphPath.Equals(prevParagraph) {
			b.WriteByte('\n')
		}
		havePrev = true
		prevParagraph = paragraphPath

		lo, hi := 0, len(leaf.Text)
		isStart, isEnd := path.Equals(startPath), path.Equals(endPath)
		if isStart {
			lo = clampOffset(norm.Anchor.Offset, len(leaf.Text))
		}
		if isEnd {
			hi = clampOffset(norm.Focus.Offset, len(leaf.Text))
		}
		if lo > hi {
			lo = hi
		}
		b.WriteString(leaf.Text[lo:hi])
	}
	return b.String()
}

func clampOffset(offset, max int) int {
	if offset < 0 {
		return 0
	}
	if offset > max {
		return max
	}
	return offset
}

func resolveTextLeaf(doc *doctree.Document, path doctree.Path) (*doctree.Leaf, doctree.Path, bool) {
	n, err := doctree.GetNodeAtPath(doc.Root, path)
	if err != nil {
		return nil, nil, false
	}
	leaf, ok := n.(*doctree.Leaf)
	if !ok || leaf.Kind != doctree.KindText {
		return nil, nil, false
	}
	return leaf, path, true
}

// paragraphPrefix returns the prefix of path up to and including its
// nearest KindParagraph ancestor, walking up from the full path rather
// than assuming a fixed nesting depth, since document->body->section-
// >paragraph->run->text puts the paragraph at depth 3, not any depth a
// text leaf itself might sit at (a leaf can be a direct paragraph child
// or nested one level deeper inside a run). A path with no paragraph
// ancestor (e.g. a malformed or non-standard tree) falls back to the
// full path, so every leaf still gets a stable, if not paragraph-scoped,
// grouping key.
func paragraphPrefix(doc *doctree.Document, path doctree.Path) doctree.Path {
	for depth := len(path) - 1; depth >= 0; depth-- {
		prefix := path[:depth]
		n, err := doctree.GetNodeAtPath(doc.Root, prefix)
		if err != nil {
			continue
		}
		if el, ok := n.(*doctree.Element); ok && el.Kind == doctree.KindParagraph {
			return prefix.Clone()
		}
	}
	return path.Clone()
}
