package pdfexport

import (
	"github.com/neronapier/jpoffice/doctree"
	"github.com/neronapier/jpoffice/pdflayout"
)

// Layouter produces the paginated layout for a document. This mirrors
// spec.md §6's external "layout engine contract": jpoffice consumes a
// LayoutResult but does not implement pagination, line-breaking, or
// table/row sizing itself. ExportToPdfWithLayout lets a caller plug in a
// real layout engine; ExportToPdf runs defaultLayout below instead.
type Layouter func(doc *doctree.Document) (*pdflayout.Result, error)

const (
	pageWidthPx  = 816  // US Letter, 8.5in @ 96dpi
	pageHeightPx = 1056 // 11in @ 96dpi
	marginPx     = 96   // 1in margins
	lineHeightPx = 20
	charWidthPx  = 8
)

// defaultLayout is a minimal, single-page-per-overflow layout used when
// no Layouter is supplied: each top-level paragraph becomes one block
// with one line (text is never broken across lines), and a new page
// starts once the next line would cross the bottom margin. It exists so exportToPdf is usable standalone and so the
// painters/orchestrator have a real LayoutResult to drive in tests,
// not to replace a real layout engine.
func defaultLayout(doc *doctree.Document) (*pdflayout.Result, error) {
	res := &pdflayout.Result{Version: 1}
	page := newPage()
	y := float64(marginPx)

	for _, child := range doc.Body().Children {
		sec, ok := child.(*doctree.Element)
		if !ok {
			continue
		}
		for _, pchild := range sec.Children {
			para, ok := pchild.(*doctree.Element)
			if !ok || para.Kind != doctree.KindParagraph {
				continue
			}
			if y+lineHeightPx > pageHeightPx-marginPx {
				res.Pages = append(res.Pages, page)
				page = newPage()
				y = float64(marginPx)
			}
			block, lineH := layoutParagraph(para, y)
			page.Blocks = append(page.Blocks, block)
			y += lineH
		}
	}
	res.Pages = append(res.Pages, page)
	return res, nil
}

func newPage() *pdflayout.Page {
	return &pdflayout.Page{
		Width:  pageWidthPx,
		Height: pageHeightPx,
		ContentArea: pdflayout.Rect{
			X: marginPx, Y: marginPx,
			W: pageWidthPx - 2*marginPx, H: pageHeightPx - 2*marginPx,
		},
	}
}

func layoutParagraph(para *doctree.Element, y float64) (*pdflayout.Block, float64) {
	line := &pdflayout.Line{Rect: pdflayout.Rect{X: marginPx, Y: y, W: pageWidthPx - 2*marginPx, H: lineHeightPx}}
	x := float64(marginPx)
	props, _ := para.Props.(*doctree.ParagraphProps)

	for n, path := range doctree.TraverseTexts(para) {
		runPath := path
		if len(runPath) > 0 {
			runPath = runPath[:len(runPath)-1]
		}
		text := n.Text
		w := float64(len(text) * charWidthPx)
		var style *doctree.RunProps
		if parent := findRunAncestor(para, path); parent != nil {
			style, _ = parent.Props.(*doctree.RunProps)
		}
		line.Fragments = append(line.Fragments, &pdflayout.Fragment{
			Text:    text,
			Rect:    pdflayout.Rect{X: x, Y: y, W: w, H: lineHeightPx},
			RunPath: runPath,
			Style:   style,
		})
		x += w
	}

	block := &pdflayout.Block{
		Kind:  pdflayout.BlockParagraph,
		Rect:  pdflayout.Rect{X: marginPx, Y: y, W: pageWidthPx - 2*marginPx, H: lineHeightPx},
		Lines: []*pdflayout.Line{line},
	}
	if props != nil && props.OutlineLevel > 0 {
		block.OutlineLevel = props.OutlineLevel
		block.OutlineTitle = paragraphText(para)
	}
	return block, lineHeightPx
}

func paragraphText(para *doctree.Element) string {
	var s string
	for n := range doctree.TraverseTexts(para) {
		s += n.Text
	}
	return s
}

func findRunAncestor(root *doctree.Element, path doctree.Path) *doctree.Element {
	if len(path) == 0 {
		return nil
	}
	n, err := doctree.GetNodeAtPath(root, path[:len(path)-1])
	if err != nil {
		return nil
	}
	if el, ok := n.(*doctree.Element); ok && el.Kind == doctree.KindRun {
		return el
	}
	return nil
}
