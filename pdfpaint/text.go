// jpoffice - a word-processor engine and PDF export pipeline

// Package pdfpaint implements the painters of the PDF export pipeline
// (spec.md §4.L): text, table, and shape painters that turn a
// pdflayout.Result into pdfcontent operator streams. Painters only emit
// operators, leaving object assembly (fonts, images, resources) to
// pdfexport.
package pdfpaint

import (
	"strings"
	"unicode"

	"github.com/neronapier/jpoffice/doctree"
	"github.com/neronapier/jpoffice/pdfcontent"
	"github.com/neronapier/jpoffice/pdflayout"
	"github.com/neronapier/jpoffice/pdfobj"
)

// PxToPt converts a layout-engine device pixel (96 DPI) to a PDF point
// (72 DPI), per spec.md §4.I-M's coordinate rule.
func PxToPt(px float64) float64 { return px * 0.75 }

// PageY flips a top-left-origin canvas Y coordinate into PDF's
// bottom-left-origin page space.
func PageY(pageHeightPt, canvasYPt float64) float64 { return pageHeightPt - canvasYPt }

// FontResolver maps a fragment's resolved style to the resource name and
// CID-ness the text painter needs to choose ShowText vs ShowTextHex.
type FontResolver interface {
	// Resolve returns the content-stream resource name for fragment
	// style/text, and whether that font is a CID font (so codepoints must
	// be shown as hex GIDs rather than literal bytes).
	Resolve(style *doctree.RunProps, text string) (name pdfobj.Name, isCID bool)
	// Encode maps text to the sequence of codes ShowTextHex should emit
	// for a CID font (one CID per rune, in the orchestrator's final pass);
	// for pass 1 (provisional) it may return the identity mapping.
	Encode(style *doctree.RunProps, text string) []uint16
}

const (
	superSubScale = 0.65
	superShiftFrac = 0.33
	subShiftFrac   = -0.14
)

// PaintText renders one page's paragraph blocks' lines into b, using
// fonts to resolve fragment fonts. pageHeightPt is the page height in PDF
// points, used to flip the Y axis.
func PaintText(b *pdfcontent.Builder, blocks []*pdflayout.Block, pageHeightPt float64, fonts FontResolver) {
	for _, block := range blocks {
		if block.Kind != pdflayout.BlockParagraph {
			continue
		}
		for _, line := range block.Lines {
			paintLine(b, line, pageHeightPt, fonts)
		}
	}
}

func paintLine(b *pdfcontent.Builder, line *pdflayout.Line, pageHeightPt float64, fonts FontResolver) {
	for _, frag := range line.Fragments {
		paintFragment(b, frag, pageHeightPt, fonts)
	}
}

func paintFragment(b *pdfcontent.Builder, frag *pdflayout.Fragment, pageHeightPt float64, fonts FontResolver) {
	style := frag.Style
	if style == nil {
		style = &doctree.RunProps{}
	}

	text := frag.Text
	if style.AllCaps {
		text = strings.ToUpper(text)
	}
	if isRTL(text) {
		text = reverseRunes(text)
	}

	sizePt := style.SizeHalfPoints.Points()
	if sizePt == 0 {
		sizePt = 10
	}
	yShift := 0.0
	switch style.VertAlign {
	case "superscript":
		yShift = sizePt * superShiftFrac
		sizePt *= superSubScale
	case "subscript":
		yShift = sizePt * subShiftFrac
		sizePt *= superSubScale
	}

	x := PxToPt(frag.Rect.X)
	y := PageY(pageHeightPt, PxToPt(frag.Rect.Y+frag.Rect.H)) + yShift

	if style.HighlightHex != "" {
		paintHighlight(b, frag, pageHeightPt, style.HighlightHex)
	}

	r, g, bl := hexToRGB(style.ColorHex)
	name, isCID := fonts.Resolve(style, text)

	b.Save()
	b.BeginText()
	b.SetFont(name, sizePt)
	b.SetFillColorRGB(r, g, bl)
	b.MoveText(x, y)
	if isCID {
		b.ShowTextHex(fonts.Encode(style, text))
	} else {
		b.ShowText(text)
	}
	b.EndText()

	if style.Underline != "" && style.Underline != "none" {
		paintUnderline(b, frag, pageHeightPt, sizePt, style.Underline == "double", r, g, bl)
	}
	if style.Strike || style.DoubleStrike {
		paintStrike(b, frag, pageHeightPt, sizePt, style.DoubleStrike, r, g, bl)
	}
	b.Restore()
}

func paintHighlight(b *pdfcontent.Builder, frag *pdflayout.Fragment, pageHeightPt float64, hex string) {
	r, g, bl := hexToRGB(hex)
	x := PxToPt(frag.Rect.X)
	w := PxToPt(frag.Rect.W)
	h := PxToPt(frag.Rect.H)
	y := PageY(pageHeightPt, PxToPt(frag.Rect.Y+frag.Rect.H))
	b.Save()
	b.SetFillColorRGB(r, g, bl)
	b.Rect(x, y, w, h)
	b.Fill()
	b.Restore()
}

// underlineOffsetFrac and strikeOffsetFrac are fractions of the font size
// below/above the baseline where the stroked line is drawn.
const (
	underlineOffsetFrac = 0.12
	strikeOffsetFrac    = 0.3
	doubleLineGapFrac   = 0.08
)

func paintUnderline(b *pdfcontent.Builder, frag *pdflayout.Fragment, pageHeightPt, sizePt float64, double bool, r, g, bl float64) {
	x0 := PxToPt(frag.Rect.X)
	x1 := x0 + PxToPt(frag.Rect.W)
	baseY := PageY(pageHeightPt, PxToPt(frag.Rect.Y+frag.Rect.H))
	y := baseY - sizePt*underlineOffsetFrac
	drawLine(b, x0, y, x1, y, r, g, bl)
	if double {
		y2 := y - sizePt*doubleLineGapFrac
		drawLine(b, x0, y2, x1, y2, r, g, bl)
	}
}

func paintStrike(b *pdfcontent.Builder, frag *pdflayout.Fragment, pageHeightPt, sizePt float64, double bool, r, g, bl float64) {
	x0 := PxToPt(frag.Rect.X)
	x1 := x0 + PxToPt(frag.Rect.W)
	baseY := PageY(pageHeightPt, PxToPt(frag.Rect.Y+frag.Rect.H))
	y := baseY + sizePt*strikeOffsetFrac
	drawLine(b, x0, y, x1, y, r, g, bl)
	if double {
		y2 := y + sizePt*doubleLineGapFrac
		drawLine(b, x0, y2, x1, y2, r, g, bl)
	}
}

func drawLine(b *pdfcontent.Builder, x0, y0, x1, y1, r, g, bl float64) {
	b.SetStrokeColorRGB(r, g, bl)
	b.SetLineWidth(0.75)
	b.MoveTo(x0, y0)
	b.LineTo(x1, y1)
	b.Stroke()
}

func hexToRGB(hex string) (r, g, b float64) {
	hex = strings.TrimPrefix(hex, "#")
	if len(hex) != 6 {
		return 0, 0, 0
	}
	v := func(s string) float64 {
		var n int
		for _, c := range s {
			n <<= 4
			switch {
			case c >= '0' && c <= '9':
				n |= int(c - '0')
			case c >= 'a' && c <= 'f':
				n |= int(c-'a') + 10
			case c >= 'A' && c <= 'F':
				n |= int(c-'A') + 10
			}
		}
		return float64(n) / 255
	}
	return v(hex[0:2]), v(hex[2:4]), v(hex[4:6])
}

// isRTL reports whether s contains any Hebrew or Arabic codepoints,
// triggering visual-order glyph reversal (spec.md §4.L).
func isRTL(s string) bool {
	for _, r := range s {
		if unicode.Is(unicode.Hebrew, r) || unicode.Is(unicode.Arabic, r) {
			return true
		}
	}
	return false
}

func reverseRunes(s string) string {
	rr := []rune(s)
	for i, j := 0, len(rr)-1; i < j; i, j = i+1, j-1 {
		rr[i], rr[j] = rr[j], rr[i]
	}
	return string(rr)
}
