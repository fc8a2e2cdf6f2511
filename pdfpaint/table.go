package pdfpaint

import (
	"math"

	"github.com/neronapier/jpoffice/pdfcontent"
	"github.com/neronapier/jpoffice/pdflayout"
)

// PaintTable draws a table block's outer border, per-cell shading, and
// per-side cell borders (spec.md §4.L); border widths are eighths of a
// point. Cell paragraph content is painted separately by PaintText over
// each cell's nested blocks.
func PaintTable(b *pdfcontent.Builder, block *pdflayout.Block, pageHeightPt float64, fonts FontResolver) {
	if block.Table == nil {
		return
	}

	x0 := PxToPt(block.Rect.X)
	y0 := PageY(pageHeightPt, PxToPt(block.Rect.Y+block.Rect.H))
	w := PxToPt(block.Rect.W)
	h := PxToPt(block.Rect.H)
	b.Save()
	b.SetStrokeColorRGB(0, 0, 0)
	b.SetLineWidth(1)
	b.Rect(x0, y0, w, h)
	b.Stroke()
	b.Restore()

	for _, row := range block.Table.Rows {
		for _, cell := range row.Cells {
			paintCell(b, cell, pageHeightPt, fonts)
		}
	}
}

func paintCell(b *pdfcontent.Builder, cell *pdflayout.Cell, pageHeightPt float64, fonts FontResolver) {
	x := PxToPt(cell.Rect.X)
	w := PxToPt(cell.Rect.W)
	h := PxToPt(cell.Rect.H)
	y := PageY(pageHeightPt, PxToPt(cell.Rect.Y+cell.Rect.H))

	if cell.Shading != "" {
		r, g, bl := hexToRGB(cell.Shading)
		b.Save()
		b.SetFillColorRGB(r, g, bl)
		b.Rect(x, y, w, h)
		b.Fill()
		b.Restore()
	}

	paintCellBorder(b, cell.Borders.Top, x, y+h, x+w, y+h)
	paintCellBorder(b, cell.Borders.Bottom, x, y, x+w, y)
	paintCellBorder(b, cell.Borders.Left, x, y, x, y+h)
	paintCellBorder(b, cell.Borders.Right, x+w, y, x+w, y+h)

	for _, blk := range cell.Blocks {
		PaintText(b, []*pdflayout.Block{blk}, pageHeightPt, fonts)
		if blk.Kind == pdflayout.BlockTable {
			PaintTable(b, blk, pageHeightPt, fonts)
		}
	}
}

func paintCellBorder(b *pdfcontent.Builder, spec pdflayout.BorderSpec, x0, y0, x1, y1 float64) {
	if spec.Style == "" || spec.Style == "none" || spec.WidthEighths == 0 {
		return
	}
	r, g, bl := hexToRGB(spec.Color)
	b.Save()
	b.SetStrokeColorRGB(r, g, bl)
	b.SetLineWidth(float64(spec.WidthEighths) / 8)
	if spec.Style == "double" {
		dx, dy := perpendicularOffset(x0, y0, x1, y1)
		drawLine(b, x0-dx, y0-dy, x1-dx, y1-dy, r, g, bl)
		drawLine(b, x0+dx, y0+dy, x1+dx, y1+dy, r, g, bl)
	} else {
		drawLine(b, x0, y0, x1, y1, r, g, bl)
	}
	b.Restore()
}

// perpendicularOffset returns a small vector perpendicular to the
// (x0,y0)-(x1,y1) segment, used to draw the two parallel strokes of a
// double border.
func perpendicularOffset(x0, y0, x1, y1 float64) (dx, dy float64) {
	const gap = 0.75
	lx, ly := x1-x0, y1-y0
	length := lx*lx + ly*ly
	if length == 0 {
		return 0, 0
	}
	// rotate the direction vector by 90 degrees and scale to half the gap
	nx, ny := -ly, lx
	norm := math.Sqrt(nx*nx + ny*ny)
	if norm == 0 {
		return 0, 0
	}
	return nx / norm * gap / 2, ny / norm * gap / 2
}
