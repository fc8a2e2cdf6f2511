package pdfpaint

import (
	"math"

	"seehuhn.de/go/geom/matrix"

	"github.com/neronapier/jpoffice/pdfcontent"
)

// ellipseKappa is the magic constant for approximating a quarter-circle
// arc with one cubic Bézier (spec.md §4.L).
const ellipseKappa = 0.5522848

// ShapeKind names the drawing shapes the shape painter supports.
type ShapeKind string

const (
	ShapeEllipse  ShapeKind = "ellipse"
	ShapeRect     ShapeKind = "rect"
	ShapePolygon  ShapeKind = "polygon"
	ShapeArrow    ShapeKind = "arrow"
	ShapeCallout  ShapeKind = "callout"
	ShapeCloud    ShapeKind = "cloud"
	ShapeHeart    ShapeKind = "heart"
)

// Shape describes one EMU-positioned drawing to paint, in PDF points
// (the caller has already converted from EMU via doctree.EMU.Points()).
type Shape struct {
	Kind        ShapeKind
	X, Y, W, H  float64
	RotationDeg float64
	FillHex     string
	StrokeHex   string
	LineWidthPt float64
	Points      []Point // used by ShapePolygon/ShapeArrow/ShapeCallout
}

// Point is one vertex of a polygon/arrow/callout shape, relative to the
// shape's own (X, Y, W, H) box.
type Point struct{ X, Y float64 }

// PaintShape draws s into b, applying a center-anchored rotation when
// s.RotationDeg is non-zero.
func PaintShape(b *pdfcontent.Builder, s Shape) {
	b.Save()
	if s.RotationDeg != 0 {
		applyCenterRotation(b, s)
	}

	switch s.Kind {
	case ShapeEllipse:
		paintEllipsePath(b, s.X, s.Y, s.W, s.H)
	case ShapeRect:
		b.Rect(s.X, s.Y, s.W, s.H)
	case ShapePolygon, ShapeArrow, ShapeCallout:
		paintPolygonPath(b, s)
	case ShapeCloud:
		paintCloudPath(b, s)
	case ShapeHeart:
		paintHeartPath(b, s)
	}

	paintFillStroke(b, s)
	b.Restore()
}

func applyCenterRotation(b *pdfcontent.Builder, s Shape) {
	cx, cy := s.X+s.W/2, s.Y+s.H/2
	theta := s.RotationDeg * math.Pi / 180
	rot := matrix.Rotate(theta)
	m := matrix.Translate(-cx, -cy).Mul(rot).Mul(matrix.Translate(cx, cy))
	b.ConcatMatrix(m[0], m[1], m[2], m[3], m[4], m[5])
}

// paintEllipsePath draws the ellipse inscribed in (x, y, w, h) as four
// cubic Béziers.
func paintEllipsePath(b *pdfcontent.Builder, x, y, w, h float64) {
	cx, cy := x+w/2, y+h/2
	rx, ry := w/2, h/2
	kx, ky := rx*ellipseKappa, ry*ellipseKappa

	b.MoveTo(cx+rx, cy)
	b.CurveTo(cx+rx, cy+ky, cx+kx, cy+ry, cx, cy+ry)
	b.CurveTo(cx-kx, cy+ry, cx-rx, cy+ky, cx-rx, cy)
	b.CurveTo(cx-rx, cy-ky, cx-kx, cy-ry, cx, cy-ry)
	b.CurveTo(cx+kx, cy-ry, cx+rx, cy-ky, cx+rx, cy)
	b.ClosePath()
}

func paintPolygonPath(b *pdfcontent.Builder, s Shape) {
	if len(s.Points) == 0 {
		return
	}
	p0 := s.Points[0]
	b.MoveTo(s.X+p0.X, s.Y+p0.Y)
	for _, p := range s.Points[1:] {
		b.LineTo(s.X+p.X, s.Y+p.Y)
	}
	b.ClosePath()
}

// paintCloudPath approximates a cloud outline as a ring of overlapping
// scallops around the shape's bounding ellipse, the simplified analogue
// of the teacher annotation library's cloudy-border flattening.
func paintCloudPath(b *pdfcontent.Builder, s Shape) {
	cx, cy := s.X+s.W/2, s.Y+s.H/2
	rx, ry := s.W/2, s.H/2
	const scallops = 12
	bumpR := math.Min(rx, ry) * 0.18

	first := true
	for i := 0; i < scallops; i++ {
		theta := 2 * math.Pi * float64(i) / scallops
		bx := cx + rx*math.Cos(theta)
		by := cy + ry*math.Sin(theta)
		if first {
			b.MoveTo(bx+bumpR, by)
			first = false
		}
		next := 2 * math.Pi * float64(i+1) / scallops
		nx := cx + rx*math.Cos(next)
		ny := cy + ry*math.Sin(next)
		k := bumpR * ellipseKappa
		b.CurveTo(bx+k, by+k, nx-k, ny-k, nx, ny)
	}
	b.ClosePath()
}

// paintHeartPath draws a heart shape from two ellipse lobes and a
// V-shaped bottom point, scaled to the shape's bounding box.
func paintHeartPath(b *pdfcontent.Builder, s Shape) {
	x, y, w, h := s.X, s.Y, s.W, s.H
	lobeW, lobeH := w/2, h*0.6
	leftCx, rightCx := x+w*0.25, x+w*0.75
	lobeCy := y + h*0.65

	k := (lobeW / 2) * ellipseKappa
	kh := (lobeH / 2) * ellipseKappa

	b.MoveTo(x+w/2, y)
	b.CurveTo(x+w*0.1, y+h*0.35, leftCx-lobeW/2, lobeCy-lobeH/2-kh, leftCx-lobeW/2, lobeCy-lobeH/2)
	b.CurveTo(leftCx-lobeW/2, lobeCy-lobeH/2+kh*2, leftCx-k, lobeCy+lobeH/2, leftCx, lobeCy+lobeH/2)
	b.CurveTo(leftCx+k, lobeCy+lobeH/2, x+w/2, lobeCy, x+w/2, y+h*0.35)
	b.CurveTo(x+w/2, lobeCy, rightCx-k, lobeCy+lobeH/2, rightCx, lobeCy+lobeH/2)
	b.CurveTo(rightCx+k, lobeCy+lobeH/2, rightCx+lobeW/2, lobeCy+lobeH/2, rightCx+lobeW/2, lobeCy-lobeH/2)
	b.CurveTo(rightCx+lobeW/2, lobeCy-lobeH/2-kh, x+w*0.9, y+h*0.35, x+w/2, y)
	b.ClosePath()
}

func paintFillStroke(b *pdfcontent.Builder, s Shape) {
	hasFill := s.FillHex != ""
	hasStroke := s.StrokeHex != "" && s.LineWidthPt > 0
	if hasStroke {
		r, g, bl := hexToRGB(s.StrokeHex)
		b.SetStrokeColorRGB(r, g, bl)
		b.SetLineWidth(s.LineWidthPt)
	}
	if hasFill {
		r, g, bl := hexToRGB(s.FillHex)
		b.SetFillColorRGB(r, g, bl)
	}
	switch {
	case hasFill && hasStroke:
		b.FillAndStroke()
	case hasFill:
		b.Fill()
	case hasStroke:
		b.Stroke()
	}
}
