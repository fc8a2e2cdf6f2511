// jpoffice - a word-processor engine and PDF export pipeline

// Package pdfcontent implements a fluent builder for PDF content-stream
// operators: text and graphics state, path construction and painting,
// XObject invocation, and marked-content sections for tagged output.
// Operators are newline-separated, matching the teacher library's
// graphics.Writer convention of one operator (with its operands) per line.
package pdfcontent

import (
	"bytes"
	"fmt"
	"strconv"

	"github.com/neronapier/jpoffice/pdfobj"
)

// Builder accumulates content-stream bytes. The zero value is ready to
// use. Errors are sticky: once Err is set, further calls are no-ops, so
// callers can chain a whole paragraph's worth of operators and check Err
// once at the end.
type Builder struct {
	buf bytes.Buffer
	Err error
}

// New creates an empty Builder.
func New() *Builder {
	return &Builder{}
}

// Bytes returns the accumulated content stream.
func (b *Builder) Bytes() []byte {
	return b.buf.Bytes()
}

func (b *Builder) op(format string, args ...any) *Builder {
	if b.Err != nil {
		return b
	}
	fmt.Fprintf(&b.buf, format, args...)
	b.buf.WriteByte('\n')
	return b
}

func num(x float64) string {
	return strconv.FormatFloat(pdfobj.Round(x, 2), 'f', -1, 64)
}

// --- graphics state ---

// Save emits "q", pushing the graphics state.
func (b *Builder) Save() *Builder { return b.op("q") }

// Restore emits "Q", popping the graphics state.
func (b *Builder) Restore() *Builder { return b.op("Q") }

// ConcatMatrix emits "a b c d e f cm".
func (b *Builder) ConcatMatrix(a, c, d, e, f, g float64) *Builder {
	return b.op("%s %s %s %s %s %s cm", num(a), num(c), num(d), num(e), num(f), num(g))
}

// SetLineWidth emits "lw w".
func (b *Builder) SetLineWidth(w float64) *Builder {
	return b.op("%s w", num(w))
}

// SetDash emits "[d1 d2 ...] phase d".
func (b *Builder) SetDash(pattern []float64, phase float64) *Builder {
	if b.Err != nil {
		return b
	}
	b.buf.WriteByte('[')
	for i, d := range pattern {
		if i > 0 {
			b.buf.WriteByte(' ')
		}
		b.buf.WriteString(num(d))
	}
	b.buf.WriteString("] ")
	b.buf.WriteString(num(phase))
	b.buf.WriteString(" d\n")
	return b
}

// --- color ---

// SetFillColorRGB emits "r g b rg".
func (b *Builder) SetFillColorRGB(r, g, bl float64) *Builder {
	return b.op("%s %s %s rg", num(r), num(g), num(bl))
}

// SetStrokeColorRGB emits "r g b RG".
func (b *Builder) SetStrokeColorRGB(r, g, bl float64) *Builder {
	return b.op("%s %s %s RG", num(r), num(g), num(bl))
}

// --- path construction & painting ---

// MoveTo emits "x y m".
func (b *Builder) MoveTo(x, y float64) *Builder { return b.op("%s %s m", num(x), num(y)) }

// LineTo emits "x y l".
func (b *Builder) LineTo(x, y float64) *Builder { return b.op("%s %s l", num(x), num(y)) }

// CurveTo emits "x1 y1 x2 y2 x3 y3 c".
func (b *Builder) CurveTo(x1, y1, x2, y2, x3, y3 float64) *Builder {
	return b.op("%s %s %s %s %s %s c", num(x1), num(y1), num(x2), num(y2), num(x3), num(y3))
}

// Rect emits "x y w h re".
func (b *Builder) Rect(x, y, w, h float64) *Builder {
	return b.op("%s %s %s %s re", num(x), num(y), num(w), num(h))
}

// ClosePath emits "h".
func (b *Builder) ClosePath() *Builder { return b.op("h") }

// Stroke emits "S".
func (b *Builder) Stroke() *Builder { return b.op("S") }

// Fill emits "f".
func (b *Builder) Fill() *Builder { return b.op("f") }

// FillAndStroke emits "B".
func (b *Builder) FillAndStroke() *Builder { return b.op("B") }

// --- text ---

// BeginText emits "BT".
func (b *Builder) BeginText() *Builder { return b.op("BT") }

// EndText emits "ET".
func (b *Builder) EndText() *Builder { return b.op("ET") }

// SetFont emits "/name size Tf".
func (b *Builder) SetFont(name pdfobj.Name, size float64) *Builder {
	return b.op("/%s %s Tf", name, num(size))
}

// MoveText emits "tx ty Td".
func (b *Builder) MoveText(tx, ty float64) *Builder {
	return b.op("%s %s Td", num(tx), num(ty))
}

// ShowText emits "(escaped text) Tj" for a Standard-14 (single-byte) font.
func (b *Builder) ShowText(text string) *Builder {
	return b.op("%s Tj", pdfobj.EscapeLiteral(text))
}

// ShowTextHex emits "<hex> Tj" for a CID-keyed font, where codes is the
// sequence of big-endian CIDs to show.
func (b *Builder) ShowTextHex(codes []uint16) *Builder {
	buf := make([]byte, 2*len(codes))
	for i, c := range codes {
		buf[2*i] = byte(c >> 8)
		buf[2*i+1] = byte(c)
	}
	return b.op("%s Tj", pdfobj.HexBytes(buf))
}

// --- XObjects ---

// Do emits "/name Do".
func (b *Builder) Do(name pdfobj.Name) *Builder {
	return b.op("/%s Do", name)
}

// --- marked content (tagged PDF) ---

// BeginMarkedContentMCID emits "/Tag <</MCID n>> BDC".
func (b *Builder) BeginMarkedContentMCID(tag pdfobj.Name, mcid int) *Builder {
	return b.op("/%s <</MCID %d>> BDC", tag, mcid)
}

// EndMarkedContent emits "EMC".
func (b *Builder) EndMarkedContent() *Builder { return b.op("EMC") }
