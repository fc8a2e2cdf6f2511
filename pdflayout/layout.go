// jpoffice - a word-processor engine and PDF export pipeline

// Package pdflayout defines the external layout-engine contract consumed
// by the PDF export pipeline (spec.md §6): a pure data description of
// paginated content, produced by a layout engine this module does not
// implement. pdfexport and pdfpaint only read these types; nothing here
// is ever mutated after layout returns it.
package pdflayout

import "github.com/neronapier/jpoffice/doctree"

// Result is the top-level output of layout(document).
type Result struct {
	Version int
	Pages   []*Page
}

// Page is one paginated page, in device pixels at 96 DPI with the origin
// at the top-left corner (export converts to PDF points with a
// bottom-left origin; see pdfpaint.PxToPt/PageY).
type Page struct {
	Width, Height float64
	ContentArea   Rect
	Blocks        []*Block
	Header        *Block
	Footer        *Block
	Floats        []*Block
}

// Rect is an axis-aligned device-pixel rectangle, top-left origin.
type Rect struct {
	X, Y, W, H float64
}

// BlockKind discriminates the three kinds of top-level laid-out content.
type BlockKind string

const (
	BlockParagraph BlockKind = "paragraph"
	BlockTable     BlockKind = "table"
	BlockImage     BlockKind = "image"
)

// Block is one laid-out paragraph, table, or image.
type Block struct {
	Kind BlockKind
	Rect Rect

	// Lines is populated when Kind == BlockParagraph.
	Lines []*Line

	// Table is populated when Kind == BlockTable.
	Table *Table

	// Image is populated when Kind == BlockImage.
	Image *Image

	// OutlineLevel is the paragraph's heading level (1 = top), 0 for
	// body text. Set by the layout engine from the paragraph style so
	// export can build the PDF bookmark tree without re-walking the
	// document (spec.md §4.I outline nesting).
	OutlineLevel int

	// OutlineTitle is the heading's plain text, precomputed by the
	// layout engine when OutlineLevel > 0.
	OutlineTitle string
}

// Line is one laid-out line of a paragraph, holding the runs of text (or
// inline objects) that were placed on it.
type Line struct {
	Rect      Rect
	Fragments []*Fragment
}

// Fragment is one contiguous run of text sharing a single resolved style,
// placed at Rect within its Line.
type Fragment struct {
	Text    string
	Rect    Rect
	RunPath doctree.Path
	Style   *doctree.RunProps
	Href    string // non-empty when the fragment is inside a hyperlink
}

// Table is a laid-out table block's row/cell grid.
type Table struct {
	Rows []*Row
}

// Row is one table row.
type Row struct {
	Rect  Rect
	Cells []*Cell
}

// Cell is one table cell, itself containing block content (almost always
// paragraphs).
type Cell struct {
	Rect     Rect
	RowSpan  int
	ColSpan  int
	Shading  string // hex "RRGGBB", empty for none
	Borders  CellBorders
	Blocks   []*Block
}

// CellBorders holds the four per-side border specs of a table cell.
type CellBorders struct {
	Top, Right, Bottom, Left BorderSpec
}

// BorderSpec describes one border side. WidthEighths is in eighths of a
// point, matching the OOXML-style unit the document model stores borders
// in.
type BorderSpec struct {
	Style        string // "single", "double", "none", ...
	WidthEighths int
	Color        string // hex "RRGGBB"
}

// Image is a laid-out image block.
type Image struct {
	Src       string // media registry key
	MimeType  string
	Rect      Rect
	RotationDeg float64
}
