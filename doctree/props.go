package doctree

// Property records for the node kinds spec.md §3 names. Each is a plain
// struct rather than a map so that ordinary code and style inheritance
// (StyleRegistry.Resolve) read and write fields directly; only the
// string-keyed field-wise merge of set_properties in docops goes through
// reflection.

// ParagraphProps holds paragraph-level formatting.
type ParagraphProps struct {
	StyleID      string
	Alignment    string // left|right|center|justify
	IndentStart  Twips
	IndentEnd    Twips
	IndentFirst  Twips
	SpaceBefore  Twips
	SpaceAfter   Twips
	LineSpacing  float64
	OutlineLevel int // 0 = not a heading; 1..9 = heading level
	NumID        string
	NumLevel     int
	KeepNext     bool
	KeepLines    bool
	PageBreakBefore bool
}

// MergeOnto implements Merger: non-zero fields in p override base;
// zero-value fields fall back to the inherited base.
func (p *ParagraphProps) MergeOnto(base any) any {
	b, _ := base.(*ParagraphProps)
	if b == nil {
		b = &ParagraphProps{}
	}
	out := *b
	if p.StyleID != "" {
		out.StyleID = p.StyleID
	}
	if p.Alignment != "" {
		out.Alignment = p.Alignment
	}
	if p.IndentStart != 0 {
		out.IndentStart = p.IndentStart
	}
	if p.IndentEnd != 0 {
		out.IndentEnd = p.IndentEnd
	}
	if p.IndentFirst != 0 {
		out.IndentFirst = p.IndentFirst
	}
	if p.SpaceBefore != 0 {
		out.SpaceBefore = p.SpaceBefore
	}
	if p.SpaceAfter != 0 {
		out.SpaceAfter = p.SpaceAfter
	}
	if p.LineSpacing != 0 {
		out.LineSpacing = p.LineSpacing
	}
	if p.OutlineLevel != 0 {
		out.OutlineLevel = p.OutlineLevel
	}
	if p.NumID != "" {
		out.NumID = p.NumID
		out.NumLevel = p.NumLevel
	}
	out.KeepNext = out.KeepNext || p.KeepNext
	out.KeepLines = out.KeepLines || p.KeepLines
	out.PageBreakBefore = out.PageBreakBefore || p.PageBreakBefore
	return &out
}

// RunProps holds inline character formatting, matching Document
// invariant #3: bold, italic, underline style, strike, sub/superscript,
// font family, half-point size, hex color, highlight, caps, letter
// spacing, language, styleId.
type RunProps struct {
	StyleID        string
	Bold           bool
	Italic         bool
	Underline      string // none|single|double|words|dotted...
	Strike         bool
	DoubleStrike   bool
	VertAlign      string // baseline|superscript|subscript
	FontFamily     string
	SizeHalfPoints HalfPoints
	ColorHex       string
	HighlightHex   string
	AllCaps        bool
	SmallCaps      bool
	LetterSpacing  Twips
	Language       string
}

// MergeOnto implements Merger for RunProps.
func (p *RunProps) MergeOnto(base any) any {
	b, _ := base.(*RunProps)
	if b == nil {
		b = &RunProps{}
	}
	out := *b
	if p.StyleID != "" {
		out.StyleID = p.StyleID
	}
	out.Bold = out.Bold || p.Bold
	out.Italic = out.Italic || p.Italic
	if p.Underline != "" {
		out.Underline = p.Underline
	}
	out.Strike = out.Strike || p.Strike
	out.DoubleStrike = out.DoubleStrike || p.DoubleStrike
	if p.VertAlign != "" {
		out.VertAlign = p.VertAlign
	}
	if p.FontFamily != "" {
		out.FontFamily = p.FontFamily
	}
	if p.SizeHalfPoints != 0 {
		out.SizeHalfPoints = p.SizeHalfPoints
	}
	if p.ColorHex != "" {
		out.ColorHex = p.ColorHex
	}
	if p.HighlightHex != "" {
		out.HighlightHex = p.HighlightHex
	}
	out.AllCaps = out.AllCaps || p.AllCaps
	out.SmallCaps = out.SmallCaps || p.SmallCaps
	if p.LetterSpacing != 0 {
		out.LetterSpacing = p.LetterSpacing
	}
	if p.Language != "" {
		out.Language = p.Language
	}
	return &out
}

// Equal reports whether two RunProps are byte-equal, used by the
// normalizer's rule 5 (merge adjacent runs with byte-equal properties).
func (p *RunProps) Equal(q *RunProps) bool {
	if p == nil || q == nil {
		return p == q
	}
	return *p == *q
}

// SectionProps carries page geometry and header/footer bindings
// (Document invariant #6).
type SectionProps struct {
	PageWidth   EMU
	PageHeight  EMU
	MarginTop   Twips
	MarginBottom Twips
	MarginLeft  Twips
	MarginRight Twips
	HeaderDistance Twips
	FooterDistance Twips
	Landscape   bool
	ColumnCount int
	HeaderRefs  map[HeaderFooterRefType]string
	FooterRefs  map[HeaderFooterRefType]string
}

// TableProps holds table-level formatting: column widths and default
// borders/shading, resolved the same way paragraph/run properties are.
type TableProps struct {
	StyleID      string
	ColumnWidths []Twips
	BorderColor  string
	BorderWidth  EighthPoints
}

// MergeOnto implements Merger for TableProps.
func (p *TableProps) MergeOnto(base any) any {
	b, _ := base.(*TableProps)
	if b == nil {
		b = &TableProps{}
	}
	out := *b
	if p.StyleID != "" {
		out.StyleID = p.StyleID
	}
	if len(p.ColumnWidths) > 0 {
		out.ColumnWidths = p.ColumnWidths
	}
	if p.BorderColor != "" {
		out.BorderColor = p.BorderColor
	}
	if p.BorderWidth != 0 {
		out.BorderWidth = p.BorderWidth
	}
	return &out
}

// TableCellProps holds per-cell span/shading/border overrides.
type TableCellProps struct {
	ColSpan   int
	RowSpan   int
	ShadeHex  string
	VAlign    string
}

// ImageProps describes an image leaf's placement and source.
type ImageProps struct {
	MediaID string
	Width   EMU
	Height  EMU
}

// HyperlinkProps carries a hyperlink element's target.
type HyperlinkProps struct {
	Href    string
	Tooltip string
	Anchor  string
}

// FieldProps describes a field code leaf (PAGE, NUMPAGES, REF, ...).
type FieldProps struct {
	Code   string
	Cached string
}
