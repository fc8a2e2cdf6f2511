package doctree

// Factory constructors for every node kind named in spec.md §3. Each
// takes the owning document so the node gets a fresh id from its
// generator; callers never mint ids themselves, matching the teacher
// library's convention of allocating object numbers only through
// pdfwriter.Writer.Alloc rather than letting call sites pick their own.

func newElement(d *Document, kind Kind, props any, children ...Node) *Element {
	if children == nil {
		children = []Node{}
	}
	return &Element{ID: d.NextID(), Kind: kind, Props: props, Children: children}
}

func newLeaf(d *Document, kind Kind, text string, props any) *Leaf {
	return &Leaf{ID: d.NextID(), Kind: kind, Text: text, Props: props}
}

// NewSection creates a section element; children are typically a single
// body's worth of block-level nodes belonging to this section.
func NewSection(d *Document, props *SectionProps, children ...Node) *Element {
	return newElement(d, KindSection, props, children...)
}

// NewParagraph creates a paragraph element; children must be inline
// nodes per Document invariant #2.
func NewParagraph(d *Document, props *ParagraphProps, children ...Node) *Element {
	return newElement(d, KindParagraph, props, children...)
}

// NewRun creates a run containing a single text leaf, per Document
// invariant #3 ("a run contains only text children").
func NewRun(d *Document, props *RunProps, text string) *Element {
	if props == nil {
		props = &RunProps{}
	}
	return newElement(d, KindRun, props, newLeaf(d, KindText, text, nil))
}

// NewTable creates a table element whose children are table-row elements.
func NewTable(d *Document, props *TableProps, rows ...Node) *Element {
	return newElement(d, KindTable, props, rows...)
}

// NewTableRow creates a table-row element whose children are
// table-cell elements.
func NewTableRow(d *Document, cells ...Node) *Element {
	return newElement(d, KindTableRow, nil, cells...)
}

// NewTableCell creates a table-cell element; per Document invariant #4
// it must contain at least one paragraph or nested table, enforced by
// the normalizer rather than here so partially-built trees can still be
// constructed incrementally.
func NewTableCell(d *Document, props *TableCellProps, children ...Node) *Element {
	return newElement(d, KindTableCell, props, children...)
}

// NewHeader creates a header element, registered separately in the
// document's header registry by the caller (see Document.AddHeader).
func NewHeader(d *Document, children ...Node) *Element {
	return newElement(d, KindHeader, nil, children...)
}

// NewFooter creates a footer element; see NewHeader.
func NewFooter(d *Document, children ...Node) *Element {
	return newElement(d, KindFooter, nil, children...)
}

// NewHyperlink creates a hyperlink element wrapping run children, per
// Document invariant #5.
func NewHyperlink(d *Document, props *HyperlinkProps, runs ...Node) *Element {
	return newElement(d, KindHyperlink, props, runs...)
}

// NewDrawing creates a drawing element (an anchored image/shape host).
func NewDrawing(d *Document, props *ImageProps, children ...Node) *Element {
	return newElement(d, KindDrawing, props, children...)
}

// NewShapeGroup creates a shape-group element grouping shape children.
func NewShapeGroup(d *Document, children ...Node) *Element {
	return newElement(d, KindShapeGroup, nil, children...)
}

// NewTextbox creates a textbox element hosting its own paragraph flow.
func NewTextbox(d *Document, children ...Node) *Element {
	return newElement(d, KindTextbox, nil, children...)
}

// NewText creates a bare text leaf. Most callers want NewRun instead;
// this is exposed for split_node/merge_node implementations in docops
// that build text leaves directly.
func NewText(d *Document, text string) *Leaf {
	return newLeaf(d, KindText, text, nil)
}

// NewImage creates an image leaf referencing a media asset by id.
func NewImage(d *Document, props *ImageProps) *Leaf {
	return newLeaf(d, KindImage, "", props)
}

// NewPageBreak creates a page-break leaf.
func NewPageBreak(d *Document) *Leaf { return newLeaf(d, KindPageBreak, "", nil) }

// NewLineBreak creates a line-break (soft return) leaf.
func NewLineBreak(d *Document) *Leaf { return newLeaf(d, KindLineBreak, "", nil) }

// NewColumnBreak creates a column-break leaf.
func NewColumnBreak(d *Document) *Leaf { return newLeaf(d, KindColumnBreak, "", nil) }

// NewTab creates a tab leaf.
func NewTab(d *Document) *Leaf { return newLeaf(d, KindTab, "", nil) }

// NewBookmarkStart creates a bookmark-start marker carrying the
// bookmark's name as its text payload.
func NewBookmarkStart(d *Document, name string) *Leaf {
	return newLeaf(d, KindBookmarkStart, name, nil)
}

// NewBookmarkEnd creates a bookmark-end marker referencing the id of its
// matching bookmark-start by text payload.
func NewBookmarkEnd(d *Document, startID string) *Leaf {
	return newLeaf(d, KindBookmarkEnd, startID, nil)
}

// NewCommentRangeStart creates a comment-range-start marker referencing
// a Comment registered in the document's comment registry by id.
func NewCommentRangeStart(d *Document, commentID string) *Leaf {
	return newLeaf(d, KindCommentRangeStart, commentID, nil)
}

// NewCommentRangeEnd creates the matching comment-range-end marker.
func NewCommentRangeEnd(d *Document, commentID string) *Leaf {
	return newLeaf(d, KindCommentRangeEnd, commentID, nil)
}

// NewField creates a field leaf (e.g. PAGE, NUMPAGES, REF).
func NewField(d *Document, props *FieldProps) *Leaf {
	return newLeaf(d, KindField, "", props)
}

// NewFootnoteRef creates a footnote-ref leaf referencing a FootnoteEntry
// by id.
func NewFootnoteRef(d *Document, footnoteID string) *Leaf {
	return newLeaf(d, KindFootnoteRef, footnoteID, nil)
}

// NewEndnoteRef creates an endnote-ref leaf referencing a FootnoteEntry
// by id (in the endnote registry).
func NewEndnoteRef(d *Document, endnoteID string) *Leaf {
	return newLeaf(d, KindEndnoteRef, endnoteID, nil)
}

// NewEquation creates an equation leaf carrying its source markup as the
// text payload; PDF export degrades this to plain text if it cannot be
// rendered (spec's equation failure semantics).
func NewEquation(d *Document, source string) *Leaf {
	return newLeaf(d, KindEquation, source, nil)
}

// NewShape creates a standalone shape leaf (as opposed to one grouped
// under a shape-group element).
func NewShape(d *Document, props any) *Leaf {
	return newLeaf(d, KindShape, "", props)
}

// NewMention creates a mention leaf (e.g. an @-mention) carrying its
// display text.
func NewMention(d *Document, displayText string) *Leaf {
	return newLeaf(d, KindMention, displayText, nil)
}
