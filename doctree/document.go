package doctree

import "github.com/neronapier/jpoffice/internal/ids"

// MediaAsset is a binary asset (image bytes, typically) owned by a
// document's media registry and referenced by id from image/drawing
// nodes, never embedded inline in the tree.
type MediaAsset struct {
	ID   string
	MIME string
	Data []byte
}

// HeaderFooterRef names a header or footer node owned by a section,
// distinguished by which page(s) it applies to.
type HeaderFooterRefType string

const (
	RefDefault HeaderFooterRefType = "default"
	RefFirst   HeaderFooterRefType = "first"
	RefEven    HeaderFooterRefType = "even"
)

// Comment is one entry in the document's comment registry, anchored into
// the tree by comment-range-start/end leaf markers carrying the same ID.
type Comment struct {
	ID     string
	Author string
	Text   string
}

// FootnoteEntry is one entry in the footnote or endnote registry,
// referenced from the tree by a footnote-ref/endnote-ref leaf carrying
// the same ID. Body is the footnote's own content, itself a small tree
// of paragraph elements.
type FootnoteEntry struct {
	ID   string
	Body *Element
}

// Document is the root of the tree plus the registries spec.md's
// Document invariant #1 requires it to own: styles, numbering, media,
// headers, footers, comments, footnotes, endnotes.
type Document struct {
	Root *Element // KindDocument, exactly one KindBody child

	Styles    *StyleRegistry
	Numbering *NumberingRegistry

	media     map[string]*MediaAsset
	headers   map[string]*Element
	footers   map[string]*Element
	comments  map[string]*Comment
	footnotes map[string]*FootnoteEntry
	endnotes  map[string]*FootnoteEntry

	ids *ids.Generator
}

// NewDocument creates an empty document: a document root with a single
// empty body, fresh style and numbering registries, and an id generator
// scoped to nonce (use a fresh random-ish string per in-memory document
// so ids never collide if two documents' nodes are ever compared).
func NewDocument(nonce string) *Document {
	gen := ids.NewGenerator(nonce)
	body := &Element{ID: gen.Next(), Kind: KindBody}
	root := &Element{ID: gen.Next(), Kind: KindDocument, Children: []Node{body}}
	return &Document{
		Root:      root,
		Styles:    NewStyleRegistry(),
		Numbering: NewNumberingRegistry(),
		media:     make(map[string]*MediaAsset),
		headers:   make(map[string]*Element),
		footers:   make(map[string]*Element),
		comments:  make(map[string]*Comment),
		footnotes: make(map[string]*FootnoteEntry),
		endnotes:  make(map[string]*FootnoteEntry),
		ids:       gen,
	}
}

// NextID mints a fresh node id scoped to this document.
func (d *Document) NextID() string { return d.ids.Next() }

// Body returns the document's single body element.
func (d *Document) Body() *Element {
	return d.Root.Children[0].(*Element)
}

// AddMedia registers a binary asset under id, overwriting any prior
// asset with that id.
func (d *Document) AddMedia(a *MediaAsset) { d.media[a.ID] = a }

// Media returns the asset registered under id, if any.
func (d *Document) Media(id string) (*MediaAsset, bool) {
	a, ok := d.media[id]
	return a, ok
}

// AddHeader registers a header node under id.
func (d *Document) AddHeader(id string, el *Element) { d.headers[id] = el }

// Header returns the header node registered under id, if any.
func (d *Document) Header(id string) (*Element, bool) {
	el, ok := d.headers[id]
	return el, ok
}

// AddFooter registers a footer node under id.
func (d *Document) AddFooter(id string, el *Element) { d.footers[id] = el }

// Footer returns the footer node registered under id, if any.
func (d *Document) Footer(id string) (*Element, bool) {
	el, ok := d.footers[id]
	return el, ok
}

// AddComment registers a comment under its own id.
func (d *Document) AddComment(c *Comment) { d.comments[c.ID] = c }

// Comments returns a read-only view of the comment registry, for plugins
// that render a comment sidebar; the document itself never mutates this
// map outside AddComment.
func (d *Document) Comments() map[string]*Comment {
	return d.comments
}

// AddFootnote registers a footnote body under its own id.
func (d *Document) AddFootnote(f *FootnoteEntry) { d.footnotes[f.ID] = f }

// Footnotes returns a read-only view of the footnote registry.
func (d *Document) Footnotes() map[string]*FootnoteEntry {
	return d.footnotes
}

// AddEndnote registers an endnote body under its own id.
func (d *Document) AddEndnote(f *FootnoteEntry) { d.endnotes[f.ID] = f }

// Endnotes returns a read-only view of the endnote registry.
func (d *Document) Endnotes() map[string]*FootnoteEntry {
	return d.endnotes
}

// Clone returns a shallow copy of the document sharing every registry
// and the Root pointer; callers that are about to replace Root (the
// result of applyOperation) start from Clone so the registries are
// reused by reference like any other untouched subtree.
func (d *Document) Clone() *Document {
	out := *d
	return &out
}
