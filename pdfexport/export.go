package pdfexport

import (
	"strings"

	"golang.org/x/text/language"

	"github.com/neronapier/jpoffice/doctree"
	"github.com/neronapier/jpoffice/pdfcontent"
	"github.com/neronapier/jpoffice/pdffont"
	"github.com/neronapier/jpoffice/pdflayout"
	"github.com/neronapier/jpoffice/pdfobj"
	"github.com/neronapier/jpoffice/pdfpaint"
	"github.com/neronapier/jpoffice/pdfwriter"
)

// ExportToPdf renders doc to a complete PDF 1.4 file (spec.md §4.M,
// §6). The output is a pure function of (doc, opts): the writer's
// object ids are assigned in one deterministic traversal order and no
// wall-clock or random state is consulted (spec.md testable property 8).
func ExportToPdf(doc *doctree.Document, opts *Options) ([]byte, error) {
	return exportWith(doc, opts, defaultLayout)
}

// ExportToPdfWithLayout is ExportToPdf with an injected Layouter, for
// callers (and tests) that have a real layout engine plugged in rather
// than the built-in single-pass stub.
func ExportToPdfWithLayout(doc *doctree.Document, opts *Options, layout Layouter) ([]byte, error) {
	return exportWith(doc, opts, layout)
}

func exportWith(doc *doctree.Document, opts *Options, layout Layouter) ([]byte, error) {
	opts = opts.withDefaults()

	result, err := layout(doc)
	if err != nil {
		return nil, err
	}

	w := pdfwriter.New()
	fonts := newFontSet(opts.Fonts)

	// Pass 1: provisional content streams, collecting glyph usage per
	// CID font key (spec.md §4.M step 2).
	for _, page := range result.Pages {
		runProvisionalPass(page, fonts)
	}

	// Embed every CID font actually used, now that its used-codepoint
	// set from pass 1 is final (step 3).
	cidEmbeds := make(map[pdffont.Key]*pdffont.Embedded)
	for _, key := range fonts.keysInOrder() {
		if f := fonts.cid[key]; f != nil {
			embedded, err := f.Embed(w)
			if err != nil {
				return nil, err
			}
			cidEmbeds[key] = embedded
		}
	}

	images := newImageRegistry(w, doc, opts.ICCColor)

	var bookmarks []bookmarkEntry
	pageRefs := make([]pdfobj.Reference, len(result.Pages))
	contentRefs := make([]pdfobj.Reference, len(result.Pages))
	annotRefs := make([][]pdfobj.Reference, len(result.Pages))
	pageTags := make([][]pdfobj.Name, len(result.Pages))

	for i := range result.Pages {
		pageRefs[i] = w.Alloc()
	}

	// Pass 2: final content streams using the resolved CID mappings
	// (step 4), plus image XObjects (step 5) and link annotations.
	for i, page := range result.Pages {
		content := pdfcontent.New()
		resolver := &finalResolver{fonts: fonts}
		pageTags[i] = paintPage(content, page, resolver, images, opts.Tagged)
		if content.Err != nil {
			return nil, content.Err
		}
		contentRefs[i] = w.Alloc()
		if opts.Compress {
			if err := w.OpenStream(contentRefs[i], nil, content.Bytes()); err != nil {
				return nil, err
			}
		} else {
			if err := w.Put(contentRefs[i], &pdfobj.Stream{Dict: pdfobj.Dict{}, Data: content.Bytes()}); err != nil {
				return nil, err
			}
		}

		refs, err := writeLinkAnnotations(w, page.Blocks, pdfpaint.PxToPt(page.Height))
		if err != nil {
			return nil, err
		}
		annotRefs[i] = refs

		for _, e := range collectHeadings(page) {
			bookmarks = append(bookmarks, bookmarkEntry{
				Title:        e.title,
				PageRef:      pageRefs[i],
				OutlineLevel: e.level,
			})
		}
	}

	// Font objects (step 6): Standard 14 fonts referenced anywhere plus
	// the CID chains embedded above.
	fontRefs := make(map[pdffont.Key]pdfobj.Reference, len(fonts.names))
	for _, key := range fonts.keysInOrder() {
		if embedded, ok := cidEmbeds[key]; ok {
			fontRefs[key] = embedded.FontDictRef
			continue
		}
		family, bold, italic := splitKey(key)
		fontRefs[key] = writeStandard14(w, pdffont.ResolveStandard14(family, bold, italic))
	}

	resourceRefs := make([]pdfobj.Reference, len(result.Pages))
	for i := range result.Pages {
		fontDict := pdfobj.Dict{}
		for _, key := range fonts.keysInOrder() {
			fontDict[fonts.names[key]] = fontRefs[key]
		}
		resources := pdfobj.Dict{"Font": fontDict}
		if xobj := images.xobjectDict(); xobj != nil {
			resources["XObject"] = xobj
		}
		resourceRefs[i] = w.PutNew(resources)
	}

	var structRootRef pdfobj.Reference
	if opts.Tagged {
		structRootRef, err = buildStructTree(w, pageRefs, pageTags)
		if err != nil {
			return nil, err
		}
	}

	pagesRef := w.Alloc()

	for i, page := range result.Pages {
		dict := pdfobj.Dict{
			"Type":      pdfobj.Name("Page"),
			"Parent":    pagesRef,
			"Resources": resourceRefs[i],
			"MediaBox":  pdfobj.Rectangle{URx: pdfpaint.PxToPt(page.Width), URy: pdfpaint.PxToPt(page.Height)},
			"Contents":  contentRefs[i],
		}
		if len(annotRefs[i]) > 0 {
			arr := make(pdfobj.Array, len(annotRefs[i]))
			for j, r := range annotRefs[i] {
				arr[j] = r
			}
			dict["Annots"] = arr
		}
		if opts.Tagged {
			dict["StructParents"] = pdfobj.Integer(i)
		}
		if err := w.Put(pageRefs[i], dict); err != nil {
			return nil, err
		}
	}

	if err := writePagesTree(w, pagesRef, pageRefs); err != nil {
		return nil, err
	}

	outlinesRef, err := writeOutlines(w, bookmarks)
	if err != nil {
		return nil, err
	}

	catalog := pdfobj.Dict{
		"Type":  pdfobj.Name("Catalog"),
		"Pages": pagesRef,
	}
	if !outlinesRef.IsZero() {
		catalog["Outlines"] = outlinesRef
	}
	if opts.Lang != "" {
		catalog["Lang"] = pdfobj.TextString(canonicalLang(opts.Lang))
	}
	if opts.Tagged {
		catalog["MarkInfo"] = pdfobj.Dict{"Marked": pdfobj.Boolean(true)}
		if !structRootRef.IsZero() {
			catalog["StructTreeRoot"] = structRootRef
		}
	}
	catalogRef := w.PutNew(catalog)

	info := &pdfobj.Info{
		Title:    pdfobj.TextString(opts.Title),
		Author:   pdfobj.TextString(opts.Author),
		Subject:  pdfobj.TextString(opts.Subject),
		Keywords: pdfobj.TextString(opts.Keywords),
		Creator:  pdfobj.TextString(opts.Creator),
		Producer: pdfobj.TextString("jpoffice"),
	}
	infoRef := w.PutNew(info.AsDict())

	return w.Generate(catalogRef, infoRef)
}

// canonicalLang normalizes a caller-supplied BCP-47 tag ("en-us") to its
// canonical form ("en-US") for the Catalog /Lang entry; an unparseable
// tag is passed through unchanged so a typo never turns into a missing
// value (spec.md §4.M, document language).
func canonicalLang(tag string) string {
	t, err := language.Parse(tag)
	if err != nil {
		return tag
	}
	return t.String()
}

// splitKey reverses pdffont.BuildKey: "<family>:[bold][:italic]" back to
// its (family, bold, italic) components, for the Standard 14 fallback
// path where only the key survives from pass 1.
func splitKey(key pdffont.Key) (family string, bold, italic bool) {
	s := string(key)
	fam := s
	if i := strings.IndexByte(s, ':'); i >= 0 {
		fam = s[:i]
		rest := s[i+1:]
		bold = strings.HasPrefix(rest, "bold")
		italic = strings.HasSuffix(rest, "italic")
	}
	return fam, bold, italic
}

type headingHit struct {
	title string
	level int
}

// collectHeadings returns one hit per heading-level paragraph on page,
// in document order, reading the OutlineLevel/OutlineTitle the layout
// engine attaches to each such Block (spec.md §4.I, SPEC_FULL.md
// supplemented feature 1: a flat bookmark list).
func collectHeadings(page *pdflayout.Page) []headingHit {
	var out []headingHit
	for _, block := range page.Blocks {
		if block.Kind != pdflayout.BlockParagraph || block.OutlineLevel <= 0 {
			continue
		}
		out = append(out, headingHit{title: block.OutlineTitle, level: block.OutlineLevel})
	}
	return out
}
