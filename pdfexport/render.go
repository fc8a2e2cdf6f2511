package pdfexport

import (
	"github.com/neronapier/jpoffice/doctree"
	"github.com/neronapier/jpoffice/pdfcontent"
	"github.com/neronapier/jpoffice/pdflayout"
	"github.com/neronapier/jpoffice/pdfobj"
	"github.com/neronapier/jpoffice/pdfpaint"
)

// runProvisionalPass walks page once, recording every rune that will be
// drawn with a CID font against that font's used-rune set (spec.md
// §4.M step 2), so each CID font can be embedded with exactly the
// glyphs it needs before pass 2 re-emits the real content streams.
func runProvisionalPass(page *pdflayout.Page, fonts *fontSet) {
	walkBlocks(page.Blocks, fonts)
	if page.Header != nil {
		walkBlocks([]*pdflayout.Block{page.Header}, fonts)
	}
	if page.Footer != nil {
		walkBlocks([]*pdflayout.Block{page.Footer}, fonts)
	}
	walkBlocks(page.Floats, fonts)
}

func walkBlocks(blocks []*pdflayout.Block, fonts *fontSet) {
	for _, block := range blocks {
		switch block.Kind {
		case pdflayout.BlockParagraph:
			for _, line := range block.Lines {
				for _, frag := range line.Fragments {
					registerFragment(frag, fonts)
				}
			}
		case pdflayout.BlockTable:
			if block.Table == nil {
				continue
			}
			for _, row := range block.Table.Rows {
				for _, cell := range row.Cells {
					walkBlocks(cell.Blocks, fonts)
				}
			}
		}
	}
}

func registerFragment(frag *pdflayout.Fragment, fonts *fontSet) {
	style := frag.Style
	if style == nil {
		style = &doctree.RunProps{}
	}
	key := resolveKey(style)
	fonts.resourceName(key)
	if f := fonts.cidFont(key); f != nil {
		for _, r := range frag.Text {
			f.Use(r)
		}
	}
}

// structTag names the standard PDF structure type for a top-level
// block, used both as the content stream's marked-content /Tag and as
// a struct element's /S entry (spec.md §4.M item 8, tagged PDF).
func structTag(block *pdflayout.Block) pdfobj.Name {
	switch block.Kind {
	case pdflayout.BlockTable:
		return "Table"
	case pdflayout.BlockImage:
		return "Figure"
	default:
		if block.OutlineLevel > 0 && block.OutlineLevel <= 6 {
			return pdfobj.Name("H" + string(rune('0'+block.OutlineLevel)))
		}
		return "P"
	}
}

// paintPage renders one page's content stream: table/paragraph/image
// blocks in document order, plus header and footer if present. When
// tagged, each top-level block in page.Blocks is wrapped in a marked
// content sequence whose MCID is its index in the returned tag slice,
// matching the order buildStructTree assembles page kids in.
func paintPage(b *pdfcontent.Builder, page *pdflayout.Page, fonts pdfpaint.FontResolver, images *imageRegistry, tagged bool) []pdfobj.Name {
	pageHeightPt := pdfpaint.PxToPt(page.Height)
	if page.Header != nil {
		paintBlock(b, page.Header, pageHeightPt, fonts, images)
	}
	var tags []pdfobj.Name
	for i, block := range page.Blocks {
		if tagged {
			tag := structTag(block)
			tags = append(tags, tag)
			b.BeginMarkedContentMCID(tag, i)
		}
		paintBlock(b, block, pageHeightPt, fonts, images)
		if tagged {
			b.EndMarkedContent()
		}
	}
	if page.Footer != nil {
		paintBlock(b, page.Footer, pageHeightPt, fonts, images)
	}
	for _, float := range page.Floats {
		paintBlock(b, float, pageHeightPt, fonts, images)
	}
	return tags
}

func paintBlock(b *pdfcontent.Builder, block *pdflayout.Block, pageHeightPt float64, fonts pdfpaint.FontResolver, images *imageRegistry) {
	switch block.Kind {
	case pdflayout.BlockParagraph:
		pdfpaint.PaintText(b, []*pdflayout.Block{block}, pageHeightPt, fonts)
	case pdflayout.BlockTable:
		pdfpaint.PaintTable(b, block, pageHeightPt, fonts)
	case pdflayout.BlockImage:
		paintImageBlock(b, block, pageHeightPt, images)
	}
}

func paintImageBlock(b *pdfcontent.Builder, block *pdflayout.Block, pageHeightPt float64, images *imageRegistry) {
	if block.Image == nil {
		return
	}
	ref := images.Ref(block.Image.Src)
	if ref.IsZero() {
		return
	}
	name := images.resourceName(ref)

	x := pdfpaint.PxToPt(block.Rect.X)
	w := pdfpaint.PxToPt(block.Rect.W)
	h := pdfpaint.PxToPt(block.Rect.H)
	y := pdfpaint.PageY(pageHeightPt, pdfpaint.PxToPt(block.Rect.Y+block.Rect.H))

	b.Save()
	b.ConcatMatrix(w, 0, 0, h, x, y)
	b.Do(name)
	b.Restore()
}

// finalResolver is the FontResolver used during pass 2, once every CID
// font has been embedded and its CID assignment (fontSet.cidFont) is
// frozen.
type finalResolver struct {
	fonts *fontSet
}

func (r *finalResolver) Resolve(style *doctree.RunProps, text string) (pdfobj.Name, bool) {
	key := resolveKey(style)
	return r.fonts.resourceName(key), r.fonts.cidFont(key) != nil
}

func (r *finalResolver) Encode(style *doctree.RunProps, text string) []uint16 {
	key := resolveKey(style)
	f := r.fonts.cidFont(key)
	if f == nil {
		return nil
	}
	codes := make([]uint16, 0, len(text))
	for _, ch := range text {
		codes = append(codes, uint16(f.CID(ch)))
	}
	return codes
}
