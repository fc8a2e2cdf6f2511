package pdffont

import (
	"bytes"
	"fmt"
	"sort"

	"golang.org/x/exp/maps"
	"seehuhn.de/go/postscript/funit"
	"seehuhn.de/go/sfnt"
	"seehuhn.de/go/sfnt/glyph"

	"github.com/neronapier/jpoffice/pdfobj"
	"github.com/neronapier/jpoffice/pdfwriter"
)

// CIDFont wraps a parsed TrueType/OTF program together with the running
// per-document state (the codepoints actually used) needed to emit a
// Type0/CIDFontType2 font object chain.
//
// Full binary subsetting (dropping unused glyf/loca entries and
// renumbering glyph ids) needs the teacher library's font/subset
// machinery, which is not part of this corpus; CIDFont instead embeds
// the complete font program and maps every used codepoint straight to
// its native glyph id. The glyph→id map (CIDToGIDMap), /W widths, and
// ToUnicode CMap are still built from exactly the used set, so the
// emitted PDF is correct — just not minimal in file size.
type CIDFont struct {
	Key    Key
	otf    *sfnt.Font
	raw    []byte
	used   map[rune]bool
}

// Open parses an OpenType/TrueType font program for embedding as a CID
// font under key.
func Open(key Key, data []byte) (*CIDFont, error) {
	otf, err := sfnt.Read(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("pdffont: parse %q: %w", key, err)
	}
	return &CIDFont{Key: key, otf: otf, raw: data, used: make(map[rune]bool)}, nil
}

// Use records that r was rendered with this font, growing the set
// embedded at export time (pass 1 of the orchestrator).
func (f *CIDFont) Use(r rune) { f.used[r] = true }

// GID returns the glyph id for r, or 0 (.notdef) if the font has no
// glyph for it.
func (f *CIDFont) GID(r rune) glyph.ID {
	if f.otf.CMapTable == nil {
		return 0
	}
	subtable, err := f.otf.CMapTable.GetBest()
	if err != nil || subtable == nil {
		return 0
	}
	return subtable.Lookup(r)
}

// AdvanceWidth returns the glyph's advance width scaled to 1000 units
// per em (PDF's native font-space scale).
func (f *CIDFont) AdvanceWidth(gid glyph.ID) float64 {
	widths := f.otf.Widths()
	if int(gid) >= len(widths) {
		return 0
	}
	raw := funit.Int16(widths[gid])
	q := 1000 / float64(f.otf.UnitsPerEm)
	return float64(raw) * q
}

// usedRunes returns the used set as a sorted slice for deterministic
// iteration (spec.md §6: "Output is bit-deterministic... ordered maps").
func (f *CIDFont) usedRunes() []rune {
	out := make([]rune, 0, len(f.used))
	for r := range f.used {
		out = append(out, r)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// Embedded is the set of indirect references produced by Embed, needed
// by the resource dictionary and by Do invocations in content streams.
type Embedded struct {
	FontDictRef pdfobj.Reference
}

// cidMapping assigns CIDs 1, 2, ... to the glyph ids of every used rune,
// in rune order, with CID 0 reserved for .notdef. This is the single
// source of truth for CID assignment: both Embed (CIDToGIDMap, /W,
// ToUnicode) and CID (content-stream hex encoding) must agree on it.
func (f *CIDFont) cidMapping() (gids []glyph.ID, cidOf map[glyph.ID]int) {
	gids = []glyph.ID{0}
	cidOf = map[glyph.ID]int{0: 0}
	for _, r := range f.usedRunes() {
		gid := f.GID(r)
		if _, seen := cidOf[gid]; !seen {
			cidOf[gid] = len(gids)
			gids = append(gids, gid)
		}
	}
	return gids, cidOf
}

// CID returns the CID assigned to r under cidMapping, for encoding a
// content stream's ShowTextHex operands. r must already have been
// recorded via Use.
func (f *CIDFont) CID(r rune) int {
	_, cidOf := f.cidMapping()
	return cidOf[f.GID(r)]
}

// Embed writes the full Type0 → CIDFontType2 → FontDescriptor →
// FontFile2 chain (plus CIDToGIDMap and ToUnicode) for the runes
// recorded via Use, and returns the reference to use in a page's
// /Font resource dictionary.
func (f *CIDFont) Embed(w *pdfwriter.Writer) (*Embedded, error) {
	gids, cidOf := f.cidMapping()
	toUnicode := map[int]rune{}
	for _, r := range f.usedRunes() {
		toUnicode[cidOf[f.GID(r)]] = r
	}

	cidToGID := make([]byte, 2*len(gids))
	widthByCID := make(map[int]float64, len(gids))
	for cid, gid := range gids {
		cidToGID[2*cid] = byte(gid >> 8)
		cidToGID[2*cid+1] = byte(gid)
		widthByCID[cid] = f.AdvanceWidth(gid)
	}

	fontFileRef := w.Alloc()
	cidToGIDRef := w.Alloc()
	descriptorRef := w.Alloc()
	cidFontRef := w.Alloc()
	fontDictRef := w.Alloc()
	var toUnicodeRef pdfobj.Reference
	if len(toUnicode) > 0 {
		toUnicodeRef = w.Alloc()
	}

	name := f.otf.PostscriptName()
	if name == "" {
		name = string(f.Key)
	}

	flags := MakeFlags(name, f.otf.IsItalic)

	descriptor := pdfobj.Dict{
		"Type":        pdfobj.Name("FontDescriptor"),
		"FontName":    pdfobj.Name(name),
		"Flags":       pdfobj.Integer(flags),
		"FontFile2":   fontFileRef,
		"ItalicAngle": pdfobj.Real(f.otf.ItalicAngle),
		"Ascent":      pdfobj.Integer(0),
		"Descent":     pdfobj.Integer(0),
		"CapHeight":   pdfobj.Integer(0),
		"StemV":       pdfobj.Integer(80),
	}
	if err := w.Put(descriptorRef, descriptor); err != nil {
		return nil, err
	}

	cidFontDict := pdfobj.Dict{
		"Type":     pdfobj.Name("Font"),
		"Subtype":  pdfobj.Name("CIDFontType2"),
		"BaseFont": pdfobj.Name(name),
		"CIDSystemInfo": pdfobj.Dict{
			"Registry":   pdfobj.String("Adobe"),
			"Ordering":   pdfobj.String("Identity"),
			"Supplement": pdfobj.Integer(0),
		},
		"FontDescriptor": descriptorRef,
		"CIDToGIDMap":    cidToGIDRef,
		"W":              encodeWidths(widthByCID),
	}
	if err := w.Put(cidFontRef, cidFontDict); err != nil {
		return nil, err
	}

	fontDict := pdfobj.Dict{
		"Type":            pdfobj.Name("Font"),
		"Subtype":         pdfobj.Name("Type0"),
		"BaseFont":        pdfobj.Name(name),
		"Encoding":        pdfobj.Name("Identity-H"),
		"DescendantFonts": pdfobj.Array{cidFontRef},
	}
	if !toUnicodeRef.IsZero() {
		fontDict["ToUnicode"] = toUnicodeRef
	}
	if err := w.Put(fontDictRef, fontDict); err != nil {
		return nil, err
	}

	if err := w.OpenStream(fontFileRef, pdfobj.Dict{"Length1": pdfobj.Integer(len(f.raw))}, f.raw); err != nil {
		return nil, err
	}
	predicted := pdfobj.PNGUpPredict(cidToGID, 2)
	if err := w.OpenStream(cidToGIDRef, pdfobj.Dict{
		"Filter":    pdfobj.Name("FlateDecode"),
		"DecodeParms": pdfobj.Dict{"Predictor": pdfobj.Integer(12), "Columns": pdfobj.Integer(2)},
	}, pdfobj.Deflate(predicted)); err != nil {
		return nil, err
	}

	if !toUnicodeRef.IsZero() {
		cmapData := BuildToUnicodeCMap(toUnicode)
		if err := w.OpenStream(toUnicodeRef, pdfobj.Dict{}, cmapData); err != nil {
			return nil, err
		}
	}

	return &Embedded{FontDictRef: fontDictRef}, nil
}

// encodeWidths builds the compact "cid [w1 w2 ...]" /W array form
// (spec.md §4.K), grouping consecutive CIDs into one run.
func encodeWidths(widthByCID map[int]float64) pdfobj.Array {
	cids := maps.Keys(widthByCID)
	sort.Ints(cids)

	var out pdfobj.Array
	i := 0
	for i < len(cids) {
		start := cids[i]
		j := i
		for j+1 < len(cids) && cids[j+1] == cids[j]+1 {
			j++
		}
		run := pdfobj.Array{}
		for k := i; k <= j; k++ {
			run = append(run, pdfobj.Real(pdfobj.Round(widthByCID[cids[k]], 2)))
		}
		out = append(out, pdfobj.Integer(start), run)
		i = j + 1
	}
	return out
}
