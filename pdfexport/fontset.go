package pdfexport

import (
	"sort"
	"strconv"

	"golang.org/x/exp/maps"

	"github.com/neronapier/jpoffice/doctree"
	"github.com/neronapier/jpoffice/pdffont"
	"github.com/neronapier/jpoffice/pdfobj"
	"github.com/neronapier/jpoffice/pdfwriter"
)

// fontSet resolves (family, bold, italic) requests to a font key, opens
// a CID font the first time its key is actually used, and falls back to
// Standard 14 otherwise (spec.md §4.K).
type fontSet struct {
	buffers map[pdffont.Key][]byte
	cid     map[pdffont.Key]*pdffont.CIDFont
	names   map[pdffont.Key]pdfobj.Name // resource name, assigned on first use
	next    int
}

func newFontSet(buffers map[string][]byte) *fontSet {
	fs := &fontSet{
		buffers: make(map[pdffont.Key][]byte, len(buffers)),
		cid:     make(map[pdffont.Key]*pdffont.CIDFont),
		names:   make(map[pdffont.Key]pdfobj.Name),
	}
	for k, v := range buffers {
		fs.buffers[pdffont.Key(k)] = v
	}
	return fs
}

// resourceName returns the stable resource name ("F0", "F1", ...) for
// key, assigning a fresh one on first use in ascending request order.
func (fs *fontSet) resourceName(key pdffont.Key) pdfobj.Name {
	if name, ok := fs.names[key]; ok {
		return name
	}
	name := pdfobj.Name("F" + strconv.Itoa(fs.next))
	fs.next++
	fs.names[key] = name
	return name
}

// cidFont returns (and lazily opens) the CID font for key, or nil if no
// caller buffer was supplied for it (spec.md: "missing fonts fall back
// to Standard 14").
func (fs *fontSet) cidFont(key pdffont.Key) *pdffont.CIDFont {
	if f, ok := fs.cid[key]; ok {
		return f
	}
	buf, ok := fs.buffers[key]
	if !ok {
		return nil
	}
	f, err := pdffont.Open(key, buf)
	if err != nil {
		return nil
	}
	fs.cid[key] = f
	return f
}

// keysInOrder returns every key that has been assigned a resource name,
// sorted, for deterministic resource-dictionary / font-object emission
// order (spec.md §6 "Output is bit-deterministic").
func (fs *fontSet) keysInOrder() []pdffont.Key {
	keys := maps.Keys(fs.names)
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })
	return keys
}

// resolveKey reduces a run's resolved style to a font key, the same
// (family, bold, italic) reduction spec.md §4.K and §6 both name.
func resolveKey(style *doctree.RunProps) pdffont.Key {
	family := style.FontFamily
	if family == "" {
		family = "Helvetica"
	}
	return pdffont.BuildKey(family, style.Bold, style.Italic)
}

// writeStandard14 emits a Standard 14 font object (Type1 +
// WinAnsiEncoding, spec.md §4.M item 6) and returns its reference.
func writeStandard14(w *pdfwriter.Writer, name pdffont.Standard14) pdfobj.Reference {
	return w.PutNew(pdfobj.Dict{
		"Type":     pdfobj.Name("Font"),
		"Subtype":  pdfobj.Name("Type1"),
		"BaseFont": pdfobj.Name(name),
		"Encoding": pdfobj.Name("WinAnsiEncoding"),
	})
}
