package pdffont

import (
	"testing"

	"golang.org/x/image/font/gofont/goregular"

	"github.com/neronapier/jpoffice/pdfwriter"
)

func openTestCID(t *testing.T) *CIDFont {
	t.Helper()
	f, err := Open(BuildKey("helvetica", false, false), goregular.TTF)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	return f
}

// TestCIDMappingReservesNotdef checks that CID 0 is always .notdef and
// CIDs are otherwise assigned in rune order, the invariant Embed and CID
// both rely on (spec.md §4.K ToUnicode round-trip testable property).
func TestCIDMappingReservesNotdef(t *testing.T) {
	f := openTestCID(t)
	f.Use('b')
	f.Use('a')
	f.Use('c')

	gids, cidOf := f.cidMapping()
	if gids[0] != 0 || cidOf[0] != 0 {
		t.Fatalf("CID 0 must stay .notdef, got gids[0]=%v cidOf[0]=%v", gids[0], cidOf[0])
	}

	cidA := f.CID('a')
	cidB := f.CID('b')
	cidC := f.CID('c')
	if cidA == 0 || cidB == 0 || cidC == 0 {
		t.Fatalf("used runes must not map to CID 0: a=%d b=%d c=%d", cidA, cidB, cidC)
	}
	if cidA >= cidB || cidB >= cidC {
		t.Errorf("CIDs must be assigned in rune order, got a=%d b=%d c=%d", cidA, cidB, cidC)
	}
}

// TestCIDConsistentWithEmbed ensures the CID accessor used by pass 2's
// content-stream encoder agrees with the CIDToGIDMap/W arrays Embed
// writes, so a hex code in the content stream always resolves to the
// glyph Embed actually described.
func TestCIDConsistentWithEmbed(t *testing.T) {
	f := openTestCID(t)
	f.Use('A')
	f.Use('B')

	w := pdfwriter.New()
	embedded, err := f.Embed(w)
	if err != nil {
		t.Fatalf("Embed: %v", err)
	}
	if embedded.FontDictRef.IsZero() {
		t.Fatal("Embed returned a zero FontDictRef")
	}

	gids, cidOf := f.cidMapping()
	for _, r := range []rune{'A', 'B'} {
		gid := f.GID(r)
		want := cidOf[gid]
		got := f.CID(r)
		if got != want {
			t.Errorf("CID(%q) = %d, want %d (cidMapping gid %d in gids %v)", r, got, want, gid, gids)
		}
	}
}

func TestAdvanceWidthZeroBeyondGlyphCount(t *testing.T) {
	f := openTestCID(t)
	if w := f.AdvanceWidth(1 << 20); w != 0 {
		t.Errorf("AdvanceWidth(out of range) = %v, want 0", w)
	}
}
