package pdffont

import (
	"fmt"
	"sort"
	"strings"
)

// BuildToUnicodeCMap renders cidToRune as a PDF ToUnicode CMap stream
// (spec.md §4.K): bfchar blocks capped at 100 entries, codepoints ≤
// U+FFFF as 4-hex, supplementary codepoints as UTF-16 surrogate pairs
// (8 hex).
func BuildToUnicodeCMap(cidToRune map[int]rune) []byte {
	cids := make([]int, 0, len(cidToRune))
	for cid := range cidToRune {
		cids = append(cids, cid)
	}
	sort.Ints(cids)

	var b strings.Builder
	b.WriteString("/CIDInit /ProcSet findresource begin\n")
	b.WriteString("12 dict begin\nbegincmap\n")
	b.WriteString("/CIDSystemInfo << /Registry (Adobe) /Ordering (UCS) /Supplement 0 >> def\n")
	b.WriteString("/CMapName /Adobe-Identity-UCS def\n/CMapType 2 def\n")
	b.WriteString("1 begincodespacerange\n<0000> <FFFF>\nendcodespacerange\n")

	for i := 0; i < len(cids); i += 100 {
		end := i + 100
		if end > len(cids) {
			end = len(cids)
		}
		fmt.Fprintf(&b, "%d beginbfchar\n", end-i)
		for _, cid := range cids[i:end] {
			fmt.Fprintf(&b, "<%04X> <%s>\n", cid, utf16Hex(cidToRune[cid]))
		}
		b.WriteString("endbfchar\n")
	}

	b.WriteString("endcmap\nCMapName currentdict /CMap defineresource pop\nend\nend\n")
	return []byte(b.String())
}

// utf16Hex encodes r as PDF ToUnicode expects: a single 4-hex unit for
// the basic multilingual plane, or a UTF-16 surrogate pair (8 hex) for
// supplementary-plane codepoints.
func utf16Hex(r rune) string {
	if r <= 0xFFFF {
		return fmt.Sprintf("%04X", r)
	}
	r -= 0x10000
	hi := 0xD800 + (r >> 10)
	lo := 0xDC00 + (r & 0x3FF)
	return fmt.Sprintf("%04X%04X", hi, lo)
}
