// jpoffice - a word-processor engine and PDF export pipeline

// Package pdffont implements the font registry and CID embedder
// (spec.md §4.K): reducing a (family, bold, italic) tuple to a font key,
// falling back to the Standard 14 fonts when no buffer is supplied for
// that key, and building the full Type0/CIDFontType2/FontDescriptor/
// FontFile2 chain — with the whole font program embedded (no
// subsetting), width arrays, and a ToUnicode CMap — when one is.
package pdffont

import "strings"

// Flags is the PDF font descriptor flags bitmask (PDF 32000-1:2008
// §9.8.2), named the way the teacher library's font.Flags enum is.
type Flags uint32

const (
	FlagFixedPitch  Flags = 1 << 0
	FlagSerif       Flags = 1 << 1
	FlagSymbolic    Flags = 1 << 2
	FlagNonsymbolic Flags = 1 << 5
	FlagItalic      Flags = 1 << 6
)

// Key identifies a font request: "<family lower>:[bold][:italic]", per
// spec.md §6. BuildKey is the canonical constructor so callers never
// hand-format the string inconsistently.
type Key string

// BuildKey builds the canonical font key for family/bold/italic.
func BuildKey(family string, bold, italic bool) Key {
	var b strings.Builder
	b.WriteString(strings.ToLower(family))
	b.WriteByte(':')
	if bold {
		b.WriteString("bold")
	}
	if italic {
		b.WriteString(":italic")
	}
	return Key(b.String())
}

var serifHints = []string{"times", "serif", "georgia", "garamond", "cambria", "minion", "book"}
var monoHints = []string{"mono", "courier", "consolas", "menlo", "typewriter"}

// classify reports the serif/mono heuristics of spec.md §4.K: a
// case-insensitive substring match against common family name
// fragments. It does not detect italic.
func classify(family string) (serif, mono bool) {
	lower := strings.ToLower(family)
	for _, h := range monoHints {
		if strings.Contains(lower, h) {
			return false, true
		}
	}
	for _, h := range serifHints {
		if strings.Contains(lower, h) {
			return true, false
		}
	}
	return false, false
}

// MakeFlags computes the descriptor flags bitmask for a font: always
// Nonsymbolic, plus FixedPitch/Serif/Italic from the family-name
// heuristics and the requested italic variant.
func MakeFlags(family string, italic bool) Flags {
	serif, mono := classify(family)
	flags := FlagNonsymbolic
	if mono {
		flags |= FlagFixedPitch
	}
	if serif {
		flags |= FlagSerif
	}
	if italic {
		flags |= FlagItalic
	}
	return flags
}

// Standard14 is one of the 14 built-in PDF fonts, selected when no
// caller-supplied buffer exists for a font key.
type Standard14 string

const (
	Helvetica            Standard14 = "Helvetica"
	HelveticaBold        Standard14 = "Helvetica-Bold"
	HelveticaOblique     Standard14 = "Helvetica-Oblique"
	HelveticaBoldOblique Standard14 = "Helvetica-BoldOblique"
	TimesRoman           Standard14 = "Times-Roman"
	TimesBold            Standard14 = "Times-Bold"
	TimesItalic          Standard14 = "Times-Italic"
	TimesBoldItalic      Standard14 = "Times-BoldItalic"
	Courier              Standard14 = "Courier"
	CourierBold          Standard14 = "Courier-Bold"
	CourierOblique       Standard14 = "Courier-Oblique"
	CourierBoldOblique   Standard14 = "Courier-BoldOblique"
)

// ResolveStandard14 maps a family/bold/italic request to one of the 14
// built-in fonts using the same serif/mono classification as CID fonts,
// defaulting to Helvetica's family when the name hints at neither serif
// nor mono.
func ResolveStandard14(family string, bold, italic bool) Standard14 {
	serif, mono := classify(family)
	switch {
	case mono:
		switch {
		case bold && italic:
			return CourierBoldOblique
		case bold:
			return CourierBold
		case italic:
			return CourierOblique
		default:
			return Courier
		}
	case serif:
		switch {
		case bold && italic:
			return TimesBoldItalic
		case bold:
			return TimesBold
		case italic:
			return TimesItalic
		default:
			return TimesRoman
		}
	default:
		switch {
		case bold && italic:
			return HelveticaBoldOblique
		case bold:
			return HelveticaBold
		case italic:
			return HelveticaOblique
		default:
			return Helvetica
		}
	}
}
