package pdffont

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestBuildKey(t *testing.T) {
	cases := []struct {
		family      string
		bold, ital  bool
		want        Key
	}{
		{"Helvetica", false, false, "helvetica:"},
		{"Helvetica", true, false, "helvetica:bold"},
		{"Helvetica", false, true, "helvetica::italic"},
		{"Helvetica", true, true, "helvetica:bold:italic"},
		{"Times New Roman", false, false, "times new roman:"},
	}
	for _, c := range cases {
		got := BuildKey(c.family, c.bold, c.ital)
		if diff := cmp.Diff(c.want, got); diff != "" {
			t.Errorf("BuildKey(%q, %v, %v) mismatch (-want +got):\n%s", c.family, c.bold, c.ital, diff)
		}
	}
}

func TestResolveStandard14(t *testing.T) {
	cases := []struct {
		family     string
		bold, ital bool
		want       Standard14
	}{
		{"Helvetica", false, false, Helvetica},
		{"Arial", true, false, HelveticaBold},
		{"Times New Roman", false, false, TimesRoman},
		{"Georgia", true, true, TimesBoldItalic},
		{"Courier New", false, true, CourierOblique},
		{"Consolas", true, true, CourierBoldOblique},
	}
	for _, c := range cases {
		got := ResolveStandard14(c.family, c.bold, c.ital)
		if got != c.want {
			t.Errorf("ResolveStandard14(%q, %v, %v) = %v, want %v", c.family, c.bold, c.ital, got, c.want)
		}
	}
}

func TestMakeFlags(t *testing.T) {
	if f := MakeFlags("Courier New", false); f&FlagFixedPitch == 0 {
		t.Errorf("MakeFlags(Courier New) missing FlagFixedPitch: %b", f)
	}
	if f := MakeFlags("Times New Roman", false); f&FlagSerif == 0 {
		t.Errorf("MakeFlags(Times New Roman) missing FlagSerif: %b", f)
	}
	if f := MakeFlags("Helvetica", true); f&FlagItalic == 0 {
		t.Errorf("MakeFlags(Helvetica, italic) missing FlagItalic: %b", f)
	}
	if f := MakeFlags("Helvetica", false); f&FlagNonsymbolic == 0 {
		t.Errorf("MakeFlags always sets FlagNonsymbolic: %b", f)
	}
}
