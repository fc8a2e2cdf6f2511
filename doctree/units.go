package doctree

// The document model stores every length as an integer in its native
// unit and never converts until render time (spec §3 "Units"), the same
// discipline the teacher library applies to PDF user-space units versus
// glyph-space font units (see seehuhn.de/go/postscript/funit.Int16).

// Twips is 1/20 of a point, the unit Word-family formats use for
// paragraph and section measurements.
type Twips int32

// EMU (English Metric Unit) is 1/914400 of an inch, the unit used for
// drawing and image extents.
type EMU int64

// HalfPoints is 1/2 of a point, used for font sizes.
type HalfPoints int32

// EighthPoints is 1/8 of a point, used for border widths.
type EighthPoints int32

const (
	twipsPerPoint = 20
	emuPerPoint   = 12700
	emuPerInch    = 914400
)

// Points converts t to floating-point PDF points (1/72 inch).
func (t Twips) Points() float64 { return float64(t) / twipsPerPoint }

// TwipsFromPoints builds a Twips value from floating-point points.
func TwipsFromPoints(pts float64) Twips { return Twips(pts * twipsPerPoint) }

// Points converts e to floating-point PDF points.
func (e EMU) Points() float64 { return float64(e) / emuPerPoint }

// Inches converts e to floating-point inches.
func (e EMU) Inches() float64 { return float64(e) / emuPerInch }

// EMUFromPoints builds an EMU value from floating-point points.
func EMUFromPoints(pts float64) EMU { return EMU(pts * emuPerPoint) }

// Points converts h to floating-point font-size points.
func (h HalfPoints) Points() float64 { return float64(h) / 2 }

// HalfPointsFromPoints builds a HalfPoints value from floating-point points.
func HalfPointsFromPoints(pts float64) HalfPoints { return HalfPoints(pts * 2) }

// Points converts e to floating-point line-width points.
func (e EighthPoints) Points() float64 { return float64(e) / 8 }
