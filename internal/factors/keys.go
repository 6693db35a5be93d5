package factors

import (
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Position is the street-frontage situation of a parcel.
type Position int

// Position categories. The zero value is deliberately invalid.
const (
	PositionUnknown Position = iota
	PositionMedial
	PositionCornerResidential
	PositionCornerCommercial
	PositionInteriorLot
)

// Shape is the plan shape category of a parcel.
type Shape int

// Shape categories. The zero value is deliberately invalid.
const (
	ShapeUnknown Shape = iota
	ShapeRegular
	ShapeIrregular
	ShapeVeryIrregular
	ShapeDeltaTriangle
	ShapeNablaTriangle
)

// ElevationDirection tells whether the parcel sits above or below street grade.
type ElevationDirection int

// Elevation directions. The zero value is deliberately invalid.
const (
	ElevationUnknown ElevationDirection = iota
	ElevationAbove
	ElevationBelow
)

var positionKeys = map[string]Position{
	"medial":              PositionMedial,
	"corner_residential":  PositionCornerResidential,
	"corner_commercial":   PositionCornerCommercial,
	"interior_lot":        PositionInteriorLot,
	"esquina_residencial": PositionCornerResidential,
	"esquina_comercial":   PositionCornerCommercial,
	"lote_interior":       PositionInteriorLot,
}

var shapeKeys = map[string]Shape{
	"regular":         ShapeRegular,
	"irregular":       ShapeIrregular,
	"very_irregular":  ShapeVeryIrregular,
	"delta_triangle":  ShapeDeltaTriangle,
	"nabla_triangle":  ShapeNablaTriangle,
	"muy_irregular":   ShapeVeryIrregular,
	"triangulo_delta": ShapeDeltaTriangle,
	"triangulo_nabla": ShapeNablaTriangle,
}

var elevationKeys = map[string]ElevationDirection{
	"above": ElevationAbove,
	"below": ElevationBelow,
	"sobre": ElevationAbove,
	"bajo":  ElevationBelow,
}

// ParsePosition resolves a position key. Keys are compared case- and accent-insensitively
// and spaces or hyphens are treated as underscores.
func ParsePosition(key string) (Position, bool) {
	p, ok := positionKeys[NormalizeKey(key)]
	return p, ok
}

// ParseShape resolves a shape key, including the legacy Spanish aliases.
func ParseShape(key string) (Shape, bool) {
	s, ok := shapeKeys[NormalizeKey(key)]
	return s, ok
}

// ParseElevationDirection resolves "above"/"below" (or "sobre"/"bajo").
func ParseElevationDirection(key string) (ElevationDirection, bool) {
	d, ok := elevationKeys[NormalizeKey(key)]
	return d, ok
}

func (p Position) String() string {
	switch p {
	case PositionMedial:
		return "medial"
	case PositionCornerResidential:
		return "corner_residential"
	case PositionCornerCommercial:
		return "corner_commercial"
	case PositionInteriorLot:
		return "interior_lot"
	default:
		return "unknown"
	}
}

func (s Shape) String() string {
	switch s {
	case ShapeRegular:
		return "regular"
	case ShapeIrregular:
		return "irregular"
	case ShapeVeryIrregular:
		return "very_irregular"
	case ShapeDeltaTriangle:
		return "delta_triangle"
	case ShapeNablaTriangle:
		return "nabla_triangle"
	default:
		return "unknown"
	}
}

func (d ElevationDirection) String() string {
	switch d {
	case ElevationAbove:
		return "above"
	case ElevationBelow:
		return "below"
	default:
		return "unknown"
	}
}

// NormalizeKey folds case, strips diacritics and maps separators to underscores,
// so "Triángulo-Delta" and "triangulo_delta" compare equal.
func NormalizeKey(key string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	stripped, _, err := transform.String(t, strings.TrimSpace(key))
	if err != nil {
		stripped = strings.TrimSpace(key)
	}
	folded := cases.Fold().String(stripped)
	return strings.Map(func(r rune) rune {
		if r == '-' || r == ' ' {
			return '_'
		}
		return r
	}, folded)
}
