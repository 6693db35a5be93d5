// Package factors implements the official land adjustment-factor tables and the
// composition engine that turns parcel measurements into a single final factor.
//
// Every table function is pure and returns ok=false when its input falls outside the
// domain the table is defined for.
package factors

import (
	"math"
)

// band is one row of a step table: value applies when the input is within bound.
type band struct {
	bound float64
	value float64
}

// Frontage bands are matched top-down on input >= bound.
var frontageBands = []band{
	{8.00, 1.00},
	{7.00, 0.95},
	{6.00, 0.90},
	{5.00, 0.85},
	{4.00, 0.80},
}

// frontageFloor applies below the last frontage band.
const frontageFloor = 0.75

// Depth bands are matched top-down on input <= bound.
var depthBands = []band{
	{40.00, 1.00},
	{45.00, 0.95},
	{50.00, 0.90},
	{55.00, 0.85},
	{60.00, 0.80},
	{65.00, 0.75},
	{70.00, 0.70},
	{math.Inf(1), 0.65},
}

// Extension bands are matched on input <= bound; each lower bound is exclusive and
// equal to the previous band's upper bound.
var extensionBands = []band{
	{600.00, 1.00},
	{1200.00, 0.97},
	{1600.00, 0.94},
	{2000.00, 0.91},
	{2400.00, 0.88},
	{2800.00, 0.85},
	{3200.00, 0.82},
	{3600.00, 0.79},
	{4000.00, 0.76},
	{4400.00, 0.73},
	{math.Inf(1), 0.70},
}

var slopeBands = []band{
	{5.0, 1.00},
	{10.0, 0.90},
	{30.0, 0.80},
	{math.Inf(1), 0.25},
}

var elevationAboveBands = []band{
	{1.00, 1.00},
	{2.00, 0.92},
	{3.00, 0.86},
	{4.00, 0.81},
	{5.00, 0.77},
	{6.00, 0.74},
	{7.00, 0.71},
	{8.00, 0.69},
	{9.00, 0.67},
	{math.Inf(1), 0.65},
}

var elevationBelowBands = []band{
	{1.00, 1.00},
	{2.00, 0.90},
	{3.00, 0.82},
	{4.00, 0.74},
	{5.00, 0.67},
	{6.00, 0.62},
	{7.00, 0.58},
	{8.00, 0.53},
	{9.00, 0.49},
	{math.Inf(1), 0.46},
}

// ExtensionRange is the band an area fell into. Max is nil for the open-ended band.
// Min is labelled the way the official table prints it (previous upper + 0.01).
type ExtensionRange struct {
	MinM2 float64  `json:"min_m2" yaml:"min_m2"`
	MaxM2 *float64 `json:"max_m2" yaml:"max_m2"`
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// firstAtMost returns the value of the first band whose bound is >= v.
func firstAtMost(bands []band, v float64) (float64, bool) {
	for _, b := range bands {
		if v <= b.bound {
			return b.value, true
		}
	}
	return 0, false
}

// FrontageFactor maps street frontage in meters to its factor.
func FrontageFactor(meters float64) (float64, bool) {
	if !finite(meters) || meters <= 0 {
		return 0, false
	}
	for _, b := range frontageBands {
		if meters >= b.bound {
			return b.value, true
		}
	}
	return frontageFloor, true
}

// DepthFactor maps lot depth in meters to its factor.
func DepthFactor(meters float64) (float64, bool) {
	if !finite(meters) || meters <= 0 {
		return 0, false
	}
	return firstAtMost(depthBands, meters)
}

// ExtensionFactor maps lot area in square meters to its factor and the matched band.
func ExtensionFactor(areaM2 float64) (float64, ExtensionRange, bool) {
	if !finite(areaM2) || areaM2 < 0 {
		return 0, ExtensionRange{}, false
	}

	lower := 0.0
	for i, b := range extensionBands {
		if areaM2 <= b.bound {
			rng := ExtensionRange{MinM2: lower}
			if i > 0 {
				rng.MinM2 = round(lower+0.01, 2)
			}
			if !math.IsInf(b.bound, 1) {
				upper := b.bound
				rng.MaxM2 = &upper
			}
			return b.value, rng, true
		}
		lower = b.bound
	}
	return 0, ExtensionRange{}, false
}

// ShapeFactor returns the factor for a shape category. The nabla (inverted) triangle
// is penalised far harder than the delta orientation.
func ShapeFactor(s Shape) (float64, bool) {
	switch s {
	case ShapeRegular:
		return 1.00, true
	case ShapeIrregular:
		return 0.90, true
	case ShapeVeryIrregular:
		return 0.85, true
	case ShapeDeltaTriangle:
		return 0.80, true
	case ShapeNablaTriangle:
		return 0.50, true
	default:
		return 0, false
	}
}

// SlopeFactor maps a slope percentage to its factor.
func SlopeFactor(pct float64) (float64, bool) {
	if !finite(pct) || pct < 0 {
		return 0, false
	}
	return firstAtMost(slopeBands, pct)
}

// ElevationFactor maps a grade difference in meters to its factor for the given direction.
func ElevationFactor(dir ElevationDirection, meters float64) (float64, bool) {
	if !finite(meters) || meters < 0 {
		return 0, false
	}
	switch dir {
	case ElevationAbove:
		return firstAtMost(elevationAboveBands, meters)
	case ElevationBelow:
		return firstAtMost(elevationBelowBands, meters)
	default:
		return 0, false
	}
}

// FixedPositionFactor returns the constant factor for non-interior positions.
// Interior lots go through InteriorLotFactor instead.
func FixedPositionFactor(p Position) (float64, bool) {
	switch p {
	case PositionMedial:
		return 1.00, true
	case PositionCornerResidential:
		return 1.10, true
	case PositionCornerCommercial:
		return 1.20, true
	default:
		return 0, false
	}
}
