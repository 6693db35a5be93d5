package factors

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/shopspring/decimal"
)

// RuleVersion identifies the table values and composition formula below. Bump it
// whenever either changes so stored traces stay interpretable.
const RuleVersion = "v2.2"

// Formula is the composition rule recorded with every trace.
const Formula = "final_factor = position * frontage * depth * extension * shape * slope * elevation"

// Precision of stored factors.
const (
	FactorPlaces      = 4
	FinalFactorPlaces = 3
)

// ErrUnresolved is matched by every ValidationError returned from Compose.
var ErrUnresolved = errors.New("factor could not be resolved")

// ValidationError lists every input field that kept a factor from resolving.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, fmt.Sprintf("%s: %s", k, e.Fields[k]))
	}
	return "unresolved factors (" + strings.Join(parts, "; ") + ")"
}

func (e *ValidationError) Unwrap() error {
	return ErrUnresolved
}

// Measurement is the raw parcel input. Category fields hold the keys as supplied by
// the caller. Area comes from the owning legal document and is nil when undeclared,
// in which case it counts as 0. A nil slope or elevation leaves that factor unresolved.
type Measurement struct {
	Position           string
	FrontageM          float64
	DepthM             float64
	InteriorDistanceM  *float64
	AreaM2             *float64
	Shape              string
	SlopePct           *float64
	ElevationDirection string
	ElevationM         *float64
}

// FactorSet holds the seven independent factors, each rounded to FactorPlaces.
type FactorSet struct {
	Position  float64 `json:"position" yaml:"position"`
	Frontage  float64 `json:"frontage" yaml:"frontage"`
	Depth     float64 `json:"depth" yaml:"depth"`
	Extension float64 `json:"extension" yaml:"extension"`
	Shape     float64 `json:"shape" yaml:"shape"`
	Slope     float64 `json:"slope" yaml:"slope"`
	Elevation float64 `json:"elevation" yaml:"elevation"`
}

// values returns the factors in formula order.
func (fs FactorSet) values() []float64 {
	return []float64{fs.Position, fs.Frontage, fs.Depth, fs.Extension, fs.Shape, fs.Slope, fs.Elevation}
}

// Product multiplies the factors exactly and rounds to FinalFactorPlaces.
func (fs FactorSet) Product() float64 {
	p := decimal.NewFromInt(1)
	for _, v := range fs.values() {
		p = p.Mul(decimal.NewFromFloat(v))
	}
	return p.Round(FinalFactorPlaces).InexactFloat64()
}

// TraceInputs is the snapshot of the inputs a computation used. Category fields
// hold the canonical key; the *Key fields keep the key exactly as supplied.
// AreaM2 is nil when the document had no declared area.
type TraceInputs struct {
	Position              string   `json:"position" yaml:"position"`
	PositionKey           string   `json:"position_key" yaml:"position_key"`
	FrontageM             float64  `json:"frontage_m" yaml:"frontage_m"`
	DepthM                float64  `json:"depth_m" yaml:"depth_m"`
	InteriorDistanceM     *float64 `json:"interior_distance_m" yaml:"interior_distance_m"`
	AreaM2                *float64 `json:"area_m2" yaml:"area_m2"`
	Shape                 string   `json:"shape" yaml:"shape"`
	ShapeKey              string   `json:"shape_key" yaml:"shape_key"`
	SlopePct              float64  `json:"slope_pct" yaml:"slope_pct"`
	ElevationDirection    string   `json:"elevation_direction" yaml:"elevation_direction"`
	ElevationDirectionKey string   `json:"elevation_direction_key" yaml:"elevation_direction_key"`
	ElevationM            float64  `json:"elevation_m" yaml:"elevation_m"`
}

// TraceDetails carries lookup details that are not factors themselves.
type TraceDetails struct {
	InteriorLotGrid *GridCell      `json:"interior_lot_grid" yaml:"interior_lot_grid"`
	ExtensionRange  ExtensionRange `json:"extension_range" yaml:"extension_range"`
}

// Trace is the audit snapshot of one computation. It is never read back into a
// later computation.
type Trace struct {
	RuleVersion string       `json:"rule_version" yaml:"rule_version"`
	Formula     string       `json:"formula" yaml:"formula"`
	Inputs      TraceInputs  `json:"inputs" yaml:"inputs"`
	Factors     FactorSet    `json:"factors" yaml:"factors"`
	FinalFactor float64      `json:"final_factor" yaml:"final_factor"`
	Details     TraceDetails `json:"details" yaml:"details"`
}

// Result is the outcome of a successful composition.
type Result struct {
	Position           Position
	Shape              Shape
	ElevationDirection ElevationDirection
	Factors            FactorSet
	FinalFactor        float64
	Trace              Trace
}

// Compose resolves all seven factors for m and multiplies them. If any factor cannot
// be resolved it returns a *ValidationError naming every offending field and no result.
func Compose(m Measurement) (*Result, error) {
	problems := make(map[string]string)

	position, ok := ParsePosition(m.Position)
	if !ok {
		problems["position"] = fmt.Sprintf("unknown position %q", m.Position)
	}
	shape, ok := ParseShape(m.Shape)
	if !ok {
		problems["shape"] = fmt.Sprintf("unknown shape %q", m.Shape)
	}
	direction, ok := ParseElevationDirection(m.ElevationDirection)
	if !ok {
		problems["elevation_direction"] = fmt.Sprintf("unknown elevation direction %q", m.ElevationDirection)
	}

	var fs FactorSet
	var details TraceDetails

	if f, ok := FrontageFactor(m.FrontageM); ok {
		fs.Frontage = f
	} else {
		problems["frontage_m"] = "must be a finite number greater than 0"
	}
	if f, ok := DepthFactor(m.DepthM); ok {
		fs.Depth = f
	} else {
		problems["depth_m"] = "must be a finite number greater than 0"
	}

	area := 0.0
	if m.AreaM2 != nil {
		area = *m.AreaM2
	}
	if f, rng, ok := ExtensionFactor(area); ok {
		fs.Extension = f
		details.ExtensionRange = rng
	} else {
		problems["area_m2"] = "must be a finite number of at least 0"
	}

	if shape != ShapeUnknown {
		fs.Shape, _ = ShapeFactor(shape)
	}
	if m.SlopePct == nil {
		problems["slope_pct"] = "required"
	} else if f, ok := SlopeFactor(*m.SlopePct); ok {
		fs.Slope = f
	} else {
		problems["slope_pct"] = "must be a finite number of at least 0"
	}
	if m.ElevationM == nil {
		problems["elevation_m"] = "required"
	} else if direction != ElevationUnknown {
		if f, ok := ElevationFactor(direction, *m.ElevationM); ok {
			fs.Elevation = f
		} else {
			problems["elevation_m"] = "must be a finite number of at least 0"
		}
	}

	switch position {
	case PositionUnknown:
	case PositionInteriorLot:
		if m.InteriorDistanceM == nil {
			problems["interior_distance_m"] = "required for interior lots"
			break
		}
		if _, bad := problems["depth_m"]; bad {
			break
		}
		f, cell, ok := InteriorLotFactor(m.DepthM, *m.InteriorDistanceM)
		if !ok {
			problems["interior_distance_m"] = "must be a finite number of at least 0"
			break
		}
		fs.Position = f
		details.InteriorLotGrid = &cell
	default:
		fs.Position, _ = FixedPositionFactor(position)
	}

	if len(problems) > 0 {
		return nil, &ValidationError{Fields: problems}
	}

	fs = fs.rounded()
	final := fs.Product()

	var distance *float64
	if position == PositionInteriorLot {
		d := *m.InteriorDistanceM
		distance = &d
	}
	var declaredArea *float64
	if m.AreaM2 != nil {
		a := *m.AreaM2
		declaredArea = &a
	}

	return &Result{
		Position:           position,
		Shape:              shape,
		ElevationDirection: direction,
		Factors:            fs,
		FinalFactor:        final,
		Trace: Trace{
			RuleVersion: RuleVersion,
			Formula:     Formula,
			Inputs: TraceInputs{
				Position:              position.String(),
				PositionKey:           m.Position,
				FrontageM:             m.FrontageM,
				DepthM:                m.DepthM,
				InteriorDistanceM:     distance,
				AreaM2:                declaredArea,
				Shape:                 shape.String(),
				ShapeKey:              m.Shape,
				SlopePct:              *m.SlopePct,
				ElevationDirection:    direction.String(),
				ElevationDirectionKey: m.ElevationDirection,
				ElevationM:            *m.ElevationM,
			},
			Factors:     fs,
			FinalFactor: final,
			Details:     details,
		},
	}, nil
}

func (fs FactorSet) rounded() FactorSet {
	return FactorSet{
		Position:  round(fs.Position, FactorPlaces),
		Frontage:  round(fs.Frontage, FactorPlaces),
		Depth:     round(fs.Depth, FactorPlaces),
		Extension: round(fs.Extension, FactorPlaces),
		Shape:     round(fs.Shape, FactorPlaces),
		Slope:     round(fs.Slope, FactorPlaces),
		Elevation: round(fs.Elevation, FactorPlaces),
	}
}

// round rounds half away from zero using decimal arithmetic.
func round(v float64, places int32) float64 {
	return decimal.NewFromFloat(v).Round(places).InexactFloat64()
}
