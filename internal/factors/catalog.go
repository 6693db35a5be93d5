package factors

import "math"

// Step is one printable row of a step table. Bound is nil for the open-ended row.
type Step struct {
	Bound *float64 `json:"bound" yaml:"bound"`
	Value float64  `json:"value" yaml:"value"`
}

// StepTable is a step table with the comparison its bounds are matched with.
type StepTable struct {
	Match string   `json:"match" yaml:"match"`
	Steps []Step   `json:"steps" yaml:"steps"`
	Floor *float64 `json:"floor,omitempty" yaml:"floor,omitempty"`
}

// GridTable is the interior-lot grid: Values[i][j] is the factor for
// DepthRows[i] and DistanceCols[j].
type GridTable struct {
	DepthRows    []float64   `json:"depth_rows_m" yaml:"depth_rows_m"`
	DistanceCols []float64   `json:"distance_cols_m" yaml:"distance_cols_m"`
	Values       [][]float64 `json:"values" yaml:"values"`
}

// Catalog is a read-only copy of every table under one rule version.
type Catalog struct {
	RuleVersion    string             `json:"rule_version" yaml:"rule_version"`
	Formula        string             `json:"formula" yaml:"formula"`
	Position       map[string]float64 `json:"position" yaml:"position"`
	Shape          map[string]float64 `json:"shape" yaml:"shape"`
	Frontage       StepTable          `json:"frontage" yaml:"frontage"`
	Depth          StepTable          `json:"depth" yaml:"depth"`
	Extension      StepTable          `json:"extension" yaml:"extension"`
	Slope          StepTable          `json:"slope" yaml:"slope"`
	ElevationAbove StepTable          `json:"elevation_above" yaml:"elevation_above"`
	ElevationBelow StepTable          `json:"elevation_below" yaml:"elevation_below"`
	InteriorLot    GridTable          `json:"interior_lot" yaml:"interior_lot"`
}

// Tables returns a copy of the tables; mutating it does not affect lookups.
func Tables() Catalog {
	floor := frontageFloor

	c := Catalog{
		RuleVersion:    RuleVersion,
		Formula:        Formula,
		Position:       make(map[string]float64),
		Shape:          make(map[string]float64),
		Frontage:       StepTable{Match: ">=", Steps: steps(frontageBands), Floor: &floor},
		Depth:          StepTable{Match: "<=", Steps: steps(depthBands)},
		Extension:      StepTable{Match: "<=", Steps: steps(extensionBands)},
		Slope:          StepTable{Match: "<=", Steps: steps(slopeBands)},
		ElevationAbove: StepTable{Match: "<=", Steps: steps(elevationAboveBands)},
		ElevationBelow: StepTable{Match: "<=", Steps: steps(elevationBelowBands)},
		InteriorLot: GridTable{
			DepthRows:    append([]float64(nil), interiorDepthRows...),
			DistanceCols: append([]float64(nil), interiorDistanceCols...),
		},
	}

	for _, p := range []Position{PositionMedial, PositionCornerResidential, PositionCornerCommercial} {
		c.Position[p.String()], _ = FixedPositionFactor(p)
	}
	for _, s := range []Shape{ShapeRegular, ShapeIrregular, ShapeVeryIrregular, ShapeDeltaTriangle, ShapeNablaTriangle} {
		c.Shape[s.String()], _ = ShapeFactor(s)
	}
	for _, row := range interiorDepthRows {
		c.InteriorLot.Values = append(c.InteriorLot.Values, append([]float64(nil), interiorLotGridValues[row]...))
	}
	return c
}

func steps(bands []band) []Step {
	out := make([]Step, 0, len(bands))
	for _, b := range bands {
		s := Step{Value: b.value}
		if !math.IsInf(b.bound, 1) {
			bound := b.bound
			s.Bound = &bound
		}
		out = append(out, s)
	}
	return out
}
