package factors

import "math"

// Interior-lot grid axes: depth rows and distance-from-street columns, in meters.
var (
	interiorDepthRows     = []float64{5, 10, 15, 20, 25, 30, 35, 40, 45, 50, 55, 60}
	interiorDistanceCols  = []float64{5, 10, 15, 20, 25, 30, 35, 40, 45, 50}
	interiorLotGridValues = map[float64][]float64{
		5:  {0.95, 0.85, 0.76, 0.68, 0.61, 0.55, 0.49, 0.44, 0.39, 0.35},
		10: {0.95, 0.85, 0.76, 0.68, 0.61, 0.55, 0.49, 0.44, 0.39, 0.34},
		15: {0.95, 0.85, 0.75, 0.68, 0.61, 0.55, 0.49, 0.43, 0.38, 0.33},
		20: {0.95, 0.85, 0.75, 0.68, 0.61, 0.55, 0.49, 0.42, 0.37, 0.32},
		25: {0.95, 0.85, 0.75, 0.68, 0.61, 0.55, 0.48, 0.41, 0.36, 0.30},
		30: {0.93, 0.83, 0.72, 0.66, 0.59, 0.53, 0.46, 0.39, 0.35, 0.28},
		35: {0.90, 0.80, 0.70, 0.63, 0.56, 0.50, 0.43, 0.37, 0.32, 0.26},
		40: {0.87, 0.77, 0.67, 0.60, 0.53, 0.47, 0.40, 0.34, 0.29, 0.24},
		45: {0.83, 0.73, 0.63, 0.56, 0.49, 0.43, 0.36, 0.30, 0.25, 0.25},
		50: {0.80, 0.70, 0.60, 0.53, 0.46, 0.40, 0.33, 0.27, 0.27, 0.27},
		55: {0.76, 0.66, 0.57, 0.50, 0.43, 0.37, 0.30, 0.30, 0.30, 0.30},
		60: {0.71, 0.62, 0.53, 0.46, 0.40, 0.40, 0.40, 0.40, 0.40, 0.40},
	}
)

// GridCell is the interior-lot grid coordinate actually used after snapping.
type GridCell struct {
	DepthM    float64 `json:"depth_grid_m" yaml:"depth_grid_m"`
	DistanceM float64 `json:"distance_grid_m" yaml:"distance_grid_m"`
}

// nearest snaps v to the closest axis value. It is nearest neighbour with no
// interpolation: on an exact midpoint the value met first in axis order (the lower one) wins.
func nearest(axis []float64, v float64) (float64, bool) {
	if !finite(v) || len(axis) == 0 {
		return 0, false
	}
	best := axis[0]
	diff := math.Abs(v - best)
	for _, g := range axis[1:] {
		if d := math.Abs(v - g); d < diff {
			best, diff = g, d
		}
	}
	return best, true
}

// InteriorLotFactor resolves the penalty for a lot with no street frontage, snapping
// depth and distance to the nearest grid row and column.
func InteriorLotFactor(depthM, distanceM float64) (float64, GridCell, bool) {
	if depthM <= 0 || distanceM < 0 {
		return 0, GridCell{}, false
	}
	row, ok := nearest(interiorDepthRows, depthM)
	if !ok {
		return 0, GridCell{}, false
	}
	col, ok := nearest(interiorDistanceCols, distanceM)
	if !ok {
		return 0, GridCell{}, false
	}

	values, ok := interiorLotGridValues[row]
	if !ok || len(values) == 0 {
		return 0, GridCell{}, false
	}
	cell := GridCell{DepthM: row, DistanceM: col}

	idx := -1
	for i, c := range interiorDistanceCols {
		if c == col {
			idx = i
			break
		}
	}
	if idx < 0 {
		return 0, GridCell{}, false
	}
	if idx >= len(values) {
		return values[len(values)-1], cell, true
	}
	return values[idx], cell, true
}
