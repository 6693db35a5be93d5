package main

import (
	"errors"
	"fmt"
	"io"

	"github.com/avaluo/landval/internal/factors"
)

type computeOptions struct {
	position           string
	shape              string
	elevationDirection string
	output             string
	frontage           float64
	depth              float64
	area               float64
	distance           float64
	slope              float64
	elevation          float64
	hasDistance        bool
}

func (o computeOptions) measurement() factors.Measurement {
	area, slope, elevation := o.area, o.slope, o.elevation
	m := factors.Measurement{
		Position:           o.position,
		FrontageM:          o.frontage,
		DepthM:             o.depth,
		AreaM2:             &area,
		Shape:              o.shape,
		SlopePct:           &slope,
		ElevationDirection: o.elevationDirection,
		ElevationM:         &elevation,
	}
	if o.hasDistance {
		distance := o.distance
		m.InteriorDistanceM = &distance
	}
	return m
}

// computeOutput is what compute prints in yaml and json mode.
type computeOutput struct {
	Factors     factors.FactorSet `json:"factors" yaml:"factors"`
	FinalFactor float64           `json:"final_factor" yaml:"final_factor"`
	Trace       factors.Trace     `json:"trace" yaml:"trace"`
}

func runCompute(w io.Writer, opts computeOptions) error {
	result, err := factors.Compose(opts.measurement())
	if err != nil {
		var verr *factors.ValidationError
		if errors.As(err, &verr) {
			printProblems(w, verr)
		}
		return fmt.Errorf("computing factors: %w", err)
	}

	if opts.output == "text" {
		printResult(w, result)
		return nil
	}
	return encode(w, opts.output, computeOutput{
		Factors:     result.Factors,
		FinalFactor: result.FinalFactor,
		Trace:       result.Trace,
	})
}

func runTables(w io.Writer, output string) error {
	return encode(w, output, factors.Tables())
}
