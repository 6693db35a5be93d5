package main

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"

	"gopkg.in/yaml.v3"

	"github.com/avaluo/landval/internal/factors"
)

func encode(w io.Writer, format string, v interface{}) error {
	switch format {
	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return fmt.Errorf("encoding yaml: %w", err)
		}
		return enc.Close()
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(v); err != nil {
			return fmt.Errorf("encoding json: %w", err)
		}
		return nil
	default:
		return fmt.Errorf("unknown output format %q", format)
	}
}

func printResult(w io.Writer, r *factors.Result) {
	fmt.Fprintf(w, "Rule version %s\n", r.Trace.RuleVersion)
	fmt.Fprintln(w, "==================")
	fmt.Fprintln(w)

	rows := []struct {
		label string
		value float64
	}{
		{"Position", r.Factors.Position},
		{"Frontage", r.Factors.Frontage},
		{"Depth", r.Factors.Depth},
		{"Extension", r.Factors.Extension},
		{"Shape", r.Factors.Shape},
		{"Slope", r.Factors.Slope},
		{"Elevation", r.Factors.Elevation},
	}
	for _, row := range rows {
		fmt.Fprintf(w, "  %-12s %8.4f\n", row.label, row.value)
	}
	fmt.Fprintf(w, "  %-12s %8s\n", "", "--------")
	fmt.Fprintf(w, "  %-12s %8.3f\n", "Final", r.FinalFactor)

	if grid := r.Trace.Details.InteriorLotGrid; grid != nil {
		fmt.Fprintf(w, "\n  interior grid cell: depth %.0f m, distance %.0f m\n", grid.DepthM, grid.DistanceM)
	}
	rng := r.Trace.Details.ExtensionRange
	if rng.MaxM2 != nil {
		fmt.Fprintf(w, "  extension band: %.2f - %.2f m²\n", rng.MinM2, *rng.MaxM2)
	} else {
		fmt.Fprintf(w, "  extension band: from %.2f m²\n", rng.MinM2)
	}
}

func printProblems(w io.Writer, verr *factors.ValidationError) {
	fields := make([]string, 0, len(verr.Fields))
	for f := range verr.Fields {
		fields = append(fields, f)
	}
	sort.Strings(fields)

	fmt.Fprintf(w, "ERRORS (%d):\n", len(fields))
	for _, f := range fields {
		fmt.Fprintf(w, "  %s: %s\n", f, verr.Fields[f])
	}
}
