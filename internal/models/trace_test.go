package models

import (
	"database/sql/driver"
	"encoding/json"
	"testing"

	"github.com/avaluo/landval/internal/factors"
)

func sampleTrace() Trace {
	distance, area := 22.0, 300.0
	return Trace{
		RuleVersion: factors.RuleVersion,
		Formula:     factors.Formula,
		Inputs: factors.TraceInputs{
			Position:           "interior_lot",
			FrontageM:          10,
			DepthM:             12,
			InteriorDistanceM:  &distance,
			AreaM2:             &area,
			Shape:              "regular",
			ElevationDirection: "above",
		},
		Factors:     factors.FactorSet{Position: 0.68, Frontage: 1, Depth: 1, Extension: 1, Shape: 1, Slope: 1, Elevation: 1},
		FinalFactor: 0.68,
		Details: factors.TraceDetails{
			InteriorLotGrid: &factors.GridCell{DepthM: 10, DistanceM: 20},
		},
	}
}

// TestTraceImplementsInterfaces verifies Trace implements the database/sql interfaces
func TestTraceImplementsInterfaces(t *testing.T) {
	var _ driver.Valuer = Trace{}

	var tr Trace
	var scanner interface{} = &tr
	if _, ok := scanner.(interface{ Scan(interface{}) error }); !ok {
		t.Error("Trace does not implement sql.Scanner interface")
	}
}

// TestTraceValue tests the Value method (writing to database)
func TestTraceValue(t *testing.T) {
	tests := []struct {
		name    string
		trace   Trace
		wantNil bool
	}{
		{
			name:    "complete trace",
			trace:   sampleTrace(),
			wantNil: false,
		},
		{
			name:    "empty trace",
			trace:   Trace{},
			wantNil: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			val, err := tt.trace.Value()
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if tt.wantNil && val != nil {
				t.Errorf("expected nil value, got %v", val)
			}
			if tt.wantNil {
				return
			}

			var decoded map[string]interface{}
			if err := json.Unmarshal(val.([]byte), &decoded); err != nil {
				t.Fatalf("Value() did not return valid JSON: %v", err)
			}
			if decoded["rule_version"] != factors.RuleVersion {
				t.Errorf("expected rule_version %s, got %v", factors.RuleVersion, decoded["rule_version"])
			}
			details, ok := decoded["details"].(map[string]interface{})
			if !ok || details["interior_lot_grid"] == nil {
				t.Error("expected interior_lot_grid in details")
			}
		})
	}
}

// TestTraceScan tests the Scan method (reading from database)
func TestTraceScan(t *testing.T) {
	encoded, err := json.Marshal(factors.Trace(sampleTrace()))
	if err != nil {
		t.Fatalf("marshal failed: %v", err)
	}

	tests := []struct {
		name      string
		input     interface{}
		wantError bool
		wantEmpty bool
	}{
		{"nil value", nil, false, true},
		{"bytes", encoded, false, false},
		{"string", string(encoded), false, false},
		{"invalid JSON", []byte(`{invalid}`), true, false},
		{"missing rule version", []byte(`{"final_factor":1}`), true, false},
		{"unsupported input type", 42, true, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var tr Trace
			err := tr.Scan(tt.input)

			if tt.wantError && err == nil {
				t.Error("expected error but got none")
			}
			if !tt.wantError && err != nil {
				t.Errorf("unexpected error: %v", err)
			}
			if tt.wantError {
				return
			}
			if tt.wantEmpty && tr.RuleVersion != "" {
				t.Errorf("expected empty trace, got version %s", tr.RuleVersion)
			}
			if !tt.wantEmpty {
				if tr.FinalFactor != 0.68 {
					t.Errorf("expected final factor 0.68, got %v", tr.FinalFactor)
				}
				if tr.Details.InteriorLotGrid == nil || tr.Details.InteriorLotGrid.DistanceM != 20 {
					t.Error("expected snapped grid coordinates to survive the round trip")
				}
			}
		})
	}
}
