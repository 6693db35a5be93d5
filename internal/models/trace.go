package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"

	"github.com/avaluo/landval/internal/factors"
)

// Trace is the persisted form of a factor computation's audit snapshot.
// It is stored in the jsonb column document_terrain.trace.
type Trace factors.Trace

// Scan implements sql.Scanner for reading the trace column.
// jsonb may arrive as []byte or string depending on the protocol format.
func (t *Trace) Scan(value interface{}) error {
	if value == nil {
		return nil
	}

	var data []byte
	switch v := value.(type) {
	case []byte:
		data = v
	case string:
		data = []byte(v)
	default:
		return fmt.Errorf("failed to scan Trace: expected []byte or string, got %T", value)
	}

	var decoded factors.Trace
	if err := json.Unmarshal(data, &decoded); err != nil {
		return fmt.Errorf("failed to unmarshal trace: %w", err)
	}
	if decoded.RuleVersion == "" {
		return fmt.Errorf("trace is missing rule_version")
	}

	*t = Trace(decoded)
	return nil
}

// Value implements driver.Valuer for writing the trace column.
func (t Trace) Value() (driver.Value, error) {
	if t.RuleVersion == "" {
		return nil, nil
	}

	data, err := json.Marshal(factors.Trace(t))
	if err != nil {
		return nil, fmt.Errorf("failed to marshal trace: %w", err)
	}
	return data, nil
}
