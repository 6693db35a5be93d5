package logger

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/rs/zerolog"
)

func bufferLogger(level zerolog.Level) (*Logger, *bytes.Buffer) {
	var buf bytes.Buffer
	return newLogger(&buf, level), &buf
}

func TestNew_Modes(t *testing.T) {
	for _, env := range []string{"development", "production"} {
		logger := New(env)
		if logger == nil {
			t.Fatalf("Expected logger to be created for %s", env)
		}
		if logger.GetZerolog() == nil {
			t.Errorf("Expected zerolog instance for %s", env)
		}
	}
}

func TestResolveLevel(t *testing.T) {
	tests := []struct {
		env   string
		level string
		want  zerolog.Level
	}{
		{"development", "", zerolog.DebugLevel},
		{"production", "", zerolog.InfoLevel},
		{"production", "debug", zerolog.DebugLevel},
		{"development", "warn", zerolog.WarnLevel},
		{"production", "error", zerolog.ErrorLevel},
		{"production", "loud", zerolog.InfoLevel},
	}

	for _, tt := range tests {
		t.Run(tt.env+"/"+tt.level, func(t *testing.T) {
			if got := resolveLevel(tt.env, tt.level); got != tt.want {
				t.Errorf("resolveLevel(%q, %q) = %v, want %v", tt.env, tt.level, got, tt.want)
			}
		})
	}
}

func TestNewWithLevel_AppliesLevel(t *testing.T) {
	logger := NewWithLevel("production", "error")
	if logger.GetZerolog().GetLevel() != zerolog.ErrorLevel {
		t.Errorf("Expected error level, got %v", logger.GetZerolog().GetLevel())
	}
}

func TestDebug(t *testing.T) {
	logger, buf := bufferLogger(zerolog.DebugLevel)

	logger.Debug("resolving factors", map[string]interface{}{
		"document_id": 42,
		"position":    "interior_lot",
	})

	output := buf.String()
	if !strings.Contains(output, "resolving factors") {
		t.Error("Expected log output to contain message")
	}
	if !strings.Contains(output, "interior_lot") {
		t.Error("Expected log output to contain field value")
	}
}

func TestInfo(t *testing.T) {
	logger, buf := bufferLogger(zerolog.InfoLevel)

	logger.Info("terrain record saved", map[string]interface{}{
		"document_id":  7,
		"final_factor": 0.611,
	})

	output := buf.String()
	if !strings.Contains(output, "terrain record saved") {
		t.Error("Expected log output to contain message")
	}
	if !strings.Contains(output, "0.611") {
		t.Error("Expected log output to contain final_factor field")
	}
}

func TestWarn(t *testing.T) {
	logger, buf := bufferLogger(zerolog.InfoLevel)

	logger.Warn("rate limit exceeded", map[string]interface{}{
		"client_ip": "10.0.0.1",
	})

	output := buf.String()
	if !strings.Contains(output, "rate limit exceeded") || !strings.Contains(output, "10.0.0.1") {
		t.Errorf("unexpected output: %s", output)
	}
}

func TestError(t *testing.T) {
	logger, buf := bufferLogger(zerolog.InfoLevel)

	logger.Error("failed to upsert terrain record", errors.New("connection reset"), map[string]interface{}{
		"context": "database",
	})

	output := buf.String()
	if !strings.Contains(output, "failed to upsert terrain record") {
		t.Error("Expected log output to contain message")
	}
	if !strings.Contains(output, "connection reset") {
		t.Error("Expected log output to contain error message")
	}
	if !strings.Contains(output, "database") {
		t.Error("Expected log output to contain context field")
	}
}

func TestWith(t *testing.T) {
	logger, buf := bufferLogger(zerolog.InfoLevel)

	child := logger.With(map[string]interface{}{
		"component": "valuation",
		"version":   "v2.2",
	})
	child.Info("test message", nil)

	output := buf.String()
	if !strings.Contains(output, "valuation") || !strings.Contains(output, "v2.2") {
		t.Errorf("Expected context fields in output, got %s", output)
	}
}

func TestWithRequestID(t *testing.T) {
	logger, buf := bufferLogger(zerolog.InfoLevel)

	logger.WithRequestID("req-12345").Info("request received", nil)

	var entry map[string]interface{}
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("Expected valid JSON output, got error: %v", err)
	}
	if entry["request_id"] != "req-12345" {
		t.Errorf("Expected request_id field, got %v", entry["request_id"])
	}
}

func TestWithUser(t *testing.T) {
	logger, buf := bufferLogger(zerolog.InfoLevel)

	logger.WithUser("user-9", "appraiser").Info("authenticated", nil)

	var entry map[string]interface{}
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("Expected valid JSON output, got error: %v", err)
	}
	if entry["user_id"] != "user-9" {
		t.Errorf("Expected user_id user-9, got %v", entry["user_id"])
	}
	if entry["role"] != "appraiser" {
		t.Errorf("Expected role appraiser, got %v", entry["role"])
	}
}

func TestLogLevels_Production(t *testing.T) {
	logger, buf := bufferLogger(zerolog.InfoLevel)

	logger.Debug("debug message", nil)
	if strings.Contains(buf.String(), "debug message") {
		t.Error("Debug message should not appear at info level")
	}

	buf.Reset()
	logger.Info("info message", nil)
	if !strings.Contains(buf.String(), "info message") {
		t.Error("Info message should appear at info level")
	}
}

func TestNilFields(t *testing.T) {
	logger, buf := bufferLogger(zerolog.InfoLevel)

	logger.Info("message with nil fields", nil)

	if !strings.Contains(buf.String(), "message with nil fields") {
		t.Error("Expected message to be logged even with nil fields")
	}
}
