package core

import (
	"bytes"
	"encoding/json"
	"os"
	"strings"
	"testing"
)

func captureStderr(t *testing.T, fn func()) string {
	t.Helper()
	old := os.Stderr
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatalf("pipe: %v", err)
	}
	os.Stderr = w

	fn()

	w.Close()
	os.Stderr = old

	var buf bytes.Buffer
	buf.ReadFrom(r)
	return buf.String()
}

func TestNewLoggerLevels(t *testing.T) {
	tests := []struct {
		name    string
		level   string
		logged  bool // whether a Debug line appears
	}{
		{"debug level", "debug", true},
		{"info level", "info", false},
		{"default level", "", false},
		{"unknown level", "invalid", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			output := captureStderr(t, func() {
				logger := NewLogger(tt.level, "json")
				logger.Debug("debug message")
			})
			if got := strings.Contains(output, "debug message"); got != tt.logged {
				t.Errorf("Debug line present = %v, want %v (output %q)", got, tt.logged, output)
			}
		})
	}
}

func TestLoggerJSONFormat(t *testing.T) {
	output := captureStderr(t, func() {
		logger := NewLogger("info", "json")
		logger.Info("test message", "key", "value")
	})

	var entry map[string]interface{}
	if err := json.Unmarshal([]byte(strings.TrimSpace(output)), &entry); err != nil {
		t.Fatalf("Expected JSON output, got %q: %v", output, err)
	}
	if entry["msg"] != "test message" {
		t.Errorf("Expected message 'test message', got %v", entry["msg"])
	}
	if entry["key"] != "value" {
		t.Errorf("Expected field key=value, got %v", entry["key"])
	}
}

func TestLoggerConsoleFormat(t *testing.T) {
	output := captureStderr(t, func() {
		logger := NewLogger("info", "console")
		logger.Info("console message")
	})
	if !strings.Contains(output, "console message") {
		t.Errorf("Expected console output to contain message, got %q", output)
	}
	// tint output is not JSON
	var entry map[string]interface{}
	if err := json.Unmarshal([]byte(strings.TrimSpace(output)), &entry); err == nil {
		t.Errorf("Expected non-JSON console output, got %q", output)
	}
}

func TestLoggerMethods(t *testing.T) {
	output := captureStderr(t, func() {
		logger := NewLogger("debug", "json")
		logger.Debug("debug message", "key", "debug")
		logger.Info("info message", "key", "info")
		logger.Warn("warn message", "key", "warn")
		logger.Error("error message", "key", "error")
	})

	for _, msg := range []string{"debug message", "info message", "warn message", "error message"} {
		if !strings.Contains(output, msg) {
			t.Errorf("Expected to find message %q in output", msg)
		}
	}
}
