// pkg/logging/logger_test.go
package logging

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"os"
	"strings"
	"testing"
)

func TestNewLogger(t *testing.T) {
	logger := NewLogger()
	if logger == nil {
		t.Fatal("NewLogger() returned nil")
	}
	if logger.Logger == nil {
		t.Fatal("Logger.Logger is nil")
	}
}

func TestLogLevelFromEnv(t *testing.T) {
	tests := []struct {
		name     string
		envValue string
		expected slog.Level
	}{
		{"debug level", "DEBUG", slog.LevelDebug},
		{"info level", "INFO", slog.LevelInfo},
		{"warn level", "WARN", slog.LevelWarn},
		{"warning level", "WARNING", slog.LevelWarn},
		{"error level", "ERROR", slog.LevelError},
		{"lowercase debug", "debug", slog.LevelDebug},
		{"invalid level", "INVALID", slog.LevelInfo},
		{"empty value", "", slog.LevelInfo},
	}

	originalLevel := os.Getenv("CARRIER_LOG_LEVEL")
	defer os.Setenv("CARRIER_LOG_LEVEL", originalLevel)

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			os.Setenv("CARRIER_LOG_LEVEL", tt.envValue)
			level := getLogLevelFromEnv()
			if level != tt.expected {
				t.Errorf("getLogLevelFromEnv() = %v, want %v", level, tt.expected)
			}
		})
	}
}

func TestCorrelationID(t *testing.T) {
	t.Run("generate correlation ID", func(t *testing.T) {
		id1 := GenerateCorrelationID()
		id2 := GenerateCorrelationID()

		if id1 == "" || id2 == "" {
			t.Error("GenerateCorrelationID() returned empty string")
		}
		if id1 == id2 {
			t.Error("GenerateCorrelationID() returned duplicate IDs")
		}
		if len(id1) != 16 { // 8 bytes = 16 hex characters
			t.Errorf("GenerateCorrelationID() returned wrong length: %d", len(id1))
		}
	})

	t.Run("context with correlation ID", func(t *testing.T) {
		ctx := WithCorrelationID(context.Background(), "test-correlation-id")

		if got := GetCorrelationID(ctx); got != "test-correlation-id" {
			t.Errorf("GetCorrelationID() = %q, want %q", got, "test-correlation-id")
		}
	})

	t.Run("context without correlation ID", func(t *testing.T) {
		if got := GetCorrelationID(context.Background()); got != "" {
			t.Errorf("GetCorrelationID() = %q, want empty string", got)
		}
	})

	t.Run("auto-generate correlation ID", func(t *testing.T) {
		ctx := WithCorrelationID(context.Background(), "")

		if GetCorrelationID(ctx) == "" {
			t.Error("WithCorrelationID(\"\") did not generate an ID")
		}
	})
}

// newCaptureLogger returns a logger writing JSON entries into buf.
func newCaptureLogger(buf *bytes.Buffer) *Logger {
	handler := slog.NewJSONHandler(buf, &slog.HandlerOptions{
		Level:       slog.LevelDebug,
		ReplaceAttr: sanitizeAttributes,
	})
	return &Logger{slog.New(handler)}
}

func TestLogger_IncludesCorrelationID(t *testing.T) {
	var buf bytes.Buffer
	logger := newCaptureLogger(&buf)

	ctx := WithCorrelationID(context.Background(), "abc123")
	logger.Info(ctx, "test message", "tick", 42)

	var entry map[string]any
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("log output is not JSON: %v", err)
	}
	if entry["correlation_id"] != "abc123" {
		t.Errorf("correlation_id = %v, want abc123", entry["correlation_id"])
	}
	if entry["msg"] != "test message" {
		t.Errorf("msg = %v, want test message", entry["msg"])
	}
}

func TestLogger_ErrorIncludesError(t *testing.T) {
	var buf bytes.Buffer
	logger := newCaptureLogger(&buf)

	logger.Error(context.Background(), "something failed", errors.New("boom"))

	if !strings.Contains(buf.String(), "boom") {
		t.Errorf("error log %q does not contain the error text", buf.String())
	}
}

func TestSanitizeAttributes(t *testing.T) {
	var buf bytes.Buffer
	logger := newCaptureLogger(&buf)

	logger.Info(context.Background(), "login", "password", "hunter2", "tick", 7)

	output := buf.String()
	if strings.Contains(output, "hunter2") {
		t.Error("sensitive value leaked into log output")
	}
	if !strings.Contains(output, "[REDACTED]") {
		t.Error("sensitive value was not redacted")
	}
	if !strings.Contains(output, "\"tick\":7") {
		t.Errorf("non-sensitive attribute missing from %q", output)
	}
}

func TestWrapError(t *testing.T) {
	t.Run("wraps with context", func(t *testing.T) {
		base := errors.New("base failure")
		wrapped := WrapError(base, "loading config %q", "config.json")

		if !errors.Is(wrapped, base) {
			t.Error("wrapped error does not match base error")
		}
		if !strings.Contains(wrapped.Error(), "config.json") {
			t.Errorf("wrapped error %q missing formatted context", wrapped.Error())
		}
	})

	t.Run("nil error stays nil", func(t *testing.T) {
		if WrapError(nil, "context") != nil {
			t.Error("WrapError(nil) returned non-nil")
		}
	})
}
