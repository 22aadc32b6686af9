package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"path/filepath"
	"strings"
	"testing"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name  string
		level string
	}{
		{"debug level", "debug"},
		{"info level", "info"},
		{"warn level", "warn"},
		{"error level", "error"},
		{"invalid level", "invalid"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			log := New(tt.level)
			if log == nil {
				t.Error("New() returned nil")
			}
		})
	}
}

func TestLoggerLevels(t *testing.T) {
	ctx := context.Background()
	log := New("info")

	// These should not panic
	log.Debug(ctx, "debug message")
	log.Info(ctx, "info message")
	log.Warn(ctx, "warn message")
	log.Error(ctx, "error message")

	// Test with formatting
	log.Info(ctx, "formatted message: %s %d", "test", 123)
}

func TestLevelGate(t *testing.T) {
	tests := []struct {
		name        string
		configLevel string
		write       func(Logger)
		want        bool
	}{
		{"debug logs at debug level", "debug", func(l Logger) { l.Debug(context.Background(), "line") }, true},
		{"info logs at debug level", "debug", func(l Logger) { l.Info(context.Background(), "line") }, true},
		{"debug doesn't log at info level", "info", func(l Logger) { l.Debug(context.Background(), "line") }, false},
		{"info logs at info level", "info", func(l Logger) { l.Info(context.Background(), "line") }, true},
		{"error always logs", "debug", func(l Logger) { l.Error(context.Background(), "line") }, true},
		{"invalid config level defaults to info", "bogus", func(l Logger) { l.Debug(context.Background(), "line") }, false},
		{"upper case level", "WARN", func(l Logger) { l.Info(context.Background(), "line") }, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			tt.write(NewWithOptions(Options{Level: tt.configLevel, Output: &buf}))
			if got := strings.Contains(buf.String(), "line"); got != tt.want {
				t.Errorf("logged = %v, want %v (%q)", got, tt.want, buf.String())
			}
		})
	}
}

func TestRequestIDField(t *testing.T) {
	log := NewWithOptions(Options{Level: "info", Format: "json"}).(*implLogger)
	var buf bytes.Buffer
	log.logger.SetOutput(&buf)

	ctx := WithRequestID(context.Background(), "req-42")
	log.Info(ctx, "summarizing %s", "abc12345678")

	var line map[string]interface{}
	if err := json.Unmarshal(buf.Bytes(), &line); err != nil {
		t.Fatalf("log line is not JSON: %v (%q)", err, buf.String())
	}
	if line["request_id"] != "req-42" {
		t.Errorf("request_id = %v, want req-42", line["request_id"])
	}
	if line["msg"] != "summarizing abc12345678" {
		t.Errorf("msg = %v", line["msg"])
	}
}

func TestFileOutput(t *testing.T) {
	path := filepath.Join(t.TempDir(), "app.log")
	log := NewWithOptions(Options{Level: "debug", File: path})
	if log == nil {
		t.Fatal("NewWithOptions() returned nil")
	}
	log.Debug(context.Background(), "written to file")
}

func TestRequestIDEmpty(t *testing.T) {
	if got := RequestID(context.Background()); got != "" {
		t.Errorf("RequestID() = %q, want empty", got)
	}
}

func TestCustomOutput(t *testing.T) {
	var buf bytes.Buffer
	log := NewWithOptions(Options{Level: "warn", Output: &buf})

	log.Info(context.Background(), "hidden")
	log.Warn(context.Background(), "shown %d", 42)

	if strings.Contains(buf.String(), "hidden") {
		t.Error("info line written at warn level")
	}
	if !strings.Contains(buf.String(), "shown 42") {
		t.Errorf("output = %q, want warn line", buf.String())
	}
}
