package logger

import (
	"bytes"
	"context"
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
			log := New(tt.level, "json")
			if log == nil {
				t.Error("New() returned nil")
			}
		})
	}
}

func TestLoggerLevels(t *testing.T) {
	ctx := context.Background()
	log := New("info", "console")

	// These should not panic
	log.Debug(ctx, "debug message")
	log.Info(ctx, "info message")
	log.Warn(ctx, "warn message")
	log.Error(ctx, "error message")

	// Test with formatting
	log.Info(ctx, "formatted message: %s %d", "test", 123)
}

func TestLevelFiltering(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name        string
		configLevel string
		logAt       func(Logger)
		want        bool
	}{
		{"debug logs at debug level", "debug", func(l Logger) { l.Debug(ctx, "msg") }, true},
		{"info logs at debug level", "debug", func(l Logger) { l.Info(ctx, "msg") }, true},
		{"debug filtered at info level", "info", func(l Logger) { l.Debug(ctx, "msg") }, false},
		{"info logs at info level", "info", func(l Logger) { l.Info(ctx, "msg") }, true},
		{"error logs at debug level", "debug", func(l Logger) { l.Error(ctx, "msg") }, true},
		{"warn filtered at error level", "error", func(l Logger) { l.Warn(ctx, "msg") }, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			log := newLogger(tt.configLevel, "json", &buf)
			tt.logAt(log)
			got := strings.Contains(buf.String(), "msg")
			if got != tt.want {
				t.Errorf("logged = %v, want %v (output: %q)", got, tt.want, buf.String())
			}
		})
	}
}
