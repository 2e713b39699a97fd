package logger

import (
	"context"
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
		{"mixed case level", "INFO"},
		{"unknown level falls back to info", "verbose"},
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
	log.Debug(ctx, "Pipeline state: %s -> %s", "idle", "downloading")
	log.Info(ctx, "Pipeline run started: %s", "https://www.youtube.com/watch?v=abc123")
	log.Warn(ctx, "Failed to remove run directory %s: %v", "data/temp/run-1", "permission denied")
	log.Error(ctx, "Pipeline failed: %s", "download error")
}

func TestShouldLog(t *testing.T) {
	tests := []struct {
		name        string
		configLevel string
		logLevel    string
		shouldLog   bool
	}{
		{"debug logs at debug level", "debug", "debug", true},
		{"debug suppressed at info level", "info", "debug", false},
		{"info logs at info level", "info", "info", true},
		{"info suppressed at warn level", "warn", "info", false},
		{"warn logs at warn level", "warn", "warn", true},
		{"error always logs", "debug", "error", true},
		{"error logs at error level", "error", "error", true},
		{"unknown config level defaults to info", "verbose", "debug", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			log := New(tt.configLevel).(*implLogger)
			result := log.shouldLog(tt.logLevel)
			if result != tt.shouldLog {
				t.Errorf("shouldLog() = %v, want %v", result, tt.shouldLog)
			}
		})
	}
}
