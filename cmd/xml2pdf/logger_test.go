package main

import (
	"bytes"
	"strings"
	"testing"

	"go.uber.org/zap/zapcore"
)

// ---------------------------------------------------------------------------
// TestNewLogger - Level selection
// ---------------------------------------------------------------------------

func TestNewLogger(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		verbose bool
		quiet   bool
		want    zapcore.Level
	}{
		{"default shows warnings", false, false, zapcore.WarnLevel},
		{"verbose shows debug", true, false, zapcore.DebugLevel},
		{"quiet shows errors", false, true, zapcore.ErrorLevel},
		{"verbose wins over quiet", true, true, zapcore.DebugLevel},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var buf bytes.Buffer
			logger := newLogger(&buf, tt.verbose, tt.quiet)

			if !logger.Core().Enabled(tt.want) {
				t.Errorf("level %v should be enabled", tt.want)
			}
			if tt.want > zapcore.DebugLevel && logger.Core().Enabled(tt.want-1) {
				t.Errorf("level %v should be disabled", tt.want-1)
			}
		})
	}

	t.Run("console format on the writer", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		newLogger(&buf, false, false).Warn("font missing")

		got := buf.String()
		if !strings.HasPrefix(got, "WARN") || !strings.Contains(got, "font missing") {
			t.Errorf("log line = %q", got)
		}
	})
}
