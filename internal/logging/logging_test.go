// ABOUTME: Tests for logger construction
// ABOUTME: Verifies level resolution and output routing
package logging

import (
	"bytes"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
)

func TestResolveLevel(t *testing.T) {
	tests := []struct {
		name string
		opts Options
		want log.Level
	}{
		{"default", Options{}, log.WarnLevel},
		{"debug", Options{Level: "debug"}, log.DebugLevel},
		{"info uppercase", Options{Level: "INFO"}, log.InfoLevel},
		{"error", Options{Level: "error"}, log.ErrorLevel},
		{"verbose overrides level", Options{Level: "error", Verbose: true}, log.DebugLevel},
		{"quiet wins", Options{Verbose: true, Quiet: true}, log.ErrorLevel},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := resolveLevel(tt.opts); got != tt.want {
				t.Errorf("resolveLevel() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestNew_FiltersBelowLevel(t *testing.T) {
	var buf bytes.Buffer
	logger := New(&buf, Options{Level: "warn"})

	logger.Info("hidden")
	logger.Warn("shown", "session", "abc")

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Errorf("info line should be filtered: %q", out)
	}
	if !strings.Contains(out, "shown") || !strings.Contains(out, "session=abc") {
		t.Errorf("warn line missing: %q", out)
	}
}

func TestDiscard(t *testing.T) {
	logger := Discard()
	logger.Error("nothing")
	if logger.GetLevel() != log.FatalLevel {
		t.Errorf("GetLevel() = %v, want fatal", logger.GetLevel())
	}
}
