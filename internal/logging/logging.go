// ABOUTME: Leveled structured logger for diagnostics on stderr
// ABOUTME: Keeps console dialogue on stdout free of log lines
package logging

import (
	"io"
	"strings"

	"github.com/charmbracelet/log"
)

// Options selects the logger's verbosity
type Options struct {
	Level   string // debug, info, warn, error
	Verbose bool   // forces debug
	Quiet   bool   // forces error, wins over Verbose
}

// New creates a logger writing to w
func New(w io.Writer, opts Options) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		Level:           resolveLevel(opts),
		ReportTimestamp: true,
		TimeFormat:      "15:04:05",
		Prefix:          "chatroute",
	})
}

// Discard returns a logger that drops everything, for tests
func Discard() *log.Logger {
	return log.NewWithOptions(io.Discard, log.Options{Level: log.FatalLevel})
}

func resolveLevel(opts Options) log.Level {
	if opts.Quiet {
		return log.ErrorLevel
	}
	if opts.Verbose {
		return log.DebugLevel
	}
	switch strings.ToLower(opts.Level) {
	case "debug":
		return log.DebugLevel
	case "info":
		return log.InfoLevel
	case "error":
		return log.ErrorLevel
	default:
		return log.WarnLevel
	}
}
