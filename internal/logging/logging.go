// Package logging builds the planner's stderr logger.
package logging

import (
	"io"
	"os"

	"github.com/charmbracelet/log"

	"day-planner/internal/config"
)

// DebugEnabled returns true if debug mode is enabled via MYDAY_DEBUG environment variable
func DebugEnabled() bool {
	return os.Getenv("MYDAY_DEBUG") != ""
}

// New creates a logger writing to w from the logging settings. MYDAY_DEBUG
// forces the debug level.
func New(cfg config.LoggingConfig, w io.Writer) *log.Logger {
	level := ParseLevel(cfg.Level)
	if DebugEnabled() {
		level = log.DebugLevel
	}

	return log.NewWithOptions(w, log.Options{
		Level:           level,
		Formatter:       ParseFormatter(cfg.Format),
		ReportTimestamp: level == log.DebugLevel,
		Prefix:          "myday",
	})
}

// Discard returns a logger that drops everything
func Discard() *log.Logger {
	return log.New(io.Discard)
}

// ParseLevel parses a string log level, defaulting to warn
func ParseLevel(level string) log.Level {
	switch level {
	case "debug":
		return log.DebugLevel
	case "info":
		return log.InfoLevel
	case "warn", "warning":
		return log.WarnLevel
	case "error":
		return log.ErrorLevel
	default:
		return log.WarnLevel
	}
}

// ParseFormatter parses a formatter name, defaulting to text
func ParseFormatter(format string) log.Formatter {
	switch format {
	case "json":
		return log.JSONFormatter
	case "logfmt":
		return log.LogfmtFormatter
	default:
		return log.TextFormatter
	}
}
