// Package logging installs a charmbracelet/log handler behind log/slog
package logging

import (
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/charmbracelet/log"
)

// Options configures the logger
type Options struct {
	// Writer defaults to os.Stderr
	Writer io.Writer
	// Level is one of debug, info, warn or error
	Level string
	// Verbose forces debug level and adds caller and timestamp
	Verbose bool
}

// New builds a slog.Logger backed by a charm logger
func New(opts Options) *slog.Logger {
	w := opts.Writer
	if w == nil {
		w = os.Stderr
	}

	logger := log.NewWithOptions(w, log.Options{
		ReportCaller:    opts.Verbose,
		ReportTimestamp: opts.Verbose,
		Prefix:          "spellbook",
	})

	if opts.Verbose {
		logger.SetLevel(log.DebugLevel)
	} else {
		logger.SetLevel(ParseLevel(opts.Level))
	}

	return slog.New(logger)
}

// Install builds the logger and makes it the slog default
func Install(opts Options) *slog.Logger {
	logger := New(opts)
	slog.SetDefault(logger)
	return logger
}

// ParseLevel maps a level name onto a charm level, defaulting to warn
func ParseLevel(level string) log.Level {
	level = strings.ToLower(strings.TrimSpace(level))
	if level == "" {
		return log.WarnLevel
	}
	parsed, err := log.ParseLevel(level)
	if err != nil {
		return log.WarnLevel
	}
	return parsed
}
