// Package logging configures the debug logger. The TUI owns stdout, so logs
// only ever go to a file the user asked for (or nowhere).
package logging

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/log"
)

// New returns a logger writing to w with the house options applied. The
// level comes from TWODO_LOG_LEVEL (debug|info|warn|error), default info.
func New(w io.Writer) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		Level:           levelFromEnv(),
		ReportTimestamp: true,
		Prefix:          "twodo",
	})
}

// Open returns a logger appending to the file at path plus a close func.
// An empty path yields a discard logger and a no-op close.
func Open(path string) (*log.Logger, func() error, error) {
	if strings.TrimSpace(path) == "" {
		return Discard(), func() error { return nil }, nil
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("open log file: %w", err)
	}
	return New(f), f.Close, nil
}

// Discard returns a logger that drops everything.
func Discard() *log.Logger {
	logger := log.New(io.Discard)
	logger.SetLevel(log.FatalLevel + 1)
	return logger
}

func levelFromEnv() log.Level {
	v := strings.TrimSpace(os.Getenv("TWODO_LOG_LEVEL"))
	if v == "" {
		return log.InfoLevel
	}
	lvl, err := log.ParseLevel(v)
	if err != nil {
		return log.InfoLevel
	}
	return lvl
}
