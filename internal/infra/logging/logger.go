// Package logging builds the structured logger used by lean.
// Logs go to stderr so they never mix with command output.
package logging

import (
	"io"
	"log/slog"
	"os"

	"golang.org/x/term"
)

// New creates a logger writing to w at the given level.
// When w is a terminal the text handler is used, otherwise JSON, so piped
// output stays machine-readable.
func New(w io.Writer, level slog.Level) *slog.Logger {
	options := &slog.HandlerOptions{Level: level}
	var handler slog.Handler
	if isTerminal(w) {
		handler = slog.NewTextHandler(w, options)
	} else {
		handler = slog.NewJSONHandler(w, options)
	}
	return slog.New(handler)
}

// Discard returns a logger that drops every record.
func Discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// ParseLevel parses a log level string into slog.Level.
// Unknown values fall back to warn.
func ParseLevel(levelStr string) slog.Level {
	switch levelStr {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelWarn
	}
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return term.IsTerminal(int(f.Fd())) //nolint:gosec // Fd fits in int on supported platforms
}
