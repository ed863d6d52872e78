package demo

import (
	"io"
	"log/slog"
)

// NewLogger returns a text slog.Logger writing to w.
// verbose lowers the threshold from Info to Debug so scenario progress shows.
func NewLogger(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}

	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

// NoopLogger returns a logger that discards everything.
func NoopLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.Level(1000)}))
}
