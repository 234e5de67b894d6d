// Package logging provides structured logging infrastructure for skillctl.
package logging

import (
	"io"
	"log/slog"
	"os"

	"github.com/google/uuid"
)

// NewDefault creates a default logger writing text to stderr.
func NewDefault() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelWarn,
	}))
}

// NewWithLevel creates a logger with the specified level.
func NewWithLevel(level slog.Level) *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))
}

// NewForTest creates a silent logger for tests.
func NewForTest() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{
		Level: slog.LevelError,
	}))
}

// WithInvocation returns a logger tagged with a fresh pipeline invocation id.
// Every add/scan run gets its own id so interleaved log lines can be grouped.
func WithInvocation(logger *slog.Logger) *slog.Logger {
	return logger.With("invocation_id", uuid.NewString())
}

// WithSkill returns a logger with skill context.
func WithSkill(logger *slog.Logger, name string) *slog.Logger {
	return logger.With("skill", name)
}

// WithSource returns a logger with source context.
func WithSource(logger *slog.Logger, source string) *slog.Logger {
	return logger.With("source", source)
}
