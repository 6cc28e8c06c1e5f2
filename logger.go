package sift

import (
	"context"
	"log/slog"
	"os"

	"github.com/siftql/sift/filter"
)

// Logger wraps slog.Logger with sift-specific helpers.
// This provides structured logging with consistent field names.
type Logger struct {
	*slog.Logger
}

// NewLogger creates a new Logger with the given handler.
// If handler is nil, uses default text handler to stderr.
func NewLogger(handler slog.Handler) *Logger {
	if handler == nil {
		handler = slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelInfo,
		})
	}
	return &Logger{
		Logger: slog.New(handler),
	}
}

// NewJSONLogger creates a Logger that outputs JSON-formatted logs.
// level sets the minimum log level (e.g., slog.LevelDebug, slog.LevelInfo).
func NewJSONLogger(level slog.Level) *Logger {
	handler := slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})
	return &Logger{
		Logger: slog.New(handler),
	}
}

// NewTextLogger creates a Logger that outputs human-readable text logs.
func NewTextLogger(level slog.Level) *Logger {
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})
	return &Logger{
		Logger: slog.New(handler),
	}
}

// NoopLogger creates a Logger that discards all log output.
// Use this to disable logging entirely.
func NoopLogger() *Logger {
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.Level(1000), // Unreachable level
	})
	return &Logger{
		Logger: slog.New(handler),
	}
}

// WithField adds a field key to the logger.
func (l *Logger) WithField(key string) *Logger {
	return &Logger{
		Logger: l.Logger.With("field", key),
	}
}

// WithQuery adds an option-lookup query to the logger.
func (l *Logger) WithQuery(query string) *Logger {
	return &Logger{
		Logger: l.Logger.With("query", query),
	}
}

// LogCommit logs a condition commit.
func (l *Logger) LogCommit(ctx context.Context, field string, op filter.Operator, err error) {
	if err != nil {
		l.ErrorContext(ctx, "commit rejected",
			"field", field,
			"operator", op,
			"error", err,
		)
	} else {
		l.DebugContext(ctx, "condition committed",
			"field", field,
			"operator", op,
		)
	}
}

// LogRemove logs a condition removal.
func (l *Logger) LogRemove(ctx context.Context, index, remaining int, err error) {
	if err != nil {
		l.ErrorContext(ctx, "remove rejected",
			"index", index,
			"error", err,
		)
	} else {
		l.DebugContext(ctx, "condition removed",
			"index", index,
			"remaining", remaining,
		)
	}
}

// LogApply logs a row-set filter application.
func (l *Logger) LogApply(ctx context.Context, in, out int) {
	l.DebugContext(ctx, "filter applied",
		"rows_in", in,
		"rows_out", out,
	)
}
