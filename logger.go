package assoc

import (
	"log/slog"
	"os"
)

// Logger wraps slog.Logger with assoc-specific context.
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
// This is the default for new stores.
func NoopLogger() *Logger {
	return &Logger{
		Logger: slog.New(slog.DiscardHandler),
	}
}

// WithStore tags every record with a store name.
func (l *Logger) WithStore(name string) *Logger {
	return &Logger{
		Logger: l.Logger.With("store", name),
	}
}

// WithCount adds a count field to the logger.
func (l *Logger) WithCount(count int) *Logger {
	return &Logger{
		Logger: l.Logger.With("count", count),
	}
}

// LogBatchSet logs an MSet call.
func (l *Logger) LogBatchSet(count, inserted int, err error) {
	if err != nil {
		l.Warn("batch set stopped",
			"count", count,
			"inserted", inserted,
			"error", err,
		)
	} else {
		l.Debug("batch set completed",
			"count", count,
			"inserted", inserted,
		)
	}
}

// LogRejected logs a single-key operation that failed.
func (l *Logger) LogRejected(op string, err error) {
	l.Warn("operation rejected",
		"op", op,
		"error", err,
	)
}

// LogRemove logs a Remove call.
func (l *Logger) LogRemove(requested, removed int) {
	l.Debug("remove completed",
		"requested", requested,
		"removed", removed,
	)
}

// LogReset logs a Reset call.
func (l *Logger) LogReset(cleared int, releasedBytes int64) {
	l.Debug("store reset",
		"cleared", cleared,
		"released_bytes", releasedBytes,
	)
}

// LogClose logs the teardown of a store.
func (l *Logger) LogClose(keys int, releasedBytes int64) {
	l.Info("store closed",
		"keys", keys,
		"released_bytes", releasedBytes,
	)
}
