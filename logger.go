package datakit

import (
	"context"
	"io"
	"log/slog"
	"os"
)

// Logger wraps slog.Logger with datakit-specific context.
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

// NewJSONLogger creates a Logger that writes JSON-formatted logs to w.
// A nil writer means stderr.
func NewJSONLogger(w io.Writer, level slog.Level) *Logger {
	if w == nil {
		w = os.Stderr
	}
	return &Logger{
		Logger: slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{Level: level})),
	}
}

// NewTextLogger creates a Logger that writes human-readable text logs to w.
// A nil writer means stderr.
func NewTextLogger(w io.Writer, level slog.Level) *Logger {
	if w == nil {
		w = os.Stderr
	}
	return &Logger{
		Logger: slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level})),
	}
}

// NoopLogger creates a Logger that discards all log output.
func NoopLogger() *Logger {
	return &Logger{
		Logger: slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{
			Level: slog.Level(1000),
		})),
	}
}

// DefaultLogger returns a Logger backed by slog.Default().
func DefaultLogger() *Logger {
	return &Logger{Logger: slog.Default()}
}

// WithComponent adds a component field (e.g. "stringpool", "intset").
func (l *Logger) WithComponent(name string) *Logger {
	return &Logger{
		Logger: l.Logger.With("component", name),
	}
}

// WithBucket adds a bucket key field.
func (l *Logger) WithBucket(key string) *Logger {
	return &Logger{
		Logger: l.Logger.With("bucket", key),
	}
}

// WithID adds an ID field to the logger.
func (l *Logger) WithID(id uint64) *Logger {
	return &Logger{
		Logger: l.Logger.With("id", id),
	}
}

// WithOperation adds an operation field to the logger.
func (l *Logger) WithOperation(op string) *Logger {
	return &Logger{
		Logger: l.Logger.With("op", op),
	}
}

// LogPoolReset logs a string pool reset.
func (l *Logger) LogPoolReset(ctx context.Context, freed int) {
	l.DebugContext(ctx, "pool reset",
		"freed", freed,
	)
}

// LogPoolRecycle logs that a released ID went back to the free list.
func (l *Logger) LogPoolRecycle(ctx context.Context, id uint64) {
	l.DebugContext(ctx, "id recycled",
		"id", id,
	)
}

// LogBucketCreated logs creation of a big-set bucket.
func (l *Logger) LogBucketCreated(ctx context.Context, key string) {
	l.DebugContext(ctx, "bucket created",
		"bucket", key,
	)
}

// LogBucketRemoved logs removal of an emptied big-set bucket.
func (l *Logger) LogBucketRemoved(ctx context.Context, key string) {
	l.DebugContext(ctx, "bucket removed",
		"bucket", key,
	)
}

// LogSIMDSelected logs the instruction set chosen for the kernels.
func (l *Logger) LogSIMDSelected(ctx context.Context, isa string, overridden bool) {
	l.InfoContext(ctx, "simd kernels selected",
		"isa", isa,
		"overridden", overridden,
	)
}
