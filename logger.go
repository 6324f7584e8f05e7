package bsgs

import (
	"context"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/dustin/go-humanize"
)

// Logger wraps slog.Logger with solver-specific helpers so phase logs carry
// consistent field names.
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

// NewJSONLogger creates a Logger that outputs JSON-formatted logs to w.
func NewJSONLogger(w io.Writer, level slog.Level) *Logger {
	return NewLogger(slog.NewJSONHandler(w, &slog.HandlerOptions{Level: level}))
}

// NewTextLogger creates a Logger that outputs human-readable text logs to w.
func NewTextLogger(w io.Writer, level slog.Level) *Logger {
	return NewLogger(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

// NoopLogger creates a Logger that discards all log output.
func NoopLogger() *Logger {
	return NewLogger(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{
		Level: slog.Level(1000), // Unreachable level
	}))
}

// WithWorkers adds a workers field to the logger.
func (l *Logger) WithWorkers(w int) *Logger {
	return &Logger{
		Logger: l.Logger.With("workers", w),
	}
}

// phase logs at Info when progress reporting is on and at Debug otherwise.
func (l *Logger) phase(ctx context.Context, progress bool, msg string, args ...any) {
	level := slog.LevelDebug
	if progress {
		level = slog.LevelInfo
	}
	l.Log(ctx, level, msg, args...)
}

// LogLayout logs the per-query geometry and the memory both buffers will take.
func (l *Logger) LogLayout(ctx context.Context, progress bool, lay Layout, p string) {
	l.phase(ctx, progress, "search layout",
		"n", lay.Count,
		"p", p,
		"index_width", lay.IndexWidth,
		"item_width", lay.ItemWidth,
		"memory", humanize.IBytes(uint64(2*lay.Bytes())),
	)
}

// LogPhase logs a completed phase with its duration.
func (l *Logger) LogPhase(ctx context.Context, progress bool, name string, start time.Time, err error) {
	if err != nil {
		l.ErrorContext(ctx, "phase failed",
			"phase", name,
			"error", err,
		)
		return
	}
	l.phase(ctx, progress, "phase completed",
		"phase", name,
		"elapsed", time.Since(start),
	)
}

// LogRecover logs the final outcome of a Recover call.
func (l *Logger) LogRecover(ctx context.Context, candidates int, err error) {
	if err != nil {
		l.WarnContext(ctx, "recover failed",
			"candidates", candidates,
			"error", err,
		)
	} else {
		l.DebugContext(ctx, "recover completed",
			"candidates", candidates,
		)
	}
}
