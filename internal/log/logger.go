package log

import (
	"context"
	"log/slog"
	"os"

	"github.com/felixgeelhaar/taskplanner/internal/errors"
)

// Logger provides structured logging with slog
type Logger struct {
	slog *slog.Logger
}

// New creates a new Logger with the given configuration
func New(config Config) *Logger {
	w := config.Output
	if w == nil {
		w = os.Stderr
	}

	opts := &slog.HandlerOptions{
		Level:     config.Level.ToSlogLevel(),
		AddSource: config.AddSource,
	}

	var handler slog.Handler
	if config.Format == FormatText {
		handler = slog.NewTextHandler(w, opts)
	} else {
		handler = slog.NewJSONHandler(w, opts)
	}

	return &Logger{slog: slog.New(handler)}
}

// Default creates a logger with default configuration
func Default() *Logger {
	return New(DefaultConfig())
}

// With returns a new Logger with the given attributes added to all log entries
func (l *Logger) With(args ...any) *Logger {
	return &Logger{slog: l.slog.With(args...)}
}

// WithError adds error details to the logger.
// Coded errors also contribute error_code and cause.
func (l *Logger) WithError(err error) *Logger {
	if err == nil {
		return l
	}
	return l.With(errorArgs(err)...)
}

func errorArgs(err error) []any {
	pe, ok := err.(*errors.PlannerError)
	if !ok {
		return []any{"error", err.Error()}
	}

	args := []any{
		"error", pe.Message,
		"error_code", string(pe.Code),
	}
	if pe.Cause != nil {
		args = append(args, "cause", pe.Cause.Error())
	}
	return args
}

func (l *Logger) Debug(msg string, args ...any) { l.slog.Debug(msg, args...) }
func (l *Logger) Info(msg string, args ...any)  { l.slog.Info(msg, args...) }
func (l *Logger) Warn(msg string, args ...any)  { l.slog.Warn(msg, args...) }
func (l *Logger) Error(msg string, args ...any) { l.slog.Error(msg, args...) }

func (l *Logger) DebugContext(ctx context.Context, msg string, args ...any) {
	l.slog.DebugContext(ctx, msg, args...)
}

func (l *Logger) InfoContext(ctx context.Context, msg string, args ...any) {
	l.slog.InfoContext(ctx, msg, args...)
}

func (l *Logger) WarnContext(ctx context.Context, msg string, args ...any) {
	l.slog.WarnContext(ctx, msg, args...)
}
