// Package logging provides structured logging for the go-vecmath tools.
// It wraps Go's standard slog package with run IDs carried on the context
// and an attribute filter that keeps NaN and infinite values loggable.
package logging

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/google/uuid"
)

// Logger wraps slog.Logger with run ID support.
type Logger struct {
	*slog.Logger
}

// NewLogger creates a Logger writing JSON to stderr, so that tool output on
// stdout stays clean. The level is read from VECMATH_LOG_LEVEL
// (DEBUG, INFO, WARN, ERROR) and defaults to INFO.
func NewLogger() *Logger {
	return NewLoggerTo(os.Stderr, getLogLevelFromEnv())
}

// NewLoggerTo creates a Logger writing JSON to w at the given level.
func NewLoggerTo(w io.Writer, level slog.Level) *Logger {
	handler := slog.NewJSONHandler(w, &slog.HandlerOptions{
		Level:       level,
		ReplaceAttr: replaceNonFinite,
	})
	return &Logger{slog.New(handler)}
}

// LogWithContext logs a message, adding the run ID from ctx when present.
func (l *Logger) LogWithContext(ctx context.Context, level slog.Level, msg string, args ...any) {
	if runID := GetRunID(ctx); runID != "" {
		args = append(args, "run_id", runID)
	}
	l.Log(ctx, level, msg, args...)
}

// Info logs an informational message with context.
func (l *Logger) Info(ctx context.Context, msg string, args ...any) {
	l.LogWithContext(ctx, slog.LevelInfo, msg, args...)
}

// Warn logs a warning message with context.
func (l *Logger) Warn(ctx context.Context, msg string, args ...any) {
	l.LogWithContext(ctx, slog.LevelWarn, msg, args...)
}

// Error logs an error message with context and proper error formatting.
func (l *Logger) Error(ctx context.Context, msg string, err error, args ...any) {
	if err != nil {
		args = append(args, "error", err.Error())
	}
	l.LogWithContext(ctx, slog.LevelError, msg, args...)
}

// Debug logs a debug message with context.
func (l *Logger) Debug(ctx context.Context, msg string, args ...any) {
	l.LogWithContext(ctx, slog.LevelDebug, msg, args...)
}

type runIDKey struct{}

// WithRunID adds a run ID to the context, generating one if id is empty.
func WithRunID(ctx context.Context, id string) context.Context {
	if id == "" {
		id = GenerateRunID()
	}
	return context.WithValue(ctx, runIDKey{}, id)
}

// GetRunID returns the run ID stored in ctx, or "".
func GetRunID(ctx context.Context) string {
	if id, ok := ctx.Value(runIDKey{}).(string); ok {
		return id
	}
	return ""
}

// GenerateRunID creates a new random run ID.
func GenerateRunID() string {
	return uuid.NewString()
}

func getLogLevelFromEnv() slog.Level {
	return ParseLevel(os.Getenv("VECMATH_LOG_LEVEL"))
}

// ParseLevel maps a level name to a slog level. Unknown names yield INFO.
func ParseLevel(name string) slog.Level {
	switch strings.ToUpper(strings.TrimSpace(name)) {
	case "DEBUG":
		return slog.LevelDebug
	case "WARN", "WARNING":
		return slog.LevelWarn
	case "ERROR":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// validator is implemented by the vector types.
type validator interface {
	IsValid() bool
}

// replaceNonFinite rewrites attributes the JSON handler cannot encode:
// NaN and infinite floats, and vectors holding them, become strings.
func replaceNonFinite(groups []string, a slog.Attr) slog.Attr {
	switch a.Value.Kind() {
	case slog.KindFloat64:
		f := a.Value.Float64()
		if math.IsNaN(f) || math.IsInf(f, 0) {
			return slog.String(a.Key, strconv.FormatFloat(f, 'g', -1, 64))
		}
	case slog.KindAny:
		if v, ok := a.Value.Any().(validator); ok && !v.IsValid() {
			return slog.String(a.Key, fmt.Sprint(v))
		}
	}
	return a
}

// WrapError wraps an error with additional context information.
// This preserves the original error while adding descriptive context.
func WrapError(err error, context string, args ...any) error {
	if err == nil {
		return nil
	}
	if len(args) > 0 {
		context = fmt.Sprintf(context, args...)
	}
	return fmt.Errorf("%s: %w", context, err)
}
