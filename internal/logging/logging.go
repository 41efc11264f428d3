// Package logging provides structured logging helpers built on log/slog.
package logging

import (
	"context"
	"io"
	"log/slog"
)

type contextKey string

const loggerKey contextKey = "logger"

// NewStructuredLogger creates a slog.Logger writing text output at the given level.
func NewStructuredLogger(w io.Writer, level slog.Level) *slog.Logger {
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

// WithLogger stores a logger in the context for downstream handlers.
func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, loggerKey, logger)
}

// FromContext retrieves the logger from the context, falling back to the default logger.
func FromContext(ctx context.Context) *slog.Logger {
	if logger, ok := ctx.Value(loggerKey).(*slog.Logger); ok {
		return logger
	}
	return slog.Default()
}

// LogError logs an error with a message and optional structured attributes.
func LogError(logger *slog.Logger, msg string, err error, attrs ...slog.Attr) {
	args := make([]any, 0, len(attrs)+1)
	args = append(args, slog.Any("error", err))
	for _, a := range attrs {
		args = append(args, a)
	}
	logger.Error(msg, args...)
}

// LogOperation logs a named operation at info level with optional attributes.
func LogOperation(logger *slog.Logger, operation string, attrs ...slog.Attr) {
	args := make([]any, 0, len(attrs))
	for _, a := range attrs {
		args = append(args, a)
	}
	logger.Info(operation, args...)
}

// LogHTTPRequest logs a completed HTTP request with method, path, status, and latency.
func LogHTTPRequest(logger *slog.Logger, method, path string, status int, durationMs float64, attrs ...slog.Attr) {
	args := make([]any, 0, len(attrs)+4)
	args = append(args,
		slog.String("method", method),
		slog.String("path", path),
		slog.Int("status", status),
		slog.Float64("duration_ms", durationMs),
	)
	for _, a := range attrs {
		args = append(args, a)
	}
	logger.Info("http_request", args...)
}

// SafeCloseWithLogging closes c and logs any close error instead of dropping it.
func SafeCloseWithLogging(c io.Closer, logger *slog.Logger, name string) {
	if err := c.Close(); err != nil {
		LogError(logger, "failed to close "+name, err)
	}
}
