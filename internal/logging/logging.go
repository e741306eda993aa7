// Package logging provides small helpers around log/slog: context plumbing
// for request-scoped loggers and consistent attribute shapes for errors,
// operations, and HTTP requests.
package logging

import (
	"context"
	"io"
	"log/slog"
)

type contextKey string

const loggerKey contextKey = "logger"

// WithLogger returns a context carrying the given logger.
func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, loggerKey, logger)
}

// FromContext returns the logger stored in the context, or slog.Default()
// when none was attached.
func FromContext(ctx context.Context) *slog.Logger {
	if logger, ok := ctx.Value(loggerKey).(*slog.Logger); ok {
		return logger
	}
	return slog.Default()
}

// LogError logs an error with a consistent attribute shape.
func LogError(logger *slog.Logger, msg string, err error, attrs ...any) {
	args := append([]any{slog.String("error", err.Error())}, attrs...)
	logger.Error(msg, args...)
}

// LogOperation logs a named operation at info level.
func LogOperation(logger *slog.Logger, operation string, attrs ...any) {
	args := append([]any{slog.String("operation", operation)}, attrs...)
	logger.Info("operation", args...)
}

// LogHTTPRequest logs a completed HTTP request.
func LogHTTPRequest(logger *slog.Logger, method, path string, status int, durationMs float64, attrs ...any) {
	args := append([]any{
		slog.String("method", method),
		slog.String("path", path),
		slog.Int("status", status),
		slog.Float64("duration_ms", durationMs),
	}, attrs...)
	logger.Info("http_request", args...)
}

// SafeCloseWithLogging closes the closer and logs a warning if closing fails.
// Intended for defer sites where the close error cannot change the outcome.
func SafeCloseWithLogging(c io.Closer, logger *slog.Logger, name string) {
	if err := c.Close(); err != nil {
		logger.Warn("failed to close resource",
			slog.String("resource", name),
			slog.String("error", err.Error()))
	}
}
