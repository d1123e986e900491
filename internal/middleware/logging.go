package middleware

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"
)

// loggerKey is the key used to store the logger in a context.Context.
// Using a custom type prevents collisions.
type contextKey string

const (
	loggerKey    = contextKey("logger")
	requestIDKey = contextKey("requestID")
)

// CommandFunc is one unit of work run on behalf of the console user.
type CommandFunc func(ctx context.Context) error

// StructuredLogging wraps next so it runs with a request-scoped logger in its
// context. Each invocation gets its own request_id.
func StructuredLogging(baseLogger *slog.Logger, command string, next CommandFunc) CommandFunc {
	return func(ctx context.Context) error {
		start := time.Now()
		requestID := uuid.NewString()

		// Create a logger enriched with request-specific fields
		requestLogger := baseLogger.With(
			slog.String("request_id", requestID),
			slog.String("command", command),
		)

		ctx = WithLogger(ctx, requestLogger)
		ctx = context.WithValue(ctx, requestIDKey, requestID)

		err := next(ctx)

		latency := time.Since(start)
		if err != nil {
			requestLogger.Error("Command failed",
				slog.String("error", err.Error()),
				slog.Duration("latency", latency),
			)
			return err
		}
		requestLogger.Debug("Command completed", slog.Duration("latency", latency))
		return nil
	}
}

// WithLogger returns a copy of ctx carrying logger.
func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, loggerKey, logger)
}

// GetLoggerFromCtx retrieves the request-scoped logger from the context.
// It returns the default logger if none is found.
func GetLoggerFromCtx(ctx context.Context) *slog.Logger {
	if ctx == nil {
		return slog.Default()
	}
	logger, ok := ctx.Value(loggerKey).(*slog.Logger)
	if !ok || logger == nil {
		return slog.Default()
	}
	return logger
}

// GetRequestIDFromCtx retrieves the request ID set by StructuredLogging.
func GetRequestIDFromCtx(ctx context.Context) (string, bool) {
	requestID, ok := ctx.Value(requestIDKey).(string)
	return requestID, ok
}
