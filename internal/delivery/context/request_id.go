// Package context carries request-scoped values from the delivery layer down to the use cases.
package context

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

type contextKey int

const (
	requestIDKey contextKey = iota
	loggerKey
	userIDKey
)

const (
	// HeaderXRequestID is the HTTP header name for request ID.
	HeaderXRequestID = "X-Request-Id"

	echoRequestIDKey = "request_id"
)

// SetRequestID stores the request ID on the echo context for the response envelope.
func SetRequestID(c echo.Context, requestID string) {
	c.Set(echoRequestIDKey, requestID)
}

// GetRequestID returns the request ID stored on the echo context, or "" outside the request ID middleware.
func GetRequestID(c echo.Context) string {
	id, _ := c.Get(echoRequestIDKey).(string)

	return id
}

// WithRequestID returns a new context with the request ID.
func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, requestIDKey, requestID)
}

// GetRequestIDFromContext is used by use cases to stamp published events.
func GetRequestIDFromContext(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey).(string)

	return id
}

// WithLogger returns a new context with the logger.
func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, loggerKey, logger)
}

// GetLogger returns the request-scoped logger, or nil.
func GetLogger(ctx context.Context) *slog.Logger {
	logger, _ := ctx.Value(loggerKey).(*slog.Logger)

	return logger
}

// GetLoggerOrDefault returns the request-scoped logger or fallback.
func GetLoggerOrDefault(ctx context.Context, fallback *slog.Logger) *slog.Logger {
	if logger := GetLogger(ctx); logger != nil {
		return logger
	}

	return fallback
}

// WithUserID records the signed-in reader and tags the request logger with the id.
func WithUserID(ctx context.Context, userID uuid.UUID) context.Context {
	ctx = context.WithValue(ctx, userIDKey, userID)
	if logger := GetLogger(ctx); logger != nil {
		ctx = WithLogger(ctx, logger.With(slog.String("user_id", userID.String())))
	}

	return ctx
}

// GetUserIDFromContext returns the signed-in reader, if any.
func GetUserIDFromContext(ctx context.Context) (uuid.UUID, bool) {
	userID, ok := ctx.Value(userIDKey).(uuid.UUID)

	return userID, ok && userID != uuid.Nil
}
