// Package impl contains the application-specific business rules implementations.
package impl

import (
	"context"
	"log/slog"

	deliverycontext "pluma/internal/delivery/context"
)

// requestLogger returns the request-scoped logger if available, otherwise fallback.
func requestLogger(ctx context.Context, fallback *slog.Logger) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, fallback)
}
