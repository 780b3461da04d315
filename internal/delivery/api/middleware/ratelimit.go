package middleware

import (
	"log/slog"

	"pluma/internal/delivery/api/response"
	domainerrors "pluma/internal/domain/errors"
	"pluma/internal/infra/ratelimit"

	"github.com/labstack/echo/v4"
)

// RateLimitMiddleware throttles requests per client IP.
type RateLimitMiddleware struct {
	limiter *ratelimit.KeyedLimiter
	logger  *slog.Logger
}

// NewRateLimitMiddleware is the constructor for RateLimitMiddleware.
func NewRateLimitMiddleware(limiter *ratelimit.KeyedLimiter, logger *slog.Logger) *RateLimitMiddleware {
	return &RateLimitMiddleware{limiter: limiter, logger: logger}
}

// Limit answers TOO_MANY_REQUESTS once the client's bucket is empty.
func (m *RateLimitMiddleware) Limit(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		key := c.RealIP() + " " + c.Path()
		if !m.limiter.Allow(key) {
			m.logger.Warn("Rate limit exceeded",
				slog.String("remote_ip", c.RealIP()),
				slog.String("path", c.Path()),
			)

			return response.AppError(c, domainerrors.ErrTooManyRequests)
		}

		return next(c)
	}
}
