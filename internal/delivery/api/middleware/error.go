package middleware

import (
	"log/slog"
	"net/http"

	"pluma/internal/delivery/api/response"
	deliverycontext "pluma/internal/delivery/context"
	domainerrors "pluma/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// transportErrorCodes names the echo errors clients can act on.
var transportErrorCodes = map[int]string{
	http.StatusNotFound:              "ROUTE_NOT_FOUND",
	http.StatusMethodNotAllowed:      "METHOD_NOT_ALLOWED",
	http.StatusRequestEntityTooLarge: "PAYLOAD_TOO_LARGE",
	http.StatusUnsupportedMediaType:  "UNSUPPORTED_MEDIA_TYPE",
}

// ErrorMiddleware turns handler errors into the JSON error envelope.
type ErrorMiddleware struct {
	logger *slog.Logger
}

// NewErrorMiddleware creates a new error handling middleware
func NewErrorMiddleware(logger *slog.Logger) *ErrorMiddleware {
	return &ErrorMiddleware{
		logger: logger,
	}
}

// HandleHTTPError handles errors as Echo's HTTPErrorHandler
func (m *ErrorMiddleware) HandleHTTPError(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		if appErr.HTTPCode() >= http.StatusInternalServerError {
			m.logFailure(c, "Request failed", err)
		}

		_ = response.AppError(c, appErr)

		return
	}

	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) {
		code, ok := transportErrorCodes[httpErr.Code]
		if !ok {
			code = "HTTP_ERROR"
		}

		message := http.StatusText(httpErr.Code)
		if msg, ok := httpErr.Message.(string); ok && msg != "" {
			message = msg
		}

		_ = response.Error(c, httpErr.Code, code, message, nil)

		return
	}

	m.logFailure(c, "Unhandled error", err)
	_ = response.InternalServerError(c, "INTERNAL_ERROR", "Internal server error, please try again later")
}

func (m *ErrorMiddleware) logFailure(c echo.Context, msg string, err error) {
	req := c.Request()
	deliverycontext.GetLoggerOrDefault(req.Context(), m.logger).Error(msg,
		slog.Any("error", err),
		slog.String("path", req.URL.Path),
		slog.String("method", req.Method),
	)
}
