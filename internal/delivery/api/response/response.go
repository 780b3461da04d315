package response

import (
	"net/http"

	deliverycontext "pluma/internal/delivery/context"
	"pluma/internal/domain/constants"
	"pluma/internal/domain/entity"
	domainerrors "pluma/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// SuccessResponse defines the structure for successful responses
type SuccessResponse struct {
	Data any       `json:"data"`
	Meta *MetaInfo `json:"meta"`
}

// ErrorResponse defines the structure for error responses
type ErrorResponse struct {
	Error *ErrorInfo `json:"error"`
	Meta  *MetaInfo  `json:"meta"`
}

// ErrorInfo contains detailed error information
type ErrorInfo struct {
	Code    string `json:"code"`              // Machine-readable error code, e.g., "VALIDATION_FAILED"
	Message string `json:"message"`           // User-friendly error message
	Details any    `json:"details,omitempty"` // Additional error context (only for 4xx errors)
}

// MetaInfo represents response metadata
type MetaInfo struct {
	RequestID string `json:"request_id"` // Request tracking ID
}

// Success returns a successful response
func Success(c echo.Context, statusCode int, data any) error {
	return c.JSON(statusCode, SuccessResponse{
		Data: data,
		Meta: &MetaInfo{
			RequestID: deliverycontext.GetRequestID(c),
		},
	})
}

// Error returns an error response
func Error(c echo.Context, statusCode int, errorCode string, message string, details any) error {
	// Details never leave the server for 5xx errors
	if statusCode >= http.StatusInternalServerError {
		details = nil
	}

	return writeError(c, statusCode, errorCode, message, details)
}

func writeError(c echo.Context, statusCode int, errorCode string, message string, details any) error {
	return c.JSON(statusCode, ErrorResponse{
		Error: &ErrorInfo{
			Code:    errorCode,
			Message: message,
			Details: details,
		},
		Meta: &MetaInfo{
			RequestID: deliverycontext.GetRequestID(c),
		},
	})
}

// BadRequest returns a 400 error
func BadRequest(c echo.Context, errorCode string, message string) error {
	return Error(c, http.StatusBadRequest, errorCode, message, nil)
}

// BindingError returns a binding error response
func BindingError(c echo.Context, errorCode string, message string) error {
	return Error(c, http.StatusBadRequest, errorCode, message, nil)
}

// InternalServerError returns a 500 error
func InternalServerError(c echo.Context, errorCode string, message string) error {
	return Error(c, http.StatusInternalServerError, errorCode, message, nil)
}

// Accepted returns a 202 with data
func Accepted(c echo.Context, data any) error {
	return Success(c, http.StatusAccepted, data)
}

// AuthRequired returns the 401 that sends the client to the login form
func AuthRequired(c echo.Context) error {
	return AppError(c, domainerrors.ErrAuthRequired)
}

// AppError writes appErr with the details clients act on
func AppError(c echo.Context, appErr domainerrors.AppError) error {
	// A failed checkout is shown to the buyer with its reason.
	if failed, ok := appErr.(*domainerrors.CheckoutFailedError); ok {
		return writeError(c, failed.HTTPCode(), failed.ErrorCode(), failed.Message(), map[string]string{
			"state":  string(entity.CheckoutFailed),
			"reason": failed.Details(),
		})
	}

	return Error(c, appErr.HTTPCode(), appErr.ErrorCode(), appErr.Message(), errorDetails(appErr))
}

// errorDetails adds the hints the storefront acts on: where to log in and what to do when not entitled.
func errorDetails(appErr domainerrors.AppError) any {
	switch appErr.ErrorCode() {
	case domainerrors.ErrAuthRequired.ErrorCode():
		return map[string]string{"login_path": constants.LoginPath}
	case domainerrors.ErrNotEntitled.ErrorCode():
		return map[string]string{"action": "add_to_cart"}
	}

	if appErr.Details() == "" {
		return nil
	}

	return appErr.Details()
}

// HandleAppError handles application errors, converting domain errors to appropriate HTTP responses
func HandleAppError(c echo.Context, err error) error {
	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		return AppError(c, appErr)
	}

	return errors.WithStack(err)
}
