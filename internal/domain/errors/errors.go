package errors

import (
	"net/http"

	"pluma/internal/errors"
)

// AppError defines the interface for application-specific errors
type AppError interface {
	error
	HTTPCode() int     // HTTP status code
	ErrorCode() string // Business error code
	Message() string   // User-friendly error message
	Details() string   // Detailed error information (optional)
}

// BaseError is a basic error structure that implements the AppError interface
type BaseError struct {
	httpCode  int
	errorCode string
	message   string
	details   string
}

// NewBaseError creates a new base error
func NewBaseError(httpCode int, errorCode, message, details string) *BaseError {
	return &BaseError{
		httpCode:  httpCode,
		errorCode: errorCode,
		message:   message,
		details:   details,
	}
}

// Error implements the error interface
func (e *BaseError) Error() string {
	return e.message
}

// WrapMessage wraps the error with additional context message
func (e *BaseError) WrapMessage(message string) error {
	return errors.Wrap(e, message)
}

// HTTPCode returns the HTTP status code
func (e *BaseError) HTTPCode() int {
	return e.httpCode
}

// ErrorCode returns the business error code
func (e *BaseError) ErrorCode() string {
	return e.errorCode
}

// Message returns the user-friendly error message
func (e *BaseError) Message() string {
	return e.message
}

// Details returns detailed error information
func (e *BaseError) Details() string {
	return e.details
}

// Is matches any BaseError with the same business code, so copies made by WithDetails still match.
func (e *BaseError) Is(target error) bool {
	t, ok := target.(*BaseError)

	return ok && t.errorCode == e.errorCode
}

// WithDetails adds detailed error information
func (e *BaseError) WithDetails(details string) *BaseError {
	return &BaseError{
		httpCode:  e.httpCode,
		errorCode: e.errorCode,
		message:   e.message,
		details:   details,
	}
}

// Predefined error types
var (
	// Session-related errors
	ErrAuthRequired = NewBaseError(
		http.StatusUnauthorized,
		"AUTH_REQUIRED",
		"Faça login para continuar",
		"",
	)

	ErrInvalidCredentials = NewBaseError(
		http.StatusUnauthorized,
		"INVALID_CREDENTIALS",
		"E-mail ou senha inválidos",
		"",
	)

	ErrRefreshTokenInvalid = NewBaseError(
		http.StatusUnauthorized,
		"REFRESH_TOKEN_INVALID",
		"Sessão expirada, faça login novamente",
		"",
	)

	ErrResetTokenInvalid = NewBaseError(
		http.StatusBadRequest,
		"RESET_TOKEN_INVALID",
		"Link de redefinição inválido ou expirado",
		"",
	)

	ErrPasswordMismatch = NewBaseError(
		http.StatusBadRequest,
		"PASSWORD_MISMATCH",
		"As senhas não coincidem",
		"",
	)

	ErrPasswordTooShort = NewBaseError(
		http.StatusBadRequest,
		"PASSWORD_TOO_SHORT",
		"A senha deve ter pelo menos 6 caracteres",
		"",
	)

	ErrPasswordHashFailed = NewBaseError(
		http.StatusInternalServerError,
		"PASSWORD_HASH_FAILED",
		"Erro ao processar a senha",
		"",
	)

	ErrEmailAlreadyRegistered = NewBaseError(
		http.StatusConflict,
		"EMAIL_ALREADY_REGISTERED",
		"Este e-mail já está cadastrado",
		"",
	)

	ErrTooManyRequests = NewBaseError(
		http.StatusTooManyRequests,
		"RATE_LIMITED",
		"Muitas tentativas, aguarde um momento",
		"",
	)

	// Profile-related errors
	ErrUserNotFound = NewBaseError(
		http.StatusNotFound,
		"USER_NOT_FOUND",
		"Usuário não encontrado",
		"",
	)

	ErrUsernameTaken = NewBaseError(
		http.StatusConflict,
		"USERNAME_TAKEN",
		"Este nome de usuário já está em uso",
		"",
	)

	ErrInvalidUsername = NewBaseError(
		http.StatusBadRequest,
		"INVALID_USERNAME",
		"Nome de usuário inválido",
		"",
	)

	ErrAvatarInvalid = NewBaseError(
		http.StatusBadRequest,
		"AVATAR_INVALID",
		"Envie uma imagem PNG, JPEG, GIF ou WEBP",
		"",
	)

	ErrAvatarTooLarge = NewBaseError(
		http.StatusRequestEntityTooLarge,
		"AVATAR_TOO_LARGE",
		"A imagem excede o tamanho máximo permitido",
		"",
	)

	ErrStorageFailed = NewBaseError(
		http.StatusInternalServerError,
		"STORAGE_FAILED",
		"Falha ao salvar o arquivo",
		"",
	)

	// Catalog-related errors
	ErrProductNotFound = NewBaseError(
		http.StatusNotFound,
		"PRODUCT_NOT_FOUND",
		"Livro não encontrado",
		"",
	)

	ErrNotEntitled = NewBaseError(
		http.StatusForbidden,
		"NOT_ENTITLED",
		"Compre este livro para ler",
		"",
	)

	// Checkout-related errors
	ErrCartEmpty = NewBaseError(
		http.StatusConflict,
		"CART_EMPTY",
		"Seu carrinho está vazio",
		"",
	)

	ErrCheckoutInProgress = NewBaseError(
		http.StatusConflict,
		"CHECKOUT_IN_PROGRESS",
		"Já existe uma compra sendo processada",
		"",
	)

	ErrInvalidPaymentDetails = NewBaseError(
		http.StatusBadRequest,
		"INVALID_PAYMENT_DETAILS",
		"Dados de pagamento inválidos",
		"",
	)

	ErrUnsupportedPaymentMethod = NewBaseError(
		http.StatusBadRequest,
		"UNSUPPORTED_PAYMENT_METHOD",
		"Forma de pagamento não suportada",
		"",
	)

	// Validation-related errors
	ErrValidationFailed = NewBaseError(
		http.StatusBadRequest,
		"VALIDATION_FAILED",
		"Dados de entrada inválidos",
		"",
	)

	// Transaction-related errors
	ErrTransactionFailed = NewBaseError(
		http.StatusInternalServerError,
		"TRANSACTION_FAILED",
		"Falha na transação do banco de dados",
		"",
	)

	// General errors
	ErrInternalError = NewBaseError(
		http.StatusInternalServerError,
		"INTERNAL_ERROR",
		"Erro interno do sistema",
		"",
	)

	ErrForbidden = NewBaseError(
		http.StatusForbidden,
		"FORBIDDEN",
		"Acesso negado",
		"",
	)

	ErrNotFound = NewBaseError(
		http.StatusNotFound,
		"NOT_FOUND",
		"Recurso não encontrado",
		"",
	)

	ErrConflict = NewBaseError(
		http.StatusConflict,
		"CONFLICT",
		"Conflito de recursos",
		"",
	)
)

// DatabaseExecuteError represents a database execution error, implementing the AppError interface
type DatabaseExecuteError struct {
	err     error
	details string
}

// NewDatabaseExecuteError creates a database-related error
func NewDatabaseExecuteError(err error, details string) AppError {
	return &DatabaseExecuteError{
		err:     err,
		details: details,
	}
}

// Error implements the error interface
func (e *DatabaseExecuteError) Error() string {
	return errors.Wrap(e.err, "database execution failed").Error()
}

// Unwrap exposes the driver error to errors.Is and errors.As
func (e *DatabaseExecuteError) Unwrap() error {
	return e.err
}

// HTTPCode returns the HTTP status code
func (e *DatabaseExecuteError) HTTPCode() int {
	return http.StatusInternalServerError
}

// ErrorCode returns the business error code
func (e *DatabaseExecuteError) ErrorCode() string {
	return "DATABASE_EXECUTE_FAILED"
}

// Message returns the user-friendly error message
func (e *DatabaseExecuteError) Message() string {
	return "Falha ao acessar o banco de dados"
}

// Details returns detailed error information
func (e *DatabaseExecuteError) Details() string {
	return e.details
}

// CheckoutFailedError reports a submitted checkout that did not complete. The cart is left as it was.
type CheckoutFailedError struct {
	err    error
	reason string
}

// NewCheckoutFailedError wraps the error that failed the checkout; reason is shown to the buyer as is.
func NewCheckoutFailedError(err error, reason string) AppError {
	return &CheckoutFailedError{
		err:    err,
		reason: reason,
	}
}

// Error implements the error interface
func (e *CheckoutFailedError) Error() string {
	return errors.Wrap(e.err, "checkout failed").Error()
}

// Unwrap exposes the cause to errors.Is and errors.As
func (e *CheckoutFailedError) Unwrap() error {
	return e.err
}

// HTTPCode returns the HTTP status code
func (e *CheckoutFailedError) HTTPCode() int {
	return http.StatusInternalServerError
}

// ErrorCode returns the business error code
func (e *CheckoutFailedError) ErrorCode() string {
	return "CHECKOUT_FAILED"
}

// Message returns the user-friendly error message
func (e *CheckoutFailedError) Message() string {
	return "Falha no processo: " + e.reason
}

// Details returns the failure reason
func (e *CheckoutFailedError) Details() string {
	return e.reason
}
