// Package errors defines the application error taxonomy shared by all
// notification handlers.
package errors

import (
	"net/http"

	"notifier/internal/errors"
)

// AppError defines the interface for application-specific errors
type AppError interface {
	error
	HTTPCode() int     // HTTP status code
	ErrorCode() string // Business error code
	Message() string   // User-facing error message
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

// Message returns the user-facing error message
func (e *BaseError) Message() string {
	return e.message
}

// Details returns detailed error information
func (e *BaseError) Details() string {
	return e.details
}

// Is matches BaseErrors by business code, so derived errors created by
// WithDetails still match their predefined value under errors.Is.
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
	// Recipient resolution errors
	ErrVendorNotFound = NewBaseError(
		http.StatusNotFound,
		"VENDOR_NOT_FOUND",
		"Vendedor no encontrado",
		"",
	)

	ErrClientNotFound = NewBaseError(
		http.StatusNotFound,
		"CLIENT_NOT_FOUND",
		"Cliente no encontrado",
		"",
	)

	ErrMissingFCMToken = NewBaseError(
		http.StatusInternalServerError,
		"MISSING_FCM_TOKEN",
		"Token FCM no encontrado",
		"",
	)

	// Source record errors
	ErrRecordNotFound = NewBaseError(
		http.StatusNotFound,
		"RECORD_NOT_FOUND",
		"Registro no encontrado",
		"",
	)

	// Validation errors
	ErrValidationFailed = NewBaseError(
		http.StatusBadRequest,
		"VALIDATION_FAILED",
		"Datos de evento inválidos",
		"",
	)

	// Push delivery errors
	ErrDeliveryFailed = NewBaseError(
		http.StatusInternalServerError,
		"DELIVERY_FAILED",
		"No se pudo enviar la notificación",
		"",
	)

	// Document store errors
	ErrStoreWriteFailed = NewBaseError(
		http.StatusInternalServerError,
		"STORE_WRITE_FAILED",
		"No se pudo actualizar el registro",
		"",
	)

	ErrStoreReadFailed = NewBaseError(
		http.StatusInternalServerError,
		"STORE_READ_FAILED",
		"No se pudo leer el registro",
		"",
	)

	// General errors
	ErrInternalError = NewBaseError(
		http.StatusInternalServerError,
		"INTERNAL_ERROR",
		"Error interno del sistema",
		"",
	)
)
