// Package response builds the unified JSON wire shapes for event handlers.
package response

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// Response is the wire shape for handled events.
type Response struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
	Error   string `json:"error,omitempty"`
	Code    string `json:"code,omitempty"`
}

// Success responds 200 with an optional informational message, e.g. for
// short-circuited no-op events.
func Success(c echo.Context, message string) error {
	return c.JSON(http.StatusOK, Response{
		Success: true,
		Message: message,
	})
}

// Error responds with the error message and a coarse machine-readable code.
func Error(c echo.Context, statusCode int, code, message string) error {
	if message == "" {
		message = http.StatusText(statusCode)
	}

	return c.JSON(statusCode, Response{
		Success: false,
		Error:   message,
		Code:    code,
	})
}

// BadRequest 400 error
func BadRequest(c echo.Context, code, message string) error {
	return Error(c, http.StatusBadRequest, code, message)
}

// InternalServerError 500 error
func InternalServerError(c echo.Context, code, message string) error {
	return Error(c, http.StatusInternalServerError, code, message)
}
