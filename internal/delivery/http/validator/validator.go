// Package validator adapts go-playground/validator to echo's Validator
// interface.
package validator

import (
	domainerrors "notifier/internal/domain/errors"

	playground "github.com/go-playground/validator/v10"
)

// EchoValidator validates bound request structs using struct tags.
type EchoValidator struct {
	validate *playground.Validate
}

// New creates a new request validator.
func New() *EchoValidator {
	return &EchoValidator{validate: playground.New()}
}

// Validate implements echo.Validator. Violations surface as the domain
// validation error so the error middleware maps them to 400.
func (v *EchoValidator) Validate(i any) error {
	if err := v.validate.Struct(i); err != nil {
		return domainerrors.ErrValidationFailed.WithDetails(err.Error())
	}

	return nil
}
