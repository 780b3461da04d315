// Package validator plugs request validation into echo.
package validator

import (
	"pluma/internal/validation"
)

// CustomValidator implements echo.Validator on top of the shared rule set.
type CustomValidator struct {
	validator *validation.Validator
}

// New creates the validator installed on the echo instance.
func New(v *validation.Validator) *CustomValidator {
	if v == nil {
		v = validation.New()
	}

	return &CustomValidator{validator: v}
}

// Validate returns ErrValidationFailed with per-field messages.
func (cv *CustomValidator) Validate(i any) error {
	return cv.validator.Validate(i)
}
