// Package validator adapts go-playground/validator to echo's Validator.
package validator

import (
	"github.com/go-playground/validator/v10"
)

// CustomValidator wraps the validator instance for echo.
type CustomValidator struct {
	validator *validator.Validate
}

// New creates the request validator.
func New() *CustomValidator {
	return &CustomValidator{validator: validator.New()}
}

// Validate implements echo.Validator.
func (cv *CustomValidator) Validate(i any) error {
	return cv.validator.Struct(i)
}
