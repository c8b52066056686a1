// Package validator adapts go-playground/validator to echo's Validator interface.
package validator

import (
	domainerrors "shapeme/internal/domain/errors"

	playground "github.com/go-playground/validator/v10"
)

// echoValidator wraps the go-playground validator for echo.
type echoValidator struct {
	validate *playground.Validate
}

// New builds the request validator used by the echo server.
func New() *echoValidator {
	return &echoValidator{
		validate: playground.New(playground.WithRequiredStructEnabled()),
	}
}

// Validate implements echo.Validator. Violations surface as a 400 AppError
// with the field errors in the details.
func (v *echoValidator) Validate(i any) error {
	if err := v.validate.Struct(i); err != nil {
		return domainerrors.ErrValidationFailed.WithDetails(err.Error())
	}

	return nil
}
