// Package validator adapts go-playground/validator to echo's Validator
// interface so handlers can call c.Validate on bound request structs.
package validator

import (
	playground "github.com/go-playground/validator/v10"

	domainerrors "stargaze/internal/domain/errors"
)

type echoValidator struct {
	validate *playground.Validate
}

// New builds the validator used by the echo server.
func New() *echoValidator {
	return &echoValidator{validate: playground.New()}
}

// Validate runs struct-tag validation and converts failures into the
// shared validation error so the HTTP error handler renders a 400.
func (v *echoValidator) Validate(i any) error {
	if err := v.validate.Struct(i); err != nil {
		return domainerrors.ErrValidationFailed.WithDetails(err.Error())
	}

	return nil
}
