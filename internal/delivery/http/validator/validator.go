// Package validator plugs go-playground struct validation into echo.
package validator

import (
	govalidator "github.com/go-playground/validator/v10"

	domainerrors "blogd/internal/domain/errors"
)

// Validator implements echo.Validator on top of go-playground/validator.
type Validator struct {
	validate *govalidator.Validate
}

// New creates a Validator with the default tag rules.
func New() *Validator {
	return &Validator{validate: govalidator.New()}
}

// Validate checks struct tags and surfaces failures as a client error.
func (v *Validator) Validate(i any) error {
	if err := v.validate.Struct(i); err != nil {
		return domainerrors.ErrValidationFailed.WithDetails(err.Error())
	}

	return nil
}
