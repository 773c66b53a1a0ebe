package validation

import (
	"github.com/go-playground/validator/v10"
)

// EchoValidator adapts go-playground/validator to echo's Validator interface
// so handlers can call c.Validate on bound request structs.
type EchoValidator struct {
	validate *validator.Validate
}

func New() *EchoValidator {
	return &EchoValidator{validate: validator.New()}
}

func (v *EchoValidator) Validate(i interface{}) error {
	return v.validate.Struct(i)
}
