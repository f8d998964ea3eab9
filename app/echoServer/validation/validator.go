package validation

import (
	"boardcamp/util/validate"

	"github.com/go-playground/validator/v10"
)

type Validator struct {
	v *validator.Validate
}

func New() *Validator {
	return &Validator{v: validate.New()}
}

func (v *Validator) Validate(i interface{}) error {
	return v.v.Struct(i)
}
