package validate

import (
	"github.com/go-playground/validator/v10"
)

// New returns a validator with the project's custom tags registered:
//
//	digits  the string is made of ASCII digits only (empty passes; pair with required)
func New() *validator.Validate {
	v := validator.New()
	_ = v.RegisterValidation("digits", digits)
	return v
}

func digits(fl validator.FieldLevel) bool {
	for _, r := range fl.Field().String() {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
