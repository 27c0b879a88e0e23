package util

import (
	"github.com/go-playground/validator/v10"
)

var validate *validator.Validate

func init() {
	validate = validator.New()
}

// ValidateDTO runs struct validation and returns the raw
// validator.ValidationErrors so the response layer can map them to a
// parameter error.
func ValidateDTO(dto any) error {
	return validate.Struct(dto)
}
