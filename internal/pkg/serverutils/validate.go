package serverutils

import (
	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// ValidateRequest checks a DTO's validate tags.
func ValidateRequest(req interface{}) error {
	return validate.Struct(req)
}
