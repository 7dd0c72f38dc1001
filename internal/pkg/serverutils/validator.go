package serverutils

import (
	"strings"

	"notes-data-be/internal/pkg/apperror"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// ValidateRequest checks a DTO's validate tags and converts the first
// failure to a validation error. This is the transport-level shape check;
// field content rules live in the repository layer.
func ValidateRequest(req interface{}) error {
	err := validate.Struct(req)
	if err == nil {
		return nil
	}

	if errs, ok := err.(validator.ValidationErrors); ok && len(errs) > 0 {
		field := strings.ToLower(errs[0].Field())
		switch errs[0].Tag() {
		case "required":
			return apperror.Validationf("the %s field is required", field)
		default:
			return apperror.Validationf("the %s field is invalid", field)
		}
	}
	return apperror.Validationf("invalid request body")
}
