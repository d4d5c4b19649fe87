package validator

import (
	"strings"

	"github.com/go-playground/validator/v10"
)

// CustomValidator adapts go-playground/validator to echo's Validator interface.
type CustomValidator struct {
	validate *validator.Validate
}

func New() *CustomValidator {
	return &CustomValidator{
		validate: validator.New(),
	}
}

func (v *CustomValidator) Validate(i interface{}) error {
	return v.validate.Struct(i)
}

// FieldDetail extracts the first offending field and a human-readable message
// from a validation error, for the errorDetails envelope.
func FieldDetail(err error) (field, message string) {
	errs, ok := err.(validator.ValidationErrors)
	if !ok || len(errs) == 0 {
		return "", err.Error()
	}

	fe := errs[0]
	field = strings.ToLower(fe.Field())

	switch fe.Tag() {
	case "required":
		message = field + " is required"
	case "email":
		message = "invalid email format"
	case "min":
		message = field + " must be at least " + fe.Param() + " characters long"
	case "datetime":
		message = "invalid date format, must be YYYY-MM-DD"
	case "numeric", "len":
		message = field + " must be " + fe.Param() + " digits"
	default:
		message = field + " is invalid"
	}
	return field, message
}
