package validator

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate *validator.Validate

func init() {
	validate = validator.New()
}

// Validate checks struct fields and returns a field → message map suitable
// for inline form rendering, or nil when everything passes.
func Validate(v interface{}) map[string]string {
	err := validate.Struct(v)
	if err == nil {
		return nil
	}

	errors := make(map[string]string)
	for _, err := range err.(validator.ValidationErrors) {
		errors[strings.ToLower(err.Field())] = message(err)
	}
	return errors
}

func message(err validator.FieldError) string {
	switch err.Tag() {
	case "required":
		return "This field is required."
	case "min":
		return fmt.Sprintf("Must be at least %s characters.", err.Param())
	case "max":
		return fmt.Sprintf("Must be at most %s characters.", err.Param())
	case "eqfield":
		return "The two password fields didn't match."
	case "alphanum":
		return "Only letters and digits are allowed."
	default:
		return "This value is invalid."
	}
}
