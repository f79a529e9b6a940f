package utils

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// Validate checks data against its struct tags and returns the message of
// the first violated field, or "" when the input is valid. Only the first
// violation is surfaced; no partial-success.
func Validate(data interface{}) string {
	err := validate.Struct(data)
	if err == nil {
		return ""
	}

	if validationErrors, ok := err.(validator.ValidationErrors); ok && len(validationErrors) > 0 {
		first := validationErrors[0]
		return fmt.Sprintf("%s: %s", fieldPath(first), getErrorMessage(first))
	}

	return "Invalid request body"
}

// fieldPath strips the top-level struct name from the namespace so the
// message reads "Name.First: ..." instead of "RegisterRequest.Name.First: ...".
func fieldPath(err validator.FieldError) string {
	ns := err.Namespace()
	if i := strings.Index(ns, "."); i >= 0 {
		return ns[i+1:]
	}
	return err.Field()
}

// converts validator errors to human-readable messages
func getErrorMessage(err validator.FieldError) string {
	switch err.Tag() {
	case "required":
		return "This field is required"
	case "email":
		return "Invalid email format"
	case "min":
		return fmt.Sprintf("Minimum is %s", err.Param())
	case "max":
		return fmt.Sprintf("Maximum is %s", err.Param())
	case "len":
		return fmt.Sprintf("Must be exactly %s characters", err.Param())
	case "number":
		return "Must contain digits only"
	case "startswith":
		return fmt.Sprintf("Must start with %q", err.Param())
	case "http_url":
		return "Must be a valid http(s) URL"
	case "oneof":
		options := strings.ReplaceAll(err.Param(), " ", ", ")
		return fmt.Sprintf("Must be one of: %s", options)
	case "uuid":
		return "Must be a valid UUID"
	default:
		return fmt.Sprintf("Invalid %s field", err.Field())
	}
}
