package validator

import (
	"bookit/shared/failure"
	"errors"
	"strings"

	val "github.com/go-playground/validator/v10"
)

var (
	messages = map[string]string{
		"required": "{field} is required",
		"gte":      "{field} must be greater than or equal to {param}",
		"lte":      "{field} must be less than or equal to {param}",
		"oneof":    "{field} must be one of {param}",
		"max":      "{field} must be at most {param} characters",
		"min":      "{field} must be at least {param} characters",
		"email":    "{field} must be a valid email address",
		"uuid":     "{field} must be a valid UUID",
	}
)

func render(valErr val.FieldError) string {
	errStr := messages[valErr.Tag()]
	if errStr == "" {
		return valErr.Error()
	}

	errStr = strings.ReplaceAll(errStr, "{field}", valErr.Field())
	errStr = strings.ReplaceAll(errStr, "{param}", valErr.Param())

	return errStr
}

func fieldErrors(err error) []failure.FieldError {
	var valErrors val.ValidationErrors

	if !errors.As(err, &valErrors) {
		return []failure.FieldError{{Message: err.Error()}}
	}

	fields := make([]failure.FieldError, 0, len(valErrors))
	for _, valErr := range valErrors {
		fields = append(fields, failure.FieldError{
			Field:   valErr.Field(),
			Message: render(valErr),
		})
	}

	return fields
}
