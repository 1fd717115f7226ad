package failure

import (
	"errors"
	"fmt"
	"net/http"
)

// FieldError describes a single rejected input field.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// Failure is a wrapper for error messages and codes using standard HTTP response codes.
type Failure struct {
	Code    int          `json:"code"`
	Message string       `json:"message"`
	Errors  []FieldError `json:"errors,omitempty"`
}

// Error returns the error code and message in a formatted string.
func (e *Failure) Error() string {
	return e.Message
}

// CapacityFailure is returned when a slot cannot hold the requested quantity.
type CapacityFailure struct {
	Failure
	Available int `json:"available"`
}

// CapacityExceeded returns a new CapacityFailure reporting the seats still available.
func CapacityExceeded(available int) error {
	return &CapacityFailure{
		Failure: Failure{
			Code:    http.StatusBadRequest,
			Message: fmt.Sprintf("Only %d seats available", available),
		},
		Available: available,
	}
}

// BadRequest returns a new Failure with code for bad requests.
func BadRequest(err error) error {
	if err != nil {
		return &Failure{
			Code:    http.StatusBadRequest,
			Message: err.Error(),
		}
	}

	return nil
}

// BadRequestFromString returns a new Failure with code for bad requests with message set from string.
func BadRequestFromString(msg string) error {
	return &Failure{
		Code:    http.StatusBadRequest,
		Message: msg,
	}
}

// Validation returns a bad request Failure carrying the offending fields.
func Validation(msg string, fields []FieldError) error {
	return &Failure{
		Code:    http.StatusBadRequest,
		Message: msg,
		Errors:  fields,
	}
}

// InternalError returns a new Failure with code for internal error and message derived from an error interface.
func InternalError(err error) error {
	if err != nil {
		return &Failure{
			Code:    http.StatusInternalServerError,
			Message: err.Error(),
		}
	}

	return nil
}

// NotFound returns a new Failure with code for entity not found.
func NotFound(entityName string) error {
	return &Failure{
		Code:    http.StatusNotFound,
		Message: entityName,
	}
}

// Conflict returns a new Failure with code for conflict situations.
func Conflict(message string) error {
	return &Failure{
		Code:    http.StatusConflict,
		Message: message,
	}
}

// GetCode returns the error code of an error interface.
func GetCode(err error) int {
	var capacity *CapacityFailure
	if errors.As(err, &capacity) {
		return capacity.Code
	}

	var fail *Failure
	if errors.As(err, &fail) {
		return fail.Code
	}

	return http.StatusInternalServerError
}

// GetFieldErrors returns the field errors attached to err, if any.
func GetFieldErrors(err error) []FieldError {
	var fail *Failure
	if errors.As(err, &fail) {
		return fail.Errors
	}

	return nil
}

// GetAvailable reports the available seat count carried by a capacity failure.
func GetAvailable(err error) (int, bool) {
	var capacity *CapacityFailure
	if errors.As(err, &capacity) {
		return capacity.Available, true
	}

	return 0, false
}
