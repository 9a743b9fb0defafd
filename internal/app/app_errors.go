package app

import (
	"errors"
	"fmt"
)

var (
	ErrValidation    = errors.New("validation error")
	ErrInternalError = errors.New("internal error")

	ErrLookupFailure       = errors.New("directory lookup failed")
	ErrTransportFailure    = errors.New("push transport failed")
	ErrSchedulingFailure   = errors.New("alarm scheduling failed")
	ErrPresentationFailure = errors.New("alert presentation failed")
)

type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation error: %s - %s", e.Field, e.Message)
}

func (e *ValidationError) Unwrap() error {
	return ErrValidation
}

func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{
		Field:   field,
		Message: message,
	}
}

func IsValidationError(err error) bool {
	var validationErr *ValidationError

	return errors.As(err, &validationErr)
}
