package model

import "errors"

var (
	// ErrInvalidInput is returned when a required value is missing.
	ErrInvalidInput = errors.New("invalid input")
	// ErrValidation is returned when a value breaks a format, length or range rule.
	ErrValidation = errors.New("validation error")
	// ErrNotFound is returned when no user has the requested identifier.
	ErrNotFound = errors.New("not found")
	// ErrConstraintViolation is returned when the store rejects a duplicate username or email.
	ErrConstraintViolation = errors.New("constraint violation")
)

// FieldError describes why a single field was rejected.
type FieldError struct {
	Field   string
	Message string
	Kind    error
}

// NewValidationError creates a FieldError of kind ErrValidation.
func NewValidationError(field, message string) *FieldError {
	return &FieldError{Field: field, Message: message, Kind: ErrValidation}
}

// NewInvalidInputError creates a FieldError of kind ErrInvalidInput.
func NewInvalidInputError(field, message string) *FieldError {
	return &FieldError{Field: field, Message: message, Kind: ErrInvalidInput}
}

func (e *FieldError) Error() string {
	return e.Message
}

func (e *FieldError) Unwrap() error {
	return e.Kind
}
