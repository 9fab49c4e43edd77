package domain

import "errors"

// Common domain errors used across the application.
var (
	// ErrValidation is the sentinel for every business-rule violation.
	// Specific violations wrap it with the message that is surfaced to
	// the caller, so errors.Is(err, ErrValidation) identifies the kind
	// while err.Error() carries the human-readable reason.
	ErrValidation = errors.New("validation failed")

	// ErrInvalidID is returned when an identifier is malformed.
	ErrInvalidID = errors.New("invalid ID")

	// ErrUnauthorized is returned when an operation is not permitted
	// for the acting user.
	ErrUnauthorized = errors.New("unauthorized operation")
)

// ValidationError describes a single business-rule violation. Error()
// returns only the user-facing message; the wrapped sentinel keeps the
// error classifiable with errors.Is.
type ValidationError struct {
	Field   string
	Message string
	Err     error
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	return e.Message
}

// Unwrap exposes both the ErrValidation sentinel and the concrete cause,
// so errors.Is classifies the error as a business-rule violation even
// when a store error (not-found, duplicate) is wrapped underneath.
func (e *ValidationError) Unwrap() []error {
	if e.Err != nil {
		return []error{ErrValidation, e.Err}
	}
	return []error{ErrValidation}
}

// NewValidationError creates a ValidationError for the given field with
// the message that will be surfaced to the caller.
func NewValidationError(field, message string, wrapped error) *ValidationError {
	return &ValidationError{
		Field:   field,
		Message: message,
		Err:     wrapped,
	}
}
