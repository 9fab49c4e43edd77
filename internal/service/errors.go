package service

import "errors"

// ErrAuthentication is the sentinel for any credential failure. The
// concrete failures below wrap it so callers classify with errors.Is
// while each carries its own user-facing message.
var ErrAuthentication = errors.New("authentication failed")

// AuthenticationError is a credential failure with a user-facing reason.
type AuthenticationError struct {
	Message string
}

// Error implements the error interface.
func (e *AuthenticationError) Error() string {
	return e.Message
}

// Unwrap returns the sentinel to support errors.Is.
func (e *AuthenticationError) Unwrap() error {
	return ErrAuthentication
}

// Authentication failures. The messages are distinct on purpose: the
// caller learns whether the email or the password was wrong.
var (
	// ErrUnknownEmail is returned when no user has the supplied email.
	ErrUnknownEmail = &AuthenticationError{Message: "User not found for the given email."}

	// ErrInvalidPassword is returned when the password does not match.
	ErrInvalidPassword = &AuthenticationError{Message: "Invalid password."}
)

// ErrEntryNotPersisted is returned when update or delete is called on an
// entry that has no assigned identifier. This is a caller contract
// violation, not a business outcome, and maps to an internal error at
// the boundary.
var ErrEntryNotPersisted = errors.New("entry has no persisted identifier")
