package api

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/ledgerly/ledger-api/internal/api/shared"
	"github.com/ledgerly/ledger-api/internal/domain"
	"github.com/ledgerly/ledger-api/internal/service"
	"github.com/ledgerly/ledger-api/internal/service/auth"
	"github.com/ledgerly/ledger-api/internal/store"
)

// MapErrorToStatusCode maps internal errors to HTTP status codes. Note
// that business-rule and authentication failures are 400s by contract,
// and a missing-identifier precondition is a caller defect, so it stays
// a 500 rather than leaking as a business outcome.
func MapErrorToStatusCode(err error) int {
	switch {
	case errors.Is(err, auth.ErrInvalidToken),
		errors.Is(err, auth.ErrExpiredToken),
		errors.Is(err, auth.ErrTokenNotYetValid),
		errors.Is(err, auth.ErrMissingToken):
		return http.StatusUnauthorized

	case errors.Is(err, domain.ErrValidation),
		errors.Is(err, service.ErrAuthentication),
		errors.Is(err, store.ErrDuplicate),
		errors.Is(err, store.ErrInvalidEntity):
		return http.StatusBadRequest

	case errors.Is(err, store.ErrNotFound):
		return http.StatusNotFound

	default:
		return http.StatusInternalServerError
	}
}

// SafeErrorMessage returns the message that may be shown to the client.
// Business-rule and authentication errors surface their exact message;
// everything else is sanitized.
func SafeErrorMessage(err error) string {
	switch {
	case err == nil:
		return "An unexpected error occurred"

	case errors.Is(err, domain.ErrValidation),
		errors.Is(err, service.ErrAuthentication):
		return err.Error()

	case errors.Is(err, store.ErrEmailExists):
		return "A user is already registered with this email."

	case errors.Is(err, store.ErrUserNotFound):
		return "User not found."

	case errors.Is(err, store.ErrEntryNotFound):
		return "Entry not found."

	default:
		return "An unexpected error occurred"
	}
}

// HandleServiceError writes the response for an error coming out of the
// service layer, logging the full error while only the safe message
// reaches the client.
func HandleServiceError(w http.ResponseWriter, r *http.Request, err error) {
	shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), SafeErrorMessage(err), err)
}

// SanitizeValidationError turns a go-playground validation error into a
// short client-facing message without echoing submitted values.
func SanitizeValidationError(err error) string {
	errMsg := err.Error()

	if strings.Contains(errMsg, "Field validation") {
		// Example: "Key: 'LoginRequest.Email' Error:Field validation for 'Email' failed on the 'required' tag"
		parts := strings.Split(errMsg, "Error:")
		if len(parts) >= 2 {
			fieldParts := strings.Split(parts[1], "'")
			if len(fieldParts) >= 3 {
				field := fieldParts[1]
				var tag string
				if len(fieldParts) >= 5 {
					tag = fieldParts[3]
				}
				if tag != "" {
					return fmt.Sprintf("Invalid %s: %s", field, validationTagMessage(tag))
				}
				return fmt.Sprintf("Invalid %s", field)
			}
		}
	}

	return "Validation error"
}

func validationTagMessage(tag string) string {
	switch tag {
	case "required":
		return "required field"
	case "email":
		return "invalid email format"
	case "min":
		return "too short"
	case "max":
		return "too long"
	case "oneof":
		return "invalid value"
	default:
		return "validation failed"
	}
}
