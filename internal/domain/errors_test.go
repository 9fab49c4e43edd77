package domain

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidationErrorChain(t *testing.T) {
	t.Run("without a cause it is still a validation error", func(t *testing.T) {
		err := NewValidationError("month", "Provide a valid month.", nil)

		assert.ErrorIs(t, err, ErrValidation)
		assert.Equal(t, "Provide a valid month.", err.Error())
	})

	t.Run("a wrapped cause keeps the validation kind", func(t *testing.T) {
		cause := errors.New("user lookup failed")
		err := NewValidationError("user", "User not found.", cause)

		// Both the sentinel and the concrete cause must be reachable:
		// the kind drives the status code, the cause stays available for
		// logging and finer-grained checks.
		assert.ErrorIs(t, err, ErrValidation)
		assert.ErrorIs(t, err, cause)
		assert.Equal(t, "User not found.", err.Error())
	})

	t.Run("errors.As finds the typed error", func(t *testing.T) {
		err := NewValidationError("email", "A user is already registered with this email.", nil)

		var vErr *ValidationError
		require.ErrorAs(t, err, &vErr)
		assert.Equal(t, "email", vErr.Field)
	})
}
