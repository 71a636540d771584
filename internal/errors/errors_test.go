package errors

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNotFoundError(t *testing.T) {
	t.Run("Error message", func(t *testing.T) {
		err := &NotFoundError{Entity: "scope"}
		assert.Equal(t, "scope not found", err.Error())
	})

	t.Run("errors.Is comparison with same entity", func(t *testing.T) {
		err1 := &NotFoundError{Entity: "ticket"}
		err2 := &NotFoundError{Entity: "ticket"}
		assert.True(t, errors.Is(err1, err2))
	})

	t.Run("errors.Is comparison with different entity", func(t *testing.T) {
		err1 := &NotFoundError{Entity: "ticket"}
		err2 := &NotFoundError{Entity: "comment"}
		assert.False(t, errors.Is(err1, err2))
	})

	t.Run("errors.Is with predefined errors", func(t *testing.T) {
		assert.True(t, errors.Is(ErrScopeNotFound, ErrScopeNotFound))
		assert.False(t, errors.Is(ErrScopeNotFound, ErrTicketNotFound))
	})

	t.Run("IsNotFound helper", func(t *testing.T) {
		assert.True(t, IsNotFound(ErrScopeNotFound))
		assert.False(t, IsNotFound(ErrInvalidTicketStatus))
	})
}

func TestAuthenticationError(t *testing.T) {
	t.Run("messages are surfaced verbatim", func(t *testing.T) {
		assert.Equal(t, "Not authenticated", ErrNotAuthenticated.Error())
		assert.Equal(t, "Invalid credentials", ErrInvalidCredentials.Error())
	})

	t.Run("errors.Is comparison", func(t *testing.T) {
		assert.True(t, errors.Is(ErrInvalidCredentials, ErrInvalidCredentials))
		assert.False(t, errors.Is(ErrInvalidCredentials, ErrNotAuthenticated))
	})

	t.Run("IsAuthentication helper", func(t *testing.T) {
		assert.True(t, IsAuthentication(ErrNotAuthenticated))
		assert.False(t, IsAuthentication(ErrScopeNotFound))
	})
}

func TestAuthorizationError(t *testing.T) {
	t.Run("deny reason is the message", func(t *testing.T) {
		err := NewAuthorizationError("Forbidden: Engineers cannot create tickets.")
		assert.Equal(t, "Forbidden: Engineers cannot create tickets.", err.Error())
	})

	t.Run("IsAuthorization helper", func(t *testing.T) {
		assert.True(t, IsAuthorization(NewAuthorizationError("nope")))
		assert.False(t, IsAuthorization(ErrNotAuthenticated))
	})
}

func TestValidationError(t *testing.T) {
	t.Run("Error message with field", func(t *testing.T) {
		err := &ValidationError{Field: "team", Message: "unknown team"}
		assert.Equal(t, "validation error: team - unknown team", err.Error())
	})

	t.Run("Error message without field", func(t *testing.T) {
		err := &ValidationError{Message: "unknown team"}
		assert.Equal(t, "validation error: unknown team", err.Error())
	})

	t.Run("IsValidation helper", func(t *testing.T) {
		assert.True(t, IsValidation(NewValidationError("team", "unknown")))
		assert.False(t, IsValidation(ErrUserNotFound))
	})
}
