package errors

import (
	"errors"
	"fmt"
)

// NotFoundError represents an error when an entity is not found
type NotFoundError struct {
	Entity string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found", e.Entity)
}

// Is enables errors.Is() comparison for NotFoundError
func (e *NotFoundError) Is(target error) bool {
	t, ok := target.(*NotFoundError)
	if !ok {
		return false
	}
	return e.Entity == t.Entity
}

// ValidationError represents a validation error
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("validation error: %s - %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation error: %s", e.Message)
}

// AuthenticationError represents authentication-related errors. The message
// is surfaced to the caller verbatim.
type AuthenticationError struct {
	Message string
}

func (e *AuthenticationError) Error() string {
	return e.Message
}

// Is enables errors.Is() comparison for AuthenticationError
func (e *AuthenticationError) Is(target error) bool {
	t, ok := target.(*AuthenticationError)
	if !ok {
		return false
	}
	return e.Message == t.Message
}

// AuthorizationError represents a policy denial. The message carries the
// specific deny reason and is surfaced to the caller verbatim, unmasked.
type AuthorizationError struct {
	Message string
}

func (e *AuthorizationError) Error() string {
	return e.Message
}

// Entity Not Found Errors
var (
	ErrUserNotFound         = &NotFoundError{Entity: "user"}
	ErrClientNotFound       = &NotFoundError{Entity: "client"}
	ErrProjectNotFound      = &NotFoundError{Entity: "project"}
	ErrScopeNotFound        = &NotFoundError{Entity: "scope"}
	ErrTicketNotFound       = &NotFoundError{Entity: "ticket"}
	ErrCommentNotFound      = &NotFoundError{Entity: "comment"}
	ErrNotificationNotFound = &NotFoundError{Entity: "notification"}
)

// Authentication Errors. Login intentionally returns the same message for an
// unknown username and a wrong password so usernames cannot be enumerated.
var (
	ErrNotAuthenticated   = &AuthenticationError{Message: "Not authenticated"}
	ErrInvalidCredentials = &AuthenticationError{Message: "Invalid credentials"}
)

// Business Logic Errors
var (
	ErrInvalidTicketStatus = errors.New("invalid ticket status")
	ErrInvalidTeam         = errors.New("invalid team")
)

// Helper Functions

// IsNotFound checks if an error is a NotFoundError
func IsNotFound(err error) bool {
	var notFoundErr *NotFoundError
	return errors.As(err, &notFoundErr)
}

// IsValidation checks if an error is a ValidationError
func IsValidation(err error) bool {
	var validationErr *ValidationError
	return errors.As(err, &validationErr)
}

// IsAuthentication checks if an error is an AuthenticationError
func IsAuthentication(err error) bool {
	var authErr *AuthenticationError
	return errors.As(err, &authErr)
}

// IsAuthorization checks if an error is an AuthorizationError
func IsAuthorization(err error) bool {
	var authzErr *AuthorizationError
	return errors.As(err, &authzErr)
}

// NewNotFoundError creates a new NotFoundError for a custom entity
func NewNotFoundError(entity string) error {
	return &NotFoundError{Entity: entity}
}

// NewValidationError creates a new ValidationError
func NewValidationError(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}

// NewAuthorizationError creates a new AuthorizationError carrying a deny reason
func NewAuthorizationError(message string) error {
	return &AuthorizationError{Message: message}
}
