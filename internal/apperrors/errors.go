// Package apperrors is the error taxonomy shared by the stores and services.
// Handlers are the only layer that turns these into HTTP status codes.
package apperrors

import (
	"errors"

	"github.com/gofiber/fiber/v2"
)

var (
	ErrDuplicateEmail     = errors.New("User already exists")
	ErrInvalidAdminCode   = errors.New("Invalid admin access code")
	ErrInvalidCredentials = errors.New("Invalid credentials")
	ErrEmptyContent       = errors.New("Post content is required")
	ErrEmptyComment       = errors.New("Comment content is required")
	ErrPostNotFound       = errors.New("Post not found")
	ErrUserNotFound       = errors.New("User not found")
	ErrMissingToken       = errors.New("No token, authorization denied")
	ErrInvalidToken       = errors.New("Token is not valid")
)

// ValidationError reports a malformed or missing request field.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}

// StatusOf maps a domain error to the HTTP status the gateway responds with.
// Anything unclassified is a 500.
func StatusOf(err error) int {
	var ve *ValidationError
	if errors.As(err, &ve) {
		return fiber.StatusBadRequest
	}

	switch {
	case errors.Is(err, ErrDuplicateEmail),
		errors.Is(err, ErrInvalidAdminCode),
		errors.Is(err, ErrInvalidCredentials),
		errors.Is(err, ErrEmptyContent),
		errors.Is(err, ErrEmptyComment):
		return fiber.StatusBadRequest
	case errors.Is(err, ErrMissingToken), errors.Is(err, ErrInvalidToken):
		return fiber.StatusUnauthorized
	case errors.Is(err, ErrPostNotFound), errors.Is(err, ErrUserNotFound):
		return fiber.StatusNotFound
	}
	return fiber.StatusInternalServerError
}

// MessageOf returns the user-facing message for err. Internal failures never
// leak their detail to the client.
func MessageOf(err error) string {
	if StatusOf(err) == fiber.StatusInternalServerError {
		return "Server error"
	}
	return err.Error()
}
