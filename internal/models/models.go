// Package models defines the error taxonomy shared by the storage
// implementations, the caching manager and the authentication layer.
package models

import (
	"errors"
	"fmt"
)

// ErrNotFound is returned when an operation references a user ID
// that does not exist in the storage.
var ErrNotFound = errors.New("user not found")

// ErrInvalidInput is returned when a user fails validation before
// any mutation takes place. Use NewInvalidInputError to attach the reason.
var ErrInvalidInput = errors.New("invalid input")

// ErrAuthentication is returned when credential verification fails.
// It is deliberately opaque about which part of the credentials was wrong.
var ErrAuthentication = errors.New("authentication failed")

// ErrDatabase is reserved for storage backends that talk to an external
// database. The in-memory storage never produces it.
var ErrDatabase = errors.New("database error")

// NewInvalidInputError wraps ErrInvalidInput with a human-readable reason,
// so callers can match it with errors.Is and still log the cause.
func NewInvalidInputError(reason string) error {
	return fmt.Errorf("%w: %s", ErrInvalidInput, reason)
}
