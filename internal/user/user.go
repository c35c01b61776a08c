// Package user defines the user entity, its validation rules and the
// credential handling contract used across the application.
package user

import (
	"fmt"

	validator "github.com/go-playground/validator/v10"

	"github.com/patric-chuzhbe/userdir/internal/models"
)

// MaxNameLength is the longest display name Validate accepts.
const MaxNameLength = 100

// PasswordHasher derives an opaque credential representation from a secret
// and compares a secret against a previously derived one. Implementations
// live in the hasher package.
type PasswordHasher interface {
	Hash(secret string) (string, error)
	Compare(hash, secret string) bool
}

// User represents a system user.
// A persisted user always has ID > 0 and passes Validate.
type User struct {
	// ID is the unique identifier of the user.
	// Zero means the user has not been stored yet.
	ID uint32 `json:"id"`

	Name  string `json:"name" validate:"required,max=100"`
	Email string `json:"email" validate:"required,contains=@"`

	// PasswordHash is the derived credential representation.
	// It is never serialized.
	PasswordHash string `json:"-"`
}

var userValidator = validator.New()

// New returns an unstored user with the given name and email.
func New(name, email string) User {
	return User{
		Name:  name,
		Email: email,
	}
}

// Validate checks the user's fields and returns a models.ErrInvalidInput
// based error describing the first violation found. It has no side effects.
func (u *User) Validate() error {
	err := userValidator.Struct(u)
	if err == nil {
		return nil
	}

	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok || len(validationErrors) == 0 {
		return models.NewInvalidInputError(err.Error())
	}

	return models.NewInvalidInputError(describeViolation(validationErrors[0]))
}

func describeViolation(fieldError validator.FieldError) string {
	switch {
	case fieldError.Field() == "Name" && fieldError.Tag() == "required":
		return "name is required"
	case fieldError.Field() == "Name" && fieldError.Tag() == "max":
		return "name is too long"
	case fieldError.Field() == "Email" && fieldError.Tag() == "required":
		return "email is required"
	case fieldError.Field() == "Email" && fieldError.Tag() == "contains":
		return "invalid email format"
	}

	return fieldError.Error()
}

// SetPassword replaces the stored credential representation with the
// derived form of the given secret.
func (u *User) SetPassword(hasher PasswordHasher, secret string) error {
	passwordHash, err := hasher.Hash(secret)
	if err != nil {
		return err
	}
	u.PasswordHash = passwordHash

	return nil
}

// CheckPassword reports whether the given secret matches the stored
// credential representation.
func (u *User) CheckPassword(hasher PasswordHasher, secret string) bool {
	return hasher.Compare(u.PasswordHash, secret)
}

// String implements fmt.Stringer. The credential is intentionally omitted.
func (u *User) String() string {
	return fmt.Sprintf("User(id: %d, name: %s, email: %s)", u.ID, u.Name, u.Email)
}
