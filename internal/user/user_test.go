package user

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/patric-chuzhbe/userdir/internal/models"
)

type insecureHasher struct{}

func (h insecureHasher) Hash(secret string) (string, error) {
	return "hashed_" + secret, nil
}

func (h insecureHasher) Compare(hash, secret string) bool {
	return hash == "hashed_"+secret
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name       string
		user       User
		wantReason string
	}{
		{
			name:       "empty name",
			user:       New("", "john@example.com"),
			wantReason: "name is required",
		},
		{
			name:       "empty email",
			user:       New("John", ""),
			wantReason: "email is required",
		},
		{
			name:       "email without at sign",
			user:       New("John", "john.example.com"),
			wantReason: "invalid email format",
		},
		{
			name:       "name too long",
			user:       New(strings.Repeat("j", MaxNameLength+1), "john@example.com"),
			wantReason: "name is too long",
		},
		{
			name: "valid user",
			user: New("John", "john@example.com"),
		},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			err := test.user.Validate()
			if test.wantReason == "" {
				assert.NoError(t, err, "The `Validate()` should accept a valid user")
				return
			}
			require.ErrorIs(t, err, models.ErrInvalidInput)
			assert.Contains(t, err.Error(), test.wantReason)
		})
	}
}

func TestValidateAfterFixingTheName(t *testing.T) {
	usr := New("", "john@example.com")
	assert.ErrorIs(t, usr.Validate(), models.ErrInvalidInput)

	usr.Name = "John"
	assert.NoError(t, usr.Validate(), "The user should become valid once the name is set")
}

func TestNameOfExactlyMaxLengthIsValid(t *testing.T) {
	usr := New(strings.Repeat("j", MaxNameLength), "john@example.com")
	assert.NoError(t, usr.Validate())
}

func TestSetAndCheckPassword(t *testing.T) {
	usr := New("John", "john@example.com")

	err := usr.SetPassword(insecureHasher{}, "s3cr3t")
	require.NoError(t, err, "The `SetPassword()` should not return error")

	assert.True(t, usr.CheckPassword(insecureHasher{}, "s3cr3t"))
	assert.False(t, usr.CheckPassword(insecureHasher{}, "wrong"))
}

func TestStringOmitsTheCredential(t *testing.T) {
	usr := New("John", "john@example.com")
	require.NoError(t, usr.SetPassword(insecureHasher{}, "s3cr3t"))

	assert.Equal(t, "User(id: 0, name: John, email: john@example.com)", usr.String())
	assert.NotContains(t, usr.String(), "s3cr3t")
}
