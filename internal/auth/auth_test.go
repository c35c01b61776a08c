package auth

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/patric-chuzhbe/userdir/internal/db/memorystorage"
	"github.com/patric-chuzhbe/userdir/internal/hasher"
	"github.com/patric-chuzhbe/userdir/internal/mockstorage"
	"github.com/patric-chuzhbe/userdir/internal/models"
	"github.com/patric-chuzhbe/userdir/internal/user"
)

const testSigningSecretKey = "0123456789abcdef0123456789abcdef"

func newAuthWithUser(t *testing.T) (*Auth, user.User) {
	t.Helper()

	theStorage, err := memorystorage.New()
	require.NoError(t, err)

	passwordHasher := hasher.NewInsecure()

	usr := user.New("John Doe", "john@example.com")
	require.NoError(t, usr.SetPassword(passwordHasher, "s3cr3t"))

	created, err := theStorage.CreateUser(context.Background(), usr)
	require.NoError(t, err)

	return New(theStorage, passwordHasher, []byte(testSigningSecretKey), time.Hour), created
}

func TestAuthenticate(t *testing.T) {
	theAuth, created := newAuthWithUser(t)

	t.Run("valid credentials", func(t *testing.T) {
		authenticated, err := theAuth.Authenticate(context.Background(), "john@example.com", "s3cr3t")
		require.NoError(t, err, "The `theAuth.Authenticate()` should not return error")
		require.NotNil(t, authenticated)
		assert.Equal(t, created.ID, authenticated.ID)
	})

	t.Run("wrong password", func(t *testing.T) {
		_, err := theAuth.Authenticate(context.Background(), "john@example.com", "wrong")
		assert.ErrorIs(t, err, models.ErrAuthentication)
	})

	t.Run("unknown email", func(t *testing.T) {
		_, err := theAuth.Authenticate(context.Background(), "jane@example.com", "s3cr3t")
		assert.ErrorIs(t, err, models.ErrAuthentication)
	})
}

func TestAuthenticatePropagatesStorageErrors(t *testing.T) {
	storageMock := new(mockstorage.StorageMock)
	listError := errors.New("listing failed")
	storageMock.On("ListUsers", mock.Anything).Return(nil, listError)

	theAuth := New(storageMock, hasher.NewInsecure(), []byte(testSigningSecretKey), time.Hour)

	_, err := theAuth.Authenticate(context.Background(), "john@example.com", "s3cr3t")
	assert.ErrorIs(t, err, listError, "The storage error should reach the caller unchanged")
}

func TestTokenRoundTrip(t *testing.T) {
	theAuth, created := newAuthWithUser(t)

	token, err := theAuth.BuildToken(created.ID)
	require.NoError(t, err, "The `theAuth.BuildToken()` should not return error")
	require.NotEmpty(t, token)

	claims, err := theAuth.ParseToken(token)
	require.NoError(t, err, "The `theAuth.ParseToken()` should not return error")
	assert.Equal(t, created.ID, claims.UserID)
	assert.NotEmpty(t, claims.ID, "The token should carry a unique jti claim")
}

func TestParseTokenRejectsForeignSignature(t *testing.T) {
	theAuth, created := newAuthWithUser(t)

	foreignAuth := New(nil, hasher.NewInsecure(), []byte("another-signing-secret-key-32-ch"), time.Hour)
	token, err := foreignAuth.BuildToken(created.ID)
	require.NoError(t, err)

	_, err = theAuth.ParseToken(token)
	assert.ErrorIs(t, err, models.ErrAuthentication, "A token signed with a foreign key should be rejected")
}

func TestParseTokenRejectsExpiredToken(t *testing.T) {
	theAuth, created := newAuthWithUser(t)

	expiredAuth := New(nil, hasher.NewInsecure(), []byte(testSigningSecretKey), time.Nanosecond)
	token, err := expiredAuth.BuildToken(created.ID)
	require.NoError(t, err)

	time.Sleep(10 * time.Millisecond)

	_, err = theAuth.ParseToken(token)
	assert.ErrorIs(t, err, models.ErrAuthentication, "An expired token should be rejected")
}

func TestParseTokenRejectsGarbage(t *testing.T) {
	theAuth, _ := newAuthWithUser(t)

	_, err := theAuth.ParseToken("definitely.not.a-token")
	assert.ErrorIs(t, err, models.ErrAuthentication)
}
