package hasher

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestBcrypt(t *testing.T) {
	passwordHasher := NewBcryptWithCost(bcrypt.MinCost)

	passwordHash, err := passwordHasher.Hash("s3cr3t")
	require.NoError(t, err, "The `passwordHasher.Hash()` should not return error")
	assert.NotEqual(t, "s3cr3t", passwordHash, "The derived form should not equal the plain secret")

	assert.True(t, passwordHasher.Compare(passwordHash, "s3cr3t"))
	assert.False(t, passwordHasher.Compare(passwordHash, "wrong"))
}

func TestBcryptHashesAreSalted(t *testing.T) {
	passwordHasher := NewBcryptWithCost(bcrypt.MinCost)

	first, err := passwordHasher.Hash("s3cr3t")
	require.NoError(t, err)
	second, err := passwordHasher.Hash("s3cr3t")
	require.NoError(t, err)

	assert.NotEqual(t, first, second, "Two derivations of the same secret should differ")
}

func TestInsecure(t *testing.T) {
	passwordHasher := NewInsecure()

	passwordHash, err := passwordHasher.Hash("s3cr3t")
	require.NoError(t, err)
	assert.Equal(t, "hashed_s3cr3t", passwordHash, "The stub derivation is deterministic on purpose")

	assert.True(t, passwordHasher.Compare(passwordHash, "s3cr3t"))
	assert.False(t, passwordHasher.Compare(passwordHash, "wrong"))
}
