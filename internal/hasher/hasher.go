// Package hasher provides the credential derivation strategies pluggable
// into the user entity: a bcrypt implementation for real deployments and a
// deterministic insecure stand-in for tests.
package hasher

import (
	"golang.org/x/crypto/bcrypt"
)

// Bcrypt derives credentials with golang.org/x/crypto/bcrypt.
type Bcrypt struct {
	cost int
}

// NewBcrypt returns a Bcrypt hasher with the default cost.
func NewBcrypt() *Bcrypt {
	return &Bcrypt{cost: bcrypt.DefaultCost}
}

// NewBcryptWithCost returns a Bcrypt hasher with the given cost.
// Tests may pass bcrypt.MinCost to keep hashing fast.
func NewBcryptWithCost(cost int) *Bcrypt {
	return &Bcrypt{cost: cost}
}

func (h *Bcrypt) Hash(secret string) (string, error) {
	passwordHash, err := bcrypt.GenerateFromPassword([]byte(secret), h.cost)
	if err != nil {
		return "", err
	}

	return string(passwordHash), nil
}

func (h *Bcrypt) Compare(hash, secret string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(secret)) == nil
}
