// Package auth provides email+password authentication over a user storage
// and JWT-based session token management.
package auth

import (
	"context"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"github.com/thoas/go-funk"

	"github.com/patric-chuzhbe/userdir/internal/models"
	"github.com/patric-chuzhbe/userdir/internal/user"
)

// DefaultTokenTTL is the token lifetime used when New receives zero.
const DefaultTokenTTL = 24 * time.Hour

type userLister interface {
	ListUsers(ctx context.Context) ([]user.User, error)
}

// Auth authenticates users against a storage and issues session tokens.
type Auth struct {
	// db is the interface to the user data storage.
	db userLister

	// hasher verifies supplied secrets against stored credentials.
	hasher user.PasswordHasher

	// tokenSigningSecretKey is the key used to sign JWTs.
	tokenSigningSecretKey []byte

	tokenTTL time.Duration
}

// Claims represents the JWT claims used by the system.
// It embeds standard JWT claims and adds a user-specific identifier.
type Claims struct {
	jwt.RegisteredClaims
	UserID uint32 `json:"user_id"`
}

// New creates an Auth bound to the given user data access layer, credential
// hasher and JWT signing secret.
func New(
	db userLister,
	hasher user.PasswordHasher,
	tokenSigningSecretKey []byte,
	tokenTTL time.Duration,
) *Auth {
	if tokenTTL <= 0 {
		tokenTTL = DefaultTokenTTL
	}

	return &Auth{
		db:                    db,
		hasher:                hasher,
		tokenSigningSecretKey: tokenSigningSecretKey,
		tokenTTL:              tokenTTL,
	}
}

// Authenticate looks up the user with the given email and verifies the
// password. It returns models.ErrAuthentication on any credential failure
// without revealing which part was wrong.
func (a *Auth) Authenticate(ctx context.Context, email, password string) (*user.User, error) {
	users, err := a.db.ListUsers(ctx)
	if err != nil {
		return nil, err
	}

	usr, ok := funk.Find(users, func(candidate user.User) bool {
		return candidate.Email == email
	}).(user.User)
	if !ok {
		return nil, models.ErrAuthentication
	}

	if !usr.CheckPassword(a.hasher, password) {
		return nil, models.ErrAuthentication
	}

	return &usr, nil
}

// BuildToken issues a signed JWT for the given user ID.
func (a *Auth) BuildToken(userID uint32) (string, error) {
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(a.tokenTTL)),
		},
		UserID: userID,
	})

	tokenString, err := token.SignedString(a.tokenSigningSecretKey)
	if err != nil {
		return "", err
	}

	return tokenString, nil
}

// ParseToken validates the token's signing method, signature and expiry,
// and returns its claims. Any failure maps to models.ErrAuthentication.
func (a *Auth) ParseToken(tokenString string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(
		tokenString,
		claims,
		func(t *jwt.Token) (interface{}, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
			}
			return a.tokenSigningSecretKey, nil
		},
	)
	if err != nil || !token.Valid {
		return nil, models.ErrAuthentication
	}

	return claims, nil
}
