// Package storage declares the contract a user storage backend must
// satisfy. The in-memory backend is the only variant implemented here;
// durable backends are future variants behind the same interface.
package storage

import (
	"context"

	"github.com/patric-chuzhbe/userdir/internal/user"
)

// UserStorage is the capability set over users. Implementations must make
// every operation atomic with respect to the others and must validate
// input before any mutation in CreateUser and UpdateUser.
type UserStorage interface {
	// GetUser returns the user with the given ID, or (nil, nil) when no
	// such user exists. Absence is not an error.
	GetUser(ctx context.Context, userID uint32) (*user.User, error)

	// CreateUser validates the user, assigns a fresh ID and stores it.
	// The returned copy carries the assigned ID.
	CreateUser(ctx context.Context, usr user.User) (user.User, error)

	// UpdateUser validates the user and atomically replaces the stored
	// value with the same ID. It returns models.ErrNotFound when the ID
	// is unknown.
	UpdateUser(ctx context.Context, usr user.User) (user.User, error)

	// DeleteUser removes the user with the given ID. It returns
	// models.ErrNotFound when the ID is unknown.
	DeleteUser(ctx context.Context, userID uint32) error

	// ListUsers returns a snapshot copy of all stored users.
	// Order is unspecified.
	ListUsers(ctx context.Context) ([]user.User, error)

	Ping(ctx context.Context) error

	Close() error
}
