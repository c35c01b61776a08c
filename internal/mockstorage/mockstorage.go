// Package mockstorage provides a testify-based mock implementation
// of the storage.UserStorage interface.
// It is used for unit testing the caching manager and the authentication
// layer by simulating storage behavior.
package mockstorage

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/patric-chuzhbe/userdir/internal/user"
)

// StorageMock is a testify mock that implements storage.UserStorage.
//
// Use it to simulate storage behavior and to assert how often the wrapped
// storage is actually hit, which is what the caching tests care about.
type StorageMock struct {
	mock.Mock
}

// GetUser mocks a lookup by ID.
func (m *StorageMock) GetUser(ctx context.Context, userID uint32) (*user.User, error) {
	args := m.Called(ctx, userID)
	usr, _ := args.Get(0).(*user.User)
	return usr, args.Error(1)
}

// CreateUser mocks user creation.
func (m *StorageMock) CreateUser(ctx context.Context, usr user.User) (user.User, error) {
	args := m.Called(ctx, usr)
	created, _ := args.Get(0).(user.User)
	return created, args.Error(1)
}

// UpdateUser mocks user replacement.
func (m *StorageMock) UpdateUser(ctx context.Context, usr user.User) (user.User, error) {
	args := m.Called(ctx, usr)
	updated, _ := args.Get(0).(user.User)
	return updated, args.Error(1)
}

// DeleteUser mocks user removal.
func (m *StorageMock) DeleteUser(ctx context.Context, userID uint32) error {
	args := m.Called(ctx, userID)
	return args.Error(0)
}

// ListUsers mocks the snapshot listing.
func (m *StorageMock) ListUsers(ctx context.Context) ([]user.User, error) {
	args := m.Called(ctx)
	users, _ := args.Get(0).([]user.User)
	return users, args.Error(1)
}

// Ping mocks the health check.
func (m *StorageMock) Ping(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

// Close mocks the storage shutdown.
func (m *StorageMock) Close() error {
	args := m.Called()
	return args.Error(0)
}
