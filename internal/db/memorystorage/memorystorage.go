// Package memorystorage provides the in-memory reference implementation of
// the storage.UserStorage interface. It is the system of record: the
// mapping and the ID counter live under a single RWMutex, so any number of
// readers may proceed together while a writer excludes everything.
package memorystorage

import (
	"context"
	"sync"

	"github.com/patric-chuzhbe/userdir/internal/db/storage"
	"github.com/patric-chuzhbe/userdir/internal/models"
	"github.com/patric-chuzhbe/userdir/internal/user"
)

var _ storage.UserStorage = (*MemoryStorage)(nil)

// MemoryStorage stores users in a map guarded by an RWMutex. The next-ID
// counter shares the same mutex, so racing creates never observe the same
// ID. IDs start at 1 and are never reused, even after deletion.
type MemoryStorage struct {
	mutex  sync.RWMutex
	users  map[uint32]user.User
	nextID uint32
}

func New() (*MemoryStorage, error) {
	return &MemoryStorage{
		users:  map[uint32]user.User{},
		nextID: 1,
	}, nil
}

// GetUser returns a copy of the stored user, or (nil, nil) when absent.
func (theStorage *MemoryStorage) GetUser(ctx context.Context, userID uint32) (*user.User, error) {
	theStorage.mutex.RLock()
	defer theStorage.mutex.RUnlock()

	usr, found := theStorage.users[userID]
	if !found {
		return nil, nil
	}

	return &usr, nil
}

// CreateUser validates the user, assigns the next free ID and stores it.
// A failed validation leaves the storage untouched.
func (theStorage *MemoryStorage) CreateUser(ctx context.Context, usr user.User) (user.User, error) {
	if err := usr.Validate(); err != nil {
		return user.User{}, err
	}

	theStorage.mutex.Lock()
	defer theStorage.mutex.Unlock()

	usr.ID = theStorage.nextID
	theStorage.nextID++
	theStorage.users[usr.ID] = usr

	return usr, nil
}

// UpdateUser validates the user and atomically replaces the stored value.
func (theStorage *MemoryStorage) UpdateUser(ctx context.Context, usr user.User) (user.User, error) {
	if err := usr.Validate(); err != nil {
		return user.User{}, err
	}

	theStorage.mutex.Lock()
	defer theStorage.mutex.Unlock()

	if _, found := theStorage.users[usr.ID]; !found {
		return user.User{}, models.ErrNotFound
	}
	theStorage.users[usr.ID] = usr

	return usr, nil
}

// DeleteUser removes the user. The ID counter is not decremented, so the
// freed ID is never handed out again.
func (theStorage *MemoryStorage) DeleteUser(ctx context.Context, userID uint32) error {
	theStorage.mutex.Lock()
	defer theStorage.mutex.Unlock()

	if _, found := theStorage.users[userID]; !found {
		return models.ErrNotFound
	}
	delete(theStorage.users, userID)

	return nil
}

// ListUsers returns a snapshot copy of all stored users in unspecified order.
func (theStorage *MemoryStorage) ListUsers(ctx context.Context) ([]user.User, error) {
	theStorage.mutex.RLock()
	defer theStorage.mutex.RUnlock()

	users := make([]user.User, 0, len(theStorage.users))
	for _, usr := range theStorage.users {
		users = append(users, usr)
	}

	return users, nil
}

func (theStorage *MemoryStorage) Ping(ctx context.Context) error {
	return nil
}

func (theStorage *MemoryStorage) Close() error {
	return nil
}
