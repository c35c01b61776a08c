// Package manager wraps a user storage with a read-through cache.
// The cache is a pure optimization, never the system of record: a missing
// entry only costs a storage round trip, while a wrong entry would serve
// stale data. Every write that can change a cached ID therefore
// invalidates that ID.
package manager

import (
	"context"
	"strconv"

	gocache "github.com/patrickmn/go-cache"

	"github.com/patric-chuzhbe/userdir/internal/user"
)

type userStorage interface {
	GetUser(ctx context.Context, userID uint32) (*user.User, error)

	CreateUser(ctx context.Context, usr user.User) (user.User, error)

	UpdateUser(ctx context.Context, usr user.User) (user.User, error)

	DeleteUser(ctx context.Context, userID uint32) error

	ListUsers(ctx context.Context) ([]user.User, error)
}

// Manager is a caching facade over any storage.UserStorage implementation.
// The cache performs its own locking per call, so the manager never holds
// cache state while waiting on the wrapped storage.
type Manager struct {
	db    userStorage
	cache *gocache.Cache
}

// New returns a Manager over the given storage with an empty cache.
// Entries do not expire; coherence relies on explicit invalidation.
func New(db userStorage) *Manager {
	return &Manager{
		db:    db,
		cache: gocache.New(gocache.NoExpiration, 0),
	}
}

func cacheKey(userID uint32) string {
	return strconv.FormatUint(uint64(userID), 10)
}

// GetUserCached returns the cached user when present, without touching the
// wrapped storage. On a miss it delegates to the storage and populates the
// cache when a user is found. Two concurrent misses for the same ID may
// both populate the cache; the values are identical, so the last writer
// winning is harmless.
func (m *Manager) GetUserCached(ctx context.Context, userID uint32) (*user.User, error) {
	if cached, found := m.cache.Get(cacheKey(userID)); found {
		usr := cached.(user.User)
		return &usr, nil
	}

	usr, err := m.db.GetUser(ctx, userID)
	if err != nil || usr == nil {
		return usr, err
	}

	m.cache.Set(cacheKey(userID), *usr, gocache.NoExpiration)

	return usr, nil
}

// GetUser bypasses the cache and reads from the wrapped storage.
func (m *Manager) GetUser(ctx context.Context, userID uint32) (*user.User, error) {
	return m.db.GetUser(ctx, userID)
}

// CreateUser delegates to the wrapped storage. The cache is not populated;
// the first cached read of the new ID will fetch it.
func (m *Manager) CreateUser(ctx context.Context, usr user.User) (user.User, error) {
	return m.db.CreateUser(ctx, usr)
}

// UpdateUser delegates to the wrapped storage and invalidates the cached
// entry on success, so later cached reads see the replacement.
func (m *Manager) UpdateUser(ctx context.Context, usr user.User) (user.User, error) {
	updated, err := m.db.UpdateUser(ctx, usr)
	if err != nil {
		return user.User{}, err
	}

	m.Invalidate(updated.ID)

	return updated, nil
}

// DeleteUser delegates to the wrapped storage and invalidates the cached
// entry on success.
func (m *Manager) DeleteUser(ctx context.Context, userID uint32) error {
	if err := m.db.DeleteUser(ctx, userID); err != nil {
		return err
	}

	m.Invalidate(userID)

	return nil
}

// ListUsers delegates to the wrapped storage. Listings are not cached.
func (m *Manager) ListUsers(ctx context.Context) ([]user.User, error) {
	return m.db.ListUsers(ctx)
}

// Invalidate removes the cached entry for the given ID. It is a no-op
// when the ID is not cached.
func (m *Manager) Invalidate(userID uint32) {
	m.cache.Delete(cacheKey(userID))
}

// Clear empties the cache entirely.
func (m *Manager) Clear() {
	m.cache.Flush()
}
