// Package lock serializes mutating operations per account. Guards for
// distinct accounts never block each other, so throughput scales with the
// account population while a single account's history stays totally
// ordered.
package lock

import (
	"sync"

	"github.com/google/uuid"
)

// Manager hands out one mutex per account id. Guards are created lazily on
// first use; LoadOrStore guarantees two concurrent first-time accesses to
// the same id end up with the same guard.
type Manager struct {
	guards sync.Map // uuid.UUID -> *sync.Mutex
}

// NewManager creates an empty lock manager.
func NewManager() *Manager {
	return &Manager{}
}

// WithAccountLock runs fn with exclusive access to the account's mutable
// state. The guard is released on every exit path, including fn panicking.
func (m *Manager) WithAccountLock(accountID uuid.UUID, fn func() error) error {
	mu := m.guard(accountID)
	mu.Lock()
	defer mu.Unlock()
	return fn()
}

func (m *Manager) guard(accountID uuid.UUID) *sync.Mutex {
	if mu, ok := m.guards.Load(accountID); ok {
		return mu.(*sync.Mutex)
	}
	mu, _ := m.guards.LoadOrStore(accountID, &sync.Mutex{})
	return mu.(*sync.Mutex)
}
