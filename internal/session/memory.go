package session

import (
	"context"
	"sync"
	"time"

	"github.com/baharkarakas/freelancer-backend/internal/models"
)

type memoryEntry struct {
	identity models.Identity
	expires  time.Time
}

// MemoryStore keeps sessions in process memory. Expired entries are dropped
// lazily on read.
type MemoryStore struct {
	mu      sync.Mutex
	entries map[string]memoryEntry
	now     func() time.Time
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{entries: map[string]memoryEntry{}, now: time.Now}
}

func (m *MemoryStore) Get(_ context.Context, id string) (models.Identity, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	e, ok := m.entries[id]
	if !ok {
		return models.Identity{}, ErrNotFound
	}
	if !e.expires.IsZero() && !m.now().Before(e.expires) {
		delete(m.entries, id)
		return models.Identity{}, ErrNotFound
	}
	return e.identity, nil
}

func (m *MemoryStore) Set(_ context.Context, id string, identity models.Identity, ttl time.Duration) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	var exp time.Time
	if ttl > 0 {
		exp = m.now().Add(ttl)
	}
	m.entries[id] = memoryEntry{identity: identity, expires: exp}
	return nil
}

func (m *MemoryStore) Ping(context.Context) error { return nil }
