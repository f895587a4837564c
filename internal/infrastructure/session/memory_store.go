package session

import (
	"context"
	"sync"
	"time"
)

// MemoryStore keeps sessions in process memory. It backs development runs
// without Redis and the test suites; sessions do not survive a restart.
type MemoryStore struct {
	mu       sync.RWMutex
	sessions map[string]memoryEntry
	lifetime time.Duration
	now      func() time.Time
	done     chan struct{}
}

type memoryEntry struct {
	session   Session
	expiresAt time.Time
}

// NewMemoryStore creates an in-memory session store
func NewMemoryStore(lifetime time.Duration) *MemoryStore {
	store := &MemoryStore{
		sessions: make(map[string]memoryEntry),
		lifetime: lifetime,
		now:      time.Now,
		done:     make(chan struct{}),
	}

	go store.cleanupExpired()

	return store
}

// Create persists a new session
func (m *MemoryStore) Create(ctx context.Context, s *Session) error {
	return m.write(s)
}

// Get returns the live session for id, or ErrNotFound
func (m *MemoryStore) Get(ctx context.Context, id string) (*Session, error) {
	m.mu.RLock()
	entry, ok := m.sessions[id]
	m.mu.RUnlock()

	if !ok {
		return nil, ErrNotFound
	}
	if m.now().After(entry.expiresAt) {
		m.mu.Lock()
		delete(m.sessions, id)
		m.mu.Unlock()
		return nil, ErrNotFound
	}

	s := entry.session
	return &s, nil
}

// Save persists mutations to an existing session
func (m *MemoryStore) Save(ctx context.Context, s *Session) error {
	return m.write(s)
}

// Delete removes a session; unknown ids are a no-op
func (m *MemoryStore) Delete(ctx context.Context, id string) error {
	m.mu.Lock()
	delete(m.sessions, id)
	m.mu.Unlock()
	return nil
}

// Close stops the cleanup goroutine
func (m *MemoryStore) Close() {
	close(m.done)
}

func (m *MemoryStore) write(s *Session) error {
	m.mu.Lock()
	m.sessions[s.ID] = memoryEntry{
		session:   *s,
		expiresAt: m.now().Add(m.lifetime),
	}
	m.mu.Unlock()
	return nil
}

// cleanupExpired removes expired sessions periodically
func (m *MemoryStore) cleanupExpired() {
	ticker := time.NewTicker(time.Hour)
	defer ticker.Stop()

	for {
		select {
		case <-m.done:
			return
		case <-ticker.C:
			m.mu.Lock()
			now := m.now()
			for id, entry := range m.sessions {
				if now.After(entry.expiresAt) {
					delete(m.sessions, id)
				}
			}
			m.mu.Unlock()
		}
	}
}
