package session

import "sync"

// MemoryStore in-memory Store, used by tests and local development
// without Redis.
type MemoryStore struct {
	mu   sync.RWMutex
	data map[string]string
}

// NewMemoryStore creates an empty in-memory store
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{data: make(map[string]string)}
}

// Set writes one session field
func (s *MemoryStore) Set(sessionID, key, value string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data[sessionID+":"+key] = value
}

// Get reads one session field, "" when absent
func (s *MemoryStore) Get(sessionID, key string) string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.data[sessionID+":"+key]
}

// Forget removes session fields
func (s *MemoryStore) Forget(sessionID string, keys ...string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, key := range keys {
		delete(s.data, sessionID+":"+key)
	}
}
