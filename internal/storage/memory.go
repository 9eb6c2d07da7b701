package storage

import "sync"

// MemStore is an in-memory Store used by tests and as a fallback when no
// writable state directory is available.
type MemStore struct {
	mu     sync.Mutex
	values map[string][]byte
}

// NewMemStore returns an empty in-memory store.
func NewMemStore() *MemStore {
	return &MemStore{values: make(map[string][]byte)}
}

// Get returns the bytes stored under key.
func (m *MemStore) Get(key string) ([]byte, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	raw, ok := m.values[key]
	if !ok {
		return nil, false
	}
	dup := make([]byte, len(raw))
	copy(dup, raw)
	return dup, true
}

// Set stores value under key.
func (m *MemStore) Set(key string, value []byte) {
	m.mu.Lock()
	defer m.mu.Unlock()

	dup := make([]byte, len(value))
	copy(dup, value)
	m.values[key] = dup
}

// Remove deletes the value stored under key.
func (m *MemStore) Remove(key string) {
	m.mu.Lock()
	defer m.mu.Unlock()

	delete(m.values, key)
}
