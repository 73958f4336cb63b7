// Package state provides dao.State implementations: a plain in-memory map and
// a SQLite-backed store for hosts that need the ledger to survive restarts.
package state

import "sync"

// Memory is a map-backed store. The mutex only guards against accidental
// cross-goroutine reads in hosts; the engine itself is serial by contract.
type Memory struct {
	mu sync.RWMutex
	db map[string]string
}

// NewMemory returns an empty in-memory store.
func NewMemory() *Memory {
	return &Memory{db: make(map[string]string)}
}

// Set stores the value under key.
func (m *Memory) Set(key, value string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.db[key] = value
}

// Get returns a pointer to the stored value, nil on a miss.
func (m *Memory) Get(key string) *string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	val, ok := m.db[key]
	if !ok {
		return nil
	}
	return &val
}

// Delete removes the key.
func (m *Memory) Delete(key string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.db, key)
}

// Len reports how many keys are stored. Test helper.
func (m *Memory) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.db)
}
