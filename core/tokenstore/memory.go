package tokenstore

import (
	"context"
	"sync"
)

// Memory is an in-process Store. Values do not survive a restart, which makes
// it suitable for tests and for consumers that opt out of persistence.
type Memory struct {
	mu    sync.RWMutex
	slots map[Key]string
}

// NewMemory creates an empty in-memory store.
func NewMemory() *Memory {
	return &Memory{
		slots: make(map[Key]string),
	}
}

// Get returns the stored value for key, or "" and false when absent.
func (m *Memory) Get(_ context.Context, key Key) (string, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	value, ok := m.slots[key]
	return value, ok
}

// Set stores value under key. Never fails.
func (m *Memory) Set(_ context.Context, key Key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.slots[key] = value
	return nil
}

// Remove deletes the slot. Removing an absent slot is a no-op.
func (m *Memory) Remove(_ context.Context, key Key) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	delete(m.slots, key)
	return nil
}
