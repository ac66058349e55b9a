package store

import "sync"

// Memory is an in-process store. Contents are lost on exit.
type Memory struct {
	mu   sync.RWMutex
	data map[string]string
}

// NewMemory returns an empty memory store.
func NewMemory() *Memory {
	return &Memory{data: make(map[string]string)}
}

func (m *Memory) Get(key string) (string, bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	v, ok := m.data[key]
	return v, ok, nil
}

func (m *Memory) Set(key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data[key] = value
	return nil
}

// Close is a no-op.
func (m *Memory) Close() error { return nil }
