package storage

import (
	"context"
	"sync"
)

// MemoryStore is an in-memory ObjectStore for tests.
type MemoryStore struct {
	mu      sync.Mutex
	Objects map[string][]byte
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		Objects: make(map[string][]byte),
	}
}

func (m *MemoryStore) Put(ctx context.Context, key string, data []byte) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	stored := make([]byte, len(data))
	copy(stored, data)
	m.Objects[key] = stored
	return "memory://" + key, nil
}
