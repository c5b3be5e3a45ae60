package repository

import "context"

type MockCache struct {
	Data map[string]string
}

func NewMockCache() *MockCache {
	return &MockCache{
		Data: make(map[string]string),
	}
}

func (m *MockCache) Get(ctx context.Context, key string) (string, bool) {
	val, ok := m.Data[key]
	return val, ok
}

func (m *MockCache) Set(ctx context.Context, key string, value string) error {
	m.Data[key] = value
	return nil
}
