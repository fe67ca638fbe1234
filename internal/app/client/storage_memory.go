package client

import (
	"context"
	"sync"

	"vindecoder/internal/domain/history"
)

// MemoryStorage - in-memory хранилище, используется если основное недоступно
type MemoryStorage struct {
	mu     sync.RWMutex
	values map[string][]history.Entry
}

func NewMemoryStorage() *MemoryStorage {
	return &MemoryStorage{
		values: make(map[string][]history.Entry),
	}
}

func (m *MemoryStorage) Load(_ context.Context) ([]history.Entry, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	entries, ok := m.values[history.Key]
	if !ok {
		return nil, history.ErrNotFound
	}
	out := make([]history.Entry, len(entries))
	copy(out, entries)
	return out, nil
}

func (m *MemoryStorage) Save(_ context.Context, entries []history.Entry) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	stored := make([]history.Entry, len(entries))
	copy(stored, entries)
	m.values[history.Key] = stored
	return nil
}

func (m *MemoryStorage) Close() error {
	return nil
}
