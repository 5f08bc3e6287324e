package store

import (
	"context"
	"sync"

	"classy-weather/internal/domain/model"
)

// MemoryQueryStore keeps the query for the lifetime of the process
type MemoryQueryStore struct {
	mu    sync.RWMutex
	query string
}

var _ QueryStore = (*MemoryQueryStore)(nil)

func NewMemoryQueryStore(initial string) *MemoryQueryStore {
	return &MemoryQueryStore{query: initial}
}

func (s *MemoryQueryStore) Load(_ context.Context) (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.query, nil
}

func (s *MemoryQueryStore) Save(_ context.Context, query string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.query = query
	return nil
}

func (s *MemoryQueryStore) Health() model.ComponentHealthStatus {
	return up(map[string]string{"type": "memory"})
}
