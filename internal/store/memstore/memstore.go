// Package memstore provides an in-memory store implementation for testing.
package memstore

import (
	"context"
	"sync"

	"github.com/rhythmkit/osr/internal/store"
)

// Compile-time check that Store implements store.Store.
var _ store.Store = (*Store)(nil)

// Store is an in-memory store for testing.
type Store struct {
	mu      sync.RWMutex
	replays map[string][]byte
}

// New creates a new in-memory store.
func New() *Store {
	return &Store{
		replays: make(map[string][]byte),
	}
}

// SetReplay sets the raw bytes for a replay (for test setup).
// The data is copied to prevent caller mutations from affecting the store.
func (s *Store) SetReplay(key string, data []byte) {
	s.mu.Lock()
	defer s.mu.Unlock()
	copied := make([]byte, len(data))
	copy(copied, data)
	s.replays[key] = copied
}

// ReadReplay reads a replay from memory.
func (s *Store) ReadReplay(ctx context.Context, key string) ([]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	data, ok := s.replays[key]
	if !ok {
		return nil, store.ErrNotFound
	}
	return data, nil
}

// Close is a no-op for the memory store.
func (s *Store) Close() error {
	return nil
}
