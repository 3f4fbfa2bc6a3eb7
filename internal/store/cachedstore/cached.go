// Package cachedstore provides an LRU caching wrapper for Store
// implementations. Raw replay buffers are immutable once fetched, so cached
// entries never need invalidation.
package cachedstore

import (
	"context"
	"sync/atomic"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/rhythmkit/osr/internal/stats"
	"github.com/rhythmkit/osr/internal/store"
)

// Compile-time check that Store implements store.Store.
var _ store.Store = (*Store)(nil)

// Store wraps another Store with an in-memory LRU cache of replay buffers.
type Store struct {
	underlying store.Store
	cache      *lru.Cache[string, []byte]
	collector  stats.Collector

	hits   atomic.Int64
	misses atomic.Int64
}

// Stats contains cache statistics.
type Stats struct {
	Hits   int64
	Misses int64
	Size   int // Current number of entries
}

// HitRate returns the cache hit rate as a percentage.
func (s Stats) HitRate() float64 {
	total := s.Hits + s.Misses
	if total == 0 {
		return 0
	}
	return float64(s.Hits) / float64(total) * 100
}

// New creates a cached store wrapping the given store, holding at most
// capacity replay buffers. The collector is optional; if nil, a no-op
// collector is used.
func New(underlying store.Store, capacity int, collector stats.Collector) (*Store, error) {
	cache, err := lru.New[string, []byte](capacity)
	if err != nil {
		return nil, err
	}
	if collector == nil {
		collector = stats.NewNoop()
	}
	return &Store{
		underlying: underlying,
		cache:      cache,
		collector:  collector,
	}, nil
}

// ReadReplay reads a replay, checking the cache first.
func (s *Store) ReadReplay(ctx context.Context, key string) ([]byte, error) {
	if data, ok := s.cache.Get(key); ok {
		s.hits.Add(1)
		s.collector.IncCounter(stats.MetricCacheHits, 1)
		return data, nil
	}
	s.misses.Add(1)
	s.collector.IncCounter(stats.MetricCacheMisses, 1)

	data, err := s.underlying.ReadReplay(ctx, key)
	if err != nil {
		return nil, err
	}
	s.collector.IncCounter(stats.MetricStoreReads, 1)

	s.cache.Add(key, data)
	s.collector.SetGauge(stats.MetricCacheSize, int64(s.cache.Len()))

	return data, nil
}

// Close closes the underlying store.
func (s *Store) Close() error {
	return s.underlying.Close()
}

// Stats returns current cache statistics.
func (s *Store) Stats() Stats {
	return Stats{
		Hits:   s.hits.Load(),
		Misses: s.misses.Load(),
		Size:   s.cache.Len(),
	}
}
