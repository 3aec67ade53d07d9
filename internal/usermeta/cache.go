package usermeta

import (
	"context"
	"sync"

	"photo-catalog/internal/metrics"
)

// CachedStore wraps a backend Store with a read-through in-memory cache
// keyed by absolute path. A single lock serializes access; the expected
// concurrency is a handful of simultaneous scan workers.
type CachedStore struct {
	backend Store
	mu      sync.Mutex
	cache   map[string]UserMetadata
}

// NewCached returns a CachedStore over the given backend.
func NewCached(backend Store) *CachedStore {
	return &CachedStore{
		backend: backend,
		cache:   make(map[string]UserMetadata),
	}
}

// Get consults the cache before the backend.
func (s *CachedStore) Get(ctx context.Context, path string) UserMetadata {
	s.mu.Lock()
	if meta, ok := s.cache[path]; ok {
		s.mu.Unlock()
		metrics.MetadataCacheHits.Inc()
		return meta
	}
	s.mu.Unlock()

	meta := s.backend.Get(ctx, path)

	s.mu.Lock()
	s.cache[path] = meta
	s.mu.Unlock()
	return meta
}

// Set writes through to the backend. The cache is only updated when the
// write succeeds, so a failed write never presents unsaved state as
// durable.
func (s *CachedStore) Set(ctx context.Context, path string, meta UserMetadata) error {
	if err := s.backend.Set(ctx, path, meta); err != nil {
		return err
	}

	s.mu.Lock()
	s.cache[path] = meta
	s.mu.Unlock()
	return nil
}

// Clear drops every cached entry. Called when a new scan begins so
// sidecar edits made outside the process are picked up.
func (s *CachedStore) Clear() {
	s.mu.Lock()
	s.cache = make(map[string]UserMetadata)
	s.mu.Unlock()
}

// Close closes the backend store.
func (s *CachedStore) Close() error {
	return s.backend.Close()
}
