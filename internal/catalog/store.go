package catalog

import (
	"sync"

	"estate-search/internal/model"
)

// Store owns the catalog snapshot queried by the engine. The snapshot is
// read-only between reloads; Replace is the single writer and holds the
// write lock for the whole swap, so a reload in progress is never observed
// as a partially populated catalog.
type Store struct {
	mu       sync.RWMutex
	listings []model.Listing
}

// NewStore creates an empty Store.
func NewStore() *Store {
	return &Store{}
}

// Replace swaps in a new catalog snapshot.
func (s *Store) Replace(listings []model.Listing) {
	copied := make([]model.Listing, len(listings))
	copy(copied, listings)

	s.mu.Lock()
	s.listings = copied
	s.mu.Unlock()
}

// Snapshot returns a copy of the current catalog in catalog order. Callers
// may score or reorder the copy freely without coordination.
func (s *Store) Snapshot() []model.Listing {
	s.mu.RLock()
	defer s.mu.RUnlock()

	copied := make([]model.Listing, len(s.listings))
	copy(copied, s.listings)
	return copied
}

// Len returns the number of listings in the current snapshot.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.listings)
}
