// Package docstore keeps the latest extraction result per document in
// memory. Results live only long enough to serve verification and
// export requests; a TTL sweep evicts stale entries.
package docstore

import (
	"sync"
	"time"

	"github.com/dgallion1/papermeta/internal/meta"
)

// Result is one complete extraction outcome. Metadata, confidence map
// and text sample are stored behind a single pointer, so replacing a
// document's result swaps all three as one unit: readers never see a
// metadata record paired with a stale confidence map.
type Result struct {
	Metadata   meta.Metadata
	Confidence meta.ConfidenceMap
	Sample     string // bounded excerpt of the normalized text

	storedAt time.Time
}

// Store is a thread-safe keyed result registry.
type Store struct {
	mu      sync.RWMutex
	results map[string]*Result
	ttl     time.Duration
}

func New(ttl time.Duration) *Store {
	if ttl <= 0 {
		ttl = time.Hour
	}
	return &Store{
		results: make(map[string]*Result),
		ttl:     ttl,
	}
}

// Put stores or atomically replaces the result for a document id.
func (s *Store) Put(id string, r Result) {
	r.storedAt = time.Now()
	s.mu.Lock()
	defer s.mu.Unlock()
	s.results[id] = &r
}

// Get returns the current result for a document id.
func (s *Store) Get(id string) (*Result, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	r, ok := s.results[id]
	return r, ok
}

// Delete removes a document's result. Returns whether it existed.
func (s *Store) Delete(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.results[id]
	delete(s.results, id)
	return ok
}

// Len reports the number of stored results.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.results)
}

// Cleanup evicts results older than the TTL.
func (s *Store) Cleanup() {
	s.mu.Lock()
	defer s.mu.Unlock()
	cutoff := time.Now().Add(-s.ttl)
	for id, r := range s.results {
		if r.storedAt.Before(cutoff) {
			delete(s.results, id)
		}
	}
}
