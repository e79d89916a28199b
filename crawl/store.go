package crawl

import (
	"sync"

	"github.com/GBuch1/spider"
)

// Compile-time interface verification.
var (
	_ spider.DocumentStore = (*Store[spider.Fingerprint])(nil)
	_ spider.LocationStore = (*Store[spider.Location])(nil)
)

// Store is an exact in-memory membership store keyed by Key().
// It is safe for concurrent use by multiple goroutines.
type Store[T spider.Keyer] struct {
	mu      sync.RWMutex
	members map[string]struct{}
}

// NewStore creates an empty Store.
func NewStore[T spider.Keyer]() *Store[T] {
	return &Store[T]{members: make(map[string]struct{})}
}

// Add inserts item. Returns false if it was already a member.
func (s *Store[T]) Add(item T) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	key := item.Key()
	if _, ok := s.members[key]; ok {
		return false
	}
	s.members[key] = struct{}{}
	return true
}

// AddAll adds each item in order.
func (s *Store[T]) AddAll(items ...T) {
	for _, item := range items {
		s.Add(item)
	}
}

// Contains reports whether item is a member.
func (s *Store[T]) Contains(item T) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	_, ok := s.members[item.Key()]
	return ok
}

// Remove deletes item. Returns false if it was not a member.
func (s *Store[T]) Remove(item T) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	key := item.Key()
	if _, ok := s.members[key]; !ok {
		return false
	}
	delete(s.members, key)
	return true
}

// Count returns the number of members.
func (s *Store[T]) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.members)
}
