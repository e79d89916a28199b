// Package bloom provides a membership store fronted by a Bloom filter.
package bloom

import (
	"sync"

	"github.com/GBuch1/spider"
	"github.com/bits-and-blooms/bloom/v3"
)

// Default sizing used by the CLI.
const (
	DefaultExpectedItems     = 10000
	DefaultFalsePositiveRate = 0.01
)

// Compile-time interface verification.
var (
	_ spider.DocumentStore = (*Store[spider.Fingerprint])(nil)
	_ spider.LocationStore = (*Store[spider.Location])(nil)
)

// Store is an exact membership store. A Bloom filter answers most
// negative lookups before the exact set is consulted, so answers are
// never false positives. Removed members stay set in the filter and are
// resolved by the exact set.
type Store[T spider.Keyer] struct {
	mu      sync.RWMutex
	filter  *bloom.BloomFilter
	members map[string]struct{}
}

// NewStore creates a Store sized for n expected members with the given
// filter false positive rate.
func NewStore[T spider.Keyer](n uint, fpRate float64) *Store[T] {
	return &Store[T]{
		filter:  bloom.NewWithEstimates(n, fpRate),
		members: make(map[string]struct{}),
	}
}

// Add inserts item. Returns false if it was already a member.
func (s *Store[T]) Add(item T) bool {
	key := item.Key()

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.filter.TestString(key) {
		if _, ok := s.members[key]; ok {
			return false
		}
	}
	s.filter.AddString(key)
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
	key := item.Key()

	s.mu.RLock()
	defer s.mu.RUnlock()

	if !s.filter.TestString(key) {
		return false
	}
	_, ok := s.members[key]
	return ok
}

// Remove deletes item. Returns false if it was not a member.
func (s *Store[T]) Remove(item T) bool {
	key := item.Key()

	s.mu.Lock()
	defer s.mu.Unlock()

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
