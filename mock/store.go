package mock

import "github.com/GBuch1/spider"

var (
	_ spider.DocumentStore = (*Store[spider.Fingerprint])(nil)
	_ spider.LocationStore = (*Store[spider.Location])(nil)
)

// Store is a mock implementation of spider.MembershipStore.
type Store[T spider.Keyer] struct {
	AddFn      func(item T) bool
	AddAllFn   func(items ...T)
	ContainsFn func(item T) bool
	RemoveFn   func(item T) bool
	CountFn    func() int
}

func (s *Store[T]) Add(item T) bool {
	return s.AddFn(item)
}

func (s *Store[T]) AddAll(items ...T) {
	s.AddAllFn(items...)
}

func (s *Store[T]) Contains(item T) bool {
	return s.ContainsFn(item)
}

func (s *Store[T]) Remove(item T) bool {
	return s.RemoveFn(item)
}

func (s *Store[T]) Count() int {
	return s.CountFn()
}
