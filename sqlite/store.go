package sqlite

import (
	"context"
	"sync"

	"github.com/GBuch1/spider"
)

// Compile-time interface verification.
var (
	_ spider.DocumentStore = (*Store[spider.Fingerprint])(nil)
	_ spider.LocationStore = (*Store[spider.Location])(nil)
)

// Store is a membership store backed by the members table. Several stores
// can share one DB as long as their kinds differ.
//
// The membership interface has no error returns, so a failing statement
// makes the operation report false (or zero) and the first such error is
// kept for Err.
type Store[T spider.Keyer] struct {
	db   *DB
	kind string

	mu  sync.Mutex
	err error
}

// NewStore returns a store for members of the given kind in db.
func NewStore[T spider.Keyer](db *DB, kind string) *Store[T] {
	return &Store[T]{db: db, kind: kind}
}

// Add inserts item. Returns false if it was already a member.
func (s *Store[T]) Add(item T) bool {
	res, err := s.db.ExecContext(context.Background(),
		`INSERT OR IGNORE INTO members (kind, key) VALUES (?, ?)`,
		s.kind, item.Key(),
	)
	if err != nil {
		s.fail(err)
		return false
	}
	n, err := res.RowsAffected()
	if err != nil {
		s.fail(err)
		return false
	}
	return n == 1
}

// AddAll adds each item in order.
func (s *Store[T]) AddAll(items ...T) {
	for _, item := range items {
		s.Add(item)
	}
}

// Contains reports whether item is a member.
func (s *Store[T]) Contains(item T) bool {
	var exists bool
	err := s.db.QueryRowContext(context.Background(),
		`SELECT EXISTS (SELECT 1 FROM members WHERE kind = ? AND key = ?)`,
		s.kind, item.Key(),
	).Scan(&exists)
	if err != nil {
		s.fail(err)
		return false
	}
	return exists
}

// Remove deletes item. Returns false if it was not a member.
func (s *Store[T]) Remove(item T) bool {
	res, err := s.db.ExecContext(context.Background(),
		`DELETE FROM members WHERE kind = ? AND key = ?`,
		s.kind, item.Key(),
	)
	if err != nil {
		s.fail(err)
		return false
	}
	n, err := res.RowsAffected()
	if err != nil {
		s.fail(err)
		return false
	}
	return n == 1
}

// Count returns the number of members.
func (s *Store[T]) Count() int {
	var n int
	err := s.db.QueryRowContext(context.Background(),
		`SELECT COUNT(*) FROM members WHERE kind = ?`,
		s.kind,
	).Scan(&n)
	if err != nil {
		s.fail(err)
		return 0
	}
	return n
}

// Err returns the first database error the store ran into, wrapped as
// EINTERNAL, or nil.
func (s *Store[T]) Err() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err == nil {
		return nil
	}
	return spider.Errorf(spider.EINTERNAL, "%s store: %v", s.kind, s.err)
}

func (s *Store[T]) fail(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err == nil {
		s.err = err
	}
}
