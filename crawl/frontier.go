package crawl

import (
	"container/list"
	"fmt"
	"sync"

	"github.com/GBuch1/spider"
)

// Compile-time interface verification.
var _ spider.Frontier = (*Frontier)(nil)

// Frontier is an in-memory FIFO frontier. The head location is held in a
// slot outside the backing queue so Peek can answer without consuming.
// It performs no deduplication; callers filter through a LocationStore.
type Frontier struct {
	mu    sync.Mutex
	next  *spider.Location
	queue *list.List
}

// NewFrontier creates a Frontier seeded with locs in order.
func NewFrontier(locs ...spider.Location) *Frontier {
	f := &Frontier{queue: list.New()}
	f.PushAll(locs...)
	return f
}

// Push appends loc to the tail.
func (f *Frontier) Push(loc spider.Location) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.push(loc)
}

// PushAll appends locs in order; the first is dequeued first.
func (f *Frontier) PushAll(locs ...spider.Location) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, loc := range locs {
		f.push(loc)
	}
}

func (f *Frontier) push(loc spider.Location) {
	if f.next == nil {
		f.next = &loc
		return
	}
	f.queue.PushBack(loc)
}

// Peek returns the location the next Pop will return.
// The bool result is false if the frontier is empty.
func (f *Frontier) Peek() (spider.Location, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.next == nil {
		return spider.Location{}, false
	}
	return *f.next, true
}

// Pop removes and returns the head location.
// The bool result is false if the frontier is empty.
func (f *Frontier) Pop() (spider.Location, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.next == nil {
		return spider.Location{}, false
	}
	loc := *f.next
	f.next = nil

	// Refill the head slot from the queue.
	if e := f.queue.Front(); e != nil {
		next, _ := f.queue.Remove(e).(spider.Location)
		f.next = &next
	}
	return loc, true
}

// Len returns the number of pending locations, including the head.
func (f *Frontier) Len() int {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.next == nil {
		return 0
	}
	return f.queue.Len() + 1
}

// Empty reports whether no locations are pending.
func (f *Frontier) Empty() bool {
	return f.Len() == 0
}

func (f *Frontier) String() string {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.next == nil {
		return "Size: 0\nNext: <none>"
	}
	return fmt.Sprintf("Size: %d\nNext: %s", f.queue.Len()+1, f.next.URI)
}
