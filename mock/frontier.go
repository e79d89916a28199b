package mock

import "github.com/GBuch1/spider"

var _ spider.Frontier = (*Frontier)(nil)

// Frontier is a mock implementation of spider.Frontier.
type Frontier struct {
	PushFn    func(loc spider.Location)
	PushAllFn func(locs ...spider.Location)
	PeekFn    func() (spider.Location, bool)
	PopFn     func() (spider.Location, bool)
	LenFn     func() int
	EmptyFn   func() bool
}

func (f *Frontier) Push(loc spider.Location) {
	f.PushFn(loc)
}

func (f *Frontier) PushAll(locs ...spider.Location) {
	f.PushAllFn(locs...)
}

func (f *Frontier) Peek() (spider.Location, bool) {
	return f.PeekFn()
}

func (f *Frontier) Pop() (spider.Location, bool) {
	return f.PopFn()
}

func (f *Frontier) Len() int {
	return f.LenFn()
}

func (f *Frontier) Empty() bool {
	return f.EmptyFn()
}
