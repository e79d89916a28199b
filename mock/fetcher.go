package mock

import (
	"context"
	"io"

	"github.com/GBuch1/spider"
)

var _ spider.Fetcher = (*Fetcher)(nil)

// Fetcher is a mock implementation of spider.Fetcher.
type Fetcher struct {
	OpenFn func(ctx context.Context, loc spider.Location) (io.ReadCloser, error)
}

func (f *Fetcher) Open(ctx context.Context, loc spider.Location) (io.ReadCloser, error) {
	return f.OpenFn(ctx, loc)
}

// ReadCloser is a mock io.ReadCloser that records whether it was closed.
type ReadCloser struct {
	io.Reader
	CloseFn func() error
	Closed  bool
}

func (r *ReadCloser) Close() error {
	r.Closed = true
	if r.CloseFn != nil {
		return r.CloseFn()
	}
	return nil
}
