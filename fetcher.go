package spider

import (
	"context"
	"io"
)

// Fetcher opens the document stored at a location.
type Fetcher interface {
	// Open returns a readable stream for loc, decoded to UTF-8.
	// The caller must close the stream.
	// Returns ENOTFOUND if the location does not exist or is external.
	Open(ctx context.Context, loc Location) (io.ReadCloser, error)
}
