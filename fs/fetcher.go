// Package fs provides file-system access for spider: opening local
// documents and writing reports.
package fs

import (
	"context"
	"errors"
	"io"
	"os"

	"github.com/GBuch1/spider"
	"golang.org/x/text/encoding"
)

// Ensure Fetcher implements spider.Fetcher at compile time.
var _ spider.Fetcher = (*Fetcher)(nil)

// Fetcher opens documents stored on the local file system and decodes
// them from the configured text encoding to UTF-8.
type Fetcher struct {
	external []string
	encoding encoding.Encoding
}

// NewFetcher creates a Fetcher for the external markers and encoding of
// cfg. Returns EINVALID if the encoding label is unknown.
func NewFetcher(cfg spider.AgentConfig) (*Fetcher, error) {
	enc, err := LookupEncoding(cfg.Encoding)
	if err != nil {
		return nil, err
	}
	return &Fetcher{
		external: cfg.External,
		encoding: enc,
	}, nil
}

// Open returns a decoded stream for the file at loc.
// Closing the stream closes the file.
func (f *Fetcher) Open(ctx context.Context, loc spider.Location) (io.ReadCloser, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if spider.IsExternal(f.external, loc.URI) {
		return nil, spider.Errorf(spider.ENOTFOUND, "external location: %s", loc.URI)
	}

	file, err := os.Open(loc.URI)
	if errors.Is(err, os.ErrNotExist) {
		return nil, spider.Errorf(spider.ENOTFOUND, "no such file: %s", loc.URI)
	} else if err != nil {
		return nil, spider.Errorf(spider.EINTERNAL, "open %s: %v", loc.URI, err)
	}

	info, err := file.Stat()
	if err != nil {
		file.Close()
		return nil, spider.Errorf(spider.EINTERNAL, "stat %s: %v", loc.URI, err)
	}
	if info.IsDir() {
		file.Close()
		return nil, spider.Errorf(spider.ENOTFOUND, "not a file: %s", loc.URI)
	}

	return &decodedFile{Reader: f.encoding.NewDecoder().Reader(file), file: file}, nil
}

// decodedFile reads through a decoder and closes the underlying file.
type decodedFile struct {
	io.Reader
	file *os.File
}

func (d *decodedFile) Close() error {
	return d.file.Close()
}
