// Package slog provides logging decorators for spider services.
package slog

import (
	"context"
	"io"
	"log/slog"
	"time"

	"github.com/GBuch1/spider"
)

// Ensure LoggingFetcher implements spider.Fetcher.
var _ spider.Fetcher = (*LoggingFetcher)(nil)

// LoggingFetcher wraps a Fetcher with logging.
type LoggingFetcher struct {
	next   spider.Fetcher
	logger *slog.Logger
}

// NewLoggingFetcher creates a new LoggingFetcher.
func NewLoggingFetcher(next spider.Fetcher, logger *slog.Logger) *LoggingFetcher {
	return &LoggingFetcher{next: next, logger: logger}
}

// Open delegates to the wrapped fetcher and logs the operation.
func (f *LoggingFetcher) Open(ctx context.Context, loc spider.Location) (rc io.ReadCloser, err error) {
	defer func(begin time.Time) {
		f.logger.Info("open",
			"uri", loc.URI,
			"parent", loc.Parent,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return f.next.Open(ctx, loc)
}
