package crawl

import (
	"context"
	"log/slog"

	"github.com/GBuch1/spider"
)

// parentDisplayLen keeps the last 40 characters of a parent location in
// diagnostics, plus the "..." prefix.
const parentDisplayLen = 43

// Agent fetches and extracts one location at a time and wraps the result
// in processors bound to the run's shared stores.
type Agent struct {
	Fetcher   spider.Fetcher
	Extractor *Extractor
	Documents spider.DocumentStore
	Locations spider.LocationStore

	// Logger receives a debug line for every location that cannot be read.
	// Defaults to discarding output.
	Logger *slog.Logger
}

// Crawl fetches and extracts loc and returns its processors.
//
// Failures never abort the crawl: when loc cannot be opened or parsed the
// processors are empty and the failure is returned for reporting only.
// The returned processors are always usable.
func (a *Agent) Crawl(ctx context.Context, loc spider.Location) (*ContentProcessor, *LinkProcessor, error) {
	ext, err := a.extract(ctx, loc)
	if err != nil {
		a.logger().Debug("location unavailable",
			"uri", loc.URI,
			"parent", displayParent(loc),
			"err", err,
		)
		ext = spider.EmptyExtraction(loc)
	}
	return NewContentProcessor(ext, a.Documents), NewLinkProcessor(ext, a.Locations), err
}

// extract opens loc and runs the extractor over it. The stream is closed
// before returning on every path.
func (a *Agent) extract(ctx context.Context, loc spider.Location) (*spider.Extraction, error) {
	rc, err := a.Fetcher.Open(ctx, loc)
	if err != nil {
		return nil, err
	}
	defer rc.Close()

	return a.Extractor.Extract(rc, loc)
}

func (a *Agent) logger() *slog.Logger {
	if a.Logger == nil {
		return slog.New(slog.DiscardHandler)
	}
	return a.Logger
}

func displayParent(loc spider.Location) string {
	if loc.Parent == "" {
		return "unknown"
	}
	return TruncateURL(loc.Parent, parentDisplayLen)
}
