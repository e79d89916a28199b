// Package crawl provides the traversal core of spider: the FIFO frontier,
// the in-memory membership store, link classification, extraction, the
// deduplicating processors, and the sequential crawl driver.
package crawl

import (
	"context"
	"fmt"
	"io"

	"github.com/GBuch1/spider"
	"github.com/google/uuid"
)

// Crawler drives a crawl: it pops locations off the frontier, hands them to
// the agent, writes new documents to the output, and schedules new links.
type Crawler struct {
	Frontier spider.Frontier
	Agent    *Agent
}

// Result holds the outcome of a crawl run.
type Result struct {
	// RunID identifies the run in diagnostics.
	RunID string

	// Visited is the number of locations popped off the frontier.
	Visited int

	// Documents is the number of documents written to the output.
	Documents int

	// Failed is the number of locations that could not be read.
	Failed int

	// Bytes is the number of content bytes written, separators excluded.
	Bytes int
}

// ProgressEvent reports progress during a crawl run.
type ProgressEvent struct {
	Type     ProgressType
	Location spider.Location
	Document *spider.Document
	Pending  int
	Error    error

	// Next is the location that will be visited after this one, as known
	// when the visit starts. Zero when nothing else is queued.
	Next spider.Location
}

// ProgressType indicates the type of progress event.
type ProgressType int

const (
	ProgressVisit ProgressType = iota
	ProgressDocument
	ProgressFailed
	ProgressFinished
)

// ProgressFunc is a callback for reporting crawl progress.
type ProgressFunc func(event ProgressEvent)

// Seed registers the starting locations. Each one is recorded in the
// location store so later links back to it are not scheduled again;
// duplicate seeds are dropped.
func (c *Crawler) Seed(locs ...spider.Location) {
	for _, loc := range locs {
		if c.Agent.Locations.Add(loc) {
			c.Frontier.Push(loc)
		}
	}
}

// Run crawls until the frontier is empty, writing the content of every new
// document to w followed by a newline. The progress callback, if provided,
// receives events as crawling proceeds.
//
// Unreadable locations never stop the run. Run returns an error only when
// ctx is canceled or w fails, together with the partial result.
func (c *Crawler) Run(ctx context.Context, w io.Writer, progress ProgressFunc) (*Result, error) {
	result := &Result{RunID: uuid.NewString()}

	notify := func(ev ProgressEvent) {
		if progress != nil {
			progress(ev)
		}
	}

	for {
		if err := ctx.Err(); err != nil {
			return result, err
		}

		loc, ok := c.Frontier.Pop()
		if !ok {
			break
		}
		result.Visited++
		next, _ := c.Frontier.Peek()
		notify(ProgressEvent{Type: ProgressVisit, Location: loc, Pending: c.Frontier.Len(), Next: next})

		docs, links, err := c.Agent.Crawl(ctx, loc)
		if err != nil {
			result.Failed++
			notify(ProgressEvent{Type: ProgressFailed, Location: loc, Error: err})
		}

		for doc := range docs.All() {
			if _, err := fmt.Fprintln(w, doc.Content); err != nil {
				return result, spider.Errorf(spider.EINTERNAL, "write document %s: %v", doc.Source.URI, err)
			}
			result.Documents++
			result.Bytes += len(doc.Content)
			notify(ProgressEvent{Type: ProgressDocument, Location: loc, Document: doc})
		}

		var found []spider.Location
		for l := range links.All() {
			found = append(found, l)
		}
		c.Frontier.PushAll(found...)
	}

	notify(ProgressEvent{Type: ProgressFinished})

	return result, nil
}
