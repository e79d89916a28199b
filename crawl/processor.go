package crawl

import (
	"iter"

	"github.com/GBuch1/spider"
)

// ContentProcessor lazily yields the documents of one extraction whose
// fingerprints are not yet in the document store. Each yielded document's
// fingerprint is added to the store as it is produced.
//
// The sequence is finite and single-pass:
//
//	for p.Next() {
//		doc := p.Document()
//		...
//	}
type ContentProcessor struct {
	docs  []*spider.Document
	pos   int
	store spider.DocumentStore
	cur   *spider.Document
}

// NewContentProcessor creates a ContentProcessor over ext.
// A nil or contentless extraction yields nothing.
func NewContentProcessor(ext *spider.Extraction, store spider.DocumentStore) *ContentProcessor {
	p := &ContentProcessor{store: store}
	if ext != nil && ext.Content != "" {
		p.docs = []*spider.Document{spider.NewDocument(ext.Source, ext.Title, ext.Content)}
	}
	return p
}

// Next advances to the next unseen document.
// It returns false when the sequence is exhausted.
func (p *ContentProcessor) Next() bool {
	p.cur = nil
	for p.pos < len(p.docs) {
		doc := p.docs[p.pos]
		p.pos++
		if p.store.Add(doc.Fingerprint()) {
			p.cur = doc
			return true
		}
	}
	return false
}

// Document returns the document produced by the last call to Next.
func (p *ContentProcessor) Document() *spider.Document {
	return p.cur
}

// All returns an iterator draining the remaining documents.
func (p *ContentProcessor) All() iter.Seq[*spider.Document] {
	return func(yield func(*spider.Document) bool) {
		for p.Next() {
			if !yield(p.cur) {
				return
			}
		}
	}
}

// LinkProcessor lazily yields the outbound locations of one extraction
// that are not yet in the location store. Each yielded location is added
// to the store as it is produced and carries the extraction's source as
// its parent.
type LinkProcessor struct {
	source spider.Location
	links  []string
	pos    int
	store  spider.LocationStore
	cur    spider.Location
}

// NewLinkProcessor creates a LinkProcessor over ext.
// A nil extraction yields nothing.
func NewLinkProcessor(ext *spider.Extraction, store spider.LocationStore) *LinkProcessor {
	p := &LinkProcessor{store: store}
	if ext != nil {
		p.source = ext.Source
		p.links = ext.Links
	}
	return p
}

// Next advances to the next unseen location.
// It returns false when the sequence is exhausted.
func (p *LinkProcessor) Next() bool {
	p.cur = spider.Location{}
	for p.pos < len(p.links) {
		loc := p.source.Child(p.links[p.pos])
		p.pos++
		if p.store.Add(loc) {
			p.cur = loc
			return true
		}
	}
	return false
}

// Location returns the location produced by the last call to Next.
func (p *LinkProcessor) Location() spider.Location {
	return p.cur
}

// All returns an iterator draining the remaining locations.
func (p *LinkProcessor) All() iter.Seq[spider.Location] {
	return func(yield func(spider.Location) bool) {
		for p.Next() {
			if !yield(p.cur) {
				return
			}
		}
	}
}
