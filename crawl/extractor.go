package crawl

import (
	"io"
	"strings"

	"github.com/GBuch1/spider"
)

// Extractor turns a raw document into normalized content and outbound
// link candidates. Structural parsing is delegated to a MarkupParser.
type Extractor struct {
	Parser spider.MarkupParser

	// Rules select the content elements, in concatenation order.
	Rules []spider.TagRule

	// External lists the substrings that mark a link as external.
	External []string
}

// NewExtractor creates an Extractor using the rules and markers of cfg.
func NewExtractor(parser spider.MarkupParser, cfg spider.AgentConfig) *Extractor {
	return &Extractor{
		Parser:   parser,
		Rules:    cfg.Tags,
		External: cfg.External,
	}
}

// Extract parses the document read from r as the document at source.
func (e *Extractor) Extract(r io.Reader, source spider.Location) (*spider.Extraction, error) {
	markup, err := e.Parser.Parse(r, e.Rules)
	if err != nil {
		return nil, err
	}

	links, filtered := ClassifyLinks(source.URI, markup.Anchors, e.External)

	return &spider.Extraction{
		Source:   source,
		Title:    strings.TrimSpace(markup.Title),
		Content:  NormalizeText(markup.Fragments),
		Links:    links,
		Anchors:  len(markup.Anchors),
		Filtered: filtered,
	}, nil
}

// NormalizeText trims each fragment, drops empty ones, and joins the rest
// with a single space.
func NormalizeText(fragments []string) string {
	parts := make([]string, 0, len(fragments))
	for _, f := range fragments {
		if f = strings.TrimSpace(f); f != "" {
			parts = append(parts, f)
		}
	}
	return strings.Join(parts, " ")
}
