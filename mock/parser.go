package mock

import (
	"io"

	"github.com/GBuch1/spider"
)

var _ spider.MarkupParser = (*MarkupParser)(nil)

// MarkupParser is a mock implementation of spider.MarkupParser.
type MarkupParser struct {
	ParseFn func(r io.Reader, rules []spider.TagRule) (*spider.Markup, error)
}

func (p *MarkupParser) Parse(r io.Reader, rules []spider.TagRule) (*spider.Markup, error) {
	return p.ParseFn(r, rules)
}
