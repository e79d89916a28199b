// Package readability provides a MarkupParser that keeps only the article
// text of an HTML page, using go-readability.
package readability

import (
	"bytes"
	"io"

	"github.com/GBuch1/spider"
	"github.com/go-shiori/go-readability"
	"golang.org/x/net/html"
)

// Ensure Parser implements spider.MarkupParser at compile time.
var _ spider.MarkupParser = (*Parser)(nil)

// Parser wraps go-readability. Tag rules are ignored. Anchors are collected
// from the full page before readability prunes it.
type Parser struct{}

// NewParser creates a new Parser.
func NewParser() *Parser {
	return &Parser{}
}

// Parse reads an HTML page and returns its article text as a single
// fragment.
func (p *Parser) Parse(r io.Reader, _ []spider.TagRule) (*spider.Markup, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, spider.Errorf(spider.EINTERNAL, "failed to read HTML: %v", err)
	}
	if len(bytes.TrimSpace(raw)) == 0 {
		return nil, spider.Errorf(spider.EINVALID, "empty HTML input")
	}

	doc, err := html.Parse(bytes.NewReader(raw))
	if err != nil {
		return nil, spider.Errorf(spider.EINVALID, "failed to parse HTML: %v", err)
	}
	m := &spider.Markup{Anchors: anchors(doc)}

	article, err := readability.FromDocument(doc, nil)
	if err != nil {
		return m, nil
	}

	m.Title = article.Title
	if article.TextContent != "" {
		m.Fragments = []string{article.TextContent}
	}
	return m, nil
}

func anchors(n *html.Node) []string {
	var hrefs []string
	for c := range n.Descendants() {
		if c.Type != html.ElementNode || c.Data != "a" {
			continue
		}
		for _, a := range c.Attr {
			if a.Key == "href" {
				hrefs = append(hrefs, a.Val)
				break
			}
		}
	}
	return hrefs
}
