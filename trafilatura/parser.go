// Package trafilatura provides a MarkupParser that keeps only the main
// content of an HTML page, using go-trafilatura.
package trafilatura

import (
	"bytes"
	"io"

	"github.com/GBuch1/spider"
	"github.com/markusmobius/go-trafilatura"
	"golang.org/x/net/html"
)

// Compile-time interface verification.
var _ spider.MarkupParser = (*Parser)(nil)

// Parser wraps go-trafilatura. Tag rules are ignored: the main content is
// located heuristically, and boilerplate such as navigation and footers is
// dropped. Anchors are collected from the full page so navigation links
// are still followed.
type Parser struct{}

// NewParser creates a new Parser.
func NewParser() *Parser {
	return &Parser{}
}

// Parse reads an HTML page and returns its main content as a single
// fragment. A page without recognizable main content yields no fragments.
func (p *Parser) Parse(r io.Reader, _ []spider.TagRule) (*spider.Markup, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, spider.Errorf(spider.EINTERNAL, "failed to read HTML: %v", err)
	}
	if len(bytes.TrimSpace(raw)) == 0 {
		return nil, spider.Errorf(spider.EINVALID, "empty HTML input")
	}

	root, err := html.Parse(bytes.NewReader(raw))
	if err != nil {
		return nil, spider.Errorf(spider.EINVALID, "failed to parse HTML: %v", err)
	}

	m := &spider.Markup{Anchors: anchors(root)}

	opts := trafilatura.Options{
		EnableFallback: true,
	}
	result, err := trafilatura.Extract(bytes.NewReader(raw), opts)
	if err != nil {
		return m, nil
	}

	m.Title = result.Metadata.Title
	if result.ContentText != "" {
		m.Fragments = []string{result.ContentText}
	}
	return m, nil
}

// anchors returns the href of every a element in document order.
func anchors(n *html.Node) []string {
	var hrefs []string
	var visit func(*html.Node)
	visit = func(n *html.Node) {
		if n.Type == html.ElementNode && n.Data == "a" {
			for _, a := range n.Attr {
				if a.Key == "href" {
					hrefs = append(hrefs, a.Val)
					break
				}
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			visit(c)
		}
	}
	visit(n)
	return hrefs
}
