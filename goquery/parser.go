// Package goquery provides an HTML MarkupParser built on goquery.
package goquery

import (
	"io"
	"strings"

	"github.com/GBuch1/spider"
	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
)

// Compile-time interface verification.
var _ spider.MarkupParser = (*Parser)(nil)

// Parser selects text from HTML documents. It serves the html.parser, lxml
// and html5lib selectors alike; all three parse with the HTML5 algorithm.
type Parser struct{}

// NewParser creates a new HTML parser.
func NewParser() *Parser {
	return &Parser{}
}

// Parse reads an HTML document and returns, rule by rule, the text nodes of
// every matching element in document order, the title, and every anchor
// href. With no rules the text nodes of the whole body are returned.
func (p *Parser) Parse(r io.Reader, rules []spider.TagRule) (*spider.Markup, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, spider.Errorf(spider.EINVALID, "failed to parse HTML: %v", err)
	}

	m := &spider.Markup{
		Title:     doc.Find("title").First().Text(),
		Fragments: selectFragments(doc, rules),
	}

	doc.Find("a[href]").Each(func(_ int, sel *goquery.Selection) {
		href, _ := sel.Attr("href")
		m.Anchors = append(m.Anchors, href)
	})

	return m, nil
}

func selectFragments(doc *goquery.Document, rules []spider.TagRule) []string {
	if len(rules) == 0 {
		return textNodes(nil, doc.Find("body"))
	}

	var fragments []string
	for _, rule := range rules {
		doc.Find(rule.Tag).Each(func(_ int, sel *goquery.Selection) {
			if rule.Matches(sel.Attr) {
				fragments = textNodes(fragments, sel)
			}
		})
	}
	return fragments
}

// textNodes appends every non-blank text node below sel, trimmed, in
// document order. Each node stays a separate fragment so text from
// neighbouring elements is never glued together.
func textNodes(dst []string, sel *goquery.Selection) []string {
	for _, n := range sel.Nodes {
		for d := range n.Descendants() {
			if d.Type != html.TextNode {
				continue
			}
			if text := strings.TrimSpace(d.Data); text != "" {
				dst = append(dst, text)
			}
		}
	}
	return dst
}
