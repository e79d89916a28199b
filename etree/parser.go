// Package etree provides an XML MarkupParser built on beevik/etree.
package etree

import (
	"io"
	"strings"

	"github.com/GBuch1/spider"
	"github.com/beevik/etree"
)

// Compile-time interface verification.
var _ spider.MarkupParser = (*Parser)(nil)

// Parser selects text from XML documents (the xml and lxml-xml selectors).
// Tags are matched by local name; anchors are the href attributes of any
// element, which covers XHTML and Atom links.
type Parser struct{}

// NewParser creates a new XML parser.
func NewParser() *Parser {
	return &Parser{}
}

// Parse reads an XML document and returns, rule by rule, the character data
// of every matching element in document order, the first title element's
// text, and every href. With no rules the root element's character data is
// returned.
func (p *Parser) Parse(r io.Reader, rules []spider.TagRule) (*spider.Markup, error) {
	doc := etree.NewDocument()
	if _, err := doc.ReadFrom(r); err != nil {
		return nil, spider.Errorf(spider.EINVALID, "failed to parse XML: %v", err)
	}

	root := doc.Root()
	if root == nil {
		return nil, spider.Errorf(spider.EINVALID, "XML document has no root element")
	}

	m := &spider.Markup{}
	walk(root, func(el *etree.Element) {
		if m.Title == "" && el.Tag == "title" {
			m.Title = strings.Join(textNodes(nil, el), " ")
		}
		if href := el.SelectAttr("href"); href != nil {
			m.Anchors = append(m.Anchors, href.Value)
		}
	})

	if len(rules) == 0 {
		m.Fragments = textNodes(nil, root)
		return m, nil
	}

	for _, rule := range rules {
		walk(root, func(el *etree.Element) {
			if el.Tag == rule.Tag && rule.Matches(attrLookup(el)) {
				m.Fragments = textNodes(m.Fragments, el)
			}
		})
	}
	return m, nil
}

// walk visits el and its descendants in document order.
func walk(el *etree.Element, fn func(*etree.Element)) {
	fn(el)
	for _, child := range el.ChildElements() {
		walk(child, fn)
	}
}

// textNodes appends every non-blank character data token below el,
// trimmed, in document order.
func textNodes(dst []string, el *etree.Element) []string {
	for _, tok := range el.Child {
		switch t := tok.(type) {
		case *etree.CharData:
			if text := strings.TrimSpace(t.Data); text != "" {
				dst = append(dst, text)
			}
		case *etree.Element:
			dst = textNodes(dst, t)
		}
	}
	return dst
}

func attrLookup(el *etree.Element) func(string) (string, bool) {
	return func(name string) (string, bool) {
		a := el.SelectAttr(name)
		if a == nil {
			return "", false
		}
		return a.Value, true
	}
}
