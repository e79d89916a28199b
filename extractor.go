package spider

import (
	"io"
	"strings"
)

// Markup holds the raw pieces a MarkupParser pulls out of a document.
type Markup struct {
	// Title is the document title, if the markup declares one.
	Title string

	// Fragments are the text fragments selected by the tag rules,
	// rule by rule, each rule's matches in document order.
	Fragments []string

	// Anchors are the link targets in document order.
	Anchors []string
}

// MarkupParser is the only place structural knowledge of a document format
// lives. It selects text by tag rules and collects link targets.
type MarkupParser interface {
	// Parse reads a document and returns its fragments and anchors.
	// An empty rule set selects the whole document body.
	Parse(r io.Reader, rules []TagRule) (*Markup, error)
}

// Extraction is the normalized result of extracting one location.
type Extraction struct {
	// Source is the location the extraction was taken from.
	Source Location

	Title string

	// Content is the normalized text. Empty when nothing was extracted.
	Content string

	// Links are the outbound candidates in document order: external links
	// verbatim, internal links resolved against Source.
	Links []string

	// Anchors is the number of anchors found; Filtered is how many of them
	// were dropped as in-document links. Filtered+len(Links) == Anchors.
	Anchors  int
	Filtered int
}

// EmptyExtraction returns the result used when a location cannot be read.
func EmptyExtraction(source Location) *Extraction {
	return &Extraction{Source: source}
}

// TagRule selects content elements by tag name and attribute constraints.
type TagRule struct {
	Tag   string
	Attrs []AttrMatch
}

// AttrMatch constrains one attribute of a selected element.
// With no Values the attribute only has to be present.
type AttrMatch struct {
	Name   string
	Values []string
}

// Matches reports whether an element's attributes satisfy every constraint.
// attr looks up an attribute value by name.
func (r TagRule) Matches(attr func(name string) (string, bool)) bool {
	for _, m := range r.Attrs {
		v, ok := attr(m.Name)
		if !ok || !m.matches(v) {
			return false
		}
	}
	return true
}

func (m AttrMatch) matches(v string) bool {
	if len(m.Values) == 0 {
		return true
	}
	for _, want := range m.Values {
		if v == want {
			return true
		}
		// class is a whitespace-separated list.
		if m.Name == "class" {
			for _, c := range strings.Fields(v) {
				if c == want {
					return true
				}
			}
		}
	}
	return false
}
