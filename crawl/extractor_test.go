package crawl_test

import (
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/GBuch1/spider"
	"github.com/GBuch1/spider/crawl"
	"github.com/GBuch1/spider/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func staticParser(m *spider.Markup, err error) *mock.MarkupParser {
	return &mock.MarkupParser{
		ParseFn: func(_ io.Reader, _ []spider.TagRule) (*spider.Markup, error) {
			return m, err
		},
	}
}

func TestExtractor_Extract(t *testing.T) {
	t.Parallel()

	t.Run("normalizes fragments into content", func(t *testing.T) {
		t.Parallel()

		e := &crawl.Extractor{Parser: staticParser(&spider.Markup{
			Title:     "  Page  ",
			Fragments: []string{"  Hello ", "", "\n", "World\t"},
		}, nil)}

		ext, err := e.Extract(strings.NewReader(""), spider.NewLocation("/corpus/a.html"))

		require.NoError(t, err)
		assert.Equal(t, "Hello World", ext.Content)
		assert.Equal(t, "Page", ext.Title)
		assert.Equal(t, "/corpus/a.html", ext.Source.URI)
	})

	t.Run("classifies anchors and reports filtered count", func(t *testing.T) {
		t.Parallel()

		e := &crawl.Extractor{
			Parser: staticParser(&spider.Markup{
				Anchors: []string{"b.html", "#top", "https://ext.example/x", "c.html#s2", "../d.html"},
			}, nil),
			External: []string{"https://"},
		}

		ext, err := e.Extract(strings.NewReader(""), spider.NewLocation("/corpus/sub/a.html"))

		require.NoError(t, err)
		assert.Equal(t, []string{"/corpus/sub/b.html", "https://ext.example/x", "/corpus/d.html"}, ext.Links)
		assert.Equal(t, 5, ext.Anchors)
		assert.Equal(t, 2, ext.Filtered)
		assert.Equal(t, ext.Anchors, ext.Filtered+len(ext.Links))
	})

	t.Run("passes rules to the parser", func(t *testing.T) {
		t.Parallel()

		rules := []spider.TagRule{{Tag: "p"}, {Tag: "div", Attrs: []spider.AttrMatch{{Name: "id", Values: []string{"main"}}}}}
		var got []spider.TagRule
		e := crawl.NewExtractor(&mock.MarkupParser{
			ParseFn: func(_ io.Reader, r []spider.TagRule) (*spider.Markup, error) {
				got = r
				return &spider.Markup{}, nil
			},
		}, spider.AgentConfig{Tags: rules, External: []string{"http"}})

		_, err := e.Extract(strings.NewReader(""), spider.NewLocation("/a.html"))

		require.NoError(t, err)
		assert.Equal(t, rules, got)
		assert.Equal(t, []string{"http"}, e.External)
	})

	t.Run("returns parser error", func(t *testing.T) {
		t.Parallel()

		e := &crawl.Extractor{Parser: staticParser(nil, errors.New("malformed"))}

		ext, err := e.Extract(strings.NewReader(""), spider.NewLocation("/a.html"))

		require.Error(t, err)
		assert.Nil(t, ext)
	})
}

func TestNormalizeText(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		fragments []string
		want      string
	}{
		{name: "no fragments", fragments: nil, want: ""},
		{name: "only whitespace", fragments: []string{" ", "\n\t"}, want: ""},
		{name: "single fragment", fragments: []string{" Hello World "}, want: "Hello World"},
		{name: "keeps inner whitespace", fragments: []string{"a  b", "c"}, want: "a  b c"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, crawl.NormalizeText(tt.fragments))
		})
	}
}
