package spider_test

import (
	"testing"

	"github.com/GBuch1/spider"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validConfig() *spider.Config {
	return &spider.Config{
		Seeds: []string{"/corpus/index.html"},
		Agent: spider.AgentConfig{
			External: []string{"http://", "https://"},
			Encoding: "utf-8",
			Parser:   spider.ParserHTML,
			Tags:     []spider.TagRule{{Tag: "p"}},
		},
	}
}

func TestConfig_Validate(t *testing.T) {
	t.Parallel()

	t.Run("accepts a valid config", func(t *testing.T) {
		t.Parallel()

		require.NoError(t, validConfig().Validate())
	})

	t.Run("accepts an empty seed list", func(t *testing.T) {
		t.Parallel()

		c := validConfig()
		c.Seeds = []string{}

		require.NoError(t, c.Validate())
	})

	tests := []struct {
		name   string
		modify func(c *spider.Config)
	}{
		{"rejects empty seed", func(c *spider.Config) { c.Seeds = []string{""} }},
		{"requires stopwords language", func(c *spider.Config) { c.Options.RemoveStopwords = true }},
		{"requires encoding", func(c *spider.Config) { c.Agent.Encoding = "" }},
		{"rejects unknown parser", func(c *spider.Config) { c.Agent.Parser = "regex" }},
		{"rejects empty external marker", func(c *spider.Config) { c.Agent.External = []string{""} }},
		{"rejects unnamed tag", func(c *spider.Config) { c.Agent.Tags = []spider.TagRule{{}} }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			c := validConfig()
			tt.modify(c)

			err := c.Validate()
			require.Error(t, err)
			assert.Equal(t, spider.EINVALID, spider.ErrorCode(err))
		})
	}
}

func TestTagRule_Matches(t *testing.T) {
	t.Parallel()

	attrs := map[string]string{"class": "post body", "id": "main"}
	lookup := func(name string) (string, bool) {
		v, ok := attrs[name]
		return v, ok
	}

	t.Run("matches with no constraints", func(t *testing.T) {
		t.Parallel()
		assert.True(t, spider.TagRule{Tag: "div"}.Matches(lookup))
	})

	t.Run("matches one class of many", func(t *testing.T) {
		t.Parallel()
		rule := spider.TagRule{Tag: "div", Attrs: []spider.AttrMatch{{Name: "class", Values: []string{"body"}}}}
		assert.True(t, rule.Matches(lookup))
	})

	t.Run("requires exact value for other attributes", func(t *testing.T) {
		t.Parallel()
		rule := spider.TagRule{Tag: "div", Attrs: []spider.AttrMatch{{Name: "id", Values: []string{"mai"}}}}
		assert.False(t, rule.Matches(lookup))
	})

	t.Run("requires presence of attribute", func(t *testing.T) {
		t.Parallel()
		rule := spider.TagRule{Tag: "div", Attrs: []spider.AttrMatch{{Name: "lang"}}}
		assert.False(t, rule.Matches(lookup))
	})
}

func TestIsKnownParser(t *testing.T) {
	t.Parallel()

	for _, name := range []string{"html.parser", "lxml", "html5lib", "xml", "lxml-xml", "trafilatura", "readability"} {
		assert.True(t, spider.IsKnownParser(name), name)
	}
	assert.False(t, spider.IsKnownParser(""))
	assert.False(t, spider.IsKnownParser("HTML.PARSER"))
}
