package yaml_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/GBuch1/spider"
	"github.com/GBuch1/spider/yaml"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const jsonConfig = `{
	"seeds": ["/corpus/a.html", "/corpus/b.html"],
	"options": {
		"remove_stopwords": true,
		"stopwords_lang": "english"
	},
	"agent_config": {
		"external": ["http://", "https://"],
		"encoding": "utf-8",
		"parser": "html.parser",
		"tags": {
			"title": {},
			"p": {"class": "lead"},
			"div": {"id": ["main", "content"], "data-doc": true}
		},
		"debug": false
	}
}`

func writeConfig(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoadConfig(t *testing.T) {
	t.Parallel()

	t.Run("loads a JSON configuration", func(t *testing.T) {
		t.Parallel()

		cfg, err := yaml.LoadConfig(writeConfig(t, jsonConfig))

		require.NoError(t, err)
		assert.Equal(t, []string{"/corpus/a.html", "/corpus/b.html"}, cfg.Seeds)
		assert.True(t, cfg.Options.RemoveStopwords)
		assert.Equal(t, "english", cfg.Options.StopwordsLang)
		assert.Equal(t, []string{"http://", "https://"}, cfg.Agent.External)
		assert.Equal(t, "utf-8", cfg.Agent.Encoding)
		assert.Equal(t, spider.ParserHTML, cfg.Agent.Parser)
		assert.False(t, cfg.Agent.Debug)
	})

	t.Run("keeps tag rules in document order", func(t *testing.T) {
		t.Parallel()

		cfg, err := yaml.LoadConfig(writeConfig(t, jsonConfig))

		require.NoError(t, err)
		assert.Equal(t, []spider.TagRule{
			{Tag: "title", Attrs: []spider.AttrMatch{}},
			{Tag: "p", Attrs: []spider.AttrMatch{{Name: "class", Values: []string{"lead"}}}},
			{Tag: "div", Attrs: []spider.AttrMatch{
				{Name: "id", Values: []string{"main", "content"}},
				{Name: "data-doc"},
			}},
		}, cfg.Agent.Tags)
	})

	t.Run("loads YAML with a tag list", func(t *testing.T) {
		t.Parallel()

		cfg, err := yaml.LoadConfig(writeConfig(t, `
seeds: [/corpus/index.xml]
options:
  remove_stopwords: false
  stopwords_lang: ""
agent_config:
  external: []
  encoding: latin1
  parser: xml
  tags: [summary, content]
  debug: true
`))

		require.NoError(t, err)
		assert.Equal(t, []spider.TagRule{{Tag: "summary"}, {Tag: "content"}}, cfg.Agent.Tags)
		assert.True(t, cfg.Agent.Debug)
		assert.Equal(t, spider.ParserXML, cfg.Agent.Parser)
	})

	t.Run("accepts null tags", func(t *testing.T) {
		t.Parallel()

		cfg, err := yaml.LoadConfig(writeConfig(t, `{"seeds": ["/a.html"], "options": {"remove_stopwords": false, "stopwords_lang": ""},
"agent_config": {"external": [], "encoding": "utf-8", "parser": "lxml", "tags": null, "debug": false}}`))

		require.NoError(t, err)
		assert.Empty(t, cfg.Agent.Tags)
	})

	t.Run("reports every missing key", func(t *testing.T) {
		t.Parallel()

		_, err := yaml.LoadConfig(writeConfig(t, `{"seeds": ["/a.html"], "options": {"remove_stopwords": false},
"agent_config": {"external": [], "parser": "lxml", "debug": false}}`))

		require.Error(t, err)
		assert.Equal(t, spider.EINVALID, spider.ErrorCode(err))
		msg := spider.ErrorMessage(err)
		assert.Contains(t, msg, "options.stopwords_lang")
		assert.Contains(t, msg, "agent_config.encoding")
		assert.Contains(t, msg, "agent_config.tags")
		assert.NotContains(t, msg, "seeds")
	})

	t.Run("reports nested keys when a section is not a mapping", func(t *testing.T) {
		t.Parallel()

		_, err := yaml.LoadConfig(writeConfig(t, `{"seeds": ["/a.html"], "options": 3,
"agent_config": {"external": [], "encoding": "utf-8", "parser": "lxml", "tags": {}, "debug": false}}`))

		require.Error(t, err)
		assert.Contains(t, spider.ErrorMessage(err), "options.remove_stopwords")
	})

	t.Run("runs semantic validation", func(t *testing.T) {
		t.Parallel()

		_, err := yaml.LoadConfig(writeConfig(t, `{"seeds": ["/a.html"], "options": {"remove_stopwords": false, "stopwords_lang": ""},
"agent_config": {"external": [], "encoding": "utf-8", "parser": "regex", "tags": {}, "debug": false}}`))

		require.Error(t, err)
		assert.Equal(t, spider.EINVALID, spider.ErrorCode(err))
		assert.Contains(t, spider.ErrorMessage(err), "regex")
	})

	t.Run("rejects false attribute values", func(t *testing.T) {
		t.Parallel()

		_, err := yaml.LoadConfig(writeConfig(t, `{"seeds": ["/a.html"], "options": {"remove_stopwords": false, "stopwords_lang": ""},
"agent_config": {"external": [], "encoding": "utf-8", "parser": "lxml", "tags": {"p": {"class": false}}, "debug": false}}`))

		require.Error(t, err)
		assert.Equal(t, spider.EINVALID, spider.ErrorCode(err))
	})

	t.Run("rejects malformed input", func(t *testing.T) {
		t.Parallel()

		_, err := yaml.LoadConfig(writeConfig(t, `{"seeds": [`))

		require.Error(t, err)
		assert.Equal(t, spider.EINVALID, spider.ErrorCode(err))
	})

	t.Run("rejects a non-mapping document", func(t *testing.T) {
		t.Parallel()

		_, err := yaml.LoadConfig(writeConfig(t, `["/a.html"]`))

		require.Error(t, err)
		assert.Equal(t, spider.EINVALID, spider.ErrorCode(err))
	})

	t.Run("returns ENOTFOUND for missing file", func(t *testing.T) {
		t.Parallel()

		_, err := yaml.LoadConfig(filepath.Join(t.TempDir(), "missing.json"))

		require.Error(t, err)
		assert.Equal(t, spider.ENOTFOUND, spider.ErrorCode(err))
	})
}
