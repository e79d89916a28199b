package spider

// Markup engine selectors accepted in agent_config.parser.
const (
	ParserHTML        = "html.parser"
	ParserLXML        = "lxml"
	ParserHTML5Lib    = "html5lib"
	ParserXML         = "xml"
	ParserLXMLXML     = "lxml-xml"
	ParserTrafilatura = "trafilatura"
	ParserReadability = "readability"
)

// Config is a crawl run configuration.
type Config struct {
	// Seeds are the initial location strings. An empty list is a valid,
	// empty crawl.
	Seeds []string `yaml:"seeds"`

	Options Options `yaml:"options"`

	Agent AgentConfig `yaml:"agent_config"`
}

// Options controls the downstream text analytics.
type Options struct {
	RemoveStopwords bool   `yaml:"remove_stopwords"`
	StopwordsLang   string `yaml:"stopwords_lang"`
}

// AgentConfig controls how each location is fetched and extracted.
type AgentConfig struct {
	// External lists substrings that mark a link as external.
	External []string `yaml:"external"`

	// Encoding is the text codec name of local documents (e.g. "utf-8").
	Encoding string `yaml:"encoding"`

	// Parser selects the markup engine.
	Parser string `yaml:"parser"`

	// Tags are the content rules in concatenation order.
	Tags []TagRule `yaml:"-"`

	// Debug enables diagnostic output.
	Debug bool `yaml:"debug"`
}

// Validate returns an error if the configuration contains invalid fields.
func (c *Config) Validate() error {
	for _, s := range c.Seeds {
		if s == "" {
			return Errorf(EINVALID, "seed must not be empty")
		}
	}
	if c.Options.RemoveStopwords && c.Options.StopwordsLang == "" {
		return Errorf(EINVALID, "stopwords language required when removing stopwords")
	}
	return c.Agent.Validate()
}

// Validate returns an error if the agent configuration contains invalid fields.
func (c *AgentConfig) Validate() error {
	if c.Encoding == "" {
		return Errorf(EINVALID, "agent encoding required")
	}
	if !IsKnownParser(c.Parser) {
		return Errorf(EINVALID, "unknown parser %q", c.Parser)
	}
	for _, m := range c.External {
		if m == "" {
			return Errorf(EINVALID, "external marker must not be empty")
		}
	}
	for _, r := range c.Tags {
		if r.Tag == "" {
			return Errorf(EINVALID, "tag name required")
		}
	}
	return nil
}

// IsKnownParser reports whether name is a supported markup engine selector.
func IsKnownParser(name string) bool {
	switch name {
	case ParserHTML, ParserLXML, ParserHTML5Lib, ParserXML, ParserLXMLXML, ParserTrafilatura, ParserReadability:
		return true
	}
	return false
}
