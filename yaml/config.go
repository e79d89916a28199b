// Package yaml loads spider configuration files using gopkg.in/yaml.v3.
// JSON is valid YAML, so JSON configuration files load unchanged.
package yaml

import (
	"bytes"
	"errors"
	"os"
	"strings"

	"github.com/GBuch1/spider"
	"gopkg.in/yaml.v3"
)

// field is one key of the configuration schema. Keys with children must
// hold a mapping.
type field struct {
	key      string
	children []field
}

// schema lists every key a configuration file must declare.
var schema = []field{
	{key: "seeds"},
	{key: "options", children: []field{
		{key: "remove_stopwords"},
		{key: "stopwords_lang"},
	}},
	{key: "agent_config", children: []field{
		{key: "external"},
		{key: "encoding"},
		{key: "parser"},
		{key: "tags"},
		{key: "debug"},
	}},
}

// LoadConfig reads, checks, decodes and validates the configuration file at
// path. Every missing key is reported in a single EINVALID error. Returns
// ENOTFOUND if the file does not exist.
func LoadConfig(path string) (*spider.Config, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, spider.Errorf(spider.ENOTFOUND, "configuration file not found: %s", path)
	} else if err != nil {
		return nil, spider.Errorf(spider.EINTERNAL, "read configuration: %v", err)
	}
	return ParseConfig(data)
}

// ParseConfig checks, decodes and validates configuration data.
func ParseConfig(data []byte) (*spider.Config, error) {
	// Valid JSON never holds a raw tab inside a string, but YAML refuses
	// tabs as indentation.
	if trimmed := bytes.TrimSpace(data); len(trimmed) > 0 && trimmed[0] == '{' {
		data = bytes.ReplaceAll(data, []byte("\t"), []byte(" "))
	}

	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, spider.Errorf(spider.EINVALID, "malformed configuration: %v", err)
	}
	if doc.Kind != yaml.DocumentNode || len(doc.Content) == 0 || doc.Content[0].Kind != yaml.MappingNode {
		return nil, spider.Errorf(spider.EINVALID, "configuration must be a mapping")
	}
	root := doc.Content[0]

	if missing := missingKeys(root, schema, ""); len(missing) > 0 {
		return nil, spider.Errorf(spider.EINVALID, "required keys not present: %s", strings.Join(missing, ", "))
	}

	var cfg spider.Config
	if err := root.Decode(&cfg); err != nil {
		return nil, spider.Errorf(spider.EINVALID, "malformed configuration: %v", err)
	}

	tags, err := parseTags(lookup(lookup(root, "agent_config"), "tags"))
	if err != nil {
		return nil, err
	}
	cfg.Agent.Tags = tags

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// missingKeys returns the dotted path of every schema key absent from n.
func missingKeys(n *yaml.Node, fields []field, prefix string) []string {
	var missing []string
	for _, f := range fields {
		child := lookup(n, f.key)
		if child == nil {
			missing = append(missing, prefix+f.key)
			continue
		}
		if f.children == nil {
			continue
		}
		if child.Kind != yaml.MappingNode {
			child = nil
		}
		missing = append(missing, missingKeys(child, f.children, prefix+f.key+".")...)
	}
	return missing
}

// lookup returns the value node for key in mapping n, or nil.
func lookup(n *yaml.Node, key string) *yaml.Node {
	if n == nil || n.Kind != yaml.MappingNode {
		return nil
	}
	for i := 0; i+1 < len(n.Content); i += 2 {
		if n.Content[i].Value == key {
			return n.Content[i+1]
		}
	}
	return nil
}

// parseTags reads the content rules in document order. Tags is a mapping of
// tag name to an attribute mapping, or a list of bare tag names. An
// attribute's value is true (present), a string (exact value), or a list
// of strings (any of).
func parseTags(n *yaml.Node) ([]spider.TagRule, error) {
	if n == nil {
		return nil, nil
	}

	switch n.Kind {
	case yaml.ScalarNode:
		if n.Tag == "!!null" {
			return nil, nil
		}
	case yaml.SequenceNode:
		rules := make([]spider.TagRule, 0, len(n.Content))
		for _, item := range n.Content {
			if item.Kind != yaml.ScalarNode {
				return nil, spider.Errorf(spider.EINVALID, "line %d: tag name must be a string", item.Line)
			}
			rules = append(rules, spider.TagRule{Tag: item.Value})
		}
		return rules, nil
	case yaml.MappingNode:
		rules := make([]spider.TagRule, 0, len(n.Content)/2)
		for i := 0; i+1 < len(n.Content); i += 2 {
			attrs, err := parseAttrs(n.Content[i].Value, n.Content[i+1])
			if err != nil {
				return nil, err
			}
			rules = append(rules, spider.TagRule{Tag: n.Content[i].Value, Attrs: attrs})
		}
		return rules, nil
	}
	return nil, spider.Errorf(spider.EINVALID, "line %d: tags must be a mapping or a list", n.Line)
}

func parseAttrs(tag string, n *yaml.Node) ([]spider.AttrMatch, error) {
	if n.Kind == yaml.ScalarNode && n.Tag == "!!null" {
		return nil, nil
	}
	if n.Kind != yaml.MappingNode {
		return nil, spider.Errorf(spider.EINVALID, "line %d: attributes of tag %q must be a mapping", n.Line, tag)
	}

	attrs := make([]spider.AttrMatch, 0, len(n.Content)/2)
	for i := 0; i+1 < len(n.Content); i += 2 {
		name, value := n.Content[i].Value, n.Content[i+1]
		m := spider.AttrMatch{Name: name}

		switch value.Kind {
		case yaml.ScalarNode:
			if value.Tag == "!!bool" {
				var present bool
				if err := value.Decode(&present); err != nil || !present {
					return nil, spider.Errorf(spider.EINVALID, "line %d: attribute %q of tag %q must be true, a string, or a list", value.Line, name, tag)
				}
				break
			}
			m.Values = []string{value.Value}
		case yaml.SequenceNode:
			if err := value.Decode(&m.Values); err != nil {
				return nil, spider.Errorf(spider.EINVALID, "line %d: attribute %q of tag %q: %v", value.Line, name, tag, err)
			}
		default:
			return nil, spider.Errorf(spider.EINVALID, "line %d: attribute %q of tag %q must be true, a string, or a list", value.Line, name, tag)
		}

		attrs = append(attrs, m)
	}
	return attrs, nil
}
