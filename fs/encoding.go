package fs

import (
	"strings"

	"github.com/GBuch1/spider"
	"golang.org/x/net/html/charset"
	"golang.org/x/text/encoding"
)

// encodingAliases maps codec names that are not WHATWG labels to labels
// that are. Keys are lower case with hyphens.
var encodingAliases = map[string]string{
	"latin":   "iso-8859-1",
	"latin-1": "iso-8859-1",
	"u8":      "utf-8",
	"utf":     "utf-8",
	"cp65001": "utf-8",
}

// LookupEncoding returns the encoding named by label. WHATWG labels are
// tried first; otherwise underscores are treated as hyphens and a few codec
// aliases are applied, so names such as "latin_1" or "UTF_8" resolve too.
// Returns EINVALID if the label is unknown.
func LookupEncoding(label string) (encoding.Encoding, error) {
	if enc, _ := charset.Lookup(label); enc != nil {
		return enc, nil
	}

	name := strings.ReplaceAll(strings.ToLower(strings.TrimSpace(label)), "_", "-")
	if alias, ok := encodingAliases[name]; ok {
		name = alias
	}
	if enc, _ := charset.Lookup(name); enc != nil {
		return enc, nil
	}
	return nil, spider.Errorf(spider.EINVALID, "unknown encoding %q", label)
}
