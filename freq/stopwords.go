package freq

import (
	"bufio"
	"embed"
	"strings"

	"github.com/GBuch1/spider"
)

//go:embed stopwords/*.txt
var stopwordFiles embed.FS

// Stopwords returns the stop-word set for lang (e.g. "english").
// Returns EINVALID if no list exists for lang.
func Stopwords(lang string) (map[string]struct{}, error) {
	lang = strings.ToLower(strings.TrimSpace(lang))
	if lang == "" || strings.ContainsAny(lang, "/.") {
		return nil, spider.Errorf(spider.EINVALID, "no stopwords for language %q", lang)
	}
	f, err := stopwordFiles.Open("stopwords/" + lang + ".txt")
	if err != nil {
		return nil, spider.Errorf(spider.EINVALID, "no stopwords for language %q", lang)
	}
	defer f.Close()

	set := make(map[string]struct{})
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		if w := strings.TrimSpace(sc.Text()); w != "" {
			set[w] = struct{}{}
		}
	}
	if err := sc.Err(); err != nil {
		return nil, spider.Errorf(spider.EINTERNAL, "read stopwords: %v", err)
	}
	return set, nil
}

// RemoveStopwords returns words without the stop words of lang, keeping
// order.
func RemoveStopwords(words []string, lang string) ([]string, error) {
	stop, err := Stopwords(lang)
	if err != nil {
		return nil, err
	}

	kept := make([]string, 0, len(words))
	for _, w := range words {
		if _, ok := stop[w]; !ok {
			kept = append(kept, w)
		}
	}
	return kept, nil
}
