// Package freq computes two-gram frequencies over crawled text.
package freq

import (
	"fmt"
	"io"
	"slices"
	"strings"
	"unicode"

	"github.com/GBuch1/spider"
	"golang.org/x/text/cases"
)

// Tokenize reads all of r and splits it into case-folded words. Any rune
// that is neither a letter nor a digit separates words.
func Tokenize(r io.Reader) ([]string, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, spider.Errorf(spider.EINTERNAL, "read text: %v", err)
	}
	folded := cases.Fold().String(string(data))
	return strings.FieldsFunc(folded, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	}), nil
}

// ComputeTwoGramFrequencies counts every pair of adjacent words and returns
// the counts ordered by descending frequency, then by two-gram.
func ComputeTwoGramFrequencies(words []string) []spider.Frequency {
	if len(words) < 2 {
		return nil
	}

	counts := make(map[spider.TwoGram]int)
	for i := 0; i+1 < len(words); i++ {
		counts[spider.TwoGram{First: words[i], Second: words[i+1]}]++
	}

	freqs := make([]spider.Frequency, 0, len(counts))
	for g, n := range counts {
		freqs = append(freqs, spider.Frequency{Token: g, Count: n})
	}
	slices.SortFunc(freqs, spider.CompareFrequencies)
	return freqs
}

// WriteFrequencies writes one frequency per line as <first:second>:count.
func WriteFrequencies(w io.Writer, freqs []spider.Frequency) error {
	for _, f := range freqs {
		if _, err := fmt.Fprintln(w, f); err != nil {
			return err
		}
	}
	return nil
}
