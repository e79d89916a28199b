package spider

import (
	"cmp"
	"fmt"
)

// TwoGram is a pair of adjacent tokens.
type TwoGram struct {
	First  string
	Second string
}

// Compare orders two-grams by first token, then second token.
func (g TwoGram) Compare(other TwoGram) int {
	if c := cmp.Compare(g.First, other.First); c != 0 {
		return c
	}
	return cmp.Compare(g.Second, other.Second)
}

func (g TwoGram) String() string {
	return fmt.Sprintf("<%s:%s>", g.First, g.Second)
}

// Frequency associates a two-gram with its number of occurrences.
type Frequency struct {
	Token TwoGram
	Count int
}

// CompareFrequencies orders by descending count, breaking ties by token.
func CompareFrequencies(a, b Frequency) int {
	if c := cmp.Compare(b.Count, a.Count); c != 0 {
		return c
	}
	return a.Token.Compare(b.Token)
}

func (f Frequency) String() string {
	return fmt.Sprintf("%s:%d", f.Token, f.Count)
}
