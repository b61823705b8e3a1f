package dictionary

import (
	"fmt"
	"math/big"
	"strings"

	"github.com/dustin/go-humanize"
)

// Category identifies one of the four word lists.
type Category string

// Categories in the order they appear in a rendered fluid.
const (
	Adjective Category = "adjective"
	Noun      Category = "noun"
	Adverb    Category = "adverb"
	Verb      Category = "verb"
)

// Dictionary holds the word lists a fluid is rendered from.
// A Dictionary returned by this package is never mutated afterwards.
type Dictionary struct {
	Adjectives []string
	Adverbs    []string
	Verbs      []string
	Nouns      []string
}

// Words returns the word list for the given category.
func (d *Dictionary) Words(c Category) []string {
	switch c {
	case Adjective:
		return d.Adjectives
	case Noun:
		return d.Nouns
	case Adverb:
		return d.Adverbs
	case Verb:
		return d.Verbs
	default:
		return nil
	}
}

// Validate reports ErrEmptyCategory if any word list is empty.
func (d *Dictionary) Validate() error {
	if d == nil {
		return fmt.Errorf("%w: nil dictionary", ErrEmptyCategory)
	}
	for _, c := range []Category{Adjective, Noun, Adverb, Verb} {
		if len(d.Words(c)) == 0 {
			return fmt.Errorf("%w: %s", ErrEmptyCategory, c)
		}
	}
	return nil
}

// UniqueCombinations returns the number of distinct phrases the dictionary
// can render: |adjectives| × |nouns| × |adverbs| × |verbs|.
func (d *Dictionary) UniqueCombinations() *big.Int {
	n := big.NewInt(int64(len(d.Adjectives)))
	n.Mul(n, big.NewInt(int64(len(d.Nouns))))
	n.Mul(n, big.NewInt(int64(len(d.Adverbs))))
	n.Mul(n, big.NewInt(int64(len(d.Verbs))))
	return n
}

// Stats summarizes list sizes and the addressable phrase space.
type Stats struct {
	Adjectives   int
	Adverbs      int
	Verbs        int
	Nouns        int
	Combinations *big.Int
}

// Stats returns the size summary of the dictionary.
func (d *Dictionary) Stats() Stats {
	return Stats{
		Adjectives:   len(d.Adjectives),
		Adverbs:      len(d.Adverbs),
		Verbs:        len(d.Verbs),
		Nouns:        len(d.Nouns),
		Combinations: d.UniqueCombinations(),
	}
}

// String renders the report printed after a build.
func (s Stats) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "=> ADJ: %s\n", humanize.Comma(int64(s.Adjectives)))
	fmt.Fprintf(&b, "=> ADV: %s\n", humanize.Comma(int64(s.Adverbs)))
	fmt.Fprintf(&b, "=> VRB: %s\n", humanize.Comma(int64(s.Verbs)))
	fmt.Fprintf(&b, "=>   N: %s\n", humanize.Comma(int64(s.Nouns)))
	// BigComma divides its argument in place.
	combinations := new(big.Int)
	if s.Combinations != nil {
		combinations.Set(s.Combinations)
	}
	fmt.Fprintf(&b, "=>   #: %s Combinations", humanize.BigComma(combinations))
	return b.String()
}
