package dictionary

import (
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Word length bounds, exclusive.
const (
	minWordLen = 2
	maxWordLen = 10

	// A word may lose at most this many characters to run-collapse.
	maxCollapsed = 2
)

// Filter turns a newline-delimited raw word list into the candidate words
// a dictionary category is built from. Input order is preserved.
//
// A line is normalized (trimmed, lowercased, diacritics folded to ASCII)
// and then rejected if it:
//   - contains anything other than ASCII letters,
//   - loses three or more characters when consecutive duplicate letters
//     are collapsed ("bookkeeper" → "bokeper"),
//   - is shorter than 3 or longer than 9 characters,
//   - occurs anywhere inside exclusion as a substring.
//
// The letters-only rule is stricter than a plain four-stage filter: after
// folding, any word with punctuation, digits, spaces or non-Latin letters is
// dropped, so "o'clock", "well-off", "r2d2", "big cat", "кот" and "straße"
// are all rejected while "Café" becomes "cafe".
func Filter(raw, exclusion string) []string {
	lower := cases.Lower(language.Und)
	fold := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

	var words []string
	for line := range strings.Lines(raw) {
		word := lower.String(strings.TrimSpace(line))
		if folded, _, err := transform.String(fold, word); err == nil {
			word = folded
		}

		if !isASCIILetters(word) {
			continue
		}
		if len(word)-len(collapseRuns(word)) > maxCollapsed {
			continue
		}
		if len(word) >= maxWordLen || len(word) <= minWordLen {
			continue
		}
		if strings.Contains(exclusion, word) {
			continue
		}
		words = append(words, word)
	}
	return words
}

// collapseRuns removes every character that equals its predecessor.
func collapseRuns(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	var prev rune
	for i, r := range s {
		if i > 0 && r == prev {
			continue
		}
		b.WriteRune(r)
		prev = r
	}
	return b.String()
}

func isASCIILetters(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < 'a' || s[i] > 'z' {
			return false
		}
	}
	return true
}
