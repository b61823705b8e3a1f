package dictionary_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/fluid/pkg/dictionary"
)

func TestFilter(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		raw       string
		exclusion string
		want      []string
	}{
		{
			name: "trims and lowercases",
			raw:  "  Quick \n\tBROWN\r\nFox\n",
			want: []string{"quick", "brown", "fox"},
		},
		{
			name: "preserves input order",
			raw:  "zebra\napple\nmango",
			want: []string{"zebra", "apple", "mango"},
		},
		{
			name: "rejects short words",
			raw:  "a\nab\nabc",
			want: []string{"abc"},
		},
		{
			name: "rejects long words",
			raw:  "abcdefghi\nabcdefghij\nabcdefghijk",
			want: []string{"abcdefghi"},
		},
		{
			name: "drops blank lines",
			raw:  "\n\n   \nowl\n\n",
			want: []string{"owl"},
		},
		{
			name: "allows up to two collapsed characters",
			raw:  "balloon\ncoffee\nbookkeep",
			want: []string{"balloon", "coffee"},
		},
		{
			name: "counts every repeat inside a run",
			raw:  "aaab\naaaab",
			want: []string{"aaab"},
		},
		{
			name: "only consecutive duplicates collapse",
			raw:  "banana\nabcabcabc",
			want: []string{"banana", "abcabcabc"},
		},
		{
			name:      "excludes substrings of the exclusion blob",
			raw:       "cat\ndog\nbird",
			exclusion: "concatenate\nhotdogs\n",
			want:      []string{"bird"},
		},
		{
			name:      "exclusion is not line-exact",
			raw:       "tent\nrain",
			exclusion: "contents",
			want:      []string{"rain"},
		},
		{
			name: "folds diacritics to ascii",
			raw:  "Café\nnaïve\nÉLAN",
			want: []string{"cafe", "naive", "elan"},
		},
		{
			name: "rejects non-letters",
			raw:  "o'clock\nwell-off\nr2d2\nbig cat\nкот\nokay",
			want: []string{"okay"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, dictionary.Filter(tt.raw, tt.exclusion))
		})
	}
}

func TestFilter_KeepsOnlyASCIILetters(t *testing.T) {
	t.Parallel()

	raw := "o'clock\nwell-off\nr2d2\nbig cat\nкот\nCafé\nstraße"
	assert.Equal(t, []string{"cafe"}, dictionary.Filter(raw, ""))
}

func TestFilter_EmptyInput(t *testing.T) {
	t.Parallel()
	assert.Empty(t, dictionary.Filter("", ""))
	assert.Empty(t, dictionary.Filter("ab\nx\n", ""))
}

func TestFilter_Idempotent(t *testing.T) {
	t.Parallel()

	raw := strings.Join([]string{
		"Apple", "bookkeeper", "committee", "Zoë", "xx", "averylongword",
		"sunny", "mississippi", "loop", "killer", "grass", "tomato",
	}, "\n")
	exclusion := "killer\nbad words here\n"

	once := dictionary.Filter(raw, exclusion)
	twice := dictionary.Filter(strings.Join(once, "\n"), exclusion)
	assert.Equal(t, once, twice)

	for _, w := range once {
		assert.Equal(t, strings.ToLower(w), w)
		assert.Greater(t, len(w), 2)
		assert.Less(t, len(w), 10)
		assert.NotContains(t, exclusion, w)
	}
}
