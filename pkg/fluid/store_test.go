package fluid_test

import (
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/fluid/pkg/dictionary"
	"github.com/dmitrymomot/fluid/pkg/fluid"
)

func TestLoadDictionary(t *testing.T) {
	t.Parallel()

	d, err := fluid.LoadDictionary()
	require.NoError(t, err)
	require.NoError(t, d.Validate())
	assert.Same(t, d, fluid.Dictionary())
}

func TestDictionary_ConcurrentCallersShareOneInstance(t *testing.T) {
	t.Parallel()

	const workers = 32
	results := make([]*dictionary.Dictionary, workers)

	var wg sync.WaitGroup
	for i := range workers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			results[i] = fluid.Dictionary()
		}()
	}
	wg.Wait()

	for _, d := range results {
		assert.Same(t, results[0], d)
	}
}

func TestDictionary_MatchesDataDirectory(t *testing.T) {
	t.Parallel()

	read := func(name string) string {
		b, err := os.ReadFile(filepath.Join("..", "..", "data", name))
		require.NoError(t, err)
		return string(b)
	}

	built, err := dictionary.Build(dictionary.Sources{
		Adjectives: read("adj.txt"),
		Adverbs:    read("adv.txt"),
		Verbs:      read("vrb.txt"),
		Nouns:      read("n.txt"),
		Exclusion:  read("filter.txt"),
	})
	require.NoError(t, err)

	assert.Equal(t, built, fluid.Dictionary(), "dict.bin is stale; run go generate ./pkg/fluid")
}

func TestDictionary_CombinationSpace(t *testing.T) {
	t.Parallel()

	// Keeps the collision test below meaningful.
	assert.Greater(t, fluid.Dictionary().UniqueCombinations().Int64(), int64(1e10))
}

func TestGenerate_NoCollisions(t *testing.T) {
	t.Parallel()

	const draws = 10000
	seen := make(map[string]struct{}, draws)
	for range draws {
		s := fluid.Generate()
		_, dup := seen[s]
		require.False(t, dup, "duplicate fluid %q", s)
		seen[s] = struct{}{}
	}
}

func TestString_UsesEmbeddedWords(t *testing.T) {
	t.Parallel()

	d := fluid.Dictionary()
	for range 100 {
		parts := strings.Split(fluid.New().String(), fluid.Separator)
		require.Len(t, parts, 4)
		assert.Contains(t, d.Adjectives, parts[0])
		assert.Contains(t, d.Nouns, parts[1])
		assert.Contains(t, d.Adverbs, parts[2])
		assert.Contains(t, d.Verbs, parts[3])
	}
}

func TestString_RenderedWordsPassFilter(t *testing.T) {
	t.Parallel()

	d := fluid.Dictionary()
	for _, c := range []dictionary.Category{dictionary.Adjective, dictionary.Noun, dictionary.Adverb, dictionary.Verb} {
		for _, w := range d.Words(c) {
			assert.Regexp(t, `^[a-z]{3,9}$`, w, "%s %q", c, w)
		}
	}
}
