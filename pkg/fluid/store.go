package fluid

import (
	_ "embed"
	"sync"

	"github.com/dmitrymomot/fluid/pkg/dictionary"
)

//go:embed dict.bin
var dictFile []byte

var loadDictionary = sync.OnceValues(func() (*dictionary.Dictionary, error) {
	return dictionary.Decode(dictFile)
})

// LoadDictionary decodes the embedded dictionary on first call and returns the
// same result to every caller afterwards. Use it at startup to surface a
// corrupt build artifact as an error.
func LoadDictionary() (*dictionary.Dictionary, error) {
	return loadDictionary()
}

// Dictionary returns the embedded dictionary. It panics if the resource is
// corrupt: the file is fixed at build time, so there is nothing to retry.
func Dictionary() *dictionary.Dictionary {
	d, err := loadDictionary()
	if err != nil {
		panic("fluid dictionary file is corrupt: " + err.Error())
	}
	return d
}
