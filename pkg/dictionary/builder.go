package dictionary

import "fmt"

// Sources holds the raw, newline-delimited input of a build.
type Sources struct {
	Adjectives string
	Adverbs    string
	Verbs      string
	Nouns      string

	// Exclusion is searched as one blob: a candidate word inside it is dropped.
	Exclusion string
}

// Build filters every raw list and assembles the dictionary.
// A category that filters down to nothing fails the build with ErrEmptyCategory.
func Build(src Sources) (*Dictionary, error) {
	d := &Dictionary{
		Adjectives: Filter(src.Adjectives, src.Exclusion),
		Adverbs:    Filter(src.Adverbs, src.Exclusion),
		Verbs:      Filter(src.Verbs, src.Exclusion),
		Nouns:      Filter(src.Nouns, src.Exclusion),
	}
	if err := d.Validate(); err != nil {
		return nil, fmt.Errorf("build dictionary: %w", err)
	}
	return d, nil
}
