// Package dictionary builds and serializes the word lists fluids are rendered from.
//
// A Dictionary holds four ordered word lists: adjectives, adverbs, verbs and
// nouns. It is produced offline from raw text by Build, which runs Filter over
// each category, and is persisted with MarshalBinary into a compact resource
// that the fluid package embeds and decodes with Decode at run time.
//
// # Filtering
//
// Filter keeps words that are easy to read at a glance: lowercase ASCII
// letters only, three to nine characters long, with at most two characters
// lost to collapsing consecutive duplicate letters, and not contained in the
// exclusion blob. Filter is idempotent for a fixed exclusion blob.
//
// # Resource format
//
// The resource starts with the magic "FLDX" and a version byte, followed by
// the adjective, adverb, verb and noun lists in that order. Each list is a
// uvarint word count followed by uvarint-length-prefixed UTF-8 words:
//
//	data, err := d.MarshalBinary()
//	...
//	d2, err := dictionary.Decode(data)
//
// Decode rejects anything that does not round-trip exactly, including empty
// categories, and wraps every failure with ErrCorruptDictionary.
//
// # Usage
//
//	d, err := dictionary.Build(dictionary.Sources{
//		Adjectives: adjRaw,
//		Adverbs:    advRaw,
//		Verbs:      vrbRaw,
//		Nouns:      nounRaw,
//		Exclusion:  exclusionRaw,
//	})
//	if err != nil {
//		return err
//	}
//	fmt.Println(d.Stats())
package dictionary
