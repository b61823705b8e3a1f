package dictionary

import "errors"

var (
	// ErrEmptyCategory is returned when one of the four word lists has no words.
	ErrEmptyCategory = errors.New("dictionary category is empty")

	// Decoding errors
	ErrCorruptDictionary  = errors.New("dictionary resource is corrupt")
	ErrUnsupportedVersion = errors.New("unsupported dictionary resource version")
)
