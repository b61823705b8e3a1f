package dictionary

import (
	"encoding/binary"
	"fmt"
	"unicode/utf8"
)

// Resource layout: magic, version byte, then the adjective, adverb, verb and
// noun lists, each as a uvarint count followed by uvarint-length-prefixed
// UTF-8 strings.
const (
	magic   = "FLDX"
	version = 1
)

// MarshalBinary encodes the dictionary into the compiled resource format.
// Dictionaries with an empty category are refused so a build can never emit
// a resource that fails to load.
func (d *Dictionary) MarshalBinary() ([]byte, error) {
	if err := d.Validate(); err != nil {
		return nil, err
	}

	size := len(magic) + 1
	for _, list := range d.lists() {
		size += binary.MaxVarintLen64
		for _, w := range list {
			size += binary.MaxVarintLen64 + len(w)
		}
	}

	buf := make([]byte, 0, size)
	buf = append(buf, magic...)
	buf = append(buf, version)
	for _, list := range d.lists() {
		buf = binary.AppendUvarint(buf, uint64(len(list)))
		for _, w := range list {
			buf = binary.AppendUvarint(buf, uint64(len(w)))
			buf = append(buf, w...)
		}
	}
	return buf, nil
}

// UnmarshalBinary decodes a compiled resource into d.
func (d *Dictionary) UnmarshalBinary(data []byte) error {
	decoded, err := Decode(data)
	if err != nil {
		return err
	}
	*d = *decoded
	return nil
}

// Decode parses a compiled resource. Every failure wraps ErrCorruptDictionary.
func Decode(data []byte) (*Dictionary, error) {
	if len(data) < len(magic)+1 || string(data[:len(magic)]) != magic {
		return nil, fmt.Errorf("%w: bad magic", ErrCorruptDictionary)
	}
	if v := data[len(magic)]; v != version {
		return nil, fmt.Errorf("%w: %w: got %d, want %d", ErrCorruptDictionary, ErrUnsupportedVersion, v, version)
	}

	r := reader{buf: data[len(magic)+1:]}
	d := &Dictionary{}
	for _, list := range []*[]string{&d.Adjectives, &d.Adverbs, &d.Verbs, &d.Nouns} {
		words, err := r.strings()
		if err != nil {
			return nil, err
		}
		*list = words
	}
	if len(r.buf) != 0 {
		return nil, fmt.Errorf("%w: %d trailing bytes", ErrCorruptDictionary, len(r.buf))
	}
	if err := d.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrCorruptDictionary, err)
	}
	return d, nil
}

// lists returns the word lists in resource order.
func (d *Dictionary) lists() [][]string {
	return [][]string{d.Adjectives, d.Adverbs, d.Verbs, d.Nouns}
}

type reader struct {
	buf []byte
}

func (r *reader) uvarint() (uint64, error) {
	v, n := binary.Uvarint(r.buf)
	if n <= 0 {
		return 0, fmt.Errorf("%w: malformed length prefix", ErrCorruptDictionary)
	}
	r.buf = r.buf[n:]
	return v, nil
}

func (r *reader) strings() ([]string, error) {
	count, err := r.uvarint()
	if err != nil {
		return nil, err
	}
	// Every string takes at least one byte for its length prefix.
	if count > uint64(len(r.buf)) {
		return nil, fmt.Errorf("%w: list of %d words exceeds remaining %d bytes", ErrCorruptDictionary, count, len(r.buf))
	}

	out := make([]string, 0, count)
	for range count {
		n, err := r.uvarint()
		if err != nil {
			return nil, err
		}
		if n > uint64(len(r.buf)) {
			return nil, fmt.Errorf("%w: truncated word", ErrCorruptDictionary)
		}
		w := r.buf[:n]
		if !utf8.Valid(w) {
			return nil, fmt.Errorf("%w: invalid UTF-8", ErrCorruptDictionary)
		}
		out = append(out, string(w))
		r.buf = r.buf[n:]
	}
	return out, nil
}
