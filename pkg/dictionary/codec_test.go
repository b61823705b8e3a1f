package dictionary_test

import (
	"encoding/binary"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/fluid/pkg/dictionary"
)

func TestRoundTrip(t *testing.T) {
	t.Parallel()

	large := make([]string, 5000)
	for i := range large {
		large[i] = fmt.Sprintf("word%d", i)
	}

	tests := []struct {
		name string
		dict *dictionary.Dictionary
	}{
		{
			name: "single word per category",
			dict: &dictionary.Dictionary{
				Adjectives: []string{"quick"},
				Adverbs:    []string{"slowly"},
				Verbs:      []string{"jumps"},
				Nouns:      []string{"fox"},
			},
		},
		{
			name: "unicode content",
			dict: &dictionary.Dictionary{
				Adjectives: []string{"café", "naïve", "日本"},
				Adverbs:    []string{"schnell", "très"},
				Verbs:      []string{"läuft", "🦊"},
				Nouns:      []string{"straße", ""},
			},
		},
		{
			name: "large lists need multi-byte counts",
			dict: &dictionary.Dictionary{
				Adjectives: large,
				Adverbs:    []string{"gently"},
				Verbs:      large[:300],
				Nouns:      []string{string(make([]byte, 200))},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			data, err := tt.dict.MarshalBinary()
			require.NoError(t, err)

			decoded, err := dictionary.Decode(data)
			require.NoError(t, err)
			assert.Equal(t, tt.dict, decoded)

			var viaUnmarshal dictionary.Dictionary
			require.NoError(t, viaUnmarshal.UnmarshalBinary(data))
			assert.Equal(t, *tt.dict, viaUnmarshal)
		})
	}
}

func TestMarshalBinary_Layout(t *testing.T) {
	t.Parallel()

	d := &dictionary.Dictionary{
		Adjectives: []string{"red"},
		Adverbs:    []string{"now"},
		Verbs:      []string{"go", "run"},
		Nouns:      []string{"owl"},
	}
	data, err := d.MarshalBinary()
	require.NoError(t, err)

	want := []byte("FLDX\x01" +
		"\x01\x03red" +
		"\x01\x03now" +
		"\x02\x02go\x03run" +
		"\x01\x03owl")
	assert.Equal(t, want, data)
}

func TestMarshalBinary_RejectsEmptyCategory(t *testing.T) {
	t.Parallel()

	d := &dictionary.Dictionary{
		Adjectives: []string{"red"},
		Adverbs:    []string{"now"},
		Verbs:      nil,
		Nouns:      []string{"owl"},
	}
	_, err := d.MarshalBinary()
	require.ErrorIs(t, err, dictionary.ErrEmptyCategory)
	assert.Contains(t, err.Error(), "verb")
}

func TestDecode_Corrupt(t *testing.T) {
	t.Parallel()

	valid, err := (&dictionary.Dictionary{
		Adjectives: []string{"red"},
		Adverbs:    []string{"now"},
		Verbs:      []string{"run"},
		Nouns:      []string{"owl"},
	}).MarshalBinary()
	require.NoError(t, err)

	withVersion := func(v byte) []byte {
		b := append([]byte(nil), valid...)
		b[4] = v
		return b
	}
	emptyNouns := append([]byte(nil), valid[:len(valid)-5]...)
	emptyNouns = append(emptyNouns, 0x00)

	hugeCount := []byte("FLDX\x01")
	hugeCount = binary.AppendUvarint(hugeCount, 1<<40)

	tests := []struct {
		name string
		data []byte
		is   error
	}{
		{name: "empty input", data: nil},
		{name: "bad magic", data: append([]byte("JUNK"), valid[4:]...)},
		{name: "unsupported version", data: withVersion(2), is: dictionary.ErrUnsupportedVersion},
		{name: "truncated", data: valid[:len(valid)-2]},
		{name: "header only", data: valid[:5]},
		{name: "trailing bytes", data: append(append([]byte(nil), valid...), 0x00)},
		{name: "count exceeds data", data: hugeCount},
		{name: "malformed varint", data: []byte("FLDX\x01\xff\xff")},
		{name: "invalid utf-8", data: []byte("FLDX\x01\x01\x02\xff\xfe\x01\x01a\x01\x01a\x01\x01a")},
		{name: "empty category", data: emptyNouns, is: dictionary.ErrEmptyCategory},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			d, err := dictionary.Decode(tt.data)
			require.ErrorIs(t, err, dictionary.ErrCorruptDictionary)
			if tt.is != nil {
				assert.ErrorIs(t, err, tt.is)
			}
			assert.Nil(t, d)
		})
	}
}
