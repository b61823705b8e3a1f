package fluid

import (
	"crypto/rand"
	"encoding/binary"
	"fmt"
	"io"
	"math/big"
	"strings"

	"github.com/google/uuid"

	"github.com/dmitrymomot/fluid/pkg/dictionary"
)

// Separator joins the four words of a rendered fluid.
const Separator = "-"

// Mask constants, split into the high and low 64 bits of the 128-bit value.
// The AND clears bits in the nibble at bits 76-79 (inside the noun field) and
// bit 62 (inside the adverb field); the OR then sets bits 78 and 63.
const (
	andHi uint64 = 0xFFFFFFFFFFFF4FFF
	andLo uint64 = 0xBFFFFFFFFFFFFFFF
	orHi  uint64 = 0x0000000000004000
	orLo  uint64 = 0x8000000000000000
)

// Fluid is a 128-bit identifier rendered as four words:
// adjective-noun-adverb-verb. The zero value is a valid (unmasked) Fluid.
type Fluid struct {
	hi, lo uint64
}

// New returns a fresh random Fluid.
func New() Fluid {
	var b [16]byte
	// crypto/rand.Read never returns an error; it crashes the program instead.
	_, _ = rand.Read(b[:])
	return Mask(FromBytes(b))
}

// NewFromReader is like New but draws its 16 random bytes from r.
func NewFromReader(r io.Reader) (Fluid, error) {
	var b [16]byte
	if _, err := io.ReadFull(r, b[:]); err != nil {
		return Fluid{}, fmt.Errorf("%w: %w", ErrRandomSource, err)
	}
	return Mask(FromBytes(b)), nil
}

// Mask pins the two fixed nibbles of f and leaves every other bit untouched.
func Mask(f Fluid) Fluid {
	return Fluid{
		hi: f.hi&andHi | orHi,
		lo: f.lo&andLo | orLo,
	}
}

// FromBytes interprets b as a big-endian 128-bit value. No mask is applied.
func FromBytes(b [16]byte) Fluid {
	return Fluid{
		hi: binary.BigEndian.Uint64(b[:8]),
		lo: binary.BigEndian.Uint64(b[8:]),
	}
}

// FromFields assembles a Fluid from its four 32-bit fields. No mask is applied.
func FromFields(adjective, noun, adverb, verb uint32) Fluid {
	return Fluid{
		hi: uint64(adjective)<<32 | uint64(noun),
		lo: uint64(adverb)<<32 | uint64(verb),
	}
}

// Bytes returns the big-endian 128-bit value.
func (f Fluid) Bytes() [16]byte {
	var b [16]byte
	binary.BigEndian.PutUint64(b[:8], f.hi)
	binary.BigEndian.PutUint64(b[8:], f.lo)
	return b
}

// Fields returns the four word indices, most significant first.
func (f Fluid) Fields() (adjective, noun, adverb, verb uint32) {
	return uint32(f.hi >> 32), uint32(f.hi), uint32(f.lo >> 32), uint32(f.lo)
}

// Format renders f against d. It panics if d has an empty category: a loaded
// dictionary never does, so this is a programming error.
func (f Fluid) Format(d *dictionary.Dictionary) string {
	if err := d.Validate(); err != nil {
		panic(err)
	}

	adj, noun, adv, verb := f.Fields()
	words := [4]string{
		pick(d.Adjectives, adj),
		pick(d.Nouns, noun),
		pick(d.Adverbs, adv),
		pick(d.Verbs, verb),
	}
	return strings.Join(words[:], Separator)
}

// String renders f against the embedded dictionary.
func (f Fluid) String() string {
	return f.Format(Dictionary())
}

// GoString prints the raw value in decimal, e.g. fluid.Fluid("1234").
func (f Fluid) GoString() string {
	return fmt.Sprintf("fluid.Fluid(%q)", f.BigInt().String())
}

// BigInt returns the 128-bit value as an unsigned big integer.
func (f Fluid) BigInt() *big.Int {
	b := f.Bytes()
	return new(big.Int).SetBytes(b[:])
}

// UUID returns f as a UUID. Fluids produced by New are valid version 4 UUIDs.
func (f Fluid) UUID() uuid.UUID {
	return uuid.UUID(f.Bytes())
}

// FromUUID converts a random (version 4, RFC 4122 variant) UUID back into a Fluid.
func FromUUID(u uuid.UUID) (Fluid, error) {
	if u.Version() != 4 || u.Variant() != uuid.RFC4122 {
		return Fluid{}, fmt.Errorf("%w: version %d, variant %s", ErrNotRandomUUID, u.Version(), u.Variant())
	}
	return FromBytes(u), nil
}

// Generate returns the rendered form of a new random Fluid.
func Generate() string {
	return New().String()
}

func pick(words []string, field uint32) string {
	return words[uint64(field)%uint64(len(words))]
}
