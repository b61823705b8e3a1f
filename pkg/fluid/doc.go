// Package fluid generates short, memorable identifiers rendered as four words.
//
// A Fluid is a 128-bit random value. Its four 32-bit fields, most significant
// first, index the adjective, noun, adverb and verb lists of the embedded
// dictionary (modulo the list length), producing phrases like
// "quick-fox-slowly-jumps".
//
// # Usage
//
//	id := fluid.New()
//	fmt.Println(id)          // "brave-otter-gently-sings"
//	fmt.Printf("%#v\n", id)  // fluid.Fluid("2130...")
//
//	name := fluid.Generate() // shorthand for fluid.New().String()
//
// # Bit layout
//
// Before the fields are extracted the random value is masked: the nibble at
// bits 76-79 (inside the noun field) is pinned to 0x4 and the nibble at bits
// 60-63 (the top of the adverb field) is restricted to 0x8-0xB. The result is
// laid out exactly like an RFC 4122 version 4 UUID, so a Fluid converts to and
// from uuid.UUID with UUID and FromUUID for storage.
//
// # Dictionary
//
// The dictionary is compiled offline by "fluid build" (see the dictionary
// package) into dict.bin and embedded in the binary. It is decoded once, on
// first use, and shared read-only afterwards. Call LoadDictionary at startup to
// turn a corrupt resource into an error; Dictionary and String panic instead.
//
// The collision space is the product of the four list sizes; see
// dictionary.Dictionary.UniqueCombinations. Fluids carry no coordination,
// clock or node identity: uniqueness is probabilistic only.
package fluid
