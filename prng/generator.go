// Copyright (c) 2025-2026 The fips186 developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package prng

import (
	"encoding/hex"
	"fmt"
	"io"
	"math/big"
	"strings"

	"github.com/decred/dcrd/crypto/rand"
	"github.com/jrick/bitset"
)

const (
	// MinSeedBits is the minimum supported accumulator size in bits.
	MinSeedBits = 160

	// MaxSeedBits is the maximum supported accumulator size in bits.
	MaxSeedBits = 512

	// WordSize is the auxiliary word length in bytes.
	WordSize = 20

	// stepBits is the number of keystream bits contributed per generator
	// step.
	stepBits = 8 * Size
)

// bigOne is 1 represented as a big.Int.  It is defined here to avoid the
// overhead of creating it multiple times.
var bigOne = big.NewInt(1)

// Generator is a deterministic pseudorandom bit generator.  Each instance
// owns its accumulator state exclusively and is NOT safe for concurrent
// access without external synchronization.
//
// The per-step mixing registers are fixed to the standard round-0 vector, so
// the auxiliary word parameter does not perturb the keystream.  The word is
// still validated and retained for callers that need to recover it.
type Generator struct {
	seedBits int
	auxWord  [WordSize]byte
	modulus  *big.Int
	z        *big.Int
	prev     *big.Int
	zbuf     []byte
}

// ParseAuxWord parses hexadecimal text, ignoring any whitespace, into a
// 160-bit auxiliary word.
//
// An error with a kind of ErrInvalidAuxWord is returned when the text does
// not parse as hexadecimal or does not decode to exactly WordSize bytes.
func ParseAuxWord(auxWordHex string) ([WordSize]byte, error) {
	var word [WordSize]byte
	clean := strings.Join(strings.Fields(auxWordHex), "")
	decoded, err := hex.DecodeString(clean)
	if err != nil {
		str := fmt.Sprintf("auxiliary word %q is not valid hexadecimal "+
			"text: %v", auxWordHex, err)
		return word, makeError(ErrInvalidAuxWord, str)
	}
	if len(decoded) != WordSize {
		str := fmt.Sprintf("auxiliary word decodes to %d bytes -- "+
			"expected %d bytes", len(decoded), WordSize)
		return word, makeError(ErrInvalidAuxWord, str)
	}
	copy(word[:], decoded)
	return word, nil
}

// NewGenerator returns a generator with a seedBits-bit accumulator seeded
// from the provided entropy reader.
//
// When entropy is nil, a cryptographically secure system source is used and
// the resulting stream is unpredictable.  Supplying a fixed reader produces
// a fully deterministic stream, which is only appropriate for testing.
//
// The returned errors have a kind of ErrInvalidSeedBits when seedBits is
// outside of [MinSeedBits, MaxSeedBits], ErrInvalidAuxWord when the
// auxiliary word is malformed, and ErrEntropyFailure when the entropy reader
// fails to provide enough bytes.
func NewGenerator(seedBits int, auxWordHex string, entropy io.Reader) (*Generator, error) {
	if seedBits < MinSeedBits || seedBits > MaxSeedBits {
		str := fmt.Sprintf("seed size of %d bits is not in the required "+
			"range [%d, %d]", seedBits, MinSeedBits, MaxSeedBits)
		return nil, makeError(ErrInvalidSeedBits, str)
	}
	auxWord, err := ParseAuxWord(auxWordHex)
	if err != nil {
		return nil, err
	}
	if entropy == nil {
		entropy = rand.Reader()
	}

	// Draw a uniformly random seedBits-bit value by reading whole bytes
	// and masking the excess leading bits.
	seed := make([]byte, (seedBits+7)/8)
	if _, err := io.ReadFull(entropy, seed); err != nil {
		str := fmt.Sprintf("failed to read %d seed bytes: %v", len(seed),
			err)
		return nil, makeError(ErrEntropyFailure, str)
	}
	if rem := uint(seedBits % 8); rem != 0 {
		seed[0] &= 0xff >> (8 - rem)
	}

	g := &Generator{
		seedBits: seedBits,
		auxWord:  auxWord,
		modulus:  new(big.Int),
		z:        new(big.Int).SetBytes(seed),
		prev:     new(big.Int),
		zbuf:     make([]byte, (seedBits+7)/8),
	}
	g.modulus.Lsh(bigOne, uint(seedBits))
	g.modulus.Sub(g.modulus, bigOne)
	log.Debugf("Seeded generator with a %d bit accumulator", seedBits)
	return g, nil
}

// SeedBits returns the accumulator size in bits.
func (g *Generator) SeedBits() int {
	return g.seedBits
}

// AuxWord returns the auxiliary word the generator was constructed with.
func (g *Generator) AuxWord() [WordSize]byte {
	return g.auxWord
}

// Generate returns a pseudorandom bit string of exactly count characters
// over the alphabet {'0','1'}, MSB first per 160-bit block.
//
// Generation continues from the current accumulator state, so consecutive
// calls extend a single keystream.  A fresh generator must be constructed
// for an independent stream.
//
// Panics if count <= 0.
func (g *Generator) Generate(count int) string {
	if count <= 0 {
		panic("prng: invalid bit count for Generate")
	}

	steps := (count + stepBits - 1) / stepBits
	buf := make([]byte, 0, steps*stepBits)
	for len(buf) < count {
		// Reduce the accumulator and fold its fixed-width big-endian
		// serialization through the compression function.
		g.z.Mod(g.z, g.modulus)
		g.z.FillBytes(g.zbuf)

		// The serialized accumulator is at most 64 bytes for every
		// supported seed size, so this cannot fail.
		digest, _ := Compress(g.zbuf)

		// z = (1 + z + prev) mod modulus, where prev is the previous
		// digest interpreted as an integer.
		g.z.Add(g.z, bigOne)
		g.z.Add(g.z, g.prev)
		g.z.Mod(g.z, g.modulus)
		g.prev.SetBytes(digest[:])

		buf = appendBits(buf, digest[:])
	}
	log.Tracef("Generated %d keystream bits over %d steps", count, steps)
	return string(buf[:count])
}

// appendBits appends the MSB-first binary expansion of each byte of b to buf
// as '0' and '1' characters and returns the extended buffer.
func appendBits(buf []byte, b []byte) []byte {
	for _, v := range b {
		for i := 7; i >= 0; i-- {
			buf = append(buf, '0'+(v>>uint(i))&1)
		}
	}
	return buf
}

// PackBits packs a bit string over the alphabet {'0','1'} into bytes, where
// bit i of the sequence maps to bit i%8 of byte i/8.  The final byte is zero
// padded when the sequence length is not a multiple of 8.
//
// An error with a kind of ErrInvalidBit is returned when the sequence
// contains any other character.
func PackBits(bits string) ([]byte, error) {
	set := bitset.NewBytes(len(bits))
	for i := 0; i < len(bits); i++ {
		switch bits[i] {
		case '1':
			set.Set(i)
		case '0':
		default:
			str := fmt.Sprintf("sequence contains %q at offset %d -- "+
				"expected '0' or '1'", bits[i], i)
			return nil, makeError(ErrInvalidBit, str)
		}
	}
	return set, nil
}
