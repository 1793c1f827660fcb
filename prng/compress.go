// Copyright (c) 2025-2026 The fips186 developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package prng

import (
	"encoding/binary"
	"fmt"
	"math/bits"
)

const (
	// Size is the size of a compression function output in bytes.
	Size = 20

	// BlockSize is the fixed input frame of the compression function in
	// bytes.  Shorter inputs are zero padded on the right up to this size
	// and longer inputs are rejected.
	BlockSize = 64
)

// initVec is the round-0 register initialization vector.  The auxiliary word
// held by a generator nominally seeds these five registers, however the
// mixing intentionally uses this fixed vector so the keystream only depends
// on the accumulator.  See Generator for details.
var initVec = [5]uint32{0x67452301, 0xEFCDAB89, 0x98BADCFE, 0x10325476, 0xC3D2E1F0}

// roundK is the round constant applied to every mixing step.
const roundK = 0x5A827999

// Compress applies a single round of a SHA-1-style mixing schedule to the
// provided block and returns the resulting 160-bit digest.
//
// The block is zero padded on the right to BlockSize bytes, partitioned into
// sixteen big-endian 32-bit words, and folded through 16 mixing steps before
// the feed-forward addition of the initialization vector.  This is exactly
// one compression round, not a full hash, and it is only intended for use as
// a mixing primitive.
//
// The function is pure and deterministic.  An error with a kind of
// ErrBlockTooLong is returned if the block exceeds BlockSize bytes.
func Compress(block []byte) ([Size]byte, error) {
	var digest [Size]byte
	if len(block) > BlockSize {
		str := fmt.Sprintf("input block is %d bytes which exceeds the "+
			"%d byte frame", len(block), BlockSize)
		return digest, makeError(ErrBlockTooLong, str)
	}

	var m [BlockSize]byte
	copy(m[:], block)

	var w [16]uint32
	for i := range w {
		w[i] = binary.BigEndian.Uint32(m[i*4:])
	}

	a, b, c, d, e := initVec[0], initVec[1], initVec[2], initVec[3], initVec[4]
	for i := 0; i < 16; i++ {
		f := (b & c) | (^b & d)
		temp := bits.RotateLeft32(a, 5) + f + e + roundK + w[i]
		a, b, c, d, e = temp, a, bits.RotateLeft32(b, 30), c, d
	}

	binary.BigEndian.PutUint32(digest[0:4], initVec[0]+a)
	binary.BigEndian.PutUint32(digest[4:8], initVec[1]+b)
	binary.BigEndian.PutUint32(digest[8:12], initVec[2]+c)
	binary.BigEndian.PutUint32(digest[12:16], initVec[3]+d)
	binary.BigEndian.PutUint32(digest[16:20], initVec[4]+e)
	return digest, nil
}
