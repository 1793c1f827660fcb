// Copyright (c) 2025-2026 The fips186 developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package prng

import (
	"bytes"
	"encoding/hex"
	"errors"
	"testing"
)

// hexToBytes converts the passed hex string into bytes and will panic if
// there is an error.  This is only provided for the hard-coded constants so
// errors in the source code can be detected.  It will only (and must only)
// be called with hard-coded values.
func hexToBytes(s string) []byte {
	b, err := hex.DecodeString(s)
	if err != nil {
		panic("invalid hex in source file: " + s)
	}
	return b
}

// TestCompressVectors ensures the compression function produces the expected
// digests for blocks of various lengths.
func TestCompressVectors(t *testing.T) {
	tests := []struct {
		name  string // test description
		block []byte // input block
		want  string // expected digest hex
	}{{
		name:  "empty block",
		block: nil,
		want:  "0568191e75349123f6ee1055e3500dc021ee4ded",
	}, {
		name:  "short ascii block",
		block: []byte("abc"),
		want:  "0128339af5f02f6e943e780959909014831821c2",
	}, {
		name:  "accumulator-sized block of 0xff",
		block: bytes.Repeat([]byte{0xff}, 20),
		want:  "d058670e9bdea9aa64af7f8a746a43d5085d1f1a",
	}, {
		name:  "full 64 byte block",
		block: hexToBytes("000102030405060708090a0b0c0d0e0f" +
			"101112131415161718191a1b1c1d1e1f" +
			"202122232425262728292a2b2c2d2e2f" +
			"303132333435363738393a3b3c3d3e3f"),
		want: "8da6d90754fbefc132ad682cef2906c1bd4679db",
	}}

	for _, test := range tests {
		digest, err := Compress(test.block)
		if err != nil {
			t.Errorf("%q: unexpected error: %v", test.name, err)
			continue
		}
		if got := hex.EncodeToString(digest[:]); got != test.want {
			t.Errorf("%q: unexpected digest -- got %s, want %s", test.name,
				got, test.want)
		}
	}
}

// TestCompressPaddingEquivalence ensures a short block produces the same
// digest as the same block explicitly zero padded to the full frame.
func TestCompressPaddingEquivalence(t *testing.T) {
	short := []byte("padding equivalence")
	padded := make([]byte, BlockSize)
	copy(padded, short)

	shortDigest, err := Compress(short)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	paddedDigest, err := Compress(padded)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if shortDigest != paddedDigest {
		t.Fatalf("padded digest mismatch -- got %x, want %x", paddedDigest,
			shortDigest)
	}
}

// TestCompressDeterminism ensures identical inputs always produce identical
// digests while a single flipped input bit produces a different digest.
func TestCompressDeterminism(t *testing.T) {
	block := hexToBytes("67452301efcdab8998badcfe10325476c3d2e1f0")
	first, err := Compress(block)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second, err := Compress(block)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if first != second {
		t.Fatalf("identical inputs produced different digests -- %x vs %x",
			first, second)
	}

	block[0] ^= 0x01
	flipped, err := Compress(block)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if flipped == first {
		t.Fatal("flipping an input bit did not change the digest")
	}
}

// TestCompressBlockTooLong ensures blocks that exceed the fixed frame are
// rejected with the expected error kind.
func TestCompressBlockTooLong(t *testing.T) {
	block := make([]byte, BlockSize+1)
	_, err := Compress(block)
	if !errors.Is(err, ErrBlockTooLong) {
		t.Fatalf("unexpected error -- got %v, want %v", err, ErrBlockTooLong)
	}
}
