// Copyright (c) 2025-2026 The fips186 developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package stattest

// keystream320 is a 320-bit sequence produced by the companion generator
// package from a fixed seed.  It is shared across the tests so each result
// can be pinned against independently computed statistics.
const keystream320 = "0111100000100010001000001000011011110011000111101001" +
	"0101001101010001010110011000110010011100100001101001111110011100" +
	"0000101101011010100011101001010011111111100000110110000100010110" +
	"0100001111111110001110010011101000010001101111101000010000000101" +
	"1001011011010001100011110100100010100001111000011010010001011110" +
	"001111110010"
