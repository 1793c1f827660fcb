// Copyright (c) 2025-2026 The fips186 developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package stattest implements a small battery of statistical randomness
// tests over bit sequences represented as strings of '0' and '1'
// characters.
//
// Each test is a stateless pure function that consumes a finished sequence
// and produces an immutable result value holding the computed statistics
// and a pass/fail verdict.  The tests are meant to sanity check generated
// keystreams, not to detect subtle biases; use an extensive suite such as
// NIST SP 800-22 or TestU01 for that.
package stattest

import "fmt"

// Threshold is the fixed significance threshold applied by every test in
// this package, including each individual excursion state of the
// cumulative sums test.  The same value is deliberately shared so results
// remain comparable across tests.
const Threshold = 1.82138636

// checkSequence validates that bits is a non-empty string over the alphabet
// {'0','1'} and returns the number of '1' characters it contains.
func checkSequence(bits string) (int, error) {
	if len(bits) == 0 {
		return 0, makeError(ErrEmptySequence, "sequence is empty")
	}
	var ones int
	for i := 0; i < len(bits); i++ {
		switch bits[i] {
		case '1':
			ones++
		case '0':
		default:
			str := fmt.Sprintf("sequence contains %q at offset %d -- "+
				"expected '0' or '1'", bits[i], i)
			return 0, makeError(ErrInvalidBit, str)
		}
	}
	return ones, nil
}
