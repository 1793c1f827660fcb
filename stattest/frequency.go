// Copyright (c) 2025-2026 The fips186 developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package stattest

import "math"

// FrequencyResult holds the outcome of the frequency test.  It is created
// fresh by each invocation and never mutated.
type FrequencyResult struct {
	// N is the sequence length.
	N int

	// Sum is the signed sum obtained by mapping each '1' to +1 and each
	// '0' to -1.
	Sum int

	// Statistic is |Sum| / sqrt(N).
	Statistic float64

	// Threshold is the significance threshold the statistic was compared
	// against.
	Threshold float64

	// Pass reports whether Statistic <= Threshold.
	Pass bool
}

// Frequency runs the frequency (monobit) test against the provided bit
// sequence.  The test passes when the proportion of ones and zeros is close
// enough to balanced for the sequence length.
//
// An error with a kind of ErrEmptySequence or ErrInvalidBit is returned for
// malformed input.
func Frequency(bits string) (*FrequencyResult, error) {
	ones, err := checkSequence(bits)
	if err != nil {
		return nil, err
	}

	n := len(bits)
	sum := 2*ones - n
	stat := math.Abs(float64(sum)) / math.Sqrt(float64(n))
	return &FrequencyResult{
		N:         n,
		Sum:       sum,
		Statistic: stat,
		Threshold: Threshold,
		Pass:      stat <= Threshold,
	}, nil
}
