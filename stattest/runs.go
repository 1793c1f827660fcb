// Copyright (c) 2025-2026 The fips186 developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package stattest

import (
	"fmt"
	"math"
)

// RunsResult holds the outcome of the runs test.  It is created fresh by
// each invocation and never mutated.
type RunsResult struct {
	// N is the sequence length.
	N int

	// Proportion is the fraction of '1' characters in the sequence.
	Proportion float64

	// RunCount is the number of maximal runs of identical bits.
	RunCount int

	// ExpectedRuns is the run count expected for a random sequence with
	// the observed proportion, 2*N*Proportion*(1-Proportion).
	ExpectedRuns float64

	// Statistic is the normalized distance between the observed and
	// expected run counts.
	Statistic float64

	// Threshold is the significance threshold the statistic was compared
	// against.
	Threshold float64

	// Pass reports whether Statistic <= Threshold.
	Pass bool
}

// Runs counts the maximal runs of identical bits in the provided sequence
// and tests the count against the expectation for a random sequence with
// the same proportion of ones.
//
// An all-zero or all-one sequence makes the statistic undefined and is
// rejected with an error with a kind of ErrDegenerateSequence rather than
// dividing by zero.  ErrEmptySequence and ErrInvalidBit are returned for
// malformed input.
func Runs(bits string) (*RunsResult, error) {
	ones, err := checkSequence(bits)
	if err != nil {
		return nil, err
	}

	n := len(bits)
	if ones == 0 || ones == n {
		str := fmt.Sprintf("all %d bits are %q which makes the run "+
			"statistic undefined", n, bits[0])
		return nil, makeError(ErrDegenerateSequence, str)
	}

	pi := float64(ones) / float64(n)
	runs := 1
	for i := 1; i < n; i++ {
		if bits[i] != bits[i-1] {
			runs++
		}
	}

	expected := 2 * float64(n) * pi * (1 - pi)
	stat := math.Abs(float64(runs)-expected) /
		(2 * math.Sqrt(float64(n)*pi*(1-pi)))
	return &RunsResult{
		N:            n,
		Proportion:   pi,
		RunCount:     runs,
		ExpectedRuns: expected,
		Statistic:    stat,
		Threshold:    Threshold,
		Pass:         stat <= Threshold,
	}, nil
}
