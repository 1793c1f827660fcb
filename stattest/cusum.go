// Copyright (c) 2025-2026 The fips186 developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package stattest

import (
	"fmt"
	"math"
)

const (
	// minExcursionState and maxExcursionState bound the inclusive range of
	// discrete states the centered partial-sum trajectory is partitioned
	// into.
	minExcursionState = -9
	maxExcursionState = 9

	// numExcursionStates is the number of tracked excursion states.
	numExcursionStates = maxExcursionState - minExcursionState + 1
)

// ExcursionState holds the per-state outcome of the cumulative sums test.
type ExcursionState struct {
	// State is the integer state in [minExcursionState, maxExcursionState].
	State int

	// Visits is the number of trajectory points that landed on the state.
	Visits int

	// Statistic is the normalized distance between the observed and
	// expected visit counts for the state.
	Statistic float64

	// Pass reports whether Statistic <= Threshold.
	Pass bool
}

// CumulativeSumsResult holds the outcome of the cumulative sums test.  It is
// created fresh by each invocation and never mutated.
type CumulativeSumsResult struct {
	// N is the sequence length.
	N int

	// States holds the per-state visit counts and statistics ordered from
	// the most negative to the most positive state.
	States []ExcursionState

	// Threshold is the significance threshold each state statistic was
	// compared against.
	Threshold float64

	// Pass reports whether every state statistic is within Threshold.
	Pass bool
}

// CumulativeSums runs the cumulative sums (random excursions) test against
// the provided bit sequence.  The bits are mapped to +/-1, the partial sums
// are centered by subtracting i/2, and the number of times the centered
// trajectory lands exactly on each integer state in [-9, 9] is compared
// against the expectation for a random walk.
//
// Sequences of fewer than 3 bits make the statistic undefined and are
// rejected with an error with a kind of ErrDegenerateSequence.
// ErrEmptySequence and ErrInvalidBit are returned for malformed input.
func CumulativeSums(bits string) (*CumulativeSumsResult, error) {
	if _, err := checkSequence(bits); err != nil {
		return nil, err
	}

	k := len(bits)
	l := k - 1
	if l <= 1 {
		str := fmt.Sprintf("sequence of %d bits is too short for the "+
			"excursion statistic", k)
		return nil, makeError(ErrDegenerateSequence, str)
	}

	// The centered partial sums S_i - i/2 are multiples of 1/2, so a
	// trajectory point is within 1/2 of an integer state exactly when it
	// equals that state.  Tracking 2*(S_i - i/2) = 2*S_i - i keeps the
	// walk in integer math: even values are on a state, odd values are
	// between states.
	var visits [numExcursionStates]int
	sum := 0
	for i := 0; i < k; i++ {
		if bits[i] == '1' {
			sum++
		} else {
			sum--
		}
		twiceCentered := 2*sum - (i + 1)
		if twiceCentered%2 != 0 {
			continue
		}
		j := twiceCentered / 2
		if j >= minExcursionState && j <= maxExcursionState {
			visits[j-minExcursionState]++
		}
	}

	expected := float64(k) / float64(l+1)
	denom := math.Sqrt(float64(k) * float64(l-1) / float64(l+1))
	states := make([]ExcursionState, 0, numExcursionStates)
	pass := true
	for j := minExcursionState; j <= maxExcursionState; j++ {
		observed := visits[j-minExcursionState]
		stat := math.Abs(float64(observed)-expected) / denom
		ok := stat <= Threshold
		if !ok {
			pass = false
		}
		states = append(states, ExcursionState{
			State:     j,
			Visits:    observed,
			Statistic: stat,
			Pass:      ok,
		})
	}

	return &CumulativeSumsResult{
		N:         k,
		States:    states,
		Threshold: Threshold,
		Pass:      pass,
	}, nil
}
