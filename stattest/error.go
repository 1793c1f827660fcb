// Copyright (c) 2025-2026 The fips186 developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package stattest

// ErrorKind identifies a kind of error.
type ErrorKind string

// These constants are used to identify a specific ErrorKind.
const (
	// ErrEmptySequence indicates an empty sequence was provided to a test.
	ErrEmptySequence = ErrorKind("ErrEmptySequence")

	// ErrInvalidBit indicates a sequence contains a character other than
	// '0' or '1'.
	ErrInvalidBit = ErrorKind("ErrInvalidBit")

	// ErrDegenerateSequence indicates a sequence for which a required
	// statistic is undefined, such as an all-zero or all-one sequence for
	// the runs test or a sequence that is too short for the cumulative
	// sums test.  Callers may choose to treat this condition as an
	// inconclusive rather than failed test.
	ErrDegenerateSequence = ErrorKind("ErrDegenerateSequence")
)

// Error satisfies the error interface and prints human-readable errors.
func (e ErrorKind) Error() string {
	return string(e)
}

// Error identifies a statistical test error.  It has full support for
// errors.Is and errors.As, so the caller can ascertain the specific reason
// for the error by checking the underlying error.
type Error struct {
	Err         error
	Description string
}

// Error satisfies the error interface and prints human-readable errors.
func (e Error) Error() string {
	return e.Description
}

// Unwrap returns the underlying wrapped error.
func (e Error) Unwrap() error {
	return e.Err
}

// makeError creates an Error given a set of arguments.  The error kind must
// be one of the kinds provided by this package.
func makeError(kind ErrorKind, desc string) Error {
	return Error{Err: kind, Description: desc}
}
