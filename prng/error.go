// Copyright (c) 2025-2026 The fips186 developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package prng

// ErrorKind identifies a kind of error.
type ErrorKind string

// These constants are used to identify a specific ErrorKind.
const (
	// ErrInvalidSeedBits indicates the requested seed size is outside of
	// the supported range of [MinSeedBits, MaxSeedBits].
	ErrInvalidSeedBits = ErrorKind("ErrInvalidSeedBits")

	// ErrInvalidAuxWord indicates the provided auxiliary word is not valid
	// hexadecimal text that decodes to exactly WordSize bytes.
	ErrInvalidAuxWord = ErrorKind("ErrInvalidAuxWord")

	// ErrBlockTooLong indicates an input block provided to the compression
	// function exceeds the fixed BlockSize byte frame.
	ErrBlockTooLong = ErrorKind("ErrBlockTooLong")

	// ErrEntropyFailure indicates the entropy reader failed to provide
	// enough bytes to seed the accumulator.
	ErrEntropyFailure = ErrorKind("ErrEntropyFailure")

	// ErrInvalidBit indicates a sequence contains a character other than
	// '0' or '1'.
	ErrInvalidBit = ErrorKind("ErrInvalidBit")
)

// Error satisfies the error interface and prints human-readable errors.
func (e ErrorKind) Error() string {
	return string(e)
}

// Error identifies a generator-related error.  It has full support for
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
