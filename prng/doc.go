// Copyright (c) 2025-2026 The fips186 developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package prng implements a FIPS-186-style deterministic pseudorandom bit
// generator built on a single round of a SHA-1-derived compression function.
//
// The generator maintains a b-bit accumulator (160 <= b <= 512) that is
// folded through the compression function once per step, with each step
// contributing 160 keystream bits.  Seeding is performed through an
// injectable entropy reader so callers can obtain either unpredictable or
// fully reproducible streams.
//
// The output is NOT suitable for production key generation.  The generator
// exists as a reference rendition of the algorithm together with a sequence
// format consumable by the companion stattest package.
package prng
