// Copyright (c) 2025-2026 The fips186 developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

/*
fips186 generates deterministic pseudorandom bit sequences with a
FIPS-186-style generator and evaluates them with a small battery of
statistical tests.

Usage:

	fips186 [OPTIONS]

With no options the command seeds a 160-bit generator from system entropy and
produces 1000 bits.  Use -o to persist the sequence as text, --binfile to
persist it packed into bytes, --runtests to evaluate the generated sequence,
or -i to evaluate a previously persisted sequence instead of generating one.
A fixed --seed makes the stream reproducible for testing.
*/
package main
