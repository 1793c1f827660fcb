// Copyright (c) 2025-2026 The fips186 developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package prng

import "testing"

// BenchmarkCompress benchmarks the compression function over a full frame.
func BenchmarkCompress(b *testing.B) {
	block := make([]byte, BlockSize)
	for i := range block {
		block[i] = byte(i)
	}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = Compress(block)
	}
}

// BenchmarkGenerate benchmarks keystream production for a moderately sized
// request with the maximum accumulator size.
func BenchmarkGenerate(b *testing.B) {
	gen, err := NewGenerator(512, testAuxWord, testSeed(0, 64))
	if err != nil {
		b.Fatalf("unexpected error: %v", err)
	}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = gen.Generate(16000)
	}
}
