// Copyright (C) 2019-2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package sampler

import (
	"fmt"
	"testing"

	"github.com/ava-labs/splitrand/generator"
)

func BenchmarkSubset(b *testing.B) {
	sizes := []uint64{
		30,
		1_000,
		100_000,
	}
	for _, size := range sizes {
		for _, count := range []int{1, 5, 25} {
			b.Run(fmt.Sprintf("%d of %d", count, size), func(b *testing.B) {
				subsetBenchmark(b, size, count)
			})
		}
	}
}

func subsetBenchmark(b *testing.B, size uint64, count int) {
	sample, err := Subset[generator.SplitMix](size, count)
	if err != nil {
		b.Fatal(err)
	}

	g := generator.NewSplitMix(0)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, g = sample(g)
	}
}
