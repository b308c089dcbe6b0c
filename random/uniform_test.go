// Copyright (C) 2019-2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package random

import (
	"math"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/require"

	"github.com/ava-labs/splitrand/generator"
	"github.com/ava-labs/splitrand/generator/generatormock"
	"github.com/ava-labs/splitrand/utils/stats"
)

// significance is the level of the statistical acceptance tests. Samples are
// drawn from fixed seeds, so each test either always passes or always fails.
const significance = 0.0001

func TestUint64InclusiveScripted(t *testing.T) {
	tests := []struct {
		name     string
		lo, hi   uint64
		n        uint64
		outputs  []uint64
		expected uint64
	}{
		{
			name:     "zero width draws nothing",
			lo:       0,
			hi:       9,
			n:        0,
			expected: 0,
		},
		{
			name:     "single digit",
			lo:       0,
			hi:       9,
			n:        4,
			outputs:  []uint64{7},
			expected: 2,
		},
		{
			// 10 values reduced to 3 buckets: 9 is the only biased draw.
			name:     "biased digit is rejected",
			lo:       0,
			hi:       9,
			n:        2,
			outputs:  []uint64{9, 9, 4},
			expected: 1,
		},
		{
			name:     "offset native range",
			lo:       1,
			hi:       10,
			n:        2,
			outputs:  []uint64{10, 5},
			expected: 1,
		},
		{
			// 100 = 10^2 > 20 requires two digits; 99 >= 84 is rejected.
			name:     "multiple digits",
			lo:       0,
			hi:       9,
			n:        20,
			outputs:  []uint64{9, 9, 3, 7},
			expected: 37 % 21,
		},
		{
			name:     "full word mask",
			lo:       0,
			hi:       math.MaxUint64,
			n:        255,
			outputs:  []uint64{0x1234},
			expected: 0x34,
		},
		{
			name:     "full word wide range rejects",
			lo:       0,
			hi:       math.MaxUint64,
			n:        math.MaxUint64 - 1,
			outputs:  []uint64{math.MaxUint64, 17},
			expected: 17,
		},
		{
			name:     "full word rejects above the largest multiple",
			lo:       0,
			hi:       math.MaxUint64,
			n:        2,
			outputs:  []uint64{math.MaxInt64, 5},
			expected: 2,
		},
		{
			name:     "full word top bit is ignored",
			lo:       0,
			hi:       math.MaxUint64,
			n:        2,
			outputs:  []uint64{1<<63 | 4},
			expected: 1,
		},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			require := require.New(t)
			ctrl := gomock.NewController(t)

			g := generatormock.NewGenerator(ctrl)
			generatormock.Script(g, test.lo, test.hi, test.outputs...)

			v, _ := Uint64Inclusive[*generatormock.Generator](test.n).Run(g)
			require.Equal(test.expected, v)
		})
	}
}

func TestUint64InclusiveFullWidthNarrowGenerator(t *testing.T) {
	require := require.New(t)
	ctrl := gomock.NewController(t)

	// A native range of 2^32 values needs two digits to cover 2^64 values,
	// and no round is ever rejected.
	g := generatormock.NewGenerator(ctrl)
	generatormock.Script(g, 0, math.MaxUint32, 0xdeadbeef, 0xcafebabe)

	v, _ := Uint64Inclusive[*generatormock.Generator](math.MaxUint64).Run(g)
	require.Equal(uint64(0xdeadbeefcafebabe), v)
}

func TestUint64InclusivePanicsOnDegenerateGenerator(t *testing.T) {
	ctrl := gomock.NewController(t)

	g := generatormock.NewGenerator(ctrl)
	generatormock.Script(g, 5, 5)

	require.PanicsWithError(t, "generator range must contain at least two values: [5, 5]", func() {
		_, _ = Uint64Inclusive[*generatormock.Generator](3).Run(g)
	})
}

func TestUint64InclusiveStaysInRange(t *testing.T) {
	widths := []uint64{1, 2, 3, 6, 7, 10, 1000, 1 << 31, math.MaxInt32, math.MaxInt64, 1 << 63, math.MaxUint64 - 1, math.MaxUint64}
	for _, width := range widths {
		std := generator.NewStdGen(width)
		sm := generator.NewSplitMix(width)
		for i := 0; i < 200; i++ {
			var v uint64
			v, std = uint64Inclusive(std, width)
			require.LessOrEqual(t, v, width)
			v, sm = uint64Inclusive(sm, width)
			require.LessOrEqual(t, v, width)
		}
	}
}

func testUniformity[G generator.Generator[G]](t *testing.T, g G, n uint64, samples int) {
	require := require.New(t)

	counts := make([]uint64, n)
	r := Uint64Inclusive[G](n - 1)
	for i := 0; i < samples; i++ {
		var v uint64
		v, g = r.Run(g)
		counts[v]++
	}

	result, err := stats.Uniformity(counts, significance)
	require.NoError(err)
	require.True(result.Passed(), "chi-squared %f exceeds %f for n=%d", result.Statistic, result.Critical, n)
}

func TestUint64InclusiveUniformity(t *testing.T) {
	const samples = 100_000

	// None of these sizes divides a native range of 2^31-2 or 2^64 values.
	sizes := []uint64{3, 6, 7, 10, 100, 1000}
	for _, n := range sizes {
		testUniformity(t, generator.NewStdGen(n), n, samples)
		testUniformity(t, generator.NewSplitMix(n), n, samples)
		testUniformity(t, generator.NewXoshiro(n), n, samples)
	}
}

func TestUint64InclusiveUniformityAcrossSeeds(t *testing.T) {
	require := require.New(t)

	const (
		n     = 7
		seeds = 50_000
	)
	counts := make([]uint64, n)
	r := Uint64Inclusive[generator.SplitMix](n - 1)
	for seed := uint64(0); seed < seeds; seed++ {
		v, _ := r.Run(generator.NewSplitMix(seed))
		counts[v]++
	}

	result, err := stats.Uniformity(counts, significance)
	require.NoError(err)
	require.True(result.Passed(), "chi-squared %f exceeds %f", result.Statistic, result.Critical)
}
