// Copyright (C) 2019-2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package random

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ava-labs/splitrand/generator"
	"github.com/ava-labs/splitrand/utils/iterator"
	"github.com/ava-labs/splitrand/utils/stats"
)

// counted wraps [r] so that every evaluation increments [count].
func counted[G generator.Generator[G], T any](r Rand[G, T], count *int) Rand[G, T] {
	return func(g G) (T, G) {
		*count++
		return r(g)
	}
}

func TestStreamIsLazy(t *testing.T) {
	require := require.New(t)

	evaluated := 0
	r := counted(Next[generator.SplitMix](), &evaluated)

	stream, _ := Series(r).Run(generator.NewSplitMix(1))
	require.Zero(evaluated)

	values := iterator.Take[uint64](stream, 5)
	require.Len(values, 5)
	require.Equal(5, evaluated)
}

func TestStreamElementsFollowSplits(t *testing.T) {
	require := require.New(t)

	g := generator.NewStdGen(9)
	sub, rest := g.Split()

	expected := make([]uint64, 10)
	for i := range expected {
		branch, next := sub.Split()
		expected[i], _ = branch.Next()
		sub = next
	}

	stream, current := Series(Next[generator.StdGen]()).Run(g)
	require.Equal(rest, current)
	require.Equal(expected, iterator.Take[uint64](stream, 10))
}

func TestStreamReplaysFromSameState(t *testing.T) {
	require := require.New(t)

	series := RandomSeries[generator.SplitMix, int32](Signed[int32]{})
	g := generator.NewSplitMix(3)

	first, _ := series.Run(g)
	second, _ := series.Run(g)
	prefix := iterator.Take[int32](first, 10)
	require.Equal(prefix, iterator.Take[int32](second, 10))

	// Consuming moves the stream forward; nothing is replayed.
	require.NotEqual(prefix, iterator.Take[int32](first, 10))
}

func TestStreamRelease(t *testing.T) {
	require := require.New(t)

	stream, _ := Series(Bool[generator.Xoshiro]()).Run(generator.NewXoshiro(0))
	require.True(stream.Next())
	stream.Release()
	require.False(stream.Next())
}

func TestRandomSeriesRange(t *testing.T) {
	require := require.New(t)

	series, err := RandomSeriesRange[generator.StdGen](Unsigned[uint8]{}, uint8(3), uint8(9))
	require.NoError(err)

	stream, _ := series.Run(generator.NewStdGen(4))
	for _, v := range iterator.Take[uint8](stream, 1000) {
		require.GreaterOrEqual(v, uint8(3))
		require.LessOrEqual(v, uint8(9))
	}

	_, err = RandomSeriesRange[generator.StdGen](Unsigned[uint8]{}, uint8(9), uint8(3))
	require.ErrorIs(err, ErrInvalidRange)
}

func sampleBranch[G generator.Generator[G]](g G, n int) []float64 {
	r := Uint64Inclusive[G](999)
	samples := make([]float64, n)
	for i := range samples {
		var v uint64
		v, g = r.Run(g)
		samples[i] = float64(v)
	}
	return samples
}

func testSplitIndependence[G generator.Generator[G]](t *testing.T, g G) {
	require := require.New(t)

	left, right := g.Split()
	c, err := stats.Correlation(sampleBranch(left, 10_000), sampleBranch(right, 10_000))
	require.NoError(err)
	require.Less(c, 0.05)
	require.Greater(c, -0.05)
}

func TestSplitIndependence(t *testing.T) {
	t.Run("stdgen", func(t *testing.T) { testSplitIndependence(t, generator.NewStdGen(42)) })
	t.Run("splitmix", func(t *testing.T) { testSplitIndependence(t, generator.NewSplitMix(42)) })
	t.Run("xoshiro", func(t *testing.T) { testSplitIndependence(t, generator.NewXoshiro(42)) })
}

func TestStreamNeighboursAreIndependent(t *testing.T) {
	require := require.New(t)

	series, err := RandomSeriesRange[generator.SplitMix](Unsigned[uint16]{}, uint16(0), uint16(999))
	require.NoError(err)
	stream, _ := series.Run(generator.NewSplitMix(5))

	values := iterator.Take[uint16](stream, 10_001)
	x := make([]float64, len(values)-1)
	y := make([]float64, len(values)-1)
	for i := range x {
		x[i] = float64(values[i])
		y[i] = float64(values[i+1])
	}

	c, err := stats.Correlation(x, y)
	require.NoError(err)
	require.Less(c, 0.05)
	require.Greater(c, -0.05)
}
