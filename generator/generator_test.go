// Copyright (C) 2019-2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package generator

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestStdGenGolden(t *testing.T) {
	require := require.New(t)

	g := NewStdGen(42)
	require.Equal(StdGen{s1: 43, s2: 1}, g)

	expected := []uint64{1679910, 620339110, 2104174556}
	for _, want := range expected {
		var got uint64
		got, g = g.Next()
		require.Equal(want, got)
	}
	require.Equal(StdGen{s1: 2060101257, s2: 2103410263}, g)
}

func TestSplitMixGolden(t *testing.T) {
	require := require.New(t)

	g := NewSplitMix(42)
	expected := []uint64{1275548033995301424, 10417309031967933079, 2112719111588962399}
	for _, want := range expected {
		var got uint64
		got, g = g.Next()
		require.Equal(want, got)
	}
}

func TestSplitMixGammaIsOdd(t *testing.T) {
	g := NewSplitMix(0)
	for i := 0; i < 100; i++ {
		left, right := g.Split()
		require.Equal(t, uint64(1), left.gamma&1)
		require.Equal(t, uint64(1), right.gamma&1)
		g = right
	}
}

func TestStdGenStaysInRange(t *testing.T) {
	require := require.New(t)

	lo, hi := StdGen{}.Range()
	for _, seed := range []uint64{0, 1, 42, StdGenMax, StdGenMax + 1, 1 << 63, ^uint64(0)} {
		g := NewStdGen(seed)
		for i := 0; i < 1000; i++ {
			var v uint64
			v, g = g.Next()
			require.GreaterOrEqual(v, lo)
			require.LessOrEqual(v, hi)
		}
	}
}

func TestStdGenSplitWraps(t *testing.T) {
	require := require.New(t)

	g := StdGen{s1: StdGenMax, s2: 1}
	left, right := g.Split()
	require.Equal(int64(1), left.s1)
	require.Equal(int64(stdModulus2-1), right.s2)
}

func TestStdGenString(t *testing.T) {
	require.Equal(t, "⟨43, 1⟩", NewStdGen(42).String())
}

func testDeterminism[G Generator[G]](t *testing.T, g G) {
	require := require.New(t)

	v1, next1 := g.Next()
	v2, next2 := g.Next()
	require.Equal(v1, v2)
	require.Equal(next1, next2)

	l1, r1 := g.Split()
	l2, r2 := g.Split()
	require.Equal(l1, l2)
	require.Equal(r1, r2)
}

func testSplitDiverges[G Generator[G]](t *testing.T, g G) {
	require := require.New(t)

	left, right := g.Split()
	var (
		same = 0
		l, r uint64
	)
	for i := 0; i < 100; i++ {
		l, left = left.Next()
		r, right = right.Next()
		if l == r {
			same++
		}
	}
	require.Less(same, 5)
}

func TestGenerators(t *testing.T) {
	tests := []struct {
		name string
		test func(t *testing.T)
	}{
		{
			name: "stdgen determinism",
			test: func(t *testing.T) { testDeterminism(t, NewStdGen(7)) },
		},
		{
			name: "splitmix determinism",
			test: func(t *testing.T) { testDeterminism(t, NewSplitMix(7)) },
		},
		{
			name: "xoshiro determinism",
			test: func(t *testing.T) { testDeterminism(t, NewXoshiro(7)) },
		},
		{
			name: "stdgen split diverges",
			test: func(t *testing.T) { testSplitDiverges(t, NewStdGen(7)) },
		},
		{
			name: "splitmix split diverges",
			test: func(t *testing.T) { testSplitDiverges(t, NewSplitMix(7)) },
		},
		{
			name: "xoshiro split diverges",
			test: func(t *testing.T) { testSplitDiverges(t, NewXoshiro(7)) },
		},
	}
	for _, test := range tests {
		t.Run(test.name, test.test)
	}
}

func TestXoshiroDoesNotAdvanceReceiver(t *testing.T) {
	require := require.New(t)

	g := NewXoshiro(99)
	before := g
	_, _ = g.Next()
	_, _ = g.Split()
	require.Equal(before, g)
}

func TestNewSeed(t *testing.T) {
	require := require.New(t)

	a, err := NewSeed()
	require.NoError(err)
	b, err := NewSeed()
	require.NoError(err)
	require.NotEqual(a, b)
}

func TestSeedFromPhrase(t *testing.T) {
	require := require.New(t)

	require.Equal(SeedFromPhrase("nightly"), SeedFromPhrase("nightly"))
	require.NotEqual(SeedFromPhrase("nightly"), SeedFromPhrase("nightly-2"))
	require.Zero(SeedFromPhrase(""))
}
