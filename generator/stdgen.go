// Copyright (C) 2019-2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package generator

import "fmt"

const (
	stdModulus1 = 2147483563
	stdModulus2 = 2147483399

	// StdGenMin and StdGenMax bound the values returned by StdGen.Next.
	StdGenMin = 1
	StdGenMax = stdModulus1 - 1
)

var _ Generator[StdGen] = StdGen{}

// StdGen is L'Ecuyer's combined multiplicative linear congruential generator.
//
// Its native range is [StdGenMin, StdGenMax], whose size is not a power of two.
type StdGen struct {
	s1 int64
	s2 int64
}

// NewStdGen splits [seed] into the two component states.
func NewStdGen(seed uint64) StdGen {
	q := seed / StdGenMax
	return StdGen{
		s1: int64(seed%StdGenMax) + 1,
		s2: int64(q%(stdModulus2-1)) + 1,
	}
}

func (g StdGen) Next() (uint64, StdGen) {
	k := g.s1 / 53668
	s1 := 40014*(g.s1-k*53668) - k*12211
	if s1 < 0 {
		s1 += stdModulus1
	}

	k = g.s2 / 52774
	s2 := 40692*(g.s2-k*52774) - k*3791
	if s2 < 0 {
		s2 += stdModulus2
	}

	z := s1 - s2
	if z < 1 {
		z += StdGenMax
	}
	return uint64(z), StdGen{s1: s1, s2: s2}
}

func (g StdGen) Split() (StdGen, StdGen) {
	s1 := g.s1 + 1
	if g.s1 == StdGenMax {
		s1 = 1
	}
	s2 := g.s2 - 1
	if g.s2 == 1 {
		s2 = stdModulus2 - 1
	}

	_, next := g.Next()
	return StdGen{s1: s1, s2: next.s2}, StdGen{s1: next.s1, s2: s2}
}

func (StdGen) Range() (uint64, uint64) {
	return StdGenMin, StdGenMax
}

func (g StdGen) String() string {
	return fmt.Sprintf("⟨%d, %d⟩", g.s1, g.s2)
}
