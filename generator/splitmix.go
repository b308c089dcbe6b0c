// Copyright (C) 2019-2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package generator

import (
	"math"
	"math/bits"
)

const goldenGamma = 0x9e3779b97f4a7c15

var _ Generator[SplitMix] = SplitMix{}

// SplitMix is the splittable SplitMix64 generator of Steele, Lea and Flood.
//
// Every output is a 64 bit value. The gamma is always odd.
type SplitMix struct {
	seed  uint64
	gamma uint64
}

// NewSplitMix derives the initial seed and gamma from [seed].
func NewSplitMix(seed uint64) SplitMix {
	return SplitMix{
		seed:  mix64(seed),
		gamma: mixGamma(seed + goldenGamma),
	}
}

func (g SplitMix) Next() (uint64, SplitMix) {
	seed := g.seed + g.gamma
	return mix64(seed), SplitMix{seed: seed, gamma: g.gamma}
}

func (g SplitMix) Split() (SplitMix, SplitMix) {
	seed := g.seed + g.gamma
	nextSeed := seed + g.gamma
	return SplitMix{seed: nextSeed, gamma: g.gamma},
		SplitMix{seed: mix64(seed), gamma: mixGamma(nextSeed)}
}

func (SplitMix) Range() (uint64, uint64) {
	return 0, math.MaxUint64
}

func mix64(z uint64) uint64 {
	z = (z ^ (z >> 33)) * 0xff51afd7ed558ccd
	z = (z ^ (z >> 33)) * 0xc4ceb9fe1a85ec53
	return z ^ (z >> 33)
}

func mix64Variant13(z uint64) uint64 {
	z = (z ^ (z >> 30)) * 0xbf58476d1ce4e5b9
	z = (z ^ (z >> 27)) * 0x94d049bb133111eb
	return z ^ (z >> 31)
}

// mixGamma returns an odd gamma with enough bit transitions to avoid weak
// sequences.
func mixGamma(z uint64) uint64 {
	z = mix64Variant13(z) | 1
	if bits.OnesCount64(z^(z>>1)) < 24 {
		return z ^ 0xaaaaaaaaaaaaaaaa
	}
	return z
}
