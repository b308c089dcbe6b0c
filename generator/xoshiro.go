// Copyright (C) 2019-2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package generator

import (
	"math"

	"gonum.org/v1/gonum/mathext/prng"
)

var _ Generator[Xoshiro] = Xoshiro{}

// Xoshiro adapts gonum's xoshiro256** source to the Generator contract.
//
// The source is held by value and copied before every draw, so the receiver
// is never advanced.
type Xoshiro struct {
	source prng.Xoshiro256starstar
}

// NewXoshiro seeds the underlying source with [seed].
func NewXoshiro(seed uint64) Xoshiro {
	return Xoshiro{source: *prng.NewXoshiro256starstar(seed)}
}

func (g Xoshiro) Next() (uint64, Xoshiro) {
	source := g.source
	v := source.Uint64()
	return v, Xoshiro{source: source}
}

// Split reseeds two children from the next two outputs. gonum expands each
// seed through SplitMix64, so the children do not share state words.
func (g Xoshiro) Split() (Xoshiro, Xoshiro) {
	left, next := g.Next()
	right, _ := next.Next()
	return NewXoshiro(left), NewXoshiro(right)
}

func (Xoshiro) Range() (uint64, uint64) {
	return 0, math.MaxUint64
}
