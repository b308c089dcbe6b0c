// Copyright (C) 2019-2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package random

import (
	"fmt"

	"golang.org/x/exp/constraints"

	"github.com/ava-labs/splitrand/generator"

	safemath "github.com/ava-labs/splitrand/utils/math"
)

var (
	_ Bounded[uint64] = Unsigned[uint64]{}
	_ Bounded[int64]  = Signed[int64]{}
)

// Unsigned is the domain of the unsigned integer type T.
type Unsigned[T constraints.Unsigned] struct{}

func (Unsigned[T]) Width(lo, hi T) (uint64, error) {
	width, err := safemath.Sub(hi, lo)
	if err != nil {
		return 0, fmt.Errorf("%w: %d > %d", ErrInvalidRange, lo, hi)
	}
	return uint64(width), nil
}

func (Unsigned[T]) Shift(lo T, k uint64) T {
	return lo + T(k)
}

func (Unsigned[T]) Bounds() (T, T) {
	return 0, safemath.MaxUint[T]()
}

// Signed is the domain of the signed integer type T.
//
// Offsets are computed in two's complement, which makes the width of every
// valid range, including ones straddling zero, fit into a uint64.
type Signed[T constraints.Signed] struct{}

func (Signed[T]) Width(lo, hi T) (uint64, error) {
	if lo > hi {
		return 0, fmt.Errorf("%w: %d > %d", ErrInvalidRange, lo, hi)
	}
	return uint64(int64(hi)) - uint64(int64(lo)), nil
}

func (Signed[T]) Shift(lo T, k uint64) T {
	return T(int64(uint64(int64(lo)) + k))
}

func (Signed[T]) Bounds() (T, T) {
	maximum := T(1)
	for maximum<<1 > 0 {
		maximum = maximum<<1 | 1
	}
	return -maximum - 1, maximum
}

// UintRange samples uniformly from [lo, hi].
func UintRange[G generator.Generator[G], T constraints.Unsigned](lo, hi T) (Rand[G, T], error) {
	return RandomRange[G](Unsigned[T]{}, lo, hi)
}

// Uint samples uniformly from every value of T.
func Uint[G generator.Generator[G], T constraints.Unsigned]() Rand[G, T] {
	return RandomValue[G, T](Unsigned[T]{})
}

// IntRange samples uniformly from [lo, hi].
func IntRange[G generator.Generator[G], T constraints.Signed](lo, hi T) (Rand[G, T], error) {
	return RandomRange[G](Signed[T]{}, lo, hi)
}

// Int samples uniformly from every value of T.
func Int[G generator.Generator[G], T constraints.Signed]() Rand[G, T] {
	return RandomValue[G, T](Signed[T]{})
}
