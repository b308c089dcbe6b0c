// Copyright (C) 2019-2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package random

import (
	"errors"
	"fmt"

	"github.com/ava-labs/splitrand/generator"
)

var (
	ErrInvalidRange   = errors.New("lower bound exceeds upper bound")
	ErrDomainMismatch = errors.New("value does not belong to the domain")
	ErrWidthOverflow  = errors.New("width overflows 64 bits")

	errPostcondition = errors.New("sample escaped its range")
)

// Domain maps a totally ordered type onto canonical unsigned offsets.
type Domain[T any] interface {
	// Width returns hi - lo as an offset from lo. It errors if lo > hi or if
	// either endpoint is not a member of the domain.
	Width(lo, hi T) (uint64, error)

	// Shift returns the value [k] steps above [lo]. [k] is never larger than a
	// width previously returned for [lo].
	Shift(lo T, k uint64) T
}

// Bounded is a Domain with a canonical full range.
type Bounded[T any] interface {
	Domain[T]

	// Bounds returns the smallest and largest values of the domain.
	Bounds() (T, T)
}

// RandomRange returns a computation sampling uniformly from [lo, hi].
//
// Invalid ranges are reported here, before any generator is involved.
func RandomRange[G generator.Generator[G], T any](d Domain[T], lo, hi T) (Rand[G, T], error) {
	width, err := d.Width(lo, hi)
	if err != nil {
		return nil, err
	}
	return shifted[G](d, lo, width), nil
}

// RandomValue returns a computation sampling uniformly from the full range of
// [d].
func RandomValue[G generator.Generator[G], T any](d Bounded[T]) Rand[G, T] {
	lo, hi := d.Bounds()
	r, err := RandomRange[G](d, lo, hi)
	if err != nil {
		panic(fmt.Errorf("invalid bounds for %T: %w", d, err))
	}
	return r
}

func shifted[G generator.Generator[G], T any](d Domain[T], lo T, width uint64) Rand[G, T] {
	return func(g G) (T, G) {
		k, g := uint64Inclusive(g, width)
		v := d.Shift(lo, k)
		if offset, err := d.Width(lo, v); err != nil || offset != k {
			panic(fmt.Errorf("%w: offset %d of width %d", errPostcondition, k, width))
		}
		return v, g
	}
}
