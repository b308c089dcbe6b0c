// Copyright (C) 2019-2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package random

import (
	"fmt"

	"github.com/ava-labs/splitrand/generator"
)

var _ Bounded[bool] = Bools{}

// Bools is the domain of booleans, ordered false < true.
type Bools struct{}

func (Bools) Width(lo, hi bool) (uint64, error) {
	if lo && !hi {
		return 0, fmt.Errorf("%w: true > false", ErrInvalidRange)
	}
	return boolToUint(hi) - boolToUint(lo), nil
}

func (Bools) Shift(lo bool, k uint64) bool {
	return boolToUint(lo)+k == 1
}

func (Bools) Bounds() (bool, bool) {
	return false, true
}

// Bool samples true and false with equal probability.
func Bool[G generator.Generator[G]]() Rand[G, bool] {
	return RandomValue[G, bool](Bools{})
}

// BoolRange samples uniformly from [lo, hi].
func BoolRange[G generator.Generator[G]](lo, hi bool) (Rand[G, bool], error) {
	return RandomRange[G](Bools{}, lo, hi)
}

func boolToUint(b bool) uint64 {
	if b {
		return 1
	}
	return 0
}
