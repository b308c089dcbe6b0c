// Copyright (C) 2019-2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package sampler

import (
	"errors"
	"fmt"

	"github.com/ava-labs/splitrand/generator"
	"github.com/ava-labs/splitrand/random"
)

var ErrOutOfRange = errors.New("out of range")

// Subset returns a computation sampling [count] distinct values from [0, n),
// in the order they were drawn.
func Subset[G generator.Generator[G]](n uint64, count int) (random.Rand[G, []uint64], error) {
	if count < 0 || uint64(count) > n {
		return nil, fmt.Errorf("%w: %d values from %d", ErrOutOfRange, count, n)
	}
	if count == 0 {
		return random.Pure[G]([]uint64{}), nil
	}
	return uniformResample(random.Uint64Inclusive[G](n-1), count), nil
}
