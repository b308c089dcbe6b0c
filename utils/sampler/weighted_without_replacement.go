// Copyright (C) 2019-2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package sampler

import (
	"github.com/ava-labs/splitrand/generator"
	"github.com/ava-labs/splitrand/random"
)

// WeightedWithoutReplacement returns a computation sampling [count] weight
// units without replacement and reporting the index owning each of them.
// Note that the behavior is to sample the weight without replacement, not the
// indices. So duplicate indices can be returned.
func WeightedWithoutReplacement[G generator.Generator[G]](weights []uint64, count int) (random.Rand[G, []int], error) {
	cumulative, total, err := cumulativeWeights(weights)
	if err != nil {
		return nil, err
	}
	units, err := Subset[G](total, count)
	if err != nil {
		return nil, err
	}
	return random.Map(units, func(units []uint64) []int {
		indices := make([]int, len(units))
		for i, unit := range units {
			indices[i] = search(cumulative, unit)
		}
		return indices
	}), nil
}
