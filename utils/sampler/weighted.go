// Copyright (C) 2019-2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package sampler

import (
	"fmt"
	"sort"

	"github.com/ava-labs/splitrand/generator"
	"github.com/ava-labs/splitrand/random"

	safemath "github.com/ava-labs/splitrand/utils/math"
)

// Weighted returns a computation sampling an index of [weights] with
// probability proportional to its weight. Indices with zero weight are never
// sampled.
//
// Sampling is performed by drawing a weight unit uniformly and binary
// searching the cumulative weights.
//
// Initialization takes O(n) time and space. Sampling takes O(log(n)) time.
func Weighted[G generator.Generator[G]](weights []uint64) (random.Rand[G, int], error) {
	cumulative, total, err := cumulativeWeights(weights)
	if err != nil {
		return nil, err
	}
	return random.Map(random.Uint64Inclusive[G](total-1), func(unit uint64) int {
		return search(cumulative, unit)
	}), nil
}

func cumulativeWeights(weights []uint64) ([]uint64, uint64, error) {
	cumulative := make([]uint64, len(weights))
	total := uint64(0)
	for i, weight := range weights {
		newTotal, err := safemath.Add64(total, weight)
		if err != nil {
			return nil, 0, err
		}
		total = newTotal
		cumulative[i] = total
	}
	if total == 0 {
		return nil, 0, fmt.Errorf("%w: total weight is zero", ErrOutOfRange)
	}
	return cumulative, total, nil
}

// search returns the index owning weight unit [unit].
func search(cumulative []uint64, unit uint64) int {
	return sort.Search(len(cumulative), func(i int) bool {
		return unit < cumulative[i]
	})
}
