// Copyright (C) 2019-2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package sampler

import (
	"github.com/ava-labs/splitrand/generator"
	"github.com/ava-labs/splitrand/random"
)

// uniformResample allows for sampling over a uniform distribution without
// replacement.
//
// Sampling is performed by sampling with replacement and resampling if a
// duplicate is sampled.
//
// Sampling takes O(count) space. It takes O(count) expected draws while count
// is well below the size of the range, degrading towards O(n * log(n)) as
// count approaches n.
func uniformResample[G generator.Generator[G]](draw random.Rand[G, uint64], count int) random.Rand[G, []uint64] {
	return func(g G) ([]uint64, G) {
		drawn := make(map[uint64]struct{}, count)
		results := make([]uint64, 0, count)
		for len(results) < count {
			var v uint64
			v, g = draw(g)
			if _, ok := drawn[v]; ok {
				continue
			}
			drawn[v] = struct{}{}
			results = append(results, v)
		}
		return results, g
	}
}
