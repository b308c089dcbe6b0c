// Copyright (C) 2019-2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package generator defines the minimal capability a pseudo-random generator
// must provide to be driven by the random package, along with a few concrete
// generators.
//
// Generators are values. Calling Next or Split never modifies the receiver;
// the successor states are returned instead. Reusing a state that has already
// been advanced replays the same outputs.
package generator

// Generator is implemented by every generator state type G.
type Generator[G any] interface {
	// Next returns a value in the inclusive range reported by Range along with
	// the successor state.
	Next() (uint64, G)

	// Split returns two successor states whose outputs are independent for
	// general purpose sampling.
	Split() (G, G)

	// Range returns the inclusive bounds of the values produced by Next. The
	// bounds must satisfy lo < hi.
	Range() (lo uint64, hi uint64)
}
