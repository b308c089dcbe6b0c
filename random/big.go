// Copyright (C) 2019-2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package random

import (
	"errors"
	"fmt"
	"math/big"

	"github.com/ava-labs/splitrand/generator"
)

var (
	ErrNegativeNat = errors.New("natural number is negative")

	bigOne = big.NewInt(1)
)

// NatRange samples uniformly from the naturals in [lo, hi]. The width of the
// range is unbounded.
func NatRange[G generator.Generator[G]](lo, hi *big.Int) (Rand[G, *big.Int], error) {
	if lo.Sign() < 0 {
		return nil, fmt.Errorf("%w: %s", ErrNegativeNat, lo)
	}
	if hi.Sign() < 0 {
		return nil, fmt.Errorf("%w: %s", ErrNegativeNat, hi)
	}
	return BigIntRange[G](lo, hi)
}

// BigIntRange samples uniformly from the integers in [lo, hi].
//
// Ranges whose width fits into a uint64 are reduced exactly like
// Uint64Inclusive, so they consume the same draws as the fixed width
// samplers.
func BigIntRange[G generator.Generator[G]](lo, hi *big.Int) (Rand[G, *big.Int], error) {
	if lo.Cmp(hi) > 0 {
		return nil, fmt.Errorf("%w: %s > %s", ErrInvalidRange, lo, hi)
	}

	lo = new(big.Int).Set(lo)
	width := new(big.Int).Sub(hi, lo)
	return func(g G) (*big.Int, G) {
		k, g := bigInclusive(g, width)
		return k.Add(k, lo), g
	}, nil
}

// bigInclusive returns a value uniformly sampled from [0, n] as a freshly
// allocated big.Int.
func bigInclusive[G generator.Generator[G]](g G, n *big.Int) (*big.Int, G) {
	if n.IsUint64() {
		k, g := uint64Inclusive(g, n.Uint64())
		return new(big.Int).SetUint64(k), g
	}

	genLo, genHi := nativeRange(g)
	base := new(big.Int).SetUint64(genHi - genLo)
	base.Add(base, bigOne)
	size := new(big.Int).Add(n, bigOne)

	var (
		acc    = new(big.Int)
		lim    = new(big.Int)
		digit  = new(big.Int)
		cutoff = new(big.Int)
	)
	for {
		acc.SetUint64(0)
		lim.SetUint64(1)
		for lim.Cmp(n) <= 0 {
			var d uint64
			d, g = g.Next()
			acc.Mul(acc, base)
			acc.Add(acc, digit.SetUint64(d-genLo))
			lim.Mul(lim, base)
		}

		cutoff.Mod(lim, size)
		cutoff.Sub(lim, cutoff)
		if acc.Cmp(cutoff) < 0 {
			return acc.Mod(acc, size), g
		}
	}
}
