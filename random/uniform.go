// Copyright (C) 2019-2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package random

import (
	"errors"
	"fmt"
	"math"
	"math/bits"

	"github.com/ava-labs/splitrand/generator"
)

var errDegenerateGenerator = errors.New("generator range must contain at least two values")

// Uint64Inclusive returns a computation sampling uniformly from [0, n].
//
// Invariant: every value in [0, n] is equally likely given uniform generator
// outputs. Draws that would bias the reduction are rejected and redrawn.
func Uint64Inclusive[G generator.Generator[G]](n uint64) Rand[G, uint64] {
	return func(g G) (uint64, G) {
		return uint64Inclusive(g, n)
	}
}

func uint64Inclusive[G generator.Generator[G]](g G, n uint64) (uint64, G) {
	lo, hi := nativeRange(g)
	switch {
	case n == 0:
		return 0, g
	case lo == 0 && hi == math.MaxUint64:
		return wordInclusive(g, n)
	default:
		return digitsInclusive(g, lo, hi-lo+1, n)
	}
}

func nativeRange[G generator.Generator[G]](g G) (uint64, uint64) {
	lo, hi := g.Range()
	if hi <= lo {
		panic(fmt.Errorf("%w: [%d, %d]", errDegenerateGenerator, lo, hi))
	}
	return lo, hi
}

// wordInclusive reduces generators producing full 64 bit words.
func wordInclusive[G generator.Generator[G]](g G, n uint64) (uint64, G) {
	var v uint64
	switch {
	// n+1 is power of two, so we can just mask
	//
	// Note: This does work for MaxUint64 as overflow is explicitly part of the
	// compiler specification: https://go.dev/ref/spec#Integer_overflow
	case n&(n+1) == 0:
		v, g = g.Next()
		return v & n, g

	// n is greater than MaxUint64/2 so we need to just iterate until we get a
	// number in the requested range.
	case n > math.MaxInt64:
		for {
			v, g = g.Next()
			if v <= n {
				return v, g
			}
		}

	// n is less than MaxUint64/2 so we generate a number in the range
	// [0, k*(n+1)) where k is the largest integer such that k*(n+1) is less
	// than or equal to MaxUint64/2. We can't easily find k such that k*(n+1) is
	// less than or equal to MaxUint64 because the calculation would overflow.
	default:
		maximum := (1 << 63) - 1 - (1<<63)%(n+1)
		for {
			v, g = g.Next()
			v &= math.MaxInt64
			if v <= maximum {
				return v % (n + 1), g
			}
		}
	}
}

// digitsInclusive reduces generators whose native range holds [base] values,
// with 2 <= base < 2^64.
//
// Draws are accumulated as base-[base] digits into a 128 bit value uniform in
// [0, base^k), with k the smallest count such that base^k > n. Values at or
// above the largest multiple of n+1 not exceeding base^k are rejected, so the
// remainder is uniform. Less than half of all rounds are rejected.
func digitsInclusive[G generator.Generator[G]](g G, lo, base, n uint64) (uint64, G) {
	for {
		var (
			accHi, accLo uint64
			limHi, limLo uint64 = 0, 1
		)
		// While limHi is zero, lim and acc < lim fit in a single word, so
		// the products below can't exceed 128 bits.
		for limHi == 0 && limLo <= n {
			var d uint64
			d, g = g.Next()
			accHi, accLo = mulAdd(accLo, base, d-lo)
			limHi, limLo = mulAdd(limLo, base, 0)
		}

		if n == math.MaxUint64 {
			// n+1 is 2^64, which divides every multiple of 2^64.
			if accHi < limHi {
				return accLo, g
			}
			continue
		}

		size := n + 1
		cutHi, cutLo := sub128(limHi, limLo, bits.Rem64(limHi, limLo, size))
		if less128(accHi, accLo, cutHi, cutLo) {
			return bits.Rem64(accHi, accLo, size), g
		}
	}
}

// mulAdd returns x*m + a as a 128 bit value.
func mulAdd(x, m, a uint64) (uint64, uint64) {
	hi, lo := bits.Mul64(x, m)
	lo, carry := bits.Add64(lo, a, 0)
	return hi + carry, lo
}

func sub128(hi, lo, v uint64) (uint64, uint64) {
	lo, borrow := bits.Sub64(lo, v, 0)
	return hi - borrow, lo
}

func less128(aHi, aLo, bHi, bLo uint64) bool {
	return aHi < bHi || (aHi == bHi && aLo < bLo)
}
