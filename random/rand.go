// Copyright (C) 2019-2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package random builds composable sampling computations on top of any
// generator.Generator.
//
// A Rand describes how to transform a generator state into a value and a
// successor state. Nothing is sampled until the computation is Run with an
// initial state, and running the same computation from the same state always
// yields the same value and the same final state.
package random

import "github.com/ava-labs/splitrand/generator"

// Rand is a sampling computation producing an A by threading a generator
// state G.
type Rand[G generator.Generator[G], A any] func(G) (A, G)

// Run executes [r] starting from [g], returning the sampled value and the
// final generator state.
func (r Rand[G, A]) Run(g G) (A, G) {
	return r(g)
}

// Run executes [r] starting from [g].
func Run[G generator.Generator[G], A any](r Rand[G, A], g G) (A, G) {
	return r(g)
}

// Pure returns a computation that yields [a] without touching the generator.
func Pure[G generator.Generator[G], A any](a A) Rand[G, A] {
	return func(g G) (A, G) {
		return a, g
	}
}

// Bind runs [r], then runs the computation returned by [f] against the state
// [r] left behind.
func Bind[G generator.Generator[G], A, B any](r Rand[G, A], f func(A) Rand[G, B]) Rand[G, B] {
	return func(g G) (B, G) {
		a, g := r(g)
		return f(a)(g)
	}
}

// Map applies [f] to the value produced by [r].
func Map[G generator.Generator[G], A, B any](r Rand[G, A], f func(A) B) Rand[G, B] {
	return func(g G) (B, G) {
		a, g := r(g)
		return f(a), g
	}
}

// Next draws one raw value from the generator.
func Next[G generator.Generator[G]]() Rand[G, uint64] {
	return func(g G) (uint64, G) {
		return g.Next()
	}
}

// Split splits the current state. The first branch is produced as the value,
// for use by an independent computation, and the second branch becomes the
// current state.
func Split[G generator.Generator[G]]() Rand[G, G] {
	return func(g G) (G, G) {
		return g.Split()
	}
}

// Sequence runs [rs] left to right, threading the state through each of them.
func Sequence[G generator.Generator[G], A any](rs ...Rand[G, A]) Rand[G, []A] {
	return func(g G) ([]A, G) {
		values := make([]A, len(rs))
		for i, r := range rs {
			values[i], g = r(g)
		}
		return values, g
	}
}

// Replicate runs [r] [n] times in sequence.
func Replicate[G generator.Generator[G], A any](n int, r Rand[G, A]) Rand[G, []A] {
	return func(g G) ([]A, G) {
		values := make([]A, n)
		for i := range values {
			values[i], g = r(g)
		}
		return values, g
	}
}
