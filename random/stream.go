// Copyright (C) 2019-2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package random

import (
	"github.com/ava-labs/splitrand/generator"
	"github.com/ava-labs/splitrand/utils/iterator"
)

var _ iterator.Iterator[uint64] = (*Stream[generator.SplitMix, uint64])(nil)

// Stream is an infinite, lazily evaluated sequence of samples.
//
// Each call to Next splits the stream's generator once, samples from one
// branch and keeps the other for the following element. Nothing is cached:
// once an element has been consumed, it can only be reproduced by building a
// new stream from the original generator.
type Stream[G generator.Generator[G], T any] struct {
	gen    G
	sample Rand[G, T]
	value  T
}

// NewStream returns a stream whose elements are produced by [sample], each
// from its own split of [g].
func NewStream[G generator.Generator[G], T any](g G, sample Rand[G, T]) *Stream[G, T] {
	return &Stream[G, T]{
		gen:    g,
		sample: sample,
	}
}

// Next samples the next element. It always returns true until the stream is
// released.
func (s *Stream[G, T]) Next() bool {
	if s.sample == nil {
		return false
	}

	branch, rest := s.gen.Split()
	s.value, _ = s.sample(branch)
	s.gen = rest
	return true
}

func (s *Stream[G, T]) Value() T {
	return s.value
}

func (s *Stream[G, T]) Release() {
	s.sample = nil
}

// Series splits the current generator once and returns a stream of samples
// of [r] driven by the split off branch.
func Series[G generator.Generator[G], T any](r Rand[G, T]) Rand[G, *Stream[G, T]] {
	return Map(Split[G](), func(sub G) *Stream[G, T] {
		return NewStream(sub, r)
	})
}

// RandomSeries returns a stream of samples from the full range of [d].
func RandomSeries[G generator.Generator[G], T any](d Bounded[T]) Rand[G, *Stream[G, T]] {
	return Series(RandomValue[G, T](d))
}

// RandomSeriesRange returns a stream of samples from [lo, hi].
func RandomSeriesRange[G generator.Generator[G], T any](d Domain[T], lo, hi T) (Rand[G, *Stream[G, T]], error) {
	r, err := RandomRange[G](d, lo, hi)
	if err != nil {
		return nil, err
	}
	return Series(r), nil
}
