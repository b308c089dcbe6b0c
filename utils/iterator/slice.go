// Copyright (C) 2019-2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package iterator

var _ Iterator[struct{}] = (*slice[struct{}])(nil)

// FromSlice returns an iterator over the provided elements, in order.
func FromSlice[T any](elements ...T) Iterator[T] {
	return &slice[T]{
		index:    -1,
		elements: elements,
	}
}

type slice[T any] struct {
	index    int
	elements []T
}

func (s *slice[T]) Next() bool {
	s.index++
	return s.index < len(s.elements)
}

func (s *slice[T]) Value() T {
	return s.elements[s.index]
}

func (s *slice[T]) Release() {
	s.elements = nil
}
