// Copyright (C) 2019-2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package random

import (
	"errors"
	"fmt"

	"github.com/ava-labs/splitrand/generator"
)

var (
	_ Bounded[Fin] = Fins{}

	ErrEmptyFin      = errors.New("empty Fin domain")
	ErrFinOutOfRange = errors.New("value is not below its bound")
)

// Fin is a natural number strictly below N.
type Fin struct {
	N   uint64
	Val uint64
}

// NewFin returns [val] as a member of Fin [n].
func NewFin(n, val uint64) (Fin, error) {
	f := Fin{N: n, Val: val}
	return f, f.Verify()
}

func (f Fin) Verify() error {
	if f.Val >= f.N {
		return fmt.Errorf("%w: %d >= %d", ErrFinOutOfRange, f.Val, f.N)
	}
	return nil
}

func (f Fin) String() string {
	return fmt.Sprintf("%d/%d", f.Val, f.N)
}

// Fins is the domain Fin n. The zero value is Fin 1.
type Fins struct {
	last uint64
}

func NewFins(n uint64) (Fins, error) {
	if n == 0 {
		return Fins{}, ErrEmptyFin
	}
	return Fins{last: n - 1}, nil
}

// N returns the number of values in the domain.
func (d Fins) N() uint64 {
	return d.last + 1
}

// Width compares the underlying naturals of [lo] and [hi].
func (d Fins) Width(lo, hi Fin) (uint64, error) {
	if err := d.verify(lo); err != nil {
		return 0, err
	}
	if err := d.verify(hi); err != nil {
		return 0, err
	}
	return Unsigned[uint64]{}.Width(lo.Val, hi.Val)
}

func (Fins) Shift(lo Fin, k uint64) Fin {
	return Fin{
		N:   lo.N,
		Val: Unsigned[uint64]{}.Shift(lo.Val, k),
	}
}

func (d Fins) Bounds() (Fin, Fin) {
	n := d.N()
	return Fin{N: n}, Fin{N: n, Val: d.last}
}

func (d Fins) verify(f Fin) error {
	if f.N != d.N() {
		return fmt.Errorf("%w: Fin %d in Fin %d", ErrDomainMismatch, f.N, d.N())
	}
	return f.Verify()
}

// FinValue samples uniformly from Fin [n].
func FinValue[G generator.Generator[G]](n uint64) (Rand[G, Fin], error) {
	d, err := NewFins(n)
	if err != nil {
		return nil, err
	}
	return RandomValue[G, Fin](d), nil
}

// FinRange samples uniformly from [lo, hi]. Both bounds must share the same N.
func FinRange[G generator.Generator[G]](lo, hi Fin) (Rand[G, Fin], error) {
	d, err := NewFins(lo.N)
	if err != nil {
		return nil, err
	}
	return RandomRange[G](d, lo, hi)
}
