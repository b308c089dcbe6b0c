// Copyright (C) 2019-2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package random

import (
	"errors"
	"fmt"
	"math"

	"github.com/ava-labs/splitrand/generator"
)

// MaxBitvecWidth is the widest supported bit vector.
const MaxBitvecWidth = 64

var (
	_ Bounded[Bitvec] = Bitvecs{}

	ErrBitvecOutOfRange = errors.New("bits exceed the vector width")
)

// Bitvec is a fixed width vector of bits, stored as its unsigned value.
//
// A Bitvec of width w is the bit pattern of a Fin 2^w.
type Bitvec struct {
	Width uint
	Bits  uint64
}

// NewBitvec returns [bits] as a vector of width [width].
func NewBitvec(width uint, bits uint64) (Bitvec, error) {
	b := Bitvec{Width: width, Bits: bits}
	return b, b.Verify()
}

// BitvecFromFin reconstructs the bit pattern of [f], which must be a member of
// Fin 2^[width].
func BitvecFromFin(width uint, f Fin) (Bitvec, error) {
	if width >= MaxBitvecWidth {
		return Bitvec{}, fmt.Errorf("%w: Fin 2^%d", ErrWidthOverflow, width)
	}
	if n := uint64(1) << width; f.N != n {
		return Bitvec{}, fmt.Errorf("%w: Fin %d is not Fin 2^%d", ErrDomainMismatch, f.N, width)
	}
	if err := f.Verify(); err != nil {
		return Bitvec{}, err
	}
	return Bitvec{Width: width, Bits: f.Val}, nil
}

func (b Bitvec) Verify() error {
	if b.Width > MaxBitvecWidth {
		return fmt.Errorf("%w: width %d", ErrWidthOverflow, b.Width)
	}
	if b.Bits > bitMask(b.Width) {
		return fmt.Errorf("%w: %#x in %d bits", ErrBitvecOutOfRange, b.Bits, b.Width)
	}
	return nil
}

// Fin returns the value of [b] as a member of Fin 2^Width. Vectors of the full
// 64 bits have no Fin representation.
func (b Bitvec) Fin() (Fin, error) {
	if b.Width >= MaxBitvecWidth {
		return Fin{}, fmt.Errorf("%w: Fin 2^%d", ErrWidthOverflow, b.Width)
	}
	return NewFin(uint64(1)<<b.Width, b.Bits)
}

func (b Bitvec) String() string {
	if b.Width == 0 {
		return "0b"
	}
	return fmt.Sprintf("0b%0*b", int(b.Width), b.Bits)
}

// Bitvecs is the domain of bit vectors of a fixed width. The zero value is the
// domain of empty vectors.
type Bitvecs struct {
	width uint
}

func NewBitvecs(width uint) (Bitvecs, error) {
	if width > MaxBitvecWidth {
		return Bitvecs{}, fmt.Errorf("%w: width %d", ErrWidthOverflow, width)
	}
	return Bitvecs{width: width}, nil
}

func (d Bitvecs) Width(lo, hi Bitvec) (uint64, error) {
	if err := d.verify(lo); err != nil {
		return 0, err
	}
	if err := d.verify(hi); err != nil {
		return 0, err
	}
	if d.width == MaxBitvecWidth {
		return Unsigned[uint64]{}.Width(lo.Bits, hi.Bits)
	}

	fins, loFin, hiFin, err := d.lift(lo, hi)
	if err != nil {
		return 0, err
	}
	return fins.Width(loFin, hiFin)
}

func (d Bitvecs) Shift(lo Bitvec, k uint64) Bitvec {
	if d.width == MaxBitvecWidth {
		return Bitvec{
			Width: lo.Width,
			Bits:  Unsigned[uint64]{}.Shift(lo.Bits, k),
		}
	}

	loFin := Fin{N: uint64(1) << d.width, Val: lo.Bits}
	return Bitvec{
		Width: lo.Width,
		Bits:  Fins{}.Shift(loFin, k).Val,
	}
}

func (d Bitvecs) Bounds() (Bitvec, Bitvec) {
	return Bitvec{Width: d.width}, Bitvec{Width: d.width, Bits: bitMask(d.width)}
}

func (d Bitvecs) lift(lo, hi Bitvec) (Fins, Fin, Fin, error) {
	fins, err := NewFins(uint64(1) << d.width)
	if err != nil {
		return Fins{}, Fin{}, Fin{}, err
	}
	loFin, err := lo.Fin()
	if err != nil {
		return Fins{}, Fin{}, Fin{}, err
	}
	hiFin, err := hi.Fin()
	return fins, loFin, hiFin, err
}

func (d Bitvecs) verify(b Bitvec) error {
	if b.Width != d.width {
		return fmt.Errorf("%w: width %d in width %d", ErrDomainMismatch, b.Width, d.width)
	}
	return b.Verify()
}

// BitvecValue samples uniformly from every vector of width [width].
func BitvecValue[G generator.Generator[G]](width uint) (Rand[G, Bitvec], error) {
	d, err := NewBitvecs(width)
	if err != nil {
		return nil, err
	}
	return RandomValue[G, Bitvec](d), nil
}

// BitvecRange samples uniformly from [lo, hi]. Both bounds must share the same
// width.
func BitvecRange[G generator.Generator[G]](lo, hi Bitvec) (Rand[G, Bitvec], error) {
	d, err := NewBitvecs(lo.Width)
	if err != nil {
		return nil, err
	}
	return RandomRange[G](d, lo, hi)
}

func bitMask(width uint) uint64 {
	if width >= MaxBitvecWidth {
		return math.MaxUint64
	}
	return uint64(1)<<width - 1
}
