package zcrc

import (
	"fmt"

	"github.com/LocalSpook/zcrc/internal/bits"
)

// Params fully specifies a CRC family: the Rocksoft six-tuple (Width, Poly,
// Init, RefIn, RefOut, XorOut).
//
// Width is the degree of the generator polynomial, in [1,64]. Poly, Init
// and XorOut must fit in Width bits. NewParams panics if any of them is out
// of range or Width is outside [1,64]; a Params built as a struct literal
// is not checked at construction, but InitState and ZeroState run the same
// check and panic on first use, before any table is built.
type Params struct {
	Width              uint
	Poly, Init, XorOut uint64
	RefIn, RefOut      bool
}

// NewParams validates and returns a Params. Predefined catalogue entries
// (see catalog.go) are known-valid by construction and skip this check.
func NewParams(width uint, poly, init uint64, refIn, refOut bool, xorOut uint64) Params {
	p := Params{Width: width, Poly: poly, Init: init, RefIn: refIn, RefOut: refOut, XorOut: xorOut}
	p.mustBeValid()
	return p
}

func (p Params) mustBeValid() {
	if p.Width == 0 || p.Width > 64 {
		panic(fmt.Sprintf("zcrc: Params.Width must be in [1,64], got %d", p.Width))
	}
	mask := bits.BottomNMask(p.Width)
	if p.Poly&^mask != 0 {
		panic(fmt.Sprintf("zcrc: Params.Poly has bits set above bit %d", p.Width-1))
	}
	if p.Init&^mask != 0 {
		panic(fmt.Sprintf("zcrc: Params.Init has bits set above bit %d", p.Width-1))
	}
	if p.XorOut&^mask != 0 {
		panic(fmt.Sprintf("zcrc: Params.XorOut has bits set above bit %d", p.Width-1))
	}
}

// effWidth and effPoly normalize narrow (<8 bit) parametrizations so every
// table- and field-arithmetic routine can pretend Width is at least 8: the
// register is conceptually left-shifted by 8-Width and P is shifted the
// same amount, per §4.3 of the algorithm this package implements.
func (p Params) effWidth() uint {
	if p.Width < 8 {
		return 8
	}
	return p.Width
}

func (p Params) effPoly() uint64 {
	if p.Width < 8 {
		return p.Poly << (8 - p.Width)
	}
	return p.Poly
}

// InitState returns the state produced by initializing a register with I,
// in the orientation RefIn selects: reflect(I, Width) when RefIn is set,
// or I left-shifted by max(0, 8-Width) otherwise.
//
// Params is a plain struct with every field exported, so mustBeValid's
// checks at NewParams are trivially bypassable by building a Params
// literal directly (e.g. Params{Width: 0}). InitState and ZeroState are
// the actual entry points every operation funnels through, so the
// validity check is repeated here: an out-of-spec Params panics on first
// use instead of silently producing a degenerate checksum.
func (p Params) InitState() State {
	p.mustBeValid()
	var reg uint64
	if p.RefIn {
		reg = bits.Reflect(p.Init, p.Width)
	} else if p.Width < 8 {
		reg = p.Init << (8 - p.Width)
	} else {
		reg = p.Init
	}
	return State{params: p, reg: reg}
}

// ZeroState returns a state with a zeroed register. It's the starting
// point for the Parallel driver's non-first chunks and for callers
// performing a manual Combine.
func (p Params) ZeroState() State {
	p.mustBeValid()
	return State{params: p, reg: 0}
}

// Compute is the single-call convenience form: it processes data from an
// initialized state using algo (or DefaultAlgorithm if omitted) and
// finalizes the result.
func (p Params) Compute(data []byte, algo ...Algorithm) uint64 {
	return Finalize(Process(p.InitState(), data, algo...))
}

// IsValid reports whether data's trailing ⌈Width/8⌉ bytes carry a valid CRC
// of the preceding content, computed with algo (or DefaultAlgorithm if
// omitted).
func (p Params) IsValid(data []byte, algo ...Algorithm) bool {
	return IsValid(Process(p.InitState(), data, algo...))
}
