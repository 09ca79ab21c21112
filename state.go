package zcrc

import "github.com/LocalSpook/zcrc/internal/bits"
import "github.com/LocalSpook/zcrc/internal/gf2"

// State is the running register of a CRC computation for one Params. It's
// a value type: every operation below takes a State and returns a new one,
// never mutating the receiver's bytes behind the caller's back.
//
// The register's bit pattern above Params.Width is unspecified while
// streaming — only Finalize and IsValid give it defined meaning — and
// equality ignores it; two States that finalize to the same checksum
// compare equal even if their raw registers differ outside the significant
// width.
type State struct {
	params Params
	reg    uint64
}

// Equal reports whether a and b carry the same Params and the same
// Width-significant bits of register; bits above Width are masked off
// before comparing. A CRC-10/ATM state streamed over "\x00\x00" and one
// streamed over "\x06\x33" (its generator polynomial, x^10 term included)
// both end on a zero register, and Equal treats them as equal.
func (a State) Equal(b State) bool {
	if a.params != b.params {
		return false
	}
	mask := bits.BottomNMask(a.params.effWidth())
	return a.reg&mask == b.reg&mask
}

// Process folds data into state using algo (DefaultAlgorithm if omitted)
// and returns the resulting state. It's pure: state is left unmodified.
func Process(state State, data []byte, algo ...Algorithm) State {
	a := DefaultAlgorithm
	if len(algo) > 0 {
		a = algo[0]
	}
	return dispatch(a, state, data)
}

// Finalize extracts the checksum from state: it undoes the <8-bit
// pre-shift, masks to Width bits, reflects if RefIn != RefOut, and XORs in
// XorOut.
func Finalize(state State) uint64 {
	p := state.params
	reg := state.reg
	if p.Width < 8 && !p.RefIn {
		reg >>= 8 - p.Width
	}
	reg &= bits.BottomNMask(p.Width)
	if p.RefIn != p.RefOut {
		reg = bits.Reflect(reg, p.Width)
	}
	return reg ^ p.XorOut
}

// IsValid reports whether state is the result of streaming a message whose
// trailing ⌈Width/8⌉ bytes are its own CRC, appended in the standard
// orientation. It compares state's raw register against the fixed residue
// for (Width, Poly, XorOut) without calling Finalize.
func IsValid(state State) bool {
	return state.reg == residue(state.params)
}

func residue(p Params) uint64 {
	r := p.XorOut
	for i := uint(0); i < p.Width; i++ {
		evicted := bits.BitIsSet(r, p.Width-1)
		r <<= 1
		if evicted {
			r ^= p.Poly
		}
	}
	r &= bits.BottomNMask(p.Width)
	if p.RefIn {
		return bits.Reflect(r, p.Width)
	}
	if p.Width < 8 {
		return r << (8 - p.Width)
	}
	return r
}

// Combine returns the state that would result from processing X followed
// by Y, given a = the state after processing X from an initialized state
// (already extended with ProcessZeroBytes(a, len(Y))) and b = the state
// after processing Y alone from a ZeroState. It's just an XOR of the two
// registers: linearity over GF(2) does the rest.
func Combine(a, b State) State {
	return State{params: a.params, reg: a.reg ^ b.reg}
}

// ProcessZeroBytes returns the state that would result from processing n
// zero bytes after state, computed in O(log n) via the length-extension
// identity C(M‖0^n) = C(M)·x^(8n) mod P, using precomputed powers of x in
// GF(2)[x]/P.
func ProcessZeroBytes(state State, n uint64) State {
	p := state.params
	width := p.effWidth()
	poly := p.effPoly()
	powers := gf2.FoldingPowers(width, poly, p.RefIn)

	reg := state.reg
	for k := uint(0); k < 64; k++ {
		if bits.BitIsSet(n, k) {
			reg = gf2.ClmulModP(width, poly, p.RefIn, reg, powers[k])
		}
	}
	state.reg = reg
	return state
}
