// Package gf2 implements the carry-less polynomial arithmetic CRC length
// extension is built on: multiplication modulo a fixed generator polynomial
// P, and the folding-constant table that lets process_zero_bytes skip
// straight to x^(8n) mod P in O(log n) multiplications instead of streaming
// n zero bytes one at a time.
package gf2

import "github.com/LocalSpook/zcrc/internal/bits"

// ClmulModP computes lhs*rhs mod P over GF(2)[x], in either the
// non-reflected or reflected bit orientation. width is the CRC width in
// bits (the degree of P); poly is P with its implicit leading x^width
// coefficient dropped, exactly as stored in a Params.
//
// This mirrors hardware carry-less multiply followed by a Barrett-style
// reduction: it folds one bit of lhs into the running remainder at a time,
// XORing in rhs when that bit is set and P when the bit the shift just
// evicted was set.
func ClmulModP(width uint, poly uint64, refIn bool, lhs, rhs uint64) uint64 {
	var r uint64
	if refIn {
		reflectedPoly := bits.Reflect(poly, width)
		for i := uint(0); i < width; i++ {
			evicted := bits.BitIsSet(r, 0)
			r >>= 1
			if evicted {
				r ^= reflectedPoly
			}
			if bits.BitIsSet(lhs, i) {
				r ^= rhs
			}
		}
	} else {
		for i := uint(0); i < width; i++ {
			evicted := bits.BitIsSet(r, width-1)
			r <<= 1
			if evicted {
				r ^= poly
			}
			if bits.BitIsSet(lhs, width-1-i) {
				r ^= rhs
			}
		}
	}
	return r & bits.BottomNMask(width)
}

// FoldingPowers returns the 64 folding constants f[k] = x^(8*2^k+C) mod P,
// where C positions the result to match the in-register location of a byte
// that has just entered the shift register. f[0] is the carry-less square
// of the orientation-specific seed; each subsequent entry is the carry-less
// square of the previous one. These 64 values let ProcessZeroBytes extend a
// checksum by any n < 2^64 zero bytes via at most 64 multiplications.
func FoldingPowers(width uint, poly uint64, refIn bool) [64]uint64 {
	var seed uint64
	if refIn {
		seed = uint64(1) << (width - 5)
	} else {
		seed = uint64(1) << 4
	}

	var powers [64]uint64
	r := seed
	for k := range powers {
		r = ClmulModP(width, poly, refIn, r, r)
		powers[k] = r
	}
	return powers
}
