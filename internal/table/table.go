// Package table builds and memoizes the byte-indexed lookup tables the
// slice-by-N kernel folds bytes through. Building a table for a
// parametrization that is never processed never happens: tables are
// computed lazily, on first request, and cached for the lifetime of the
// program.
//
// Width must already be normalized to at least 8 (per the CRC<8-bit
// convention of folding the register left by 8-Width and treating it as an
// 8-bit-wide problem) — callers below 8 bits are responsible for that
// normalization before calling Get.
package table

import "sync"

import "github.com/LocalSpook/zcrc/internal/bits"

// Tables holds the N byte-indexed tables for one (width, poly, refIn, n)
// parametrization. Tables[s][b] equals (b * x^(8*(n-1-s)+width)) mod P, in
// the orientation refIn selects. Tables is immutable once built.
type Tables [][256]uint64

type key struct {
	width uint
	poly  uint64
	refIn bool
	n     int
}

var (
	mu    sync.Mutex
	cache = map[key]Tables{}
)

// Get returns the cached Tables for (width, poly, refIn, n), building and
// caching it on first use. width must be >= 8 and n must be >= 1.
func Get(width uint, poly uint64, refIn bool, n int) Tables {
	k := key{width, poly, refIn, n}

	mu.Lock()
	defer mu.Unlock()
	if t, ok := cache[k]; ok {
		return t
	}
	t := build(width, poly, refIn, n)
	cache[k] = t
	return t
}

// build constructs the n tables from scratch. It first builds the ordinary
// single-byte table (the table a slice-by-1 kernel would use, which already
// carries the width-8 positioning bias baked into the seed below), then
// extends it backward, one conceptual zero byte at a time, to produce the
// tables for slice positions that precede the last byte of an n-byte group.
func build(width uint, poly uint64, refIn bool, n int) Tables {
	base := baseTable(width, poly, refIn)

	t := make(Tables, n)
	t[n-1] = base
	for s := n - 2; s >= 0; s-- {
		t[s] = foldZeroByte(t[s+1], base, width, refIn)
	}
	return t
}

// baseTable builds the power-of-two entries with a full 8-step shift-
// register update, then fills the remaining 248 entries by XOR-combining
// powers of two — CRC is linear over GF(2), so the contribution of a byte is
// the XOR of the contributions of its individual set bits.
func baseTable(width uint, poly uint64, refIn bool) [256]uint64 {
	var t [256]uint64
	mask := bits.BottomNMask(width)

	if refIn {
		reflectedPoly := bits.Reflect(poly, width)
		for i := 1; i != 256; i <<= 1 {
			r := uint64(i)
			for j := 0; j != 8; j++ {
				if bits.BitIsSet(r, 0) {
					r = (r >> 1) ^ reflectedPoly
				} else {
					r >>= 1
				}
			}
			for j := 0; j != i; j++ {
				t[j+i] = r ^ t[j]
			}
		}
	} else {
		for i := 1; i != 256; i <<= 1 {
			r := uint64(i) << (width - 8)
			for j := 0; j != 8; j++ {
				if bits.BitIsSet(r, width-1) {
					r = ((r << 1) & mask) ^ poly
				} else {
					r = (r << 1) & mask
				}
			}
			for j := 0; j != i; j++ {
				t[j+i] = r ^ t[j]
			}
		}
	}
	return t
}

// foldZeroByte derives the table for one slice position earlier than next
// by running every entry of next through the "feed one more zero byte"
// update — the same update a slice-by-1 kernel performs to advance its
// register by one byte with an all-zero input.
func foldZeroByte(next, base [256]uint64, width uint, refIn bool) [256]uint64 {
	var t [256]uint64
	if refIn {
		for b := range t {
			r := next[b]
			t[b] = base[r&0xFF] ^ (r >> 8)
		}
	} else {
		mask := bits.BottomNMask(width)
		for b := range t {
			r := next[b]
			t[b] = base[(r>>(width-8))&0xFF] ^ ((r << 8) & mask)
		}
	}
	return t
}
