package zcrc

import (
	"fmt"

	"github.com/LocalSpook/zcrc/internal/bits"
	"github.com/LocalSpook/zcrc/internal/table"
)

// dispatch routes to the algorithm's kernel, after rejecting a malformed
// Algorithm. The zero Algorithm (isParallel == false, sliceN == 0) is
// reachable from any caller regardless of field visibility — e.g.
// zcrc.Process(state, data, zcrc.Algorithm{}) — and must fail the same way
// every other invariant violation in this package does: a panic, not a
// hang in processSliceBy's loop.
func dispatch(a Algorithm, s State, data []byte) State {
	if !a.isParallel && a.sliceN < 1 {
		panic(fmt.Sprintf("zcrc: malformed Algorithm (sliceN=%d); use SliceBy or Parallel to construct one", a.sliceN))
	}
	if a.isParallel {
		return processParallel(*a.inner, s, data)
	}
	return processSliceBy(a.sliceN, s, data)
}

// processSliceBy implements the slice-by-N kernel of §4.3: N bytes folded
// per step through N precomputed tables, with any remainder handled as
// unrolled blocks of falling powers of two so the tail costs O(log N)
// folds instead of N-1 single-byte ones.
//
// Every input here is a []byte, which is always random-access and sized —
// the non-random-access degrade-to-slice-by-1 path of the source design
// has no counterpart to trigger in this API (this library takes no
// streaming-I/O input; see spec's non-goals).
func processSliceBy(n int, s State, data []byte) State {
	p := s.params
	width, poly, refIn := p.effWidth(), p.effPoly(), p.RefIn

	reg := s.reg
	i := 0
	for ; i+n <= len(data); i += n {
		reg = foldBlock(width, poly, refIn, reg, data[i:i+n])
	}

	for k := highestBit(n - 1); k >= 0; k-- {
		block := 1 << k
		if tail := len(data) - i; tail&block != 0 {
			reg = foldBlock(width, poly, refIn, reg, data[i:i+block])
			i += block
		}
	}

	s.reg = reg
	return s
}

// foldBlock folds exactly len(chunk) bytes into reg using the table set
// built for that many slices. Each byte of chunk is XORed against the byte
// of reg it lines up with, looked up in the table for its position, and
// the results are XORed together along with the surviving part of the old
// register (shifted out by len(chunk) bytes using the generalized shift,
// which is 0 once the shift count reaches the register width).
func foldBlock(width uint, poly uint64, refIn bool, reg uint64, chunk []byte) uint64 {
	n := len(chunk)
	tabs := table.Get(width, poly, refIn, n)

	var acc uint64
	if refIn {
		for i, b := range chunk {
			idx := (bits.RShift(reg, int64(8*i)) & 0xFF) ^ uint64(b)
			acc ^= tabs[i][idx]
		}
		acc ^= bits.RShift(reg, int64(8*n))
	} else {
		for i, b := range chunk {
			idx := (bits.RShift(reg, int64(width)-int64(8*(i+1))) & 0xFF) ^ uint64(b)
			acc ^= tabs[i][idx]
		}
		acc ^= bits.LShift(reg, int64(8*n))
	}
	return acc & bits.BottomNMask(width)
}

// highestBit returns floor(log2(x)) for x >= 1, or -1 for x <= 0.
func highestBit(x int) int {
	b := -1
	for x > 0 {
		x >>= 1
		b++
	}
	return b
}
