package zcrc

import "fmt"

// Algorithm selects the strategy Process uses to fold bytes through a
// State's register: either SliceBy(N), a table-driven kernel consuming N
// bytes per step, or Parallel(A), which drives a non-parallel A over
// multiple goroutines. The zero Algorithm is not valid; use SliceBy or
// Parallel to build one.
type Algorithm struct {
	sliceN     int
	isParallel bool
	inner      *Algorithm
}

// DefaultAlgorithm is SliceBy(8), the algorithm Process and Compute use
// when none is given explicitly.
var DefaultAlgorithm = SliceBy(8)

// SliceBy returns the slice-by-n algorithm tag. n must be >= 1.
func SliceBy(n int) Algorithm {
	if n < 1 {
		panic(fmt.Sprintf("zcrc: SliceBy: n must be >= 1, got %d", n))
	}
	return Algorithm{sliceN: n}
}

// Parallel returns an algorithm that runs inner over disjoint chunks of the
// input concurrently and XOR-combines the results. inner must not itself
// be a Parallel algorithm — nesting is rejected, matching the source
// template's static_assert.
func Parallel(inner Algorithm) Algorithm {
	if inner.isParallel {
		panic("zcrc: Parallel cannot wrap another Parallel algorithm")
	}
	innerCopy := inner
	return Algorithm{isParallel: true, inner: &innerCopy}
}
