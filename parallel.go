package zcrc

import (
	"context"
	"runtime"

	"github.com/shirou/gopsutil/v3/cpu"
	"golang.org/x/sync/errgroup"
)

// hardwareParallelism returns the number of logical cores to split a
// Parallel computation across. It prefers gopsutil's logical core count,
// falling back to runtime.NumCPU() if gopsutil can't determine it
// (containerized environments sometimes can't read /proc/cpuinfo).
func hardwareParallelism() int {
	if n, err := cpu.CountsWithContext(context.Background(), true); err == nil && n > 0 {
		return n
	}
	return runtime.NumCPU()
}

// processParallel implements §4.7: split data into T chunks (T = hardware
// parallelism), process each independently — chunk 0 from the caller's
// state, the rest from a zero state — shift each chunk's result by the
// number of bytes that follow it, and XOR-combine. Workers share no
// mutable state; errgroup.Group provides the synchronous join barrier.
func processParallel(inner Algorithm, s State, data []byte) State {
	t := hardwareParallelism()
	if t < 1 {
		t = 1
	}

	total := len(data)
	chunkLen := total / t
	if t <= 1 || chunkLen == 0 {
		// Too little data to profitably split; same result, no goroutines.
		return dispatch(inner, s, data)
	}

	remainder := total % t
	results := make([]uint64, t)

	var g errgroup.Group
	for i := 0; i < t; i++ {
		i := i
		start, end := chunkBounds(i, remainder, chunkLen)
		g.Go(func() error {
			chunkState := s.params.ZeroState()
			if i == 0 {
				chunkState = s
			}
			result := dispatch(inner, chunkState, data[start:end])
			result = ProcessZeroBytes(result, uint64(total-end))
			results[i] = result.reg
			return nil
		})
	}
	_ = g.Wait() // worker closures never return an error

	var combined uint64
	for _, r := range results {
		combined ^= r
	}
	s.reg = combined
	return s
}

// chunkBounds returns the [start,end) byte range for chunk i of t, where
// chunk 0 absorbs the remainder: chunk 0 spans [0, remainder+chunkLen) and
// chunk i>0 spans the next chunkLen contiguous bytes.
func chunkBounds(i, remainder, chunkLen int) (start, end int) {
	if i == 0 {
		return 0, remainder + chunkLen
	}
	start = remainder + i*chunkLen
	return start, start + chunkLen
}
