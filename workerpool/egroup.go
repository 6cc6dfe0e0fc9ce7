package workerpool

import (
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/wccgraph/idx"
)

// RunChunks splits [0, n) into closed-open chunks of size chunkSize and runs
// fn once per chunk, one goroutine per chunk, joined by an errgroup.Group.
// The Go runtime scheduler — not an explicit dispenser — decides which
// goroutine runs on which OS thread next; this is the "runtime-managed"
// chunked linker variant, as opposed to ParallelForChunked's explicit
// idx.Atomic dispenser ("manually dispensed" variant).
//
// RunChunks blocks until every chunk's goroutine has returned: this is the
// happens-before barrier required between wcc's phases.
func RunChunks[T idx.Idx](n, chunkSize T, fn func(start, end T)) {
	if n <= 0 {
		return
	}
	if chunkSize <= 0 {
		chunkSize = n
	}

	var g errgroup.Group
	for start := T(0); start < n; start = idx.SatAdd(start, chunkSize) {
		end := idx.Min(idx.SatAdd(start, chunkSize), n)
		g.Go(func() error {
			fn(start, end)
			return nil
		})
	}
	_ = g.Wait() // fn never errors; Wait only joins goroutines here.
}
