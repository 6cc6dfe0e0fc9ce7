// Package workerpool provides a persistent, reusable worker pool for the
// parallel linker baselines in the wcc package. Workers are spawned once at
// creation and reused by every dispatch on that pool, avoiding per-dispatch
// goroutine-spawn overhead. The wcc pipeline phases do not use the pool:
// they run through RunChunks, which starts one goroutine per chunk.
//
// The pool dispatches bare closures; the chunk-splitting logic on top of it
// (ParallelFor, ParallelForChunked, ParallelForAtomic) is generic over
// idx.Idx so a caller iterating a graph's [0, n) vertex range never has to
// narrow n down to a plain int and widen the result back afterward. Chunk
// bookkeeping runs through idx.Atomic[T].FetchAdd and idx.SatAdd/idx.Min,
// the same primitives dss uses for its union-find cells.
//
// Usage:
//
//	pool := workerpool.New(runtime.GOMAXPROCS(0))
//	defer pool.Close()
//
//	workerpool.ParallelFor(pool, n, func(start, end uint32) {
//	    processRange(start, end)
//	})
package workerpool

import (
	"runtime"
	"sync"
	"sync/atomic"

	"github.com/katalvlaran/wccgraph/idx"
)

// Pool is a persistent worker pool reused across many parallel operations.
// It only ever dispatches bare closures; it has no opinion about the index
// type a caller is chunking over, so it stays a plain (non-generic) type and
// the idx.Idx-typed splitting lives in the free functions below it.
type Pool struct {
	size      int
	queue     chan job
	closeOnce sync.Once
	closed    atomic.Bool
}

// job is a single unit of queued work paired with its completion signal.
type job struct {
	run  func()
	done *sync.WaitGroup
}

// New creates a pool with the given number of persistent workers. If
// size <= 0, runtime.GOMAXPROCS(0) is used.
func New(size int) *Pool {
	if size <= 0 {
		size = runtime.GOMAXPROCS(0)
	}

	p := &Pool{
		size:  size,
		queue: make(chan job, size*2),
	}

	for range size {
		go p.drain()
	}

	return p
}

// drain is the persistent loop each worker goroutine runs until Close.
func (p *Pool) drain() {
	for j := range p.queue {
		j.run()
		j.done.Done()
	}
}

// NumWorkers returns the pool's worker count.
func (p *Pool) NumWorkers() int {
	return p.size
}

// Close shuts the pool down. Safe to call more than once.
func (p *Pool) Close() {
	p.closeOnce.Do(func() {
		p.closed.Store(true)
		close(p.queue)
	})
}

// submit fans work out across workers and blocks until every submitted
// closure has run. Used by ParallelForChunked and ParallelForAtomic, which
// check for a closed pool (and run inline) before calling it.
func (p *Pool) submit(workers int, task func()) {
	var wg sync.WaitGroup
	wg.Add(workers)
	for range workers {
		p.queue <- job{run: task, done: &wg}
	}
	wg.Wait()
}

// ParallelFor runs fn once per contiguous chunk covering [0, n), splitting
// the range into at most p.NumWorkers() chunks of roughly equal size. Blocks
// until every chunk has completed. No wcc linker variant uses it; the
// "chunked parallel, runtime-managed" variant (wcc.Chunked) uses RunChunks.
func ParallelFor[T idx.Idx](p *Pool, n T, fn func(start, end T)) {
	if n <= 0 {
		return
	}
	if p.closed.Load() {
		fn(0, n)
		return
	}

	workers := clampWorkers(p.NumWorkers(), n)
	if workers == 1 {
		fn(0, n)
		return
	}

	chunkSize := (n + T(workers) - 1) / T(workers)

	var wg sync.WaitGroup
	wg.Add(workers)
	for i := range workers {
		start := T(i) * chunkSize
		if start >= n {
			wg.Done()
			continue
		}
		end := idx.Min(idx.SatAdd(start, chunkSize), n)

		p.queue <- job{
			run:  func() { fn(start, end) },
			done: &wg,
		}
	}
	wg.Wait()
}

// ParallelForChunked runs fn once per chunk of size chunkSize covering
// [0, n), closed-open [start, min(start+chunkSize, n)). Unlike ParallelFor,
// the chunk size is caller-controlled rather than derived from worker count,
// and a shared idx.Atomic[T] cursor dispenses chunks to whichever worker
// finishes first — wcc.ManualChunked and wcc.StdThreads use this shape
// with the configured chunk size so a slow chunk never stalls idle workers.
func ParallelForChunked[T idx.Idx](p *Pool, n, chunkSize T, fn func(start, end T)) {
	if n <= 0 {
		return
	}
	if chunkSize <= 0 {
		chunkSize = n
	}
	if p.closed.Load() {
		fn(0, n)
		return
	}

	numChunks := (n + chunkSize - 1) / chunkSize
	workers := clampWorkers(p.NumWorkers(), numChunks)
	if workers == 1 {
		fn(0, n)
		return
	}

	cursor := idx.NewAtomic[T](0)
	p.submit(workers, func() {
		for {
			c := cursor.FetchAdd(1)
			start := c * chunkSize
			if start >= n {
				return
			}
			end := idx.Min(idx.SatAdd(start, chunkSize), n)
			fn(start, end)
		}
	})
}

// ParallelForAtomic executes fn(i) for each index in [0, n) using a shared
// idx.Atomic[T] cursor as a work-stealing dispenser: workers FetchAdd(1) one
// unit at a time. Better load balance than ParallelFor when per-vertex cost
// is skewed. Blocks until all work completes. This is the "per-vertex
// parallel" linker variant's scheduling primitive.
func ParallelForAtomic[T idx.Idx](p *Pool, n T, fn func(i T)) {
	if n <= 0 {
		return
	}
	if p.closed.Load() {
		for i := T(0); i < n; i++ {
			fn(i)
		}
		return
	}

	workers := clampWorkers(p.NumWorkers(), n)
	if workers == 1 {
		for i := T(0); i < n; i++ {
			fn(i)
		}
		return
	}

	cursor := idx.NewAtomic[T](0)
	p.submit(workers, func() {
		for {
			i := cursor.FetchAdd(1)
			if i >= n {
				return
			}
			fn(i)
		}
	})
}

// clampWorkers caps a worker count at the number of units of work available,
// so a 16-way pool splitting a 4-chunk job doesn't spin up 12 idle workers.
func clampWorkers[T idx.Idx](workers int, units T) int {
	if T(workers) > units {
		return int(units)
	}

	return workers
}
