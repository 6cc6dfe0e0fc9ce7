package wcc

import (
	"runtime"

	"github.com/katalvlaran/wccgraph/csr"
	"github.com/katalvlaran/wccgraph/dss"
	"github.com/katalvlaran/wccgraph/idx"
	"github.com/katalvlaran/wccgraph/workerpool"
)

// chunkSize is the default vertex-range granularity for every chunked
// baseline and every pipeline phase. Implementations may tune it, but the
// published value is chosen to keep phase-2 giant-component estimates
// reproducible across runs on benchmark graphs.
const chunkSize = 16384

// neighborRounds is the number of leading out-edges the sampler considers
// per vertex; the remainder linker starts from the out-edge after them. The
// baselines do not use it.
const neighborRounds = 2

// samplingSize is the number of uniform random Find probes the giant-
// component estimator draws.
const samplingSize = 1024

// SingleThread unions every vertex's out-edges sequentially. It is the
// correctness oracle every other variant (including Run's sampling
// pipeline) is expected to agree with on equivalence classes.
func SingleThread[T idx.Idx](g csr.Graph[T]) *dss.Set[T] {
	n := g.NodeCount()
	d := dss.New(n)
	for u := T(0); u < n; u++ {
		for _, v := range g.OutNeighbors(u) {
			d.Union(u, v)
		}
	}

	return d
}

// PerVertex unions every vertex's out-edges in parallel across vertices,
// using atomic work-stealing so that vertices with many out-edges don't
// starve vertices with few. Each vertex's own neighbor loop stays
// sequential.
func PerVertex[T idx.Idx](g csr.Graph[T]) *dss.Set[T] {
	n := g.NodeCount()
	d := dss.New(n)

	pool := workerpool.New(runtime.GOMAXPROCS(0))
	defer pool.Close()

	workerpool.ParallelForAtomic(pool, n, func(u T) {
		for _, v := range g.OutNeighbors(u) {
			d.Union(u, v)
		}
	})

	return d
}

// Chunked unions every vertex's out-edges in parallel, with vertices
// partitioned into contiguous chunks of chunkSize and one goroutine per
// chunk — the Go runtime scheduler, not an explicit dispenser, decides
// execution order.
func Chunked[T idx.Idx](g csr.Graph[T]) *dss.Set[T] {
	n := g.NodeCount()
	d := dss.New(n)

	workerpool.RunChunks(n, T(chunkSize), func(start, end T) {
		for u := start; u < end; u++ {
			for _, v := range g.OutNeighbors(u) {
				d.Union(u, v)
			}
		}
	})

	return d
}

// ManualChunked unions every vertex's out-edges in parallel, with a fixed
// set of workers sized to the degree of parallelism pulling contiguous
// chunks of chunkSize from a shared atomic dispenser until the dispenser
// returns a start at or beyond n.
func ManualChunked[T idx.Idx](g csr.Graph[T]) *dss.Set[T] {
	n := g.NodeCount()
	d := dss.New(n)

	pool := workerpool.New(runtime.GOMAXPROCS(0))
	defer pool.Close()

	workerpool.ParallelForChunked(pool, n, T(chunkSize), func(start, end T) {
		for u := start; u < end; u++ {
			for _, v := range g.OutNeighbors(u) {
				d.Union(u, v)
			}
		}
	})

	return d
}

// StdThreads unions every vertex's out-edges using a fixed pool of
// runtime.NumCPU() workers pulling from the same chunk dispenser as
// ManualChunked. It is distinguished only by using a worker count pinned
// to the OS-visible hardware parallelism rather than GOMAXPROCS, mirroring
// a host that schedules directly onto OS threads.
func StdThreads[T idx.Idx](g csr.Graph[T]) *dss.Set[T] {
	n := g.NodeCount()
	d := dss.New(n)

	pool := workerpool.New(runtime.NumCPU())
	defer pool.Close()

	workerpool.ParallelForChunked(pool, n, T(chunkSize), func(start, end T) {
		for u := start; u < end; u++ {
			for _, v := range g.OutNeighbors(u) {
				d.Union(u, v)
			}
		}
	})

	return d
}
