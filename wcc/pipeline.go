package wcc

import (
	"log/slog"
	"math/rand"
	"time"

	"github.com/katalvlaran/wccgraph/csr"
	"github.com/katalvlaran/wccgraph/dss"
	"github.com/katalvlaran/wccgraph/idx"
	"github.com/katalvlaran/wccgraph/workerpool"
)

// State names the orchestration pipeline's current stage. Transitions are
// strictly linear: Initialized -> Sampled -> EstimatedGiant -> Linked. There
// is no retry and no way to move backward.
type State int

const (
	Initialized State = iota
	Sampled
	EstimatedGiant
	Linked
)

// Run executes the full sampling pipeline over g: DSS creation, subgraph
// sampling, giant-component estimation, and remainder linking, in that
// order, with a happens-before barrier between each phase. rng seeds the
// giant-component estimator's random sampling; pass a freshly-seeded
// *rand.Rand for reproducible runs, or nil to use a time-seeded one.
//
// For the empty graph (g.NodeCount() == 0), Run returns an empty DSS without
// invoking the estimator.
//
// Run logs four timing records (DSS creation, sampling, estimation,
// remainder linking) and one record naming the estimated giant component
// and its approximate share of the graph.
func Run[T idx.Idx](g csr.Graph[T], rng *rand.Rand) *dss.Set[T] {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	run := &pipelineRun[T]{state: Initialized}

	start := time.Now()
	d := dss.New(g.NodeCount())
	slog.Info("wcc: DSS creation", "duration_ms", time.Since(start).Milliseconds())

	if d.Len() == 0 {
		return d
	}

	start = time.Now()
	sampleSubgraph(g, d)
	run.state = Sampled
	slog.Info("wcc: sample subgraph", "duration_ms", time.Since(start).Milliseconds())

	start = time.Now()
	giant := estimateGiant(d, rng)
	run.state = EstimatedGiant
	slog.Info("wcc: estimate giant component", "duration_ms", time.Since(start).Milliseconds())

	start = time.Now()
	linkRemaining(g, d, giant)
	run.state = Linked
	slog.Info("wcc: link remaining", "duration_ms", time.Since(start).Milliseconds())

	return d
}

// pipelineRun tracks the orchestration pipeline's current State. It is not
// exposed to callers today — Run returns only the finished DSS, matching
// the external interface contract — but keeps the state machine an
// explicit, inspectable value rather than implicit control flow, and gives
// a host embedding Run with added instrumentation a concrete place to read
// "how far did this run get".
type pipelineRun[T idx.Idx] struct {
	state State
}

// sampleSubgraph is phase 1: for every vertex u, union u with at most the
// first neighborRounds entries of out_neighbors(u). Every union performed
// here is a genuine edge of g, so it can never merge vertices a full run
// would keep apart.
func sampleSubgraph[T idx.Idx](g csr.Graph[T], d *dss.Set[T]) {
	n := g.NodeCount()
	workerpool.RunChunks(n, T(chunkSize), func(start, end T) {
		for u := start; u < end; u++ {
			out := g.OutNeighbors(u)
			limit := len(out)
			if limit > neighborRounds {
				limit = neighborRounds
			}
			for _, v := range out[:limit] {
				d.Union(u, v)
			}
		}
	})
}

// estimateGiant is phase 2: draw samplingSize independent uniform random
// indices in [0, n), compute find for each, and return the representative
// with the maximum count (ties broken by first-encountered-with-the-max).
// The returned vertex is only a plausible giant-component id; the final
// result's correctness does not depend on the estimate being right, only
// the contention-reduction benefit of phase 3 does.
//
// n == 0 never reaches this function in Run (the empty graph's pipeline
// returns before sampling would draw a sample from an empty range); callers
// invoking estimateGiant directly on an empty set must not do so.
func estimateGiant[T idx.Idx](d *dss.Set[T], rng *rand.Rand) T {
	n := d.Len()
	if n == 0 {
		return 0
	}

	counts := make(map[T]int, samplingSize)
	var mostFrequent T
	var best int
	for i := 0; i < samplingSize; i++ {
		v := T(rng.Int63n(int64(n)))
		r := d.Find(v)
		counts[r]++
		if counts[r] > best {
			best = counts[r]
			mostFrequent = r
		}
	}

	slog.Info("wcc: estimated giant component",
		"representative", mostFrequent,
		"approx_percent", int(float64(best)/float64(samplingSize)*100),
	)

	return mostFrequent
}

// linkRemaining is phase 3: for every vertex u not already in skipComponent,
// union u with its remaining out-edges (beyond neighborRounds) and with
// every in-edge. In-edges are always processed for non-giant vertices,
// regardless of out-degree, so that a low-out-degree sink unreached by
// sampling is still captured through its in-neighborhood.
func linkRemaining[T idx.Idx](g csr.Graph[T], d *dss.Set[T], skipComponent T) {
	n := g.NodeCount()
	workerpool.RunChunks(n, T(chunkSize), func(start, end T) {
		for u := start; u < end; u++ {
			// skipComponent is estimated once, before this phase. Unions made
			// here can move the giant's root away from it, so some giant
			// vertices are not skipped and get redundant unions; the result
			// stays correct.
			if d.Find(u) == skipComponent {
				continue
			}

			out := g.OutNeighbors(u)
			if len(out) > neighborRounds {
				for _, v := range out[neighborRounds:] {
					d.Union(u, v)
				}
			}

			for _, v := range g.InNeighbors(u) {
				d.Union(u, v)
			}
		}
	})
}
