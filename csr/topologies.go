package csr

import (
	"errors"
	"fmt"
	"math/rand"

	"github.com/katalvlaran/wccgraph/idx"
)

// ErrTooFewVertices indicates a topology generator's vertex count is below
// the minimum that topology admits.
var ErrTooFewVertices = errors.New("csr: too few vertices")

// ErrInvalidProbability indicates RandomSparse's edge probability p fell
// outside the closed interval [0,1].
var ErrInvalidProbability = errors.New("csr: probability out of range")

// Each topology's minimum admissible vertex count.
const (
	minCycleVertices    = 3
	minStarVertices     = 2
	minCompleteVertices = 1
	minSparseVertices   = 1
)

// Cycle builds a directed n-vertex ring 0->1->2->...->(n-1)->0, mirrored so
// every ring step also has its reverse edge. The mirror keeps the CSR graph
// weakly connected exactly where the corresponding undirected cycle C_n is,
// which is the only notion of connectivity wcc computes over.
func Cycle[T idx.Idx](n T) (*Compressed[T], error) {
	if n < minCycleVertices {
		return nil, fmt.Errorf("csr: Cycle(n=%d) below minimum %d: %w", n, minCycleVertices, ErrTooFewVertices)
	}

	edges := make([][2]T, 0, 2*int(n))
	for i := T(0); i < n; i++ {
		j := (i + 1) % n
		edges = append(edges, [2]T{i, j}, [2]T{j, i})
	}

	return Build(n, edges)
}

// Star builds a directed hub-and-spoke topology: vertex 0 is the hub, every
// other vertex is a leaf, and every spoke is mirrored (hub->leaf and
// leaf->hub) so the weak components match the undirected star.
func Star[T idx.Idx](n T) (*Compressed[T], error) {
	if n < minStarVertices {
		return nil, fmt.Errorf("csr: Star(n=%d) below minimum %d: %w", n, minStarVertices, ErrTooFewVertices)
	}

	hub := T(0)
	edges := make([][2]T, 0, 2*int(n-1))
	for leaf := T(1); leaf < n; leaf++ {
		edges = append(edges, [2]T{hub, leaf}, [2]T{leaf, hub})
	}

	return Build(n, edges)
}

// Complete builds the complete graph K_n: every unordered pair {i,j}, i<j,
// emitted as both directed edges so OutNeighbors/InNeighbors agree with the
// undirected adjacency K_n describes.
func Complete[T idx.Idx](n T) (*Compressed[T], error) {
	if n < minCompleteVertices {
		return nil, fmt.Errorf("csr: Complete(n=%d) below minimum %d: %w", n, minCompleteVertices, ErrTooFewVertices)
	}

	edges := make([][2]T, 0, int(n)*(int(n)-1))
	for i := T(0); i < n; i++ {
		for j := i + 1; j < n; j++ {
			edges = append(edges, [2]T{i, j}, [2]T{j, i})
		}
	}

	return Build(n, edges)
}

// RandomSparse builds an Erdős–Rényi-style graph over n vertices: every
// unordered pair {i,j}, i<j, is included independently with probability p,
// and — matching Cycle/Star/Complete — emitted as both directed edges. Pass
// a seeded *rand.Rand for a reproducible sample; a nil rng is replaced by
// one seeded with 1.
//
// Trial order is i ascending, then j ascending within i, so two calls with
// the same n, p, and an identically-seeded rng draw the same edge set.
func RandomSparse[T idx.Idx](n T, p float64, rng *rand.Rand) (*Compressed[T], error) {
	if n < minSparseVertices {
		return nil, fmt.Errorf("csr: RandomSparse(n=%d) below minimum %d: %w", n, minSparseVertices, ErrTooFewVertices)
	}
	if p < 0 || p > 1 {
		return nil, fmt.Errorf("csr: RandomSparse(p=%.6f) not in [0,1]: %w", p, ErrInvalidProbability)
	}
	if rng == nil {
		rng = rand.New(rand.NewSource(1))
	}

	edges := make([][2]T, 0, int(float64(n)*float64(n)*p))
	for i := T(0); i < n; i++ {
		for j := i + 1; j < n; j++ {
			if rng.Float64() < p {
				edges = append(edges, [2]T{i, j}, [2]T{j, i})
			}
		}
	}

	return Build(n, edges)
}
