// Package csr provides the read-only, compressed-sparse-row graph contract
// the wcc package consumes, built directly from an edge list via Build, plus
// a set of CSR-native topology generators (Cycle, Star, Complete,
// RandomSparse) used by the benchmark driver and test scenarios.
package csr

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/wccgraph/idx"
)

// ErrIndexRange indicates a vertex index argument was outside [0, NodeCount()).
var ErrIndexRange = errors.New("csr: index out of range")

// Graph is the read-only directed-graph contract the wcc package's linker
// phases consume. Implementations must be safe for concurrent reads from
// many goroutines without synchronization; neighbor slices must stay stable
// for the graph's lifetime.
type Graph[T idx.Idx] interface {
	// NodeCount returns n, the number of vertices.
	NodeCount() T
	// OutDegree returns the number of outgoing edges of u.
	OutDegree(u T) T
	// OutNeighbors returns u's outgoing neighbors, ordered and indexable,
	// with length equal to OutDegree(u).
	OutNeighbors(u T) []T
	// InNeighbors returns the vertices with an outgoing edge to u.
	InNeighbors(u T) []T
}

// Compressed is the concrete CSR layout: neighbors stored contiguously per
// vertex, indexed by a prefix-sum offsets array, once for the out-direction
// and once for the in-direction (built by reversing every edge).
type Compressed[T idx.Idx] struct {
	outOffsets []T // length n+1
	outEdges   []T // length m
	inOffsets  []T // length n+1
	inEdges    []T // length m
}

var _ Graph[uint32] = (*Compressed[uint32])(nil)

// NodeCount returns n.
func (c *Compressed[T]) NodeCount() T {
	if len(c.outOffsets) == 0 {
		return 0
	}

	return T(len(c.outOffsets) - 1)
}

// OutDegree returns the number of outgoing edges of u.
func (c *Compressed[T]) OutDegree(u T) T {
	return c.outOffsets[u+1] - c.outOffsets[u]
}

// OutNeighbors returns u's outgoing neighbors.
func (c *Compressed[T]) OutNeighbors(u T) []T {
	return c.outEdges[c.outOffsets[u]:c.outOffsets[u+1]]
}

// InNeighbors returns the vertices with an outgoing edge to u.
func (c *Compressed[T]) InNeighbors(u T) []T {
	return c.inEdges[c.inOffsets[u]:c.inOffsets[u+1]]
}

// Build constructs a Compressed CSR graph over n vertices from a directed
// edge list. Edges are not required to be sorted; Build groups them by
// source (and, for the in-direction, by destination) and builds both
// prefix-sum arrays in a single counting-sort pass per direction.
//
// Complexity: O(n + m) time and space.
func Build[T idx.Idx](n T, edges [][2]T) (*Compressed[T], error) {
	for _, e := range edges {
		if e[0] >= n || e[1] >= n {
			return nil, fmt.Errorf("csr: edge (%d,%d) out of range for n=%d: %w", e[0], e[1], n, ErrIndexRange)
		}
	}

	outOffsets, outEdges := groupBy(n, edges, func(e [2]T) T { return e[0] }, func(e [2]T) T { return e[1] })
	inOffsets, inEdges := groupBy(n, edges, func(e [2]T) T { return e[1] }, func(e [2]T) T { return e[0] })

	return &Compressed[T]{
		outOffsets: outOffsets,
		outEdges:   outEdges,
		inOffsets:  inOffsets,
		inEdges:    inEdges,
	}, nil
}

// groupBy performs a counting sort of edges by key(e), emitting value(e)
// into contiguous per-key buckets described by the returned offsets array.
func groupBy[T idx.Idx](n T, edges [][2]T, key, value func([2]T) T) ([]T, []T) {
	counts := make([]T, n+1)
	for _, e := range edges {
		counts[key(e)+1]++
	}
	for i := T(1); i <= n; i++ {
		counts[i] += counts[i-1]
	}

	offsets := append([]T(nil), counts...)
	cursor := append([]T(nil), counts...)
	vals := make([]T, len(edges))
	for _, e := range edges {
		k := key(e)
		vals[cursor[k]] = value(e)
		cursor[k]++
	}

	return offsets, vals
}
