// Package dss implements a lock-free disjoint-set structure (union-find)
// over a dense array of atomic vertex-index cells. It is the concurrency
// core the wcc package builds its linker phases on top of.
//
// Set is safe for any number of concurrent Find and Union callers; there is
// no external locking and no blocking. Every Find/Union step either makes
// progress or observes another goroutine's completed compare-and-swap.
package dss

import "github.com/katalvlaran/wccgraph/idx"

// Set is a disjoint-set structure over the index range [0, n). The zero
// value is not usable; construct with New.
type Set[T idx.Idx] struct {
	parent []idx.Atomic[T]
}

// New allocates a Set over n elements; cell i is initialized to i, so every
// vertex starts as its own singleton root.
//
// Complexity: O(n) time and space.
func New[T idx.Idx](n T) *Set[T] {
	s := &Set[T]{parent: make([]idx.Atomic[T], n)}
	for i := T(0); i < n; i++ {
		s.parent[i].Store(i)
	}

	return s
}

// Len returns n, the number of elements the Set was constructed over.
func (s *Set[T]) Len() T {
	return T(len(s.parent))
}

// Find returns the current representative of v, opportunistically
// compressing the path with one-step path halving: at each step it tries to
// CAS parent[x] from its old value directly to parent[parent[x]], skipping
// one link. Whether or not the CAS wins, it re-reads parent[x] and continues
// upward, so it never falls behind another goroutine's concurrent halving.
//
// Complexity: O(α(n)) amortized.
func (s *Set[T]) Find(v T) T {
	x := v
	for {
		px := s.parent[x].Load()
		if px == x {
			return x
		}
		ppx := s.parent[px].Load()
		if ppx != px {
			// Attempt to skip one link; ignore the outcome either way, since
			// the next iteration re-reads parent[x] regardless.
			s.parent[x].CompareAndSwap(px, ppx)
		}
		x = s.parent[x].Load()
	}
}

// Union merges the components containing a and b. It is idempotent and
// commutative: once find(a) == find(b), further calls are no-ops.
//
// The tie-break is min-rooted: between the two current roots, the higher
// (max) is attached under the lower (min) via CAS. If the CAS loses a race
// against a concurrent Union touching the same root, the whole operation
// restarts from fresh Find calls.
//
// Complexity: O(α(n)) amortized per attempt; contention on a hot root can
// cause retries but never blocks.
func (s *Set[T]) Union(a, b T) {
	for {
		ra, rb := s.Find(a), s.Find(b)
		if ra == rb {
			return
		}

		lo, hi := ra, rb
		if lo > hi {
			lo, hi = hi, lo
		}

		if s.parent[hi].CompareAndSwap(hi, lo) {
			return
		}
		// Someone else updated parent[hi] first; retry from scratch.
	}
}
