// Package idx defines the vertex-index contract shared by the csr, dss, and
// wcc packages: a small generic integer constraint plus an atomic cell built
// on top of it.
//
// A WCC engine over very large graphs wants to pick its index width (uint32
// for graphs under 4B vertices, uint64 beyond that) without forking every
// downstream package. idx.Idx is that knob; everything above this package is
// written once, generically, against it.
package idx

// Idx is the set of integer types usable as a vertex index. Implementations
// in this module only ever instantiate Atomic and the algorithms in dss/wcc
// with uint32 or uint64, but the constraint is left open (~) so callers can
// define their own named index type (e.g. type NodeID uint32) without a
// conversion at every call site.
type Idx interface {
	~uint32 | ~uint64
}

// SatAdd returns a+b saturated at the maximum value representable by T,
// instead of wrapping around on overflow. The chunk dispenser (workerpool)
// uses it to compute an exclusive chunk end from a start and CHUNK_SIZE
// without risking a wraparound past the type's range on the final chunk.
func SatAdd[T Idx](a, b T) T {
	sum := a + b
	if sum < a { // wrapped around
		return ^T(0) // all-ones bit pattern: the max value T can hold
	}

	return sum
}

// Min returns the smaller of a and b. The chunk dispensers use it together
// with SatAdd to clamp a saturated chunk end back down to the graph's real
// vertex count: end := idx.Min(idx.SatAdd(start, chunkSize), n).
func Min[T Idx](a, b T) T {
	if a < b {
		return a
	}

	return b
}
