package idx

import "sync/atomic"

// Atomic is a lock-free cell holding a value of an Idx type. It is backed by
// a single atomic.Uint64 regardless of T's actual width: a uint32 index
// costs a full 8-byte word, trading cache density for one generic code path
// with no unsafe conversions. dss.Set's parent array is built from these.
//
// The zero value holds 0 and is ready to use.
type Atomic[T Idx] struct {
	v atomic.Uint64
}

// NewAtomic returns an Atomic cell initialized to val.
func NewAtomic[T Idx](val T) *Atomic[T] {
	a := &Atomic[T]{}
	a.v.Store(uint64(val))

	return a
}

// Load returns the current value.
func (a *Atomic[T]) Load() T {
	return T(a.v.Load())
}

// Store sets the value unconditionally.
func (a *Atomic[T]) Store(val T) {
	a.v.Store(uint64(val))
}

// CompareAndSwap atomically sets the value to new if it currently equals old,
// reporting whether the swap took place. Union's min-rooted linking retries
// on a failed CompareAndSwap; Find's path halving ignores the outcome.
func (a *Atomic[T]) CompareAndSwap(old, new T) bool {
	return a.v.CompareAndSwap(uint64(old), uint64(new))
}

// FetchAdd atomically adds delta to the cell and returns the value the cell
// held immediately before the add. Go's atomic.Uint64.Add is already a full
// fence in both directions, so it models the acquire-release fetch-and-add a
// chunk dispenser needs: a worker calls FetchAdd(chunkSize) on a shared
// cursor to claim the next disjoint [old, old+chunkSize) range, the same
// operation the reference implementation expresses as
// next_chunk.fetch_add(NI::new(CHUNK_SIZE), Ordering::AcqRel).
func (a *Atomic[T]) FetchAdd(delta T) T {
	return T(a.v.Add(uint64(delta)) - uint64(delta))
}
