package idx_test

import (
	"sync"
	"testing"

	"github.com/katalvlaran/wccgraph/idx"
	"github.com/stretchr/testify/require"
)

func TestSatAddNoOverflow(t *testing.T) {
	require.Equal(t, uint32(30), idx.SatAdd(uint32(10), uint32(20)))
	require.Equal(t, uint64(30), idx.SatAdd(uint64(10), uint64(20)))
}

func TestSatAddSaturates(t *testing.T) {
	var maxU32 uint32 = ^uint32(0)
	require.Equal(t, maxU32, idx.SatAdd(maxU32, uint32(1)))
	require.Equal(t, maxU32, idx.SatAdd(maxU32-5, uint32(100)))

	var maxU64 uint64 = ^uint64(0)
	require.Equal(t, maxU64, idx.SatAdd(maxU64, uint64(1)))
}

func TestAtomicLoadStore(t *testing.T) {
	a := idx.NewAtomic[uint32](7)
	require.Equal(t, uint32(7), a.Load())

	a.Store(42)
	require.Equal(t, uint32(42), a.Load())
}

func TestAtomicCompareAndSwap(t *testing.T) {
	a := idx.NewAtomic[uint64](1)

	require.False(t, a.CompareAndSwap(999, 2), "CAS with wrong expectation must fail")
	require.Equal(t, uint64(1), a.Load())

	require.True(t, a.CompareAndSwap(1, 2))
	require.Equal(t, uint64(2), a.Load())
}

// TestAtomicConcurrentCAS hammers a single cell with competing CAS-retry
// loops and checks every increment is accounted for.
func TestAtomicConcurrentCAS(t *testing.T) {
	a := idx.NewAtomic[uint64](0)
	const goroutines = 64
	const incrementsEach = 200

	var wg sync.WaitGroup
	wg.Add(goroutines)
	for g := 0; g < goroutines; g++ {
		go func() {
			defer wg.Done()
			for i := 0; i < incrementsEach; i++ {
				for {
					old := a.Load()
					if a.CompareAndSwap(old, old+1) {
						break
					}
				}
			}
		}()
	}
	wg.Wait()

	require.Equal(t, uint64(goroutines*incrementsEach), a.Load())
}

func TestAtomicFetchAdd(t *testing.T) {
	a := idx.NewAtomic[uint32](10)

	require.Equal(t, uint32(10), a.FetchAdd(5), "FetchAdd must return the pre-add value")
	require.Equal(t, uint32(15), a.Load())
}

// TestAtomicFetchAddDispensesDisjointRanges exercises FetchAdd as a chunk
// dispenser: concurrent callers claiming chunkSize-sized ranges from a
// shared cursor must never observe an overlapping [start, start+chunkSize)
// range.
func TestAtomicFetchAddDispensesDisjointRanges(t *testing.T) {
	const chunkSize = uint32(8)
	const chunks = 50
	cursor := idx.NewAtomic[uint32](0)

	seen := make([]bool, chunks*int(chunkSize))
	var wg sync.WaitGroup
	var mu sync.Mutex
	wg.Add(chunks)
	for i := 0; i < chunks; i++ {
		go func() {
			defer wg.Done()
			start := cursor.FetchAdd(chunkSize)
			mu.Lock()
			for i := start; i < start+chunkSize; i++ {
				require.False(t, seen[i], "chunk starting at %d overlaps a previously dispensed chunk", start)
				seen[i] = true
			}
			mu.Unlock()
		}()
	}
	wg.Wait()

	for i, s := range seen {
		require.True(t, s, "index %d never dispensed", i)
	}
}

func TestMin(t *testing.T) {
	require.Equal(t, uint32(3), idx.Min(uint32(3), uint32(7)))
	require.Equal(t, uint32(3), idx.Min(uint32(7), uint32(3)))
	require.Equal(t, uint64(0), idx.Min(uint64(0), uint64(0)))
}
