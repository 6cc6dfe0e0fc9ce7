package csr_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/wccgraph/csr"
	"github.com/stretchr/testify/require"
)

func TestCycleShapeAndConnectivity(t *testing.T) {
	g, err := csr.Cycle[uint32](5)
	require.NoError(t, err)
	require.EqualValues(t, 5, g.NodeCount())

	for u := uint32(0); u < 5; u++ {
		require.EqualValues(t, 2, g.OutDegree(u), "vertex %d", u)
	}
	require.ElementsMatch(t, []uint32{1, 4}, g.OutNeighbors(0))
}

func TestCycleTooFewVertices(t *testing.T) {
	_, err := csr.Cycle[uint32](2)
	require.ErrorIs(t, err, csr.ErrTooFewVertices)
}

func TestStarHubDegree(t *testing.T) {
	g, err := csr.Star[uint32](6)
	require.NoError(t, err)
	require.EqualValues(t, 6, g.NodeCount())
	require.EqualValues(t, 5, g.OutDegree(0))
	for leaf := uint32(1); leaf < 6; leaf++ {
		require.EqualValues(t, 1, g.OutDegree(leaf), "leaf %d", leaf)
	}
}

func TestStarTooFewVertices(t *testing.T) {
	_, err := csr.Star[uint32](1)
	require.ErrorIs(t, err, csr.ErrTooFewVertices)
}

func TestCompleteEveryPairConnected(t *testing.T) {
	const n = 5
	g, err := csr.Complete[uint32](n)
	require.NoError(t, err)
	require.EqualValues(t, n, g.NodeCount())

	for u := uint32(0); u < n; u++ {
		require.EqualValues(t, n-1, g.OutDegree(u), "vertex %d", u)
	}
}

func TestRandomSparseDeterministicForSeed(t *testing.T) {
	g1, err := csr.RandomSparse[uint32](200, 0.05, rand.New(rand.NewSource(42)))
	require.NoError(t, err)
	g2, err := csr.RandomSparse[uint32](200, 0.05, rand.New(rand.NewSource(42)))
	require.NoError(t, err)

	for u := uint32(0); u < 200; u++ {
		require.Equal(t, g1.OutNeighbors(u), g2.OutNeighbors(u), "vertex %d", u)
	}
}

func TestRandomSparseInvalidProbability(t *testing.T) {
	_, err := csr.RandomSparse[uint32](5, 1.5, nil)
	require.ErrorIs(t, err, csr.ErrInvalidProbability)

	_, err = csr.RandomSparse[uint32](5, -0.1, nil)
	require.ErrorIs(t, err, csr.ErrInvalidProbability)
}

func TestRandomSparseZeroProbabilityYieldsNoEdges(t *testing.T) {
	g, err := csr.RandomSparse[uint32](10, 0, nil)
	require.NoError(t, err)
	for u := uint32(0); u < 10; u++ {
		require.Empty(t, g.OutNeighbors(u))
	}
}

func TestRandomSparseOneYieldsComplete(t *testing.T) {
	const n = 8
	g, err := csr.RandomSparse[uint32](n, 1, nil)
	require.NoError(t, err)
	for u := uint32(0); u < n; u++ {
		require.EqualValues(t, n-1, g.OutDegree(u), "vertex %d", u)
	}
}
