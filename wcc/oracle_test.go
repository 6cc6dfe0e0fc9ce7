package wcc_test

import (
	"testing"

	"github.com/katalvlaran/wccgraph/csr"
	"github.com/katalvlaran/wccgraph/wcc"
	"github.com/stretchr/testify/require"
)

// floodFill computes weakly-connected components over an undirected view of
// the CSR graph by BFS flood-fill, independent of dss entirely. It serves
// as the oracle for property 4: wcc(G) must induce the same equivalence
// classes as a naive undirected BFS.
func floodFill(g csr.Graph[uint32]) map[uint32]int {
	n := int(g.NodeCount())
	label := make(map[uint32]int, n)
	component := 0

	for start := uint32(0); int(start) < n; start++ {
		if _, seen := label[start]; seen {
			continue
		}

		queue := []uint32{start}
		label[start] = component
		for len(queue) > 0 {
			u := queue[0]
			queue = queue[1:]
			for _, v := range g.OutNeighbors(u) {
				if _, seen := label[v]; !seen {
					label[v] = component
					queue = append(queue, v)
				}
			}
			for _, v := range g.InNeighbors(u) {
				if _, seen := label[v]; !seen {
					label[v] = component
					queue = append(queue, v)
				}
			}
		}
		component++
	}

	return label
}

func TestRunMatchesBFSFloodFillOracle(t *testing.T) {
	for _, sc := range scenarios() {
		t.Run(sc.name, func(t *testing.T) {
			g := buildGraph(t, sc.n, sc.edges)
			d := wcc.Run[uint32](g, nil)
			oracle := floodFill(g)

			sameClassDSS := func(a, b uint32) bool { return d.Find(a) == d.Find(b) }
			sameClassOracle := func(a, b uint32) bool { return oracle[a] == oracle[b] }

			for a := uint32(0); int(a) < int(sc.n); a++ {
				for b := uint32(0); int(b) < int(sc.n); b++ {
					require.Equal(t, sameClassOracle(a, b), sameClassDSS(a, b),
						"vertices %d,%d disagree between dss and flood-fill oracle", a, b)
				}
			}
		})
	}
}

func TestRunInFanWithIsolatedVertex(t *testing.T) {
	// a=0, b=1, c=2, lonely=3: a->b, c->b, lonely isolated.
	g, err := csr.Build[uint32](4, [][2]uint32{{0, 1}, {2, 1}})
	require.NoError(t, err)

	d := wcc.Run[uint32](g, nil)

	require.Equal(t, d.Find(0), d.Find(1))
	require.Equal(t, d.Find(2), d.Find(1))
	require.NotEqual(t, d.Find(0), d.Find(3))
}
