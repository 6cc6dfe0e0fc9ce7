package commands

import (
	"fmt"
	"log/slog"
	"math/rand"
	"time"

	"github.com/katalvlaran/wccgraph/csr"
	"github.com/katalvlaran/wccgraph/dss"
	"github.com/katalvlaran/wccgraph/wcc"
	"github.com/spf13/cobra"
)

func runBench(cmd *cobra.Command, args []string) error {
	cg, err := buildTopology(cfg)
	if err != nil {
		return fmt.Errorf("wccbench: %w", err)
	}
	slog.Info("graph built", "vertices", cg.NodeCount(), "topology", cfg.Topology)

	start := time.Now()
	d := runVariant(cfg.Variant, cg, rand.New(rand.NewSource(cfg.Seed)))
	elapsed := time.Since(start)

	classes := map[uint32]struct{}{}
	for u := uint32(0); u < cg.NodeCount(); u++ {
		classes[d.Find(u)] = struct{}{}
	}

	fmt.Printf("variant=%s vertices=%d components=%d elapsed=%s\n",
		cfg.Variant, cg.NodeCount(), len(classes), elapsed)

	return nil
}

func buildTopology(cfg runConfig) (*csr.Compressed[uint32], error) {
	n := uint32(cfg.Vertices)
	switch cfg.Topology {
	case "random-sparse":
		return csr.RandomSparse[uint32](n, cfg.Prob, rand.New(rand.NewSource(cfg.Seed)))
	case "cycle":
		return csr.Cycle[uint32](n)
	case "star":
		return csr.Star[uint32](n)
	case "complete":
		return csr.Complete[uint32](n)
	default:
		return nil, fmt.Errorf("unknown topology %q", cfg.Topology)
	}
}

func runVariant(name string, g *csr.Compressed[uint32], rng *rand.Rand) *dss.Set[uint32] {
	switch name {
	case "single-thread":
		return wcc.SingleThread[uint32](g)
	case "per-vertex":
		return wcc.PerVertex[uint32](g)
	case "chunked":
		return wcc.Chunked[uint32](g)
	case "manual-chunked":
		return wcc.ManualChunked[uint32](g)
	case "std-threads":
		return wcc.StdThreads[uint32](g)
	default:
		return wcc.Run[uint32](g, rng)
	}
}
