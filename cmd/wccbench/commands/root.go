package commands

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var cfg runConfig

type runConfig struct {
	Topology string
	Vertices int
	Prob     float64
	Seed     int64
	Variant  string
	Verbose  bool
}

var rootCmd = &cobra.Command{
	Use:   "wccbench",
	Short: "Benchmark weakly-connected-components variants over synthetic graphs",
	Long: `wccbench builds a synthetic directed graph and runs one of the
weakly-connected-components implementations over it, reporting the
equivalence-class count and elapsed time.`,
	RunE: runBench,
}

// Execute runs the root command, exiting the process with status 1 on error.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfg.Topology, "topology", "random-sparse", "graph topology: random-sparse, cycle, star, complete")
	rootCmd.PersistentFlags().IntVar(&cfg.Vertices, "vertices", 10000, "number of vertices")
	rootCmd.PersistentFlags().Float64Var(&cfg.Prob, "p", 0.0005, "edge probability for random-sparse topology")
	rootCmd.PersistentFlags().Int64Var(&cfg.Seed, "seed", 1, "random seed")
	rootCmd.PersistentFlags().StringVar(&cfg.Variant, "variant", "run", "wcc variant: run, single-thread, per-vertex, chunked, manual-chunked, std-threads")
	rootCmd.PersistentFlags().BoolVarP(&cfg.Verbose, "verbose", "v", false, "enable debug logging")

	_ = viper.BindPFlag("topology", rootCmd.PersistentFlags().Lookup("topology"))
	_ = viper.BindPFlag("vertices", rootCmd.PersistentFlags().Lookup("vertices"))
	_ = viper.BindPFlag("p", rootCmd.PersistentFlags().Lookup("p"))
	_ = viper.BindPFlag("seed", rootCmd.PersistentFlags().Lookup("seed"))
	_ = viper.BindPFlag("variant", rootCmd.PersistentFlags().Lookup("variant"))
	_ = viper.BindPFlag("verbose", rootCmd.PersistentFlags().Lookup("verbose"))

	viper.SetEnvPrefix("WCCBENCH")
	viper.AutomaticEnv()

	cobra.OnInitialize(func() {
		level := slog.LevelInfo
		if viper.GetBool("verbose") {
			level = slog.LevelDebug
		}
		slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

		cfg.Topology = viper.GetString("topology")
		cfg.Vertices = viper.GetInt("vertices")
		cfg.Prob = viper.GetFloat64("p")
		cfg.Seed = viper.GetInt64("seed")
		cfg.Variant = viper.GetString("variant")
	})
}
