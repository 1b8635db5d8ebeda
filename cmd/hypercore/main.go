// Command hypercore is the CLI surface for hypercore's maintenance
// engines: each subcommand reads a trace file through updatesource and
// drives one engine to completion, printing final core numbers. Exit code
// 0 on normal completion, non-zero with a message on parse/engine failure.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "hypercore",
		Short: "Dynamic k-core decomposition over a hypergraph update stream",
		Long: `hypercore maintains the k-core decomposition of a dynamic hypergraph
under a stream of hyperedge insertions and deletions, via three independent
maintenance engines:

  xyprune     exact fully-dynamic engine (insertions and deletions)
  threshold   approximate fully-dynamic engine ((1+epsilon)-approximate)
  orderengine exact insertion-only engine (ordinary graphs only)
  oracle      static reference decomposition (recompute from scratch)`,
	}

	rootCmd.AddCommand(
		newXYPruneCmd(),
		newThresholdCmd(),
		newOrderEngineCmd(),
		newOracleCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
