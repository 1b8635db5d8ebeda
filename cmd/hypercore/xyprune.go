package main

import (
	"fmt"
	"os"
	"sort"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/hypercore/enginelog"
	"github.com/katalvlaran/hypercore/hypergraph"
	"github.com/katalvlaran/hypercore/updatesource"
	"github.com/katalvlaran/hypercore/xyprune"
)

func newXYPruneCmd() *cobra.Command {
	var progressEvery int
	cmd := &cobra.Command{
		Use:   "xyprune <trace-file>",
		Short: "Run the exact fully-dynamic XY-prune engine over a trace file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := os.Open(args[0])
			if err != nil {
				return fmt.Errorf("opening trace file: %w", err)
			}
			defer f.Close()

			src, err := updatesource.Load(f)
			if err != nil {
				return fmt.Errorf("parsing trace: %w", err)
			}

			log := enginelog.New(os.Stderr, zerolog.InfoLevel)
			engine := xyprune.New()
			n := 0
			for src.HasNext() {
				rec := src.Next()
				switch rec.Type {
				case updatesource.Insert:
					engine.Insert(rec.Edge)
				case updatesource.Delete:
					if err := engine.Delete(rec.Edge); err != nil {
						return fmt.Errorf("update %d: %w", n, err)
					}
				}
				n++
				if progressEvery > 0 && n%progressEvery == 0 {
					log.Progress("xyprune", n)
				}
			}

			printCoreNumbers(cmd, engine.Snapshot())
			return nil
		},
	}
	cmd.Flags().IntVar(&progressEvery, "progress-every", 0, "log progress every N updates (0 disables)")
	return cmd
}

func printCoreNumbers(cmd *cobra.Command, c map[hypergraph.Node]uint32) {
	nodes := make([]hypergraph.Node, 0, len(c))
	for u := range c {
		nodes = append(nodes, u)
	}
	sort.Slice(nodes, func(i, j int) bool { return nodes[i] < nodes[j] })
	for _, u := range nodes {
		fmt.Fprintf(cmd.OutOrStdout(), "%d %d\n", u, c[u])
	}
}
