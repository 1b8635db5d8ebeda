package main

import (
	"fmt"
	"os"
	"sort"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/hypercore/enginelog"
	"github.com/katalvlaran/hypercore/orderengine"
	"github.com/katalvlaran/hypercore/updatesource"
)

func newOrderEngineCmd() *cobra.Command {
	var progressEvery int
	cmd := &cobra.Command{
		Use:   "orderengine <trace-file>",
		Short: "Run the exact insertion-only order-based engine over an ordinary-graph trace file",
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
			engine := orderengine.New()
			n := 0
			for src.HasNext() {
				rec := src.Next()
				if rec.Type != updatesource.Insert {
					return fmt.Errorf("update %d: orderengine supports insertions only", n)
				}
				if err := engine.Insert(rec.Edge); err != nil {
					return fmt.Errorf("update %d: %w", n, err)
				}
				n++
				if progressEvery > 0 && n%progressEvery == 0 {
					log.Progress("orderengine", n)
				}
			}

			nodes := engine.H.Nodes()
			sort.Slice(nodes, func(i, j int) bool { return nodes[i] < nodes[j] })
			for _, u := range nodes {
				fmt.Fprintf(cmd.OutOrStdout(), "%d %d\n", u, engine.Core(u))
			}
			return nil
		},
	}
	cmd.Flags().IntVar(&progressEvery, "progress-every", 0, "log progress every N updates (0 disables)")
	return cmd
}
