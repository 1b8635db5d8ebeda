package main

import (
	"fmt"
	"os"
	"sort"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/hypercore/hypergraph"
	"github.com/katalvlaran/hypercore/oracle"
	"github.com/katalvlaran/hypercore/updatesource"
)

// newOracleCmd replays the whole trace against the substrate once and
// recomputes core numbers from scratch via bucket-peeling. It is a
// reference tool only: oracle.Decompose is never called from a production
// update loop, only here and in tests.
func newOracleCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "oracle <trace-file>",
		Short: "Replay a trace and compute core numbers from scratch via bucket-peeling",
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

			h := hypergraph.New()
			n := 0
			for src.HasNext() {
				rec := src.Next()
				switch rec.Type {
				case updatesource.Insert:
					h.Insert(rec.Edge)
				case updatesource.Delete:
					if err := h.Delete(rec.Edge); err != nil {
						return fmt.Errorf("update %d: %w", n, err)
					}
				}
				n++
			}

			c := oracle.Decompose(h)
			nodes := h.Nodes()
			sort.Slice(nodes, func(i, j int) bool { return nodes[i] < nodes[j] })
			for _, u := range nodes {
				fmt.Fprintf(cmd.OutOrStdout(), "%d %d\n", u, c.Get(u))
			}
			return nil
		},
	}
	return cmd
}
