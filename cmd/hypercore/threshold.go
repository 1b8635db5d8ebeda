package main

import (
	"fmt"
	"os"
	"sort"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/hypercore/enginelog"
	"github.com/katalvlaran/hypercore/runconfig"
	"github.com/katalvlaran/hypercore/threshold"
	"github.com/katalvlaran/hypercore/updatesource"
)

func newThresholdCmd() *cobra.Command {
	var epsilon, lambda, alpha float64
	var configPath string
	var progressEvery int

	cmd := &cobra.Command{
		Use:   "threshold <trace-file>",
		Short: "Run the approximate fully-dynamic threshold-indexing engine over a trace file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			params := runconfig.DefaultThresholdParams()
			if configPath != "" {
				loaded, err := runconfig.LoadThresholdParams(configPath)
				if err != nil {
					return fmt.Errorf("loading config: %w", err)
				}
				params = loaded
			}
			if cmd.Flags().Changed("epsilon") {
				params.Epsilon = epsilon
			}
			if cmd.Flags().Changed("lambda") {
				params.Lambda = lambda
			}
			if cmd.Flags().Changed("alpha") {
				params.Alpha = alpha
			}

			f, err := os.Open(args[0])
			if err != nil {
				return fmt.Errorf("opening trace file: %w", err)
			}
			defer f.Close()

			src, err := updatesource.Load(f)
			if err != nil {
				return fmt.Errorf("parsing trace: %w", err)
			}

			numberOfNodes := src.NumberOfNodes()
			if params.NumberOfNodes > 0 {
				numberOfNodes = params.NumberOfNodes
			}
			engine, err := threshold.New(params.Epsilon, params.Lambda, params.Alpha, numberOfNodes)
			if err != nil {
				return fmt.Errorf("constructing engine: %w", err)
			}

			log := enginelog.New(os.Stderr, zerolog.InfoLevel)
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
					log.Progress("threshold", n)
				}
			}

			nodes := engine.H.Nodes()
			sort.Slice(nodes, func(i, j int) bool { return nodes[i] < nodes[j] })
			for _, u := range nodes {
				fmt.Fprintf(cmd.OutOrStdout(), "%d %d\n", u, engine.CoreApprox(u))
			}
			return nil
		},
	}

	cmd.Flags().Float64Var(&epsilon, "epsilon", 0.5, "approximation parameter")
	cmd.Flags().Float64Var(&lambda, "lambda", 0.5, "threshold growth parameter")
	cmd.Flags().Float64Var(&alpha, "alpha", 0.5, "promotion slack parameter")
	cmd.Flags().StringVar(&configPath, "config", "", "YAML file with epsilon/lambda/alpha/number_of_nodes")
	cmd.Flags().IntVar(&progressEvery, "progress-every", 0, "log progress every N updates (0 disables)")
	return cmd
}
