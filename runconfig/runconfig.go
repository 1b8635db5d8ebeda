// Package runconfig loads the small YAML-backed configuration the CLI
// binaries accept for the threshold engine's tunables, so a ε/λ/α
// combination can be saved to a file instead of repeated as flags on every
// invocation.
package runconfig

import (
	"os"

	"gopkg.in/yaml.v3"
)

// ThresholdParams mirrors threshold.New's three tunables, plus an optional
// node-count hint that overrides the value the update source would
// otherwise compute (useful when running against a prefix of a larger
// trace than the file on disk).
type ThresholdParams struct {
	Epsilon       float64 `yaml:"epsilon"`
	Lambda        float64 `yaml:"lambda"`
	Alpha         float64 `yaml:"alpha"`
	NumberOfNodes uint32  `yaml:"number_of_nodes,omitempty"`
}

// DefaultThresholdParams returns a conservative starting parameter set
// (ε=0.5, λ=0.5, α=0.5) used when no config file or CLI flag overrides it.
func DefaultThresholdParams() ThresholdParams {
	return ThresholdParams{Epsilon: 0.5, Lambda: 0.5, Alpha: 0.5}
}

// LoadThresholdParams reads and unmarshals a YAML file at path, starting
// from DefaultThresholdParams so a file that only overrides one field
// leaves the others at their defaults.
func LoadThresholdParams(path string) (ThresholdParams, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return ThresholdParams{}, err
	}
	p := DefaultThresholdParams()
	if err := yaml.Unmarshal(data, &p); err != nil {
		return ThresholdParams{}, err
	}
	return p, nil
}
