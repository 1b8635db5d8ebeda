// Package hypercore maintains the k-core decomposition of a dynamic
// hypergraph under a stream of hyperedge insertions and deletions.
//
// Three independent maintenance engines share one hypergraph substrate:
//
//	xyprune     — exact fully-dynamic engine (XY-prune color propagation),
//	              handles both insertions and deletions.
//	threshold   — approximate fully-dynamic engine (threshold indexing),
//	              maintains a (1+ε)-approximate core number via promote/
//	              demote propagation across a stack of threshold indices.
//	orderengine — exact insertion-only engine for ordinary graphs, using a
//	              per-level total order backed by a splay tree.
//
// A bucket-peeling static oracle (package oracle) recomputes core numbers
// from scratch and is used only as a reference for testing and the oracle
// CLI subcommand, never on a production update path.
//
//	hypergraph/   — edge pool, edge-ID tombstoning, per-node incidence
//	coremap/      — default-zero-on-read core-number container
//	oracle/       — static bucket-peel reference decomposition
//	xyprune/      — exact fully-dynamic engine
//	threshold/    — approximate fully-dynamic engine
//	orderengine/  — exact insertion-only engine + splay-tree order structure
//	updatesource/ — textual update-stream parsing
//	enginelog/    — structured-logging progress side channel
//	runconfig/    — YAML-backed CLI configuration
//	cmd/hypercore — CLI entry point wrapping each engine
package hypercore
