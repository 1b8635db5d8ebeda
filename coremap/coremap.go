// Package coremap provides the default-zero-on-read core-number container
// used by the exact engines (xyprune, orderengine) and the oracle; the
// threshold engine keeps its per-threshold counters in plain maps. A node
// never explicitly assigned a
// core number reads back 0 without being materialized into the underlying
// map, per the specification's "default-zero map reads" note.
package coremap

import "github.com/katalvlaran/hypercore/hypergraph"

// Map is a core-number container: node -> nonnegative integer core number.
type Map struct {
	m map[hypergraph.Node]uint32
}

// New returns an empty Map.
func New() Map {
	return Map{m: make(map[hypergraph.Node]uint32)}
}

// Get returns c[u], or 0 if u has never been assigned a value. It never
// mutates the map.
func (c Map) Get(u hypergraph.Node) uint32 {
	return c.m[u]
}

// Set assigns c[u] = v.
func (c Map) Set(u hypergraph.Node, v uint32) {
	c.m[u] = v
}

// Inc increments c[u] and returns the new value.
func (c Map) Inc(u hypergraph.Node) uint32 {
	v := c.m[u] + 1
	c.m[u] = v
	return v
}

// Dec decrements c[u] and returns the new value. Panics if c[u] == 0: a
// well-formed trace can never decrement below zero (see spec.md §7), so
// this is a programmer-error assertion, not a recoverable condition.
func (c Map) Dec(u hypergraph.Node) uint32 {
	cur := c.m[u]
	if cur == 0 {
		panic("coremap: decrement below zero")
	}
	v := cur - 1
	c.m[u] = v
	return v
}

// Len returns the number of nodes with an explicitly materialized value.
func (c Map) Len() int {
	return len(c.m)
}

// Snapshot returns a copy of the materialized entries. Nodes never
// assigned a value (core 0) are absent, consistent with Get's default.
func (c Map) Snapshot() map[hypergraph.Node]uint32 {
	out := make(map[hypergraph.Node]uint32, len(c.m))
	for k, v := range c.m {
		out[k] = v
	}
	return out
}
