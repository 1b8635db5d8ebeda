// Package xyprune implements the exact fully-dynamic core-number
// maintenance engine based on XY-prune color propagation (Li et al.,
// "Efficient Core Maintenance in Large Dynamic Graphs", TKDE 2014,
// generalized here to hypergraphs). It handles both insertion and
// deletion, recomputing only the core numbers that can possibly change.
package xyprune

import (
	"math"

	"github.com/katalvlaran/hypercore/coremap"
	"github.com/katalvlaran/hypercore/hypergraph"
)

// Engine owns a hypergraph substrate and the per-node core-number map,
// maintaining c[u] exactly after every insertion or deletion. Engine is
// not safe for concurrent use: the specification requires strictly
// sequential, non-suspending processing of one update at a time.
type Engine struct {
	H *hypergraph.Hypergraph
	c coremap.Map

	candidates   map[hypergraph.Node]struct{}
	demotedNodes map[hypergraph.Node]struct{}
	visited      map[hypergraph.EdgeID]struct{}
	newEdgeID    hypergraph.EdgeID
}

// New returns an Engine over a fresh, empty hypergraph.
func New() *Engine {
	return &Engine{
		H: hypergraph.New(),
		c: coremap.New(),
	}
}

// Core returns the current core number of u.
func (e *Engine) Core(u hypergraph.Node) uint32 {
	return e.c.Get(u)
}

// Snapshot returns a copy of every node whose core number has been set.
// Nodes never assigned are absent; a node demoted back to 0 is present
// with value 0.
func (e *Engine) Snapshot() map[hypergraph.Node]uint32 {
	return e.c.Snapshot()
}

func minVal(edge hypergraph.Hyperedge, c coremap.Map) uint32 {
	m := uint32(math.MaxUint32)
	for _, w := range edge {
		if v := c.Get(w); v < m {
			m = v
		}
	}
	return m
}

func minValExcluding(edge hypergraph.Hyperedge, skip hypergraph.Node, c coremap.Map) uint32 {
	m := uint32(math.MaxUint32)
	for _, w := range edge {
		if w == skip {
			continue
		}
		if v := c.Get(w); v < m {
			m = v
		}
	}
	return m
}

// Insert inserts hyperedge e into the substrate and reconciles core
// numbers: candidates whose core number can safely rise are promoted by
// exactly one.
func (e *Engine) Insert(edge hypergraph.Hyperedge) {
	e.newEdgeID = e.H.Insert(edge)
	e.visited = make(map[hypergraph.EdgeID]struct{})
	e.candidates = make(map[hypergraph.Node]struct{})

	val := minVal(edge, e.c)
	for _, u := range edge {
		if e.c.Get(u) == val {
			e.colorInsert(u, val)
		}
	}
	e.recolor(val, false)
	for u := range e.candidates {
		e.c.Inc(u)
	}
}

// Delete removes hyperedge edge from the substrate and reconciles core
// numbers: candidates whose core number can no longer be sustained are
// demoted by exactly one. Returns hypergraph.ErrEdgeNotFound if edge is
// not currently live.
func (e *Engine) Delete(edge hypergraph.Hyperedge) error {
	if err := e.H.Delete(edge); err != nil {
		return err
	}
	e.visited = make(map[hypergraph.EdgeID]struct{})
	e.candidates = make(map[hypergraph.Node]struct{})
	e.demotedNodes = make(map[hypergraph.Node]struct{})

	val := minVal(edge, e.c)
	for _, u := range edge {
		if e.c.Get(u) != val {
			continue
		}
		x := 0
		for eid := range e.H.Incident(u) {
			inc, _ := e.H.Edge(eid)
			if minVal(inc, e.c) >= val {
				x++
			}
		}
		if uint32(x) < val {
			e.colorDelete(u, val)
		}
	}
	e.recolor(val, true)
	for u := range e.demotedNodes {
		e.c.Dec(u)
	}
	return nil
}

// colorInsert is the explicit-work-stack translation of XYPrune-color-insert.
// The original recursion has no post-order action, so an explicit LIFO
// stack preserves its semantics while bounding call-stack depth (the spec
// notes recursion depth can reach O(n)).
func (e *Engine) colorInsert(start hypergraph.Node, val uint32) {
	stack := []hypergraph.Node{start}
	queued := map[hypergraph.Node]struct{}{start: {}}

	for len(stack) > 0 {
		u := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		delete(queued, u)

		x, y := 0, 0
		for eid := range e.H.Incident(u) {
			edge, _ := e.H.Edge(eid)
			b := minValExcluding(edge, u, e.c)
			if b >= val {
				x++
			}
			if b > val && eid != e.newEdgeID {
				y++
			}
		}
		if x <= int(val) {
			continue
		}
		e.candidates[u] = struct{}{}
		if uint32(y) >= val {
			continue
		}
		for eid := range e.H.Incident(u) {
			if _, seen := e.visited[eid]; seen {
				continue
			}
			e.visited[eid] = struct{}{}
			edge, _ := e.H.Edge(eid)
			if minVal(edge, e.c) < val {
				continue
			}
			for _, w := range edge {
				if _, isCand := e.candidates[w]; isCand {
					continue
				}
				if e.c.Get(w) != val {
					continue
				}
				if _, isQueued := queued[w]; isQueued {
					continue
				}
				queued[w] = struct{}{}
				stack = append(stack, w)
			}
		}
	}
}

// colorDelete is the explicit-work-stack translation of YPrune-color-delete.
func (e *Engine) colorDelete(start hypergraph.Node, val uint32) {
	stack := []hypergraph.Node{start}
	queued := map[hypergraph.Node]struct{}{start: {}}

	for len(stack) > 0 {
		u := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		delete(queued, u)

		e.candidates[u] = struct{}{}
		y := 0
		for eid := range e.H.Incident(u) {
			edge, _ := e.H.Edge(eid)
			ok := true
			for _, w := range edge {
				if w != u && e.c.Get(w) <= val {
					ok = false
					break
				}
			}
			if ok {
				y++
			}
		}
		if uint32(y) >= val {
			continue
		}
		for eid := range e.H.Incident(u) {
			if _, seen := e.visited[eid]; seen {
				continue
			}
			e.visited[eid] = struct{}{}
			edge, _ := e.H.Edge(eid)
			if minVal(edge, e.c) < val {
				continue
			}
			for _, w := range edge {
				if _, isCand := e.candidates[w]; isCand {
					continue
				}
				if e.c.Get(w) != val {
					continue
				}
				if _, isQueued := queued[w]; isQueued {
					continue
				}
				queued[w] = struct{}{}
				stack = append(stack, w)
			}
		}
	}
}

// recolor prunes e.candidates to a stable fixpoint. For insertion
// (demote == false) a candidate is removed once its supporting edge count
// x falls to at most val; for deletion (demote == true) a candidate is
// removed (and recorded as demoted) once x falls strictly below val.
// Deleting the current key from a Go map mid-range is well-defined and not
// revisited, which reproduces the original's intra-pass erase-while-
// iterating behavior; the outer loop repeats full passes until one changes
// nothing.
func (e *Engine) recolor(val uint32, demote bool) {
	for {
		changed := false
		for u := range e.candidates {
			x := 0
			for eid := range e.H.Incident(u) {
				edge, _ := e.H.Edge(eid)
				ok := true
				for _, w := range edge {
					wv := e.c.Get(w)
					if _, isCand := e.candidates[w]; isCand {
						wv++
					}
					if wv <= val {
						ok = false
						break
					}
				}
				if ok {
					x++
				}
			}
			var remove bool
			if demote {
				remove = uint32(x) < val
			} else {
				remove = uint32(x) <= val
			}
			if remove {
				delete(e.candidates, u)
				if demote {
					e.demotedNodes[u] = struct{}{}
				}
				changed = true
			}
		}
		if !changed {
			break
		}
	}
}
