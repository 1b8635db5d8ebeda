// Package oracle implements the static bucket-peeling k-core decomposition
// used throughout hypercore as a reference oracle for testing. It is never
// invoked on a production maintenance path, only from tests and the
// `oracle` CLI subcommand, per the specification's note that the original
// verification code is commented out and test-only.
package oracle

import (
	"container/heap"

	"github.com/katalvlaran/hypercore/coremap"
	"github.com/katalvlaran/hypercore/hypergraph"
)

// degreeHeap is an indexed min-heap of (degree, node) pairs, the same
// priority-queue idiom lvlath's Prim implementation uses for its
// candidate-edge heap, adapted here for repeated decrease-key operations.
type degreeHeap struct {
	items []heapItem
	pos   map[hypergraph.Node]int // node -> index in items
}

type heapItem struct {
	node hypergraph.Node
	deg  int
}

func (h degreeHeap) Len() int { return len(h.items) }
func (h degreeHeap) Less(i, j int) bool {
	if h.items[i].deg != h.items[j].deg {
		return h.items[i].deg < h.items[j].deg
	}
	return h.items[i].node < h.items[j].node
}
func (h degreeHeap) Swap(i, j int) {
	h.items[i], h.items[j] = h.items[j], h.items[i]
	h.pos[h.items[i].node] = i
	h.pos[h.items[j].node] = j
}
func (h *degreeHeap) Push(x any) {
	it := x.(heapItem)
	h.pos[it.node] = len(h.items)
	h.items = append(h.items, it)
}
func (h *degreeHeap) Pop() any {
	old := h.items
	n := len(old)
	it := old[n-1]
	h.items = old[:n-1]
	delete(h.pos, it.node)
	return it
}

// decreaseDegree lowers node u's degree by one and fixes the heap.
func (h *degreeHeap) decreaseDegree(u hypergraph.Node) {
	i, ok := h.pos[u]
	if !ok {
		return
	}
	h.items[i].deg--
	heap.Fix(h, i)
}

// Decompose computes the exact k-core number of every node in h from
// scratch via repeated minimum-degree peeling: extract the minimum
// (degree, node) pair, raise the running maximum if this node's degree
// exceeds it, assign that maximum as the node's core number, then "remove"
// every edge incident to it (each removed exactly once) and decrease the
// degree of every other endpoint still present.
func Decompose(h *hypergraph.Hypergraph) coremap.Map {
	c := coremap.New()

	dh := &degreeHeap{pos: make(map[hypergraph.Node]int)}
	heap.Init(dh)
	for _, u := range h.Nodes() {
		heap.Push(dh, heapItem{node: u, deg: h.Degree(u)})
	}

	erased := make(map[hypergraph.EdgeID]struct{})
	var ans uint32
	for dh.Len() > 0 {
		top := heap.Pop(dh).(heapItem)
		if uint32(top.deg) > ans {
			ans = uint32(top.deg)
		}
		c.Set(top.node, ans)

		for eid := range h.Incident(top.node) {
			if _, done := erased[eid]; done {
				continue
			}
			erased[eid] = struct{}{}
			edge, _ := h.Edge(eid)
			for _, v := range edge {
				if v == top.node {
					continue
				}
				dh.decreaseDegree(v)
			}
		}
	}
	return c
}
