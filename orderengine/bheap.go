package orderengine

import (
	"container/heap"

	"github.com/katalvlaran/hypercore/hypergraph"
)

// bEntry is one (rank, node) pair as stored in spec.md §4.5's data
// structure B, a priority structure ordered by rank.
type bEntry struct {
	rank int
	node hypergraph.Node
}

// bHeap is an indexed min-heap of (rank, node) pairs, the same
// position-indexed container/heap idiom oracle's degreeHeap uses for
// repeated remove-by-key operations, used here in place of the source's
// std::set<pair<int,Node>> (Go has no ordered-set container). Remove
// drops a node's entry regardless of the rank it was inserted under,
// which is the Go-idiomatic equivalent of the source's pair-based erase:
// both only ever target the single live entry a given node can hold in B.
type bHeap struct {
	items []bEntry
	pos   map[hypergraph.Node]int
}

func newBHeap() *bHeap {
	return &bHeap{pos: make(map[hypergraph.Node]int)}
}

func (h bHeap) Len() int { return len(h.items) }
func (h bHeap) Less(i, j int) bool {
	if h.items[i].rank != h.items[j].rank {
		return h.items[i].rank < h.items[j].rank
	}
	return h.items[i].node < h.items[j].node
}
func (h bHeap) Swap(i, j int) {
	h.items[i], h.items[j] = h.items[j], h.items[i]
	h.pos[h.items[i].node] = i
	h.pos[h.items[j].node] = j
}
func (h *bHeap) Push(x any) {
	e := x.(bEntry)
	h.pos[e.node] = len(h.items)
	h.items = append(h.items, e)
}
func (h *bHeap) Pop() any {
	old := h.items
	n := len(old)
	e := old[n-1]
	h.items = old[:n-1]
	delete(h.pos, e.node)
	return e
}

// Add inserts (rank, node) into B. The caller must ensure node does not
// already hold a live entry (B only ever holds a node while its degStar
// counter is positive).
func (h *bHeap) Add(rank int, node hypergraph.Node) {
	heap.Push(h, bEntry{rank: rank, node: node})
}

// Remove drops node's entry from B, if present.
func (h *bHeap) Remove(node hypergraph.Node) {
	i, ok := h.pos[node]
	if !ok {
		return
	}
	heap.Remove(h, i)
}

// Min returns the lowest-rank entry without removing it.
func (h *bHeap) Min() (bEntry, bool) {
	if len(h.items) == 0 {
		return bEntry{}, false
	}
	return h.items[0], true
}

// PopMin removes the lowest-rank entry.
func (h *bHeap) PopMin() {
	if len(h.items) == 0 {
		return
	}
	heap.Pop(h)
}
