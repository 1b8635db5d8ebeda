// Package hypergraph implements the arena-backed hypergraph substrate that
// every maintenance engine in hypercore mutates: a tombstoned edge pool
// indexed by stable edge IDs, a multimap from hyperedge value to live IDs,
// and per-node incidence sets.
package hypergraph

import (
	"strconv"
	"strings"
)

// Node is an unsigned node identifier. Nodes are created implicitly on
// first appearance in an inserted hyperedge and are never explicitly
// removed.
type Node uint32

// EdgeID is a stable, monotonically increasing identifier for a hyperedge
// occupying a slot in the edge pool. IDs of deleted edges are never reused.
type EdgeID uint64

// Hyperedge is an ordered tuple of node IDs. The source canonicalizes by
// sorting ascending before insertion; the substrate itself treats the
// tuple verbatim and never reorders it.
type Hyperedge []Node

// clone returns an independent copy of e.
func (e Hyperedge) clone() Hyperedge {
	out := make(Hyperedge, len(e))
	copy(out, e)
	return out
}

// key returns a canonical string encoding of e suitable for use as a
// multimap key. Node values are uint32 and separated by a byte ('|') that
// cannot appear in a decimal encoding, so distinct slices never collide.
func (e Hyperedge) key() string {
	var b strings.Builder
	for i, u := range e {
		if i > 0 {
			b.WriteByte('|')
		}
		b.WriteString(strconv.FormatUint(uint64(u), 10))
	}
	return b.String()
}

// HyperedgeHash computes an order-sensitive hash of e using the mixing
// step named in the specification: seed starts at len(e) and each element
// is folded in with `seed ^= v + 0x9e3779b9 + (seed<<6) + (seed>>2)`. It is
// exported for callers (tests, dedup sanity checks) that want a compact
// fingerprint without retaining the full slice.
func HyperedgeHash(e Hyperedge) uint64 {
	seed := uint64(len(e))
	for _, v := range e {
		seed ^= uint64(v) + 0x9e3779b9 + (seed << 6) + (seed >> 2)
	}
	return seed
}

// slot is one entry in the edge pool. A tombstoned slot has live == false
// and an empty Edge; its EdgeID remains permanently assigned and is never
// reused or enumerated via eList.
type slot struct {
	edge Hyperedge
	live bool
}

// Hypergraph is the shared substrate. It exclusively owns edge storage;
// engines hold it by reference during the processing of a single update
// and never concurrently. Hypergraph is not safe for concurrent use.
type Hypergraph struct {
	edgePool      []slot
	edge2id       map[string][]EdgeID
	eList         map[Node]map[EdgeID]struct{}
	nEdges        int
	edgeIDCounter EdgeID
}

// New returns an empty Hypergraph.
func New() *Hypergraph {
	return &Hypergraph{
		edge2id: make(map[string][]EdgeID),
		eList:   make(map[Node]map[EdgeID]struct{}),
	}
}

// NEdges returns the number of live (non-tombstoned) edges.
func (h *Hypergraph) NEdges() int { return h.nEdges }

// Insert appends e to the edge pool, assigns the next edge ID, indexes it
// under every endpoint's incidence set, and records it in the edge2id
// multimap. It returns the new ID.
func (h *Hypergraph) Insert(e Hyperedge) EdgeID {
	id := h.edgeIDCounter
	h.edgeIDCounter++

	stored := e.clone()
	h.edgePool = append(h.edgePool, slot{edge: stored, live: true})
	h.edge2id[stored.key()] = append(h.edge2id[stored.key()], id)
	for _, u := range stored {
		if h.eList[u] == nil {
			h.eList[u] = make(map[EdgeID]struct{})
		}
		h.eList[u][id] = struct{}{}
	}
	h.nEdges++
	return id
}

// Delete removes one edge with value e from the substrate: it finds any
// one matching live ID, removes it from every endpoint's incidence set,
// tombstones its pool slot, and drops that ID from the edge2id multimap.
// It returns ErrEdgeNotFound if no live edge matches e.
func (h *Hypergraph) Delete(e Hyperedge) error {
	k := e.key()
	ids := h.edge2id[k]
	if len(ids) == 0 {
		return ErrEdgeNotFound
	}
	id := ids[len(ids)-1]

	edge := h.edgePool[id].edge
	for _, u := range edge {
		delete(h.eList[u], id)
		if len(h.eList[u]) == 0 {
			delete(h.eList, u)
		}
	}
	h.edgePool[id] = slot{}

	if len(ids) == 1 {
		delete(h.edge2id, k)
	} else {
		h.edge2id[k] = ids[:len(ids)-1]
	}
	h.nEdges--
	return nil
}

// Edge returns the hyperedge stored at id and whether that slot is live.
func (h *Hypergraph) Edge(id EdgeID) (Hyperedge, bool) {
	if int(id) >= len(h.edgePool) {
		return nil, false
	}
	s := h.edgePool[id]
	return s.edge, s.live
}

// Incident returns the set of live edge IDs currently incident to u. The
// returned map must not be mutated by the caller.
func (h *Hypergraph) Incident(u Node) map[EdgeID]struct{} {
	return h.eList[u]
}

// Degree returns the number of live edges incident to u.
func (h *Hypergraph) Degree(u Node) int {
	return len(h.eList[u])
}

// Nodes returns every node with at least one live incident edge. Order is
// unspecified.
func (h *Hypergraph) Nodes() []Node {
	out := make([]Node, 0, len(h.eList))
	for u := range h.eList {
		out = append(out, u)
	}
	return out
}
