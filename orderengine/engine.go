package orderengine

import (
	"container/list"

	"github.com/katalvlaran/hypercore/coremap"
	"github.com/katalvlaran/hypercore/hypergraph"
)

// change records a deferred splice of data structure A[K]: node must be
// moved to sit immediately after predecessor (or at the front, if
// hasPredecessor is false) once the current OrderInsert pass finishes
// rewriting O[K], matching the source's changesInA post-pass.
type change struct {
	node           hypergraph.Node
	predecessor    hypergraph.Node
	hasPredecessor bool
}

// Engine maintains the order-based exact core-number decomposition for
// ordinary (arity-2) graphs under insertion only, per spec.md §4.5. It is
// not safe for concurrent use.
type Engine struct {
	H *hypergraph.Hypergraph
	c coremap.Map

	O       []*list.List // O[K]: nodes with c[u] == K, in maintenance order
	iterToO map[hypergraph.Node]*list.Element

	A          []*Tree // A[K]: splay tree mirroring O[K]'s order
	pointerToA map[hypergraph.Node]*Handle

	VC       *list.List // candidate list for the level currently being processed
	iterToVC map[hypergraph.Node]*list.Element

	B *bHeap

	degPlus, degStar map[hypergraph.Node]int
	changesInA       []change
}

// New returns an Engine over a fresh, empty hypergraph.
func New() *Engine {
	return &Engine{
		H:          hypergraph.New(),
		c:          coremap.New(),
		O:          []*list.List{list.New()},
		iterToO:    make(map[hypergraph.Node]*list.Element),
		A:          []*Tree{NewTree()},
		pointerToA: make(map[hypergraph.Node]*Handle),
		VC:         list.New(),
		iterToVC:   make(map[hypergraph.Node]*list.Element),
		B:          newBHeap(),
		degPlus:    make(map[hypergraph.Node]int),
		degStar:    make(map[hypergraph.Node]int),
	}
}

// Core returns the current core number of u.
func (e *Engine) Core(u hypergraph.Node) uint32 { return e.c.Get(u) }

// Snapshot returns every node with a nonzero core number.
func (e *Engine) Snapshot() map[hypergraph.Node]uint32 { return e.c.Snapshot() }

func otherEndpoint(edge hypergraph.Hyperedge, v hypergraph.Node) hypergraph.Node {
	return edge[0] ^ edge[1] ^ v
}

func (e *Engine) ensureLevel(k int) {
	for len(e.O) <= k {
		e.O = append(e.O, list.New())
	}
	for len(e.A) <= k {
		e.A = append(e.A, NewTree())
	}
}

// materialize gives u a presence in O[0]/A[0] the first time it is seen,
// mirroring the source's `if (pointerToA[u] == NULL)` guard.
func (e *Engine) materialize(u hypergraph.Node) {
	if e.pointerToA[u] != nil {
		return
	}
	elem := e.O[0].PushFront(u)
	e.iterToO[u] = elem
	h := NewHandle(u)
	e.pointerToA[u] = h
	e.A[0].InsertAfter(h, e.A[0].Begin())
}

// insertBeforeOrEnd inserts v into O[k] immediately before iter, or at the
// back if iter is nil (the Go analogue of the source's O[K].end()).
func (e *Engine) insertBeforeOrEnd(k int, iter *list.Element, v hypergraph.Node) *list.Element {
	if iter == nil {
		return e.O[k].PushBack(v)
	}
	return e.O[k].InsertBefore(v, iter)
}

// Insert performs Algorithm 2 (OrderInsert) from the source: it inserts
// edge into the substrate, then grows the core number of every node in the
// fan-out of candidates reachable from the lesser-ranked endpoint whose
// degPlus exceeds the shared core level K.
//
// Insert rejects edge unless it has exactly two endpoints — the order-based
// engine supports ordinary graphs only.
func (e *Engine) Insert(edge hypergraph.Hyperedge) error {
	if len(edge) != 2 {
		return ErrNotOrdinaryEdge
	}
	e.materialize(edge[0])
	e.materialize(edge[1])
	e.H.Insert(edge)

	u, v := edge[0], edge[1]
	cu, cv := e.c.Get(u), e.c.Get(v)
	K := cu
	if cv < K {
		K = cv
	}
	if cu > cv || (cu == cv && e.A[int(cu)].Rank(e.pointerToA[u]) > e.A[int(cv)].Rank(e.pointerToA[v])) {
		u, v = v, u
	}
	e.degPlus[u]++
	if e.degPlus[u] <= int(K) {
		return nil
	}

	e.B.Add(e.A[int(K)].Rank(e.pointerToA[u]), u)

	elem := e.O[int(K)].Front()
loop:
	for elem != nil {
		cur := elem.Value.(hypergraph.Node)
		switch {
		case e.degStar[cur]+e.degPlus[cur] > int(K): // Case 1
			next := elem.Next()
			e.O[int(K)].Remove(elem)
			delete(e.iterToO, cur)
			ve := e.VC.PushBack(cur)
			e.iterToVC[cur] = ve
			for eid := range e.H.Incident(cur) {
				inc, _ := e.H.Edge(eid)
				w := otherEndpoint(inc, cur)
				if e.c.Get(w) == K && e.A[int(K)].Rank(e.pointerToA[cur]) < e.A[int(K)].Rank(e.pointerToA[w]) {
					if e.degStar[w] == 0 {
						e.B.Add(e.A[int(K)].Rank(e.pointerToA[w]), w)
					}
					e.degStar[w]++
				}
			}
			elem = next
		case e.degStar[cur] == 0: // Case 2a
			if e.B.Len() == 0 {
				break loop
			}
			top, _ := e.B.Min()
			elem = e.iterToO[top.node]
		default: // Case 2b
			e.degPlus[cur] += e.degStar[cur]
			e.degStar[cur] = 0
			elem = elem.Next()
			e.removeCandidates(elem, cur, K)
		}
		if top, ok := e.B.Min(); ok && e.A[int(K)].Rank(e.pointerToA[cur]) >= top.rank {
			e.B.PopMin()
		}
	}

	for el := e.VC.Front(); el != nil; el = el.Next() {
		w := el.Value.(hypergraph.Node)
		e.degStar[w] = 0
		e.c.Inc(w)
	}

	e.ensureLevel(int(K) + 1)
	for el := e.VC.Back(); el != nil; el = el.Prev() {
		w := el.Value.(hypergraph.Node)
		newElem := e.O[int(K)+1].PushFront(w)
		e.iterToO[w] = newElem
		e.A[int(K)].Del(e.pointerToA[w])
		e.A[int(K)+1].InsertAfter(e.pointerToA[w], e.A[int(K)+1].Begin())
	}

	for _, ch := range e.changesInA {
		e.A[int(K)].Del(e.pointerToA[ch.node])
		pivot := e.A[int(K)].Begin()
		if ch.hasPredecessor {
			pivot = e.pointerToA[ch.predecessor]
		}
		e.A[int(K)].InsertAfter(e.pointerToA[ch.node], pivot)
	}
	e.changesInA = e.changesInA[:0]

	e.VC.Init()
	for k := range e.iterToVC {
		delete(e.iterToVC, k)
	}
	return nil
}

// removeCandidates is Algorithm 3 (RemoveCandidates) from the source: when
// a candidate's counters fall below K it and any transitively-affected
// candidates are un-promoted back into O[K], ahead of iter. (The source
// additionally threads a currPosInA splay handle through this call that its
// own body never reads; this translation drops that dead parameter.)
func (e *Engine) removeCandidates(iter *list.Element, w hypergraph.Node, K uint32) {
	queue := make([]hypergraph.Node, 0)
	queued := make(map[hypergraph.Node]struct{})

	for eid := range e.H.Incident(w) {
		inc, _ := e.H.Edge(eid)
		w2 := otherEndpoint(inc, w)
		if _, ok := e.iterToVC[w2]; !ok {
			continue
		}
		e.degPlus[w2]--
		if e.degPlus[w2]+e.degStar[w2] <= int(K) {
			queue = append(queue, w2)
			queued[w2] = struct{}{}
		}
	}

	for len(queue) > 0 {
		w2 := queue[0]
		queue = queue[1:]
		delete(queued, w2)

		e.degPlus[w2] += e.degStar[w2]
		e.degStar[w2] = 0
		e.VC.Remove(e.iterToVC[w2])
		delete(e.iterToVC, w2)

		newElem := e.insertBeforeOrEnd(int(K), iter, w2)
		e.iterToO[w2] = newElem
		if pred := newElem.Prev(); pred != nil {
			e.changesInA = append(e.changesInA, change{node: w2, predecessor: pred.Value.(hypergraph.Node), hasPredecessor: true})
		} else {
			e.changesInA = append(e.changesInA, change{node: w2})
		}

		for eid := range e.H.Incident(w2) {
			inc, _ := e.H.Edge(eid)
			w3 := otherEndpoint(inc, w2)
			if e.c.Get(w3) != K {
				continue
			}
			if e.A[int(K)].Rank(e.pointerToA[w]) < e.A[int(K)].Rank(e.pointerToA[w3]) {
				e.degStar[w3]--
				if e.degStar[w3] == 0 {
					e.B.Remove(w3)
				}
				continue
			}
			if _, ok := e.iterToVC[w3]; !ok {
				continue
			}
			if e.A[int(K)].Rank(e.pointerToA[w2]) < e.A[int(K)].Rank(e.pointerToA[w3]) {
				e.degStar[w3]--
			} else {
				e.degPlus[w3]--
			}
			if e.degPlus[w3]+e.degStar[w3] <= int(K) {
				if _, already := queued[w3]; !already {
					queue = append(queue, w3)
					queued[w3] = struct{}{}
				}
			}
		}
	}
}
