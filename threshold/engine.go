// Package threshold implements the approximate fully-dynamic core-number
// maintenance engine: a stack of per-threshold level functions maintained
// via promote/demote propagation, giving a (1+ε)-approximate core number
// for every node after each update.
package threshold

import (
	"math"

	"github.com/katalvlaran/hypercore/hypergraph"
)

// Engine maintains the threshold-indexing approximation scheme described
// in the specification. It is not safe for concurrent use.
type Engine struct {
	H *hypergraph.Hypergraph

	epsilon, lambda, alpha float64
	tau                    int

	thresholds []uint32
	l, b, a    []map[hypergraph.Node]int
}

// New constructs an Engine. numberOfNodes is the update source's upper
// bound on distinct node IDs, used to derive the level cap τ. Returns
// ErrInvalidParameter if epsilon, lambda, or alpha is not strictly
// positive, per the builder-package idiom of validating at construction
// time rather than panicking on a hot path.
func New(epsilon, lambda, alpha float64, numberOfNodes uint32) (*Engine, error) {
	if epsilon <= 0 || lambda <= 0 || alpha <= 0 {
		return nil, ErrInvalidParameter
	}
	n := numberOfNodes
	if n < 1 {
		n = 1
	}
	tau := int(math.Ceil(0.15 * math.Log(float64(n)) / math.Log(1.0+epsilon)))
	if tau < 1 {
		tau = 1
	}
	return &Engine{
		H:          hypergraph.New(),
		epsilon:    epsilon,
		lambda:     lambda,
		alpha:      alpha,
		tau:        tau,
		thresholds: []uint32{0},
		l:          []map[hypergraph.Node]int{{}},
		b:          []map[hypergraph.Node]int{{}},
		a:          []map[hypergraph.Node]int{{}},
	}, nil
}

// Tau returns the level cap derived at construction time.
func (e *Engine) Tau() int { return e.tau }

// Thresholds returns a copy of the current threshold vector β₀ < β₁ < ….
func (e *Engine) Thresholds() []uint32 {
	out := make([]uint32, len(e.thresholds))
	copy(out, e.thresholds)
	return out
}

// CoreApprox returns the (1+ε)-approximate core number of u: the largest
// threshold β_p such that ℓ_p[u] ≥ τ.
func (e *Engine) CoreApprox(u hypergraph.Node) uint32 {
	p, q := 0, len(e.thresholds)
	for p+1 < q {
		m := (p + q) >> 1
		if e.l[m][u] < e.tau {
			q = m
		} else {
			p = m
		}
	}
	return e.thresholds[p]
}

func edgeLevel(edge hypergraph.Hyperedge, lvl map[hypergraph.Node]int) int {
	m := math.MaxInt32
	for _, v := range edge {
		if lvl[v] < m {
			m = lvl[v]
		}
	}
	return m
}

func edgeLevelExcluding(edge hypergraph.Hyperedge, skip hypergraph.Node, lvl map[hypergraph.Node]int) int {
	m := math.MaxInt32
	for _, v := range edge {
		if v == skip {
			continue
		}
		if lvl[v] < m {
			m = lvl[v]
		}
	}
	return m
}

func pickOne(set map[hypergraph.Node]struct{}) hypergraph.Node {
	for u := range set {
		return u
	}
	panic("threshold: pickOne called on empty set")
}

// Insert inserts edge into the substrate and propagates promotions across
// every threshold index, growing the threshold stack when the topmost
// index saturates at τ.
func (e *Engine) Insert(edge hypergraph.Hyperedge) {
	e.H.Insert(edge)

	bad := make(map[hypergraph.Node]struct{})
	originalSize := len(e.thresholds)

	for i := 0; i < len(e.thresholds); i++ {
		beta := e.thresholds[i]
		if i < originalSize {
			lE := edgeLevel(edge, e.l[i])
			for _, u := range edge {
				if lE >= e.l[i][u] {
					e.b[i][u]++
					bad[u] = struct{}{}
				}
				if lE >= e.l[i][u]-1 {
					e.a[i][u]++
				}
			}
		} else {
			for _, u := range e.H.Nodes() {
				e.b[i][u] = e.H.Degree(u)
				bad[u] = struct{}{}
			}
		}

		for len(bad) > 0 {
			u := pickOne(bad)
			threshold := int(math.Ceil(e.alpha * float64(beta)))
			if e.l[i][u] < e.tau && e.b[i][u] >= threshold {
				e.promote(i, u, bad)
				last := len(e.thresholds) - 1
				if i == last && e.l[i][u] == e.tau {
					e.growThresholds()
				}
			} else {
				delete(bad, u)
			}
		}
	}
}

// growThresholds appends β_{k+1} := max(⌈(1+λ)·β_k⌉, β_k+1) and extends
// the per-threshold level arrays.
func (e *Engine) growThresholds() {
	last := e.thresholds[len(e.thresholds)-1]
	grown := uint32(math.Ceil(float64(last) * (1.0 + e.lambda)))
	next := grown
	if next <= last {
		next = last + 1
	}
	e.thresholds = append(e.thresholds, next)
	e.l = append(e.l, map[hypergraph.Node]int{})
	e.b = append(e.b, map[hypergraph.Node]int{})
	e.a = append(e.a, map[hypergraph.Node]int{})
}

// promote raises node u's level at threshold index i by one and updates
// every neighbor's bad/almost-bad counters to match the new edge levels.
func (e *Engine) promote(i int, u hypergraph.Node, bad map[hypergraph.Node]struct{}) {
	oldLU := e.l[i][u]
	e.l[i][u]++
	e.updateBAndA(i, u)

	for eid := range e.H.Incident(u) {
		edge, _ := e.H.Edge(eid)
		others := edgeLevelExcluding(edge, u, e.l[i])
		newLE := min(others, e.l[i][u])
		oldLE := min(others, oldLU)
		if newLE == oldLE {
			continue
		}
		for _, v := range edge {
			lv := e.l[i][v]
			if oldLE < lv && lv <= newLE {
				e.b[i][v]++
				bad[v] = struct{}{}
			}
			if oldLE < lv-1 && lv-1 <= newLE {
				e.a[i][v]++
			}
		}
	}
}

// Delete removes edge from the substrate and propagates demotions across
// every threshold index. Returns hypergraph.ErrEdgeNotFound if edge is not
// currently live.
func (e *Engine) Delete(edge hypergraph.Hyperedge) error {
	if err := e.H.Delete(edge); err != nil {
		return err
	}

	bad := make(map[hypergraph.Node]struct{})
	for i := 0; i < len(e.thresholds); i++ {
		beta := e.thresholds[i]
		lE := edgeLevel(edge, e.l[i])
		for _, u := range edge {
			if lE >= e.l[i][u] {
				e.b[i][u]--
			}
			if lE >= e.l[i][u]-1 {
				e.a[i][u]--
				bad[u] = struct{}{}
			}
		}

		for len(bad) > 0 {
			u := pickOne(bad)
			if e.l[i][u] > 0 && e.a[i][u] < int(beta) {
				e.demote(i, u, bad)
			} else {
				delete(bad, u)
			}
		}
	}
	return nil
}

// demote lowers node u's level at threshold index i by one, mirroring
// promote with decrements.
func (e *Engine) demote(i int, u hypergraph.Node, bad map[hypergraph.Node]struct{}) {
	oldLU := e.l[i][u]
	e.l[i][u]--
	e.updateBAndA(i, u)

	for eid := range e.H.Incident(u) {
		edge, _ := e.H.Edge(eid)
		others := edgeLevelExcluding(edge, u, e.l[i])
		newLE := min(others, e.l[i][u])
		oldLE := min(others, oldLU)
		if newLE == oldLE {
			continue
		}
		for _, v := range edge {
			lv := e.l[i][v]
			if newLE < lv && lv <= oldLE {
				e.b[i][v]--
			}
			if newLE < lv-1 && lv-1 <= oldLE {
				e.a[i][v]--
				bad[v] = struct{}{}
			}
		}
	}
}

// updateBAndA rebuilds b[i][u] and a[i][u] from scratch from the current
// incidence of u.
func (e *Engine) updateBAndA(i int, u hypergraph.Node) {
	e.b[i][u] = 0
	e.a[i][u] = 0
	for eid := range e.H.Incident(u) {
		edge, _ := e.H.Edge(eid)
		lE := edgeLevel(edge, e.l[i])
		if lE >= e.l[i][u] {
			e.b[i][u]++
		}
		if lE >= e.l[i][u]-1 {
			e.a[i][u]++
		}
	}
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
