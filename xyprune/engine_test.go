package xyprune

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/hypercore/hypergraph"
	"github.com/katalvlaran/hypercore/oracle"
)

func assertMatchesOracle(t *testing.T, e *Engine) {
	t.Helper()
	want := oracle.Decompose(e.H)
	for _, u := range e.H.Nodes() {
		assert.Equal(t, want.Get(u), e.Core(u), "node %d", u)
	}
}

func TestTriangleScenario(t *testing.T) {
	e := New()
	e.Insert(hypergraph.Hyperedge{1, 2})
	e.Insert(hypergraph.Hyperedge{2, 3})
	e.Insert(hypergraph.Hyperedge{1, 3})

	for _, u := range []hypergraph.Node{1, 2, 3} {
		assert.Equal(t, uint32(2), e.Core(u))
	}
	assertMatchesOracle(t, e)
}

func TestStarScenario(t *testing.T) {
	e := New()
	e.Insert(hypergraph.Hyperedge{1, 2})
	e.Insert(hypergraph.Hyperedge{1, 3})
	e.Insert(hypergraph.Hyperedge{1, 4})
	e.Insert(hypergraph.Hyperedge{1, 5})

	for _, u := range []hypergraph.Node{1, 2, 3, 4, 5} {
		assert.Equal(t, uint32(1), e.Core(u))
	}
	assertMatchesOracle(t, e)
}

func TestHyperedgeArityThreeScenario(t *testing.T) {
	e := New()
	e.Insert(hypergraph.Hyperedge{1, 2, 3})
	e.Insert(hypergraph.Hyperedge{1, 2, 4})
	e.Insert(hypergraph.Hyperedge{2, 3, 4})
	e.Insert(hypergraph.Hyperedge{1, 3, 4})

	for _, u := range []hypergraph.Node{1, 2, 3, 4} {
		assert.Equal(t, uint32(3), e.Core(u))
	}
	assertMatchesOracle(t, e)
}

func TestInsertThenDeleteRoundTrip(t *testing.T) {
	e := New()
	e.Insert(hypergraph.Hyperedge{1, 2})
	e.Insert(hypergraph.Hyperedge{2, 3})
	e.Insert(hypergraph.Hyperedge{1, 3})
	require.NoError(t, e.Delete(hypergraph.Hyperedge{1, 3}))

	for _, u := range []hypergraph.Node{1, 2, 3} {
		assert.Equal(t, uint32(1), e.Core(u))
	}
	assertMatchesOracle(t, e)
}

func TestDeletionCollapsesCoreScenario(t *testing.T) {
	e := New()
	e.Insert(hypergraph.Hyperedge{1, 2})
	e.Insert(hypergraph.Hyperedge{2, 3})
	e.Insert(hypergraph.Hyperedge{1, 3})
	require.NoError(t, e.Delete(hypergraph.Hyperedge{1, 2}))

	assert.Equal(t, uint32(1), e.Core(1))
	assert.Equal(t, uint32(1), e.Core(2))
	assert.Equal(t, uint32(1), e.Core(3))
	assertMatchesOracle(t, e)
}

func TestRoundTripLeavesStateIdentical(t *testing.T) {
	e := New()
	e.Insert(hypergraph.Hyperedge{1, 2})
	e.Insert(hypergraph.Hyperedge{2, 3})
	before := e.Snapshot()
	nBefore := e.H.NEdges()

	e.Insert(hypergraph.Hyperedge{1, 3})
	require.NoError(t, e.Delete(hypergraph.Hyperedge{1, 3}))

	after := e.Snapshot()
	assert.Equal(t, before, after)
	assert.Equal(t, nBefore, e.H.NEdges())
}

func TestDeleteUnknownEdgePropagatesError(t *testing.T) {
	e := New()
	err := e.Delete(hypergraph.Hyperedge{7, 8})
	assert.ErrorIs(t, err, hypergraph.ErrEdgeNotFound)
}

// TestMixedTraceAgainstOracle replays a fixed trace of insertions followed
// by deletions and checks P1 after every update.
func TestMixedTraceAgainstOracle(t *testing.T) {
	e := New()
	edges := []hypergraph.Hyperedge{
		{1, 2}, {2, 3}, {3, 4}, {4, 5}, {1, 5},
		{1, 3}, {2, 4}, {1, 2, 3}, {3, 4, 5}, {2, 3, 4},
	}
	for _, edge := range edges {
		e.Insert(edge)
		assertMatchesOracle(t, e)
	}
	toDelete := []hypergraph.Hyperedge{{1, 2}, {2, 3, 4}, {3, 4}}
	for _, edge := range toDelete {
		require.NoError(t, e.Delete(edge))
		assertMatchesOracle(t, e)
	}
}
