package orderengine

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
	require.NoError(t, e.Insert(hypergraph.Hyperedge{1, 2}))
	require.NoError(t, e.Insert(hypergraph.Hyperedge{2, 3}))
	require.NoError(t, e.Insert(hypergraph.Hyperedge{1, 3}))

	for _, u := range []hypergraph.Node{1, 2, 3} {
		assert.Equal(t, uint32(2), e.Core(u))
	}
	assertMatchesOracle(t, e)
}

func TestStarScenario(t *testing.T) {
	e := New()
	require.NoError(t, e.Insert(hypergraph.Hyperedge{1, 2}))
	require.NoError(t, e.Insert(hypergraph.Hyperedge{1, 3}))
	require.NoError(t, e.Insert(hypergraph.Hyperedge{1, 4}))
	require.NoError(t, e.Insert(hypergraph.Hyperedge{1, 5}))

	for _, u := range []hypergraph.Node{1, 2, 3, 4, 5} {
		assert.Equal(t, uint32(1), e.Core(u))
	}
	assertMatchesOracle(t, e)
}

func TestRejectsHyperedge(t *testing.T) {
	e := New()
	err := e.Insert(hypergraph.Hyperedge{1, 2, 3})
	assert.ErrorIs(t, err, ErrNotOrdinaryEdge)
}

// TestGrowingCliqueAgainstOracle is P2: after every insertion, the
// order-based engine's core numbers match the oracle's exactly, built up
// one edge at a time over a growing clique (a case where many nodes are
// repeatedly promoted across levels).
func TestGrowingCliqueAgainstOracle(t *testing.T) {
	e := New()
	nodes := []hypergraph.Node{1, 2, 3, 4, 5, 6}
	for i := 0; i < len(nodes); i++ {
		for j := i + 1; j < len(nodes); j++ {
			require.NoError(t, e.Insert(hypergraph.Hyperedge{nodes[i], nodes[j]}))
			assertMatchesOracle(t, e)
		}
	}
}

// TestPathGraphAgainstOracle exercises a long low-core chain plus a denser
// cluster grafted onto it, checking P2 after every insertion.
func TestPathGraphAgainstOracle(t *testing.T) {
	e := New()
	for i := hypergraph.Node(1); i < 10; i++ {
		require.NoError(t, e.Insert(hypergraph.Hyperedge{i, i + 1}))
		assertMatchesOracle(t, e)
	}
	denseCluster := [][2]hypergraph.Node{{20, 21}, {21, 22}, {22, 20}, {20, 23}, {21, 23}, {22, 23}}
	for _, pair := range denseCluster {
		require.NoError(t, e.Insert(hypergraph.Hyperedge{pair[0], pair[1]}))
		assertMatchesOracle(t, e)
	}
}

// TestOLevelsHaveMonotonicRank is P6: iterating O[K] yields ranks 1,2,...
// under A[K].Rank, for every level K populated by the trace.
func TestOLevelsHaveMonotonicRank(t *testing.T) {
	e := New()
	nodes := []hypergraph.Node{1, 2, 3, 4, 5}
	for i := 0; i < len(nodes); i++ {
		for j := i + 1; j < len(nodes); j++ {
			require.NoError(t, e.Insert(hypergraph.Hyperedge{nodes[i], nodes[j]}))
		}
	}

	for k, lst := range e.O {
		expected := 1
		for el := lst.Front(); el != nil; el = el.Next() {
			u := el.Value.(hypergraph.Node)
			assert.Equal(t, expected, e.A[k].Rank(e.pointerToA[u]), "level %d node %d", k, u)
			expected++
		}
	}
}
