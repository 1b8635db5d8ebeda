package hypergraph

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInsertAssignsStableIDs(t *testing.T) {
	h := New()
	id0 := h.Insert(Hyperedge{1, 2})
	id1 := h.Insert(Hyperedge{2, 3})
	assert.Equal(t, EdgeID(0), id0)
	assert.Equal(t, EdgeID(1), id1)
	assert.Equal(t, 2, h.NEdges())
}

func TestIncidenceConsistency(t *testing.T) {
	h := New()
	id := h.Insert(Hyperedge{1, 2, 3})
	for _, u := range []Node{1, 2, 3} {
		_, ok := h.Incident(u)[id]
		assert.True(t, ok, "node %d should be incident to edge %d", u, id)
	}
	assert.Equal(t, 1, h.Degree(1))
}

func TestDeleteTombstonesSlotKeepsIDStable(t *testing.T) {
	h := New()
	id := h.Insert(Hyperedge{1, 2})
	require.NoError(t, h.Delete(Hyperedge{1, 2}))
	assert.Equal(t, 0, h.NEdges())
	assert.Equal(t, 0, h.Degree(1))

	// Re-insertion gets a fresh, larger ID; the tombstoned slot is not reused.
	id2 := h.Insert(Hyperedge{1, 2})
	assert.Greater(t, uint64(id2), uint64(id))

	edge, live := h.Edge(id)
	assert.False(t, live)
	assert.Empty(t, edge)
}

func TestDeleteUnknownEdgeFails(t *testing.T) {
	h := New()
	err := h.Delete(Hyperedge{9, 9})
	assert.True(t, errors.Is(err, ErrEdgeNotFound))
}

func TestDuplicateIdenticalEdgesMultiValued(t *testing.T) {
	h := New()
	idA := h.Insert(Hyperedge{1, 2})
	idB := h.Insert(Hyperedge{1, 2})
	assert.Equal(t, 2, h.Degree(1))

	require.NoError(t, h.Delete(Hyperedge{1, 2}))
	assert.Equal(t, 1, h.NEdges())
	assert.Equal(t, 1, h.Degree(1))

	// One of the two IDs is now tombstoned, the other remains live.
	_, liveA := h.Edge(idA)
	_, liveB := h.Edge(idB)
	assert.True(t, liveA != liveB)
}

func TestHyperedgeHashOrderSensitive(t *testing.T) {
	h1 := HyperedgeHash(Hyperedge{1, 2, 3})
	h2 := HyperedgeHash(Hyperedge{3, 2, 1})
	assert.NotEqual(t, h1, h2)
	assert.Equal(t, h1, HyperedgeHash(Hyperedge{1, 2, 3}))
}

func TestNodesReflectsLiveIncidence(t *testing.T) {
	h := New()
	h.Insert(Hyperedge{1, 2})
	require.NoError(t, h.Delete(Hyperedge{1, 2}))
	assert.Empty(t, h.Nodes())
}
