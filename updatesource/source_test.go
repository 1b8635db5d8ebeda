package updatesource

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/hypercore/hypergraph"
)

func TestLoadTriangleScenario(t *testing.T) {
	s, err := Load(strings.NewReader("+ 1 2 0\n+ 2 3 0\n+ 1 3 0\n"))
	require.NoError(t, err)
	require.Equal(t, 3, s.Len())
	assert.Equal(t, uint32(3), s.NumberOfNodes())
	assert.Equal(t, uint32(2), s.MaxDegree())

	var got []hypergraph.Hyperedge
	for s.HasNext() {
		rec := s.Next()
		assert.Equal(t, Insert, rec.Type)
		got = append(got, rec.Edge)
	}
	assert.Equal(t, []hypergraph.Hyperedge{{1, 2}, {2, 3}, {1, 3}}, got)
}

func TestLoadSortsInsertionEndpoints(t *testing.T) {
	s, err := Load(strings.NewReader("+ 5 2 9\n"))
	require.NoError(t, err)
	rec := s.Next()
	assert.Equal(t, hypergraph.Hyperedge{2, 5}, rec.Edge)
	assert.Equal(t, 9, rec.Timestamp)
}

func TestLoadRoundTripScenario(t *testing.T) {
	s, err := Load(strings.NewReader("+ 1 2 0\n+ 2 3 0\n+ 1 3 0\n- 1 3\n"))
	require.NoError(t, err)
	require.Equal(t, 4, s.Len())
	last := s.records[3]
	assert.Equal(t, Delete, last.Type)
	assert.Equal(t, hypergraph.Hyperedge{1, 3}, last.Edge)
}

func TestLoadRejectsUnknownPrefix(t *testing.T) {
	_, err := Load(strings.NewReader("* 1 2 0\n"))
	assert.ErrorIs(t, err, ErrMalformedRecord)
}

func TestLoadRejectsTooFewTokens(t *testing.T) {
	_, err := Load(strings.NewReader("+ 1\n"))
	assert.ErrorIs(t, err, ErrMalformedRecord)
}

func TestLoadRejectsNonNumericToken(t *testing.T) {
	_, err := Load(strings.NewReader("+ a b 0\n"))
	assert.ErrorIs(t, err, ErrMalformedRecord)
}

func TestLoadRejectsUnsortedDeletion(t *testing.T) {
	_, err := Load(strings.NewReader("+ 1 2 0\n- 2 1\n"))
	assert.ErrorIs(t, err, ErrUnsortedDeletion)
}

func TestResetReplaysStream(t *testing.T) {
	s, err := Load(strings.NewReader("+ 1 2 0\n+ 2 3 0\n"))
	require.NoError(t, err)
	for s.HasNext() {
		s.Next()
	}
	assert.False(t, s.HasNext())
	s.Reset()
	assert.True(t, s.HasNext())
}
