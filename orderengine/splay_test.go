package orderengine

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/hypercore/hypergraph"
)

// TestSplayRankMatchesInsertionOrder is P8: a freshly built tree over nodes
// inserted in order n1..nk via repeated InsertAfter at the tail reports
// rank(ni) == i for every i.
func TestSplayRankMatchesInsertionOrder(t *testing.T) {
	tree := NewTree()
	var handles []*Handle
	var tail *Handle

	for i := 0; i < 10; i++ {
		h := NewHandle(hypergraph.Node(i))
		tree.InsertAfter(h, tail)
		handles = append(handles, h)
		tail = h
	}

	for i, h := range handles {
		assert.Equal(t, i+1, tree.Rank(h))
	}
}

func TestSplayInsertAtFront(t *testing.T) {
	tree := NewTree()
	h1 := NewHandle(1)
	tree.InsertAfter(h1, tree.Begin())
	h2 := NewHandle(2)
	tree.InsertAfter(h2, tree.Begin())

	assert.Equal(t, 1, tree.Rank(h2))
	assert.Equal(t, 2, tree.Rank(h1))
}

func TestSplayDelPreservesOrderOfRemainder(t *testing.T) {
	tree := NewTree()
	var handles []*Handle
	var tail *Handle
	for i := 0; i < 6; i++ {
		h := NewHandle(hypergraph.Node(i))
		tree.InsertAfter(h, tail)
		handles = append(handles, h)
		tail = h
	}

	tree.Del(handles[2])
	remaining := append(append([]*Handle{}, handles[:2]...), handles[3:]...)
	for i, h := range remaining {
		assert.Equal(t, i+1, tree.Rank(h))
	}
}

func TestSplayInsertAfterMidSequence(t *testing.T) {
	tree := NewTree()
	a := NewHandle(1)
	tree.InsertAfter(a, tree.Begin())
	c := NewHandle(3)
	tree.InsertAfter(c, a)
	b := NewHandle(2)
	tree.InsertAfter(b, a)

	assert.Equal(t, 1, tree.Rank(a))
	assert.Equal(t, 2, tree.Rank(b))
	assert.Equal(t, 3, tree.Rank(c))
}
