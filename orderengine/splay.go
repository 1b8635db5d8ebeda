// Package orderengine implements the insertion-only exact order-based
// core-number maintenance engine (Zhang et al., "A Fast Order-Based Approach
// for Core Maintenance", ICDE 2017), restricted to ordinary graphs (arity-2
// hyperedges) as the specification requires.
package orderengine

import "github.com/katalvlaran/hypercore/hypergraph"

// Handle is a node in a splay tree used as an order-statistic structure:
// nodes are ordered by position (insertion order relative to a pivot), not
// by key comparison, per spec.md §4.5's description of data structure A.
// Handle is allocated once per graph node and reused across Del/InsertAfter
// cycles as the node moves between core levels.
type Handle struct {
	value               hypergraph.Node
	left, right, parent *Handle
	size                int
}

// NewHandle allocates a detached handle carrying value. It must be attached
// to a Tree via InsertAfter before Rank or Del are called on it.
func NewHandle(value hypergraph.Node) *Handle {
	return &Handle{value: value, size: 1}
}

// Value returns the node value this handle carries.
func (h *Handle) Value() hypergraph.Node { return h.value }

func handleSize(n *Handle) int {
	if n == nil {
		return 0
	}
	return n.size
}

// Tree is a splay tree providing O(log n) amortized InsertAfter, Del, and
// Rank, exactly the four operations spec.md §4.5 and §9 name (insertAfter,
// del, rank, a begin sentinel). Splaying is bottom-up: the accessed handle
// climbs via parent pointers through zig/zig-zig/zig-zag rotations, with
// subtree size maintained through every rotation.
type Tree struct {
	root *Handle
}

// NewTree returns an empty splay tree.
func NewTree() *Tree { return &Tree{} }

// Begin returns the sentinel pivot denoting "before every element". Passing
// it to InsertAfter inserts at the front of the order.
func (t *Tree) Begin() *Handle { return nil }

func (t *Tree) update(n *Handle) {
	n.size = 1 + handleSize(n.left) + handleSize(n.right)
}

func (t *Tree) rotateLeft(x *Handle) {
	y := x.right
	x.right = y.left
	if y.left != nil {
		y.left.parent = x
	}
	y.parent = x.parent
	if x.parent != nil {
		if x.parent.left == x {
			x.parent.left = y
		} else {
			x.parent.right = y
		}
	}
	y.left = x
	x.parent = y
	t.update(x)
	t.update(y)
}

func (t *Tree) rotateRight(x *Handle) {
	y := x.left
	x.left = y.right
	if y.right != nil {
		y.right.parent = x
	}
	y.parent = x.parent
	if x.parent != nil {
		if x.parent.left == x {
			x.parent.left = y
		} else {
			x.parent.right = y
		}
	}
	y.right = x
	x.parent = y
	t.update(x)
	t.update(y)
}

// splay rotates x to the root of whatever subtree it currently heads (the
// loop climbs until x.parent is nil, which bounds it correctly even when x
// sits in a temporarily-detached subtree during Del).
func (t *Tree) splay(x *Handle) {
	for x.parent != nil {
		p := x.parent
		g := p.parent
		switch {
		case g == nil:
			if p.left == x {
				t.rotateRight(p)
			} else {
				t.rotateLeft(p)
			}
		case g.left == p && p.left == x:
			t.rotateRight(g)
			t.rotateRight(p)
		case g.right == p && p.right == x:
			t.rotateLeft(g)
			t.rotateLeft(p)
		case g.left == p && p.right == x:
			t.rotateLeft(p)
			t.rotateRight(g)
		default:
			t.rotateRight(p)
			t.rotateLeft(g)
		}
	}
	t.root = x
}

func (t *Tree) min(n *Handle) *Handle {
	for n.left != nil {
		n = n.left
	}
	return n
}

func (t *Tree) max(n *Handle) *Handle {
	for n.right != nil {
		n = n.right
	}
	return n
}

// InsertAfter attaches the detached handle n immediately after pivot in
// the tree's order. pivot == t.Begin() (nil) inserts n at the front.
func (t *Tree) InsertAfter(n, pivot *Handle) {
	n.left, n.right, n.parent = nil, nil, nil
	n.size = 1
	if pivot == nil {
		if t.root == nil {
			t.root = n
			return
		}
		front := t.min(t.root)
		t.splay(front)
		n.right = t.root
		t.root.parent = n
		t.root = n
		t.update(n)
		return
	}
	t.splay(pivot)
	n.right = pivot.right
	if pivot.right != nil {
		pivot.right.parent = n
	}
	pivot.right = nil
	n.left = pivot
	pivot.parent = n
	t.update(pivot)
	t.update(n)
	t.root = n
}

// Del detaches n from the tree.
func (t *Tree) Del(n *Handle) {
	t.splay(n)
	left, right := n.left, n.right
	if left == nil {
		t.root = right
		if right != nil {
			right.parent = nil
		}
		n.left, n.right, n.parent = nil, nil, nil
		return
	}
	left.parent = nil
	pred := t.max(left)
	t.splay(pred)
	pred.right = right
	if right != nil {
		right.parent = pred
	}
	t.update(pred)
	t.root = pred
	n.left, n.right, n.parent = nil, nil, nil
}

// Rank returns n's 1-indexed position from the left under the tree's
// current order.
func (t *Tree) Rank(n *Handle) int {
	t.splay(n)
	return handleSize(n.left) + 1
}
