package ntree

import (
	"iter"
	"math"

	"github.com/npillmayer/arbor"
)

// Node is a node of a general tree. Children are exclusively owned by their
// parent.
type Node[V arbor.Number] struct {
	Val      V
	Children []*Node[V]
}

// NewNode creates a node with value v and an optional list of children.
func NewNode[V arbor.Number](v V, children ...*Node[V]) *Node[V] {
	return &Node[V]{Val: v, Children: children}
}

// IsLeaf reports whether a node has no children.
func (n *Node[V]) IsLeaf() bool {
	return len(n.Children) == 0
}

// Tree is a general tree, holding an optional root node.
// The zero value and a nil *Tree are valid empty trees.
type Tree[V arbor.Number] struct {
	Root *Node[V]
}

// New creates a tree with a given root, which may be nil.
func New[V arbor.Number](root *Node[V]) *Tree[V] {
	return &Tree[V]{Root: root}
}

// IsEmpty reports whether the tree has no nodes.
func (t *Tree[V]) IsEmpty() bool {
	return t == nil || t.Root == nil
}

// fold seeds an accumulator with the contribution of the root and then folds
// in the contribution of every descendant. The empty tree yields the zero value.
func fold[V arbor.Number, A any](t *Tree[V], contrib func(*Node[V]) A, add func(A, A) A) A {
	var acc A
	if t.IsEmpty() {
		return acc
	}
	acc = contrib(t.Root)
	foldChildren(t.Root, &acc, contrib, add)
	return acc
}

func foldChildren[V arbor.Number, A any](n *Node[V], acc *A, contrib func(*Node[V]) A, add func(A, A) A) {
	for _, child := range n.Children {
		*acc = add(*acc, contrib(child))
		if !child.IsLeaf() {
			foldChildren(child, acc, contrib, add)
		}
	}
}

func sum[A arbor.Number](a, b A) A { return a + b }

func count(cond bool) int {
	if cond {
		return 1
	}
	return 0
}

// SumValues adds up all of the values in the tree. The empty tree yields 0.
func (t *Tree[V]) SumValues() V {
	return fold(t, func(n *Node[V]) V { return n.Val }, sum[V])
}

// CountEvens counts all of the nodes in the tree with even values.
// Floating point values are even if they are integral and divisible by 2.
func (t *Tree[V]) CountEvens() int {
	return fold(t, func(n *Node[V]) int { return count(isEven(n.Val)) }, sum[int])
}

// NumGreater counts all of the nodes in the tree with values strictly greater
// than lowerBound.
func (t *Tree[V]) NumGreater(lowerBound V) int {
	cnt := fold(t, func(n *Node[V]) int { return count(n.Val > lowerBound) }, sum[int])
	T().Debugf("ntree: %d nodes greater than %v", cnt, lowerBound)
	return cnt
}

// Len returns the number of nodes in the tree.
func (t *Tree[V]) Len() int {
	return fold(t, func(*Node[V]) int { return 1 }, sum[int])
}

// Height returns the number of nodes on the longest path from the root to a
// leaf. The empty tree has height 0.
func (t *Tree[V]) Height() int {
	if t.IsEmpty() {
		return 0
	}
	return height(t.Root)
}

func height[V arbor.Number](n *Node[V]) int {
	h := 0
	for _, child := range n.Children {
		h = max(h, height(child))
	}
	return h + 1
}

// All returns an iterator over all nodes in depth-first pre-order.
func (t *Tree[V]) All() iter.Seq[*Node[V]] {
	return func(yield func(*Node[V]) bool) {
		if t.IsEmpty() {
			return
		}
		preOrder(t.Root, yield)
	}
}

func preOrder[V arbor.Number](n *Node[V], yield func(*Node[V]) bool) bool {
	if !yield(n) {
		return false
	}
	for _, child := range n.Children {
		if !preOrder(child, yield) {
			return false
		}
	}
	return true
}

func isEven[V arbor.Number](v V) bool {
	var one, two V = 1, 2
	if one/two == 0 { // integer type
		return v/two*two == v
	}
	return math.Mod(float64(v), 2) == 0
}
