package binarytree

import (
	"iter"

	"github.com/npillmayer/arbor"
)

// Node is a node of a binary tree. A nil child pointer denotes an absent child.
//
// Children are exclusively owned by their parent. Clients must not link a
// node into more than one position.
type Node[V arbor.Number] struct {
	Val   V
	Left  *Node[V]
	Right *Node[V]
}

// NewNode creates a node with value v and optional children.
func NewNode[V arbor.Number](v V, left, right *Node[V]) *Node[V] {
	return &Node[V]{Val: v, Left: left, Right: right}
}

// Leaf creates a node without children.
func Leaf[V arbor.Number](v V) *Node[V] {
	return &Node[V]{Val: v}
}

// IsLeaf reports whether a node has no children.
func (n *Node[V]) IsLeaf() bool {
	return n.Left == nil && n.Right == nil
}

// Tree is a binary tree, holding an optional root node.
//
// A tree created by
//
//	Tree[int]{}
//
// is a valid object and behaves like the empty tree. A nil *Tree behaves
// like the empty tree as well.
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

// Len returns the number of nodes in the tree.
func (t *Tree[V]) Len() int {
	cnt := 0
	for range t.PreOrder() {
		cnt++
	}
	return cnt
}

// PreOrder returns an iterator over all nodes in depth-first pre-order.
func (t *Tree[V]) PreOrder() iter.Seq[*Node[V]] {
	return func(yield func(*Node[V]) bool) {
		if t.IsEmpty() {
			return
		}
		preOrder(t.Root, yield)
	}
}

func preOrder[V arbor.Number](n *Node[V], yield func(*Node[V]) bool) bool {
	if n == nil {
		return true
	}
	if !yield(n) {
		return false
	}
	return preOrder(n.Left, yield) && preOrder(n.Right, yield)
}

// LevelOrder returns an iterator over all nodes in breadth-first order,
// left to right within a level.
func (t *Tree[V]) LevelOrder() iter.Seq[*Node[V]] {
	return func(yield func(*Node[V]) bool) {
		if t.IsEmpty() {
			return
		}
		queue := []*Node[V]{t.Root}
		for len(queue) > 0 {
			n := queue[0]
			queue = queue[1:]
			if !yield(n) {
				return
			}
			if n.Left != nil {
				queue = append(queue, n.Left)
			}
			if n.Right != nil {
				queue = append(queue, n.Right)
			}
		}
	}
}
