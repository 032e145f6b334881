package binarytree

import "github.com/npillmayer/arbor"

// MinDepth returns the length of the shortest path from the root to a leaf,
// counted in nodes. The root alone has depth 1, the empty tree depth 0.
//
// An absent child does not terminate a path: for a node with a single child,
// the depth is computed through that child.
func (t *Tree[V]) MinDepth() int {
	if t.IsEmpty() {
		return 0
	}
	return depth(t.Root, true)
}

// MaxDepth returns the length of the longest path from the root to a leaf,
// counted in nodes. The empty tree has depth 0.
func (t *Tree[V]) MaxDepth() int {
	if t.IsEmpty() {
		return 0
	}
	return depth(t.Root, false)
}

// depth selects the shorter or longer of the sub-tree depths of n.
func depth[V arbor.Number](n *Node[V], shortest bool) int {
	switch {
	case n.Left == nil && n.Right == nil:
		return 1
	case n.Left == nil:
		return depth(n.Right, shortest) + 1
	case n.Right == nil:
		return depth(n.Left, shortest) + 1
	default:
		l, r := depth(n.Left, shortest), depth(n.Right, shortest)
		if shortest {
			return min(l, r) + 1
		}
		return max(l, r) + 1
	}
}

// MaxSum returns the maximum sum obtainable by travelling along a path of
// connected nodes, visiting no node more than once. The path does not have
// to start at the root nor end at a leaf. It may run up one branch of a node
// and down the other one.
//
// For a tree with negative values only, MaxSum returns the largest single
// value. The empty tree yields 0.
func (t *Tree[V]) MaxSum() V {
	if t.IsEmpty() {
		return 0
	}
	_, best := pathSum(t.Root)
	return best
}

// pathSum returns the best downward path starting at n, which may be empty
// (hence is never negative), and the best path anywhere within the sub-tree of n.
func pathSum[V arbor.Number](n *Node[V]) (branch V, best V) {
	var left, right V
	best = n.Val
	if n.Left != nil {
		var b V
		left, b = pathSum(n.Left)
		best = max(best, b)
	}
	if n.Right != nil {
		var b V
		right, b = pathSum(n.Right)
		best = max(best, b)
	}
	best = max(best, n.Val+left+right)
	branch = max(0, n.Val+left, n.Val+right)
	return branch, best
}

// NextLarger returns the smallest value in the tree which is strictly larger
// than lowerBound. If no such value exists, found is false.
func (t *Tree[V]) NextLarger(lowerBound V) (value V, found bool) {
	for n := range t.LevelOrder() {
		if n.Val > lowerBound && (!found || n.Val < value) {
			value, found = n.Val, true
		}
	}
	T().Debugf("binarytree: next larger than %v = %v (found=%v)", lowerBound, value, found)
	return value, found
}
