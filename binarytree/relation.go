package binarytree

import (
	"fmt"

	"github.com/npillmayer/arbor"
)

// location records where a node sits within a tree.
type location[V arbor.Number] struct {
	level  int      // root is at level 0
	parent *Node[V] // nil for the root
}

// locate searches the tree for node target, comparing by identity.
// If target is not part of the tree, ok is false.
func (t *Tree[V]) locate(target *Node[V]) (loc location[V], ok bool) {
	if t.IsEmpty() || target == nil {
		return loc, false
	}
	if t.Root == target {
		return loc, true
	}
	return locateBelow(t.Root, target, 0)
}

func locateBelow[V arbor.Number](n *Node[V], target *Node[V], level int) (location[V], bool) {
	if n.Left == target || n.Right == target {
		return location[V]{level: level + 1, parent: n}, true
	}
	if n.Left != nil {
		if loc, ok := locateBelow(n.Left, target, level+1); ok {
			return loc, true
		}
	}
	if n.Right != nil {
		return locateBelow(n.Right, target, level+1)
	}
	return location[V]{}, false
}

// AreCousins determines whether two nodes are cousins, i.e. are at the same
// level of the tree but have different parents. The root is never a cousin of
// any node.
//
// If either a or b is not part of the tree, an error ErrNodeNotFound is returned.
func (t *Tree[V]) AreCousins(a, b *Node[V]) (bool, error) {
	if a == nil || b == nil {
		return false, fmt.Errorf("cousins: nil node: %w", arbor.ErrNodeNotFound)
	}
	if a == t.root() || b == t.root() {
		return false, nil
	}
	locA, ok := t.locate(a)
	if !ok {
		return false, fmt.Errorf("cousins: first node: %w", arbor.ErrNodeNotFound)
	}
	locB, ok := t.locate(b)
	if !ok {
		return false, fmt.Errorf("cousins: second node: %w", arbor.ErrNodeNotFound)
	}
	T().Debugf("binarytree: cousins? levels %d/%d", locA.level, locB.level)
	return locA.level == locB.level && locA.parent != locB.parent, nil
}

func (t *Tree[V]) root() *Node[V] {
	if t == nil {
		return nil
	}
	return t.Root
}

// LowestCommonAncestor finds the deepest node which has both a and b as
// descendants. A node counts as a descendant of itself, thus if a is an
// ancestor of b, a is returned.
//
// If either a or b is not part of the tree, an error ErrNodeNotFound is returned.
func (t *Tree[V]) LowestCommonAncestor(a, b *Node[V]) (*Node[V], error) {
	pathA := t.pathTo(a)
	if pathA == nil {
		return nil, fmt.Errorf("lowest common ancestor: first node: %w", arbor.ErrNodeNotFound)
	}
	pathB := t.pathTo(b)
	if pathB == nil {
		return nil, fmt.Errorf("lowest common ancestor: second node: %w", arbor.ErrNodeNotFound)
	}
	// both paths start at the root
	var lca *Node[V]
	for i := 0; i < len(pathA) && i < len(pathB) && pathA[i] == pathB[i]; i++ {
		lca = pathA[i]
	}
	assert(lca != nil, "paths to nodes do not share the root")
	return lca, nil
}

// pathTo returns the nodes from the root down to target, both included,
// or nil if target is not part of the tree.
func (t *Tree[V]) pathTo(target *Node[V]) []*Node[V] {
	if t.IsEmpty() || target == nil {
		return nil
	}
	var path []*Node[V]
	if !collectPath(t.Root, target, &path) {
		return nil
	}
	return path
}

func collectPath[V arbor.Number](n *Node[V], target *Node[V], path *[]*Node[V]) bool {
	if n == nil {
		return false
	}
	*path = append(*path, n)
	if n == target || collectPath(n.Left, target, path) || collectPath(n.Right, target, path) {
		return true
	}
	*path = (*path)[:len(*path)-1]
	return false
}
