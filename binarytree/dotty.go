package binarytree

import (
	"fmt"
	"io"

	"github.com/npillmayer/arbor"
	"github.com/npillmayer/arbor/internal/dot"
	"github.com/npillmayer/arbor/internal/termout"
)

// ToDot outputs the structure of a tree in Graphviz DOT format
// (for debugging purposes). Absent children of inner nodes are drawn as
// empty circles.
func ToDot[V arbor.Number](tree *Tree[V], w io.Writer) {
	ids := dot.NewIDTable[*Node[V]]()
	g := &dot.Graph{}
	for node := range tree.PreOrder() {
		ID := ids.Alloc(node)
		g.Node(ID, fmt.Sprint(node.Val), node.IsLeaf())
		if node.IsLeaf() {
			continue
		}
		for _, child := range [2]*Node[V]{node.Left, node.Right} {
			if child == nil {
				g.EmptyChild(ID)
			} else {
				g.Edge(ID, ids.Alloc(child))
			}
		}
	}
	if _, err := g.WriteTo(w); err != nil {
		T().Errorf("binary tree DOT: %s", err.Error())
	}
}

// Fprint dumps a tree to w, one node per line, indented by level.
// If w is a terminal, output is colored.
func Fprint[V arbor.Number](tree *Tree[V], w io.Writer) {
	p := termout.ForWriter(w)
	if tree.IsEmpty() {
		p.Line(w, 0, "", "(empty)", p.Absent)
		return
	}
	fprintNode(tree.Root, w, p, 0, "")
}

func fprintNode[V arbor.Number](n *Node[V], w io.Writer, p *termout.Palette, level int, branch string) {
	if n.IsLeaf() {
		p.Line(w, level, branch, fmt.Sprint(n.Val), p.Leaf)
		return
	}
	p.Line(w, level, branch, fmt.Sprint(n.Val), p.Inner)
	for i, child := range [2]*Node[V]{n.Left, n.Right} {
		mark := [2]string{"L", "R"}[i]
		if child == nil {
			p.Line(w, level+1, mark, NullMarker, p.Absent)
		} else {
			fprintNode(child, w, p, level+1, mark)
		}
	}
}
