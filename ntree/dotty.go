package ntree

import (
	"fmt"
	"io"

	"github.com/npillmayer/arbor"
	"github.com/npillmayer/arbor/internal/dot"
	"github.com/npillmayer/arbor/internal/termout"
)

// ToDot outputs the structure of a tree in Graphviz DOT format
// (for debugging purposes).
func ToDot[V arbor.Number](tree *Tree[V], w io.Writer) {
	ids := dot.NewIDTable[*Node[V]]()
	g := &dot.Graph{}
	for node := range tree.All() {
		ID := ids.Alloc(node)
		g.Node(ID, fmt.Sprint(node.Val), node.IsLeaf())
		for _, child := range node.Children {
			g.Edge(ID, ids.Alloc(child))
		}
	}
	if _, err := g.WriteTo(w); err != nil {
		T().Errorf("tree DOT: %s", err.Error())
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
	fprintNode(tree.Root, w, p, 0)
}

func fprintNode[V arbor.Number](n *Node[V], w io.Writer, p *termout.Palette, level int) {
	c := p.Inner
	if n.IsLeaf() {
		c = p.Leaf
	}
	p.Line(w, level, "", fmt.Sprint(n.Val), c)
	for _, child := range n.Children {
		fprintNode(child, w, p, level+1)
	}
}
