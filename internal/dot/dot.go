/*
Package dot holds helpers to output tree structures in Graphviz DOT format
(for debugging purposes).
*/
package dot

import (
	"fmt"
	"io"
)

// IDTable allocates stable numeric ids for nodes, keyed by node identity.
type IDTable[K comparable] struct {
	idTable map[K]int
	max     int
}

// NewIDTable creates an empty id table. Ids start at 1.
func NewIDTable[K comparable]() *IDTable[K] {
	return &IDTable[K]{
		idTable: make(map[K]int),
		max:     1,
	}
}

// Find returns the id of node, or 0 if none has been allocated yet.
func (ids *IDTable[K]) Find(node K) int {
	return ids.idTable[node]
}

// Alloc returns the id of node, allocating a fresh one if necessary.
func (ids *IDTable[K]) Alloc(node K) int {
	if id := ids.Find(node); id > 0 {
		return id
	}
	ids.idTable[node] = ids.max
	ids.max++
	return ids.max - 1
}

// Graph collects node and edge statements and writes them as a strict digraph.
type Graph struct {
	nodelist, edgelist string
	nilcnt             int
}

// Node adds a labelled node.
func (g *Graph) Node(id int, label string, isleaf bool) {
	g.nodelist += fmt.Sprintf("\"%d\" [label=\"%s\"%s];\n", id, label, nodeStyles(isleaf))
}

// Edge adds an edge from a parent to a child.
func (g *Graph) Edge(from, to int) {
	g.edgelist += fmt.Sprintf("\"%d\" -> \"%d\";\n", from, to)
}

// EmptyChild adds an edge from a parent to a placeholder for an absent child.
func (g *Graph) EmptyChild(from int) {
	g.nilcnt++
	nilid := -g.nilcnt
	g.nodelist += fmt.Sprintf("\"%d\" %s;\n", nilid, emptyNode)
	g.Edge(from, nilid)
}

// WriteTo outputs the graph to w.
func (g *Graph) WriteTo(w io.Writer) (int64, error) {
	var total int64
	for _, s := range []string{
		"strict digraph {\n",
		"\tnode [fontname=Arial,fontsize=12];\n",
		g.nodelist,
		g.edgelist,
		"}\n",
	} {
		n, err := io.WriteString(w, s)
		total += int64(n)
		if err != nil {
			return total, err
		}
	}
	return total, nil
}

const emptyNode = "[label=\"\",color=black,shape=circle,fixedsize=true,width=.4]"

func nodeStyles(isleaf bool) string {
	s := ",style=filled"
	if isleaf {
		s += ",shape=box"
	} else {
		s += ",color=black,fillcolor=\"#a3d7e4\""
		s += ",shape=circle"
	}
	return s
}
