/*
Package binarytree implements an in-memory binary tree with a set of
read-only queries.

Every node has at most two children, a left and a right one. The structure is
a finite, acyclic rooted tree: no node is reachable by two distinct paths.
Nodes do not store a reference to their parent; queries which need parent
information re-compute it by traversing from the root.

Queries:
  - MinDepth and MaxDepth: shortest and longest root-to-leaf path, counted in nodes,
  - MaxSum: the maximum sum over any path of connected nodes,
  - NextLarger: the smallest value strictly greater than a bound,
  - AreCousins: whether two nodes are on the same level with different parents,
  - LowestCommonAncestor: the deepest node having two given nodes as descendants.

Trees may be encoded to a textual pre-order representation (Serialize/Deserialize)
and to msgpack (MarshalMsgpack/UnmarshalMsgpack).

# BSD License

Copyright (c) Norbert Pillmayer <norbert@pillmayer.com>

Please refer to the License file for details.
*/
package binarytree

import (
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// T traces to a global core-tracer.
func T() tracing.Trace {
	return gtrace.CoreTracer
}

func assert(condition bool, msg string) {
	if !condition {
		panic(msg)
	}
}
