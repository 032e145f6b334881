/*
Package ntree implements a general in-memory tree, where every node holds an
ordered list of zero or more children.

All queries in this package aggregate over the complete tree. They share a
single traversal shape: an accumulator is seeded from the root, then every
descendant's contribution is folded into it, visiting children before
descending further. Each query is a full O(n) scan.
*/
package ntree

import (
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// T traces to a global core-tracer.
func T() tracing.Trace {
	return gtrace.CoreTracer
}
