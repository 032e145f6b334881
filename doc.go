/*
Package arbor offers small in-memory trees together with a set of recursive
queries over them.

Trees

Two independent tree shapes are provided, each in its own package:

  - binarytree: nodes with at most two children, distinguished as left and right.
    Queries cover depth, path sums, bounded search, the cousin relation and
    lowest common ancestors. Trees may be serialized to a textual pre-order
    form and to msgpack.
  - ntree: general trees where each node holds an ordered list of children.
    Queries aggregate over all nodes (sum, count of even values, count of
    values above a bound).

Both packages are read-only with respect to their queries: clients build the
node structure once and then query it as often as they like. Every query is
a pure function of the tree, so calling it twice yields the same result.

Node identity is pointer identity. Two nodes carrying the same value are
still different nodes.

Recursion

Traversals are recursive, and recursion depth equals tree depth. Go stacks
grow dynamically, so this is not guarded against; clients building
degenerate trees with millions of levels should be aware of the memory cost.

_________________________________________________________________________

BSD 3-Clause License

Copyright (c) 2022, Norbert Pillmayer

All rights reserved.

Redistribution and use in source and binary forms, with or without
modification, are permitted provided that the following conditions are met:

1. Redistributions of source code must retain the above copyright notice, this
list of conditions and the following disclaimer.

2. Redistributions in binary form must reproduce the above copyright notice,
this list of conditions and the following disclaimer in the documentation
and/or other materials provided with the distribution.

3. Neither the name of the copyright holder nor the names of its
contributors may be used to endorse or promote products derived from
this software without specific prior written permission.

THIS SOFTWARE IS PROVIDED BY THE COPYRIGHT HOLDERS AND CONTRIBUTORS "AS IS"
AND ANY EXPRESS OR IMPLIED WARRANTIES, INCLUDING, BUT NOT LIMITED TO, THE
IMPLIED WARRANTIES OF MERCHANTABILITY AND FITNESS FOR A PARTICULAR PURPOSE ARE
DISCLAIMED. IN NO EVENT SHALL THE COPYRIGHT HOLDER OR CONTRIBUTORS BE LIABLE
FOR ANY DIRECT, INDIRECT, INCIDENTAL, SPECIAL, EXEMPLARY, OR CONSEQUENTIAL
DAMAGES (INCLUDING, BUT NOT LIMITED TO, PROCUREMENT OF SUBSTITUTE GOODS OR
SERVICES; LOSS OF USE, DATA, OR PROFITS; OR BUSINESS INTERRUPTION) HOWEVER
CAUSED AND ON ANY THEORY OF LIABILITY, WHETHER IN CONTRACT, STRICT LIABILITY,
OR TORT (INCLUDING NEGLIGENCE OR OTHERWISE) ARISING IN ANY WAY OUT OF THE USE
OF THIS SOFTWARE, EVEN IF ADVISED OF THE POSSIBILITY OF SUCH DAMAGE.

*/
package arbor

import (
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// T traces to a global core-tracer.
func T() tracing.Trace {
	return gtrace.CoreTracer
}
