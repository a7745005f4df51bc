/*
Package rbtree provides ordered key storage with guaranteed logarithmic
insert, delete and search.

Red-Black Trees

The package implements a classic red-black tree: a self-balancing binary
search tree which maintains a height of at most 2·log2(n+1) for n keys.
Compared to an unbalanced binary search tree this gives predictable
worst-case behaviour for sorted iteration, range-style queries and
membership tests, independent of the order in which keys arrive.

Balancing rests on five invariants:

1. Every node is either red or black; the sentinel is black.

2. The root is black (or the tree is empty).

3. A red node never has a red child.

4. Every path from a node down to a descendant sentinel passes through
the same number of black nodes.

5. For every node, keys in its left subtree are less than or equal to
the node's key, and keys in its right subtree are greater or equal. A
newly inserted duplicate descends to the right of its equal key;
later rebalancing rotations may move equal keys into either subtree.

Instead of nil pointers the tree uses a single shared sentinel node as
the uniform value for every absent child or parent link, which removes
all nil-checks from the balancing machinery.

Nodes live in an arena owned by the tree and are addressed by stable
slot indices; callers hold generation-checked handles (NodeRef) rather
than raw node references. A handle to a removed node is detected as
stale instead of silently addressing recycled memory.

The tree is not safe for concurrent use. A caller owning the tree must
serialize all operations, for example with an external mutex, or use one
tree per goroutine.

_________________________________________________________________________

BSD 3-Clause License

Copyright (c) 2020–21, Norbert Pillmayer

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
package rbtree

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
