package rbtree

/*
BSD 3-Clause License

Copyright (c) 2020–21, Norbert Pillmayer

Please refer to the License file in the repository root.

*/

import "fmt"

// Tree is a red-black tree over int64 keys.
//
// A Tree must be created with New. It owns an arena of nodes; clients
// refer to individual nodes through generation-checked handles (NodeRef).
// Duplicate keys are allowed; a new duplicate is inserted to the right
// of its equal key.
//
//	Operation     |   Red-Black Tree  |  Sorted Slice
//	--------------+-------------------+--------------
//	Insert        |   O(log n)        |   O(n)
//	Remove        |   O(log n)        |   O(n)
//	Find          |   O(log n)        |   O(log n)
//	Min/Max       |   O(log n)        |   O(1)
//	Iterate       |   O(n)            |   O(n)
//
// Trees are not safe for concurrent use.
type Tree struct {
	nodes []node   // arena; slot 0 is the sentinel
	freed []uint32 // recycled arena slots
	root  uint32
	size  int
	limit int // maximum number of live nodes, 0 = unbounded
	dead  bool
}

// Option configures a tree during New.
type Option func(*Tree) error

// WithCapacity bounds the number of keys the tree will hold. Inserting
// beyond the bound fails with ErrAllocation and leaves the tree
// unchanged. A capacity of 0 means unbounded.
func WithCapacity(n int) Option {
	return func(t *Tree) error {
		if n < 0 {
			return fmt.Errorf("%w: negative capacity %d", ErrInvalidConfig, n)
		}
		t.limit = n
		return nil
	}
}

// New creates an empty tree with validated configuration.
func New(opts ...Option) (*Tree, error) {
	t := &Tree{
		nodes: make([]node, 1, 16),
		root:  sentinel,
	}
	t.nodes[sentinel] = node{color: black}
	for _, opt := range opts {
		if opt == nil {
			return nil, fmt.Errorf("%w: nil option", ErrInvalidConfig)
		}
		if err := opt(t); err != nil {
			return nil, err
		}
	}
	if t.limit > 0 {
		arena := make([]node, 1, t.limit+1)
		arena[sentinel] = t.nodes[sentinel]
		t.nodes = arena
	}
	return t, nil
}

// Destroy releases the tree's arena and invalidates every outstanding
// NodeRef. It is idempotent and safe to call on a nil tree; subsequent
// operations on a destroyed tree fail with ErrTreeDestroyed (or report
// emptiness, for the non-error query surface).
func (t *Tree) Destroy() {
	if t == nil || t.dead {
		return
	}
	T().Debugf("rbtree: destroying tree with %d nodes", t.size)
	t.nodes = nil
	t.freed = nil
	t.root = sentinel
	t.size = 0
	t.dead = true
}

// alive reports whether the tree can be operated on.
func (t *Tree) alive() bool {
	return t != nil && !t.dead
}

// Len returns the number of keys in the tree.
func (t *Tree) Len() int {
	if !t.alive() {
		return 0
	}
	return t.size
}

// IsEmpty reports whether the tree has no keys.
func (t *Tree) IsEmpty() bool {
	return t.Len() == 0
}

// Height returns the number of nodes on the longest root-to-leaf path,
// where 0 means empty. The red-black invariants bound the height by
// 2·log2(n+1).
func (t *Tree) Height() int {
	if !t.alive() {
		return 0
	}
	return t.heightOf(t.root)
}

func (t *Tree) heightOf(i uint32) int {
	if i == sentinel {
		return 0
	}
	hl := t.heightOf(t.at(i).left)
	hr := t.heightOf(t.at(i).right)
	if hl > hr {
		return hl + 1
	}
	return hr + 1
}

// Key returns the key stored behind a handle, or false for a stale or
// foreign handle.
func (t *Tree) Key(ref NodeRef) (int64, bool) {
	if !t.alive() {
		return 0, false
	}
	i, ok := t.resolve(ref)
	if !ok {
		return 0, false
	}
	return t.at(i).key, true
}
