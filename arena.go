package rbtree

// Node storage is an arena owned by the tree. Structural links (parent,
// left, right) are stable slot indices into the arena instead of
// pointers. Slot 0 is reserved for the shared sentinel, so a zero link
// always denotes "no child"/"no parent" and is itself a valid, black
// node. Freed slots are recycled through a free list; each recycling
// bumps the slot's generation counter, which lets us detect handles to
// removed nodes.

type nodeColor uint8

const (
	red   nodeColor = 0
	black nodeColor = 1
)

// sentinel is the arena slot of the shared nil node.
const sentinel uint32 = 0

type node struct {
	key    int64
	parent uint32
	left   uint32
	right  uint32
	gen    uint32
	color  nodeColor
	unused bool // slot is on the free list
}

// NodeRef is a generation-checked handle to a node of a specific tree.
// The zero NodeRef is invalid. A NodeRef becomes stale as soon as the
// node it points to is removed from the tree.
//
// NodeRefs are only meaningful for the tree that issued them. Using a
// handle with a different tree is a caller contract violation; the
// generation check catches most such mistakes, but not all.
type NodeRef struct {
	slot uint32
	gen  uint32
}

// at returns the node stored in arena slot i.
//
// Valid for every structural link, including the sentinel.
func (t *Tree) at(i uint32) *node {
	return &t.nodes[i]
}

// ref issues a handle for arena slot i.
func (t *Tree) ref(i uint32) NodeRef {
	return NodeRef{slot: i, gen: t.nodes[i].gen}
}

// resolve maps a handle back to its arena slot, verifying that the
// handle still denotes a live node of this tree.
func (t *Tree) resolve(ref NodeRef) (uint32, bool) {
	if ref.slot == sentinel || int(ref.slot) >= len(t.nodes) {
		return sentinel, false
	}
	n := &t.nodes[ref.slot]
	if n.unused || n.gen != ref.gen {
		return sentinel, false
	}
	return ref.slot, true
}

// alloc reserves an arena slot for a new red node with the given key,
// recycling a freed slot if one is available. It fails without touching
// the tree structure when a configured capacity bound is exhausted.
func (t *Tree) alloc(key int64) (uint32, error) {
	if t.limit > 0 && t.size >= t.limit {
		return sentinel, ErrAllocation
	}
	if l := len(t.freed); l > 0 {
		i := t.freed[l-1]
		t.freed = t.freed[:l-1]
		n := &t.nodes[i]
		assert(n.unused, "alloc recycled a slot that is not on the free list")
		n.key = key
		n.color = red
		n.parent, n.left, n.right = sentinel, sentinel, sentinel
		n.unused = false
		return i, nil
	}
	t.nodes = append(t.nodes, node{key: key, color: red})
	return uint32(len(t.nodes) - 1), nil
}

// release puts an arena slot back on the free list and invalidates all
// handles issued for it by bumping the slot generation.
func (t *Tree) release(i uint32) {
	assert(i != sentinel, "release must not free the sentinel")
	n := &t.nodes[i]
	n.parent, n.left, n.right = sentinel, sentinel, sentinel
	n.gen++
	n.unused = true
	t.freed = append(t.freed, i)
}
