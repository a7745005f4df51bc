package rbtree

// Rotations are the atomic restructuring primitives of every fixup.
// Both rotate a node with one of its children, relocate the child's
// inner subtree and rewire the three affected parent links. They touch
// a constant number of links, never change colors, and keep in-order
// key order intact. Color changes are always up to the caller.

// rotateLeft rotates x with its right child, which must not be the
// sentinel.
func (t *Tree) rotateLeft(x uint32) {
	y := t.at(x).right
	assert(y != sentinel, "rotateLeft requires a right child")
	t.at(x).right = t.at(y).left
	if t.at(y).left != sentinel {
		t.at(t.at(y).left).parent = x
	}
	t.at(y).parent = t.at(x).parent
	if t.at(x).parent == sentinel {
		t.root = y
	} else if x == t.at(t.at(x).parent).left {
		t.at(t.at(x).parent).left = y
	} else {
		t.at(t.at(x).parent).right = y
	}
	t.at(y).left = x
	t.at(x).parent = y
}

// rotateRight is the mirror image of rotateLeft; x's left child must
// not be the sentinel.
func (t *Tree) rotateRight(x uint32) {
	y := t.at(x).left
	assert(y != sentinel, "rotateRight requires a left child")
	t.at(x).left = t.at(y).right
	if t.at(y).right != sentinel {
		t.at(t.at(y).right).parent = x
	}
	t.at(y).parent = t.at(x).parent
	if t.at(x).parent == sentinel {
		t.root = y
	} else if x == t.at(t.at(x).parent).right {
		t.at(t.at(x).parent).right = y
	} else {
		t.at(t.at(x).parent).left = y
	}
	t.at(y).right = x
	t.at(x).parent = y
}
