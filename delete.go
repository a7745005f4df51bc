package rbtree

import "fmt"

// Remove deletes the node behind ref from the tree and invalidates the
// handle. A stale handle (node already removed) or a handle that was
// never issued by this tree fails with ErrInvalidNode.
//
// Handles issued by a different tree may collide with live slots of
// this one; the generation check catches most, but not all, such
// mix-ups. Keeping handles with their tree remains a caller obligation.
func (t *Tree) Remove(ref NodeRef) error {
	if !t.alive() {
		return ErrTreeDestroyed
	}
	z, ok := t.resolve(ref)
	if !ok {
		T().Errorf("rbtree: remove of stale or foreign node reference")
		return fmt.Errorf("%w: stale or foreign reference", ErrInvalidNode)
	}
	t.removeSlot(z)
	return nil
}

// RemoveKey deletes one node carrying key, if any, and reports whether
// a node was removed. With duplicate keys an arbitrary one of them is
// removed.
func (t *Tree) RemoveKey(key int64) bool {
	if !t.alive() {
		return false
	}
	z := t.searchSlot(key)
	if z == sentinel {
		return false
	}
	t.removeSlot(z)
	return true
}

// removeSlot splices node z out of the structure, repairs the black
// height if a black node vanished from some path, then recycles the
// slot.
//
// With two children, z is replaced by the minimum of its right subtree
// (the in-order successor), which inherits z's color so that every path
// through z's former position keeps its black count. The fixup decision
// is then driven by the successor's original color, and the node that
// physically took over the vacated position (possibly the sentinel)
// carries the potential deficit.
func (t *Tree) removeSlot(z uint32) {
	y := z
	yColor := t.at(y).color
	var x uint32
	if t.at(z).left == sentinel {
		x = t.at(z).right
		t.transplant(z, x)
	} else if t.at(z).right == sentinel {
		x = t.at(z).left
		t.transplant(z, x)
	} else {
		y = t.minSlot(t.at(z).right) // successor
		yColor = t.at(y).color
		x = t.at(y).right
		if t.at(y).parent == z {
			// x may be the sentinel; fixup still needs its parent link
			t.at(x).parent = y
		} else {
			t.transplant(y, x)
			t.at(y).right = t.at(z).right
			t.at(t.at(y).right).parent = y
		}
		t.transplant(z, y)
		t.at(y).left = t.at(z).left
		t.at(t.at(y).left).parent = y
		t.at(y).color = t.at(z).color
	}
	if yColor == black {
		t.deleteFixup(x)
	}
	t.release(z)
	t.size--
}

// transplant rewires u's parent to point at v in u's former slot (the
// root slot if u was the root) and sets v's parent link, even when v is
// the sentinel.
func (t *Tree) transplant(u, v uint32) {
	if t.at(u).parent == sentinel {
		t.root = v
	} else if u == t.at(t.at(u).parent).left {
		t.at(t.at(u).parent).left = v
	} else {
		t.at(t.at(u).parent).right = v
	}
	t.at(v).parent = t.at(u).parent
}

// deleteFixup eliminates the extra black unit node x carries after a
// black node was removed from x's path. The only non-terminating branch
// (black sibling with two black children) moves the deficit one level
// up, bounding the loop by the tree height.
//
// Unlike the insert fixup this pivots around x's sibling, not an uncle:
// the violation is a black-height deficit in x's own subtree level.
func (t *Tree) deleteFixup(x uint32) {
	for x != t.root && t.at(x).color == black {
		if x == t.at(t.at(x).parent).left {
			w := t.at(t.at(x).parent).right // sibling
			if t.at(w).color == red {
				// red sibling: rotate to get a black one
				t.at(w).color = black
				t.at(t.at(x).parent).color = red
				t.rotateLeft(t.at(x).parent)
				w = t.at(t.at(x).parent).right
			}
			if t.at(t.at(w).left).color == black && t.at(t.at(w).right).color == black {
				// absorb the extra black, push the deficit up
				t.at(w).color = red
				x = t.at(x).parent
			} else {
				if t.at(t.at(w).right).color == black {
					// near child red, far child black: rotate sibling
					t.at(t.at(w).left).color = black
					t.at(w).color = red
					t.rotateRight(w)
					w = t.at(t.at(x).parent).right
				}
				// far child red: one rotation resolves the deficit
				t.at(w).color = t.at(t.at(x).parent).color
				t.at(t.at(x).parent).color = black
				t.at(t.at(w).right).color = black
				t.rotateLeft(t.at(x).parent)
				x = t.root
			}
		} else {
			// mirror cases
			w := t.at(t.at(x).parent).left // sibling
			if t.at(w).color == red {
				t.at(w).color = black
				t.at(t.at(x).parent).color = red
				t.rotateRight(t.at(x).parent)
				w = t.at(t.at(x).parent).left
			}
			if t.at(t.at(w).right).color == black && t.at(t.at(w).left).color == black {
				t.at(w).color = red
				x = t.at(x).parent
			} else {
				if t.at(t.at(w).left).color == black {
					t.at(t.at(w).right).color = black
					t.at(w).color = red
					t.rotateLeft(w)
					w = t.at(t.at(x).parent).left
				}
				t.at(w).color = t.at(t.at(x).parent).color
				t.at(t.at(x).parent).color = black
				t.at(t.at(w).left).color = black
				t.rotateRight(t.at(x).parent)
				x = t.root
			}
		}
	}
	t.at(x).color = black
}
