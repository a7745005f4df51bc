package rbtree

// Insert adds key to the tree and returns a handle to the new node.
//
// The new node starts out red and both fixup-relevant invariants (no
// red-red edge, uniform black-height) are restored before Insert
// returns. A key equal to an existing one descends into the right
// subtree of that node.
//
// Insert fails with ErrAllocation when a configured capacity bound is
// exhausted and with ErrTreeDestroyed on a nil or destroyed tree; in
// both cases the tree is left exactly as it was.
func (t *Tree) Insert(key int64) (NodeRef, error) {
	if !t.alive() {
		return NodeRef{}, ErrTreeDestroyed
	}
	z, err := t.alloc(key)
	if err != nil {
		return NodeRef{}, err
	}
	y := sentinel
	x := t.root
	for x != sentinel {
		y = x
		if key < t.at(x).key {
			x = t.at(x).left
		} else {
			x = t.at(x).right
		}
	}
	t.at(z).parent = y
	if y == sentinel {
		t.root = z
	} else if key < t.at(y).key {
		t.at(y).left = z
	} else {
		t.at(y).right = z
	}
	t.insertFixup(z)
	t.size++
	return t.ref(z), nil
}

// insertFixup repairs the red-red violation a fresh red node z may
// introduce. Each iteration either recolors and moves the violation two
// levels up (red uncle) or resolves it with at most two rotations and
// terminates, so the loop runs O(log n) times.
func (t *Tree) insertFixup(z uint32) {
	for t.at(t.at(z).parent).color == red {
		p := t.at(z).parent
		g := t.at(p).parent
		if p == t.at(g).left {
			u := t.at(g).right // uncle
			if t.at(u).color == red {
				// red uncle: push the violation to the grandparent
				t.at(p).color = black
				t.at(u).color = black
				t.at(g).color = red
				z = g
			} else {
				if z == t.at(p).right {
					// inner grandchild: rotate into the outer shape
					z = p
					t.rotateLeft(z)
					p = t.at(z).parent
					g = t.at(p).parent
				}
				t.at(p).color = black
				t.at(g).color = red
				t.rotateRight(g)
			}
		} else {
			// mirror cases
			u := t.at(g).left // uncle
			if t.at(u).color == red {
				t.at(p).color = black
				t.at(u).color = black
				t.at(g).color = red
				z = g
			} else {
				if z == t.at(p).left {
					z = p
					t.rotateRight(z)
					p = t.at(z).parent
					g = t.at(p).parent
				}
				t.at(p).color = black
				t.at(g).color = red
				t.rotateLeft(g)
			}
		}
	}
	// the violation may have been pushed all the way up
	t.at(t.root).color = black
}
