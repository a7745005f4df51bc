package rbtree

// Find returns a handle to a node carrying key, or false if the key is
// not present. An absent key is an expected outcome, not an error. With
// duplicate keys the topmost match is returned.
func (t *Tree) Find(key int64) (NodeRef, bool) {
	if !t.alive() {
		return NodeRef{}, false
	}
	i := t.searchSlot(key)
	if i == sentinel {
		return NodeRef{}, false
	}
	return t.ref(i), true
}

// Min returns a handle to the node with the smallest key, or false on
// an empty tree.
func (t *Tree) Min() (NodeRef, bool) {
	if !t.alive() || t.root == sentinel {
		return NodeRef{}, false
	}
	return t.ref(t.minSlot(t.root)), true
}

// Max returns a handle to the node with the largest key, or false on an
// empty tree.
func (t *Tree) Max() (NodeRef, bool) {
	if !t.alive() || t.root == sentinel {
		return NodeRef{}, false
	}
	return t.ref(t.maxSlot(t.root)), true
}

// Successor returns the smallest key strictly greater than key, or
// false if no such key exists. key itself need not be present.
func (t *Tree) Successor(key int64) (int64, bool) {
	if !t.alive() {
		return 0, false
	}
	n := t.root
	succ := sentinel
	for n != sentinel {
		if key < t.at(n).key {
			succ = n
			n = t.at(n).left
		} else {
			n = t.at(n).right
		}
	}
	if succ == sentinel {
		return 0, false
	}
	return t.at(succ).key, true
}

// Predecessor returns the largest key strictly smaller than key, or
// false if no such key exists. key itself need not be present.
func (t *Tree) Predecessor(key int64) (int64, bool) {
	if !t.alive() {
		return 0, false
	}
	n := t.root
	pred := sentinel
	for n != sentinel {
		if key > t.at(n).key {
			pred = n
			n = t.at(n).right
		} else {
			n = t.at(n).left
		}
	}
	if pred == sentinel {
		return 0, false
	}
	return t.at(pred).key, true
}

func (t *Tree) searchSlot(key int64) uint32 {
	n := t.root
	for n != sentinel {
		switch {
		case key < t.at(n).key:
			n = t.at(n).left
		case key > t.at(n).key:
			n = t.at(n).right
		default:
			return n
		}
	}
	return sentinel
}

func (t *Tree) minSlot(n uint32) uint32 {
	if n == sentinel {
		return sentinel
	}
	for t.at(n).left != sentinel {
		n = t.at(n).left
	}
	return n
}

func (t *Tree) maxSlot(n uint32) uint32 {
	if n == sentinel {
		return sentinel
	}
	for t.at(n).right != sentinel {
		n = t.at(n).right
	}
	return n
}

// nextSlot returns the in-order successor slot of n.
func (t *Tree) nextSlot(n uint32) uint32 {
	if t.at(n).right != sentinel {
		return t.minSlot(t.at(n).right)
	}
	p := t.at(n).parent
	for p != sentinel && n == t.at(p).right {
		n = p
		p = t.at(p).parent
	}
	return p
}

// prevSlot returns the in-order predecessor slot of n.
func (t *Tree) prevSlot(n uint32) uint32 {
	if t.at(n).left != sentinel {
		return t.maxSlot(t.at(n).left)
	}
	p := t.at(n).parent
	for p != sentinel && n == t.at(p).left {
		n = p
		p = t.at(p).parent
	}
	return p
}
