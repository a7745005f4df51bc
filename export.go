package rbtree

import "iter"

// ExportOrdered writes the tree's keys in non-decreasing order into
// dst, stopping when dst is full, and returns the number of keys
// written. The traversal is read-only.
func (t *Tree) ExportOrdered(dst []int64) int {
	n := 0
	t.ForEachAscending(func(key int64) bool {
		if n >= len(dst) {
			return false
		}
		dst[n] = key
		n++
		return true
	})
	return n
}

// Keys returns all keys in non-decreasing order. This allocates a slice
// for the whole tree; prefer ExportOrdered or RangeKeys for bounded or
// streaming access.
func (t *Tree) Keys() []int64 {
	if !t.alive() || t.size == 0 {
		return nil
	}
	keys := make([]int64, t.size)
	n := t.ExportOrdered(keys)
	assert(n == t.size, "in-order export disagrees with tree size")
	return keys
}

// ForEachAscending applies fn to every key from smallest to largest.
// If fn returns false, iteration stops early.
func (t *Tree) ForEachAscending(fn func(int64) bool) {
	if !t.alive() {
		return
	}
	for n := t.minSlot(t.root); n != sentinel; n = t.nextSlot(n) {
		if !fn(t.at(n).key) {
			return
		}
	}
}

// ForEachDescending applies fn to every key from largest to smallest.
// If fn returns false, iteration stops early.
func (t *Tree) ForEachDescending(fn func(int64) bool) {
	if !t.alive() {
		return
	}
	for n := t.maxSlot(t.root); n != sentinel; n = t.prevSlot(n) {
		if !fn(t.at(n).key) {
			return
		}
	}
}

// RangeKeys returns an iterator over all keys in non-decreasing order.
func (t *Tree) RangeKeys() iter.Seq[int64] {
	return func(yield func(int64) bool) {
		t.ForEachAscending(yield)
	}
}

// NodeInfo describes one node during a structural walk. It exists for
// debugging and rendering tools.
type NodeInfo struct {
	Key   int64
	Red   bool
	Depth int // root has depth 0
}

// EachNode visits every node in-order together with its color and
// depth. If fn returns false, the walk stops early.
//
// Clients must not mutate the tree from within fn.
func (t *Tree) EachNode(fn func(NodeInfo) bool) {
	if !t.alive() {
		return
	}
	t.eachNode(t.root, 0, fn)
}

func (t *Tree) eachNode(n uint32, depth int, fn func(NodeInfo) bool) bool {
	if n == sentinel {
		return true
	}
	if !t.eachNode(t.at(n).left, depth+1, fn) {
		return false
	}
	info := NodeInfo{
		Key:   t.at(n).key,
		Red:   t.at(n).color == red,
		Depth: depth,
	}
	if !fn(info) {
		return false
	}
	return t.eachNode(t.at(n).right, depth+1, fn)
}
