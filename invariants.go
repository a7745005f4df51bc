package rbtree

import "fmt"

// Check validates the full red-black invariant set plus arena
// consistency.
//
// This checker is intentionally strict and meant to be run from tests
// after mutations; it is O(n) and not part of the regular operation
// surface.
func (t *Tree) Check() error {
	if t == nil {
		return fmt.Errorf("%w: nil tree", ErrInvariant)
	}
	if t.dead {
		return fmt.Errorf("%w: destroyed tree", ErrTreeDestroyed)
	}
	nilNode := t.at(sentinel)
	if nilNode.color != black {
		return fmt.Errorf("%w: sentinel is not black", ErrInvariant)
	}
	if nilNode.left != sentinel || nilNode.right != sentinel {
		return fmt.Errorf("%w: sentinel children were mutated", ErrInvariant)
	}
	if live := len(t.nodes) - 1 - len(t.freed); live != t.size {
		return fmt.Errorf("%w: arena holds %d live slots but size is %d", ErrInvariant, live, t.size)
	}
	if t.root == sentinel {
		if t.size != 0 {
			return fmt.Errorf("%w: empty tree has size %d", ErrInvariant, t.size)
		}
		return nil
	}
	if t.at(t.root).color != black {
		return fmt.Errorf("%w: root is red", ErrInvariant)
	}
	if t.at(t.root).parent != sentinel {
		return fmt.Errorf("%w: root has a parent link", ErrInvariant)
	}
	_, count, _, _, err := t.checkSlot(t.root)
	if err != nil {
		return err
	}
	if count != t.size {
		return fmt.Errorf("%w: %d reachable nodes but size %d", ErrInvariant, count, t.size)
	}
	return nil
}

// checkSlot validates the subtree rooted at n and returns its black
// height, node count and key range. The ordering check is weak
// (left <= node <= right): rotations may move equal keys into either
// subtree of their equal.
func (t *Tree) checkSlot(n uint32) (blackHeight, count int, min, max int64, err error) {
	nd := t.at(n)
	if nd.unused {
		return 0, 0, 0, 0, fmt.Errorf("%w: freed slot %d is still linked", ErrInvariant, n)
	}
	if nd.color != red && nd.color != black {
		return 0, 0, 0, 0, fmt.Errorf("%w: slot %d has color %d", ErrInvariant, n, nd.color)
	}
	min, max = nd.key, nd.key
	leftBH, rightBH := 0, 0
	if l := nd.left; l != sentinel {
		if t.at(l).parent != n {
			return 0, 0, 0, 0, fmt.Errorf("%w: broken parent link below slot %d", ErrInvariant, n)
		}
		if nd.color == red && t.at(l).color == red {
			return 0, 0, 0, 0, fmt.Errorf("%w: red-red edge at key %d", ErrInvariant, nd.key)
		}
		var lc int
		var lmin, lmax int64
		leftBH, lc, lmin, lmax, err = t.checkSlot(l)
		if err != nil {
			return 0, 0, 0, 0, err
		}
		if lmax > nd.key {
			return 0, 0, 0, 0, fmt.Errorf("%w: left subtree of key %d holds key %d", ErrInvariant, nd.key, lmax)
		}
		count += lc
		min = lmin
	}
	if r := nd.right; r != sentinel {
		if t.at(r).parent != n {
			return 0, 0, 0, 0, fmt.Errorf("%w: broken parent link below slot %d", ErrInvariant, n)
		}
		if nd.color == red && t.at(r).color == red {
			return 0, 0, 0, 0, fmt.Errorf("%w: red-red edge at key %d", ErrInvariant, nd.key)
		}
		var rc int
		var rmin, rmax int64
		rightBH, rc, rmin, rmax, err = t.checkSlot(r)
		if err != nil {
			return 0, 0, 0, 0, err
		}
		if rmin < nd.key {
			return 0, 0, 0, 0, fmt.Errorf("%w: right subtree of key %d holds key %d", ErrInvariant, nd.key, rmin)
		}
		count += rc
		max = rmax
	}
	if leftBH != rightBH {
		return 0, 0, 0, 0, fmt.Errorf("%w: black height %d vs %d below key %d",
			ErrInvariant, leftBH, rightBH, nd.key)
	}
	blackHeight = leftBH
	if nd.color == black {
		blackHeight++
	}
	return blackHeight, count + 1, min, max, nil
}
