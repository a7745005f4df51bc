package rbtree

import "errors"

var (
	// ErrInvalidConfig signals an invalid tree configuration.
	ErrInvalidConfig = errors.New("rbtree: invalid configuration")
	// ErrAllocation signals that a node could not be allocated because the
	// configured arena capacity is exhausted. The tree is left unchanged.
	ErrAllocation = errors.New("rbtree: arena capacity exhausted")
	// ErrInvalidNode signals a node reference which does not (or no longer)
	// belong to the tree it was used with.
	ErrInvalidNode = errors.New("rbtree: invalid node reference")
	// ErrTreeDestroyed signals an operation on a nil or already destroyed tree.
	ErrTreeDestroyed = errors.New("rbtree: tree is nil or has been destroyed")
	// ErrInvariant signals a structural invariant violation found by Check.
	ErrInvariant = errors.New("rbtree: invariant violation")
)
