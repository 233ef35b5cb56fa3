package avl

import (
	"go.lepak.sg/rangetree/tree"
)

// Handle is a read-only view of one node, for inspecting the shape of
// a tree. The zero Handle, and the handle past a missing child, is not
// Valid. Value, Height, Balance and Weight panic on an invalid handle.
//
// A Handle stays attached to its node, not to its position: after
// further calls to Add the node may have been rotated elsewhere.
type Handle[T any] struct {
	n *tree.Node[T, aggregate]
}

// Valid reports whether h refers to a node.
func (h Handle[T]) Valid() bool {
	return h.n != nil
}

func (h Handle[T]) mustValid() {
	if h.n == nil {
		panic("avl: use of invalid Handle")
	}
}

func (h Handle[T]) Value() T {
	h.mustValid()
	return h.n.Key
}

// Left returns the left child, which may be invalid.
// It is safe to call on an invalid handle.
func (h Handle[T]) Left() Handle[T] {
	if h.n == nil {
		return h
	}
	return Handle[T]{n: h.n.Left}
}

// Right returns the right child, which may be invalid.
// It is safe to call on an invalid handle.
func (h Handle[T]) Right() Handle[T] {
	if h.n == nil {
		return h
	}
	return Handle[T]{n: h.n.Right}
}

// Parent returns the parent, which is invalid for the root.
// It is safe to call on an invalid handle.
func (h Handle[T]) Parent() Handle[T] {
	if h.n == nil {
		return h
	}
	return Handle[T]{n: h.n.Parent}
}

// Height is 0 for a leaf and one more than the taller child otherwise.
func (h Handle[T]) Height() int {
	h.mustValid()
	return h.n.Extra.height
}

// Balance is the left child's height minus the right child's height,
// counting a missing child as 0.
func (h Handle[T]) Balance() int {
	h.mustValid()
	return h.n.Extra.balance
}

// Weight is the number of nodes in the subtree rooted here, including
// this one.
func (h Handle[T]) Weight() int {
	h.mustValid()
	return h.n.Extra.weight
}
