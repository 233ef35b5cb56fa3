// Package tree holds the node shape and primitive operations shared
// by the binary tree implementations under it.
package tree

import (
	"golang.org/x/exp/constraints"
)

// Node is a binary tree node. Extra is whatever bookkeeping the
// owning tree implementation needs per node (heights, subtree sizes...).
// Trees that don't need any should use struct{}.
type Node[T any, X any] struct {
	Key                 T
	Extra               X
	Left, Right, Parent *Node[T, X]
}

// NodeOf returns a detached node holding k and x.
func NodeOf[T any, X any](k T, x X) *Node[T, X] {
	return &Node[T, X]{
		Key:   k,
		Extra: x,
	}
}

// BasicNodeOf returns a detached node with no extra data.
func BasicNodeOf[T any](k T) *Node[T, struct{}] {
	return &Node[T, struct{}]{
		Key: k,
	}
}

// IsLeaf is true if n has no children.
func (n *Node[T, X]) IsLeaf() bool {
	return n.Left == nil && n.Right == nil
}

// Comparable is implemented by key types that carry their own ordering.
// CompareTo returns a negative number, zero or a positive number when
// the receiver sorts before, with or after the argument.
type Comparable[T any] interface {
	CompareTo(T) int
}

// This allows T to mutate, for example if we defined:
//	type IntPtr *int
// and then implemented:
//	func (ip IntPtr) CompareTo(ip2 IntPtr) int {
//		return (*ip2)-(*ip)
//	}
// client code could mutate *IntPtr at any time, ruining our tree invariants.
// Prefer value types.

type Order int

const (
	Less Order = iota - 1
	Equal
	Greater
)

func (o Order) String() string {
	switch o {
	case Less:
		return "Less"
	case Equal:
		return "Equal"
	case Greater:
		return "Greater"
	default:
		return "<invalid tree.Order>"
	}
}

// Compare orders two values of a built-in ordered type.
func Compare[T constraints.Ordered](l, r T) Order {
	if l < r {
		return Less
	} else if l > r {
		return Greater
	} else {
		return Equal
	}
}

// CompareTo orders two values through their CompareTo method,
// squashing the result into an Order.
func CompareTo[T Comparable[T]](l, r T) Order {
	c := l.CompareTo(r)
	switch {
	case c < 0:
		return Less
	case c > 0:
		return Greater
	default:
		return Equal
	}
}
