// Package avl implements an AVL tree whose nodes also track the size
// ("weight") of the subtree below them. The weights let the tree count
// how many stored values fall in a half-open range [lower, upper) by
// walking two root-to-leaf paths instead of visiting every value.
//
// Duplicate values are allowed. A value equal to a node's value is placed
// in that node's right subtree. Values can only be added; there is no
// removal.
package avl

import (
	"go.lepak.sg/rangetree/tree"
	"golang.org/x/exp/constraints"
)

// Tree is a weight-augmented AVL tree. It is not safe for concurrent use,
// not even one writer with concurrent readers, since a rotation rewrites
// several links in sequence. Wrap it in a Locked if it must be shared.
//
// Create a Tree with New, NewFunc or NewComparable. The zero Tree has
// no ordering and panics on Add.
//
// Invariants, holding between calls:
//   - Size() == weight of the root, or 0 if the tree is empty
//   - every node's weight is 1 + the weights of its children
//   - a leaf has height 0, any other node 1 + the larger child height
//   - every node's balance is left height - right height, with a
//     missing child counted as height 0, and lies in [-1, 1]
//   - an in-order walk yields non-decreasing values
type Tree[T any] struct {
	root *tree.Node[T, aggregate]
	size int
	cmp  func(a, b T) tree.Order
}

// New returns an empty tree over a built-in ordered type.
func New[T constraints.Ordered]() *Tree[T] {
	return NewFunc(tree.Compare[T])
}

// NewComparable returns an empty tree ordered by T's CompareTo method.
func NewComparable[T tree.Comparable[T]]() *Tree[T] {
	return NewFunc(tree.CompareTo[T])
}

// NewFunc returns an empty tree ordered by cmp, which must be a total
// order. If cmp panics, the panic reaches the caller of whichever Tree
// method invoked it; the tree never recovers it. A panic during Add
// happens before the tree is modified.
func NewFunc[T any](cmp func(a, b T) tree.Order) *Tree[T] {
	if cmp == nil {
		panic("avl: nil comparison function")
	}

	return &Tree[T]{
		cmp: cmp,
	}
}

// Size returns the number of values in the tree.
func (t *Tree[T]) Size() int {
	return t.size
}

// Root returns a read-only handle on the root node.
// The handle is not Valid if the tree is empty.
func (t *Tree[T]) Root() Handle[T] {
	return Handle[T]{n: t.root}
}

// Height returns the height of the root, or -1 if the tree is empty.
func (t *Tree[T]) Height() int {
	return heightOf(t.root)
}

// Add inserts v into the tree and rebalances it.
func (t *Tree[T]) Add(v T) {
	if t.cmp == nil {
		panic("avl: Add on a Tree without a comparison function")
	}

	n := tree.NodeOf(v, aggregate{weight: 1})

	if t.root == nil {
		t.root = n
		t.size = 1
		return
	}

	parent := t.attach(n)
	t.size++

	refreshUp(parent)
	t.rebalance(parent)
}

// attach hangs n below the first free slot on its search path
// and returns its new parent.
func (t *Tree[T]) attach(n *tree.Node[T, aggregate]) *tree.Node[T, aggregate] {
	at := t.root

	for {
		var slot **tree.Node[T, aggregate]

		switch t.cmp(n.Key, at.Key) {
		case tree.Less:
			slot = &at.Left
		case tree.Equal, tree.Greater:
			// ties go right
			slot = &at.Right
		default:
			panic("unreachable")
		}

		if *slot == nil {
			*slot = n
			n.Parent = at
			return at
		}

		at = *slot
	}
}
