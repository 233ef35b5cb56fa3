package iterator

import (
	"go.lepak.sg/rangetree/tree"
)

var _ Iterator[int] = (*InOrder[int, struct{}])(nil)

// InOrder is an iterator object over a binary tree whose
// nodes carry parent links. It uses O(1) memory.
// The usage should be pretty familiar:
//	i := iterator.NewInOrder(root)
//	for i.Next() {
//		k := i.Item()
//		... do stuff with k ...
//	}
// The iterator may be abandoned at any time.
// The result of mutating the tree while iterating over it is undefined.
type InOrder[T any, X any] struct {
	root, at *tree.Node[T, X]
	done     bool
}

// NewInOrder returns a new InOrder iterator over the tree rooted at root.
// Note: This is meant to be called by other tree implementations.
func NewInOrder[T any, X any](root *tree.Node[T, X]) *InOrder[T, X] {
	return &InOrder[T, X]{
		root: root,
	}
}

// Next returns true if there is a next node to yield with Item.
// Once Next has returned false it keeps returning false.
func (i *InOrder[T, X]) Next() bool {
	// https://www.cs.odu.edu/~zeil/cs361/latest/Public/treetraversal/index.html
	if i == nil || i.done {
		return false
	}

	if i.at == nil {
		i.at = i.root
		if i.at == nil {
			i.done = true
			return false
		}

		for i.at.Left != nil {
			i.at = i.at.Left
		}
		return true
	}

	if i.at.Right != nil {
		i.at = i.at.Right

		for i.at.Left != nil {
			i.at = i.at.Left
		}

		return true
	}

	// climb until we come up from a left child
	var child *tree.Node[T, X]

	for i.at != nil {
		i.at, child = i.at.Parent, i.at
		if i.at != nil && i.at.Left == child {
			return true
		}
	}

	i.done = true
	return false
}

// Item returns the current key of the iterator.
func (i *InOrder[T, _]) Item() T {
	return i.at.Key
}
