package iterator

import (
	"go.lepak.sg/rangetree/tree"
)

var _ Iterator[int] = (*InOrderStack[int, any])(nil)

// InOrderStack is an iterator object over a binary tree.
// It is functionally equivalent to InOrder, but this does
// not rely on the node parent pointer, instead keeping
// an internal stack of previous nodes. It is useful for
// checking that parent links agree with child links.
type InOrderStack[T any, X any] struct {
	root    *tree.Node[T, X]
	stack   []*tree.Node[T, X]
	started bool
}

// Recursive in order iteration looks like this:
//	func visit(n *Node, f func(*Node)) {
//		if n == nil {
//			return
//		}
//		visit(n.Left, f)	--(1)
//		f(n)
//		visit(n.Right, f)	--(2)
//	}
// When Next is called, everything up to (1) can be run,
// all the way down to the leftmost child node. This adds
// visit stack frames and we can replicate this in i.stack.
// The associated call to Item is equivalent to f(n).
// The next call to Next continues from (2): pop the frame
// and push the left spine of its right child.

// NewInOrderStack creates a new in-order iterator.
// If the tree's height is known, pass it as heightHint.
// Otherwise it's safe to leave it as 0.
func NewInOrderStack[T any, X any](
	root *tree.Node[T, X], heightHint int) *InOrderStack[T, X] {
	if heightHint < 0 {
		heightHint = 0
	}
	return &InOrderStack[T, X]{
		root:  root,
		stack: make([]*tree.Node[T, X], 0, heightHint+1),
	}
}

func (i *InOrderStack[T, X]) pushLeft(n *tree.Node[T, X]) {
	for n != nil {
		i.stack = append(i.stack, n)
		n = n.Left
	}
}

func (i *InOrderStack[T, X]) Next() bool {
	if !i.started {
		i.started = true
		i.pushLeft(i.root)
		return len(i.stack) > 0
	}

	if len(i.stack) == 0 {
		return false
	}

	pop := i.stack[len(i.stack)-1]
	i.stack = i.stack[:len(i.stack)-1]
	i.pushLeft(pop.Right)

	return len(i.stack) > 0
}

func (i *InOrderStack[T, X]) Item() T {
	return i.stack[len(i.stack)-1].Key
}
