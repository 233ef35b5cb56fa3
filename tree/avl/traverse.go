package avl

import (
	"fmt"

	"go.lepak.sg/rangetree/chops"
	"go.lepak.sg/rangetree/tree"
	"go.lepak.sg/rangetree/tree/iterator"
)

// InOrder applies f to each value in the tree in-order.
// If f returns false, the iteration is stopped early.
func (t *Tree[T]) InOrder(f func(v T) bool) {
	i := iterator.NewInOrder(t.root)
	for i.Next() {
		if !f(i.Item()) {
			return
		}
	}
}

// InOrderIterator returns an iterator object that yields
// values from the tree in-order.
// The result of calling Add while iterating is undefined.
func (t *Tree[T]) InOrderIterator() iterator.Iterator[T] {
	return iterator.NewInOrder(t.root)
}

// InOrderReverseIterator returns an iterator object that yields
// values from the tree from largest to smallest.
func (t *Tree[T]) InOrderReverseIterator() iterator.Iterator[T] {
	return iterator.NewInOrderReverse(t.root)
}

// InOrderCoroutine starts coroutine-style in-order iteration.
// The usage is as follows:
//
//	co := t.InOrderCoroutine()
//	for v := range co.Items() {
//		... do stuff with v ...
//		if v meets some stopping condition {
//			co.Stop()
//			break
//		}
//	}
//
// Note: InOrderCoroutine starts a goroutine, which exits when either
// Stop is called or the iteration is finished. The tree must not be
// modified until then.
func (t *Tree[T]) InOrderCoroutine() chops.CoIterator[T] {
	return chops.CoIterate[T](t.InOrderIterator())
}

// Values returns all values in order.
func (t *Tree[T]) Values() []T {
	out := make([]T, 0, t.size)
	t.InOrder(func(v T) bool {
		out = append(out, v)
		return true
	})
	return out
}

// String draws the tree, one node per line, with each node's
// weight, height and balance:
//	20 [w=3 h=1 b=+0]
//	├─L─10 [w=1 h=0 b=+0]
//	└─R─30 [w=1 h=0 b=+0]
func (t *Tree[T]) String() string {
	return tree.Format(t.root, func(n *tree.Node[T, aggregate]) string {
		return fmt.Sprintf("%v [w=%d h=%d b=%+d]",
			n.Key, n.Extra.weight, n.Extra.height, n.Extra.balance)
	})
}
