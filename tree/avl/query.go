package avl

import (
	"go.lepak.sg/rangetree/tree"
)

// Distance returns how many values v in the tree satisfy lower <= v < upper.
//
// The search descends to the first node inside the range. Everything
// else in range hangs below that node, on the upper end of its left
// subtree and the lower end of its right subtree, and each of those is
// counted along a single path using subtree weights. The cost is
// O(height) regardless of how many values are in range.
//
// If lower > upper there is no such node and Distance returns 0.
func (t *Tree[T]) Distance(lower, upper T) int {
	n := t.root

	for n != nil {
		if t.cmp(lower, n.Key) == tree.Greater {
			// n and its left subtree are below the range
			n = n.Right
		} else if t.cmp(upper, n.Key) != tree.Greater {
			// n and its right subtree are at or above upper
			n = n.Left
		} else {
			return 1 + t.countAtLeast(n.Left, lower) + t.countBelow(n.Right, upper)
		}
	}

	return 0
}

// countAtLeast counts values >= lower in the subtree rooted at n.
func (t *Tree[T]) countAtLeast(n *tree.Node[T, aggregate], lower T) int {
	count := 0

	for n != nil {
		if t.cmp(lower, n.Key) == tree.Greater {
			n = n.Right
		} else {
			count += 1 + weightOf(n.Right)
			n = n.Left
		}
	}

	return count
}

// countBelow counts values < upper in the subtree rooted at n.
func (t *Tree[T]) countBelow(n *tree.Node[T, aggregate], upper T) int {
	count := 0

	for n != nil {
		if t.cmp(upper, n.Key) == tree.Greater {
			count += 1 + weightOf(n.Left)
			n = n.Right
		} else {
			n = n.Left
		}
	}

	return count
}

// Rank returns how many values in the tree are strictly less than v.
func (t *Tree[T]) Rank(v T) int {
	return t.countBelow(t.root, v)
}

// Select returns the value at index i of the tree's in-order sequence,
// so Select(0) is the minimum. If i is out of range, ok is false and
// the returned value is the zero T.
func (t *Tree[T]) Select(i int) (v T, ok bool) {
	if i < 0 || i >= t.size {
		return
	}

	n := t.root
	for n != nil {
		lw := weightOf(n.Left)
		switch {
		case i < lw:
			n = n.Left
		case i == lw:
			return n.Key, true
		default:
			i -= lw + 1
			n = n.Right
		}
	}

	panic("impossible: weights disagree with size")
}

// Contains searches for v in the tree and returns true if it was found.
func (t *Tree[T]) Contains(v T) bool {
	n := t.root

	for n != nil {
		switch t.cmp(v, n.Key) {
		case tree.Less:
			n = n.Left
		case tree.Greater:
			n = n.Right
		case tree.Equal:
			return true
		default:
			panic("unreachable")
		}
	}

	return false
}
