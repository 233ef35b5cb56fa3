package avl

import (
	"go.lepak.sg/rangetree/tree"
)

// aggregate is the per-node bookkeeping, cached from the children.
type aggregate struct {
	height  int
	balance int
	weight  int
}

// heightOf counts a missing node as -1, which puts a leaf at 0.
func heightOf[T any](n *tree.Node[T, aggregate]) int {
	if n == nil {
		return -1
	}
	return n.Extra.height
}

// balanceHeightOf counts a missing node as 0. This is the height used
// for the stored balance; a leaf child and no child look the same.
func balanceHeightOf[T any](n *tree.Node[T, aggregate]) int {
	if n == nil {
		return 0
	}
	return n.Extra.height
}

func weightOf[T any](n *tree.Node[T, aggregate]) int {
	if n == nil {
		return 0
	}
	return n.Extra.weight
}

// skew is what rebalancing looks at: left height - right height with a
// missing child at -1. It differs from the stored balance only on a node
// with exactly one child, where skew is ±1 and the balance is 0.
func skew[T any](n *tree.Node[T, aggregate]) int {
	return heightOf(n.Left) - heightOf(n.Right)
}

// aggregateOf computes what n's aggregate should be from its children.
func aggregateOf[T any](n *tree.Node[T, aggregate]) aggregate {
	l, r := n.Left, n.Right
	return aggregate{
		height:  1 + max(heightOf(l), heightOf(r)),
		balance: balanceHeightOf(l) - balanceHeightOf(r),
		weight:  1 + weightOf(l) + weightOf(r),
	}
}

// refreshUp recomputes the aggregates of n and then of each of its
// ancestors, bottom-up, stopping after the root.
func refreshUp[T any](n *tree.Node[T, aggregate]) {
	for ; n != nil; n = n.Parent {
		n.Extra = aggregateOf(n)
	}
}
