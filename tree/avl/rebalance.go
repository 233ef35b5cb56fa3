package avl

import (
	"go.lepak.sg/rangetree/tree"
)

// rebalance walks from n up to the root, rotating wherever one side
// has grown two levels taller than the other. Aggregates on the path
// must already be up to date.
func (t *Tree[T]) rebalance(n *tree.Node[T, aggregate]) {
	for n != nil {
		switch s := skew(n); {
		case s > 1:
			t.fixLeftHeavy(n)
		case s < -1:
			t.fixRightHeavy(n)
		}

		// After a rotation n has moved down a level, so this visits
		// the node that replaced it before carrying on upwards.
		n = n.Parent
	}
}

// fixLeftHeavy handles the left-left case with a single right rotation
// and the left-right case by first straightening the left child.
func (t *Tree[T]) fixLeftHeavy(n *tree.Node[T, aggregate]) {
	if n.Left == nil {
		panic("impossible: left-heavy node has no left child")
	}

	if skew(n.Left) < 0 {
		t.rotateLeft(n.Left)
	}
	t.rotateRight(n)
}

// fixRightHeavy is fixLeftHeavy, mirrored.
func (t *Tree[T]) fixRightHeavy(n *tree.Node[T, aggregate]) {
	if n.Right == nil {
		panic("impossible: right-heavy node has no right child")
	}

	if skew(n.Right) > 0 {
		t.rotateRight(n.Right)
	}
	t.rotateLeft(n)
}

func (t *Tree[T]) rotateLeft(n *tree.Node[T, aggregate]) {
	t.promoted(n.RotateLeft())
	refreshUp(n)
}

func (t *Tree[T]) rotateRight(n *tree.Node[T, aggregate]) {
	t.promoted(n.RotateRight())
	refreshUp(n)
}

// promoted makes p the root if a rotation left it without a parent.
func (t *Tree[T]) promoted(p *tree.Node[T, aggregate]) {
	if p.Parent == nil {
		t.root = p
	}
}
