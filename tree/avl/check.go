package avl

import (
	"errors"
	"fmt"

	"go.lepak.sg/rangetree/tree"
	"go.lepak.sg/rangetree/tree/iterator"
)

// ErrCorrupt is wrapped by every error returned from Check.
var ErrCorrupt = errors.New("avl: tree invariant violated")

// Check walks the whole tree and verifies every invariant listed on Tree,
// plus the consistency of parent and child links. It returns nil if the
// tree is sound, or an error wrapping ErrCorrupt describing the first
// problem found. It takes O(n) time.
func (t *Tree[T]) Check() error {
	if t.root == nil {
		if t.size != 0 {
			return fmt.Errorf("%w: empty tree has size %d", ErrCorrupt, t.size)
		}
		return nil
	}

	if t.root.Parent != nil {
		return fmt.Errorf("%w: root %v has a parent", ErrCorrupt, t.root.Key)
	}

	if err := checkNode(t.root); err != nil {
		return err
	}

	if w := t.root.Extra.weight; w != t.size {
		return fmt.Errorf("%w: root weight %d, size %d", ErrCorrupt, w, t.size)
	}

	// The stack iterator ignores parent links, so this also
	// catches child links that the parent links disagree with.
	i := iterator.NewInOrderStack(t.root, t.root.Extra.height)
	var prev T
	for n := 0; i.Next(); n++ {
		cur := i.Item()
		if n > 0 && t.cmp(prev, cur) == tree.Greater {
			return fmt.Errorf("%w: %v sorts after %v", ErrCorrupt, prev, cur)
		}
		prev = cur
	}

	return nil
}

// checkNode checks the subtree at n, children first, so that a bad
// aggregate is reported at the lowest node that has one.
func checkNode[T any](n *tree.Node[T, aggregate]) error {
	for _, c := range [...]*tree.Node[T, aggregate]{n.Left, n.Right} {
		if c == nil {
			continue
		}
		if c.Parent != n {
			return fmt.Errorf("%w: child %v of %v does not link back", ErrCorrupt, c.Key, n.Key)
		}
		if err := checkNode(c); err != nil {
			return err
		}
	}

	if want := aggregateOf(n); n.Extra != want {
		return fmt.Errorf("%w: node %v has %+v, want %+v", ErrCorrupt, n.Key, n.Extra, want)
	}

	if s := skew(n); s < -1 || s > 1 {
		return fmt.Errorf("%w: node %v is unbalanced, skew %d", ErrCorrupt, n.Key, s)
	}

	if b := n.Extra.balance; b < -1 || b > 1 {
		return fmt.Errorf("%w: node %v has balance %d", ErrCorrupt, n.Key, b)
	}

	return nil
}
