package tree

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newCompleteTree_2Tall() *Node[int, struct{}] {
	t := &Node[int, struct{}]{
		Left: &Node[int, struct{}]{
			Left: &Node[int, struct{}]{
				Key: 1,
			},
			Key: 2,
			Right: &Node[int, struct{}]{
				Key: 3,
			},
		},
		Key: 4,
		Right: &Node[int, struct{}]{
			Left: &Node[int, struct{}]{
				Key: 5,
			},
			Key: 6,
			Right: &Node[int, struct{}]{
				Key: 7,
			},
		},
	}

	t.Left.Left.Parent = t.Left
	t.Left.Right.Parent = t.Left
	t.Left.Parent = t

	t.Right.Left.Parent = t.Right
	t.Right.Right.Parent = t.Right
	t.Right.Parent = t

	return t
}

// walk collects keys in order and checks that every child
// links back to its parent.
func walk(t *testing.T, n *Node[int, struct{}], keys []int) []int {
	if n == nil {
		return keys
	}
	if n.Left != nil {
		assert.Same(t, n, n.Left.Parent, "left child of %d", n.Key)
	}
	if n.Right != nil {
		assert.Same(t, n, n.Right.Parent, "right child of %d", n.Key)
	}
	keys = walk(t, n.Left, keys)
	keys = append(keys, n.Key)
	return walk(t, n.Right, keys)
}

func TestNode_RotateLeft(t *testing.T) {
	tr := newCompleteTree_2Tall()

	should6 := tr.RotateLeft()

	assert.Equal(t, 6, should6.Key)
	assert.Nil(t, should6.Parent)
	assert.Equal(t, 4, should6.Left.Key)
	assert.Equal(t, 5, should6.Left.Right.Key)
	assert.Equal(t, 2, should6.Left.Left.Key)
	assert.Equal(t, []int{1, 2, 3, 4, 5, 6, 7}, walk(t, should6, nil))
}

func TestNode_RotateRight(t *testing.T) {
	tr := newCompleteTree_2Tall()

	should2 := tr.RotateRight()

	assert.Equal(t, 2, should2.Key)
	assert.Nil(t, should2.Parent)
	assert.Equal(t, 4, should2.Right.Key)
	assert.Equal(t, 3, should2.Right.Left.Key)
	assert.Equal(t, 6, should2.Right.Right.Key)
	assert.Equal(t, []int{1, 2, 3, 4, 5, 6, 7}, walk(t, should2, nil))
}

func TestNode_RotateSubtree(t *testing.T) {
	tr := newCompleteTree_2Tall()

	// rotating an inner node must redirect the parent's child pointer
	should3 := tr.Left.RotateLeft()
	assert.Equal(t, 3, should3.Key)
	assert.Same(t, tr, should3.Parent)
	assert.Same(t, should3, tr.Left)
	assert.Nil(t, should3.Right)
	assert.Equal(t, 2, should3.Left.Key)

	should7 := tr.Right.RotateLeft()
	assert.Same(t, should7, tr.Right)
	assert.Equal(t, []int{1, 2, 3, 4, 5, 6, 7}, walk(t, tr, nil))
}

func TestNode_RotateNilInner(t *testing.T) {
	// 1 -> 2 -> 3 chain, no inner grandchild
	n1 := BasicNodeOf(1)
	n2 := BasicNodeOf(2)
	n3 := BasicNodeOf(3)
	n1.Right, n2.Parent = n2, n1
	n2.Right, n3.Parent = n3, n2

	root := n1.RotateLeft()
	require.Same(t, n2, root)
	assert.Same(t, n1, root.Left)
	assert.Same(t, n3, root.Right)
	assert.Nil(t, n1.Right)
	assert.True(t, n1.IsLeaf())

	root = root.RotateRight()
	require.Same(t, n1, root)
	assert.Nil(t, root.Left)
	assert.Equal(t, []int{1, 2, 3}, walk(t, root, nil))
}

func TestNode_RotatePanics(t *testing.T) {
	var nilNode *Node[int, struct{}]
	assert.PanicsWithValue(t, "cannot RotateLeft on nil", func() { nilNode.RotateLeft() })
	assert.PanicsWithValue(t, "cannot RotateRight on nil", func() { nilNode.RotateRight() })

	leaf := BasicNodeOf(1)
	assert.PanicsWithValue(t, "cannot RotateLeft with nil right", func() { leaf.RotateLeft() })
	assert.PanicsWithValue(t, "cannot RotateRight with nil left", func() { leaf.RotateRight() })
}

func TestCompare(t *testing.T) {
	assert.Equal(t, Less, Compare(1, 2))
	assert.Equal(t, Equal, Compare("a", "a"))
	assert.Equal(t, Greater, Compare(2.5, 1.0))
	assert.Equal(t, "Greater", Greater.String())
	assert.Equal(t, "<invalid tree.Order>", Order(5).String())
}

type version struct{ major, minor int }

func (v version) CompareTo(o version) int {
	if v.major != o.major {
		return v.major - o.major
	}
	return v.minor - o.minor
}

func TestCompareTo(t *testing.T) {
	assert.Equal(t, Less, CompareTo(version{1, 2}, version{1, 10}))
	assert.Equal(t, Greater, CompareTo(version{2, 0}, version{1, 10}))
	assert.Equal(t, Equal, CompareTo(version{3, 3}, version{3, 3}))
}
