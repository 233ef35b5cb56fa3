package avl

import (
	"math/rand"

	"golang.org/x/exp/constraints"
)

// BuildRandom builds a tree with num values.
// Values are in the range [0, num) and are inserted in a random order.
// The seed for the random insert order is a parameter,
// which ensures repeatable results.
func BuildRandom(num int, seed int64) *Tree[int] {
	rd := rand.New(rand.NewSource(seed))

	tr := New[int]()
	for _, v := range rd.Perm(num) {
		tr.Add(v)
	}

	return tr
}

// BuildSorted builds a tree by inserting 0, 1, ..., num-1 in increasing
// order, which is the worst case for an unbalanced search tree.
func BuildSorted(num int) *Tree[int] {
	tr := New[int]()
	for v := 0; v < num; v++ {
		tr.Add(v)
	}

	return tr
}

// BuildFrom builds a tree by inserting vs in order.
func BuildFrom[S ~[]T, T constraints.Ordered](vs S) *Tree[T] {
	tr := New[T]()
	for _, v := range vs {
		tr.Add(v)
	}

	return tr
}
