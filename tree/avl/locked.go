package avl

import (
	"sync"
)

// Locked wraps a Tree for concurrent use. Add takes an exclusive lock,
// so a rotation is never observed half done; queries share a read lock
// and may run in parallel with each other.
type Locked[T any] struct {
	mu sync.RWMutex
	t  *Tree[T]
}

// NewLocked wraps t. t must not be used directly afterwards.
func NewLocked[T any](t *Tree[T]) *Locked[T] {
	if t == nil {
		panic("avl: NewLocked of nil Tree")
	}

	return &Locked[T]{
		t: t,
	}
}

func (l *Locked[T]) Add(v T) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.t.Add(v)
}

// AddAll inserts every value in vs under a single lock.
func (l *Locked[T]) AddAll(vs ...T) {
	l.mu.Lock()
	defer l.mu.Unlock()

	for _, v := range vs {
		l.t.Add(v)
	}
}

func (l *Locked[T]) Distance(lower, upper T) int {
	l.mu.RLock()
	defer l.mu.RUnlock()

	return l.t.Distance(lower, upper)
}

func (l *Locked[T]) Size() int {
	l.mu.RLock()
	defer l.mu.RUnlock()

	return l.t.Size()
}

func (l *Locked[T]) Rank(v T) int {
	l.mu.RLock()
	defer l.mu.RUnlock()

	return l.t.Rank(v)
}

func (l *Locked[T]) Select(i int) (T, bool) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	return l.t.Select(i)
}

func (l *Locked[T]) Contains(v T) bool {
	l.mu.RLock()
	defer l.mu.RUnlock()

	return l.t.Contains(v)
}

// View calls f with the underlying tree while holding the read lock.
// f must not modify the tree, and must not keep Handles or iterators
// beyond its return.
func (l *Locked[T]) View(f func(t *Tree[T])) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	f(l.t)
}
