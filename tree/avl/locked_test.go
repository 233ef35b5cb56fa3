package avl

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
	"golang.org/x/sync/errgroup"
)

func TestLocked(t *testing.T) {
	l := NewLocked(New[int]())
	l.AddAll(5, 3, 8)
	l.Add(3)

	assert.Equal(t, 4, l.Size())
	assert.Equal(t, 2, l.Distance(3, 4))
	assert.Equal(t, 2, l.Rank(5))
	assert.True(t, l.Contains(8))
	v, ok := l.Select(3)
	assert.True(t, ok)
	assert.Equal(t, 8, v)

	l.View(func(tr *Tree[int]) {
		assert.NoError(t, tr.Check())
		assert.Equal(t, 5, tr.Root().Value())
	})

	assert.Panics(t, func() { NewLocked[int](nil) })
}

func TestLocked_Concurrent(t *testing.T) {
	defer goleak.VerifyNone(t)

	const (
		writers   = 4
		perWriter = 500
		readers   = 8
	)

	l := NewLocked(New[int]())
	eg, ctx := errgroup.WithContext(context.Background())
	done := make(chan struct{})

	var writes errgroup.Group
	for w := 0; w < writers; w++ {
		w := w
		writes.Go(func() error {
			for i := 0; i < perWriter; i++ {
				l.Add(w*perWriter + i)
			}
			return nil
		})
	}

	for r := 0; r < readers; r++ {
		eg.Go(func() error {
			for {
				select {
				case <-done:
					return nil
				case <-ctx.Done():
					return ctx.Err()
				default:
				}

				size := l.Size()
				d := l.Distance(0, writers*perWriter)
				// the tree only grows, so a later count can't be smaller
				if d < size {
					return fmt.Errorf("Distance %d after Size %d", d, size)
				}

				var err error
				l.View(func(tr *Tree[int]) {
					err = tr.Check()
				})
				if err != nil {
					return err
				}
			}
		})
	}

	require.NoError(t, writes.Wait())
	close(done)
	require.NoError(t, eg.Wait())

	assert.Equal(t, writers*perWriter, l.Size())
	assert.Equal(t, writers*perWriter, l.Distance(0, writers*perWriter))
}
