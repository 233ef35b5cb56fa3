// Package chops provides channel operations, currently coroutine-style
// iteration over anything with Next and Item methods.
package chops

// Iterator describes some iterator over a data structure.
// Next advances and reports whether Item may be called.
// It must not require closing at the end of iteration,
// as CoIterate may abandon it at any time.
type Iterator[T any] interface {
	Next() bool
	Item() T
}

// CoIterator is returned from CoIterate and abstracts
// communication with the iterating goroutine.
type CoIterator[T any] struct {
	items <-chan T
	stop  chan<- struct{}
}

// Items returns the channel on which the items from the iterator
// are sent. It is closed once the iterator is exhausted or stopped.
func (c CoIterator[T]) Items() <-chan T {
	return c.items
}

// Stop stops the iteration. It must not be called more than once.
// If Items has already been closed, Stop is not needed.
//
// After Stop, Items may still yield at most one more item before
// it is closed, so keep ranging over it (or abandon it) rather than
// expecting it to be closed immediately.
func (c CoIterator[T]) Stop() {
	close(c.stop)
}

// CoIterate starts coroutine-style iteration.
// The usage is as follows:
//
//	co := CoIterate[T](x.Iterator())
//	for i := range co.Items() {
//		... do stuff with i ...
//		if i meets some stopping condition {
//			co.Stop()
//			break
//		}
//	}
//
// CoIterate starts a goroutine, which exits when either Stop is
// called or the iterator is exhausted. If you follow the usage
// above, the goroutine will not outlive the loop.
//
// A nil iterator yields nothing. If you might pass a typed nil pointer,
// make sure its methods can handle being called with a nil receiver.
func CoIterate[T any](iterator Iterator[T]) CoIterator[T] {
	out := make(chan T)
	stop := make(chan struct{})
	co := CoIterator[T]{
		items: out,
		stop:  stop,
	}

	if iterator == nil {
		close(out)
		return co
	}

	go func() {
		defer close(out)
		for iterator.Next() {
			select {
			case <-stop:
				return
			default:
			}

			select {
			case out <- iterator.Item():
			case <-stop:
				return
			}
		}
	}()

	return co
}
