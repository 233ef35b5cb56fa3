// Package testutils has helpers shared by tests in this module.
package testutils

import (
	"time"

	"github.com/stretchr/testify/assert"
)

type TestT interface {
	Helper()
	Logf(string, ...any)
	Errorf(string, ...any) // also used by testify/assert
}

// DrainBlocking expects to receive data in order from ch, then expects
// ch to be closed. Unlike a plain range it gives up after timeout per
// receive, so a producer that hangs fails the test instead of the run.
func DrainBlocking[T any](t TestT, data []T, ch <-chan T, timeout time.Duration) {
	t.Helper()
	t.Logf("draining: expecting %v", data)

	for i, datum := range data {
		select {
		case el, ok := <-ch:
			if !ok {
				t.Errorf("channel closed early, expecting i=%d %v", i, datum)
				return
			}
			assert.Equal(t, datum, el)
		case <-time.After(timeout):
			t.Errorf("timed out, expecting i=%d %v", i, datum)
			return
		}
	}

	select {
	case el, ok := <-ch:
		if ok {
			t.Errorf("channel should be closed, but received: %v", el)
		}
	case <-time.After(timeout):
		t.Errorf("at the end of draining, channel was not closed after %v", timeout)
	}
}
