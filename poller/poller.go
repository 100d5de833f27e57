package poller

import (
	"testing"
	"time"
)

// pollInterval is how often poll is retried.
const pollInterval = 5 * time.Millisecond

// settleFor is how long a satisfied condition must keep holding
// before WaitFor accepts it, to catch a value that flips true then
// false again.
const settleFor = 20 * time.Millisecond

// WaitFor continuously calls poll until check returns true. It then polls for
// a little longer to make sure that poll still returns a value v such that check(v)
// is true. If the condition never happens, or the condition becomes true
// and then false, it invokes t.Fatal.
//
// If poll returns an error, WaitFor calls Fatal.
//
// WaitFor returns the last value that poll returned.
func WaitFor[T any](t *testing.T, timeout time.Duration, poll func() (T, error), check func(T) bool) T {
	t.Helper()
	deadline := time.Now().Add(timeout)
	var last T
	var satisfiedSince time.Time
	for {
		v, err := poll()
		if err != nil {
			t.Fatalf("poller.WaitFor: poll returned an error: %v", err)
		}
		last = v
		now := time.Now()
		if check(v) {
			if satisfiedSince.IsZero() {
				satisfiedSince = now
			} else if now.Sub(satisfiedSince) >= settleFor {
				return last
			}
		} else if !satisfiedSince.IsZero() {
			t.Fatalf("poller.WaitFor: condition became true then false again: %v", v)
		}
		if now.After(deadline) {
			t.Fatalf("poller.WaitFor: condition never held for %v (last value: %v)", settleFor, last)
		}
		time.Sleep(pollInterval)
	}
}
