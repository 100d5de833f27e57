package mapreduce

import "sync"

// barrier is a reusable cyclic rendezvous point for a fixed number of
// parties, generalizing the mutex-plus-condition-variable,
// generation-counter pattern watcher.Value uses to let watchers block
// until the next Set: here every party both "sets" and "watches" the
// same generation, so all of them release together once the last one
// arrives.
type barrier struct {
	mu      sync.Mutex
	cond    *sync.Cond
	parties int
	waiting int
	gen     int
}

func newBarrier(parties int) *barrier {
	b := &barrier{parties: parties}
	b.cond = sync.NewCond(&b.mu)
	return b
}

// wait blocks until parties calls to wait have arrived at the current
// generation, then releases all of them together and advances to the
// next generation.
func (b *barrier) wait() {
	b.mu.Lock()
	gen := b.gen
	b.waiting++
	if b.waiting == b.parties {
		b.waiting = 0
		b.gen++
		b.cond.Broadcast()
		b.mu.Unlock()
		return
	}
	for gen == b.gen {
		b.cond.Wait()
	}
	b.mu.Unlock()
}
