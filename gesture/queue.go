package gesture

import "sync"

// callQueue runs lifecycle callbacks one at a time in the order they were
// queued, without holding any lock while a callback runs. Work queued while
// another caller is draining, from a callback or from the idle timer, is run
// by that caller.
type callQueue struct {
	mu      sync.Mutex
	pending []func()
	running bool
}

// push queues fns. Adapters push while holding their state lock so the
// queue order matches the order of state transitions.
func (q *callQueue) push(fns ...func()) {
	q.mu.Lock()
	q.pending = append(q.pending, fns...)
	q.mu.Unlock()
}

// drain runs queued callbacks until the queue is empty. It returns at once
// when another call is already draining.
func (q *callQueue) drain() {
	q.mu.Lock()
	if q.running {
		q.mu.Unlock()
		return
	}
	q.running = true
	for len(q.pending) > 0 {
		f := q.pending[0]
		q.pending[0] = nil
		q.pending = q.pending[1:]
		q.mu.Unlock()
		q.run(f)
		q.mu.Lock()
	}
	// running is reset under the same lock that saw the queue empty, so a
	// concurrent push either is seen above or drains itself.
	q.running = false
	q.mu.Unlock()
}

// run calls f and releases the drain if f panics.
func (q *callQueue) run(f func()) {
	ok := false
	defer func() {
		if !ok {
			q.mu.Lock()
			q.running = false
			q.mu.Unlock()
		}
	}()
	f()
	ok = true
}

// clear drops callbacks that have not started yet.
func (q *callQueue) clear() {
	q.mu.Lock()
	q.pending = nil
	q.mu.Unlock()
}
