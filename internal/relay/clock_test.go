package relay

import (
	"sync"
	"time"

	"github.com/frudas24/deskzoom/gesture"
)

// manualClock runs timers only when fire is called.
type manualClock struct {
	mu     sync.Mutex
	timers []*manualTimer
}

// manualTimer is one scheduled callback.
type manualTimer struct {
	f       func()
	stopped bool
}

// Stop implements gesture.Timer.
func (t *manualTimer) Stop() bool {
	was := !t.stopped
	t.stopped = true
	return was
}

// AfterFunc implements gesture.Clock.
func (c *manualClock) AfterFunc(_ time.Duration, f func()) gesture.Timer {
	c.mu.Lock()
	defer c.mu.Unlock()
	t := &manualTimer{f: f}
	c.timers = append(c.timers, t)
	return t
}

// fire runs every pending timer.
func (c *manualClock) fire() {
	c.mu.Lock()
	pending := c.timers
	c.timers = nil
	c.mu.Unlock()
	for _, t := range pending {
		if !t.stopped {
			t.stopped = true
			t.f()
		}
	}
}
