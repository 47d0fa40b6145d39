// Package relay runs gesture recognition for remote clients that stream raw
// input events, and sends the recognized gestures back.
package relay

import (
	"sync"

	"github.com/frudas24/deskzoom/gesture"
)

type listener struct {
	id   uint64
	kind gesture.EventKind
	h    gesture.Handler
}

// Target is an in-memory gesture.EventTarget. Dispatch delivers to the
// listeners of the event's kind in registration order.
type Target struct {
	mu        sync.Mutex
	next      uint64
	listeners []listener
}

// NewTarget returns an empty target.
func NewTarget() *Target {
	return &Target{}
}

// Listen implements gesture.EventTarget. The returned remover is idempotent.
func (t *Target) Listen(kind gesture.EventKind, h gesture.Handler) func() {
	t.mu.Lock()
	t.next++
	id := t.next
	t.listeners = append(t.listeners, listener{id: id, kind: kind, h: h})
	t.mu.Unlock()

	return func() {
		t.mu.Lock()
		defer t.mu.Unlock()
		for i, l := range t.listeners {
			if l.id == id {
				t.listeners = append(t.listeners[:i], t.listeners[i+1:]...)
				return
			}
		}
	}
}

// Dispatch delivers ev synchronously. Listeners may add or remove listeners
// while being called.
func (t *Target) Dispatch(ev gesture.Event) {
	t.mu.Lock()
	var hs []gesture.Handler
	for _, l := range t.listeners {
		if l.kind == ev.Kind() {
			hs = append(hs, l.h)
		}
	}
	t.mu.Unlock()

	for _, h := range hs {
		h(ev)
	}
}

// Len returns the number of attached listeners.
func (t *Target) Len() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return len(t.listeners)
}
