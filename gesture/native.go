package gesture

import "sync"

// nativeAdapter forwards vendor gesture events. The vendor event already
// reports scale and rotation relative to its start and never reports a pan.
type nativeAdapter struct {
	mu     sync.Mutex
	closed bool

	toLocal pointMapper
	cb      callbacks
	queue   *callQueue
}

// handle maps one gesturestart, gesturechange or gestureend event.
func (n *nativeAdapter) handle(ev Event) {
	e, ok := ev.(*NativeGestureEvent)
	if !ok {
		return
	}
	n.mu.Lock()
	if n.closed {
		n.mu.Unlock()
		return
	}
	g := Gesture{
		Origin: n.toLocal(e.Position),
		Scale:  e.Scale,
	}.withRotation(e.Rotation)

	switch e.Type {
	case KindGestureStart:
		n.queue.push(func() { n.cb.start(g) })
	case KindGestureChange:
		n.queue.push(func() { n.cb.do(g) })
	case KindGestureEnd:
		n.queue.push(func() { n.cb.end(g) })
	}
	n.mu.Unlock()

	if e.Type != KindGestureEnd {
		e.PreventDefault()
	}
	n.queue.drain()
}

// close stops forwarding.
func (n *nativeAdapter) close() {
	n.mu.Lock()
	n.closed = true
	n.mu.Unlock()
}
