package gesture

import (
	"math"
	"sync"
)

// Midpoint returns the arithmetic mean of two touch points.
func Midpoint(t1, t2 Point) Point {
	return Point{X: (t1.X + t2.X) / 2, Y: (t1.Y + t2.Y) / 2}
}

// Distance returns the Euclidean distance between two touch points.
func Distance(t1, t2 Point) float64 {
	return math.Hypot(t2.X-t1.X, t2.Y-t1.Y)
}

// Angle returns the angle in degrees of the vector from t1 to t2.
func Angle(t1, t2 Point) float64 {
	return math.Atan2(t2.Y-t1.Y, t2.X-t1.X) * 180 / math.Pi
}

type touchState interface {
	touchState()
}

type touchIdle struct{}

// touchActive is an open two-finger gesture. reference holds the touch
// points captured at touchstart; every update is measured against them.
type touchActive struct {
	reference [2]Point
	gesture   Gesture
}

// touchState seals the variant.
func (touchIdle) touchState() {}

// touchState seals the variant.
func (touchActive) touchState() {}

// touchAdapter turns two-finger touch sequences into gestures.
type touchAdapter struct {
	mu     sync.Mutex
	state  touchState
	closed bool

	toLocal pointMapper
	cb      callbacks
	queue   *callQueue
}

// newTouchAdapter returns an idle touch adapter.
func newTouchAdapter(toLocal pointMapper, cb callbacks, queue *callQueue) *touchAdapter {
	return &touchAdapter{state: touchIdle{}, toLocal: toLocal, cb: cb, queue: queue}
}

// handleStart opens a gesture on a two-finger touchstart. A touchstart with
// any other touch count while a gesture is open ends it.
func (t *touchAdapter) handleStart(ev Event) {
	e, ok := ev.(*TouchEvent)
	if !ok {
		return
	}
	t.mu.Lock()
	if t.closed {
		t.mu.Unlock()
		return
	}
	switch s := t.state.(type) {
	case touchActive:
		if len(e.Touches) == 2 {
			t.mu.Unlock()
			return
		}
		t.state = touchIdle{}
		t.queue.push(func() { t.cb.end(s.gesture) })
		t.mu.Unlock()
	default:
		if len(e.Touches) != 2 {
			t.mu.Unlock()
			return
		}
		ref := [2]Point{e.Touches[0], e.Touches[1]}
		g := newGesture(t.toLocal(Midpoint(ref[0], ref[1]))).withRotation(0)
		t.state = touchActive{reference: ref, gesture: g}
		t.queue.push(func() { t.cb.start(g) })
		t.mu.Unlock()
		e.PreventDefault()
	}
	t.queue.drain()
}

// handleMove updates the open gesture relative to the reference touches.
func (t *touchAdapter) handleMove(ev Event) {
	e, ok := ev.(*TouchEvent)
	if !ok {
		return
	}
	t.mu.Lock()
	s, active := t.state.(touchActive)
	if !active || t.closed {
		t.mu.Unlock()
		return
	}
	switch n := len(e.Touches); {
	case n < 2:
		t.state = touchIdle{}
		g := s.gesture
		t.queue.push(func() { t.cb.end(g) })
		t.mu.Unlock()
	case n == 2:
		g := touchUpdate(s.gesture, s.reference, e)
		s.gesture = g
		t.state = s
		t.queue.push(func() { t.cb.do(g) })
		t.mu.Unlock()
		e.PreventDefault()
	default:
		t.mu.Unlock()
		return
	}
	t.queue.drain()
}

// handleEnd closes the open gesture on touchend or touchcancel.
func (t *touchAdapter) handleEnd(ev Event) {
	if _, ok := ev.(*TouchEvent); !ok {
		return
	}
	t.mu.Lock()
	s, active := t.state.(touchActive)
	if !active || t.closed {
		t.mu.Unlock()
		return
	}
	t.state = touchIdle{}
	t.queue.push(func() { t.cb.end(s.gesture) })
	t.mu.Unlock()

	t.queue.drain()
}

// close drops any open gesture without reporting its end.
func (t *touchAdapter) close() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.closed = true
	t.state = touchIdle{}
}

// touchUpdate computes the cumulative gesture for the current two touches.
// Vendor-reported scale and rotation win over the geometric values.
// Translation stays in viewport units so that a surface moved by the
// consumer mid-gesture does not feed back into the pan.
func touchUpdate(g Gesture, ref [2]Point, e *TouchEvent) Gesture {
	cur0, cur1 := e.Touches[0], e.Touches[1]

	if e.HasScale {
		g.Scale = e.Scale
	} else {
		g.Scale = Distance(cur0, cur1) / Distance(ref[0], ref[1])
	}
	rotation := Angle(cur0, cur1) - Angle(ref[0], ref[1])
	if e.HasRotation {
		rotation = e.Rotation
	}
	g = g.withRotation(rotation)
	g.Translation = Midpoint(cur0, cur1).Sub(Midpoint(ref[0], ref[1]))
	return g
}
