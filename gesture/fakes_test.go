package gesture

import (
	"sort"
	"time"
)

// fakeListener is one attached handler.
type fakeListener struct {
	kind EventKind
	h    Handler
}

// fakeTarget records listener attachment and dispatches synchronously.
type fakeTarget struct {
	listeners []*fakeListener
	added     int
	removed   int
}

// Listen implements EventTarget.
func (t *fakeTarget) Listen(kind EventKind, h Handler) func() {
	l := &fakeListener{kind: kind, h: h}
	t.listeners = append(t.listeners, l)
	t.added++
	return func() {
		for i, cur := range t.listeners {
			if cur == l {
				t.listeners = append(t.listeners[:i], t.listeners[i+1:]...)
				t.removed++
				return
			}
		}
	}
}

// dispatch delivers ev to every listener for its kind.
func (t *fakeTarget) dispatch(ev Event) {
	for _, l := range append([]*fakeListener(nil), t.listeners...) {
		if l.kind == ev.Kind() {
			l.h(ev)
		}
	}
}

// count returns the number of attached listeners for kind.
func (t *fakeTarget) count(kind EventKind) int {
	n := 0
	for _, l := range t.listeners {
		if l.kind == kind {
			n++
		}
	}
	return n
}

// fakeRuntime is a document plus fixed capabilities.
type fakeRuntime struct {
	doc  fakeTarget
	caps Capabilities
}

// Document implements Runtime.
func (r *fakeRuntime) Document() EventTarget { return &r.doc }

// Capabilities implements Runtime.
func (r *fakeRuntime) Capabilities() Capabilities { return r.caps }

// boxSurface is a box-model surface with a movable bounding box.
type boxSurface struct {
	fakeTarget
	rect Rect
}

// BoundingClientRect implements BoxSurface.
func (s *boxSurface) BoundingClientRect() Rect { return s.rect }

// svgSurface is a coordinate-system surface.
type svgSurface struct {
	fakeTarget
	ctm   Matrix
	hasCT bool
}

// ScreenCTM implements CoordSurface.
func (s *svgSurface) ScreenCTM() (Matrix, bool) { return s.ctm, s.hasCT }

// bareSurface is neither a box nor a coordinate-system surface.
type bareSurface struct {
	fakeTarget
}

// fakeClock fires timers when Advance moves past their deadline.
type fakeClock struct {
	now    time.Duration
	timers []*fakeTimer
}

// fakeTimer is one scheduled callback.
type fakeTimer struct {
	at      time.Duration
	f       func()
	stopped bool
	fired   bool
}

// Stop implements Timer.
func (t *fakeTimer) Stop() bool {
	if t.stopped || t.fired {
		return false
	}
	t.stopped = true
	return true
}

// AfterFunc implements Clock.
func (c *fakeClock) AfterFunc(d time.Duration, f func()) Timer {
	t := &fakeTimer{at: c.now + d, f: f}
	c.timers = append(c.timers, t)
	return t
}

// Advance moves time forward, firing due timers in deadline order.
func (c *fakeClock) Advance(d time.Duration) {
	target := c.now + d
	for {
		var due []*fakeTimer
		for _, t := range c.timers {
			if !t.stopped && !t.fired && t.at <= target {
				due = append(due, t)
			}
		}
		if len(due) == 0 {
			break
		}
		sort.Slice(due, func(i, j int) bool { return due[i].at < due[j].at })
		t := due[0]
		c.now = t.at
		t.fired = true
		t.f()
	}
	c.now = target
}

// pending returns the number of armed timers.
func (c *fakeClock) pending() int {
	n := 0
	for _, t := range c.timers {
		if !t.stopped && !t.fired {
			n++
		}
	}
	return n
}

// call is one recorded lifecycle callback.
type call struct {
	phase string
	g     Gesture
	at    time.Duration
}

// recorder captures lifecycle callbacks in order.
type recorder struct {
	clock *fakeClock
	calls []call
}

// config returns a Config wired to the recorder.
func (r *recorder) config() Config {
	add := func(phase string) func(Gesture) {
		return func(g Gesture) {
			var at time.Duration
			if r.clock != nil {
				at = r.clock.now
			}
			r.calls = append(r.calls, call{phase: phase, g: g, at: at})
		}
	}
	cfg := Config{
		StartGesture: add("start"),
		DoGesture:    add("do"),
		EndGesture:   add("end"),
	}
	if r.clock != nil {
		cfg.Clock = r.clock
	}
	return cfg
}

// approx reports whether a and b are within 1e-9.
func approx(a, b float64) bool {
	d := a - b
	return d < 1e-9 && d > -1e-9
}

// phases returns how many calls of each phase were recorded.
func (r *recorder) phases() (start, do, end int) {
	for _, c := range r.calls {
		switch c.phase {
		case "start":
			start++
		case "do":
			do++
		case "end":
			end++
		}
	}
	return start, do, end
}

// last returns the last recorded call of phase.
func (r *recorder) last(phase string) (call, bool) {
	for i := len(r.calls) - 1; i >= 0; i-- {
		if r.calls[i].phase == phase {
			return r.calls[i], true
		}
	}
	return call{}, false
}
