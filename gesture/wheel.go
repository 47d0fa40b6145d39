package gesture

import (
	"math"
	"sync"
	"time"
)

const (
	// DefaultWheelIdle is how long the wheel adapter waits for another
	// event before it ends the gesture.
	DefaultWheelIdle = 200 * time.Millisecond
	// DefaultMaxWheelDelta bounds a single normalized wheel delta.
	DefaultMaxWheelDelta = 24

	deltaLineMultiplier     = 8
	deltaPageMultiplier     = 24
	wheelScaleSpeedup       = 2
	wheelTranslationSpeedup = 2
)

// NormalizeWheel converts e's deltas into a pixel-equivalent pair bounded by
// DefaultMaxWheelDelta.
func NormalizeWheel(e *WheelEvent) (dx, dy float64) {
	return normalizeWheel(e, DefaultMaxWheelDelta)
}

// normalizeWheel swaps shift-scrolled deltas onto the horizontal axis, scales
// line and page units to pixels and clamps both deltas to bound.
func normalizeWheel(e *WheelEvent, bound float64) (dx, dy float64) {
	dx, dy = e.DeltaX, e.DeltaY
	if e.Modifiers.Contain(ModShift) && dx == 0 {
		dx, dy = dy, dx
	}
	switch e.DeltaMode {
	case DeltaLine:
		dx *= deltaLineMultiplier
		dy *= deltaLineMultiplier
	case DeltaPage:
		dx *= deltaPageMultiplier
		dy *= deltaPageMultiplier
	}
	return limit(dx, bound), limit(dy, bound)
}

// limit clamps |d| to bound keeping its sign.
func limit(d, bound float64) float64 {
	if d == 0 {
		return 0
	}
	return math.Copysign(math.Min(bound, math.Abs(d)), d)
}

// wheelZoomFactor maps a vertical delta to a scale factor. Zooming out
// divides by the factor zooming in would multiply by, so equal deltas in
// opposite directions cancel.
func wheelZoomFactor(dy float64) float64 {
	if dy <= 0 {
		return 1 - wheelScaleSpeedup*dy/100
	}
	return 1 / (1 + wheelScaleSpeedup*dy/100)
}

// applyWheel folds one normalized wheel step into g.
func applyWheel(g Gesture, dx, dy float64, zoom bool) Gesture {
	if zoom {
		g.Scale *= wheelZoomFactor(dy)
		return g
	}
	g.Translation.X -= wheelTranslationSpeedup * dx
	g.Translation.Y -= wheelTranslationSpeedup * dy
	return g
}

type wheelState interface {
	wheelState()
}

type wheelIdle struct{}

// wheelActive is an open wheel gesture. Its timer ends the gesture unless a
// newer event rearms it; gen identifies the arming.
type wheelActive struct {
	gesture Gesture
	timer   Timer
	gen     uint64
}

// wheelState seals the variant.
func (wheelIdle) wheelState() {}

// wheelState seals the variant.
func (wheelActive) wheelState() {}

// wheelAdapter turns wheel events into gestures. Wheel events carry no end
// signal, so a gesture ends after idle without events.
type wheelAdapter struct {
	mu     sync.Mutex
	state  wheelState
	gen    uint64
	closed bool

	toLocal pointMapper
	cb      callbacks
	queue   *callQueue
	clock   Clock
	idle    time.Duration
	bound   float64
}

// newWheelAdapter returns an idle wheel adapter.
func newWheelAdapter(toLocal pointMapper, cb callbacks, queue *callQueue, clock Clock, idle time.Duration, bound float64) *wheelAdapter {
	return &wheelAdapter{
		state:   wheelIdle{},
		toLocal: toLocal,
		cb:      cb,
		queue:   queue,
		clock:   clock,
		idle:    idle,
		bound:   bound,
	}
}

// handle processes a single wheel event.
func (w *wheelAdapter) handle(ev Event) {
	e, ok := ev.(*WheelEvent)
	if !ok {
		return
	}
	e.PreventDefault()
	dx, dy := normalizeWheel(e, w.bound)
	zoom := e.Modifiers.Contain(ModCtrl)

	w.mu.Lock()
	if w.closed {
		w.mu.Unlock()
		return
	}
	var (
		g       Gesture
		started bool
	)
	switch s := w.state.(type) {
	case wheelActive:
		s.timer.Stop()
		g = s.gesture
	default:
		g = newGesture(w.toLocal(e.Position))
		started = true
	}
	start := g
	g = applyWheel(g, dx, dy, zoom)
	w.gen++
	gen := w.gen
	timer := w.clock.AfterFunc(w.idle, func() { w.expire(gen) })
	w.state = wheelActive{gesture: g, timer: timer, gen: gen}
	if started {
		w.queue.push(func() { w.cb.start(start) })
	}
	w.queue.push(func() { w.cb.do(g) })
	w.mu.Unlock()

	w.queue.drain()
}

// expire ends the gesture armed by gen if no newer event rearmed the timer.
func (w *wheelAdapter) expire(gen uint64) {
	w.mu.Lock()
	s, ok := w.state.(wheelActive)
	if !ok || s.gen != gen || w.closed {
		w.mu.Unlock()
		return
	}
	w.state = wheelIdle{}
	w.queue.push(func() { w.cb.end(s.gesture) })
	w.mu.Unlock()

	w.queue.drain()
}

// close drops any open gesture without reporting its end.
func (w *wheelAdapter) close() {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.closed = true
	if s, ok := w.state.(wheelActive); ok {
		s.timer.Stop()
	}
	w.state = wheelIdle{}
}
