package gesture

import (
	"errors"
	"sync"
	"time"
)

// Config selects the lifecycle callbacks and tuning for Register. Zero
// values select defaults; nil callbacks are no-ops.
type Config struct {
	StartGesture func(Gesture)
	DoGesture    func(Gesture)
	EndGesture   func(Gesture)

	// WheelIdle is how long a wheel gesture stays open without events.
	WheelIdle time.Duration
	// MaxWheelDelta bounds each normalized wheel delta. With the default
	// of 24 a single ctrl wheel event of deltaY -50 zooms to 1.48; a bound
	// of 50 lets the same event reach 2.
	MaxWheelDelta float64
	// Clock drives the wheel idle timer. Defaults to SystemClock.
	Clock Clock
}

type callbacks struct {
	start func(Gesture)
	do    func(Gesture)
	end   func(Gesture)
}

// noop ignores a gesture.
func noop(Gesture) {}

// callbacks returns the configured callbacks with no-op defaults.
func (c Config) callbacks() callbacks {
	cb := callbacks{start: c.StartGesture, do: c.DoGesture, end: c.EndGesture}
	if cb.start == nil {
		cb.start = noop
	}
	if cb.do == nil {
		cb.do = noop
	}
	if cb.end == nil {
		cb.end = noop
	}
	return cb
}

// Register attaches the listeners needed by the adapters that apply to rt and
// returns a disposer. Capabilities are resolved once here.
//
// The disposer is idempotent and may be called from inside a callback. It
// detaches every listener and drops any open gesture without calling
// EndGesture. Callbacks never run while the recognizer holds a lock, so a
// callback may also dispatch further events; their callbacks run after it
// returns.
func Register(rt Runtime, surface Surface, cfg Config) (func(), error) {
	if rt == nil {
		return nil, errors.New("gesture: runtime is required")
	}
	if surface == nil {
		return nil, ErrUnsupportedSurfaceKind
	}
	toLocal, err := mapperFor(surface)
	if err != nil {
		return nil, err
	}

	cb := cfg.callbacks()
	clock := cfg.Clock
	if clock == nil {
		clock = SystemClock()
	}
	idle := cfg.WheelIdle
	if idle <= 0 {
		idle = DefaultWheelIdle
	}
	bound := cfg.MaxWheelDelta
	if bound <= 0 {
		bound = DefaultMaxWheelDelta
	}

	var cleanfuncs []func()
	listen := func(t EventTarget, kind EventKind, h Handler) {
		cleanfuncs = append(cleanfuncs, t.Listen(kind, h))
	}

	queue := &callQueue{}
	cleanfuncs = append(cleanfuncs, queue.clear)

	wheel := newWheelAdapter(toLocal, cb, queue, clock, idle, bound)
	cleanfuncs = append(cleanfuncs, wheel.close)
	listen(rt.Document(), KindWheel, wheel.handle)

	touch := newTouchAdapter(toLocal, cb, queue)
	cleanfuncs = append(cleanfuncs, touch.close)
	listen(surface, KindTouchStart, touch.handleStart)
	listen(surface, KindTouchMove, touch.handleMove)
	listen(surface, KindTouchEnd, touch.handleEnd)
	listen(surface, KindTouchCancel, touch.handleEnd)

	if rt.Capabilities().nativeGestures() {
		native := &nativeAdapter{toLocal: toLocal, cb: cb, queue: queue}
		cleanfuncs = append(cleanfuncs, native.close)
		listen(surface, KindGestureStart, native.handle)
		listen(surface, KindGestureChange, native.handle)
		listen(surface, KindGestureEnd, native.handle)
	}

	var once sync.Once
	return func() {
		once.Do(func() {
			// Detach listeners before closing the adapters they feed.
			for i := len(cleanfuncs) - 1; i >= 0; i-- {
				cleanfuncs[i]()
			}
		})
	}, nil
}
