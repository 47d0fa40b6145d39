package replay

import (
	"math"
	"time"

	"github.com/frudas24/deskzoom/gesture"
	"github.com/frudas24/deskzoom/internal/calib"
)

const (
	// DefaultZoomStep is the scale factor one ctrl+wheel notch represents.
	DefaultZoomStep = 1.1
	// DefaultPanStep is the translation in surface pixels one wheel notch represents.
	DefaultPanStep = 40
	// DefaultMinInterval throttles updates while a gesture is active.
	DefaultMinInterval = 16 * time.Millisecond
)

// Options tunes how gestures become wheel notches.
type Options struct {
	ZoomStep    float64
	PanStep     float64
	MinInterval time.Duration
}

// withDefaults fills unset options.
func (o Options) withDefaults() Options {
	if o.ZoomStep <= 1 {
		o.ZoomStep = DefaultZoomStep
	}
	if o.PanStep <= 0 {
		o.PanStep = DefaultPanStep
	}
	if o.MinInterval < 0 {
		o.MinInterval = 0
	}
	return o
}

// Planner converts gesture snapshots into actions. Gestures are cumulative,
// so the planner remembers how much zoom and pan it already emitted and only
// emits whole notches of the remainder. It is not safe for concurrent use.
type Planner struct {
	opts Options

	bounds   calib.Rect
	surfaceW float64
	surfaceH float64

	active     bool
	emitScale  float64
	emitPan    gesture.Point
	lastEmitAt time.Time
	now        func() time.Time
}

// NewPlanner returns an idle planner.
func NewPlanner(opts Options) *Planner {
	return &Planner{opts: opts.withDefaults(), now: time.Now}
}

// SetNowFunc overrides the clock used for throttling.
func (p *Planner) SetNowFunc(fn func() time.Time) {
	if fn != nil {
		p.now = fn
	}
}

// SetBounds sets the absolute screen rectangle gestures are replayed onto.
func (p *Planner) SetBounds(r calib.Rect) {
	p.bounds = calib.Normalize(r)
}

// SetSurfaceSize records the remote surface size used to normalize origins.
func (p *Planner) SetSurfaceSize(w, h float64) {
	p.surfaceW, p.surfaceH = w, h
}

// Start begins a gesture by moving the cursor over its origin.
func (p *Planner) Start(g gesture.Gesture) []Action {
	p.active = true
	p.emitScale = 1
	p.emitPan = gesture.Point{}
	p.lastEmitAt = time.Time{}
	x, y := SurfaceToAbs(g.Origin, p.surfaceW, p.surfaceH, p.bounds)
	return []Action{{Type: ActMove, X: x, Y: y}}
}

// Do emits the notches accumulated since the last emission, at most once per
// MinInterval.
func (p *Planner) Do(g gesture.Gesture) []Action {
	if !p.active {
		return nil
	}
	now := p.now()
	if !p.lastEmitAt.IsZero() && now.Sub(p.lastEmitAt) < p.opts.MinInterval {
		return nil
	}
	actions := p.flush(g)
	if len(actions) > 0 {
		p.lastEmitAt = now
	}
	return actions
}

// End flushes the remainder regardless of throttling and resets the planner.
func (p *Planner) End(g gesture.Gesture) []Action {
	if !p.active {
		return nil
	}
	actions := p.flush(g)
	p.active = false
	return actions
}

// Active reports whether a gesture is in progress.
func (p *Planner) Active() bool {
	return p.active
}

// flush converts the un-emitted part of g into whole notches.
func (p *Planner) flush(g gesture.Gesture) []Action {
	var actions []Action

	if g.Scale > 0 && !math.IsInf(g.Scale, 0) && p.emitScale > 0 {
		n := notches(math.Log(g.Scale/p.emitScale) / math.Log(p.opts.ZoomStep))
		if n != 0 {
			actions = append(actions, Action{Type: ActZoom, Delta: n})
			p.emitScale *= math.Pow(p.opts.ZoomStep, float64(n))
		}
	}

	// Content following the fingers down or right means scrolling up or left.
	ny := notches((g.Translation.Y - p.emitPan.Y) / p.opts.PanStep)
	if ny != 0 {
		actions = append(actions, Action{Type: ActScroll, Delta: ny})
		p.emitPan.Y += float64(ny) * p.opts.PanStep
	}
	nx := notches((g.Translation.X - p.emitPan.X) / p.opts.PanStep)
	if nx != 0 {
		actions = append(actions, Action{Type: ActHScroll, Delta: -nx})
		p.emitPan.X += float64(nx) * p.opts.PanStep
	}
	return actions
}

// notchEpsilon absorbs rounding so exact multiples of a step count fully.
const notchEpsilon = 1e-9

// notches truncates v toward zero after nudging it away from zero.
func notches(v float64) int {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return int(math.Trunc(v + math.Copysign(notchEpsilon, v)))
}
