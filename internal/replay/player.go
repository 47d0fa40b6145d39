package replay

import (
	"log"
	"sync"

	"github.com/frudas24/deskzoom/gesture"
	"github.com/frudas24/deskzoom/internal/calib"
	"github.com/frudas24/deskzoom/internal/wininput"
)

// Player applies planned actions through an injector. Its lifecycle methods
// match gesture callbacks and may be called from any goroutine.
type Player struct {
	mu       sync.Mutex
	planner  *Planner
	injector wininput.Injector
	enabled  func() bool
}

// NewPlayer returns a player. enabled, when set, gates every callback.
func NewPlayer(injector wininput.Injector, opts Options, enabled func() bool) *Player {
	return &Player{
		planner:  NewPlanner(opts),
		injector: injector,
		enabled:  enabled,
	}
}

// Planner exposes the underlying planner for configuration in tests.
func (p *Player) Planner() *Planner {
	return p.planner
}

// SetBounds sets the absolute screen rectangle gestures are replayed onto.
func (p *Player) SetBounds(r calib.Rect) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.planner.SetBounds(r)
}

// SetSurfaceSize records the remote surface size.
func (p *Player) SetSurfaceSize(w, h float64) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.planner.SetSurfaceSize(w, h)
}

// Start replays a gesture start.
func (p *Player) Start(g gesture.Gesture) {
	p.run(p.planner.Start, g)
}

// Do replays a gesture update.
func (p *Player) Do(g gesture.Gesture) {
	p.run(p.planner.Do, g)
}

// End replays a gesture end.
func (p *Player) End(g gesture.Gesture) {
	p.run(p.planner.End, g)
}

// run plans and applies actions for one callback.
func (p *Player) run(plan func(gesture.Gesture) []Action, g gesture.Gesture) {
	if p.enabled != nil && !p.enabled() {
		return
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	if err := p.applyActions(plan(g)); err != nil {
		log.Printf("replay: %v", err)
	}
}

// applyActions executes actions using the injector.
func (p *Player) applyActions(actions []Action) error {
	for _, action := range actions {
		if err := p.applyAction(action); err != nil {
			return err
		}
	}
	return nil
}

// applyAction executes a single action.
func (p *Player) applyAction(action Action) error {
	switch action.Type {
	case ActMove:
		return p.injector.MoveAbs(action.X, action.Y)
	case ActZoom:
		return p.injector.CtrlWheel(action.Delta * wininput.WheelNotch)
	case ActScroll:
		return p.injector.Wheel(action.Delta * wininput.WheelNotch)
	case ActHScroll:
		return p.injector.HWheel(action.Delta * wininput.WheelNotch)
	default:
		return nil
	}
}
