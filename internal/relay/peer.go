package relay

import (
	"errors"
	"fmt"
	"log"
	"math"
	"sync"
	"time"

	"github.com/frudas24/deskzoom/gesture"
	"github.com/frudas24/deskzoom/internal/calib"
	"github.com/frudas24/deskzoom/internal/session"
	"github.com/frudas24/deskzoom/internal/wire"
	"github.com/google/uuid"
)

var (
	// ErrNoHello is returned for events or layouts sent before hello.
	ErrNoHello = errors.New("relay: hello required")
	// ErrClosed is returned for messages handled after Close.
	ErrClosed = errors.New("relay: peer closed")
)

// Emitter sends a message back to the client.
type Emitter func(wire.Message) error

// Sink receives recognized gestures in addition to the client.
type Sink interface {
	Start(gesture.Gesture)
	Do(gesture.Gesture)
	End(gesture.Gesture)
}

// SurfaceSizer is implemented by sinks that need the client surface size.
type SurfaceSizer interface {
	SetSurfaceSize(w, h float64)
}

// Options configures every peer created by a transport.
type Options struct {
	Session       *session.Session
	Sinks         []Sink
	WheelIdle     time.Duration
	MaxWheelDelta float64
	Clock         gesture.Clock
	// OnTarget persists a replay target sent by the client.
	OnTarget func(calib.Rect) error
}

// Peer is one remote client. It owns the client's runtime and surface, feeds
// incoming events to the recognizer and forwards recognized gestures.
type Peer struct {
	id   string
	opts Options
	emit Emitter

	mu      sync.Mutex
	closed  bool
	rt      *Runtime
	surface *Target
	geo     *Geometry
	dispose func()
}

// NewPeer returns a peer that reports through emit and records itself as the
// session's active client.
func NewPeer(opts Options, emit Emitter) *Peer {
	if emit == nil {
		emit = func(wire.Message) error { return nil }
	}
	p := &Peer{id: uuid.NewString(), opts: opts, emit: emit}
	if opts.Session != nil {
		opts.Session.SetPeer(p.id)
	}
	return p
}

// ID returns the peer identifier.
func (p *Peer) ID() string {
	return p.id
}

// Handle processes one client message. Returned errors describe client
// mistakes; transports report them back and keep the connection.
func (p *Peer) Handle(msg wire.Message) error {
	switch msg.T {
	case wire.TypeHello:
		return p.handleHello(msg)
	case wire.TypeLayout:
		return p.handleLayout(msg)
	case wire.TypeTarget:
		return p.handleTarget(msg)
	case wire.TypeInputEnabled:
		if msg.Enabled != nil && p.opts.Session != nil {
			p.opts.Session.SetInputEnabled(*msg.Enabled)
		}
		return nil
	default:
		return p.handleEvent(msg)
	}
}

// Close detaches the recognizer. Any open gesture is dropped.
func (p *Peer) Close() {
	p.mu.Lock()
	if p.closed {
		p.mu.Unlock()
		return
	}
	p.closed = true
	dispose := p.dispose
	p.dispose, p.rt, p.surface, p.geo = nil, nil, nil, nil
	p.mu.Unlock()

	if dispose != nil {
		dispose()
	}
	if p.opts.Session != nil {
		p.opts.Session.ClearPeer(p.id)
	}
}

// handleHello (re)registers the recognizer for the declared surface.
func (p *Peer) handleHello(msg wire.Message) error {
	p.mu.Lock()
	if p.closed {
		p.mu.Unlock()
		return ErrClosed
	}
	if p.dispose != nil {
		p.dispose()
		p.dispose, p.rt, p.surface, p.geo = nil, nil, nil, nil
	}

	rt := &Runtime{
		Doc:  NewTarget(),
		Caps: gesture.Capabilities{Touch: msg.Touch, GestureEvents: msg.GestureEvents},
	}
	surface, target, geo := NewSurface(msg.Surface)
	dispose, err := gesture.Register(rt, surface, gesture.Config{
		StartGesture:  func(g gesture.Gesture) { p.forward(session.PhaseStart, g) },
		DoGesture:     func(g gesture.Gesture) { p.forward(session.PhaseDo, g) },
		EndGesture:    func(g gesture.Gesture) { p.forward(session.PhaseEnd, g) },
		WheelIdle:     p.opts.WheelIdle,
		MaxWheelDelta: p.opts.MaxWheelDelta,
		Clock:         p.opts.Clock,
	})
	if err != nil {
		p.mu.Unlock()
		return fmt.Errorf("register surface %q: %w", msg.Surface, err)
	}
	p.rt, p.surface, p.geo, p.dispose = rt, target, geo, dispose
	p.mu.Unlock()

	if debugEnabled() {
		log.Printf("relay: hello peer=%s surface=%s touch=%v gestureEvents=%v", p.id, msg.Surface, msg.Touch, msg.GestureEvents)
	}
	return p.emit(wire.Message{T: wire.TypeWelcome, Peer: p.id})
}

// handleLayout updates the surface geometry.
func (p *Peer) handleLayout(msg wire.Message) error {
	p.mu.Lock()
	geo := p.geo
	p.mu.Unlock()
	if geo == nil {
		return ErrNoHello
	}

	if len(msg.CTM) > 0 {
		m, err := wire.ToMatrix(msg.CTM)
		if err != nil {
			return err
		}
		geo.SetCTM(m, true)
	}
	if msg.Rect != nil {
		r := msg.Rect.ToRect()
		geo.SetRect(r)
		for _, sink := range p.opts.Sinks {
			if sizer, ok := sink.(SurfaceSizer); ok {
				sizer.SetSurfaceSize(r.W, r.H)
			}
		}
	}
	return nil
}

// handleTarget forwards a replay target rectangle.
func (p *Peer) handleTarget(msg wire.Message) error {
	if msg.Rect == nil {
		return fmt.Errorf("%w: target needs rect", wire.ErrBadMessage)
	}
	if p.opts.OnTarget == nil {
		return nil
	}
	r := msg.Rect
	return p.opts.OnTarget(calib.Rect{
		X: int(math.Round(r.X)),
		Y: int(math.Round(r.Y)),
		W: int(math.Round(r.W)),
		H: int(math.Round(r.H)),
	})
}

// handleEvent dispatches one input event to the recognizer.
func (p *Peer) handleEvent(msg wire.Message) error {
	ev, err := wire.ToEvent(msg)
	if err != nil {
		return err
	}

	p.mu.Lock()
	closed, rt, surface := p.closed, p.rt, p.surface
	p.mu.Unlock()
	if closed {
		return ErrClosed
	}
	if rt == nil {
		return ErrNoHello
	}
	if s := p.opts.Session; s != nil && !s.InputEnabled() {
		return nil
	}

	if ev.Kind() == gesture.KindWheel {
		rt.Doc.Dispatch(ev)
	} else {
		surface.Dispatch(ev)
	}
	return nil
}

// forward records, replays and reports one lifecycle callback.
func (p *Peer) forward(phase session.Phase, g gesture.Gesture) {
	if s := p.opts.Session; s != nil {
		s.RecordGesture(phase, g)
	}
	if debugEnabled() {
		log.Printf("relay: gesture %s peer=%s origin=(%.1f,%.1f) translation=(%.1f,%.1f) scale=%.3f",
			phase, p.id, g.Origin.X, g.Origin.Y, g.Translation.X, g.Translation.Y, g.Scale)
	}
	for _, sink := range p.opts.Sinks {
		switch phase {
		case session.PhaseStart:
			sink.Start(g)
		case session.PhaseDo:
			sink.Do(g)
		case session.PhaseEnd:
			sink.End(g)
		}
	}
	if err := p.emit(wire.FromGesture(string(phase), g)); err != nil {
		log.Printf("relay: emit peer=%s: %v", p.id, err)
	}
}
