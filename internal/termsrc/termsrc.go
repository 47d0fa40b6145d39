// Package termsrc feeds terminal mouse-wheel input into gesture recognition.
// The terminal grid is a box surface at (0,0) measured in cells.
package termsrc

import (
	"github.com/gdamore/tcell/v2"

	"github.com/frudas24/deskzoom/gesture"
	"github.com/frudas24/deskzoom/internal/relay"
	"github.com/frudas24/deskzoom/internal/wire"
)

// Source is a gesture runtime backed by tcell events.
type Source struct {
	rt      *relay.Runtime
	surface gesture.Surface
	geo     *relay.Geometry
}

// New returns a source with an empty grid. Terminals deliver neither touch
// nor vendor gesture events.
func New() *Source {
	surface, _, geo := relay.NewSurface(wire.SurfaceBox)
	return &Source{
		rt:      &relay.Runtime{Doc: relay.NewTarget()},
		surface: surface,
		geo:     geo,
	}
}

// Runtime returns the runtime to pass to gesture.Register.
func (s *Source) Runtime() gesture.Runtime {
	return s.rt
}

// Surface returns the terminal grid surface.
func (s *Source) Surface() gesture.Surface {
	return s.surface
}

// Resize updates the grid size in cells.
func (s *Source) Resize(w, h int) {
	s.geo.SetRect(gesture.Rect{W: float64(w), H: float64(h)})
}

// Handle dispatches ev if it is relevant and reports whether it was consumed.
func (s *Source) Handle(ev tcell.Event) bool {
	switch e := ev.(type) {
	case *tcell.EventResize:
		s.Resize(e.Size())
		return true
	case *tcell.EventMouse:
		wheel, ok := WheelFromMouse(e)
		if !ok {
			return false
		}
		s.rt.Doc.Dispatch(wheel)
		return true
	default:
		return false
	}
}

// WheelFromMouse converts a tcell wheel button into a line-mode wheel event.
// It reports false for mouse events without a wheel button.
func WheelFromMouse(e *tcell.EventMouse) (*gesture.WheelEvent, bool) {
	var dx, dy float64
	buttons := e.Buttons()
	switch {
	case buttons&tcell.WheelUp != 0:
		dy = -1
	case buttons&tcell.WheelDown != 0:
		dy = 1
	case buttons&tcell.WheelLeft != 0:
		dx = -1
	case buttons&tcell.WheelRight != 0:
		dx = 1
	default:
		return nil, false
	}
	x, y := e.Position()
	return &gesture.WheelEvent{
		Base:      gesture.Base{Cancelable: true},
		Position:  gesture.Point{X: float64(x), Y: float64(y)},
		DeltaX:    dx,
		DeltaY:    dy,
		DeltaMode: gesture.DeltaLine,
		Modifiers: convertMod(e.Modifiers()),
	}, true
}

// convertMod converts a tcell modifier mask.
func convertMod(m tcell.ModMask) gesture.Modifiers {
	var out gesture.Modifiers
	if m&tcell.ModShift != 0 {
		out |= gesture.ModShift
	}
	if m&tcell.ModCtrl != 0 {
		out |= gesture.ModCtrl
	}
	if m&tcell.ModAlt != 0 {
		out |= gesture.ModAlt
	}
	if m&tcell.ModMeta != 0 {
		out |= gesture.ModMeta
	}
	return out
}
