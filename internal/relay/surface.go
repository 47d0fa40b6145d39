package relay

import (
	"sync"

	"github.com/frudas24/deskzoom/gesture"
	"github.com/frudas24/deskzoom/internal/wire"
)

// Geometry is the last layout a client reported for its surface. It is read
// on every mapping, so layout updates apply to the next event.
type Geometry struct {
	mu     sync.RWMutex
	rect   gesture.Rect
	ctm    gesture.Matrix
	hasCTM bool
}

// SetRect stores the viewport rectangle of the surface.
func (g *Geometry) SetRect(r gesture.Rect) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.rect = r
}

// SetCTM stores the screen transform; ok=false clears it.
func (g *Geometry) SetCTM(m gesture.Matrix, ok bool) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.ctm, g.hasCTM = m, ok
}

// Rect returns the viewport rectangle.
func (g *Geometry) Rect() gesture.Rect {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.rect
}

// CTM returns the screen transform.
func (g *Geometry) CTM() (gesture.Matrix, bool) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.ctm, g.hasCTM
}

// BoxSurface is a remote element positioned by a bounding box.
type BoxSurface struct {
	*Target
	Geo *Geometry
}

// BoundingClientRect implements gesture.BoxSurface.
func (s *BoxSurface) BoundingClientRect() gesture.Rect {
	return s.Geo.Rect()
}

// CoordSurface is a remote element with its own coordinate system.
type CoordSurface struct {
	*Target
	Geo *Geometry
}

// ScreenCTM implements gesture.CoordSurface.
func (s *CoordSurface) ScreenCTM() (gesture.Matrix, bool) {
	return s.Geo.CTM()
}

// opaqueSurface is an element kind the recognizer cannot map.
type opaqueSurface struct {
	*Target
}

// NewSurface builds the surface for a hello surface kind. Unknown kinds
// produce a surface that gesture.Register rejects.
func NewSurface(kind string) (gesture.Surface, *Target, *Geometry) {
	t := NewTarget()
	geo := &Geometry{}
	switch kind {
	case wire.SurfaceBox:
		return &BoxSurface{Target: t, Geo: geo}, t, geo
	case wire.SurfaceCoord:
		return &CoordSurface{Target: t, Geo: geo}, t, geo
	default:
		return &opaqueSurface{Target: t}, t, geo
	}
}

// Runtime is a remote client's document target and declared capabilities.
type Runtime struct {
	Doc  *Target
	Caps gesture.Capabilities
}

// Document implements gesture.Runtime.
func (r *Runtime) Document() gesture.EventTarget {
	return r.Doc
}

// Capabilities implements gesture.Runtime.
func (r *Runtime) Capabilities() gesture.Capabilities {
	return r.Caps
}
