//go:build js && wasm

// Package dom binds gesture recognition to the browser DOM through syscall/js.
package dom

import (
	"sync"
	"syscall/js"

	"github.com/frudas24/deskzoom/gesture"
)

// listenerOptions registers listeners as non-passive so preventDefault works
// on wheel and touch events.
var listenerOptions = map[string]interface{}{"passive": false}

// Target wraps a DOM node as a gesture.EventTarget.
type Target struct {
	v js.Value
}

// NewTarget wraps v.
func NewTarget(v js.Value) Target {
	return Target{v: v}
}

// Value returns the wrapped node.
func (t Target) Value() js.Value {
	return t.v
}

// Listen implements gesture.EventTarget.
func (t Target) Listen(kind gesture.EventKind, h gesture.Handler) func() {
	name := kind.String()
	jsf := js.FuncOf(func(this js.Value, args []js.Value) interface{} {
		if len(args) == 0 {
			return nil
		}
		raw := args[0]
		ev := convertEvent(kind, raw)
		h(ev)
		if ev.DefaultPrevented() {
			raw.Call("preventDefault")
		}
		return nil
	})
	t.v.Call("addEventListener", name, jsf, listenerOptions)

	var once sync.Once
	return func() {
		once.Do(func() {
			t.v.Call("removeEventListener", name, jsf, listenerOptions)
			jsf.Release()
		})
	}
}

// Runtime is the browser document with detected capabilities.
type Runtime struct {
	doc  Target
	caps gesture.Capabilities
}

// NewRuntime detects touch and vendor gesture support on window.
func NewRuntime() *Runtime {
	win := js.Global()
	return &Runtime{
		doc: NewTarget(win.Get("document")),
		caps: gesture.Capabilities{
			Touch:         defined(win.Get("TouchEvent")),
			GestureEvents: defined(win.Get("GestureEvent")),
		},
	}
}

// Document implements gesture.Runtime.
func (r *Runtime) Document() gesture.EventTarget {
	return r.doc
}

// Capabilities implements gesture.Runtime.
func (r *Runtime) Capabilities() gesture.Capabilities {
	return r.caps
}

// boxSurface is an HTML element.
type boxSurface struct {
	Target
}

// BoundingClientRect implements gesture.BoxSurface.
func (s boxSurface) BoundingClientRect() gesture.Rect {
	r := s.v.Call("getBoundingClientRect")
	return gesture.Rect{
		X: r.Get("left").Float(),
		Y: r.Get("top").Float(),
		W: r.Get("width").Float(),
		H: r.Get("height").Float(),
	}
}

// coordSurface is an SVG element.
type coordSurface struct {
	Target
}

// ScreenCTM implements gesture.CoordSurface using the owning <svg> element,
// or the element itself when it is the root.
func (s coordSurface) ScreenCTM() (gesture.Matrix, bool) {
	owner := s.v.Get("ownerSVGElement")
	if !defined(owner) {
		owner = s.v
	}
	m := owner.Call("getScreenCTM")
	if !defined(m) {
		return gesture.Identity, false
	}
	return gesture.MatrixFromSVG(
		m.Get("a").Float(), m.Get("b").Float(),
		m.Get("c").Float(), m.Get("d").Float(),
		m.Get("e").Float(), m.Get("f").Float(),
	), true
}

// SurfaceFor classifies el. SVG elements map through their screen transform,
// HTML elements through their bounding box; anything else is rejected.
func SurfaceFor(el js.Value) (gesture.Surface, error) {
	t := NewTarget(el)
	switch {
	case instanceOf(el, "SVGElement"):
		return coordSurface{t}, nil
	case instanceOf(el, "HTMLElement"):
		return boxSurface{t}, nil
	default:
		return nil, gesture.ErrUnsupportedSurfaceKind
	}
}

// instanceOf reports whether v is an instance of the named global class.
func instanceOf(v js.Value, class string) bool {
	ctor := js.Global().Get(class)
	if !defined(ctor) || !defined(v) {
		return false
	}
	return v.InstanceOf(ctor)
}

// defined reports whether v is neither undefined nor null.
func defined(v js.Value) bool {
	return !v.IsUndefined() && !v.IsNull()
}
