//go:build js && wasm

package dom

import (
	"syscall/js"

	"github.com/frudas24/deskzoom/gesture"
)

// convertEvent builds a gesture event from a DOM event of the given kind.
func convertEvent(kind gesture.EventKind, e js.Value) gesture.Event {
	base := gesture.Base{Cancelable: e.Get("cancelable").Truthy()}
	switch kind {
	case gesture.KindWheel:
		return &gesture.WheelEvent{
			Base:      base,
			Position:  clientPoint(e),
			DeltaX:    e.Get("deltaX").Float(),
			DeltaY:    e.Get("deltaY").Float(),
			DeltaMode: gesture.DeltaMode(e.Get("deltaMode").Int()),
			Modifiers: modifiers(e),
		}
	case gesture.KindTouchStart, gesture.KindTouchMove, gesture.KindTouchEnd, gesture.KindTouchCancel:
		ev := &gesture.TouchEvent{Base: base, Type: kind}
		touches := e.Get("touches")
		for i := 0; i < touches.Length(); i++ {
			ev.Touches = append(ev.Touches, clientPoint(touches.Index(i)))
		}
		if v := e.Get("scale"); v.Type() == js.TypeNumber {
			ev.Scale, ev.HasScale = v.Float(), true
		}
		if v := e.Get("rotation"); v.Type() == js.TypeNumber {
			ev.Rotation, ev.HasRotation = v.Float(), true
		}
		return ev
	default:
		ev := &gesture.NativeGestureEvent{
			Base:      base,
			Type:      kind,
			Position:  clientPoint(e),
			Scale:     1,
			Modifiers: modifiers(e),
		}
		if v := e.Get("scale"); v.Type() == js.TypeNumber {
			ev.Scale = v.Float()
		}
		if v := e.Get("rotation"); v.Type() == js.TypeNumber {
			ev.Rotation = v.Float()
		}
		return ev
	}
}

// clientPoint reads clientX/clientY.
func clientPoint(v js.Value) gesture.Point {
	return gesture.Point{X: v.Get("clientX").Float(), Y: v.Get("clientY").Float()}
}

// modifiers reads the keyboard modifier flags of e.
func modifiers(e js.Value) gesture.Modifiers {
	var m gesture.Modifiers
	if e.Get("shiftKey").Truthy() {
		m |= gesture.ModShift
	}
	if e.Get("ctrlKey").Truthy() {
		m |= gesture.ModCtrl
	}
	if e.Get("altKey").Truthy() {
		m |= gesture.ModAlt
	}
	if e.Get("metaKey").Truthy() {
		m |= gesture.ModMeta
	}
	return m
}
