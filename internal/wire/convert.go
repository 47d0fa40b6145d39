package wire

import (
	"fmt"
	"strings"

	"github.com/frudas24/deskzoom/gesture"
)

// ToEvent converts an incoming event message into a core event. Messages
// without an explicit cancelable flag are cancelable.
func ToEvent(msg Message) (gesture.Event, error) {
	kind, ok := gesture.ParseEventKind(msg.T)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownEvent, msg.T)
	}
	base := gesture.Base{Cancelable: msg.Cancelable == nil || *msg.Cancelable}

	switch kind {
	case gesture.KindWheel:
		mode, err := deltaMode(msg.Mode)
		if err != nil {
			return nil, err
		}
		return &gesture.WheelEvent{
			Base:      base,
			Position:  gesture.Point{X: msg.X, Y: msg.Y},
			DeltaX:    msg.DX,
			DeltaY:    msg.DY,
			DeltaMode: mode,
			Modifiers: ParseModifiers(msg.Mods),
		}, nil
	case gesture.KindTouchStart, gesture.KindTouchMove, gesture.KindTouchEnd, gesture.KindTouchCancel:
		e := &gesture.TouchEvent{Base: base, Type: kind}
		for _, t := range msg.Touches {
			e.Touches = append(e.Touches, gesture.Point{X: t.X, Y: t.Y})
		}
		if msg.Scale != nil {
			e.Scale, e.HasScale = *msg.Scale, true
		}
		if msg.Rotation != nil {
			e.Rotation, e.HasRotation = *msg.Rotation, true
		}
		return e, nil
	default:
		e := &gesture.NativeGestureEvent{
			Base:      base,
			Type:      kind,
			Position:  gesture.Point{X: msg.X, Y: msg.Y},
			Scale:     1,
			Modifiers: ParseModifiers(msg.Mods),
		}
		if msg.Scale != nil {
			e.Scale = *msg.Scale
		}
		if msg.Rotation != nil {
			e.Rotation = *msg.Rotation
		}
		return e, nil
	}
}

// FromGesture builds an outgoing lifecycle message. phase is one of
// TypeStart, TypeDo or TypeEnd.
func FromGesture(phase string, g gesture.Gesture) Message {
	out := &Gesture{
		Origin:      Point{X: g.Origin.X, Y: g.Origin.Y},
		Translation: Point{X: g.Translation.X, Y: g.Translation.Y},
		Scale:       g.Scale,
	}
	if g.HasRotation {
		r := g.Rotation
		out.Rotation = &r
	}
	return Message{T: phase, Gesture: out}
}

// ToGesture converts an outgoing gesture snapshot back into the core type.
func (g Gesture) ToGesture() gesture.Gesture {
	out := gesture.Gesture{
		Origin:      gesture.Point{X: g.Origin.X, Y: g.Origin.Y},
		Translation: gesture.Point{X: g.Translation.X, Y: g.Translation.Y},
		Scale:       g.Scale,
	}
	if g.Rotation != nil {
		out.Rotation, out.HasRotation = *g.Rotation, true
	}
	return out
}

// ParseModifiers maps modifier names to flags. Unknown names are ignored.
func ParseModifiers(names []string) gesture.Modifiers {
	var m gesture.Modifiers
	for _, name := range names {
		switch strings.ToLower(name) {
		case "shift":
			m |= gesture.ModShift
		case "ctrl", "control":
			m |= gesture.ModCtrl
		case "alt":
			m |= gesture.ModAlt
		case "meta":
			m |= gesture.ModMeta
		}
	}
	return m
}

// ToRect converts a client rectangle.
func (r Rect) ToRect() gesture.Rect {
	return gesture.Rect{X: r.X, Y: r.Y, W: r.W, H: r.H}
}

// ToMatrix converts a six-element SVG matrix [a b c d e f].
func ToMatrix(ctm []float64) (gesture.Matrix, error) {
	if len(ctm) != 6 {
		return gesture.Matrix{}, fmt.Errorf("%w: ctm needs 6 values, got %d", ErrBadMessage, len(ctm))
	}
	return gesture.MatrixFromSVG(ctm[0], ctm[1], ctm[2], ctm[3], ctm[4], ctm[5]), nil
}

// deltaMode validates a DOM deltaMode value.
func deltaMode(v int) (gesture.DeltaMode, error) {
	switch v {
	case 0:
		return gesture.DeltaPixel, nil
	case 1:
		return gesture.DeltaLine, nil
	case 2:
		return gesture.DeltaPage, nil
	default:
		return 0, fmt.Errorf("%w: deltaMode %d", ErrBadMessage, v)
	}
}
