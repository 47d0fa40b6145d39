package wire

import (
	"errors"
	"math"
	"testing"

	"github.com/frudas24/deskzoom/gesture"
)

// TestDecode_Hello verifies decoding a hello message.
func TestDecode_Hello(t *testing.T) {
	msg, err := Decode([]byte(`{"t":"hello","surface":"svg","touch":true}`))
	if err != nil {
		t.Fatalf("decode failed: %v", err)
	}
	if msg.T != TypeHello || msg.Surface != SurfaceCoord || !msg.Touch || msg.GestureEvents {
		t.Fatalf("unexpected message: %+v", msg)
	}
}

// TestDecode_Rejects verifies malformed payloads and missing types fail.
func TestDecode_Rejects(t *testing.T) {
	for _, payload := range []string{`{`, `{"x":1}`, `{"t":""}`, `{"t":"wheel","dx":"a"}`} {
		if _, err := Decode([]byte(payload)); !errors.Is(err, ErrBadMessage) {
			t.Fatalf("expected ErrBadMessage for %s, got %v", payload, err)
		}
	}
}

// TestDecode_UnknownTypeRejectedBeforeBody verifies unknown types fail as
// unknown even when the rest of the body would not decode.
func TestDecode_UnknownTypeRejectedBeforeBody(t *testing.T) {
	for _, payload := range []string{`{"t":"bogus"}`, `{"t":"bogus","dx":"a"}`, `{"t":"welcome"}`} {
		_, err := Decode([]byte(payload))
		if !errors.Is(err, ErrUnknownEvent) {
			t.Fatalf("expected ErrUnknownEvent for %s, got %v", payload, err)
		}
		if errors.Is(err, ErrBadMessage) {
			t.Fatalf("expected no ErrBadMessage for %s, got %v", payload, err)
		}
	}
	if !Incoming(TypeTarget) || !Incoming("touchmove") || Incoming(TypeDo) {
		t.Fatalf("unexpected Incoming routing")
	}
}

// TestPeekType verifies the type is read without full decoding.
func TestPeekType(t *testing.T) {
	if got := PeekType([]byte(`{"dx":1,"t":"wheel"}`)); got != "wheel" {
		t.Fatalf("expected wheel, got %q", got)
	}
	if got := PeekType([]byte(`{"dx":1}`)); got != "" {
		t.Fatalf("expected empty type, got %q", got)
	}
}

// TestToEvent_Wheel verifies wheel fields and modifiers.
func TestToEvent_Wheel(t *testing.T) {
	msg, err := Decode([]byte(`{"t":"wheel","x":10,"y":20,"dx":1,"dy":-3,"mode":1,"mods":["ctrl","Shift"]}`))
	if err != nil {
		t.Fatalf("decode failed: %v", err)
	}
	ev, err := ToEvent(msg)
	if err != nil {
		t.Fatalf("ToEvent failed: %v", err)
	}
	w, ok := ev.(*gesture.WheelEvent)
	if !ok {
		t.Fatalf("expected *WheelEvent, got %T", ev)
	}
	if w.Position != (gesture.Point{X: 10, Y: 20}) || w.DeltaX != 1 || w.DeltaY != -3 || w.DeltaMode != gesture.DeltaLine {
		t.Fatalf("unexpected wheel event: %+v", w)
	}
	if !w.Modifiers.Contain(gesture.ModCtrl|gesture.ModShift) || w.Modifiers.Contain(gesture.ModAlt) {
		t.Fatalf("unexpected modifiers: %v", w.Modifiers)
	}
	if !w.Cancelable {
		t.Fatalf("expected wheel to default to cancelable")
	}
}

// TestToEvent_WheelBadMode verifies unknown delta modes are rejected.
func TestToEvent_WheelBadMode(t *testing.T) {
	if _, err := ToEvent(Message{T: "wheel", Mode: 7}); !errors.Is(err, ErrBadMessage) {
		t.Fatalf("expected ErrBadMessage, got %v", err)
	}
}

// TestToEvent_Touch verifies touch lists and optional vendor values.
func TestToEvent_Touch(t *testing.T) {
	msg, err := Decode([]byte(`{"t":"touchmove","touches":[{"x":0,"y":0},{"x":200,"y":0}],"scale":2,"cancelable":false}`))
	if err != nil {
		t.Fatalf("decode failed: %v", err)
	}
	ev, err := ToEvent(msg)
	if err != nil {
		t.Fatalf("ToEvent failed: %v", err)
	}
	e := ev.(*gesture.TouchEvent)
	if e.Type != gesture.KindTouchMove || len(e.Touches) != 2 || e.Touches[1].X != 200 {
		t.Fatalf("unexpected touch event: %+v", e)
	}
	if !e.HasScale || e.Scale != 2 || e.HasRotation {
		t.Fatalf("unexpected vendor values: %+v", e)
	}
	if e.Cancelable {
		t.Fatalf("expected explicit cancelable=false to be kept")
	}
}

// TestToEvent_NativeDefaultsScale verifies vendor gestures default to scale 1.
func TestToEvent_NativeDefaultsScale(t *testing.T) {
	ev, err := ToEvent(Message{T: "gesturestart", X: 5, Y: 6})
	if err != nil {
		t.Fatalf("ToEvent failed: %v", err)
	}
	e := ev.(*gesture.NativeGestureEvent)
	if e.Type != gesture.KindGestureStart || e.Scale != 1 || e.Position != (gesture.Point{X: 5, Y: 6}) {
		t.Fatalf("unexpected native event: %+v", e)
	}
}

// TestToEvent_Unknown verifies control messages are not events.
func TestToEvent_Unknown(t *testing.T) {
	if _, err := ToEvent(Message{T: TypeHello}); !errors.Is(err, ErrUnknownEvent) {
		t.Fatalf("expected ErrUnknownEvent, got %v", err)
	}
}

// TestFromGesture_OmitsRotationWithoutValue verifies rotation is only sent when present.
func TestFromGesture_OmitsRotationWithoutValue(t *testing.T) {
	msg := FromGesture(TypeDo, gesture.Gesture{Scale: 1.5, Translation: gesture.Point{X: -2}})
	data, err := Encode(msg)
	if err != nil {
		t.Fatalf("encode failed: %v", err)
	}
	want := `{"t":"do","gesture":{"origin":{"x":0,"y":0},"translation":{"x":-2,"y":0},"scale":1.5}}`
	if string(data) != want {
		t.Fatalf("expected %s, got %s", want, data)
	}

	back := msg.Gesture.ToGesture()
	if back.HasRotation || back.Scale != 1.5 || back.Translation.X != -2 {
		t.Fatalf("unexpected gesture %+v", back)
	}
}

// TestEncode_NonFiniteScale verifies gestures JSON cannot carry are refused.
func TestEncode_NonFiniteScale(t *testing.T) {
	for _, scale := range []float64{math.Inf(1), math.NaN()} {
		data, err := Encode(FromGesture(TypeDo, gesture.Gesture{Scale: scale}))
		if !errors.Is(err, ErrNonFinite) {
			t.Fatalf("expected ErrNonFinite for %v, got %v", scale, err)
		}
		if data != nil {
			t.Fatalf("expected no data, got %s", data)
		}
	}
}

// TestFromGesture_Rotation verifies rotation survives a round trip.
func TestFromGesture_Rotation(t *testing.T) {
	g := gesture.Gesture{Scale: 2, Rotation: 90, HasRotation: true}
	msg := FromGesture(TypeEnd, g)
	if msg.Gesture.Rotation == nil || *msg.Gesture.Rotation != 90 {
		t.Fatalf("expected rotation 90, got %+v", msg.Gesture)
	}
	if got := msg.Gesture.ToGesture(); got != g {
		t.Fatalf("expected %+v, got %+v", g, got)
	}
}

// TestToMatrix verifies CTM arrays map through MatrixFromSVG.
func TestToMatrix(t *testing.T) {
	m, err := ToMatrix([]float64{2, 0, 0, 2, 10, 20})
	if err != nil {
		t.Fatalf("ToMatrix failed: %v", err)
	}
	if got := m.Apply(gesture.Point{X: 1, Y: 1}); got != (gesture.Point{X: 12, Y: 22}) {
		t.Fatalf("unexpected mapping %+v", got)
	}
	if _, err := ToMatrix([]float64{1, 2}); !errors.Is(err, ErrBadMessage) {
		t.Fatalf("expected ErrBadMessage, got %v", err)
	}
}
