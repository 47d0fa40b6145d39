package gesture

import "testing"

// nativeEvent builds a cancelable vendor gesture event.
func nativeEvent(kind EventKind, x, y, scale, rotation float64) *NativeGestureEvent {
	return &NativeGestureEvent{
		Base:     Base{Cancelable: true},
		Type:     kind,
		Position: Point{X: x, Y: y},
		Scale:    scale,
		Rotation: rotation,
	}
}

// TestNativeGesture_Lifecycle verifies vendor events map directly onto the lifecycle.
func TestNativeGesture_Lifecycle(t *testing.T) {
	rec := &recorder{}
	surface := &boxSurface{rect: Rect{X: 100, Y: 100}}
	if _, err := Register(&fakeRuntime{caps: Capabilities{GestureEvents: true}}, surface, rec.config()); err != nil {
		t.Fatalf("Register failed: %v", err)
	}

	start := nativeEvent(KindGestureStart, 150, 160, 1, 0)
	change := nativeEvent(KindGestureChange, 150, 160, 1.5, 30)
	end := nativeEvent(KindGestureEnd, 150, 160, 1.75, 45)
	surface.dispatch(start)
	surface.dispatch(change)
	surface.dispatch(end)

	if len(rec.calls) != 3 || rec.calls[0].phase != "start" || rec.calls[1].phase != "do" || rec.calls[2].phase != "end" {
		t.Fatalf("unexpected calls %#v", rec.calls)
	}
	got := rec.calls[1].g
	want := Gesture{Origin: Point{X: 50, Y: 60}, Scale: 1.5, Rotation: 30, HasRotation: true}
	if got != want {
		t.Fatalf("expected %+v, got %+v", want, got)
	}
	if rec.calls[2].g.Translation != (Point{}) || rec.calls[2].g.Scale != 1.75 {
		t.Fatalf("unexpected end gesture %+v", rec.calls[2].g)
	}
	if !start.DefaultPrevented() || !change.DefaultPrevented() {
		t.Fatalf("expected start and change to be prevented")
	}
	if end.DefaultPrevented() {
		t.Fatalf("expected end to keep its default")
	}
}

// TestNativeGesture_IgnoredWithTouch verifies vendor events are not handled when touch events exist.
func TestNativeGesture_IgnoredWithTouch(t *testing.T) {
	rec := &recorder{}
	surface := &boxSurface{}
	rt := &fakeRuntime{caps: Capabilities{Touch: true, GestureEvents: true}}
	if _, err := Register(rt, surface, rec.config()); err != nil {
		t.Fatalf("Register failed: %v", err)
	}

	surface.dispatch(nativeEvent(KindGestureStart, 0, 0, 1, 0))
	if len(rec.calls) != 0 {
		t.Fatalf("expected no callbacks, got %#v", rec.calls)
	}
}
