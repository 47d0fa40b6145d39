package gesture

import (
	"testing"
	"time"
)

// TestNormalizeWheel_LineModeBounded verifies line deltas are clamped and keep their sign.
func TestNormalizeWheel_LineModeBounded(t *testing.T) {
	for _, d := range []float64{-1000, -50, -3, -1, -0.5, 0.5, 1, 2, 3, 50, 1000} {
		e := &WheelEvent{DeltaX: d, DeltaY: -d, DeltaMode: DeltaLine}
		dx, dy := NormalizeWheel(e)
		if dx > 24 || dx < -24 || dy > 24 || dy < -24 {
			t.Fatalf("delta %v: expected |dx|,|dy| <= 24, got (%v,%v)", d, dx, dy)
		}
		if (dx > 0) != (d > 0) || (dy > 0) != (-d > 0) {
			t.Fatalf("delta %v: sign changed, got (%v,%v)", d, dx, dy)
		}
	}
}

// TestNormalizeWheel_LineMultiplier verifies small line deltas scale by 8.
func TestNormalizeWheel_LineMultiplier(t *testing.T) {
	dx, dy := NormalizeWheel(&WheelEvent{DeltaX: 1, DeltaY: -2, DeltaMode: DeltaLine})
	if dx != 8 || dy != -16 {
		t.Fatalf("expected (8,-16), got (%v,%v)", dx, dy)
	}
}

// TestNormalizeWheel_PageMultiplier verifies page deltas scale by 24.
func TestNormalizeWheel_PageMultiplier(t *testing.T) {
	dx, dy := NormalizeWheel(&WheelEvent{DeltaX: 0.25, DeltaY: 0.5, DeltaMode: DeltaPage})
	if dx != 6 || dy != 12 {
		t.Fatalf("expected (6,12), got (%v,%v)", dx, dy)
	}
}

// TestNormalizeWheel_PixelClamp verifies pixel deltas pass through up to the bound.
func TestNormalizeWheel_PixelClamp(t *testing.T) {
	dx, dy := NormalizeWheel(&WheelEvent{DeltaX: 7, DeltaY: -50})
	if dx != 7 || dy != -24 {
		t.Fatalf("expected (7,-24), got (%v,%v)", dx, dy)
	}
}

// TestNormalizeWheel_ShiftSwapsVerticalOnly verifies shift moves vertical-only scroll onto the horizontal axis.
func TestNormalizeWheel_ShiftSwapsVerticalOnly(t *testing.T) {
	dx, dy := NormalizeWheel(&WheelEvent{DeltaY: 5, Modifiers: ModShift})
	if dx != 5 || dy != 0 {
		t.Fatalf("expected (5,0), got (%v,%v)", dx, dy)
	}

	dx, dy = NormalizeWheel(&WheelEvent{DeltaX: 3, DeltaY: 5, Modifiers: ModShift})
	if dx != 3 || dy != 5 {
		t.Fatalf("expected (3,5) without swap, got (%v,%v)", dx, dy)
	}
}

// TestWheelZoomFactor_OppositeDeltasCancel verifies zoom in and out by the same delta compose to 1.
func TestWheelZoomFactor_OppositeDeltasCancel(t *testing.T) {
	for _, d := range []float64{1, 5, 10, 24} {
		if got := wheelZoomFactor(-d) * wheelZoomFactor(d); !approx(got, 1) {
			t.Fatalf("delta %v: expected product 1, got %v", d, got)
		}
	}
	if got := wheelZoomFactor(0); got != 1 {
		t.Fatalf("expected factor 1 for zero delta, got %v", got)
	}
}

// TestWheelGesture_SingleCtrlEventDefaultBound verifies one ctrl wheel event opens and closes a bounded zoom.
func TestWheelGesture_SingleCtrlEventDefaultBound(t *testing.T) {
	clock := &fakeClock{}
	rec := &recorder{clock: clock}
	rt := &fakeRuntime{}
	surface := &boxSurface{}
	if _, err := Register(rt, surface, rec.config()); err != nil {
		t.Fatalf("Register failed: %v", err)
	}

	rt.doc.dispatch(&WheelEvent{DeltaY: -50, Modifiers: ModCtrl})
	clock.Advance(DefaultWheelIdle)

	start, _, end := rec.phases()
	if start != 1 || end != 1 {
		t.Fatalf("expected one start and one end, got %d/%d", start, end)
	}
	first, _ := rec.last("start")
	if first.g.Scale != 1 || first.g.Translation != (Point{}) {
		t.Fatalf("expected identity start gesture, got %+v", first.g)
	}
	last, _ := rec.last("end")
	if !approx(last.g.Scale, 1.48) {
		t.Fatalf("expected scale 1.48, got %v", last.g.Scale)
	}
}

// TestWheelGesture_SingleCtrlEventRaisedBound verifies a -50 delta doubles the scale when the bound allows it.
func TestWheelGesture_SingleCtrlEventRaisedBound(t *testing.T) {
	clock := &fakeClock{}
	rec := &recorder{clock: clock}
	rt := &fakeRuntime{}
	cfg := rec.config()
	cfg.MaxWheelDelta = 50
	if _, err := Register(rt, &boxSurface{}, cfg); err != nil {
		t.Fatalf("Register failed: %v", err)
	}

	rt.doc.dispatch(&WheelEvent{DeltaY: -50, Modifiers: ModCtrl})
	clock.Advance(200 * time.Millisecond)

	start, _, end := rec.phases()
	if start != 1 || end != 1 {
		t.Fatalf("expected one start and one end, got %d/%d", start, end)
	}
	last, _ := rec.last("end")
	if last.g.Scale != 2 {
		t.Fatalf("expected scale 2, got %v", last.g.Scale)
	}
	if last.g.Translation != (Point{}) {
		t.Fatalf("expected zoom to leave translation unchanged, got %+v", last.g.Translation)
	}
}

// TestWheelGesture_TimerRearmedByEachEvent verifies spaced events keep a single gesture open.
func TestWheelGesture_TimerRearmedByEachEvent(t *testing.T) {
	const n = 5
	clock := &fakeClock{}
	rec := &recorder{clock: clock}
	rt := &fakeRuntime{}
	if _, err := Register(rt, &boxSurface{}, rec.config()); err != nil {
		t.Fatalf("Register failed: %v", err)
	}

	for i := 0; i < n; i++ {
		if i > 0 {
			clock.Advance(100 * time.Millisecond)
		}
		rt.doc.dispatch(&WheelEvent{DeltaY: 1})
	}
	lastEvent := clock.now

	clock.Advance(199 * time.Millisecond)
	if _, _, end := rec.phases(); end != 0 {
		t.Fatalf("expected no end before the idle timeout, got %d", end)
	}
	clock.Advance(time.Millisecond)

	start, do, end := rec.phases()
	if start != 1 || end != 1 {
		t.Fatalf("expected one start and one end, got %d/%d", start, end)
	}
	if do != n && do != n-1 {
		t.Fatalf("expected %d or %d updates, got %d", n-1, n, do)
	}
	last, _ := rec.last("end")
	if last.at != lastEvent+200*time.Millisecond {
		t.Fatalf("expected end at %v, got %v", lastEvent+200*time.Millisecond, last.at)
	}
}

// TestWheelGesture_PanAccumulates verifies unmodified wheel events accumulate translation.
func TestWheelGesture_PanAccumulates(t *testing.T) {
	clock := &fakeClock{}
	rec := &recorder{clock: clock}
	rt := &fakeRuntime{}
	if _, err := Register(rt, &boxSurface{}, rec.config()); err != nil {
		t.Fatalf("Register failed: %v", err)
	}

	rt.doc.dispatch(&WheelEvent{DeltaX: 3, DeltaY: 4})
	rt.doc.dispatch(&WheelEvent{DeltaX: 3, DeltaY: 4})

	last, ok := rec.last("do")
	if !ok {
		t.Fatalf("expected an update")
	}
	if last.g.Translation != (Point{X: -12, Y: -16}) || last.g.Scale != 1 {
		t.Fatalf("expected translation (-12,-16) at scale 1, got %+v", last.g)
	}
}

// TestWheelGesture_SnapshotsAreIndependent verifies retained gestures are not mutated by later events.
func TestWheelGesture_SnapshotsAreIndependent(t *testing.T) {
	clock := &fakeClock{}
	var kept []Gesture
	rt := &fakeRuntime{}
	cfg := Config{Clock: clock, DoGesture: func(g Gesture) { kept = append(kept, g) }}
	if _, err := Register(rt, &boxSurface{}, cfg); err != nil {
		t.Fatalf("Register failed: %v", err)
	}

	rt.doc.dispatch(&WheelEvent{DeltaY: 5})
	rt.doc.dispatch(&WheelEvent{DeltaY: 5})

	if len(kept) != 2 || kept[0].Translation.Y != -10 || kept[1].Translation.Y != -20 {
		t.Fatalf("unexpected snapshots %+v", kept)
	}
}

// TestWheelGesture_PreventDefaultHonorsCancelable verifies only cancelable events are suppressed.
func TestWheelGesture_PreventDefaultHonorsCancelable(t *testing.T) {
	clock := &fakeClock{}
	rt := &fakeRuntime{}
	if _, err := Register(rt, &boxSurface{}, Config{Clock: clock}); err != nil {
		t.Fatalf("Register failed: %v", err)
	}

	cancelable := &WheelEvent{Base: Base{Cancelable: true}, DeltaY: 1}
	rt.doc.dispatch(cancelable)
	if !cancelable.DefaultPrevented() {
		t.Fatalf("expected cancelable wheel event to be prevented")
	}

	passive := &WheelEvent{DeltaY: 1}
	rt.doc.dispatch(passive)
	if passive.DefaultPrevented() {
		t.Fatalf("expected non-cancelable wheel event to be left alone")
	}
}

// TestWheelGesture_OriginIsSurfaceLocal verifies the start origin is mapped into the surface.
func TestWheelGesture_OriginIsSurfaceLocal(t *testing.T) {
	clock := &fakeClock{}
	rec := &recorder{clock: clock}
	rt := &fakeRuntime{}
	surface := &boxSurface{rect: Rect{X: 10, Y: 20, W: 300, H: 300}}
	if _, err := Register(rt, surface, rec.config()); err != nil {
		t.Fatalf("Register failed: %v", err)
	}

	rt.doc.dispatch(&WheelEvent{Position: Point{X: 110, Y: 220}, DeltaY: 1})

	first, _ := rec.last("start")
	if first.g.Origin != (Point{X: 100, Y: 200}) {
		t.Fatalf("expected origin (100,200), got %+v", first.g.Origin)
	}
}

// TestWheelGesture_NewGestureAfterIdle verifies a wheel event after the timeout starts a fresh gesture.
func TestWheelGesture_NewGestureAfterIdle(t *testing.T) {
	clock := &fakeClock{}
	rec := &recorder{clock: clock}
	rt := &fakeRuntime{}
	if _, err := Register(rt, &boxSurface{}, rec.config()); err != nil {
		t.Fatalf("Register failed: %v", err)
	}

	rt.doc.dispatch(&WheelEvent{DeltaY: 10})
	clock.Advance(300 * time.Millisecond)
	rt.doc.dispatch(&WheelEvent{DeltaY: 10})

	start, _, end := rec.phases()
	if start != 2 || end != 1 {
		t.Fatalf("expected two starts and one end, got %d/%d", start, end)
	}
	second, _ := rec.last("do")
	if second.g.Translation.Y != -20 {
		t.Fatalf("expected fresh translation -20, got %v", second.g.Translation.Y)
	}
}

// TestWheelGesture_DisposeDropsOpenGesture verifies disposal cancels the idle timer without ending the gesture.
func TestWheelGesture_DisposeDropsOpenGesture(t *testing.T) {
	clock := &fakeClock{}
	rec := &recorder{clock: clock}
	rt := &fakeRuntime{}
	dispose, err := Register(rt, &boxSurface{}, rec.config())
	if err != nil {
		t.Fatalf("Register failed: %v", err)
	}

	rt.doc.dispatch(&WheelEvent{DeltaY: 1})
	dispose()
	clock.Advance(time.Second)

	if _, _, end := rec.phases(); end != 0 {
		t.Fatalf("expected no end after dispose, got %d", end)
	}
	if clock.pending() != 0 {
		t.Fatalf("expected idle timer to be stopped, got %d pending", clock.pending())
	}
}

// TestWheelGesture_SystemClockEndsGesture verifies the real timer path ends a gesture.
func TestWheelGesture_SystemClockEndsGesture(t *testing.T) {
	ended := make(chan Gesture, 1)
	rt := &fakeRuntime{}
	cfg := Config{
		WheelIdle:  20 * time.Millisecond,
		EndGesture: func(g Gesture) { ended <- g },
	}
	dispose, err := Register(rt, &boxSurface{}, cfg)
	if err != nil {
		t.Fatalf("Register failed: %v", err)
	}
	defer dispose()

	rt.doc.dispatch(&WheelEvent{DeltaY: -10, Modifiers: ModCtrl})

	select {
	case g := <-ended:
		if !approx(g.Scale, 1.2) {
			t.Fatalf("expected scale 1.2, got %v", g.Scale)
		}
	case <-time.After(2 * time.Second):
		t.Fatalf("expected gesture to end")
	}
}
