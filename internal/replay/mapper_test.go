package replay

import (
	"testing"

	"github.com/frudas24/deskzoom/gesture"
	"github.com/frudas24/deskzoom/internal/calib"
)

// TestNormToAbs_Corners verifies the top-left and bottom-right mapping.
func TestNormToAbs_Corners(t *testing.T) {
	r := calib.Rect{X: 100, Y: 200, W: 300, H: 400}
	if x, y := NormToAbs(0, 0, r); x != 100 || y != 200 {
		t.Fatalf("expected (100,200), got (%d,%d)", x, y)
	}
	if x, y := NormToAbs(1, 1, r); x != 399 || y != 599 {
		t.Fatalf("expected (399,599), got (%d,%d)", x, y)
	}
}

// TestNormToAbs_Clamps verifies out-of-range inputs stay inside the rect.
func TestNormToAbs_Clamps(t *testing.T) {
	r := calib.Rect{X: 10, Y: 20, W: 30, H: 40}
	if x, y := NormToAbs(-1, 2, r); x != 10 || y != 59 {
		t.Fatalf("expected (10,59), got (%d,%d)", x, y)
	}
}

// TestSurfaceToAbs_Center verifies surface coordinates scale onto the rect.
func TestSurfaceToAbs_Center(t *testing.T) {
	r := calib.Rect{X: 1000, Y: 0, W: 201, H: 101}
	x, y := SurfaceToAbs(gesture.Point{X: 400, Y: 150}, 800, 300, r)
	if x != 1100 || y != 50 {
		t.Fatalf("expected (1100,50), got (%d,%d)", x, y)
	}
}

// TestSurfaceToAbs_UnknownSize verifies an unsized surface maps to the center.
func TestSurfaceToAbs_UnknownSize(t *testing.T) {
	r := calib.Rect{W: 101, H: 201}
	x, y := SurfaceToAbs(gesture.Point{X: 5, Y: 5}, 0, 0, r)
	if x != 50 || y != 100 {
		t.Fatalf("expected (50,100), got (%d,%d)", x, y)
	}
}
