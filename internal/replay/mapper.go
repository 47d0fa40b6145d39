package replay

import (
	"math"

	"github.com/frudas24/deskzoom/gesture"
	"github.com/frudas24/deskzoom/internal/calib"
)

// NormToAbs maps normalized coordinates to absolute coordinates inside rect.
func NormToAbs(xn, yn float64, rect calib.Rect) (int, int) {
	rect = calib.Normalize(rect)
	xn = clamp01(xn)
	yn = clamp01(yn)
	return rect.X + normToPixels(xn, rect.W), rect.Y + normToPixels(yn, rect.H)
}

// SurfaceToAbs maps a surface-local point onto rect. A surface without a
// known size maps every point to the rect center.
func SurfaceToAbs(p gesture.Point, surfaceW, surfaceH float64, rect calib.Rect) (int, int) {
	if surfaceW <= 0 || surfaceH <= 0 {
		return NormToAbs(0.5, 0.5, rect)
	}
	return NormToAbs(p.X/surfaceW, p.Y/surfaceH, rect)
}

// normToPixels scales a [0..1] value onto span pixels.
func normToPixels(norm float64, span int) int {
	if span <= 1 {
		return 0
	}
	return int(math.Round(norm * float64(span-1)))
}

// clamp01 bounds a float to the [0..1] range.
func clamp01(v float64) float64 {
	if math.IsNaN(v) || v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
