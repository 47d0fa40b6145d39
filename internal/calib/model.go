// Package calib stores where remote gestures are replayed on the host.
package calib

// Rect describes a rectangle using top-left origin and size.
type Rect struct {
	X int `json:"x"`
	Y int `json:"y"`
	W int `json:"w"`
	H int `json:"h"`
}

// Calib stores the replay monitor and the target area inside it.
type Calib struct {
	MonitorIndex int  `json:"monitor"`
	Target       Rect `json:"target"`
}

// Normalize returns a rectangle with non-negative width/height.
func Normalize(r Rect) Rect {
	if r.W < 0 {
		r.X += r.W
		r.W = -r.W
	}
	if r.H < 0 {
		r.Y += r.H
		r.H = -r.H
	}
	return r
}

// Empty reports whether r has no area once normalized.
func Empty(r Rect) bool {
	r = Normalize(r)
	return r.W <= 0 || r.H <= 0
}

// Resolve places a monitor-relative target onto absolute screen bounds.
// An empty target resolves to the whole bounds; otherwise the target is
// clipped to them.
func Resolve(target Rect, bounds Rect) Rect {
	bounds = Normalize(bounds)
	target = Normalize(target)
	if target.W <= 0 || target.H <= 0 {
		return bounds
	}
	x0 := clampInt(bounds.X+target.X, bounds.X, bounds.X+bounds.W)
	y0 := clampInt(bounds.Y+target.Y, bounds.Y, bounds.Y+bounds.H)
	x1 := clampInt(bounds.X+target.X+target.W, bounds.X, bounds.X+bounds.W)
	y1 := clampInt(bounds.Y+target.Y+target.H, bounds.Y, bounds.Y+bounds.H)
	if x1 <= x0 || y1 <= y0 {
		return bounds
	}
	return Rect{X: x0, Y: y0, W: x1 - x0, H: y1 - y0}
}

// Contains reports whether a point is inside the rectangle (edges inclusive).
func Contains(r Rect, x, y int) bool {
	if r.W <= 0 || r.H <= 0 {
		return false
	}
	maxX := r.X + r.W
	maxY := r.Y + r.H
	return x >= r.X && x <= maxX && y >= r.Y && y <= maxY
}

// clampInt bounds v to [lo..hi].
func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
