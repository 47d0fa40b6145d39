// Package gesture normalizes mouse-wheel, two-finger touch and vendor gesture
// events into a single stream of pan/zoom/rotate gestures.
//
// A runtime (browser binding, relay peer, terminal) supplies event targets and
// a surface; Register wires the adapters for that runtime and reports each
// gesture through the StartGesture, DoGesture and EndGesture callbacks.
package gesture

// Point is a 2D coordinate. The call site decides whether it is in viewport
// space or surface-local space.
type Point struct {
	X float64
	Y float64
}

// Add returns p+q.
func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

// Sub returns p-q.
func (p Point) Sub(q Point) Point {
	return Point{X: p.X - q.X, Y: p.Y - q.Y}
}

// Gesture is an immutable snapshot of an in-progress pan/zoom/rotate
// interaction. Every update produces a new value.
type Gesture struct {
	// Origin is the stable anchor of the interaction in surface-local space.
	Origin Point
	// Translation is the pan delta since the gesture started.
	Translation Point
	// Scale is the zoom factor relative to the gesture start; 1 is unchanged.
	Scale float64
	// Rotation is in degrees relative to the gesture start. It is only
	// meaningful when HasRotation is set.
	Rotation    float64
	HasRotation bool
}

// newGesture returns the identity gesture anchored at origin.
func newGesture(origin Point) Gesture {
	return Gesture{Origin: origin, Scale: 1}
}

// withRotation returns a copy of g reporting the given rotation.
func (g Gesture) withRotation(deg float64) Gesture {
	g.Rotation = deg
	g.HasRotation = true
	return g
}
