package gesture

import (
	"errors"
	"math"

	"golang.org/x/image/math/f64"
)

// ErrUnsupportedSurfaceKind is returned when a surface is neither a box-model
// nor a coordinate-system surface.
var ErrUnsupportedSurfaceKind = errors.New("gesture: unsupported surface kind")

// Rect is a viewport-space bounding box.
type Rect struct {
	X float64
	Y float64
	W float64
	H float64
}

// Matrix is a 2D affine transform in row-major order with an implicit
// [0 0 1] bottom row: x' = m[0]x + m[1]y + m[2], y' = m[3]x + m[4]y + m[5].
type Matrix f64.Aff3

// Identity is the identity transform.
var Identity = Matrix{1, 0, 0, 0, 1, 0}

// MatrixFromSVG builds a Matrix from SVG matrix(a b c d e f) components.
func MatrixFromSVG(a, b, c, d, e, f float64) Matrix {
	return Matrix{a, c, e, b, d, f}
}

// Apply transforms p by m.
func (m Matrix) Apply(p Point) Point {
	return Point{
		X: m[0]*p.X + m[1]*p.Y + m[2],
		Y: m[3]*p.X + m[4]*p.Y + m[5],
	}
}

// Invert returns the inverse of m. It reports false when m is singular.
func (m Matrix) Invert() (Matrix, bool) {
	det := m[0]*m[4] - m[1]*m[3]
	if math.Abs(det) < 1e-12 {
		return Identity, false
	}
	inv := 1 / det
	a := m[4] * inv
	b := -m[1] * inv
	c := -m[3] * inv
	d := m[0] * inv
	return Matrix{
		a, b, -(a*m[2] + b*m[5]),
		c, d, -(c*m[2] + d*m[5]),
	}, true
}

// Surface is the element gestures are interpreted relative to. It must also
// implement BoxSurface or CoordSurface.
type Surface interface {
	EventTarget
}

// BoxSurface is a box-model element positioned by its bounding box.
type BoxSurface interface {
	Surface
	// BoundingClientRect returns the current viewport bounding box.
	BoundingClientRect() Rect
}

// CoordSurface is a vector-graphics element with its own coordinate system.
type CoordSurface interface {
	Surface
	// ScreenCTM returns the current local-to-screen transform, or false
	// when the runtime cannot report one.
	ScreenCTM() (Matrix, bool)
}

// pointMapper converts a viewport point into surface-local space.
type pointMapper func(Point) Point

// mapperFor resolves the mapping algorithm for s. The algorithm is fixed
// once; the layout it reads is queried on every call.
func mapperFor(s Surface) (pointMapper, error) {
	switch s := s.(type) {
	case CoordSurface:
		return func(p Point) Point { return coordToLocal(s, p) }, nil
	case BoxSurface:
		return func(p Point) Point { return boxToLocal(s, p) }, nil
	default:
		return nil, ErrUnsupportedSurfaceKind
	}
}

// MapPoint converts a viewport point into s's local coordinates.
func MapPoint(s Surface, p Point) (Point, error) {
	m, err := mapperFor(s)
	if err != nil {
		return Point{}, err
	}
	return m(p), nil
}

// boxToLocal subtracts the surface's bounding box origin.
func boxToLocal(s BoxSurface, p Point) Point {
	r := s.BoundingClientRect()
	return Point{X: p.X - r.X, Y: p.Y - r.Y}
}

// coordToLocal applies the inverse screen CTM, falling back to identity.
func coordToLocal(s CoordSurface, p Point) Point {
	ctm, ok := s.ScreenCTM()
	if !ok {
		return p
	}
	inv, ok := ctm.Invert()
	if !ok {
		return p
	}
	return inv.Apply(p)
}
