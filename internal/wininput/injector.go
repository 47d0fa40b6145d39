// Package wininput injects replayed gestures as host mouse input.
package wininput

import "errors"

// WheelNotch is one detent of a standard mouse wheel.
const WheelNotch = 120

// ErrUnsupported indicates WinAPI input injection is not available.
var ErrUnsupported = errors.New("wininput is only supported on Windows")

// Injector defines the input operations used by gesture replay. Wheel deltas
// are in WheelNotch units; positive scrolls up or right.
type Injector interface {
	MoveAbs(x, y int) error
	Wheel(delta int) error
	HWheel(delta int) error
	CtrlWheel(delta int) error
}
