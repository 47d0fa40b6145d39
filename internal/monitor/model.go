// Package monitor describes host displays that gestures can be replayed on.
package monitor

import (
	"errors"

	"github.com/frudas24/deskzoom/internal/calib"
)

// ErrUnsupported indicates monitor enumeration is not available on this platform.
var ErrUnsupported = errors.New("monitor enumeration is only supported on Windows")

// Monitor describes a display and its bounds in virtual-desktop pixels.
type Monitor struct {
	Index   int  `json:"index"`
	X       int  `json:"x"`
	Y       int  `json:"y"`
	W       int  `json:"w"`
	H       int  `json:"h"`
	Primary bool `json:"primary"`
}

// Bounds returns the monitor rectangle.
func (m Monitor) Bounds() calib.Rect {
	return calib.Rect{X: m.X, Y: m.Y, W: m.W, H: m.H}
}

// GetMonitorByIndex returns the monitor matching the 1-based index.
func GetMonitorByIndex(list []Monitor, idx int) (Monitor, bool) {
	for _, m := range list {
		if m.Index == idx {
			return m, true
		}
	}
	return Monitor{}, false
}

// Select returns the monitor with idx, falling back to the primary display
// and then to the first one listed.
func Select(list []Monitor, idx int) (Monitor, bool) {
	if m, ok := GetMonitorByIndex(list, idx); ok {
		return m, true
	}
	for _, m := range list {
		if m.Primary {
			return m, true
		}
	}
	if len(list) > 0 {
		return list[0], true
	}
	return Monitor{}, false
}
