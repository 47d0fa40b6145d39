package gesture

import "time"

// Handler receives native events from an EventTarget.
type Handler func(Event)

// EventTarget is anything native listeners can be attached to.
type EventTarget interface {
	// Listen attaches h for events of the given kind as a non-passive
	// listener and returns a function that detaches it.
	Listen(kind EventKind, h Handler) (remove func())
}

// Capabilities describes which event families the runtime delivers.
type Capabilities struct {
	Touch         bool
	GestureEvents bool
}

// nativeGestures reports whether the vendor gesture adapter applies. Runtimes
// offering both families deliver the same pinch twice, so touch wins.
func (c Capabilities) nativeGestures() bool {
	return c.GestureEvents && !c.Touch
}

// Runtime supplies the document-level target and feature detection.
type Runtime interface {
	// Document is the target wheel listeners are attached to.
	Document() EventTarget
	Capabilities() Capabilities
}

// Timer is a pending callback that can be canceled.
type Timer interface {
	Stop() bool
}

// Clock schedules callbacks. The wheel adapter uses it for its idle timer.
type Clock interface {
	AfterFunc(d time.Duration, f func()) Timer
}

type systemClock struct{}

// AfterFunc schedules f on the runtime timer wheel.
func (systemClock) AfterFunc(d time.Duration, f func()) Timer {
	return time.AfterFunc(d, f)
}

// SystemClock returns a Clock backed by time.AfterFunc.
func SystemClock() Clock {
	return systemClock{}
}
