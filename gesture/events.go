package gesture

// EventKind identifies a native input event type.
type EventKind uint8

const (
	KindWheel EventKind = iota
	KindTouchStart
	KindTouchMove
	KindTouchEnd
	KindTouchCancel
	KindGestureStart
	KindGestureChange
	KindGestureEnd
)

var kindNames = [...]string{
	KindWheel:         "wheel",
	KindTouchStart:    "touchstart",
	KindTouchMove:     "touchmove",
	KindTouchEnd:      "touchend",
	KindTouchCancel:   "touchcancel",
	KindGestureStart:  "gesturestart",
	KindGestureChange: "gesturechange",
	KindGestureEnd:    "gestureend",
}

// String returns the DOM event type name.
func (k EventKind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "unknown"
}

// ParseEventKind maps a DOM event type name to its kind.
func ParseEventKind(name string) (EventKind, bool) {
	for i, n := range kindNames {
		if n == name {
			return EventKind(i), true
		}
	}
	return 0, false
}

// Modifiers is a set of keyboard modifiers held during an event.
type Modifiers uint8

const (
	ModShift Modifiers = 1 << iota
	ModCtrl
	ModAlt
	ModMeta
)

// Contain reports whether m contains all modifiers in m2.
func (m Modifiers) Contain(m2 Modifiers) bool {
	return m&m2 == m2
}

// DeltaMode is the unit of a wheel event's deltas.
type DeltaMode uint8

const (
	DeltaPixel DeltaMode = iota
	DeltaLine
	DeltaPage
)

// Event is a native input event delivered by a runtime.
type Event interface {
	Kind() EventKind
	// PreventDefault suppresses the host's default handling when the
	// event is cancelable.
	PreventDefault()
	DefaultPrevented() bool
}

// Base carries the cancelation state shared by all events.
type Base struct {
	Cancelable bool
	prevented  bool
}

// PreventDefault marks the event as handled if it is cancelable.
func (b *Base) PreventDefault() {
	if b.Cancelable {
		b.prevented = true
	}
}

// DefaultPrevented reports whether PreventDefault took effect.
func (b *Base) DefaultPrevented() bool {
	return b.prevented
}

// WheelEvent is a mouse-wheel or trackpad scroll event.
type WheelEvent struct {
	Base
	// Position is the pointer location in viewport space.
	Position  Point
	DeltaX    float64
	DeltaY    float64
	DeltaMode DeltaMode
	Modifiers Modifiers
}

// Kind implements Event.
func (e *WheelEvent) Kind() EventKind { return KindWheel }

// TouchEvent is a touchstart, touchmove, touchend or touchcancel event.
type TouchEvent struct {
	Base
	Type EventKind
	// Touches lists the active touch points in viewport space.
	Touches []Point
	// Scale and Rotation are vendor extensions some engines report
	// directly on touch events.
	Scale       float64
	HasScale    bool
	Rotation    float64
	HasRotation bool
}

// Kind implements Event.
func (e *TouchEvent) Kind() EventKind { return e.Type }

// NativeGestureEvent is a vendor gesturestart, gesturechange or gestureend
// event.
type NativeGestureEvent struct {
	Base
	Type      EventKind
	Position  Point
	Scale     float64
	Rotation  float64
	Modifiers Modifiers
}

// Kind implements Event.
func (e *NativeGestureEvent) Kind() EventKind { return e.Type }
