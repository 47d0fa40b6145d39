// Package replay turns a gesture stream into host mouse input.
package replay

// ActionType identifies the kind of input action to execute.
type ActionType string

const (
	// ActMove moves the mouse cursor.
	ActMove ActionType = "move"
	// ActZoom scrolls the wheel with Control held.
	ActZoom ActionType = "zoom"
	// ActScroll scrolls the vertical wheel.
	ActScroll ActionType = "scroll"
	// ActHScroll scrolls the horizontal wheel.
	ActHScroll ActionType = "hscroll"
)

// Action describes a normalized input operation to apply. Delta is in
// wheel notch units for the wheel actions.
type Action struct {
	Type  ActionType
	X     int
	Y     int
	Delta int
}
