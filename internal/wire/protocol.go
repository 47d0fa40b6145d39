// Package wire defines the JSON messages exchanged with remote gesture clients.
package wire

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"

	"github.com/frudas24/deskzoom/gesture"
	"github.com/tidwall/gjson"
)

// Incoming control message types. Event messages use the DOM event name as
// their type, see ToEvent.
const (
	TypeHello        = "hello"
	TypeLayout       = "layout"
	TypeTarget       = "target"
	TypeInputEnabled = "inputEnabled"
)

// Outgoing message types.
const (
	TypeWelcome = "welcome"
	TypeStart   = "start"
	TypeDo      = "do"
	TypeEnd     = "end"
	TypeError   = "error"
)

// Surface kinds declared by hello.
const (
	SurfaceBox   = "box"
	SurfaceCoord = "svg"
)

var (
	// ErrUnknownEvent is returned by Decode for types clients may not send and
	// by ToEvent for messages that are not input events.
	ErrUnknownEvent = errors.New("wire: unknown event type")
	// ErrBadMessage is returned for messages missing required fields.
	ErrBadMessage = errors.New("wire: malformed message")
	// ErrNonFinite is returned by Encode for gestures JSON cannot carry,
	// such as the infinite scale of a pinch that started on one point.
	ErrNonFinite = errors.New("wire: non-finite gesture value")
)

// Point is a 2D position or offset.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Rect is a viewport rectangle reported by the client.
type Rect struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	W float64 `json:"w"`
	H float64 `json:"h"`
}

// Gesture is the outgoing gesture snapshot.
type Gesture struct {
	Origin      Point    `json:"origin"`
	Translation Point    `json:"translation"`
	Scale       float64  `json:"scale"`
	Rotation    *float64 `json:"rotation,omitempty"`
}

// Message is a gesture websocket or data channel payload.
type Message struct {
	T string `json:"t"`

	// hello
	Surface       string `json:"surface,omitempty"`
	Touch         bool   `json:"touch,omitempty"`
	GestureEvents bool   `json:"gestureEvents,omitempty"`

	// layout and target
	Rect *Rect     `json:"rect,omitempty"`
	CTM  []float64 `json:"ctm,omitempty"`

	// inputEnabled
	Enabled *bool `json:"enabled,omitempty"`

	// events
	X          float64  `json:"x,omitempty"`
	Y          float64  `json:"y,omitempty"`
	DX         float64  `json:"dx,omitempty"`
	DY         float64  `json:"dy,omitempty"`
	Mode       int      `json:"mode,omitempty"`
	Mods       []string `json:"mods,omitempty"`
	Cancelable *bool    `json:"cancelable,omitempty"`
	Touches    []Point  `json:"touches,omitempty"`
	Scale      *float64 `json:"scale,omitempty"`
	Rotation   *float64 `json:"rotation,omitempty"`

	// outgoing
	Gesture *Gesture `json:"gesture,omitempty"`
	Peer    string   `json:"peer,omitempty"`
	Text    string   `json:"text,omitempty"`
}

// PeekType returns the "t" field of a raw message without decoding it.
func PeekType(data []byte) string {
	return gjson.GetBytes(data, "t").String()
}

// Incoming reports whether t is a message type clients may send.
func Incoming(t string) bool {
	switch t {
	case TypeHello, TypeLayout, TypeTarget, TypeInputEnabled:
		return true
	}
	_, ok := gesture.ParseEventKind(t)
	return ok
}

// Decode parses a single client message. The type is routed on before the
// body is decoded, so unknown types are rejected without decoding them.
func Decode(data []byte) (Message, error) {
	t := PeekType(data)
	if t == "" {
		if !gjson.ValidBytes(data) {
			return Message{}, fmt.Errorf("%w: invalid json", ErrBadMessage)
		}
		return Message{}, fmt.Errorf("%w: missing type", ErrBadMessage)
	}
	if !Incoming(t) {
		return Message{}, fmt.Errorf("%w: %q", ErrUnknownEvent, t)
	}
	var msg Message
	if err := json.Unmarshal(data, &msg); err != nil {
		return Message{}, fmt.Errorf("%w: %v", ErrBadMessage, err)
	}
	return msg, nil
}

// Encode serializes msg.
func Encode(msg Message) ([]byte, error) {
	if g := msg.Gesture; g != nil {
		values := []float64{g.Origin.X, g.Origin.Y, g.Translation.X, g.Translation.Y, g.Scale}
		if g.Rotation != nil {
			values = append(values, *g.Rotation)
		}
		for _, v := range values {
			if math.IsInf(v, 0) || math.IsNaN(v) {
				return nil, fmt.Errorf("%w: %s scale=%v", ErrNonFinite, msg.T, g.Scale)
			}
		}
	}
	return json.Marshal(msg)
}

// ErrorMessage builds an outgoing error message.
func ErrorMessage(err error) Message {
	return Message{T: TypeError, Text: err.Error()}
}
