// Package signaling exchanges WebRTC session descriptions over a websocket.
package signaling

import "github.com/pion/webrtc/v3"

// Signaling message types.
const (
	TypeOffer  = "offer"
	TypeAnswer = "answer"
	TypeICE    = "ice"
	TypeError  = "error"
)

// Message is a websocket signaling payload.
type Message struct {
	T         string                   `json:"t"`
	SDP       string                   `json:"sdp,omitempty"`
	Candidate *webrtc.ICECandidateInit `json:"candidate,omitempty"`
	Text      string                   `json:"text,omitempty"`
}
