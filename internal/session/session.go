// Package session holds runtime state for the active gesture client.
package session

import (
	"sync"

	"github.com/frudas24/deskzoom/gesture"
	"github.com/frudas24/deskzoom/internal/calib"
)

// Phase names a gesture lifecycle callback.
type Phase string

const (
	// PhaseStart marks a gesture start.
	PhaseStart Phase = "start"
	// PhaseDo marks a gesture update.
	PhaseDo Phase = "do"
	// PhaseEnd marks a gesture end.
	PhaseEnd Phase = "end"
)

// Stats counts gesture lifecycle callbacks.
type Stats struct {
	Started int `json:"started"`
	Updated int `json:"updated"`
	Ended   int `json:"ended"`
}

// Snapshot represents a read-only view of the current session state.
type Snapshot struct {
	Authenticated bool
	InputEnabled  bool
	Peer          string
	Active        bool
	Stats         Stats
	Last          *gesture.Gesture
	Calib         calib.Calib
}

// Session holds runtime state for the active gesture client.
type Session struct {
	mu            sync.RWMutex
	password      string
	passwordMode  bool
	authenticated bool
	inputEnabled  bool
	peer          string
	active        bool
	stats         Stats
	last          *gesture.Gesture
	calib         calib.Calib
}

// New returns an initialized session with the given password.
func New(password string) *Session {
	return &Session{
		password:     password,
		passwordMode: true,
		inputEnabled: true,
	}
}

// NewOpen returns a session that needs no password, for local development.
func NewOpen() *Session {
	return &Session{inputEnabled: true}
}

// Authenticate validates the password and marks the session as authenticated.
func (s *Session) Authenticate(pass string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.passwordMode {
		s.authenticated = true
		return true
	}
	if pass != "" && pass == s.password {
		s.authenticated = true
		return true
	}
	s.authenticated = false
	return false
}

// Logout clears authentication state.
func (s *Session) Logout() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.authenticated = false
}

// IsAuthenticated reports whether the session is authenticated.
func (s *Session) IsAuthenticated() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.authenticated || !s.passwordMode
}

// SetInputEnabled toggles whether remote events are processed.
func (s *Session) SetInputEnabled(enabled bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.inputEnabled = enabled
}

// InputEnabled reports whether remote events are processed.
func (s *Session) InputEnabled() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.inputEnabled
}

// SetPeer records the id of the connected client; an empty id clears it.
func (s *Session) SetPeer(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.peer = id
	if id == "" {
		s.active = false
	}
}

// ClearPeer clears the connected client if it is still id.
func (s *Session) ClearPeer(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.peer == id {
		s.peer = ""
		s.active = false
	}
}

// RecordGesture updates counters and the last gesture for one callback.
func (s *Session) RecordGesture(phase Phase, g gesture.Gesture) {
	s.mu.Lock()
	defer s.mu.Unlock()
	switch phase {
	case PhaseStart:
		s.stats.Started++
		s.active = true
	case PhaseDo:
		s.stats.Updated++
	case PhaseEnd:
		s.stats.Ended++
		s.active = false
	}
	s.last = &g
}

// SetCalib stores calibration data.
func (s *Session) SetCalib(c calib.Calib) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.calib = c
}

// GetCalib returns the current calibration data.
func (s *Session) GetCalib() calib.Calib {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.calib
}

// Snapshot returns a copy of the current session state.
func (s *Session) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	snap := Snapshot{
		Authenticated: s.authenticated || !s.passwordMode,
		InputEnabled:  s.inputEnabled,
		Peer:          s.peer,
		Active:        s.active,
		Stats:         s.stats,
		Calib:         s.calib,
	}
	if s.last != nil {
		last := *s.last
		snap.Last = &last
	}
	return snap
}
