package relay

import (
	"fmt"
	"log"
	"net/http"
	"sync"
	"time"

	"github.com/frudas24/deskzoom/internal/wire"
	"github.com/gorilla/websocket"
)

// ViewerPolicy controls how additional clients are handled.
type ViewerPolicy int

const (
	// ViewerReject rejects new connections when one is active.
	ViewerReject ViewerPolicy = iota
	// ViewerReplace closes the active connection when a new one arrives.
	ViewerReplace
)

// Server relays gesture events over a websocket.
type Server struct {
	mu       sync.Mutex
	writeMu  sync.Mutex
	upgrader websocket.Upgrader
	opts     Options
	policy   ViewerPolicy
	authFn   func() bool
	conn     *websocket.Conn
}

// NewServer creates a gesture websocket server.
func NewServer(opts Options, policy ViewerPolicy, authFn func() bool) *Server {
	return &Server{
		opts:   opts,
		policy: policy,
		authFn: authFn,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  4096,
			WriteBufferSize: 4096,
			CheckOrigin:     func(*http.Request) bool { return true },
		},
	}
}

// ServeHTTP upgrades the connection and processes gesture messages.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if s.authFn != nil && !s.authFn() {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		return
	}
	if err := s.acceptConn(conn); err != nil {
		s.rejectConn(conn, err.Error())
		return
	}
	defer s.cleanupConn(conn)

	peer := NewPeer(s.opts, func(msg wire.Message) error {
		return s.sendTo(conn, msg)
	})
	defer peer.Close()
	log.Printf("relay: connected peer=%s remote=%s", peer.ID(), r.RemoteAddr)
	defer log.Printf("relay: disconnected peer=%s", peer.ID())

	for {
		_, data, err := conn.ReadMessage()
		if err != nil {
			return
		}
		msg, err := wire.Decode(data)
		if err == nil {
			err = peer.Handle(msg)
		}
		if err != nil {
			if debugEnabled() {
				log.Printf("relay: peer=%s t=%q: %v", peer.ID(), wire.PeekType(data), err)
			}
			if sendErr := s.sendTo(conn, wire.ErrorMessage(err)); sendErr != nil {
				return
			}
		}
	}
}

// acceptConn registers a new websocket connection or returns an error.
func (s *Server) acceptConn(conn *websocket.Conn) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.conn != nil {
		switch s.policy {
		case ViewerReplace:
			_ = s.conn.Close()
			s.conn = nil
		default:
			return fmt.Errorf("gesture client already connected")
		}
	}
	s.conn = conn
	return nil
}

// rejectConn sends a policy violation close and closes the socket.
func (s *Server) rejectConn(conn *websocket.Conn, reason string) {
	message := websocket.FormatCloseMessage(websocket.ClosePolicyViolation, reason)
	_ = conn.WriteControl(websocket.CloseMessage, message, time.Now().Add(1*time.Second))
	_ = conn.Close()
}

// cleanupConn clears the active connection when closed.
func (s *Server) cleanupConn(conn *websocket.Conn) {
	s.mu.Lock()
	if s.conn == conn {
		s.conn = nil
	}
	s.mu.Unlock()
	_ = conn.Close()
}

// sendTo writes a message to the connection if it is still the active one.
func (s *Server) sendTo(conn *websocket.Conn, msg wire.Message) error {
	s.mu.Lock()
	active := s.conn
	s.mu.Unlock()
	if active != conn {
		return fmt.Errorf("connection not active")
	}
	data, err := wire.Encode(msg)
	if err != nil {
		return err
	}
	s.writeMu.Lock()
	defer s.writeMu.Unlock()
	return conn.WriteMessage(websocket.TextMessage, data)
}
