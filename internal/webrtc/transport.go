// Package webrtc provides the WebRTC data channel transport for gestures.
package webrtc

import (
	"fmt"
	"log"
	"sync"

	"github.com/frudas24/deskzoom/internal/relay"
	"github.com/frudas24/deskzoom/internal/wire"
	"github.com/pion/interceptor"
	"github.com/pion/webrtc/v3"
)

// ChannelLabel is the data channel clients open for gesture traffic.
const ChannelLabel = "gestures"

// Transport creates peer connections whose gesture data channel is served by
// a relay peer.
type Transport struct {
	mu    sync.Mutex
	api   *webrtc.API
	opts  relay.Options
	peer  *webrtc.PeerConnection
	relay *relay.Peer
}

// NewTransport initializes a WebRTC API with default codecs/interceptors.
func NewTransport(opts relay.Options) (*Transport, error) {
	media := &webrtc.MediaEngine{}
	if err := media.RegisterDefaultCodecs(); err != nil {
		return nil, fmt.Errorf("register codecs: %w", err)
	}

	interceptors := &interceptor.Registry{}
	if err := webrtc.RegisterDefaultInterceptors(media, interceptors); err != nil {
		return nil, fmt.Errorf("register interceptors: %w", err)
	}

	api := webrtc.NewAPI(
		webrtc.WithMediaEngine(media),
		webrtc.WithInterceptorRegistry(interceptors),
	)

	return &Transport{api: api, opts: opts}, nil
}

// NewPeer creates a peer connection, replacing any previous one, and serves
// the gesture data channel once the client opens it.
func (t *Transport) NewPeer() (*webrtc.PeerConnection, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.closeLocked()

	peer, err := t.api.NewPeerConnection(webrtc.Configuration{})
	if err != nil {
		return nil, err
	}
	peer.OnDataChannel(func(dc *webrtc.DataChannel) {
		if dc.Label() != ChannelLabel {
			if debugDCEnabled() {
				log.Printf("webrtc: ignoring data channel %q", dc.Label())
			}
			return
		}
		t.serveChannel(peer, dc)
	})

	t.peer = peer
	return peer, nil
}

// ClosePeer closes the current peer connection.
func (t *Transport) ClosePeer() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.closeLocked()
}

// closeLocked closes the current peer connection and its relay peer.
func (t *Transport) closeLocked() {
	if t.relay != nil {
		t.relay.Close()
		t.relay = nil
	}
	if t.peer != nil {
		_ = t.peer.Close()
		t.peer = nil
	}
}

// serveChannel binds a relay peer to dc.
func (t *Transport) serveChannel(peer *webrtc.PeerConnection, dc *webrtc.DataChannel) {
	rp := relay.NewPeer(t.opts, func(msg wire.Message) error {
		data, err := wire.Encode(msg)
		if err != nil {
			return err
		}
		return dc.SendText(string(data))
	})

	t.mu.Lock()
	if t.peer != peer {
		t.mu.Unlock()
		rp.Close()
		return
	}
	if t.relay != nil {
		t.relay.Close()
	}
	t.relay = rp
	t.mu.Unlock()

	dc.OnOpen(func() {
		log.Printf("webrtc: data channel open peer=%s", rp.ID())
	})
	dc.OnClose(func() {
		log.Printf("webrtc: data channel closed peer=%s", rp.ID())
		rp.Close()
	})
	dc.OnMessage(func(raw webrtc.DataChannelMessage) {
		if !raw.IsString {
			return
		}
		msg, err := wire.Decode(raw.Data)
		if err == nil {
			err = rp.Handle(msg)
		}
		if err != nil {
			if debugDCEnabled() {
				log.Printf("webrtc: peer=%s: %v", rp.ID(), err)
			}
			if data, encErr := wire.Encode(wire.ErrorMessage(err)); encErr == nil {
				_ = dc.SendText(string(data))
			}
		}
	})
}
