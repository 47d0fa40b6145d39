// Package app wires HTTP, gesture transports and replay together.
package app

import (
	"errors"
	"log"
	"sync"

	"github.com/frudas24/deskzoom/internal/calib"
	"github.com/frudas24/deskzoom/internal/config"
	"github.com/frudas24/deskzoom/internal/monitor"
	"github.com/frudas24/deskzoom/internal/relay"
	"github.com/frudas24/deskzoom/internal/replay"
	"github.com/frudas24/deskzoom/internal/session"
	"github.com/frudas24/deskzoom/internal/signaling"
	"github.com/frudas24/deskzoom/internal/webrtc"
	"github.com/frudas24/deskzoom/internal/wininput"
)

// MonitorProvider returns the current list of monitors.
type MonitorProvider func() ([]monitor.Monitor, error)

// App coordinates the HTTP API, gesture transports and host replay.
type App struct {
	mu           sync.Mutex
	cfg          config.Config
	session      *session.Session
	calib        *calib.Store
	player       *replay.Player
	listMonitors MonitorProvider
	monitors     []monitor.Monitor
	relay        *relay.Server
	transport    *webrtc.Transport
	signaling    *signaling.Server
}

// New creates a new application with its dependencies wired. injector may be
// nil when replay is disabled.
func New(cfg config.Config, sess *session.Session, injector wininput.Injector, policy relay.ViewerPolicy) (*App, error) {
	if sess == nil {
		return nil, errors.New("session is required")
	}
	if cfg.ReplayEnabled && injector == nil {
		return nil, errors.New("injector is required when replay is enabled")
	}

	app := &App{
		cfg:          cfg,
		session:      sess,
		calib:        calib.NewStore(cfg.CalibPath),
		listMonitors: monitor.ListMonitors,
	}

	opts := relay.Options{
		Session:       sess,
		WheelIdle:     cfg.WheelIdle(),
		MaxWheelDelta: cfg.WheelMaxDelta,
		OnTarget:      app.SetTarget,
	}
	if cfg.ReplayEnabled {
		app.player = replay.NewPlayer(injector, replay.Options{
			ZoomStep:    cfg.ReplayZoomStep,
			PanStep:     cfg.ReplayPanStep,
			MinInterval: cfg.ReplayMinInterval(),
		}, sess.InputEnabled)
		opts.Sinks = append(opts.Sinks, app.player)
	}

	app.relay = relay.NewServer(opts, policy, sess.IsAuthenticated)
	if cfg.RTCEnabled {
		transport, err := webrtc.NewTransport(opts)
		if err != nil {
			return nil, err
		}
		app.transport = transport
		app.signaling = signaling.NewServer(transport, policy, sess.IsAuthenticated)
	}

	return app, nil
}

// SetMonitorProvider overrides how monitors are enumerated.
func (a *App) SetMonitorProvider(fn MonitorProvider) {
	if fn != nil {
		a.listMonitors = fn
	}
}

// Start loads calibration and, with replay enabled, the monitor layout.
func (a *App) Start() error {
	c, err := a.calib.Load()
	if err != nil {
		return err
	}
	if c.MonitorIndex <= 0 {
		c.MonitorIndex = a.cfg.ReplayMonitor
	}
	a.session.SetCalib(c)

	if a.player == nil {
		return nil
	}
	monitors, err := a.listMonitors()
	if err != nil {
		log.Printf("replay: monitors unavailable: %v", err)
	}
	a.mu.Lock()
	a.monitors = monitors
	a.mu.Unlock()
	a.applyBounds()
	return nil
}

// Stop closes the WebRTC peer, if any.
func (a *App) Stop() error {
	if a.transport != nil {
		a.transport.ClosePeer()
	}
	return nil
}

// SetTarget stores a new replay target rectangle and applies it.
func (a *App) SetTarget(r calib.Rect) error {
	c := a.session.GetCalib()
	c.Target = calib.Normalize(r)
	if c.MonitorIndex <= 0 {
		c.MonitorIndex = a.cfg.ReplayMonitor
	}
	a.session.SetCalib(c)
	if err := a.calib.Save(c); err != nil {
		return err
	}
	a.applyBounds()
	return nil
}

// applyBounds resolves the replay target onto the selected monitor.
func (a *App) applyBounds() {
	if a.player == nil {
		return
	}
	c := a.session.GetCalib()
	a.mu.Lock()
	m, ok := monitor.Select(a.monitors, c.MonitorIndex)
	a.mu.Unlock()
	if !ok {
		return
	}
	bounds := calib.Resolve(c.Target, m.Bounds())
	a.player.SetBounds(bounds)
	log.Printf("replay: monitor %d target %dx%d at (%d,%d)", m.Index, bounds.W, bounds.H, bounds.X, bounds.Y)
}

// ListMonitors returns the cached monitor list.
func (a *App) ListMonitors() ([]monitor.Monitor, error) {
	a.mu.Lock()
	defer a.mu.Unlock()
	out := make([]monitor.Monitor, len(a.monitors))
	copy(out, a.monitors)
	return out, nil
}

// Relay returns the gesture websocket handler.
func (a *App) Relay() *relay.Server {
	return a.relay
}

// Signaling returns the signaling websocket handler, or nil when WebRTC is disabled.
func (a *App) Signaling() *signaling.Server {
	return a.signaling
}
