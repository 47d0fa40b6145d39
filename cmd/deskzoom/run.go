package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"time"

	"github.com/frudas24/deskzoom/internal/app"
	"github.com/frudas24/deskzoom/internal/config"
	"github.com/frudas24/deskzoom/internal/relay"
	"github.com/frudas24/deskzoom/internal/session"
	"github.com/frudas24/deskzoom/internal/webrtc"
	"github.com/frudas24/deskzoom/internal/wininput"
)

// run wires the application and blocks until shutdown.
func run(debug bool) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	relay.SetDebugLogging(debug)
	webrtc.SetDebugLogging(debug)
	if debug {
		log.Printf("debug: enabled")
	}
	logStartup(cfg)

	sess := session.NewOpen()
	if cfg.PasswordMode {
		sess = session.New(cfg.UIPassword)
	}

	var injector wininput.Injector
	if cfg.ReplayEnabled {
		injector, err = wininput.NewInjector()
		if err != nil {
			return fmt.Errorf("replay: %w", err)
		}
	}

	appInstance, err := app.New(cfg, sess, injector, relay.ViewerReplace)
	if err != nil {
		return err
	}
	if err := appInstance.Start(); err != nil {
		return err
	}
	defer func() {
		if err := appInstance.Stop(); err != nil {
			log.Printf("shutdown: %v", err)
		}
	}()

	mux := http.NewServeMux()
	appInstance.RegisterRoutes(mux, "")
	server := &http.Server{
		Addr:    cfg.ListenAddr,
		Handler: mux,
	}

	errCh := make(chan error, 1)
	go func() {
		if err := server.ListenAndServe(); err != nil {
			errCh <- err
		}
	}()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	select {
	case <-ctx.Done():
	case err := <-errCh:
		if !errors.Is(err, http.ErrServerClosed) {
			return err
		}
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return server.Shutdown(shutdownCtx)
}

// logFatal prints and exits for startup failures.
func logFatal(err error) {
	log.Printf("fatal: %v", err)
	os.Exit(1)
}

// logStartup prints startup checks and connection info.
func logStartup(cfg config.Config) {
	log.Printf("DeskZoom starting")
	logEnvStatus(cfg)
	logConfigFile(cfg.ConfigPath)
	log.Printf("wheel: idle %s, max delta %.0f", cfg.WheelIdle(), cfg.WheelMaxDelta)
	log.Printf("webrtc: %s", enabledText(cfg.RTCEnabled))
	if cfg.ReplayEnabled {
		log.Printf("replay: enabled (monitor %d, zoom step %.2f, pan step %.0f)", cfg.ReplayMonitor, cfg.ReplayZoomStep, cfg.ReplayPanStep)
	} else {
		log.Printf("replay: disabled")
	}
	logListenStatus(cfg.ListenAddr)
}

// logEnvStatus reports whether a .env file was found and required values are set.
func logEnvStatus(cfg config.Config) {
	envPath := filepath.Join(cfg.DataDir, ".env")
	if fileExists(envPath) {
		log.Printf("env check: ok (%s)", envPath)
	} else {
		log.Printf("env check: missing (%s)", envPath)
	}
	if cfg.PasswordMode {
		if strings.TrimSpace(cfg.UIPassword) == "" {
			log.Printf("env UI_PASSWORD: missing")
		} else {
			log.Printf("env UI_PASSWORD: set")
		}
	} else {
		log.Printf("env PASSWORD_MODE: disabled (dev mode)")
	}
}

// logConfigFile reports whether the optional YAML config was loaded.
func logConfigFile(path string) {
	if fileExists(path) {
		log.Printf("config file: ok (%s)", path)
		return
	}
	log.Printf("config file: none (%s)", path)
}

// logListenStatus reports the listen address and a local URL helper.
func logListenStatus(addr string) {
	log.Printf("listen addr: %s", addr)
	host, port, err := net.SplitHostPort(addr)
	if err != nil {
		return
	}
	if host == "" || host == "0.0.0.0" || host == "::" {
		host = "localhost"
	}
	log.Printf("local url: http://%s", net.JoinHostPort(host, port))
}

// enabledText renders a feature flag for logs.
func enabledText(on bool) string {
	if on {
		return "enabled"
	}
	return "disabled"
}

// fileExists reports whether a path exists and is a file.
func fileExists(path string) bool {
	if path == "" {
		return false
	}
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return !info.IsDir()
}
