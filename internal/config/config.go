// Package config loads configuration for DeskZoom.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

const (
	defaultListenAddr      = "0.0.0.0:8787"
	defaultDataDir         = "./data"
	defaultConfigFile      = "deskzoom.yaml"
	defaultCalibFile       = "calib.json"
	defaultWheelIdleMs     = 200
	defaultWheelMaxDelta   = 24
	defaultRTCEnabled      = true
	defaultReplayEnabled   = false
	defaultReplayMonitor   = 1
	defaultReplayZoomStep  = 1.1
	defaultReplayPanStep   = 40
	defaultReplayMinIntMs  = 16
	defaultPasswordEnabled = true
)

// Config holds runtime configuration values.
type Config struct {
	ListenAddr   string `yaml:"listen_addr"`
	UIPassword   string `yaml:"-"`
	PasswordMode bool   `yaml:"password_mode"`
	DataDir      string `yaml:"-"`
	ConfigPath   string `yaml:"-"`
	CalibPath    string `yaml:"calib_path"`

	WheelIdleMs   int     `yaml:"wheel_idle_ms"`
	WheelMaxDelta float64 `yaml:"wheel_max_delta"`

	RTCEnabled bool `yaml:"rtc_enabled"`

	ReplayEnabled       bool    `yaml:"replay_enabled"`
	ReplayMonitor       int     `yaml:"replay_monitor"`
	ReplayZoomStep      float64 `yaml:"replay_zoom_step"`
	ReplayPanStep       float64 `yaml:"replay_pan_step"`
	ReplayMinIntervalMs int     `yaml:"replay_min_interval_ms"`
}

// WheelIdle returns the wheel idle timeout.
func (c Config) WheelIdle() time.Duration {
	return time.Duration(c.WheelIdleMs) * time.Millisecond
}

// ReplayMinInterval returns the replay throttle interval.
func (c Config) ReplayMinInterval() time.Duration {
	return time.Duration(c.ReplayMinIntervalMs) * time.Millisecond
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		ListenAddr:          defaultListenAddr,
		PasswordMode:        defaultPasswordEnabled,
		DataDir:             defaultDataDir,
		ConfigPath:          filepath.Join(defaultDataDir, defaultConfigFile),
		CalibPath:           filepath.Join(defaultDataDir, defaultCalibFile),
		WheelIdleMs:         defaultWheelIdleMs,
		WheelMaxDelta:       defaultWheelMaxDelta,
		RTCEnabled:          defaultRTCEnabled,
		ReplayEnabled:       defaultReplayEnabled,
		ReplayMonitor:       defaultReplayMonitor,
		ReplayZoomStep:      defaultReplayZoomStep,
		ReplayPanStep:       defaultReplayPanStep,
		ReplayMinIntervalMs: defaultReplayMinIntMs,
	}
}

// Load reads configuration from defaults, the YAML file, ./data/.env and
// environment variables, in increasing priority.
func Load() (Config, error) {
	cfg := Default()
	cfg.DataDir = envString("DATA_DIR", cfg.DataDir)

	if err := loadEnvFile(filepath.Join(cfg.DataDir, ".env")); err != nil {
		return Config{}, err
	}
	cfg.DataDir = envString("DATA_DIR", cfg.DataDir)
	cfg.ConfigPath = envString("CONFIG_PATH", filepath.Join(cfg.DataDir, defaultConfigFile))
	cfg.CalibPath = filepath.Join(cfg.DataDir, defaultCalibFile)

	if err := loadYAMLFile(cfg.ConfigPath, &cfg); err != nil {
		return Config{}, err
	}

	if err := applyEnv(&cfg); err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// applyEnv overrides cfg with environment variables.
func applyEnv(cfg *Config) error {
	cfg.ListenAddr = envString("LISTEN_ADDR", cfg.ListenAddr)
	cfg.CalibPath = envString("CALIB_PATH", cfg.CalibPath)
	cfg.UIPassword = strings.TrimSpace(os.Getenv("UI_PASSWORD"))
	cfg.PasswordMode = envBool("PASSWORD_MODE", cfg.PasswordMode)
	cfg.RTCEnabled = envBool("RTC_ENABLED", cfg.RTCEnabled)
	cfg.ReplayEnabled = envBool("REPLAY_ENABLED", cfg.ReplayEnabled)

	var err error
	if cfg.WheelIdleMs, err = envInt("WHEEL_IDLE_MS", cfg.WheelIdleMs); err != nil {
		return err
	}
	if cfg.WheelMaxDelta, err = envFloat("WHEEL_MAX_DELTA", cfg.WheelMaxDelta); err != nil {
		return err
	}
	if cfg.ReplayMonitor, err = envInt("REPLAY_MONITOR", cfg.ReplayMonitor); err != nil {
		return err
	}
	if cfg.ReplayZoomStep, err = envFloat("REPLAY_ZOOM_STEP", cfg.ReplayZoomStep); err != nil {
		return err
	}
	if cfg.ReplayPanStep, err = envFloat("REPLAY_PAN_STEP", cfg.ReplayPanStep); err != nil {
		return err
	}
	if cfg.ReplayMinIntervalMs, err = envInt("REPLAY_MIN_INTERVAL_MS", cfg.ReplayMinIntervalMs); err != nil {
		return err
	}
	return nil
}

// Validate reports the first invalid setting.
func (c Config) Validate() error {
	if c.WheelIdleMs <= 0 {
		return fmt.Errorf("WHEEL_IDLE_MS must be > 0")
	}
	if c.WheelMaxDelta <= 0 {
		return fmt.Errorf("WHEEL_MAX_DELTA must be > 0")
	}
	if c.ReplayMonitor <= 0 {
		return fmt.Errorf("REPLAY_MONITOR must be >= 1")
	}
	if c.ReplayZoomStep <= 1 {
		return fmt.Errorf("REPLAY_ZOOM_STEP must be > 1")
	}
	if c.ReplayPanStep <= 0 {
		return fmt.Errorf("REPLAY_PAN_STEP must be > 0")
	}
	if c.ReplayMinIntervalMs < 0 {
		return fmt.Errorf("REPLAY_MIN_INTERVAL_MS must be >= 0")
	}
	if c.PasswordMode && c.UIPassword == "" {
		return errors.New("UI_PASSWORD is required")
	}
	return nil
}

// loadYAMLFile merges a YAML file into cfg. Missing files are ignored.
func loadYAMLFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return err
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parse %s: %w", path, err)
	}
	return nil
}

// envString returns an env override when present, otherwise a default.
func envString(key, def string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return def
}

// envInt returns an int env override when present, otherwise a default.
func envInt(key string, def int) (int, error) {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return def, nil
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%s must be an integer: %w", key, err)
	}
	return value, nil
}

// envFloat returns a float env override when present, otherwise a default.
func envFloat(key string, def float64) (float64, error) {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return def, nil
	}
	value, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, fmt.Errorf("%s must be a number: %w", key, err)
	}
	return value, nil
}

// envBool returns a bool env override when present, otherwise a default.
func envBool(key string, def bool) bool {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return def
	}
	switch strings.ToLower(raw) {
	case "1", "true", "yes", "y", "on":
		return true
	case "0", "false", "no", "n", "off":
		return false
	default:
		return def
	}
}

// loadEnvFile loads KEY=VALUE pairs from a .env file.
func loadEnvFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return err
	}

	for _, line := range strings.Split(string(data), "\n") {
		key, value, ok := parseEnvLine(line)
		if !ok {
			continue
		}
		if _, exists := os.LookupEnv(key); !exists {
			if err := os.Setenv(key, value); err != nil {
				return err
			}
		}
	}

	return nil
}

// parseEnvLine parses a single .env line into key/value.
func parseEnvLine(line string) (string, string, bool) {
	line = strings.TrimSpace(line)
	if line == "" || strings.HasPrefix(line, "#") {
		return "", "", false
	}
	if strings.HasPrefix(line, "export ") {
		line = strings.TrimSpace(strings.TrimPrefix(line, "export "))
	}
	parts := strings.SplitN(line, "=", 2)
	if len(parts) != 2 {
		return "", "", false
	}
	key := strings.TrimSpace(parts[0])
	value := strings.TrimSpace(parts[1])
	if key == "" {
		return "", "", false
	}
	value = strings.Trim(value, `"'`)
	return key, value, true
}
