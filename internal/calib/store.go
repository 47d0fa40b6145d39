package calib

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"sync"
)

// Store persists calibration data at a fixed path.
type Store struct {
	mu   sync.Mutex
	path string
}

// NewStore returns a store backed by path.
func NewStore(path string) *Store {
	return &Store{path: path}
}

// Path returns the backing file path.
func (s *Store) Path() string {
	return s.path
}

// Load reads calibration data from disk. Missing files return empty data.
func (s *Store) Load() (Calib, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var c Calib
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return c, nil
		}
		return c, err
	}
	if err := json.Unmarshal(data, &c); err != nil {
		return Calib{}, err
	}
	c.Target = Normalize(c.Target)
	return c, nil
}

// Save writes calibration data to disk, creating parent directories as needed.
func (s *Store) Save(c Calib) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return err
	}
	c.Target = Normalize(c.Target)
	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(s.path, data, 0o600)
}
