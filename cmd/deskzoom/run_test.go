package main

import (
	"os"
	"path/filepath"
	"testing"
)

// TestFileExists verifies files, directories and empty paths.
func TestFileExists(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "deskzoom.yaml")
	if err := os.WriteFile(path, []byte("listen_addr: :8080\n"), 0o600); err != nil {
		t.Fatalf("write: %v", err)
	}
	if !fileExists(path) {
		t.Fatalf("expected file to exist")
	}
	if fileExists(dir) {
		t.Fatalf("expected directory to be rejected")
	}
	if fileExists("") {
		t.Fatalf("expected empty path to be rejected")
	}
}

// TestEnabledText verifies flag rendering.
func TestEnabledText(t *testing.T) {
	if enabledText(true) != "enabled" || enabledText(false) != "disabled" {
		t.Fatalf("unexpected flag text")
	}
}
