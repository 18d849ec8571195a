package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestDefaultIsValid(t *testing.T) {
	cfg := Default()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Default config failed validation: %v", err)
	}
	if cfg.ListenAddr != ":8080" {
		t.Errorf("Expected default listen addr :8080, got %s", cfg.ListenAddr)
	}
	if cfg.DefaultFraction != 1.0 {
		t.Errorf("Expected default fraction 1.0, got %v", cfg.DefaultFraction)
	}
}

func writeConfigFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("Failed to write config file: %v", err)
	}
	return path
}

func TestLoadOverridesDefaults(t *testing.T) {
	path := writeConfigFile(t, `
listen_addr: ":9090"
read_timeout_sec: 5
default_fraction: 0.5
batch_workers: 8
log_level: debug
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.ListenAddr != ":9090" {
		t.Errorf("Expected :9090, got %s", cfg.ListenAddr)
	}
	if cfg.ReadTimeout() != 5*time.Second {
		t.Errorf("Expected 5s read timeout, got %v", cfg.ReadTimeout())
	}
	if cfg.DefaultFraction != 0.5 {
		t.Errorf("Expected fraction 0.5, got %v", cfg.DefaultFraction)
	}
	// Untouched fields keep their defaults
	if cfg.WriteTimeoutSec != Default().WriteTimeoutSec {
		t.Errorf("Expected default write timeout, got %d", cfg.WriteTimeoutSec)
	}
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"fraction above 1", "default_fraction: 1.5\n"},
		{"zero fraction", "default_fraction: 0\n"},
		{"bad log level", "log_level: loud\n"},
		{"zero read timeout", "read_timeout_sec: 0\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeConfigFile(t, tt.content)
			if _, err := Load(path); err == nil {
				t.Error("Expected validation error")
			}
		})
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load("/nonexistent/config.yaml"); err == nil {
		t.Error("Expected error for missing config file")
	}
}

func TestLoadMalformedYAML(t *testing.T) {
	path := writeConfigFile(t, "listen_addr: [broken\n")
	if _, err := Load(path); err == nil {
		t.Error("Expected error for malformed YAML")
	}
}
