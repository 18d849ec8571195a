// Package config loads the server configuration from YAML with validated
// defaults.
package config

import (
	"fmt"
	"os"
	"time"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// Config holds the server configuration. Timeouts are expressed in seconds
// so the YAML stays plain integers.
type Config struct {
	ListenAddr         string  `yaml:"listen_addr" validate:"required"`
	ReadTimeoutSec     int     `yaml:"read_timeout_sec" validate:"gte=1,lte=300"`
	WriteTimeoutSec    int     `yaml:"write_timeout_sec" validate:"gte=1,lte=600"`
	IdleTimeoutSec     int     `yaml:"idle_timeout_sec" validate:"gte=1,lte=3600"`
	MaxEdges           int     `yaml:"max_edges" validate:"gte=0"`
	DefaultFraction    float64 `yaml:"default_fraction" validate:"gt=0,lte=1"`
	BatchWorkers       int     `yaml:"batch_workers" validate:"gte=1,lte=256"`
	LogLevel           string  `yaml:"log_level" validate:"oneof=debug info warn error"`
	MaxRequestBodySize int64   `yaml:"max_request_body_size" validate:"gte=1024"`
}

// Default returns the configuration used when no file is supplied.
func Default() Config {
	return Config{
		ListenAddr:         ":8080",
		ReadTimeoutSec:     15,
		WriteTimeoutSec:    30,
		IdleTimeoutSec:     60,
		MaxEdges:           0,
		DefaultFraction:    1.0,
		BatchWorkers:       4,
		LogLevel:           "info",
		MaxRequestBodySize: 64 << 20,
	}
}

// Load reads a YAML config file over the defaults and validates the result.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Validate checks the configuration against its struct tags.
func (c Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}

// ReadTimeout returns the read timeout as a duration.
func (c Config) ReadTimeout() time.Duration {
	return time.Duration(c.ReadTimeoutSec) * time.Second
}

// WriteTimeout returns the write timeout as a duration.
func (c Config) WriteTimeout() time.Duration {
	return time.Duration(c.WriteTimeoutSec) * time.Second
}

// IdleTimeout returns the idle timeout as a duration.
func (c Config) IdleTimeout() time.Duration {
	return time.Duration(c.IdleTimeoutSec) * time.Second
}
