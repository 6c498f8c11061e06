// Package config holds campusnav's runtime settings.
//
// Settings start from Default, are optionally overlaid by a YAML file via
// Load, and are finally overridden by command-line flags. Validate must
// pass before a Config is used.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// ErrInvalidConfig indicates a config value outside its allowed set.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Config is the full set of runtime settings.
type Config struct {
	// Algorithm is "bellman-ford" or "dijkstra".
	Algorithm string `yaml:"algorithm"`

	// NegativeCycleCheck enables the Bellman-Ford detection pass.
	NegativeCycleCheck bool `yaml:"negative_cycle_check"`

	Log    LogConfig    `yaml:"log"`
	Server ServerConfig `yaml:"server"`
}

// LogConfig selects log verbosity and encoding.
type LogConfig struct {
	Level  string `yaml:"level"`  // debug, info, warn, error
	Format string `yaml:"format"` // text, json
}

// ServerConfig configures the HTTP API.
type ServerConfig struct {
	Addr string `yaml:"addr"`

	// ShutdownTimeout bounds graceful shutdown, e.g. "5s".
	ShutdownTimeout string `yaml:"shutdown_timeout"`
}

// Default returns the settings used when no file or flag says otherwise.
func Default() Config {
	return Config{
		Algorithm:          "bellman-ford",
		NegativeCycleCheck: true,
		Log: LogConfig{
			Level:  "info",
			Format: "text",
		},
		Server: ServerConfig{
			Addr:            ":8080",
			ShutdownTimeout: "5s",
		},
	}
}

// Load reads a YAML file over Default. An empty path returns Default.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("config: read %s: %w", path, err)
	}
	if err := cfg.decode(data); err != nil {
		return cfg, fmt.Errorf("config: parse %s: %w", path, err)
	}

	return cfg, cfg.Validate()
}

// Parse decodes YAML over Default and validates the result.
func Parse(data []byte) (Config, error) {
	cfg := Default()
	if err := cfg.decode(data); err != nil {
		return cfg, fmt.Errorf("config: parse: %w", err)
	}

	return cfg, cfg.Validate()
}

func (c *Config) decode(data []byte) error {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(c); err != nil && !errors.Is(err, io.EOF) {
		return err
	}

	return nil
}

// Validate checks every enumerated field and normalises case.
func (c *Config) Validate() error {
	c.Algorithm = strings.ToLower(strings.TrimSpace(c.Algorithm))
	switch c.Algorithm {
	case "bellman-ford", "dijkstra":
	default:
		return fmt.Errorf("%w: algorithm %q", ErrInvalidConfig, c.Algorithm)
	}

	c.Log.Level = strings.ToLower(strings.TrimSpace(c.Log.Level))
	switch c.Log.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("%w: log level %q", ErrInvalidConfig, c.Log.Level)
	}

	c.Log.Format = strings.ToLower(strings.TrimSpace(c.Log.Format))
	switch c.Log.Format {
	case "text", "json":
	default:
		return fmt.Errorf("%w: log format %q", ErrInvalidConfig, c.Log.Format)
	}

	if strings.TrimSpace(c.Server.Addr) == "" {
		return fmt.Errorf("%w: empty server address", ErrInvalidConfig)
	}
	if _, err := c.ShutdownTimeout(); err != nil {
		return err
	}

	return nil
}

// Marshal encodes c as YAML.
func (c Config) Marshal() ([]byte, error) {
	return yaml.Marshal(c)
}
