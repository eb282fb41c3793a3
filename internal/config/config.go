// Package config loads the YAML configuration of the demonstration
// programs.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strings"
	"time"

	"github.com/thelolagemann/gosdl/pkg/log"
	"gopkg.in/yaml.v3"
)

// WindowConfig describes one window to open.
type WindowConfig struct {
	Title  string `yaml:"title"`
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
}

// Config is the demo configuration.
type Config struct {
	Windows []WindowConfig `yaml:"windows"`

	// PollHz and RenderHz are the rates of the event poll tick and the
	// render tick.
	PollHz   int `yaml:"poll_hz"`
	RenderHz int `yaml:"render_hz"`

	LogLevel string `yaml:"log_level"`

	// Relay is the listen address of the websocket event relay. Empty
	// disables it.
	Relay string `yaml:"relay"`
}

// ValidationError reports the offending key of an invalid configuration.
type ValidationError struct {
	Path string
	Err  error
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %v", e.Path, e.Err)
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}

// Default returns the configuration used when no file is given: two
// 640x480 windows, events polled at 60Hz and one frame per second.
func Default() *Config {
	return &Config{
		Windows: []WindowConfig{
			{Title: "Hello!", Width: 640, Height: 480},
			{Title: "Woah!", Width: 640, Height: 480},
		},
		PollHz:   60,
		RenderHz: 1,
		LogLevel: "info",
	}
}

// Load reads path over the defaults. A missing file yields the defaults.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && err != io.EOF {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	if len(c.Windows) == 0 {
		return &ValidationError{Path: "windows", Err: fmt.Errorf("at least one window is required")}
	}
	for i, w := range c.Windows {
		if w.Width <= 0 || w.Height <= 0 {
			return &ValidationError{Path: fmt.Sprintf("windows[%d]", i), Err: fmt.Errorf("size must be positive, got %dx%d", w.Width, w.Height)}
		}
	}
	if c.PollHz <= 0 {
		return &ValidationError{Path: "poll_hz", Err: fmt.Errorf("poll_hz must be > 0")}
	}
	if c.RenderHz <= 0 {
		return &ValidationError{Path: "render_hz", Err: fmt.Errorf("render_hz must be > 0")}
	}
	if _, err := log.ParseLevel(c.LogLevel); err != nil {
		return &ValidationError{Path: "log_level", Err: err}
	}
	if c.Relay != "" && !strings.Contains(c.Relay, ":") {
		return &ValidationError{Path: "relay", Err: fmt.Errorf("relay must be a host:port address")}
	}
	return nil
}

// PollEvery returns the period of the event poll tick.
func (c *Config) PollEvery() time.Duration {
	return time.Second / time.Duration(c.PollHz)
}

// RenderEvery returns the period of the render tick.
func (c *Config) RenderEvery() time.Duration {
	return time.Second / time.Duration(c.RenderHz)
}
