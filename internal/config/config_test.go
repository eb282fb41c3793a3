package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func writeConfig(t *testing.T, data string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(data), 0644); err != nil {
		t.Fatalf("write: %v", err)
	}
	return path
}

func TestDefault_Valid(t *testing.T) {
	cfg := Default()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("expected defaults to validate, got %v", err)
	}
	if len(cfg.Windows) != 2 {
		t.Errorf("expected 2 windows, got %d", len(cfg.Windows))
	}
	if cfg.PollEvery() != time.Second/60 || cfg.RenderEvery() != time.Second {
		t.Errorf("expected 60Hz polling and 1Hz rendering, got %v and %v", cfg.PollEvery(), cfg.RenderEvery())
	}
}

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.PollHz != 60 {
		t.Errorf("expected default poll_hz 60, got %d", cfg.PollHz)
	}

	cfg, err = Load("")
	if err != nil || cfg.RenderHz != 1 {
		t.Errorf("expected defaults for an empty path, got %+v, %v", cfg, err)
	}
}

func TestLoad_EmptyFileUsesDefaults(t *testing.T) {
	cfg, err := Load(writeConfig(t, "# empty\n"))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.LogLevel != "info" {
		t.Errorf("expected log_level info, got %q", cfg.LogLevel)
	}
}

func TestLoad_Overrides(t *testing.T) {
	path := writeConfig(t, strings.Join([]string{
		"windows:",
		"  - title: canvas",
		"    width: 320",
		"    height: 200",
		"render_hz: 30",
		"log_level: debug",
		"relay: \"127.0.0.1:8090\"",
		"",
	}, "\n"))

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(cfg.Windows) != 1 || cfg.Windows[0] != (WindowConfig{Title: "canvas", Width: 320, Height: 200}) {
		t.Errorf("expected one 320x200 canvas window, got %+v", cfg.Windows)
	}
	if cfg.RenderHz != 30 || cfg.PollHz != 60 {
		t.Errorf("expected render_hz 30 and default poll_hz 60, got %d and %d", cfg.RenderHz, cfg.PollHz)
	}
	if cfg.LogLevel != "debug" || cfg.Relay != "127.0.0.1:8090" {
		t.Errorf("unexpected log level %q or relay %q", cfg.LogLevel, cfg.Relay)
	}
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name string
		data string
		path string
	}{
		{"zero width", "windows:\n  - {title: a, width: 0, height: 10}\n", "windows[0]"},
		{"no windows", "windows: []\n", "windows"},
		{"poll rate", "poll_hz: 0\n", "poll_hz"},
		{"render rate", "render_hz: -1\n", "render_hz"},
		{"log level", "log_level: loud\n", "log_level"},
		{"relay", "relay: nowhere\n", "relay"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tt.data))
			var verr *ValidationError
			if !errors.As(err, &verr) {
				t.Fatalf("expected a validation error, got %v", err)
			}
			if verr.Path != tt.path {
				t.Errorf("expected path %q, got %q", tt.path, verr.Path)
			}
		})
	}
}

func TestLoad_UnknownKey(t *testing.T) {
	if _, err := Load(writeConfig(t, "frame_rate: 60\n")); err == nil {
		t.Error("expected unknown keys to be rejected")
	}
}
