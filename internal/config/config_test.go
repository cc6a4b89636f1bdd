package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Width != 800 || cfg.Height != 600 {
		t.Errorf("expected 800x600, got %dx%d", cfg.Width, cfg.Height)
	}
	if cfg.SieveDelay() != 500*time.Millisecond {
		t.Errorf("expected 500ms sieve delay, got %s", cfg.SieveDelay())
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config should validate: %v", err)
	}
}

func TestLoadOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "mathviz.yaml")
	data := []byte("width: 320\noutput:\n  format: svg\nvisuals: [ulam, sieve]\n")
	if err := os.WriteFile(path, data, 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Width != 320 || cfg.Height != DefaultHeight {
		t.Errorf("expected 320x%d, got %dx%d", DefaultHeight, cfg.Width, cfg.Height)
	}
	if cfg.Output.Format != "svg" || cfg.Output.Dir != DefaultOutputDir {
		t.Errorf("unexpected output %+v", cfg.Output)
	}
	if len(cfg.Visuals) != 2 || cfg.Visuals[1] != "sieve" {
		t.Errorf("unexpected visuals %v", cfg.Visuals)
	}
}

func TestLoadRejectsInvalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("output:\n  format: bmp\n"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); !errors.Is(err, ErrInvalid) {
		t.Errorf("expected ErrInvalid, got %v", err)
	}

	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("expected not-exist error, got %v", err)
	}
}

func TestSaveRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "saved.yaml")
	cfg := DefaultConfig()
	cfg.FPS = 30
	cfg.Theme = "light"
	if err := Save(path, cfg); err != nil {
		t.Fatal(err)
	}
	got, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if got.FPS != 30 || got.Theme != "light" {
		t.Errorf("unexpected reload %+v", got)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"negative width", func(c *Config) { c.Width = -1 }},
		{"zero fps", func(c *Config) { c.FPS = 0 }},
		{"zero sieve delay", func(c *Config) { c.SieveDelayMS = 0 }},
		{"negative workers", func(c *Config) { c.Workers = -2 }},
		{"zero gif frames", func(c *Config) { c.GIF.Frames = 0 }},
		{"unknown format", func(c *Config) { c.Output.Format = "jpeg" }},
	}

	for _, tt := range tests {
		cfg := DefaultConfig()
		tt.mutate(cfg)
		if err := cfg.Validate(); !errors.Is(err, ErrInvalid) {
			t.Errorf("%s: expected ErrInvalid, got %v", tt.name, err)
		}
	}
}

func TestGetPreset(t *testing.T) {
	p := GetPreset("hd")
	if p == nil {
		t.Fatal("expected preset, got nil")
	}
	if p.Width != 1920 || p.Height != 1080 {
		t.Errorf("expected 1920x1080, got %dx%d", p.Width, p.Height)
	}
}

func TestGetPreset_NotFound(t *testing.T) {
	if GetPreset("nonexistent") != nil {
		t.Error("expected nil for nonexistent preset")
	}
}

func TestListPresets(t *testing.T) {
	presets := ListPresets()
	want := []string{"hd", "medium", "small", "square"}
	if len(presets) != len(want) {
		t.Fatalf("expected %v, got %v", want, presets)
	}
	for i := range want {
		if presets[i] != want[i] {
			t.Errorf("expected %v, got %v", want, presets)
		}
	}
}

func TestApplyPreset(t *testing.T) {
	cfg := DefaultConfig()
	if err := cfg.ApplyPreset("square"); err != nil {
		t.Fatal(err)
	}
	if cfg.Width != 600 || cfg.Height != 600 {
		t.Errorf("expected 600x600, got %dx%d", cfg.Width, cfg.Height)
	}
	if err := cfg.ApplyPreset("poster"); !errors.Is(err, ErrInvalid) {
		t.Errorf("expected ErrInvalid, got %v", err)
	}
}
