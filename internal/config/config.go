package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

const (
	DefaultWidth        = 800
	DefaultHeight       = 600
	DefaultFPS          = 60
	DefaultSieveDelayMS = 500
	DefaultOutputDir    = "out"
	DefaultFormat       = "png"
	DefaultGIFFrames    = 120
	DefaultGIFDelayCS   = 4
	DefaultTheme        = "dark"
)

var ErrInvalid = errors.New("config: invalid value")

type Config struct {
	Width        int          `yaml:"width"`
	Height       int          `yaml:"height"`
	FPS          int          `yaml:"fps"`
	SieveDelayMS int          `yaml:"sieve_delay_ms"`
	Workers      int          `yaml:"workers"`
	Visuals      []string     `yaml:"visuals,omitempty"`
	Output       OutputConfig `yaml:"output"`
	GIF          GIFConfig    `yaml:"gif"`
	Theme        string       `yaml:"theme"`
}

type OutputConfig struct {
	Dir    string `yaml:"dir"`
	Format string `yaml:"format"`
}

type GIFConfig struct {
	Frames int `yaml:"frames"`
	// DelayCS is the delay between frames in hundredths of a second.
	DelayCS int `yaml:"delay_cs"`
}

func DefaultConfig() *Config {
	return &Config{
		Width:        DefaultWidth,
		Height:       DefaultHeight,
		FPS:          DefaultFPS,
		SieveDelayMS: DefaultSieveDelayMS,
		Output: OutputConfig{
			Dir:    DefaultOutputDir,
			Format: DefaultFormat,
		},
		GIF: GIFConfig{
			Frames:  DefaultGIFFrames,
			DelayCS: DefaultGIFDelayCS,
		},
		Theme: DefaultTheme,
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("encode config: %w", err)
	}
	return os.WriteFile(path, data, 0644)
}

func (c *Config) Validate() error {
	switch {
	case c.Width < 0 || c.Height < 0:
		return fmt.Errorf("%w: size %dx%d", ErrInvalid, c.Width, c.Height)
	case c.FPS <= 0:
		return fmt.Errorf("%w: fps %d", ErrInvalid, c.FPS)
	case c.SieveDelayMS <= 0:
		return fmt.Errorf("%w: sieve_delay_ms %d", ErrInvalid, c.SieveDelayMS)
	case c.Workers < 0:
		return fmt.Errorf("%w: workers %d", ErrInvalid, c.Workers)
	case c.GIF.Frames <= 0 || c.GIF.DelayCS <= 0:
		return fmt.Errorf("%w: gif frames %d delay %d", ErrInvalid, c.GIF.Frames, c.GIF.DelayCS)
	}
	switch c.Output.Format {
	case "png", "svg":
	default:
		return fmt.Errorf("%w: output format %q", ErrInvalid, c.Output.Format)
	}
	return nil
}

func (c *Config) SieveDelay() time.Duration {
	return time.Duration(c.SieveDelayMS) * time.Millisecond
}

// ApplyPreset copies the preset's surface size onto c.
func (c *Config) ApplyPreset(name string) error {
	p := GetPreset(name)
	if p == nil {
		return fmt.Errorf("%w: preset %q", ErrInvalid, name)
	}
	c.Width, c.Height = p.Width, p.Height
	return nil
}
