package simulation

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"gopkg.in/yaml.v2"
)

// Backends a Config can select
const (
	BackendEbiten = "ebiten"
	BackendTerm   = "term"
)

// Config is the YAML profile of a run.
type Config struct {
	Width     int       `yaml:"Width"`
	Height    int       `yaml:"Height"`
	TPS       int       `yaml:"TPS"`
	Particles int       `yaml:"Particles"`
	Backend   string    `yaml:"Backend"`
	Seed      int64     `yaml:"Seed"`
	Audio     bool      `yaml:"Audio"`
	Gust      bool      `yaml:"Gust"`
	Log       LogConfig `yaml:"Log"`
}

type LogConfig struct {
	LogLevel      string `yaml:"LogLevel"`
	LogFile       string `yaml:"LogFile"`
	LogShowCaller bool   `yaml:"LogShowCaller"`
}

// DefaultConfig returns the settings used when no profile exists.
func DefaultConfig() Config {
	return Config{
		Width:     1024,
		Height:    768,
		TPS:       60,
		Particles: DefaultPopulation,
		Backend:   BackendEbiten,
		Audio:     true,
		Log: LogConfig{
			LogLevel: "info",
		},
	}
}

// LoadConfig reads a YAML profile over the defaults. A missing file is not
// an error and yields DefaultConfig.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}
	source, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return cfg, fmt.Errorf("read config %v: %w", path, err)
	}
	return ParseConfig(source)
}

// ParseConfig decodes a YAML profile over the defaults and normalizes it.
func ParseConfig(source []byte) (Config, error) {
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(source, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config: %w", err)
	}
	if err := cfg.Normalize(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Normalize replaces out of range values with defaults and rejects unknown
// backends.
func (c *Config) Normalize() error {
	def := DefaultConfig()
	if c.Width <= 0 {
		c.Width = def.Width
	}
	if c.Height <= 0 {
		c.Height = def.Height
	}
	if c.TPS <= 0 {
		c.TPS = def.TPS
	}
	if c.Particles < 0 {
		c.Particles = 0
	}
	switch c.Backend {
	case "":
		c.Backend = def.Backend
	case BackendEbiten, BackendTerm:
	default:
		return fmt.Errorf("invalid backend %q", c.Backend)
	}
	if c.Log.LogLevel == "" {
		c.Log.LogLevel = def.Log.LogLevel
	}
	return nil
}
