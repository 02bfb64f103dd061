package config

import (
	"fmt"
	"log/slog"

	"github.com/kelseyhightower/envconfig"
)

// Config holds the settings of the xychart demo. Every field can be set
// with an XYCHART_ prefixed environment variable.
type Config struct {
	Width     float64 `envconfig:"WIDTH" default:"1000"`
	Height    float64 `envconfig:"HEIGHT" default:"700"`
	MaxPoints int     `envconfig:"MAX_POINTS" default:"300"`
	Steps     int     `envconfig:"STEPS" default:"400"`
	Ticks     int     `envconfig:"TICKS" default:"10"` // 0 selects gonum's default ticker
	Dark      bool    `envconfig:"DARK" default:"false"`
	LogLevel  string  `envconfig:"LOG_LEVEL" default:"info"`
	Output    string  `envconfig:"OUTPUT" default:"xychart.png"`
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("xychart", &cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate reports the first setting which is out of range.
func (c *Config) Validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("invalid size %gx%g", c.Width, c.Height)
	}
	if c.MaxPoints < 0 {
		return fmt.Errorf("invalid max points %d", c.MaxPoints)
	}
	if c.Steps < 0 {
		return fmt.Errorf("invalid number of steps %d", c.Steps)
	}
	if c.Ticks < 0 {
		return fmt.Errorf("invalid number of tick divisions %d", c.Ticks)
	}
	if _, err := c.Level(); err != nil {
		return err
	}
	return nil
}

// Level parses LogLevel, e.g. "debug" or "WARN".
func (c *Config) Level() (slog.Level, error) {
	var l slog.Level
	if err := l.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return l, fmt.Errorf("log level: %w", err)
	}
	return l, nil
}
