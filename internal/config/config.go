// Package config holds the optional YAML configuration for the knightstour
// CLI. Flags override config values; config values override defaults.
package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/rybkr/knightstour/internal/board"
)

// Config holds all knightstour configuration.
type Config struct {
	Board  BoardConfig  `yaml:"board"`
	Solver SolverConfig `yaml:"solver"`
	Sweep  SweepConfig  `yaml:"sweep"`
	Output OutputConfig `yaml:"output"`
}

// BoardConfig configures grid construction.
type BoardConfig struct {
	// Size is the full grid side length, blocked margin included.
	Size int `yaml:"size"`
}

// SolverConfig configures the tour search.
type SolverConfig struct {
	Seed    int64  `yaml:"seed"`
	Timeout string `yaml:"timeout"` // Go duration string, e.g. "10s"
}

// SweepConfig configures the parallel start-cell sweep.
type SweepConfig struct {
	Workers int `yaml:"workers"`
}

// OutputConfig configures result rendering.
type OutputConfig struct {
	Pretty bool `yaml:"pretty"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Board:  BoardConfig{Size: board.DefaultSize},
		Solver: SolverConfig{Timeout: "10s"},
	}
}

// Load reads a YAML config file on top of the defaults.
// An empty path returns the defaults unchanged.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks field ranges without constructing anything.
func (c *Config) Validate() error {
	if c.Board.Size-2*board.Margin < 1 {
		return fmt.Errorf("%w: board.size %d", board.ErrBoardTooSmall, c.Board.Size)
	}
	if c.Sweep.Workers < 0 {
		return fmt.Errorf("sweep.workers must be >= 0, got %d", c.Sweep.Workers)
	}
	if _, err := c.SolverTimeout(); err != nil {
		return err
	}
	return nil
}

// SolverTimeout parses the solver timeout. Empty means no limit.
func (c *Config) SolverTimeout() (time.Duration, error) {
	if c.Solver.Timeout == "" {
		return 0, nil
	}
	d, err := time.ParseDuration(c.Solver.Timeout)
	if err != nil {
		return 0, fmt.Errorf("solver.timeout: %w", err)
	}
	if d < 0 {
		return 0, fmt.Errorf("solver.timeout must be >= 0, got %s", d)
	}
	return d, nil
}
