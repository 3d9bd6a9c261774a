// Package config provides configuration loading, validation and access for
// the simulation.
package config

import (
	_ "embed"
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

//go:embed defaults.yaml
var defaultsYAML []byte

// ErrInvalid is wrapped by every configuration validation failure.
var ErrInvalid = errors.New("invalid configuration")

// Config holds all simulation configuration parameters.
type Config struct {
	Simulation SimulationConfig `yaml:"simulation"`
	Grid       GridConfig       `yaml:"grid"`
	Grazers    GrazersConfig    `yaml:"grazers"`
	Telemetry  TelemetryConfig  `yaml:"telemetry"`
}

// SimulationConfig holds run-level parameters.
type SimulationConfig struct {
	RandomSeed int64 `yaml:"random_seed"`
	Iterations int   `yaml:"iterations"` // tick budget
}

// GridConfig holds vegetation grid parameters.
type GridConfig struct {
	Nrows int `yaml:"nrows"`
	Ncols int `yaml:"ncols"`

	// Ceiling hint for initial biomass, carried for parameter-file
	// compatibility; the initial draw is always in [0,9).
	InitialMaxVegetation int `yaml:"initial_max_vegetation"`
}

// GrazersConfig holds grazer population parameters.
type GrazersConfig struct {
	InitialCount int `yaml:"initial_count"`
	MinSize      int `yaml:"min_size"`
	MaxSize      int `yaml:"max_size"`
}

// TelemetryConfig holds telemetry parameters.
type TelemetryConfig struct {
	StatsWindow int `yaml:"stats_window"` // ticks per stats window, 0 disables
}

// Parameter constraints, matching the reference model's limits.
const (
	minIterations           = 1
	maxIterations           = 10000
	minDim                  = 1
	maxDim                  = 1000
	minInitialMaxVegetation = 2
	maxInitialMaxVegetation = 200000
	minInitialGrazers       = 1
	maxInitialGrazers       = 100000
	minMinSize              = 2
	maxMinSize              = 10
	minMaxSize              = 4
	maxMaxSize              = 100
)

// Validate checks every parameter against its constraints. It reports the
// first violation wrapped around ErrInvalid.
func (c *Config) Validate() error {
	checks := []struct {
		name     string
		value    int
		min, max int
	}{
		{"simulation.iterations", c.Simulation.Iterations, minIterations, maxIterations},
		{"grid.nrows", c.Grid.Nrows, minDim, maxDim},
		{"grid.ncols", c.Grid.Ncols, minDim, maxDim},
		{"grid.initial_max_vegetation", c.Grid.InitialMaxVegetation, minInitialMaxVegetation, maxInitialMaxVegetation},
		{"grazers.initial_count", c.Grazers.InitialCount, minInitialGrazers, maxInitialGrazers},
		{"grazers.min_size", c.Grazers.MinSize, minMinSize, maxMinSize},
		{"grazers.max_size", c.Grazers.MaxSize, minMaxSize, maxMaxSize},
	}
	for _, ck := range checks {
		if ck.value < ck.min || ck.value > ck.max {
			return fmt.Errorf("%w: %s = %d, want [%d, %d]", ErrInvalid, ck.name, ck.value, ck.min, ck.max)
		}
	}
	if c.Grazers.MinSize >= c.Grazers.MaxSize {
		return fmt.Errorf("%w: grazers.min_size %d must be below grazers.max_size %d",
			ErrInvalid, c.Grazers.MinSize, c.Grazers.MaxSize)
	}
	if c.Telemetry.StatsWindow < 0 {
		return fmt.Errorf("%w: telemetry.stats_window = %d, want >= 0", ErrInvalid, c.Telemetry.StatsWindow)
	}
	return nil
}

// global holds the loaded configuration.
var global *Config

// Init loads configuration from the given path, or uses embedded defaults if
// path is empty. Must be called before Cfg().
func Init(path string) error {
	cfg, err := Load(path)
	if err != nil {
		return err
	}
	global = cfg
	return nil
}

// Cfg returns the global configuration. Panics if Init was not called.
func Cfg() *Config {
	if global == nil {
		panic("config: Cfg() called before Init()")
	}
	return global
}

// Load loads configuration from a YAML file, merging it over the embedded
// defaults. If path is empty, only the defaults are used.
func Load(path string) (*Config, error) {
	cfg := &Config{}
	if err := yaml.Unmarshal(defaultsYAML, cfg); err != nil {
		return nil, fmt.Errorf("parsing embedded defaults: %w", err)
	}

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
		// Unmarshal into the same struct - only fields present in the
		// file are overwritten.
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config file: %w", err)
		}
	}

	return cfg, nil
}

// WriteYAML writes the configuration to a YAML file, so a run's exact
// parameters travel with its output.
func (c *Config) WriteYAML(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}
	return nil
}
