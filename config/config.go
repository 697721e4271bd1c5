// Package config loads and validates the YAML run configuration for the
// crosspower tool.
package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/cwbudde/algo-powerspec/window"
)

// ErrInvalid marks configuration validation failures.
var ErrInvalid = errors.New("config: invalid configuration")

// Config describes one end-to-end power-spectrum run.
//
// Grid2 may be left empty to compute the auto-power spectrum of Grid1.
type Config struct {
	Grid1    string  `yaml:"grid1"`
	Grid2    string  `yaml:"grid2"`
	Output   string  `yaml:"output"`
	NGrid    int     `yaml:"ngrid"`
	BoxSize  float64 `yaml:"boxsize"`
	Bins     int     `yaml:"bins"`
	Window1  string  `yaml:"window1"`
	Window2  string  `yaml:"window2"`
	Contrast bool    `yaml:"contrast"`
	Format   string  `yaml:"format"`
}

// Load reads, defaults, and validates a configuration file.
func Load(path string) (*Config, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: reading %s: %w", path, err)
	}

	cfg := &Config{}
	if err := yaml.Unmarshal(raw, cfg); err != nil {
		return nil, fmt.Errorf("config: parsing %s: %w", path, err)
	}

	cfg.ApplyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// ApplyDefaults fills unset optional fields: Grid2 falls back to Grid1
// (auto-spectrum), Bins to half the grid size, Format to "text".
func (c *Config) ApplyDefaults() {
	if c.Grid2 == "" {
		c.Grid2 = c.Grid1
	}
	if c.Bins == 0 && c.NGrid > 0 {
		c.Bins = c.NGrid / 2
	}
	if c.Format == "" {
		c.Format = "text"
	}
}

// Validate checks the configuration for usability.
func (c *Config) Validate() error {
	if c.Grid1 == "" {
		return fmt.Errorf("%w: grid1 path missing", ErrInvalid)
	}
	if c.Output == "" {
		return fmt.Errorf("%w: output path missing", ErrInvalid)
	}
	if c.NGrid <= 0 {
		return fmt.Errorf("%w: ngrid must be > 0, got %d", ErrInvalid, c.NGrid)
	}
	if c.BoxSize <= 0 {
		return fmt.Errorf("%w: boxsize must be > 0, got %g", ErrInvalid, c.BoxSize)
	}
	if c.Bins < 1 {
		return fmt.Errorf("%w: bins must be >= 1, got %d", ErrInvalid, c.Bins)
	}
	if _, err := window.ParseScheme(c.Window1); err != nil {
		return fmt.Errorf("%w: window1: %v", ErrInvalid, err)
	}
	if _, err := window.ParseScheme(c.Window2); err != nil {
		return fmt.Errorf("%w: window2: %v", ErrInvalid, err)
	}
	if c.Format != "text" && c.Format != "csv" {
		return fmt.Errorf("%w: format must be text or csv, got %q", ErrInvalid, c.Format)
	}
	return nil
}

// Schemes returns the parsed per-grid window schemes. The configuration
// must have passed Validate.
func (c *Config) Schemes() (window.Scheme, window.Scheme, error) {
	w1, err := window.ParseScheme(c.Window1)
	if err != nil {
		return window.SchemeNone, window.SchemeNone, err
	}
	w2, err := window.ParseScheme(c.Window2)
	if err != nil {
		return window.SchemeNone, window.SchemeNone, err
	}
	return w1, w2, nil
}
