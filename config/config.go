// Package config loads and validates tiling session settings from YAML.
//
// The vertex count q is fixed for the lifetime of a Graph by
// construction: a session that needs a different q builds a new Graph
// from a new Config, so a mid-session q change cannot exist.
package config

import (
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// Validation errors.
var (
	// ErrVertexCount indicates q < 5; squares only tile the hyperbolic
	// plane when at least five meet at a vertex.
	ErrVertexCount = errors.New("config: q must be at least 5")

	// ErrRadius indicates a negative initial radius.
	ErrRadius = errors.New("config: radius must be non-negative")

	// ErrMaxTiles indicates a negative tile budget.
	ErrMaxTiles = errors.New("config: max_tiles must be non-negative")
)

// Config describes one tiling session.
type Config struct {
	// Q is the vertex count of the {4,q} tiling.
	Q int `yaml:"q"`

	// Radius is the initial graph radius to materialize.
	Radius int `yaml:"radius"`

	// MaxTiles optionally caps the tile arena; 0 means unlimited.
	MaxTiles int `yaml:"max_tiles,omitempty"`
}

// Default returns the {4,5} session with a radius-3 neighborhood.
func Default() Config {
	return Config{Q: 5, Radius: 3}
}

// Parse decodes YAML over the defaults and validates.
func Parse(data []byte) (Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Load reads YAML from r and parses it.
func Load(r io.Reader) (Config, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return Default(), fmt.Errorf("config: %w", err)
	}
	return Parse(data)
}

// Validate checks the invariants.
func (c Config) Validate() error {
	if c.Q < 5 {
		return fmt.Errorf("%w: got %d", ErrVertexCount, c.Q)
	}
	if c.Radius < 0 {
		return fmt.Errorf("%w: got %d", ErrRadius, c.Radius)
	}
	if c.MaxTiles < 0 {
		return fmt.Errorf("%w: got %d", ErrMaxTiles, c.MaxTiles)
	}
	return nil
}
