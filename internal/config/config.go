// Package config resolves map dimensions from embedded defaults and the environment.
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"

	"github.com/samdwyer/tilemap/data"
	"github.com/samdwyer/tilemap/internal/world"
)

const (
	// EnvWidth overrides the map width.
	EnvWidth = "TILEMAP_WIDTH"
	// EnvHeight overrides the map height.
	EnvHeight = "TILEMAP_HEIGHT"
	// EnvFile names an optional .env file with TILEMAP_* overrides.
	EnvFile = "TILEMAP_ENV_FILE"
)

// ErrInvalidDimensions is returned when a size is not positive or exceeds world.MaxCells.
var ErrInvalidDimensions = errors.New("invalid map dimensions")

// Config holds map configuration options.
type Config struct {
	Width  int `json:"width"`  // Number of columns
	Height int `json:"height"` // Number of rows
}

// Default returns the configuration embedded in defaults.json.
func Default() (Config, error) {
	var cfg Config
	if err := json.Unmarshal(data.Defaults(), &cfg); err != nil {
		return Config{}, fmt.Errorf("failed to parse embedded defaults.json: %w", err)
	}
	return cfg, nil
}

// Resolve builds the effective configuration. Embedded defaults are
// overridden by the file named in TILEMAP_ENV_FILE, if any, and then by
// the process environment.
func Resolve() (Config, error) {
	cfg, err := Default()
	if err != nil {
		return Config{}, err
	}

	if path := os.Getenv(EnvFile); path != "" {
		cfg, err = FromFile(cfg, path)
		if err != nil {
			return Config{}, err
		}
	}

	return FromEnv(cfg)
}

// FromEnv applies TILEMAP_* overrides from the process environment to base.
func FromEnv(base Config) (Config, error) {
	return apply(base, os.Getenv)
}

// FromFile applies TILEMAP_* overrides read from a .env file to base.
// Variables in the file do not leak into the process environment.
func FromFile(base Config, path string) (Config, error) {
	vars, err := godotenv.Read(path)
	if err != nil {
		return base, fmt.Errorf("failed to read %s: %w", path, err)
	}
	return apply(base, func(key string) string { return vars[key] })
}

// Validate checks that both dimensions are positive and the cell count fits world.MaxCells.
func (c Config) Validate() error {
	if !world.ValidSize(c.Width, c.Height) {
		return fmt.Errorf("%w: got %dx%d (max %d cells)", ErrInvalidDimensions, c.Width, c.Height, world.MaxCells)
	}
	return nil
}

// apply overrides base with any non-empty values returned by lookup.
func apply(base Config, lookup func(string) string) (Config, error) {
	cfg := base

	if err := parseInt(lookup, EnvWidth, &cfg.Width); err != nil {
		return base, err
	}
	if err := parseInt(lookup, EnvHeight, &cfg.Height); err != nil {
		return base, err
	}

	return cfg, nil
}

func parseInt(lookup func(string) string, key string, dst *int) error {
	raw := lookup(key)
	if raw == "" {
		return nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return fmt.Errorf("invalid %s %q: %w", key, raw, err)
	}
	*dst = v
	return nil
}
