// Package config loads the optional jtplot defaults file. Every field is
// optional; the file itself is optional. Values here seed the styling
// options before command-line flags are applied.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"github.com/nbtheme/jtplot/internal/rc"
	"github.com/nbtheme/jtplot/internal/style"
)

// Config is the TOML-friendly representation of the defaults file.
type Config struct {
	// Theme overrides the marker-file theme when set.
	Theme string `toml:"theme,omitempty"`

	// Context is the default display context.
	Context string `toml:"context,omitempty"`

	// StylesDir points at a directory of user .less themes.
	StylesDir string `toml:"styles_dir,omitempty"`

	// FontScale is the default independent font scale.
	FontScale float64 `toml:"fscale,omitempty"`

	// Tri-state toggles; nil leaves the pipeline default in place.
	Grid   *bool `toml:"grid,omitempty"`
	Ticks  *bool `toml:"ticks,omitempty"`
	Spines *bool `toml:"spines,omitempty"`
}

// DefaultPath returns the conventional location of the defaults file.
func DefaultPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("config: resolve config directory: %w", err)
	}
	return filepath.Join(dir, "jtplot", "config.toml"), nil
}

// Load reads the defaults file at path. A missing file yields a zero Config
// and no error; a malformed file is an error.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return Config{}, nil
	}
	if err != nil {
		return Config{}, fmt.Errorf("config: read %s: %w", path, err)
	}

	var cfg Config
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("config: parse %s: %w", path, err)
	}
	return cfg, nil
}

// Apply folds the configured defaults into opts and returns the result.
func (c Config) Apply(opts style.Options) style.Options {
	if c.Theme != "" {
		opts.Theme = c.Theme
	}
	if c.Context != "" {
		opts.Context = rc.Context(c.Context)
	}
	if c.FontScale > 0 {
		opts.FontScale = c.FontScale
	}
	if c.Grid != nil {
		opts.Grid = *c.Grid
	}
	if c.Ticks != nil {
		opts.Ticks = *c.Ticks
	}
	if c.Spines != nil {
		opts.Spines = *c.Spines
	}
	return opts
}
