package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/nbtheme/jtplot/internal/rc"
	"github.com/nbtheme/jtplot/internal/style"
)

func TestLoadMissingFile(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "config.toml"))
	if err != nil {
		t.Fatalf("Load of missing file: unexpected error %v", err)
	}
	if cfg != (Config{}) {
		t.Errorf("Load of missing file = %+v, want zero config", cfg)
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	data := `
theme = "onedork"
context = "talk"
fscale = 1.2
grid = false
ticks = true
styles_dir = "/tmp/styles"
`
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load unexpected error: %v", err)
	}

	if cfg.Theme != "onedork" || cfg.Context != "talk" || cfg.StylesDir != "/tmp/styles" {
		t.Errorf("Load = %+v", cfg)
	}
	if cfg.FontScale != 1.2 {
		t.Errorf("FontScale = %v, want 1.2", cfg.FontScale)
	}
	if cfg.Grid == nil || *cfg.Grid {
		t.Error("Grid not loaded as false")
	}
	if cfg.Ticks == nil || !*cfg.Ticks {
		t.Error("Ticks not loaded as true")
	}
	if cfg.Spines != nil {
		t.Error("Spines should stay nil when absent")
	}
}

func TestLoadMalformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte("theme = [broken"), 0o644); err != nil {
		t.Fatal(err)
	}

	if _, err := Load(path); err == nil {
		t.Fatal("Load of malformed file expected error")
	}
}

func TestApplyOverlay(t *testing.T) {
	off := false
	cfg := Config{
		Theme:     "monokai",
		Context:   "poster",
		FontScale: 1.5,
		Grid:      &off,
	}

	opts := cfg.Apply(style.DefaultOptions())

	if opts.Theme != "monokai" {
		t.Errorf("Theme = %q", opts.Theme)
	}
	if opts.Context != rc.ContextPoster {
		t.Errorf("Context = %q", opts.Context)
	}
	if opts.FontScale != 1.5 {
		t.Errorf("FontScale = %v", opts.FontScale)
	}
	if opts.Grid {
		t.Error("Grid not overridden to false")
	}
	// Untouched fields keep pipeline defaults.
	if !opts.Spines || opts.Ticks {
		t.Error("unset toggles lost their defaults")
	}
}

func TestApplyZeroConfigKeepsDefaults(t *testing.T) {
	opts := Config{}.Apply(style.DefaultOptions())
	want := style.DefaultOptions()
	if opts != want {
		t.Errorf("zero config changed options: %+v != %+v", opts, want)
	}
}
