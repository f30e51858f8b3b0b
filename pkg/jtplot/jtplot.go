// Package jtplot is the public styling surface: pick a theme and a display
// context and push the composed rendering parameters into the process-wide
// configuration store, mirroring the way a notebook user styles their plots.
//
// The package-level store is plain global mutable state with no locking,
// matching the host-library semantics it stands in for. Concurrent use is
// unsupported; tests can substitute their own store with SetStore.
package jtplot

import (
	"github.com/nbtheme/jtplot/internal/rc"
	"github.com/nbtheme/jtplot/internal/sink"
	"github.com/nbtheme/jtplot/internal/style"
	"github.com/nbtheme/jtplot/internal/theme"
)

// Options re-exports the styling options.
type Options = style.Options

// Context names accepted by Options.Context.
const (
	ContextPaper    = rc.ContextPaper
	ContextNotebook = rc.ContextNotebook
	ContextTalk     = rc.ContextTalk
	ContextPoster   = rc.ContextPoster
)

var (
	defaultStore  sink.Store = sink.NewMemoryStore()
	defaultSource            = theme.NewSource("", nil)
)

// DefaultOptions returns the stock styling options: installed theme,
// notebook context, grid on, ticks hidden, spines visible, fscale 1.
func DefaultOptions() Options {
	return style.DefaultOptions()
}

// Style composes the configuration mapping for opts and writes it into the
// store, installing the theme's accent colours as the active colour cycle.
func Style(opts Options) error {
	_, err := style.Apply(defaultStore, defaultSource, opts)
	return err
}

// Figsize sets the default figure size to (x*aspect, y), bypassing the full
// styling pipeline.
func Figsize(x, y, aspect float64) {
	style.Figsize(defaultStore, x, y, aspect)
}

// Reset restores the factory-default configuration, the stock single-letter
// colour codes, and white figure and axis backgrounds.
func Reset() {
	defaultStore.Reset()
}

// Store returns the active configuration store.
func Store() sink.Store {
	return defaultStore
}

// SetStore replaces the active configuration store. Intended for tests and
// for embedding the pipeline behind a custom sink.
func SetStore(s sink.Store) {
	defaultStore = s
}

// SetStylesDir points theme resolution at a directory of user .less files
// that shadow the embedded themes.
func SetStylesDir(dir string) {
	defaultSource = theme.NewSource(dir, nil)
}
