// Package sink owns the configuration store the styling pipeline writes
// into: the process-wide stand-in for the host plotting library's global
// rendering configuration. The pipeline only ever merges into it; nothing
// reads it back during composition.
package sink

import "github.com/nbtheme/jtplot/internal/rc"

// Store is the configuration sink the composer pushes merged parameter
// mappings into. Implementations are not safe for concurrent use; the whole
// pipeline is single-threaded by contract.
type Store interface {
	// Defaults returns a copy of the factory-default configuration.
	Defaults() rc.Params

	// Merge writes the mapping into the store, last write wins per key.
	Merge(p rc.Params)

	// Snapshot returns a copy of the current configuration.
	Snapshot() rc.Params

	// SetColorCycle installs the ordered accent palette used to colour
	// successive plotted series.
	SetColorCycle(colors []string)

	// ColorCycle returns the active accent palette.
	ColorCycle() []string

	// SetShortCode remaps a legacy single-letter colour code ('b', 'g', ...)
	// to an RGB triple with components in [0, 1].
	SetShortCode(code byte, rgb [3]float64)

	// ShortCode resolves a legacy colour code.
	ShortCode(code byte) ([3]float64, bool)

	// Reset restores the factory-default configuration, the original
	// short-code triples, and forces white figure and axis backgrounds.
	Reset()
}
