package sink

import "github.com/nbtheme/jtplot/internal/rc"

// ShortCodes lists the legacy single-letter colour codes in remap order.
// Styling binds the first seven accent colours to these so that legacy
// single-letter colour references visually match the active theme.
const ShortCodes = "bgrmyck"

// defaultShortCodes are the stock RGB triples for the legacy codes,
// restored verbatim on Reset.
var defaultShortCodes = map[byte][3]float64{
	'b': {0, 0, 1},
	'g': {0, 0.5, 0},
	'r': {1, 0, 0},
	'm': {0.75, 0.75, 0},
	'y': {0.75, 0.75, 0},
	'c': {0, 0.75, 0.75},
	'k': {0, 0, 0},
}

// defaultColorCycle is the host library's stock series palette.
var defaultColorCycle = []string{
	"#1f77b4", "#ff7f0e", "#2ca02c", "#d62728", "#9467bd",
	"#8c564b", "#e377c2", "#7f7f7f", "#bcbd22", "#17becf",
}

// FactoryDefaults mirrors the host plotting library's stock rendering
// configuration for every parameter the styling pipeline touches.
func FactoryDefaults() rc.Params {
	return rc.Params{
		"figure.figsize":        [2]float64{6.4, 4.8},
		"figure.facecolor":      "#ffffff",
		"figure.edgecolor":      "#ffffff",
		"figure.autolayout":     false,
		"axes.facecolor":        "#ffffff",
		"axes.edgecolor":        "#000000",
		"axes.labelcolor":       "#000000",
		"axes.grid":             false,
		"axes.axisbelow":        false,
		"axes.linewidth":        0.8,
		"axes.labelsize":        10.0,
		"axes.titlesize":        12.0,
		"grid.color":            "#b0b0b0",
		"grid.linestyle":        "-",
		"grid.linewidth":        0.8,
		"lines.linewidth":       1.5,
		"lines.markersize":      6.0,
		"lines.markeredgewidth": 1.0,
		"lines.solid_capstyle":  "projecting",
		"patch.linewidth":       1.0,
		"patch.edgecolor":       "#000000",
		"patch.facecolor":       "#1f77b4",
		"text.color":            "#000000",
		"font.family":           "sans-serif",
		"font.sans-serif":       []string{"Helvetica", "Arial", "Bitstream Vera Sans", "sans-serif"},
		"font.size":             10.0,
		"legend.fontsize":       10.0,
		"legend.frameon":        true,
		"legend.numpoints":      1.0,
		"legend.scatterpoints":  1.0,
		"xtick.color":           "#000000",
		"ytick.color":           "#000000",
		"xtick.labelsize":       10.0,
		"ytick.labelsize":       10.0,
		"xtick.major.size":      3.5,
		"ytick.major.size":      3.5,
		"xtick.minor.size":      2.0,
		"ytick.minor.size":      2.0,
		"xtick.major.width":     0.8,
		"ytick.major.width":     0.8,
		"xtick.minor.width":     0.6,
		"ytick.minor.width":     0.6,
		"xtick.major.pad":       3.5,
		"ytick.major.pad":       3.5,
		"savefig.facecolor":     "#ffffff",
		"savefig.edgecolor":     "#ffffff",
	}
}

// MemoryStore is the in-process configuration store. It is plain mutable
// state with no locking, matching the host library's global configuration
// semantics: concurrent writers are unsupported.
type MemoryStore struct {
	defaults   rc.Params
	params     rc.Params
	colorCycle []string
	shortCodes map[byte][3]float64
}

// NewMemoryStore creates a store seeded with the factory defaults.
func NewMemoryStore() *MemoryStore {
	s := &MemoryStore{defaults: FactoryDefaults()}
	s.Reset()
	return s
}

// Defaults returns a copy of the factory-default configuration.
func (s *MemoryStore) Defaults() rc.Params {
	return s.defaults.Clone()
}

// Merge writes the mapping into the store, last write wins per key.
func (s *MemoryStore) Merge(p rc.Params) {
	s.params.Merge(p)
}

// Snapshot returns a copy of the current configuration.
func (s *MemoryStore) Snapshot() rc.Params {
	return s.params.Clone()
}

// SetColorCycle installs the active accent palette.
func (s *MemoryStore) SetColorCycle(colors []string) {
	s.colorCycle = append([]string(nil), colors...)
}

// ColorCycle returns the active accent palette.
func (s *MemoryStore) ColorCycle() []string {
	return append([]string(nil), s.colorCycle...)
}

// SetShortCode remaps a legacy single-letter colour code.
func (s *MemoryStore) SetShortCode(code byte, rgb [3]float64) {
	s.shortCodes[code] = rgb
}

// ShortCode resolves a legacy colour code.
func (s *MemoryStore) ShortCode(code byte) ([3]float64, bool) {
	rgb, ok := s.shortCodes[code]
	return rgb, ok
}

// Reset restores the factory defaults and the stock short-code triples, and
// forces white figure and axis backgrounds.
func (s *MemoryStore) Reset() {
	s.params = s.defaults.Clone()
	s.colorCycle = append([]string(nil), defaultColorCycle...)

	s.shortCodes = make(map[byte][3]float64, len(defaultShortCodes))
	for code, rgb := range defaultShortCodes {
		s.shortCodes[code] = rgb
	}

	s.params["figure.facecolor"] = "#ffffff"
	s.params["axes.facecolor"] = "#ffffff"
}
