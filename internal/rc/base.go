package rc

// Base figure size in inches, before context scaling.
const (
	BaseFigWidth  = 5.5
	BaseFigHeight = 4.5
)

// BaseStyle returns the context-independent style parameters. These sit at
// the bottom of the merge order and every later stage may override them.
func BaseStyle() Params {
	return Params{
		"axes.axisbelow":       true,
		"figure.autolayout":    true,
		"grid.linestyle":       "-",
		"lines.solid_capstyle": "round",
		"legend.frameon":       false,
		"legend.numpoints":     float64(1),
		"legend.scatterpoints": float64(1),
		"font.family":          "sans-serif",
		"font.sans-serif":      []string{"Helvetica", "Arial", "Bitstream Vera Sans", "sans-serif"},
	}
}

// baseContext holds the unscaled line-width, marker and tick parameters.
// Every entry is multiplied by the context scale.
var baseContext = map[string]float64{
	"axes.linewidth":        1.4,
	"grid.linewidth":        1.4,
	"lines.linewidth":       1.5,
	"patch.linewidth":       0.2,
	"lines.markersize":      7,
	"lines.markeredgewidth": 0,
	"xtick.major.width":     1,
	"ytick.major.width":     1,
	"xtick.minor.width":     0.5,
	"ytick.minor.width":     0.5,
	"xtick.major.pad":       7,
	"ytick.major.pad":       7,
	"xtick.major.size":      0,
	"ytick.major.size":      0,
	"xtick.minor.size":      0,
	"ytick.minor.size":      0,
}

// baseFont holds the unscaled font sizes. Every entry is multiplied by the
// independent font-scale factor, never by the context scale.
var baseFont = map[string]float64{
	"font.size":       11,
	"axes.labelsize":  12,
	"axes.titlesize":  12,
	"xtick.labelsize": 10.5,
	"ytick.labelsize": 10.5,
	"legend.fontsize": 10.5,
}

// BaseContext returns a copy of the unscaled context table.
func BaseContext() map[string]float64 {
	out := make(map[string]float64, len(baseContext))
	for k, v := range baseContext {
		out[k] = v
	}
	return out
}

// BaseFont returns a copy of the unscaled font table.
func BaseFont() map[string]float64 {
	out := make(map[string]float64, len(baseFont))
	for k, v := range baseFont {
		out[k] = v
	}
	return out
}
