// Package style composes the final configuration mapping from the active
// theme, the display context and the grid/tick/spine toggles, and pushes it
// into the configuration sink.
package style

import (
	"fmt"

	"github.com/nbtheme/jtplot/internal/colour"
	"github.com/nbtheme/jtplot/internal/rc"
	"github.com/nbtheme/jtplot/internal/sink"
	"github.com/nbtheme/jtplot/internal/theme"
)

// Options control one style application.
type Options struct {
	// Theme is the theme name. Empty means "use the installed theme" as
	// recorded by the marker file, falling back to the built-in default.
	Theme string

	// Context is the display-scale preset.
	Context rc.Context

	// Grid toggles axis grid lines.
	Grid bool

	// Ticks makes the major and minor axis ticks visible.
	Ticks bool

	// Spines keeps the axis border lines visible. When false the edge
	// colour is forced to the grid colour so the spines disappear against
	// the axis background.
	Spines bool

	// FontScale scales fonts independently of the context scale.
	FontScale float64
}

// DefaultOptions returns the stock styling options: installed theme,
// notebook context, grid on, ticks hidden, spines visible, unscaled fonts.
func DefaultOptions() Options {
	return Options{
		Context:   rc.ContextNotebook,
		Grid:      true,
		Spines:    true,
		FontScale: 1,
	}
}

// normalize fills the zero values an Options literal may carry.
func (o Options) normalize() Options {
	if o.Context == "" {
		o.Context = rc.ContextNotebook
	}
	if o.FontScale <= 0 {
		o.FontScale = 1
	}
	return o
}

// Visible tick sizes installed when Options.Ticks is set.
const (
	majorTickSize = 6.0
	minorTickSize = 3.0
)

// Apply runs the full pipeline: locate/parse the theme, scale the context,
// merge base style, scaled context and theme overrides (later stages win per
// key), push the result into the store and install the theme's accent list
// as the colour cycle. The merged mapping is returned for inspection.
func Apply(store sink.Store, src *theme.Source, opts Options) (rc.Params, error) {
	opts = opts.normalize()

	rcdict, err := rc.SetContext(opts.Context, opts.FontScale)
	if err != nil {
		return nil, err
	}

	name := opts.Theme
	if name == "" {
		name, err = theme.InferTheme()
		if err != nil {
			return nil, err
		}
	}

	colors, clist, err := src.GetThemeStyle(name)
	if err != nil {
		return nil, err
	}

	edgeColor := colors[theme.SlotEdgeColor]
	if !opts.Spines {
		edgeColor = colors[theme.SlotGridColor]
	}

	styleParams := rc.Params{
		"figure.edgecolor":  colors[theme.SlotFigureFace],
		"figure.facecolor":  colors[theme.SlotFigureFace],
		"axes.facecolor":    colors[theme.SlotAxisFace],
		"axes.edgecolor":    edgeColor,
		"axes.labelcolor":   colors[theme.SlotTextColor],
		"axes.grid":         opts.Grid,
		"grid.color":        colors[theme.SlotGridColor],
		"text.color":        colors[theme.SlotTextColor],
		"xtick.color":       colors[theme.SlotTextColor],
		"ytick.color":       colors[theme.SlotTextColor],
		"patch.edgecolor":   colors[theme.SlotAxisFace],
		"patch.facecolor":   colors[theme.SlotGridColor],
		"savefig.facecolor": colors[theme.SlotFigureFace],
		"savefig.edgecolor": colors[theme.SlotFigureFace],
	}

	if opts.Ticks {
		rcdict.Merge(rc.Params{
			"xtick.major.size": majorTickSize,
			"ytick.major.size": majorTickSize,
			"xtick.minor.size": minorTickSize,
			"ytick.minor.size": minorTickSize,
		})
	}

	final := rc.BaseStyle()
	final.Merge(rcdict)
	final.Merge(styleParams)

	store.Merge(final)
	store.SetColorCycle(clist)
	if err := remapShortCodes(store, clist); err != nil {
		return nil, err
	}

	return final, nil
}

// remapShortCodes binds the first seven accent colours to the legacy
// single-letter codes so references like "r" follow the theme.
func remapShortCodes(store sink.Store, clist []string) error {
	for i := 0; i < len(sink.ShortCodes) && i < len(clist); i++ {
		rgb, err := colour.ParseHex(clist[i])
		if err != nil {
			return fmt.Errorf("accent colour %q: %w", clist[i], err)
		}
		store.SetShortCode(sink.ShortCodes[i], rgb.Triple())
	}
	return nil
}

// Figsize sets the default figure size directly, bypassing the pipeline.
// The stored size is (x*aspect, y).
func Figsize(store sink.Store, x, y, aspect float64) {
	store.Merge(rc.Params{"figure.figsize": [2]float64{x * aspect, y}})
}
