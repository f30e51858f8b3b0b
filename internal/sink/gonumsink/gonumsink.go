// Package gonumsink projects a composed configuration mapping onto a
// gonum.org/v1/plot plot. The styling pipeline itself only writes flat
// parameters into the store; this adapter is what makes a composed style
// visible on an actual rendered figure.
package gonumsink

import (
	"fmt"
	"image/color"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"github.com/nbtheme/jtplot/internal/colour"
	"github.com/nbtheme/jtplot/internal/rc"
	"github.com/nbtheme/jtplot/internal/sink"
)

// Apply styles an existing plot from the store's current configuration:
// background, axis line widths, tick geometry, label and tick font sizes,
// and text colours.
func Apply(store sink.Store, p *plot.Plot) error {
	params := store.Snapshot()

	figureFace, err := paramColor(params, "figure.facecolor")
	if err != nil {
		return err
	}
	edge, err := paramColor(params, "axes.edgecolor")
	if err != nil {
		return err
	}
	label, err := paramColor(params, "axes.labelcolor")
	if err != nil {
		return err
	}
	text, err := paramColor(params, "text.color")
	if err != nil {
		return err
	}
	tick, err := paramColor(params, "xtick.color")
	if err != nil {
		return err
	}

	p.BackgroundColor = figureFace

	p.Title.Color = text
	p.Title.Font.Size = vg.Points(params.Float("axes.titlesize"))

	p.Legend.Color = text
	p.Legend.Font.Size = vg.Points(params.Float("legend.fontsize"))

	for _, ax := range []*plot.Axis{&p.X, &p.Y} {
		ax.LineStyle.Color = edge
		ax.LineStyle.Width = vg.Points(params.Float("axes.linewidth"))

		ax.Label.Color = label
		ax.Label.Font.Size = vg.Points(params.Float("axes.labelsize"))

		ax.Tick.Label.Color = tick
		ax.Tick.Label.Font.Size = vg.Points(params.Float("xtick.labelsize"))
		ax.Tick.LineStyle.Color = tick
		ax.Tick.LineStyle.Width = vg.Points(params.Float("xtick.major.width"))
		ax.Tick.Length = vg.Points(params.Float("xtick.major.size"))
	}

	return nil
}

// Grid returns a grid plotter styled from the store, or nil when the grid is
// toggled off.
func Grid(store sink.Store) (*plotter.Grid, error) {
	params := store.Snapshot()
	if !params.Bool("axes.grid") {
		return nil, nil
	}

	gridColor, err := paramColor(params, "grid.color")
	if err != nil {
		return nil, err
	}

	style := draw.LineStyle{
		Color: gridColor,
		Width: vg.Points(params.Float("grid.linewidth")),
	}

	g := plotter.NewGrid()
	g.Vertical = style
	g.Horizontal = style
	return g, nil
}

// Demo renders a sample multi-series line plot to path using the active
// style and colour cycle, so a theme can be eyeballed outside a notebook.
func Demo(store sink.Store, path string) error {
	p, err := plot.New()
	if err != nil {
		return fmt.Errorf("create plot: %w", err)
	}

	p.Title.Text = "jtplot demo"
	p.X.Label.Text = "x"
	p.Y.Label.Text = "y"

	if err := Apply(store, p); err != nil {
		return err
	}

	grid, err := Grid(store)
	if err != nil {
		return err
	}
	if grid != nil {
		p.Add(grid)
	}

	params := store.Snapshot()
	cycle := store.ColorCycle()
	width := vg.Points(params.Float("lines.linewidth"))

	for i, pts := range demoSeries(3, 50) {
		line, err := plotter.NewLine(pts)
		if err != nil {
			return fmt.Errorf("build demo series: %w", err)
		}
		line.LineStyle.Width = width
		if len(cycle) > 0 {
			c, err := hexColor(cycle[i%len(cycle)])
			if err != nil {
				return err
			}
			line.LineStyle.Color = c
		}
		p.Add(line)
		p.Legend.Add(fmt.Sprintf("series %d", i+1), line)
	}

	size := params.Pair("figure.figsize")
	return p.Save(vg.Length(size[0])*vg.Inch, vg.Length(size[1])*vg.Inch, path)
}

// demoSeries builds n offset quadratic series of m points each.
func demoSeries(n, m int) []plotter.XYs {
	out := make([]plotter.XYs, n)
	for i := range out {
		pts := make(plotter.XYs, m)
		for j := range pts {
			x := float64(j) / float64(m-1)
			pts[j].X = x
			pts[j].Y = float64(i+1) * x * x
		}
		out[i] = pts
	}
	return out
}

// paramColor reads a hex colour parameter from the mapping.
func paramColor(params rc.Params, key string) (color.Color, error) {
	hex := params.Str(key)
	if hex == "" {
		return nil, fmt.Errorf("parameter %q is not a colour", key)
	}
	c, err := hexColor(hex)
	if err != nil {
		return nil, fmt.Errorf("parameter %q: %w", key, err)
	}
	return c, nil
}

func hexColor(hex string) (color.Color, error) {
	rgb, err := colour.ParseHex(hex)
	if err != nil {
		return nil, err
	}
	return color.RGBA{R: rgb.R, G: rgb.G, B: rgb.B, A: 255}, nil
}
