package gonumsink

import (
	"image/color"
	"os"
	"path/filepath"
	"testing"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/vg"

	"github.com/nbtheme/jtplot/internal/sink"
	"github.com/nbtheme/jtplot/internal/style"
	"github.com/nbtheme/jtplot/internal/theme"
)

func styledStore(t *testing.T, themeName string, ticks bool) *sink.MemoryStore {
	t.Helper()
	store := sink.NewMemoryStore()
	opts := style.DefaultOptions()
	opts.Theme = themeName
	opts.Ticks = ticks
	if _, err := style.Apply(store, theme.NewSource("", nil), opts); err != nil {
		t.Fatalf("style.Apply unexpected error: %v", err)
	}
	return store
}

func TestApplyProjectsStyleOntoPlot(t *testing.T) {
	store := styledStore(t, "onedork", true)

	p, err := plot.New()
	if err != nil {
		t.Fatalf("plot.New unexpected error: %v", err)
	}
	if err := Apply(store, p); err != nil {
		t.Fatalf("Apply unexpected error: %v", err)
	}

	wantBg := color.RGBA{R: 0x25, G: 0x2b, B: 0x39, A: 255}
	if p.BackgroundColor != wantBg {
		t.Errorf("BackgroundColor = %v, want %v", p.BackgroundColor, wantBg)
	}

	if got := p.X.LineStyle.Width; got != vg.Points(1.4) {
		t.Errorf("X.LineStyle.Width = %v, want %v", got, vg.Points(1.4))
	}
	if got := p.X.Tick.Length; got != vg.Points(6) {
		t.Errorf("X.Tick.Length = %v, want visible major ticks", got)
	}

	wantText := color.RGBA{R: 0x9e, G: 0xa7, B: 0xb3, A: 255}
	if p.Title.Color != wantText {
		t.Errorf("Title.Color = %v, want %v", p.Title.Color, wantText)
	}
	if p.Y.Label.Color != wantText {
		t.Errorf("Y.Label.Color = %v, want %v", p.Y.Label.Color, wantText)
	}
}

func TestGridFollowsToggle(t *testing.T) {
	store := styledStore(t, theme.DefaultTheme, false)

	g, err := Grid(store)
	if err != nil {
		t.Fatalf("Grid unexpected error: %v", err)
	}
	if g == nil {
		t.Fatal("Grid = nil with axes.grid on")
	}
	wantGrid := color.RGBA{R: 0xcc, G: 0xcc, B: 0xcc, A: 255}
	if g.Horizontal.Color != wantGrid {
		t.Errorf("grid colour = %v, want %v", g.Horizontal.Color, wantGrid)
	}

	off := sink.NewMemoryStore()
	opts := style.DefaultOptions()
	opts.Theme = theme.DefaultTheme
	opts.Grid = false
	if _, err := style.Apply(off, theme.NewSource("", nil), opts); err != nil {
		t.Fatalf("style.Apply unexpected error: %v", err)
	}
	g, err = Grid(off)
	if err != nil {
		t.Fatalf("Grid unexpected error: %v", err)
	}
	if g != nil {
		t.Error("Grid != nil with axes.grid off")
	}
}

func TestDemoRendersPNG(t *testing.T) {
	store := styledStore(t, "monokai", true)

	path := filepath.Join(t.TempDir(), "demo.png")
	if err := Demo(store, path); err != nil {
		t.Fatalf("Demo unexpected error: %v", err)
	}

	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("demo output missing: %v", err)
	}
	if info.Size() == 0 {
		t.Error("demo output is empty")
	}
}
