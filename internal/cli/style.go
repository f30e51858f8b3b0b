package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/nbtheme/jtplot/internal/rc"
	"github.com/nbtheme/jtplot/internal/sink"
	"github.com/nbtheme/jtplot/internal/sink/gonumsink"
	"github.com/nbtheme/jtplot/internal/style"
	"github.com/nbtheme/jtplot/internal/theme"
)

var (
	// Style command flags
	styleTheme   string
	styleContext string
	styleGrid    bool
	styleTicks   bool
	styleSpines  bool
	styleFscale  float64
	styleExport  string
	styleRender  string
)

// styleCmd represents the style command
var styleCmd = &cobra.Command{
	Use:   "style",
	Short: "Compose and apply a plot style",
	Long: `Compose the rendering-parameter mapping for a theme and display context.

The merged mapping is printed as a table by default. Use --export to write
it (with the colour cycle) as JSON, or --render to draw a styled sample plot
to a PNG file.

Examples:
  # Style using the installed notebook theme
  jtplot style

  # A specific theme at talk scale with visible ticks
  jtplot style --theme onedork --context talk --ticks

  # Frameless look: no spines, no grid, larger fonts
  jtplot style --theme monokai --spines=false --grid=false --fscale 1.4

  # Render a styled demo plot
  jtplot style --theme chesterish --render demo.png`,
	Args: cobra.NoArgs,
	RunE: runStyle,
}

func init() {
	styleCmd.Flags().StringVarP(&styleTheme, "theme", "t", "", "theme name (default: the installed notebook theme)")
	styleCmd.Flags().StringVarP(&styleContext, "context", "c", string(rc.ContextNotebook), "display context (paper, notebook, talk, poster)")
	styleCmd.Flags().BoolVar(&styleGrid, "grid", true, "show axis grid lines")
	styleCmd.Flags().BoolVar(&styleTicks, "ticks", false, "make major and minor axis ticks visible")
	styleCmd.Flags().BoolVar(&styleSpines, "spines", true, "keep axis border lines visible")
	styleCmd.Flags().Float64Var(&styleFscale, "fscale", 1, "font scale, independent of the context scale")
	styleCmd.Flags().StringVarP(&styleExport, "export", "o", "", "write the merged mapping as JSON to a file ('-' for stdout)")
	styleCmd.Flags().StringVar(&styleRender, "render", "", "render a styled sample plot to a PNG file")
}

// runStyle executes the style command.
func runStyle(cmd *cobra.Command, args []string) error {
	logger := newLogger(cmd)

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	opts := cfg.Apply(style.DefaultOptions())
	opts = optionsFromFlags(cmd.Flags(), opts)

	src := theme.NewSource(stylesDir(cfg), logger)
	store := sink.NewMemoryStore()

	merged, err := style.Apply(store, src, opts)
	if err != nil {
		return err
	}
	logger.Debug("style applied", "theme", opts.Theme, "context", opts.Context, "params", len(merged))

	if styleRender != "" {
		if err := gonumsink.Demo(store, styleRender); err != nil {
			return fmt.Errorf("render demo plot: %w", err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "rendered %s\n", styleRender)
	}

	if styleExport != "" {
		return exportMapping(cmd, store, merged)
	}

	if styleRender == "" {
		printMapping(cmd, merged)
	}
	return nil
}

// optionsFromFlags overlays explicitly-set flags onto opts. Flags the user
// did not touch leave the defaults-file (or built-in) values in place.
func optionsFromFlags(fs *pflag.FlagSet, opts style.Options) style.Options {
	if fs.Changed("theme") {
		opts.Theme = styleTheme
	}
	if fs.Changed("context") {
		opts.Context = rc.Context(styleContext)
	}
	if fs.Changed("grid") {
		opts.Grid = styleGrid
	}
	if fs.Changed("ticks") {
		opts.Ticks = styleTicks
	}
	if fs.Changed("spines") {
		opts.Spines = styleSpines
	}
	if fs.Changed("fscale") {
		opts.FontScale = styleFscale
	}
	return opts
}

// exportPayload is the JSON shape written by --export.
type exportPayload struct {
	Params     rc.Params `json:"params"`
	ColorCycle []string  `json:"color_cycle"`
}

func exportMapping(cmd *cobra.Command, store sink.Store, merged rc.Params) error {
	data, err := json.MarshalIndent(exportPayload{
		Params:     merged,
		ColorCycle: store.ColorCycle(),
	}, "", "  ")
	if err != nil {
		return fmt.Errorf("encode mapping: %w", err)
	}
	data = append(data, '\n')

	if styleExport == "-" {
		_, err = cmd.OutOrStdout().Write(data)
		return err
	}
	if err := os.WriteFile(styleExport, data, 0o644); err != nil {
		return fmt.Errorf("write mapping: %w", err)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", styleExport)
	return nil
}

// printMapping renders the merged mapping as a two-column table, sorted by
// parameter name.
func printMapping(cmd *cobra.Command, params rc.Params) {
	keys := make([]string, 0, len(params))
	for k := range params {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	table := NewTable([]string{"PARAMETER", "VALUE"})
	for _, k := range keys {
		table.AddRow([]string{k, formatValue(params[k])})
	}
	fmt.Fprint(cmd.OutOrStdout(), table.Render())
}

func formatValue(v any) string {
	switch val := v.(type) {
	case [2]float64:
		return fmt.Sprintf("(%g, %g)", val[0], val[1])
	case []string:
		return fmt.Sprintf("%v", val)
	case float64:
		return fmt.Sprintf("%g", val)
	default:
		return fmt.Sprintf("%v", val)
	}
}
