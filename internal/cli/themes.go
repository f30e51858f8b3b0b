package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/nbtheme/jtplot/internal/colour"
	"github.com/nbtheme/jtplot/internal/theme"
)

var themesNoPreview bool

// themesCmd represents the themes command
var themesCmd = &cobra.Command{
	Use:   "themes",
	Short: "List available themes",
	Long: `List the built-in default, the embedded themes and any themes found in the
user styles directory, with colour swatch previews.`,
	Args: cobra.NoArgs,
	RunE: runThemes,
}

func init() {
	themesCmd.Flags().BoolVar(&themesNoPreview, "no-preview", false, "list names only, without colour swatches")
}

// runThemes executes the themes command.
func runThemes(cmd *cobra.Command, args []string) error {
	logger := newLogger(cmd)

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	src := theme.NewSource(stylesDir(cfg), logger)
	names, err := src.ListThemes()
	if err != nil {
		return err
	}

	active, err := theme.InferTheme()
	if err != nil {
		// Listing still works without a readable marker file.
		logger.Debug("cannot infer active theme", "error", err)
		active = ""
	}

	width := terminalWidth()
	out := cmd.OutOrStdout()

	for _, name := range names {
		marker := " "
		if name == active {
			marker = "*"
		}

		if themesNoPreview {
			fmt.Fprintf(out, "%s %s\n", marker, name)
			continue
		}

		colors, clist, err := src.GetThemeStyle(name)
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "%s %-12s %s\n", marker, name, previewRow(colors, clist, width))
	}
	return nil
}

// previewRow renders the theme's face/text colours as a labelled swatch and
// the accent cycle as colour blocks, trimmed to the terminal width.
func previewRow(colors theme.ColorMap, clist []string, width int) string {
	var b strings.Builder

	b.WriteString(swatchLabel(colors[theme.SlotFigureFace], colors[theme.SlotTextColor], " Aa "))

	// Two label-width cells plus one cell per accent block.
	remaining := (width - 20) / 2
	for _, hex := range clist {
		if remaining <= 0 {
			break
		}
		b.WriteString(swatch(hex))
		remaining--
	}
	return b.String()
}

// swatch renders a two-character colour block.
func swatch(hex string) string {
	return lipgloss.NewStyle().Background(lipgloss.Color(hex)).Render("  ")
}

// swatchLabel renders text on a coloured background, falling back to a
// contrast-picked foreground when the text colour is unreadable.
func swatchLabel(bg, fg, text string) string {
	bgRGB, err := colour.ParseHex(bg)
	if err == nil {
		fgRGB, err := colour.ParseHex(fg)
		if err != nil || contrastTooLow(bgRGB, fgRGB) {
			fg = "#000000"
			if colour.Luminance(bgRGB) < 0.5 {
				fg = "#ffffff"
			}
		}
	}
	return lipgloss.NewStyle().
		Background(lipgloss.Color(bg)).
		Foreground(lipgloss.Color(fg)).
		Render(text)
}

func contrastTooLow(bg, fg colour.RGB) bool {
	diff := colour.Luminance(bg) - colour.Luminance(fg)
	if diff < 0 {
		diff = -diff
	}
	return diff < 0.2
}

// terminalWidth returns the stdout width, or a sane default when stdout is
// not a terminal.
func terminalWidth() int {
	w, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || w <= 0 {
		return 80
	}
	return w
}
