// Package theme resolves the active theme name and extracts the theme's
// colours from its .less definition file.
//
// A theme contributes two things to the styling pipeline: a map of five named
// colour slots (figure/axis faces, text, edges, grid) and an ordered accent
// colour list used as the plot colour cycle. Themes are reconstructed from
// their definition file on every style application and never cached.
package theme

// DefaultTheme is the sentinel name for the built-in light theme. It has no
// definition file; its colours are the fixed defaults below.
const DefaultTheme = "default"

// Colour slot keys. These double as the substrings matched when scanning a
// theme definition file.
const (
	SlotAxisFace   = "axisFace"
	SlotFigureFace = "figureFace"
	SlotTextColor  = "textColor"
	SlotEdgeColor  = "edgeColor"
	SlotGridColor  = "gridColor"
)

// ColorMap binds the five named colour slots to hex colours.
type ColorMap map[string]string

// Slots lists the colour slot keys in scan order.
func Slots() []string {
	return []string{SlotAxisFace, SlotFigureFace, SlotTextColor, SlotEdgeColor, SlotGridColor}
}

// DefaultColorMap returns the built-in light-theme slots: white faces,
// near-black text, light-gray edges and grid.
func DefaultColorMap() ColorMap {
	return ColorMap{
		SlotAxisFace:   "#ffffff",
		SlotFigureFace: "#ffffff",
		SlotTextColor:  "#262626",
		SlotEdgeColor:  "#cccccc",
		SlotGridColor:  "#cccccc",
	}
}

// DefaultColorList returns the fixed 14-entry accent palette used as the
// colour cycle for the default theme and as the head of every other theme's
// cycle.
func DefaultColorList() []string {
	return []string{
		"#3572C6", "#83a83b", "#c44e52", "#8172b2", "#ff914d", "#77BEDB",
		"#222222", "#4168B7", "#27ae60", "#e74c3c", "#8E44AD", "#ff711a",
		"#3498db", "#6C7A89",
	}
}
