package theme

import (
	"bufio"
	"embed"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strings"

	"github.com/hashicorp/go-hclog"
)

// Themes bundled with the module. A user styles directory, when configured,
// takes precedence over these.
//
//go:embed styles/*.less
var embeddedStyles embed.FS

// syntaxMarkers are the fixed syntax-highlight colour markers scanned out of
// a theme definition. Their resolved values are appended to the accent list.
var syntaxMarkers = []string{
	"@cm-atom", "@cm-number", "@cm-property", "@cm-attribute",
	"@cm-keyword", "@cm-string", "@cm-meta",
}

var (
	// ErrThemeNotFound is returned when a named theme has no definition file
	// in the user styles directory or the embedded set.
	ErrThemeNotFound = errors.New("theme not found")

	// ErrNotHex is returned when a recognized colour line does not end in a
	// #RRGGBB literal. The scanner skips such lines instead of storing a
	// garbage slice of the value.
	ErrNotHex = errors.New("value is not a #RRGGBB literal")
)

var hexTail = regexp.MustCompile(`^#[0-9a-fA-F]{6}$`)

// Source reads theme definitions from an optional user styles directory,
// falling back to the styles embedded in the module.
type Source struct {
	// StylesDir optionally points at a directory of <name>.less files that
	// shadow the embedded themes.
	StylesDir string

	logger hclog.Logger
}

// NewSource creates a theme source. A nil logger disables parse diagnostics.
func NewSource(stylesDir string, logger hclog.Logger) *Source {
	if logger == nil {
		logger = hclog.NewNullLogger()
	}
	return &Source{StylesDir: stylesDir, logger: logger}
}

// GetThemeStyle extracts the colour map and accent colour list for a theme.
// The sentinel "default" returns the built-in colours without touching the
// filesystem. A missing definition file is an error; there is no fallback.
func (s *Source) GetThemeStyle(name string) (ColorMap, []string, error) {
	colors := DefaultColorMap()
	clist := DefaultColorList()

	if name == DefaultTheme {
		return colors, clist, nil
	}

	r, err := s.open(name)
	if err != nil {
		return nil, nil, err
	}
	defer r.Close()

	syntax, err := s.scan(r, colors)
	if err != nil {
		return nil, nil, fmt.Errorf("scan theme %q: %w", name, err)
	}

	clist = append(clist, dedupe(syntax)...)
	return colors, clist, nil
}

// open resolves <name>.less in the user styles directory first, then in the
// embedded set.
func (s *Source) open(name string) (io.ReadCloser, error) {
	file := name + ".less"

	if s.StylesDir != "" {
		f, err := os.Open(filepath.Join(s.StylesDir, file))
		if err == nil {
			return f, nil
		}
		if !os.IsNotExist(err) {
			return nil, fmt.Errorf("open theme %q: %w", name, err)
		}
	}

	f, err := embeddedStyles.Open("styles/" + file)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("%w: %q", ErrThemeNotFound, name)
	}
	if err != nil {
		return nil, fmt.Errorf("open theme %q: %w", name, err)
	}
	return f, nil
}

// scan reads the definition line by line, overwriting colour slots as their
// key substrings are seen (last match wins) and resolving each syntax marker
// once (first match wins). It returns the resolved syntax colours in marker
// order, omitting markers the file never defines.
func (s *Source) scan(r io.Reader, colors ColorMap) ([]string, error) {
	resolved := make(map[string]string, len(syntaxMarkers))

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())

		for _, slot := range Slots() {
			if !strings.Contains(line, slot) {
				continue
			}
			hex, err := extractHex(line)
			if err != nil {
				s.logger.Debug("skipping colour line", "slot", slot, "line", line, "error", err)
				continue
			}
			colors[slot] = hex
		}

		for _, marker := range syntaxMarkers {
			if _, done := resolved[marker]; done || !strings.Contains(line, marker) {
				continue
			}
			hex, err := extractHex(line)
			if err != nil {
				s.logger.Debug("skipping syntax colour line", "marker", marker, "line", line, "error", err)
				continue
			}
			resolved[marker] = hex
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}

	syntax := make([]string, 0, len(resolved))
	for _, marker := range syntaxMarkers {
		if hex, ok := resolved[marker]; ok {
			syntax = append(syntax, hex)
		}
	}
	return syntax, nil
}

// extractHex applies the colour-line grammar: the value sits after the last
// ':' and before the first ';', and its final 7 characters must form a
// #RRGGBB literal.
func extractHex(line string) (string, error) {
	colon := strings.LastIndex(line, ":")
	if colon < 0 {
		return "", fmt.Errorf("%w: no ':' separator", ErrNotHex)
	}

	value := line[colon+1:]
	if semi := strings.Index(value, ";"); semi >= 0 {
		value = value[:semi]
	}
	value = strings.TrimSpace(value)

	if len(value) < 7 {
		return "", fmt.Errorf("%w: %q", ErrNotHex, value)
	}
	tail := value[len(value)-7:]
	if !hexTail.MatchString(tail) {
		return "", fmt.Errorf("%w: %q", ErrNotHex, value)
	}
	return tail, nil
}

// dedupe removes duplicate hex codes, keeping first-seen order.
func dedupe(colors []string) []string {
	seen := make(map[string]struct{}, len(colors))
	out := colors[:0]
	for _, c := range colors {
		if _, ok := seen[c]; ok {
			continue
		}
		seen[c] = struct{}{}
		out = append(out, c)
	}
	return out
}

// ListThemes returns the available theme names: the built-in default, the
// embedded themes and any .less files in the user styles directory, sorted
// and deduplicated.
func (s *Source) ListThemes() ([]string, error) {
	names := map[string]struct{}{DefaultTheme: {}}

	entries, err := fs.ReadDir(embeddedStyles, "styles")
	if err != nil {
		return nil, fmt.Errorf("list embedded themes: %w", err)
	}
	for _, e := range entries {
		names[strings.TrimSuffix(e.Name(), ".less")] = struct{}{}
	}

	if s.StylesDir != "" {
		entries, err := os.ReadDir(s.StylesDir)
		if err != nil && !os.IsNotExist(err) {
			return nil, fmt.Errorf("list themes in %s: %w", s.StylesDir, err)
		}
		for _, e := range entries {
			if e.IsDir() || !strings.HasSuffix(e.Name(), ".less") {
				continue
			}
			names[strings.TrimSuffix(e.Name(), ".less")] = struct{}{}
		}
	}

	out := make([]string, 0, len(names))
	for name := range names {
		out = append(out, name)
	}
	sort.Strings(out)
	return out, nil
}
