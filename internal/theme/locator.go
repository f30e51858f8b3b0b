package theme

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// MarkerFile is the plain-text file recording the active theme name,
// relative to the notebook configuration directory.
const MarkerFile = "custom/current_theme.txt"

// DefaultConfigDir returns the notebook configuration directory holding the
// theme marker file (~/.jupyter).
func DefaultConfigDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolve home directory: %w", err)
	}
	return filepath.Join(home, ".jupyter"), nil
}

// InferTheme reads the active theme name from the marker file under the
// default configuration directory. A missing marker file means no theme has
// been installed and the built-in default is returned.
func InferTheme() (string, error) {
	dir, err := DefaultConfigDir()
	if err != nil {
		return "", err
	}
	return InferThemeFrom(dir)
}

// InferThemeFrom reads the first line of <dir>/custom/current_theme.txt.
// The line is normalized by trimming trailing whitespace so a trailing
// newline in the marker file cannot leak into the theme name. Read errors
// other than "not found" propagate.
func InferThemeFrom(dir string) (string, error) {
	path := filepath.Join(dir, filepath.FromSlash(MarkerFile))

	f, err := os.Open(path)
	if os.IsNotExist(err) {
		return DefaultTheme, nil
	}
	if err != nil {
		return "", fmt.Errorf("read theme marker: %w", err)
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	if !scanner.Scan() {
		if err := scanner.Err(); err != nil {
			return "", fmt.Errorf("read theme marker: %w", err)
		}
		// Empty marker file behaves like a missing one.
		return DefaultTheme, nil
	}

	name := strings.TrimRight(scanner.Text(), " \t\r")
	if name == "" {
		return DefaultTheme, nil
	}
	return name, nil
}
