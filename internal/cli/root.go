// Package cli provides the command-line interface for jtplot.
package cli

import (
	"fmt"
	"io"
	"log"
	"os"

	"github.com/hashicorp/go-hclog"
	"github.com/spf13/cobra"

	"github.com/nbtheme/jtplot/internal/config"
	"github.com/nbtheme/jtplot/internal/version"
)

var (
	// Global flags
	globalConfigPath string
	globalStylesDir  string

	// rootCmd represents the base command when called without any subcommands
	rootCmd = &cobra.Command{
		Use:   "jtplot",
		Short: "Style plots to match your notebook theme",
		Long: `jtplot composes plot rendering parameters from a named notebook theme and a
display context (paper, notebook, talk, poster) and applies them to the
plotting configuration: colours, line widths, font sizes, figure size and
grid/tick visibility.

Themes are read from .less definition files; the active theme is inferred
from the notebook's current_theme.txt marker when none is given.`,
		Version:      version.Short(),
		SilenceUsage: true,
	}
)

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "enable verbose output")
	rootCmd.PersistentFlags().StringVar(&globalConfigPath, "config", "", "path to defaults file (default: <user-config>/jtplot/config.toml)")
	rootCmd.PersistentFlags().StringVar(&globalStylesDir, "styles-dir", "", "directory of user .less themes (shadows the embedded set)")

	// Set version template
	rootCmd.SetVersionTemplate(version.String() + "\n")

	// Add subcommands
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(styleCmd)
	rootCmd.AddCommand(themesCmd)
	rootCmd.AddCommand(resetCmd)
}

// newLogger builds the command logger: debug-level when --verbose is set,
// silent otherwise.
func newLogger(cmd *cobra.Command) hclog.Logger {
	verbose, _ := cmd.Flags().GetBool("verbose")
	if verbose {
		return hclog.New(&hclog.LoggerOptions{
			Name:   "jtplot",
			Output: log.Writer(),
			Level:  hclog.Debug,
		})
	}
	return hclog.New(&hclog.LoggerOptions{
		Name:   "jtplot",
		Output: io.Discard,
		Level:  hclog.Off,
	})
}

// loadConfig reads the defaults file named by --config, or the conventional
// location when the flag is unset. A missing file yields zero defaults.
func loadConfig() (config.Config, error) {
	path := globalConfigPath
	if path == "" {
		var err error
		path, err = config.DefaultPath()
		if err != nil {
			return config.Config{}, err
		}
	}
	return config.Load(path)
}

// stylesDir resolves the user styles directory: the flag wins, then the
// defaults file.
func stylesDir(cfg config.Config) string {
	if globalStylesDir != "" {
		return globalStylesDir
	}
	return cfg.StylesDir
}

// versionCmd represents the version command
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Long:  `Print detailed version information including build date, commit hash, and Go version.`,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println(version.String())
	},
}
