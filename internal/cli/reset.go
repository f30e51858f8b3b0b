package cli

import (
	"github.com/spf13/cobra"

	"github.com/nbtheme/jtplot/internal/sink"
)

// resetCmd represents the reset command
var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Show the factory-default configuration",
	Long: `Reset the configuration store and print the factory-default rendering
parameters: stock colours, white figure and axis backgrounds, and the
original single-letter colour codes.`,
	Args: cobra.NoArgs,
	RunE: runReset,
}

// runReset executes the reset command.
func runReset(cmd *cobra.Command, args []string) error {
	store := sink.NewMemoryStore()
	store.Reset()
	printMapping(cmd, store.Snapshot())
	return nil
}
