// jtplot - notebook theme styling for plots
//
// jtplot composes plot rendering parameters from a named notebook theme and
// a display context and applies them to the plotting configuration.
package main

import "github.com/nbtheme/jtplot/internal/cli"

func main() {
	cli.Execute()
}
