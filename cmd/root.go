// Package cmd implements the command line interface for scanning and
// exporting directory trees.
package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"foldertree/internal/config"
)

var rootCmd = &cobra.Command{
	Use:          "foldertree",
	Short:        "Visualize directory structures as indented trees",
	Long:         "foldertree scans a directory and renders its structure as a box-drawing tree,\noptionally annotated with sizes, and exports it as text, JSON or CSV.",
	SilenceUsage: true,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

var (
	flagFiles bool
	flagDepth int
	flagSize  bool
	flagUnit  string
)

// addScanFlags registers the scan option flags shared by the scan and export
// commands.
func addScanFlags(cmd *cobra.Command) {
	cmd.Flags().BoolVar(&flagFiles, "files", true, "include files in the tree")
	cmd.Flags().IntVar(&flagDepth, "depth", -1, "maximum depth to scan (negative for unlimited)")
	cmd.Flags().BoolVar(&flagSize, "size", false, "annotate entries with sizes")
	cmd.Flags().StringVar(&flagUnit, "unit", string(config.UnitAuto), "size unit: auto, bytes, KB, MB, GB or TB")
}

// scanOptions builds the per-scan options from the CLI flags, clamping the
// requested depth to the supported range.
func scanOptions() (config.Options, error) {
	unit := config.SizeUnit(flagUnit)
	if !config.ValidUnit(unit) {
		return config.Options{}, fmt.Errorf("unsupported size unit %q", flagUnit)
	}

	opts := config.DefaultOptions()
	opts.IncludeFiles = flagFiles
	opts.MaxDepth = config.ClampDepth(flagDepth)
	opts.ShowSize = flagSize
	opts.SizeUnit = unit
	return opts, nil
}
