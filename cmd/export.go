package cmd

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"foldertree/internal/export"
	"foldertree/internal/scanner"
)

var (
	flagFormat string
	flagOut    string
)

var exportCmd = &cobra.Command{
	Use:   "export [folder]",
	Short: "Scan a folder and export its tree as text, JSON or CSV",
	Args:  cobra.ExactArgs(1),
	RunE:  runExport,
}

func init() {
	addScanFlags(exportCmd)
	exportCmd.Flags().StringVar(&flagFormat, "format", "txt", "export format: txt, json or csv")
	exportCmd.Flags().StringVarP(&flagOut, "out", "o", "", "output file (default stdout)")
	rootCmd.AddCommand(exportCmd)
}

func runExport(cmd *cobra.Command, args []string) error {
	opts, err := scanOptions()
	if err != nil {
		return err
	}
	folder := args[0]

	result, err := scanner.NewTreeScanner().ScanDirectory(cmd.Context(), folder, opts)
	if err != nil {
		return err
	}
	report := result.Report()

	var content []byte
	switch flagFormat {
	case "txt":
		content = []byte(report)
	case "json":
		content, err = export.JSON(report, folder, time.Now())
	case "csv":
		content, err = export.CSV(report, folder)
	default:
		return fmt.Errorf("unsupported export format: %s", flagFormat)
	}
	if err != nil {
		return fmt.Errorf("failed to convert tree to %s: %w", strings.ToUpper(flagFormat), err)
	}

	if flagOut == "" {
		_, err = cmd.OutOrStdout().Write(content)
		return err
	}
	if err := os.WriteFile(flagOut, content, 0o644); err != nil {
		return fmt.Errorf("failed to export tree: %w", err)
	}
	fmt.Fprintf(cmd.ErrOrStderr(), "Tree exported to %s\n", flagOut)
	return nil
}
