package cmd

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"foldertree/internal/clipboard"
	"foldertree/internal/scanner"
)

var flagCopy bool

var scanCmd = &cobra.Command{
	Use:   "scan [folder]",
	Short: "Scan a folder and print its tree",
	Args:  cobra.ExactArgs(1),
	RunE:  runScan,
}

func init() {
	addScanFlags(scanCmd)
	scanCmd.Flags().BoolVar(&flagCopy, "copy", false, "copy the tree to the clipboard")
	rootCmd.AddCommand(scanCmd)
}

func runScan(cmd *cobra.Command, args []string) error {
	opts, err := scanOptions()
	if err != nil {
		return err
	}

	var result *scanner.Result
	var lastStatus string
	folderScanner := scanner.NewFolderScanner(
		func(r *scanner.Result) { result = r },
		func(status string) { lastStatus = status },
	)

	folderScanner.Scan(args[0], opts)
	folderScanner.Wait()

	if result == nil {
		// Status messages already carry an "Error: " prefix; cobra adds
		// its own when printing the returned error.
		return errors.New(strings.TrimPrefix(lastStatus, "Error: "))
	}

	report := result.Report()
	fmt.Fprintln(cmd.OutOrStdout(), report)
	fmt.Fprintln(cmd.ErrOrStderr(), lastStatus)

	if flagCopy {
		if err := clipboard.NewSystemClipboardManager().SetContent(report); err != nil {
			return fmt.Errorf("copy to clipboard: %w", err)
		}
	}
	return nil
}
