package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/openelearn/scormpack/internal/content"
	"github.com/openelearn/scormpack/internal/logging"
	"github.com/openelearn/scormpack/internal/tui"
)

var inspectCmd = &cobra.Command{
	Use:   "inspect <archive.zip>",
	Short: "Show the organization and resource structure of a package",
	Long: `Inspect extracts a package without validating it and prints the
organization trees and resources, including every resolved file with
its MIME type and size.

With --interactive (and a terminal) the structure opens in a scrollable
full-screen browser.

Examples:
  scormpack inspect course.zip
  scormpack inspect course.zip --interactive`,
	Args: cobra.ExactArgs(1),
	RunE: runInspect,
}

var inspectInteractive bool

func init() {
	rootCmd.AddCommand(inspectCmd)
	inspectCmd.Flags().BoolVarP(&inspectInteractive, "interactive", "i", false, "Browse the structure in a full-screen viewer")
}

func runInspect(cmd *cobra.Command, args []string) error {
	logger := logging.NewConsoleLogger(getVerboseFlag(cmd))

	cfg, err := loadProjectConfig(logger)
	if err != nil {
		return err
	}

	blob, err := readArchive(args[0], cfg)
	if err != nil {
		return err
	}

	extractor := content.New(
		content.WithLogger(logger),
		content.WithMimeOverrides(mimeOverrides(cfg)),
	)
	cnt, err := extractor.Extract(blob)
	if err != nil {
		return err
	}

	rendered := tui.RenderContent(cnt)

	if inspectInteractive && term.IsTerminal(int(os.Stdout.Fd())) {
		return tui.Browse(filepath.Base(args[0]), rendered)
	}

	fmt.Print(rendered)
	return nil
}
