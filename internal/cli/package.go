package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/openelearn/scormpack/internal/content"
	"github.com/openelearn/scormpack/internal/logging"
	"github.com/openelearn/scormpack/internal/packager"
	"github.com/openelearn/scormpack/internal/tui"
	"github.com/openelearn/scormpack/pkg/scormpack"
)

var packageCmd = &cobra.Command{
	Use:   "package <archive.zip>",
	Short: "Process a SCORM package archive into a package record",
	Long: `Package runs the full ingestion pipeline on a SCORM archive:

1. Opens the zip archive and locates imsmanifest.xml
2. Extracts organizations, resources and LOM metadata
3. Validates the manifest structure (all defects reported at once)
4. Checks SCORM 2004 sequencing declarations (advisory only)
5. Emits the package record with total content size and checksum

Sequencing defects never fail packaging; they are attached to the
record's processing log. Structural manifest defects always do.

Examples:
  # Process as SCORM 2004 (the default)
  scormpack package course.zip

  # Process as SCORM 1.2
  scormpack package course.zip --scorm-version 1.2

  # Emit the record as JSON for the calling application
  scormpack package course.zip --json`,
	Args: cobra.ExactArgs(1),
	RunE: runPackage,
}

type packageFlagValues struct {
	scormVersion string
	jsonOutput   bool
}

var packageFlags packageFlagValues

func init() {
	rootCmd.AddCommand(packageCmd)
	packageCmd.Flags().StringVar(&packageFlags.scormVersion, "scorm-version", "", `SCORM version to process as: "1.2" or "2004" (default from config)`)
	packageCmd.Flags().BoolVar(&packageFlags.jsonOutput, "json", false, "Print the package record as JSON on stdout")
}

func runPackage(cmd *cobra.Command, args []string) error {
	verbose := getVerboseFlag(cmd)
	logger := logging.NewConsoleLogger(verbose)

	cfg, err := loadProjectConfig(logger)
	if err != nil {
		return err
	}

	blob, err := readArchive(args[0], cfg)
	if err != nil {
		return err
	}

	version := packageFlags.scormVersion
	if version == "" {
		version = cfg.Version()
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	extractor := content.New(
		content.WithLogger(logger),
		content.WithMimeOverrides(mimeOverrides(cfg)),
	)
	assembler := packager.New(
		packager.WithLogger(logger),
		packager.WithExtractor(extractor),
	)

	record, err := assembler.Package(ctx, blob, version)
	if err != nil {
		return err
	}

	if packageFlags.jsonOutput {
		out, err := json.MarshalIndent(record, "", "  ")
		if err != nil {
			return err
		}
		fmt.Println(string(out))
		return nil
	}

	printRecord(record)
	return nil
}

func printRecord(record *scormpack.PackageRecord) {
	fmt.Println(tui.TitleStyle.Render("Package processed"))
	fmt.Printf("%s %s\n", tui.LabelStyle.Render("Record ID:"), record.ID)
	fmt.Printf("%s %s\n", tui.LabelStyle.Render("Course ID:"), record.CourseID)
	fmt.Printf("%s SCORM %s\n", tui.LabelStyle.Render("Version:  "), record.Version)
	fmt.Printf("%s %d bytes\n", tui.LabelStyle.Render("Size:     "), record.Size)
	fmt.Printf("%s %s\n", tui.LabelStyle.Render("Checksum: "), record.Checksum)
	fmt.Printf("%s %s\n", tui.LabelStyle.Render("Created:  "), record.CreatedAt.Format("2006-01-02 15:04:05 MST"))

	if len(record.Diagnostics) == 0 {
		fmt.Println(tui.SuccessStyle.Render("No sequencing diagnostics"))
		return
	}
	fmt.Println(tui.SubtitleStyle.Render("Sequencing diagnostics:"))
	for _, d := range record.Diagnostics {
		style := tui.WarningStyle
		if d.Severity == scormpack.SeverityError {
			style = tui.ErrorStyle
		}
		fmt.Printf("  %s %s\n", style.Render(string(d.Severity)+":"), d.Message)
	}
}
