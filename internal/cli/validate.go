package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/openelearn/scormpack/internal/archive"
	"github.com/openelearn/scormpack/internal/manifest"
	"github.com/openelearn/scormpack/internal/sequencing"
	"github.com/openelearn/scormpack/internal/tui"
	"github.com/openelearn/scormpack/pkg/scormpack"
)

var validateCmd = &cobra.Command{
	Use:   "validate <archive.zip | imsmanifest.xml>",
	Short: "Validate a SCORM manifest without packaging",
	Long: `Validate checks the structure of a SCORM manifest and reports every
defect found, not just the first. The argument is either a package
archive (the manifest is read from it) or a bare imsmanifest.xml.

With --sequencing the SCORM 2004 sequencing declarations are checked as
well; sequencing warnings never affect the exit code, sequencing errors
do only in this standalone command.

Examples:
  scormpack validate course.zip
  scormpack validate imsmanifest.xml --sequencing`,
	Args: cobra.ExactArgs(1),
	RunE: runValidate,
}

var validateSequencing bool

func init() {
	rootCmd.AddCommand(validateCmd)
	validateCmd.Flags().BoolVar(&validateSequencing, "sequencing", false, "Also check SCORM 2004 sequencing declarations")
}

func runValidate(cmd *cobra.Command, args []string) error {
	manifestText, err := loadManifestText(args[0])
	if err != nil {
		return err
	}

	result := manifest.Validate(manifestText)
	printValidation(result)

	failed := !result.Valid

	if validateSequencing {
		seq := sequencing.Validate(manifestText)
		printSequencing(seq)
		failed = failed || !seq.Valid
	}

	if failed {
		return fmt.Errorf("%w", scormpack.ErrValidationFailed)
	}
	return nil
}

// loadManifestText reads the manifest either from a bare XML file or
// out of a package archive.
func loadManifestText(path string) (string, error) {
	if strings.HasSuffix(strings.ToLower(path), ".xml") {
		data, err := os.ReadFile(path)
		if err != nil {
			return "", err
		}
		return string(data), nil
	}

	blob, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	reader, err := archive.Open(blob)
	if err != nil {
		return "", err
	}
	return reader.Manifest()
}

func printValidation(result scormpack.ValidationResult) {
	if result.Valid {
		fmt.Println(tui.SuccessStyle.Render("Manifest is valid"))
		return
	}
	fmt.Println(tui.ErrorStyle.Render(fmt.Sprintf("Manifest has %d defect(s):", len(result.Errors))))
	for i, msg := range result.Errors {
		fmt.Printf("  %d. %s\n", i+1, msg)
	}
}

func printSequencing(result scormpack.SequencingResult) {
	for _, msg := range result.Errors {
		fmt.Printf("  %s %s\n", tui.ErrorStyle.Render("sequencing error:"), msg)
	}
	for _, msg := range result.Warnings {
		fmt.Printf("  %s %s\n", tui.WarningStyle.Render("sequencing warning:"), msg)
	}
	if result.Valid && len(result.Warnings) == 0 {
		fmt.Println(tui.SuccessStyle.Render("Sequencing is clean"))
	}
}
