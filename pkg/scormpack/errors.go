package scormpack

import (
	"errors"
)

// Sentinel errors for common failure scenarios.
// These enable callers to distinguish error types using errors.Is().
//
// Example usage:
//
//	record, err := assembler.Package(ctx, blob, scormpack.Version2004)
//	if errors.Is(err, scormpack.ErrValidationFailed) {
//	    // Reject the upload with the full defect list
//	}
var (
	// ErrInvalidArchive indicates the input blob is not a valid zip archive.
	ErrInvalidArchive = errors.New("invalid archive")

	// ErrManifestMissing indicates the archive contains no imsmanifest.xml.
	ErrManifestMissing = errors.New("imsmanifest.xml not found")

	// ErrMalformedManifest indicates the manifest is not well-formed XML.
	ErrMalformedManifest = errors.New("malformed manifest")

	// ErrValidationFailed indicates the manifest has structural defects.
	// The wrapping error message carries every defect, comma-joined.
	ErrValidationFailed = errors.New("manifest validation failed")

	// ErrUnsupportedVersion indicates a SCORM version other than
	// Version12 or Version2004 was requested.
	ErrUnsupportedVersion = errors.New("unsupported SCORM version")

	// ErrInvalidConfig indicates the provided configuration is invalid.
	ErrInvalidConfig = errors.New("invalid configuration")

	// ErrArchiveTooLarge indicates the archive exceeds the configured
	// size limit. Only the CLI guard produces this; the engine itself
	// imposes no limit.
	ErrArchiveTooLarge = errors.New("archive exceeds size limit")
)

// ExitCodeForError returns the appropriate exit code for an error.
// Returns ExitSuccess (0) for nil errors, semantic codes for known errors,
// and ExitGeneralError (1) for unclassified errors.
func ExitCodeForError(err error) int {
	if err == nil {
		return ExitSuccess
	}

	switch {
	case errors.Is(err, ErrInvalidConfig):
		return ExitConfigError
	case errors.Is(err, ErrArchiveTooLarge):
		return ExitConfigError
	case errors.Is(err, ErrInvalidArchive):
		return ExitInvalidArchive
	case errors.Is(err, ErrManifestMissing):
		return ExitManifestMissing
	case errors.Is(err, ErrMalformedManifest):
		return ExitMalformedManifest
	case errors.Is(err, ErrValidationFailed):
		return ExitValidationFailed
	case errors.Is(err, ErrUnsupportedVersion):
		return ExitUsageError
	}

	return ExitGeneralError
}
