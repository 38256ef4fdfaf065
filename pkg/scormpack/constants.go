package scormpack

// Exit codes for semantic error classification.
// These follow Unix/GNU conventions:
//   - 0: Success
//   - 1: General error
//   - 2: CLI usage error (misuse of command line)
//   - 3+: Application-specific errors
const (
	ExitSuccess           = 0  // Packaging/validation completed successfully
	ExitGeneralError      = 1  // Unknown or unclassified error
	ExitUsageError        = 2  // CLI usage error (missing args, invalid flags)
	ExitPanic             = 3  // Internal panic (unexpected crash)
	ExitConfigError       = 10 // Invalid configuration or parameters
	ExitInvalidArchive    = 11 // Input is not a valid zip archive
	ExitManifestMissing   = 12 // imsmanifest.xml absent from the archive
	ExitMalformedManifest = 13 // Manifest is not well-formed XML
	ExitValidationFailed  = 14 // Manifest has structural defects
)

// SCORM version tags accepted by the packager.
const (
	Version12   = "1.2"
	Version2004 = "2004"
)

// ManifestFileName is the fixed, well-known control document every SCORM
// package must carry at the archive root.
const ManifestFileName = "imsmanifest.xml"

const (
	// DefaultMaxArchiveSize is the archive size limit applied by the CLI
	// before handing the blob to the engine. Overridable via scormpack.yaml.
	DefaultMaxArchiveSize = 512 * 1024 * 1024

	// MaxErrorPreviewLength is the maximum number of characters shown when
	// previewing manifest text in error messages.
	MaxErrorPreviewLength = 200
)

// SupportedVersion reports whether v is a SCORM version tag this engine
// can process.
func SupportedVersion(v string) bool {
	return v == Version12 || v == Version2004
}
