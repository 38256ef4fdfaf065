package scormpack

import (
	"time"

	"github.com/google/uuid"
)

// PackageRecord is the final output of a successful packaging call.
// It is created once per Package invocation and never mutated afterward;
// the calling application (the LMS persistence layer) owns it from then on.
type PackageRecord struct {
	// ID uniquely identifies this ingestion of the package.
	ID uuid.UUID

	// CourseID is a deterministic identity derived from the manifest
	// identifier. Re-ingesting the same course yields the same CourseID.
	CourseID uuid.UUID

	// Version is the SCORM version the package was processed as:
	// Version12 or Version2004.
	Version string

	// Manifest holds the raw imsmanifest.xml text as read from the archive.
	Manifest string

	// Size is the total byte length of every resource file extracted
	// from the archive.
	Size int64

	// Checksum is the hex-encoded SHA-256 digest of the archive blob.
	Checksum string

	// CreatedAt is the UTC timestamp of record creation.
	CreatedAt time.Time

	// Diagnostics is the processing log: advisory sequencing errors and
	// warnings collected during packaging. Structural manifest defects
	// never appear here; those fail the call instead.
	Diagnostics []Diagnostic
}

// Diagnostic is one structured entry in a PackageRecord's processing log.
type Diagnostic struct {
	Severity Severity
	Source   string // component that produced the entry, e.g. "sequencing"
	Message  string
}

// Severity classifies a Diagnostic.
type Severity string

const (
	SeverityWarning Severity = "warning"
	SeverityError   Severity = "error"
)

// Content is the intermediate, in-memory result of extracting a package.
// It lives only for the duration of one packaging call and is not
// persisted directly.
type Content struct {
	// Manifest holds the raw manifest text.
	Manifest string

	// Organizations are the declared course outlines, in document order.
	Organizations []Organization

	// Resources are the declared content bundles, in document order.
	Resources []Resource

	// Metadata is the extracted LOM metadata. Always present; empty when
	// the manifest carries no metadata subtree.
	Metadata Metadata
}

// Organization is one declared navigable structure (outline) of a course.
type Organization struct {
	Identifier string
	Title      string
	Items      []Item
}

// Item is a node in an Organization's tree. Items nest to arbitrary
// depth; the parent owns its children by value.
type Item struct {
	Identifier string
	Title      string

	// ResourceID is the identifierref attribute: the identifier of the
	// Resource this item launches, or empty for structural nodes.
	ResourceID string

	// Prerequisites is the SCORM 1.2 prerequisites expression, if any.
	Prerequisites string

	// TimeLimit is the raw maxtimeallowed value, if any.
	TimeLimit string

	// MasteryScore is the raw masteryscore value, if any.
	MasteryScore string

	Children []Item
}

// Resource is a declared bundle of files implementing one piece of content.
type Resource struct {
	Identifier string

	// Type is the declared resource type, typically "webcontent".
	Type string

	// Href is the entry point within the package, when declared.
	Href string

	// Files are the archive entries this resource declared and that were
	// actually present in the archive. Entries declared in the manifest
	// but missing from the archive are skipped, not errored.
	Files []File

	// Dependencies lists identifiers of other resources this one depends on.
	Dependencies []string
}

// File is one resolved archive entry belonging to a Resource.
type File struct {
	// Href is the entry's path relative to the archive root.
	Href string

	// Content is the raw file bytes as stored in the archive.
	Content []byte

	// MimeType is inferred from the file extension; unknown extensions
	// map to application/octet-stream.
	MimeType string
}

// Metadata is the LOM (Learning Object Metadata) record extracted from a
// manifest. Every field is optional; a manifest without metadata yields
// the zero value.
type Metadata struct {
	General     *GeneralMetadata
	Lifecycle   *LifecycleMetadata
	Technical   *TechnicalMetadata
	Educational *EducationalMetadata
}

// GeneralMetadata maps the LOM "general" category.
type GeneralMetadata struct {
	Identifier       string
	Title            string
	Language         string
	Description      string
	Keywords         []string
	Coverage         string
	AggregationLevel string
}

// LifecycleMetadata maps the LOM "lifecycle" category.
type LifecycleMetadata struct {
	Version      string
	Status       string
	Contributors []Contributor
}

// Contributor is one lifecycle contribute entry.
type Contributor struct {
	Role   string
	Entity string
	Date   string
}

// TechnicalMetadata maps the LOM "technical" category.
type TechnicalMetadata struct {
	Formats  []string
	Size     string
	Location string
	Duration string
}

// EducationalMetadata maps the LOM "educational" category.
type EducationalMetadata struct {
	InteractivityType    string
	InteractivityLevel   string
	LearningResourceType string
	Difficulty           string
	TypicalLearningTime  string
	Language             string
}

// SequencingInfo captures one sequencing subtree's declarations, attached
// to whichever organization or item declared it. It feeds the SCORM 2004
// sequencing checks and never blocks basic 1.2 packaging.
type SequencingInfo struct {
	// Owner is the identifier of the organization or item the sequencing
	// element belongs to, or empty when the parent has no identifier.
	Owner string

	ControlMode *ControlMode
	Rules       []SequencingRule
	Limits      *LimitConditions
}

// ControlMode holds the navigation control flags of a sequencing subtree.
type ControlMode struct {
	Choice      bool
	Flow        bool
	ForwardOnly bool
}

// SequencingRule is one declared rule: its conditions plus the action
// taken when they hold.
type SequencingRule struct {
	Conditions []string
	Action     string
}

// LimitConditions holds attempt and duration limits of a sequencing subtree.
type LimitConditions struct {
	// AttemptLimit is the declared attempt limit; nil when absent or
	// unparsable. A value <= 0 is a sequencing error.
	AttemptLimit *int

	// AttemptAbsoluteDurationLimit is the raw duration limit, if declared.
	AttemptAbsoluteDurationLimit string
}
