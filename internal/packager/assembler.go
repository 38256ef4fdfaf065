package packager

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/openelearn/scormpack/internal/checksum"
	"github.com/openelearn/scormpack/internal/content"
	"github.com/openelearn/scormpack/internal/identity"
	"github.com/openelearn/scormpack/internal/logging"
	"github.com/openelearn/scormpack/internal/manifest"
	"github.com/openelearn/scormpack/internal/sequencing"
	"github.com/openelearn/scormpack/internal/xmldoc"
	"github.com/openelearn/scormpack/pkg/scormpack"
)

// Option configures an Assembler.
type Option func(*Assembler)

// WithLogger sets the logger for pipeline progress and sequencing
// diagnostics. Defaults to the null logger.
func WithLogger(logger scormpack.Logger) Option {
	return func(a *Assembler) {
		a.logger = logger
	}
}

// WithExtractor replaces the default content extractor, e.g. to apply
// MIME overrides from project configuration.
func WithExtractor(extractor *content.Extractor) Option {
	return func(a *Assembler) {
		a.extractor = extractor
	}
}

// WithClock replaces the record timestamp source. Test hook.
func WithClock(now func() time.Time) Option {
	return func(a *Assembler) {
		a.now = now
	}
}

// WithIDGenerator replaces the record ID source. Test hook.
func WithIDGenerator(newID func() uuid.UUID) Option {
	return func(a *Assembler) {
		a.newID = newID
	}
}

// Assembler runs the packaging pipeline. Create one with New; the zero
// value is not usable.
type Assembler struct {
	extractor *content.Extractor
	digest    checksum.Calculator
	logger    scormpack.Logger
	now       func() time.Time
	newID     func() uuid.UUID
}

// New creates an Assembler ready for concurrent use.
func New(opts ...Option) *Assembler {
	a := &Assembler{
		extractor: content.New(),
		digest:    checksum.New(),
		logger:    logging.NewNullLogger(),
		now:       time.Now,
		newID:     uuid.New,
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Package processes one archive blob end-to-end and returns its
// PackageRecord. version is Version12 or Version2004; empty defaults to
// Version2004.
//
// Structural failures (invalid archive, missing manifest, malformed XML,
// validation defects) fail the call with a single wrapped error carrying
// every known defect. Sequencing defects and metadata extraction
// problems never fail the call.
func (a *Assembler) Package(ctx context.Context, blob []byte, version string) (*scormpack.PackageRecord, error) {
	if version == "" {
		version = scormpack.Version2004
	}
	if !scormpack.SupportedVersion(version) {
		return nil, fmt.Errorf("packaging failed: %w: %q", scormpack.ErrUnsupportedVersion, version)
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	a.logger.Verbose("packaging %d byte archive as SCORM %s", len(blob), version)

	cnt, err := a.extractor.Extract(blob)
	if err != nil {
		return nil, fmt.Errorf("packaging failed: %w", err)
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	validation := manifest.Validate(cnt.Manifest)
	if !validation.Valid {
		return nil, fmt.Errorf("packaging failed: %w: %s",
			scormpack.ErrValidationFailed, validation.ErrorString())
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var diagnostics []scormpack.Diagnostic
	if version == scormpack.Version2004 {
		seq := sequencing.Validate(cnt.Manifest)
		for _, msg := range seq.Errors {
			a.logger.Error("sequencing: %s", msg)
		}
		for _, msg := range seq.Warnings {
			a.logger.Warn("sequencing: %s", msg)
		}
		// Sequencing defects are advisory: recorded, never fatal.
		diagnostics = seq.Diagnostics("sequencing")
	}

	record := &scormpack.PackageRecord{
		ID:          a.newID(),
		CourseID:    identity.CourseID(manifestIdentifier(cnt.Manifest)),
		Version:     version,
		Manifest:    cnt.Manifest,
		Size:        totalSize(cnt),
		Checksum:    a.digest.Sum(blob),
		CreatedAt:   a.now().UTC(),
		Diagnostics: diagnostics,
	}

	a.logger.Info("packaged course %s: %d organizations, %d resources, %d bytes",
		record.CourseID, len(cnt.Organizations), len(cnt.Resources), record.Size)
	return record, nil
}

// totalSize sums the byte length of every file across every resource.
func totalSize(cnt *scormpack.Content) int64 {
	var size int64
	for _, res := range cnt.Resources {
		for _, f := range res.Files {
			size += int64(len(f.Content))
		}
	}
	return size
}

// manifestIdentifier reads the root identifier attribute. The manifest
// has already passed validation here, so parse failures cannot occur;
// the empty-string fallback only guards the impossible.
func manifestIdentifier(manifestText string) string {
	root, err := xmldoc.Parse(manifestText)
	if err != nil {
		return ""
	}
	return xmldoc.Attr(root, "identifier")
}
