// Package packager orchestrates the ingestion pipeline: archive reading,
// content extraction, manifest validation, metadata extraction, the
// optional 2004 sequencing check, and size aggregation into one
// PackageRecord.
//
// The Assembler is the only boundary that turns internal failures into
// an externally visible error, and it reports structural defects as one
// message carrying the complete defect list. Sequencing defects never
// abort packaging; they land in the record's processing log instead.
//
// An Assembler holds no per-call state, so one instance may serve any
// number of concurrent Package calls.
package packager
