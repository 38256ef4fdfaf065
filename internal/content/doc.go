// Package content turns a package archive into the in-memory Content
// model: the organization trees, the resources with their resolved
// files, and the extracted LOM metadata.
//
// One leniency is deliberate and load-bearing: a file the manifest
// declares but the archive does not contain is skipped silently, not
// reported. Real-world packages routinely ship stale manifests, and an
// LMS that rejects them over a missing asset rejects working content.
// The manifest validator handles everything that is actually structural.
package content
