// Package checksum provides content digests for package blobs.
//
// The digest recorded on a PackageRecord lets the calling application
// detect byte-identical re-uploads without keeping the blob around.
//
// SHA256 is safe for concurrent use by multiple goroutines.
package checksum
