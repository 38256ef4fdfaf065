// Package archive provides read-only access to a SCORM package archive.
//
// A package arrives as one binary blob containing a zip archive. The
// Reader opens the blob fully in memory and exposes named-entry lookup:
// entry names are matched case-insensitively and tolerate a single
// top-level wrapping directory, since real-world exports frequently zip
// the package folder instead of its contents.
//
// The Reader is purely functional over its input bytes: it never writes,
// holds no state beyond the parsed central directory, and is safe for
// concurrent reads.
package archive
