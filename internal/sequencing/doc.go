// Package sequencing checks SCORM 2004 sequencing declarations.
//
// Sequencing is optional: a manifest without <sequencing> subtrees
// passes with an all-clear result. When subtrees exist, each one is
// first collected into a typed scormpack.SequencingInfo and then
// checked, producing errors (blocking for a standalone validation call)
// and warnings (always advisory).
//
// The packager deliberately never aborts on sequencing errors; they are
// logged and attached to the PackageRecord's processing log. Packages
// with questionable sequencing still play in most runtimes, and
// rejecting them would break real-world content.
package sequencing
