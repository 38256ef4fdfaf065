// Package xmldoc wraps the etree element tree with local-name lookups.
//
// Real-world manifests disagree wildly on namespace declarations: the
// same element arrives as <adlcp:prerequisites>, <prerequisites> or
// under a default namespace, depending on the authoring tool. Every
// helper in this package therefore matches elements and attributes by
// local name only and ignores prefixes.
//
// All lookups are total: a missing element or attribute yields nil or
// the empty string, never a panic. The only failure mode is Parse on
// malformed XML.
package xmldoc
