// Package lom extracts Learning Object Metadata from a manifest.
//
// Extraction is best-effort by contract: every field is looked up
// independently and a missing nested element leaves that one field
// empty instead of aborting the rest. The extractor never fails the
// packaging pipeline; unparsable XML is logged and yields an empty
// Metadata value.
//
// The element-name differences between the SCORM 1.2 (imsmd, all
// lowercase) and 2004 (lom, camelCase) bindings are absorbed here:
// lookups try both spellings, and text is resolved through the
// <langstring>/<string> wrappers either binding may use.
package lom
