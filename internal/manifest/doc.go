// Package manifest validates the structure of a SCORM imsmanifest.xml.
//
// Validation is result-based, never panic- or error-based: data-quality
// defects accumulate into a scormpack.ValidationResult and every check
// runs, so a caller sees the complete defect list in one pass. Only two
// conditions end validation early, because nothing after them could be
// checked: unparsable XML and a root element that is not <manifest>.
//
// The checks, in order:
//
//  1. Root element is <manifest>.
//  2. Root carries non-empty identifier and version attributes.
//  3. <organizations> exists and its default attribute names a declared
//     <organization>.
//  4. <resources> exists; every <resource> carries identifier and type,
//     and type="webcontent" resources also carry href.
//  5. Every item identifierref anywhere in the document resolves to a
//     declared resource identifier (searched globally, to tolerate
//     nested or duplicated declarations).
package manifest
