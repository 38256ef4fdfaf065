package scormpack

import (
	"fmt"
	"strings"
)

// ValidationResult contains the outcome of manifest validation.
// If Valid is false, Errors contains every structural defect found;
// validation never stops at the first one.
type ValidationResult struct {
	Valid  bool
	Errors []string
}

// AddError appends an error message to the validation result and marks it
// as invalid.
func (v *ValidationResult) AddError(format string, args ...interface{}) {
	v.Valid = false
	v.Errors = append(v.Errors, fmt.Sprintf(format, args...))
}

// HasErrors returns true if the validation result contains errors.
func (v *ValidationResult) HasErrors() bool {
	return len(v.Errors) > 0
}

// ErrorString returns all validation errors joined with commas.
// Returns empty string if no errors.
func (v *ValidationResult) ErrorString() string {
	return strings.Join(v.Errors, ", ")
}

// SequencingResult contains the outcome of SCORM 2004 sequencing
// validation. Warnings never affect Valid.
type SequencingResult struct {
	Valid    bool
	Errors   []string
	Warnings []string
}

// AddError appends an error message and marks the result invalid.
func (s *SequencingResult) AddError(format string, args ...interface{}) {
	s.Valid = false
	s.Errors = append(s.Errors, fmt.Sprintf(format, args...))
}

// AddWarning appends a warning message. Warnings are advisory and leave
// Valid untouched.
func (s *SequencingResult) AddWarning(format string, args ...interface{}) {
	s.Warnings = append(s.Warnings, fmt.Sprintf(format, args...))
}

// Diagnostics converts the result into processing-log entries with the
// given source label.
func (s *SequencingResult) Diagnostics(source string) []Diagnostic {
	out := make([]Diagnostic, 0, len(s.Errors)+len(s.Warnings))
	for _, msg := range s.Errors {
		out = append(out, Diagnostic{Severity: SeverityError, Source: source, Message: msg})
	}
	for _, msg := range s.Warnings {
		out = append(out, Diagnostic{Severity: SeverityWarning, Source: source, Message: msg})
	}
	return out
}
