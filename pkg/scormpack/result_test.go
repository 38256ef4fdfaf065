package scormpack

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidationResult_AddError(t *testing.T) {
	result := ValidationResult{Valid: true}
	result.AddError("missing %s", "organizations")
	result.AddError("dangling reference %q", "RES-9")

	assert.False(t, result.Valid)
	assert.True(t, result.HasErrors())
	assert.Equal(t, `missing organizations, dangling reference "RES-9"`, result.ErrorString())
}

func TestValidationResult_Empty(t *testing.T) {
	result := ValidationResult{Valid: true}
	assert.False(t, result.HasErrors())
	assert.Equal(t, "", result.ErrorString())
}

func TestSequencingResult_WarningsKeepValid(t *testing.T) {
	result := SequencingResult{Valid: true}
	result.AddWarning("choice without flow")
	assert.True(t, result.Valid)

	result.AddError("attemptLimit 0")
	assert.False(t, result.Valid)
}

func TestSequencingResult_Diagnostics(t *testing.T) {
	result := SequencingResult{Valid: true}
	result.AddError("bad limit")
	result.AddWarning("loose rule")

	diags := result.Diagnostics("sequencing")
	assert.Equal(t, []Diagnostic{
		{Severity: SeverityError, Source: "sequencing", Message: "bad limit"},
		{Severity: SeverityWarning, Source: "sequencing", Message: "loose rule"},
	}, diags)
}

func TestSequencingResult_NoDiagnostics(t *testing.T) {
	result := SequencingResult{Valid: true}
	assert.Empty(t, result.Diagnostics("sequencing"))
}
