package identity

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestCourseID_Deterministic(t *testing.T) {
	first := CourseID("com.example.course")
	second := CourseID("com.example.course")
	assert.Equal(t, first, second)
	assert.NotEqual(t, uuid.Nil, first)
}

func TestCourseID_NormalizesCaseAndWhitespace(t *testing.T) {
	assert.Equal(t, CourseID("com.example.course"), CourseID("  COM.Example.Course "))
}

func TestCourseID_DistinctIdentifiersDiffer(t *testing.T) {
	assert.NotEqual(t, CourseID("course-a"), CourseID("course-b"))
}

func TestCourseID_EmptyIdentifierStillValid(t *testing.T) {
	id := CourseID("")
	assert.NotEqual(t, uuid.Nil, id)
	assert.Equal(t, id, CourseID("   "))
}
