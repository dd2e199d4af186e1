package models

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestEnrollmentNormalizeDerivesCourseName(t *testing.T) {
	e := Enrollment{CourseCode: CourseAI202, Section: SectionC, Instructor: "X"}
	e.Normalize()

	assert.Equal(t, "DACA Cloud-First Agentic AI Development", e.CourseName)
	assert.NotEqual(t, uuid.Nil, e.ID)
	assert.NotNil(t, e.Schedule)
	assert.NotNil(t, e.Todos)
	assert.NotNil(t, e.CoveredTopics)
}

func TestEnrollmentNormalizeKeepsExistingValues(t *testing.T) {
	id := uuid.New()
	todoID := uuid.New()
	e := Enrollment{
		ID:         id,
		CourseCode: CourseAI101,
		CourseName: "Custom",
		Todos:      []Todo{{ID: todoID, Description: "a"}, {Description: "b"}},
	}
	e.Normalize()

	assert.Equal(t, id, e.ID)
	assert.Equal(t, "Custom", e.CourseName)
	assert.Equal(t, todoID, e.Todos[0].ID)
	assert.NotEqual(t, uuid.Nil, e.Todos[1].ID)
}

func TestCourseCodeTitle(t *testing.T) {
	for _, code := range CourseCodes() {
		assert.NotEmpty(t, code.Title(), string(code))
	}
	assert.Empty(t, CourseCode("CS-999").Title())
}
