package models

import (
	"time"

	"github.com/google/uuid"
)

// Enrollment captures a course section together with its progress data.
type Enrollment struct {
	ID               uuid.UUID       `json:"id"`
	CourseCode       CourseCode      `json:"course_code" validate:"required,oneof=AI-101 AI-201 AI-202 AI-301"`
	Section          Section         `json:"section" validate:"required,oneof=A B C"`
	CourseName       string          `json:"course_name"`
	Instructor       string          `json:"instructor" validate:"required"`
	Schedule         []ClassSchedule `json:"schedule" validate:"dive"`
	LastClassDate    *time.Time      `json:"last_class_date"`
	LastClassCovered string          `json:"last_class_covered" validate:"required"`
	Todos            []Todo          `json:"todos" validate:"dive"`
	CoveredTopics    []string        `json:"covered_topics"`
	NextClassTime    *time.Time      `json:"next_class_time"`
}

// Normalize fills derived and defaulted fields. It runs once when the
// enrollment enters the store.
func (e *Enrollment) Normalize() {
	if e.ID == uuid.Nil {
		e.ID = uuid.New()
	}
	if e.CourseName == "" {
		e.CourseName = e.CourseCode.Title()
	}
	if e.Schedule == nil {
		e.Schedule = []ClassSchedule{}
	}
	if e.Todos == nil {
		e.Todos = []Todo{}
	}
	for i := range e.Todos {
		if e.Todos[i].ID == uuid.Nil {
			e.Todos[i].ID = uuid.New()
		}
	}
	if e.CoveredTopics == nil {
		e.CoveredTopics = []string{}
	}
}
