package models

import "time"

// CurrentTopic is the topic a course is covering right now.
type CurrentTopic struct {
	CourseCode CourseCode `json:"course_code" validate:"required,oneof=AI-101 AI-201 AI-202 AI-301"`
	Topic      string     `json:"topic" validate:"required,min=1"`
	StartDate  *time.Time `json:"start_date"`
}
