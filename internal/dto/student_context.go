package dto

import "github.com/noah-isme/student-context-mcp/internal/models"

// StudentProfile is the payload of the student profile resource.
type StudentProfile struct {
	Student    models.Student    `json:"student"`
	Enrollment models.Enrollment `json:"enrollment"`
}

// ClassSchedule lists the weekly sessions of one course section.
type ClassSchedule struct {
	CourseCode models.CourseCode      `json:"course_code"`
	Section    models.Section         `json:"section"`
	Schedule   []models.ClassSchedule `json:"schedule"`
}

// NextClass describes the upcoming session of a course section.
// NextClassTime is RFC 3339.
type NextClass struct {
	CourseCode    models.CourseCode `json:"course_code"`
	Section       models.Section    `json:"section"`
	NextClassTime string            `json:"next_class_time"`
	Instructor    string            `json:"instructor"`
}

// CoveredTopics reports the progress of a student's course.
type CoveredTopics struct {
	StudentID     string            `json:"student_id"`
	CourseCode    models.CourseCode `json:"course_code"`
	CourseName    string            `json:"course_name"`
	Instructor    string            `json:"instructor"`
	CoveredTopics []string          `json:"covered_topics"`
}

// CallRequest is the body of a named operation call on the JSON surface.
type CallRequest struct {
	Name      string         `json:"name" binding:"required"`
	Arguments map[string]any `json:"arguments"`
}
