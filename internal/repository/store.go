package repository

import (
	"fmt"

	"github.com/go-playground/validator/v10"

	"github.com/noah-isme/student-context-mcp/internal/models"
)

// Seed carries the rows a Store is populated with.
type Seed struct {
	Students    []models.Student
	Enrollments []models.Enrollment
	Topics      []models.CurrentTopic
}

// Store holds the students, enrollments and current-topics tables. It is
// populated once by NewStore and read-only afterwards, so concurrent lookups
// need no locking. Every lookup is a linear scan where the first match in
// insertion order wins.
type Store struct {
	students    []models.Student
	enrollments []models.Enrollment
	topics      []models.CurrentTopic
}

// NewStore validates and normalises the seed and takes ownership of a copy.
func NewStore(seed Seed, validate *validator.Validate) (*Store, error) {
	if validate == nil {
		validate = models.NewValidator()
	}

	s := &Store{
		students:    make([]models.Student, 0, len(seed.Students)),
		enrollments: make([]models.Enrollment, 0, len(seed.Enrollments)),
		topics:      make([]models.CurrentTopic, 0, len(seed.Topics)),
	}

	seen := make(map[string]struct{}, len(seed.Students))
	for i, student := range seed.Students {
		if err := validate.Struct(student); err != nil {
			return nil, fmt.Errorf("student %d: %w", i, err)
		}
		if _, dup := seen[student.ID]; dup {
			return nil, fmt.Errorf("student %d: duplicate id %q", i, student.ID)
		}
		seen[student.ID] = struct{}{}
		s.students = append(s.students, student)
	}

	for i, enrollment := range seed.Enrollments {
		enrollment.Schedule = append([]models.ClassSchedule(nil), enrollment.Schedule...)
		enrollment.Todos = append([]models.Todo(nil), enrollment.Todos...)
		enrollment.CoveredTopics = append([]string(nil), enrollment.CoveredTopics...)
		enrollment.Normalize()
		if err := validate.Struct(enrollment); err != nil {
			return nil, fmt.Errorf("enrollment %d: %w", i, err)
		}
		s.enrollments = append(s.enrollments, enrollment)
	}

	for i, topic := range seed.Topics {
		if err := validate.Struct(topic); err != nil {
			return nil, fmt.Errorf("topic %d: %w", i, err)
		}
		s.topics = append(s.topics, topic)
	}

	return s, nil
}

// FindStudent returns the student with the given id.
func (s *Store) FindStudent(id string) (*models.Student, bool) {
	for i := range s.students {
		if s.students[i].ID == id {
			return &s.students[i], true
		}
	}
	return nil, false
}

// FindEnrollmentByCourse returns the first enrollment of the course,
// whatever its section.
func (s *Store) FindEnrollmentByCourse(code models.CourseCode) (*models.Enrollment, bool) {
	for i := range s.enrollments {
		if s.enrollments[i].CourseCode == code {
			return &s.enrollments[i], true
		}
	}
	return nil, false
}

// FindEnrollment returns the enrollment matching both course and section.
func (s *Store) FindEnrollment(code models.CourseCode, section models.Section) (*models.Enrollment, bool) {
	for i := range s.enrollments {
		if s.enrollments[i].CourseCode == code && s.enrollments[i].Section == section {
			return &s.enrollments[i], true
		}
	}
	return nil, false
}

// FindTopic returns the current topic of the course.
func (s *Store) FindTopic(code models.CourseCode) (*models.CurrentTopic, bool) {
	for i := range s.topics {
		if s.topics[i].CourseCode == code {
			return &s.topics[i], true
		}
	}
	return nil, false
}

// Counts reports the table sizes.
func (s *Store) Counts() (students, enrollments, topics int) {
	return len(s.students), len(s.enrollments), len(s.topics)
}
