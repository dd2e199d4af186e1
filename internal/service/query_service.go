package service

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/noah-isme/student-context-mcp/internal/dto"
	"github.com/noah-isme/student-context-mcp/internal/models"
	appErrors "github.com/noah-isme/student-context-mcp/pkg/errors"
)

type domainStore interface {
	FindStudent(id string) (*models.Student, bool)
	FindEnrollmentByCourse(code models.CourseCode) (*models.Enrollment, bool)
	FindEnrollment(code models.CourseCode, section models.Section) (*models.Enrollment, bool)
	FindTopic(code models.CourseCode) (*models.CurrentTopic, bool)
}

// QueryService answers student-context lookups against the domain store.
// Every operation returns an envelope; unexpected faults are reported as
// INTERNAL_ERROR and never escape to the caller.
type QueryService struct {
	store  domainStore
	logger *zap.Logger
}

// NewQueryService constructs the query service.
func NewQueryService(store domainStore, logger *zap.Logger) *QueryService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &QueryService{store: store, logger: logger}
}

// GetStudentProfile returns the student together with the enrollment of their course.
func (s *QueryService) GetStudentProfile(ctx context.Context, studentID string) dto.Result {
	return s.guard("get_student_profile", "Failed to fetch student profile", func() dto.Result {
		student, ok := s.store.FindStudent(studentID)
		if !ok {
			return dto.Failure(appErrors.Clone(appErrors.ErrStudentNotFound, ""))
		}
		enrollment, ok := s.store.FindEnrollmentByCourse(student.CourseCode)
		if !ok {
			return dto.Failure(enrollmentNotFound(student.CourseCode))
		}
		return dto.Success(dto.StudentProfile{Student: *student, Enrollment: *enrollment})
	})
}

// GetClassSchedule returns the weekly sessions of a course section.
func (s *QueryService) GetClassSchedule(ctx context.Context, code models.CourseCode, section models.Section) dto.Result {
	return s.guard("get_class_schedule", "Failed to fetch schedule", func() dto.Result {
		enrollment, ok := s.store.FindEnrollment(code, section)
		if !ok {
			return dto.Failure(scheduleNotFound(code, section))
		}
		return dto.Success(dto.ClassSchedule{
			CourseCode: code,
			Section:    section,
			Schedule:   enrollment.Schedule,
		})
	})
}

// GetNextClass returns the upcoming session of a course section.
func (s *QueryService) GetNextClass(ctx context.Context, code models.CourseCode, section models.Section) dto.Result {
	return s.guard("get_next_class", "Failed to fetch next class time", func() dto.Result {
		enrollment, ok := s.store.FindEnrollment(code, section)
		if !ok {
			return dto.Failure(scheduleNotFound(code, section))
		}
		if enrollment.NextClassTime == nil {
			return dto.Failure(appErrors.Clone(appErrors.ErrNoNextClass, ""))
		}
		return dto.Success(dto.NextClass{
			CourseCode:    code,
			Section:       section,
			NextClassTime: enrollment.NextClassTime.Format(time.RFC3339),
			Instructor:    enrollment.Instructor,
		})
	})
}

// GetCourseTopic returns the topic the course is currently covering.
func (s *QueryService) GetCourseTopic(ctx context.Context, code models.CourseCode) dto.Result {
	return s.guard("get_course_topic", "Failed to fetch current topic", func() dto.Result {
		topic, ok := s.store.FindTopic(code)
		if !ok {
			return dto.Failure(appErrors.Clone(appErrors.ErrTopicNotFound, fmt.Sprintf("No current topic found for course %s", code)))
		}
		return dto.Success(*topic)
	})
}

// GetCoveredTopics returns the topics covered so far in the student's course.
func (s *QueryService) GetCoveredTopics(ctx context.Context, studentID string) dto.Result {
	return s.guard("get_covered_topics", "Failed to fetch covered topics", func() dto.Result {
		student, ok := s.store.FindStudent(studentID)
		if !ok {
			return dto.Failure(appErrors.Clone(appErrors.ErrStudentNotFound, ""))
		}
		enrollment, ok := s.store.FindEnrollmentByCourse(student.CourseCode)
		if !ok {
			return dto.Failure(enrollmentNotFound(student.CourseCode))
		}
		return dto.Success(dto.CoveredTopics{
			StudentID:     studentID,
			CourseCode:    student.CourseCode,
			CourseName:    enrollment.CourseName,
			Instructor:    enrollment.Instructor,
			CoveredTopics: enrollment.CoveredTopics,
		})
	})
}

func (s *QueryService) guard(operation, failure string, fn func() dto.Result) (result dto.Result) {
	defer func() {
		if r := recover(); r != nil {
			s.logger.Error("query operation failed",
				zap.String("operation", operation),
				zap.Any("panic", r),
				zap.Stack("stack"),
			)
			result = dto.Failure(appErrors.Clone(appErrors.ErrInternal, failure))
		}
	}()
	return fn()
}

func enrollmentNotFound(code models.CourseCode) *appErrors.Error {
	return appErrors.Clone(appErrors.ErrEnrollmentNotFound, fmt.Sprintf("No enrollment found for course %s", code))
}

func scheduleNotFound(code models.CourseCode, section models.Section) *appErrors.Error {
	return appErrors.Clone(appErrors.ErrScheduleNotFound, fmt.Sprintf("No schedule found for %s section %s", code, section))
}
