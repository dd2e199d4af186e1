package service

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/noah-isme/student-context-mcp/internal/models"
	appErrors "github.com/noah-isme/student-context-mcp/pkg/errors"
)

// StudentArgs binds operations addressed by student id.
type StudentArgs struct {
	StudentID string `json:"student_id" validate:"required"`
}

// CourseArgs binds operations addressed by course code.
type CourseArgs struct {
	CourseCode string `json:"course_code" validate:"required,oneof=AI-101 AI-201 AI-202 AI-301"`
}

// SectionArgs binds operations addressed by course code and section.
type SectionArgs struct {
	CourseCode string `json:"course_code" validate:"required,oneof=AI-101 AI-201 AI-202 AI-301"`
	Section    string `json:"section" validate:"required,oneof=A B C"`
}

// Course returns the bound course code.
func (a CourseArgs) Course() models.CourseCode { return models.CourseCode(a.CourseCode) }

// Course returns the bound course code.
func (a SectionArgs) Course() models.CourseCode { return models.CourseCode(a.CourseCode) }

// CourseSection returns the bound section.
func (a SectionArgs) CourseSection() models.Section { return models.Section(a.Section) }

type argBinder struct {
	validate *validator.Validate
}

func (b argBinder) bindStudent(args map[string]any) (StudentArgs, error) {
	var out StudentArgs
	var err error
	if out.StudentID, err = stringArg(args, "student_id"); err != nil {
		return out, err
	}
	return out, b.check(out)
}

func (b argBinder) bindCourse(args map[string]any) (CourseArgs, error) {
	var out CourseArgs
	var err error
	if out.CourseCode, err = stringArg(args, "course_code"); err != nil {
		return out, err
	}
	return out, b.check(out)
}

func (b argBinder) bindSection(args map[string]any) (SectionArgs, error) {
	var out SectionArgs
	var err error
	if out.CourseCode, err = stringArg(args, "course_code"); err != nil {
		return out, err
	}
	if out.Section, err = stringArg(args, "section"); err != nil {
		return out, err
	}
	return out, b.check(out)
}

func (b argBinder) check(v any) error {
	err := b.validate.Struct(v)
	if err == nil {
		return nil
	}
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid arguments")
	}
	msgs := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		msgs = append(msgs, describeFieldError(fe))
	}
	return appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, strings.Join(msgs, "; "))
}

func describeFieldError(fe validator.FieldError) string {
	name := argName(fe.Field())
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", name)
	case "oneof":
		return fmt.Sprintf("%s must be one of [%s], got %q", name, fe.Param(), fe.Value())
	default:
		return fmt.Sprintf("%s failed %s validation", name, fe.Tag())
	}
}

func argName(field string) string {
	switch field {
	case "StudentID":
		return "student_id"
	case "CourseCode":
		return "course_code"
	case "Section":
		return "section"
	}
	return field
}

// stringArg treats a missing key as empty so that the required rule reports it.
func stringArg(args map[string]any, key string) (string, error) {
	raw, ok := args[key]
	if !ok || raw == nil {
		return "", nil
	}
	s, ok := raw.(string)
	if !ok {
		return "", appErrors.New(appErrors.ErrValidation.Code, appErrors.ErrValidation.Status,
			fmt.Sprintf("%s must be a string", key))
	}
	return s, nil
}
