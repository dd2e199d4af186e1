package service

import (
	"context"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/noah-isme/student-context-mcp/internal/dto"
	"github.com/noah-isme/student-context-mcp/internal/models"
	appErrors "github.com/noah-isme/student-context-mcp/pkg/errors"
)

// OperationKind distinguishes action calls from URI-addressed resource reads.
type OperationKind string

// Operation kinds.
const (
	KindTool     OperationKind = "tool"
	KindResource OperationKind = "resource"
)

// ProfileURITemplate addresses the student profile resource.
const ProfileURITemplate = "students://{student_id}/profile"

// Param documents one argument of an operation.
type Param struct {
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Enum        []string `json:"enum,omitempty"`
}

// Operation is a named entry point into the query service.
type Operation struct {
	Name        string        `json:"name"`
	Title       string        `json:"title"`
	Description string        `json:"description"`
	Kind        OperationKind `json:"kind"`
	URITemplate string        `json:"uri_template,omitempty"`
	Params      []Param       `json:"params"`

	invoke func(ctx context.Context, args map[string]any) (dto.Result, error)
}

// Registry maps operation names to query service entry points. It is built
// once at startup and shared by every transport.
type Registry struct {
	ops     []Operation
	byName  map[string]int
	metrics *MetricsService
}

// NewRegistry registers the student-context operations.
func NewRegistry(queries *QueryService, validate *validator.Validate, metrics *MetricsService) *Registry {
	if validate == nil {
		validate = models.NewValidator()
	}
	b := argBinder{validate: validate}

	studentParam := Param{Name: "student_id", Description: "Unique identifier of the student"}
	courseParam := Param{Name: "course_code", Description: "Course identifier", Enum: courseCodeValues()}
	sectionParam := Param{Name: "section", Description: "Course section", Enum: sectionValues()}

	r := &Registry{byName: make(map[string]int), metrics: metrics}
	r.register(Operation{
		Name:        "get_student_profile",
		Title:       "Get Student Profile",
		Description: "Get detailed student profile including enrollment information",
		Kind:        KindResource,
		URITemplate: ProfileURITemplate,
		Params:      []Param{studentParam},
		invoke: func(ctx context.Context, args map[string]any) (dto.Result, error) {
			a, err := b.bindStudent(args)
			if err != nil {
				return dto.Result{}, err
			}
			return queries.GetStudentProfile(ctx, a.StudentID), nil
		},
	})
	r.register(Operation{
		Name:        "get_class_schedule",
		Title:       "Get Class Schedule",
		Description: "Retrieve the class schedule for a specific course and section",
		Kind:        KindTool,
		Params:      []Param{courseParam, sectionParam},
		invoke: func(ctx context.Context, args map[string]any) (dto.Result, error) {
			a, err := b.bindSection(args)
			if err != nil {
				return dto.Result{}, err
			}
			return queries.GetClassSchedule(ctx, a.Course(), a.CourseSection()), nil
		},
	})
	r.register(Operation{
		Name:        "get_next_class",
		Title:       "Get Next Class",
		Description: "Retrieve the next scheduled class time for a specific course and section",
		Kind:        KindTool,
		Params:      []Param{courseParam, sectionParam},
		invoke: func(ctx context.Context, args map[string]any) (dto.Result, error) {
			a, err := b.bindSection(args)
			if err != nil {
				return dto.Result{}, err
			}
			return queries.GetNextClass(ctx, a.Course(), a.CourseSection()), nil
		},
	})
	r.register(Operation{
		Name:        "get_course_topic",
		Title:       "Get Course Topic",
		Description: "Retrieve the current topic being covered in a specific course",
		Kind:        KindTool,
		Params:      []Param{courseParam},
		invoke: func(ctx context.Context, args map[string]any) (dto.Result, error) {
			a, err := b.bindCourse(args)
			if err != nil {
				return dto.Result{}, err
			}
			return queries.GetCourseTopic(ctx, a.Course()), nil
		},
	})
	r.register(Operation{
		Name:        "get_covered_topics",
		Title:       "Get Covered Topics",
		Description: "Retrieve the list of topics covered so far in the student's enrolled course",
		Kind:        KindTool,
		Params:      []Param{studentParam},
		invoke: func(ctx context.Context, args map[string]any) (dto.Result, error) {
			a, err := b.bindStudent(args)
			if err != nil {
				return dto.Result{}, err
			}
			return queries.GetCoveredTopics(ctx, a.StudentID), nil
		},
	})
	return r
}

func (r *Registry) register(op Operation) {
	r.byName[op.Name] = len(r.ops)
	r.ops = append(r.ops, op)
}

// Operations returns the registered operations in registration order.
func (r *Registry) Operations() []Operation {
	out := make([]Operation, len(r.ops))
	copy(out, r.ops)
	return out
}

// Lookup returns the operation registered under name.
func (r *Registry) Lookup(name string) (Operation, bool) {
	idx, ok := r.byName[name]
	if !ok {
		return Operation{}, false
	}
	return r.ops[idx], true
}

// Call binds args and runs the named operation. A non-nil error means the
// request was rejected at the boundary (unknown operation or invalid
// arguments) and no lookup ran; lookup failures come back inside the result.
func (r *Registry) Call(ctx context.Context, name string, args map[string]any) (dto.Result, error) {
	op, ok := r.Lookup(name)
	if !ok {
		return dto.Result{}, appErrors.Clone(appErrors.ErrUnknownOperation, "unknown operation: "+name)
	}
	if args == nil {
		args = map[string]any{}
	}

	start := time.Now()
	result, err := op.invoke(ctx, args)
	outcome := result.Code()
	if err != nil {
		outcome = appErrors.FromError(err).Code
	} else if outcome == "" {
		outcome = "OK"
	}
	r.metrics.ObserveOperation(name, outcome, time.Since(start))
	return result, err
}

func courseCodeValues() []string {
	codes := models.CourseCodes()
	out := make([]string, len(codes))
	for i, c := range codes {
		out[i] = string(c)
	}
	return out
}

func sectionValues() []string {
	sections := models.Sections()
	out := make([]string, len(sections))
	for i, s := range sections {
		out[i] = string(s)
	}
	return out
}
