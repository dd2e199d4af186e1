package models

// Student represents a learner registered in the institution.
type Student struct {
	ID         string     `json:"id" validate:"required,min=3,max=50"`
	Name       string     `json:"name" validate:"required,min=2,max=100"`
	Email      string     `json:"email" validate:"required,email"`
	Phone      string     `json:"phone" validate:"required,phone"`
	CourseCode CourseCode `json:"course_code" validate:"required,oneof=AI-101 AI-201 AI-202 AI-301"`
}
