package models

// CourseCode identifies one of the offered courses.
type CourseCode string

// Offered courses.
const (
	CourseAI101 CourseCode = "AI-101"
	CourseAI201 CourseCode = "AI-201"
	CourseAI202 CourseCode = "AI-202"
	CourseAI301 CourseCode = "AI-301"
)

var courseTitles = map[CourseCode]string{
	CourseAI101: "Modern AI Python Programming",
	CourseAI201: "Fundamentals of Agentic AI and DACA AI-First Development",
	CourseAI202: "DACA Cloud-First Agentic AI Development",
	CourseAI301: "DACA Planet-Scale Distributed AI Agents",
}

// CourseCodes lists every known course code in catalogue order.
func CourseCodes() []CourseCode {
	return []CourseCode{CourseAI101, CourseAI201, CourseAI202, CourseAI301}
}

// Title returns the catalogue title of the course, or "" when unknown.
func (c CourseCode) Title() string {
	return courseTitles[c]
}

// Section is a sub-group of a course with its own schedule and instructor.
type Section string

// Known sections.
const (
	SectionA Section = "A"
	SectionB Section = "B"
	SectionC Section = "C"
)

// Sections lists every known section.
func Sections() []Section {
	return []Section{SectionA, SectionB, SectionC}
}

// Weekday names a day of the week as exposed to clients.
type Weekday string

// Days of the week.
const (
	Monday    Weekday = "Monday"
	Tuesday   Weekday = "Tuesday"
	Wednesday Weekday = "Wednesday"
	Thursday  Weekday = "Thursday"
	Friday    Weekday = "Friday"
	Saturday  Weekday = "Saturday"
	Sunday    Weekday = "Sunday"
)
