package repository

import (
	"time"

	"github.com/noah-isme/student-context-mcp/internal/models"
)

func at(year int, month time.Month, day, hour, minute int) *time.Time {
	t := time.Date(year, month, day, hour, minute, 0, 0, time.UTC)
	return &t
}

// DefaultSeed returns the compiled-in demo data.
func DefaultSeed() Seed {
	return Seed{
		Students: []models.Student{
			{
				ID:         "S123",
				Name:       "Ayaan Qureshi",
				Email:      "ayaan.qureshi@example.com",
				Phone:      "+923001112233",
				CourseCode: models.CourseAI101,
			},
		},
		Enrollments: []models.Enrollment{
			{
				CourseCode: models.CourseAI101,
				Section:    models.SectionA,
				Instructor: "Sajid Khan",
				Schedule: []models.ClassSchedule{
					{Day: models.Monday, Time: "10:00 AM - 11:30 AM"},
					{Day: models.Wednesday, Time: "10:00 AM - 11:30 AM"},
				},
				LastClassDate:    at(2025, time.June, 2, 10, 0),
				LastClassCovered: "Introduction to Python",
				Todos: []models.Todo{
					{Description: "Complete assignment 1", DueDate: at(2025, time.June, 10, 0, 0)},
					{Description: "Read chapter 3", DueDate: at(2025, time.June, 10, 0, 0)},
				},
				CoveredTopics: []string{"Python Basics", "Introduction to Variables"},
				NextClassTime: at(2025, time.June, 9, 10, 0),
			},
		},
		Topics: []models.CurrentTopic{
			{
				CourseCode: models.CourseAI101,
				Topic:      "Introduction to Lists",
				StartDate:  at(2025, time.June, 2, 0, 0),
			},
		},
	}
}
