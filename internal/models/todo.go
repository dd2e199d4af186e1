package models

import (
	"time"

	"github.com/google/uuid"
)

// Todo is a pending task attached to an enrollment.
type Todo struct {
	ID          uuid.UUID  `json:"id"`
	Description string     `json:"description" validate:"required,min=1"`
	DueDate     *time.Time `json:"due_date"`
}
