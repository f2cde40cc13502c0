package model

import (
	"time"

	"github.com/google/uuid"
)

// Assignment represents homework attached to a course.
type Assignment struct {
	ID          uuid.UUID `json:"id"`
	CourseID    uuid.UUID `json:"courseId"`
	Title       string    `json:"title"`
	DueDate     time.Time `json:"dueDate"`
	TotalMarks  int       `json:"totalMarks"`
	Description *string   `json:"description,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// CreateAssignmentRequest is the payload for creating an assignment.
type CreateAssignmentRequest struct {
	CourseID    uuid.UUID `json:"courseId" binding:"required"`
	Title       string    `json:"title" binding:"required,min=1,max=255"`
	DueDate     time.Time `json:"dueDate" binding:"required"`
	TotalMarks  int       `json:"totalMarks" binding:"required,min=1"`
	Description *string   `json:"description" binding:"omitempty,max=2000"`
}
