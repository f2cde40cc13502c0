package model

import (
	"time"

	"github.com/google/uuid"
)

// Course represents an academic course.
type Course struct {
	ID         uuid.UUID `json:"id"`
	Title      string    `json:"title"`
	Credit     int       `json:"credit"`
	CourseCode string    `json:"courseCode"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

// CourseRef is the partial projection embedded in place of a course
// reference when a read resolves it.
type CourseRef struct {
	Title  string `json:"title"`
	Credit int    `json:"credit"`
}

// CreateCourseRequest is the payload for creating a course.
type CreateCourseRequest struct {
	Title      string `json:"title" binding:"required,min=1,max=255"`
	Credit     int    `json:"credit" binding:"required,min=1,max=30"`
	CourseCode string `json:"courseCode" binding:"required,min=2,max=20"`
}

// UpdateCourseRequest is the payload for updating a course.
// Absent fields keep their stored values (merge update).
type UpdateCourseRequest struct {
	Title      *string `json:"title" binding:"omitempty,min=1,max=255"`
	Credit     *int    `json:"credit" binding:"omitempty,min=1,max=30"`
	CourseCode *string `json:"courseCode" binding:"omitempty,min=2,max=20"`
}
