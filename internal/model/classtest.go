package model

import (
	"time"

	"github.com/google/uuid"
)

// ClassTest represents a scheduled test for a course.
type ClassTest struct {
	ID         uuid.UUID `json:"id"`
	CourseID   uuid.UUID `json:"courseId"`
	Syllabus   string    `json:"syllabus"`
	DateOfTest time.Time `json:"dateOfTest"`
	RoomNumber string    `json:"roomNumber"`
	TotalMarks int       `json:"totalMarks"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

// ClassTestWithCourse is a class test whose course reference has been
// resolved into an embedded {title, credit} projection.
type ClassTestWithCourse struct {
	ID         uuid.UUID `json:"id"`
	Course     CourseRef `json:"courseId"`
	Syllabus   string    `json:"syllabus"`
	DateOfTest time.Time `json:"dateOfTest"`
	RoomNumber string    `json:"roomNumber"`
	TotalMarks int       `json:"totalMarks"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

// CreateClassTestRequest is the payload for creating a class test.
type CreateClassTestRequest struct {
	CourseID   uuid.UUID `json:"courseId" binding:"required"`
	Syllabus   string    `json:"syllabus" binding:"required"`
	DateOfTest time.Time `json:"dateOfTest" binding:"required"`
	RoomNumber string    `json:"roomNumber" binding:"required,max=20"`
	TotalMarks int       `json:"totalMarks" binding:"required,min=1"`
}
