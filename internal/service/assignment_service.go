package service

import (
	"context"

	"github.com/campusdesk/coursehub-backend/internal/model"
	"github.com/google/uuid"
)

// AssignmentStore is the persistence surface the assignment service needs.
// *repository.AssignmentRepository satisfies it.
type AssignmentStore interface {
	Create(ctx context.Context, a *model.Assignment) error
	ListByCourse(ctx context.Context, courseID uuid.UUID) ([]model.Assignment, error)
}

// AssignmentService handles assignment business logic.
type AssignmentService struct {
	assignmentRepo AssignmentStore
}

// NewAssignmentService creates a new AssignmentService.
func NewAssignmentService(assignmentRepo AssignmentStore) *AssignmentService {
	return &AssignmentService{assignmentRepo: assignmentRepo}
}

func (s *AssignmentService) Create(ctx context.Context, a *model.Assignment) error {
	return s.assignmentRepo.Create(ctx, a)
}

func (s *AssignmentService) ListByCourse(ctx context.Context, courseID uuid.UUID) ([]model.Assignment, error) {
	return s.assignmentRepo.ListByCourse(ctx, courseID)
}
