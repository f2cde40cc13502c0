package service

import (
	"context"

	"github.com/campusdesk/coursehub-backend/internal/model"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
)

// CourseStore is the persistence surface the course service needs.
// *repository.CourseRepository satisfies it.
type CourseStore interface {
	Create(ctx context.Context, c *model.Course) error
	List(ctx context.Context) ([]model.Course, error)
	Update(ctx context.Context, id uuid.UUID, req *model.UpdateCourseRequest) (*model.Course, error)
	Delete(ctx context.Context, id uuid.UUID) (*model.Course, error)
}

// CourseService handles course business logic.
type CourseService struct {
	courseRepo CourseStore
	rdb        *redis.Client
	log        zerolog.Logger
}

// NewCourseService creates a new CourseService. A nil redis client disables
// cache invalidation.
func NewCourseService(courseRepo CourseStore, rdb *redis.Client, log zerolog.Logger) *CourseService {
	return &CourseService{
		courseRepo: courseRepo,
		rdb:        rdb,
		log:        log.With().Str("component", "course_service").Logger(),
	}
}

func (s *CourseService) Create(ctx context.Context, c *model.Course) error {
	return s.courseRepo.Create(ctx, c)
}

func (s *CourseService) List(ctx context.Context) ([]model.Course, error) {
	return s.courseRepo.List(ctx)
}

// Update merges the given fields into the course. The resolved class-test
// list embeds course title/credit, so its cache is dropped on success.
func (s *CourseService) Update(ctx context.Context, id uuid.UUID, req *model.UpdateCourseRequest) (*model.Course, error) {
	c, err := s.courseRepo.Update(ctx, id, req)
	if err != nil {
		return nil, err
	}
	invalidateClassTestCache(ctx, s.rdb, s.log)
	return c, nil
}

func (s *CourseService) Delete(ctx context.Context, id uuid.UUID) (*model.Course, error) {
	c, err := s.courseRepo.Delete(ctx, id)
	if err != nil {
		return nil, err
	}
	invalidateClassTestCache(ctx, s.rdb, s.log)
	return c, nil
}
