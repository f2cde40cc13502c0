package service

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/campusdesk/coursehub-backend/internal/config"
	"github.com/campusdesk/coursehub-backend/internal/model"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
)

// ClassTestStore is the persistence surface the class-test service needs.
// *repository.ClassTestRepository satisfies it.
type ClassTestStore interface {
	Create(ctx context.Context, t *model.ClassTest) error
	ListWithCourse(ctx context.Context) ([]model.ClassTestWithCourse, error)
	ListByCourse(ctx context.Context, courseID uuid.UUID) ([]model.ClassTest, error)
}

// ClassTestService handles class-test business logic. The resolved list is
// the only cross-entity join in the system and the only read worth caching.
type ClassTestService struct {
	testRepo ClassTestStore
	rdb      *redis.Client
	cacheTTL time.Duration
	log      zerolog.Logger
}

// NewClassTestService creates a new ClassTestService. A nil redis client
// disables caching.
func NewClassTestService(testRepo ClassTestStore, rdb *redis.Client, cacheTTL time.Duration, log zerolog.Logger) *ClassTestService {
	return &ClassTestService{
		testRepo: testRepo,
		rdb:      rdb,
		cacheTTL: cacheTTL,
		log:      log.With().Str("component", "classtest_service").Logger(),
	}
}

func (s *ClassTestService) Create(ctx context.Context, t *model.ClassTest) error {
	if err := s.testRepo.Create(ctx, t); err != nil {
		return err
	}
	invalidateClassTestCache(ctx, s.rdb, s.log)
	return nil
}

// ListWithCourse returns all class tests with their course reference
// resolved, serving from Redis when the cached copy is still fresh.
func (s *ClassTestService) ListWithCourse(ctx context.Context) ([]model.ClassTestWithCourse, error) {
	key := config.CacheKey.ClassTestListKey()

	if s.rdb != nil {
		raw, err := s.rdb.Get(ctx, key).Bytes()
		switch {
		case err == nil:
			var cached []model.ClassTestWithCourse
			if err := json.Unmarshal(raw, &cached); err == nil {
				return cached, nil
			}
			// Unreadable cache entry; fall through to the database.
			s.rdb.Del(ctx, key)
		case !errors.Is(err, redis.Nil):
			s.log.Warn().Err(err).Msg("class-test cache read failed")
		}
	}

	tests, err := s.testRepo.ListWithCourse(ctx)
	if err != nil {
		return nil, err
	}

	if s.rdb != nil && len(tests) > 0 {
		if raw, err := json.Marshal(tests); err == nil {
			if err := s.rdb.Set(ctx, key, raw, s.cacheTTL).Err(); err != nil {
				s.log.Warn().Err(err).Msg("class-test cache write failed")
			}
		}
	}
	return tests, nil
}

func (s *ClassTestService) ListByCourse(ctx context.Context, courseID uuid.UUID) ([]model.ClassTest, error) {
	return s.testRepo.ListByCourse(ctx, courseID)
}

// invalidateClassTestCache drops the resolved class-test list. Called after
// class-test writes and after course updates/deletes, since the cached
// projection embeds course fields. Failure only shortens cache coherence to
// the TTL, so it is logged and swallowed.
func invalidateClassTestCache(ctx context.Context, rdb *redis.Client, log zerolog.Logger) {
	if rdb == nil {
		return
	}
	if err := rdb.Del(ctx, config.CacheKey.ClassTestListKey()).Err(); err != nil {
		log.Warn().Err(err).Msg("class-test cache invalidation failed")
	}
}
