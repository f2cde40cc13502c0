package repository

import (
	"context"

	"github.com/campusdesk/coursehub-backend/internal/model"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

// CourseRepository handles course data access.
type CourseRepository struct {
	pool *pgxpool.Pool
}

// NewCourseRepository creates a new CourseRepository.
func NewCourseRepository(pool *pgxpool.Pool) *CourseRepository {
	return &CourseRepository{pool: pool}
}

func (r *CourseRepository) Create(ctx context.Context, c *model.Course) error {
	err := r.pool.QueryRow(ctx,
		`INSERT INTO courses (title, credit, course_code)
		 VALUES ($1, $2, $3)
		 RETURNING id, created_at, updated_at`,
		c.Title, c.Credit, c.CourseCode,
	).Scan(&c.ID, &c.CreatedAt, &c.UpdatedAt)
	return classifyWriteErr(err)
}

func (r *CourseRepository) List(ctx context.Context) ([]model.Course, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT id, title, credit, course_code, created_at, updated_at
		 FROM courses ORDER BY course_code ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var courses []model.Course
	for rows.Next() {
		var c model.Course
		if err := rows.Scan(&c.ID, &c.Title, &c.Credit, &c.CourseCode, &c.CreatedAt, &c.UpdatedAt); err != nil {
			return nil, err
		}
		courses = append(courses, c)
	}
	return courses, rows.Err()
}

// Update merges the non-nil request fields into the stored row and returns
// the post-update course.
func (r *CourseRepository) Update(ctx context.Context, id uuid.UUID, req *model.UpdateCourseRequest) (*model.Course, error) {
	c := &model.Course{}
	err := r.pool.QueryRow(ctx,
		`UPDATE courses SET
		    title = COALESCE($1, title),
		    credit = COALESCE($2, credit),
		    course_code = COALESCE($3, course_code),
		    updated_at = NOW()
		 WHERE id = $4
		 RETURNING id, title, credit, course_code, created_at, updated_at`,
		req.Title, req.Credit, req.CourseCode, id,
	).Scan(&c.ID, &c.Title, &c.Credit, &c.CourseCode, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		return nil, classifyWriteErr(err)
	}
	return c, nil
}

// Delete removes a course and returns the deleted row. Courses still
// referenced by class tests or assignments cannot be deleted.
func (r *CourseRepository) Delete(ctx context.Context, id uuid.UUID) (*model.Course, error) {
	c := &model.Course{}
	err := r.pool.QueryRow(ctx,
		`DELETE FROM courses WHERE id = $1
		 RETURNING id, title, credit, course_code, created_at, updated_at`,
		id,
	).Scan(&c.ID, &c.Title, &c.Credit, &c.CourseCode, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		return nil, classifyDeleteErr(err)
	}
	return c, nil
}
