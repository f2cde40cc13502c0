package repository

import (
	"context"

	"github.com/campusdesk/coursehub-backend/internal/model"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

// ClassTestRepository handles class-test data access.
type ClassTestRepository struct {
	pool *pgxpool.Pool
}

// NewClassTestRepository creates a new ClassTestRepository.
func NewClassTestRepository(pool *pgxpool.Pool) *ClassTestRepository {
	return &ClassTestRepository{pool: pool}
}

func (r *ClassTestRepository) Create(ctx context.Context, t *model.ClassTest) error {
	err := r.pool.QueryRow(ctx,
		`INSERT INTO class_tests (course_id, syllabus, date_of_test, room_number, total_marks)
		 VALUES ($1, $2, $3, $4, $5)
		 RETURNING id, created_at, updated_at`,
		t.CourseID, t.Syllabus, t.DateOfTest, t.RoomNumber, t.TotalMarks,
	).Scan(&t.ID, &t.CreatedAt, &t.UpdatedAt)
	return classifyWriteErr(err)
}

// ListWithCourse returns every class test with its course reference resolved
// into a {title, credit} projection. The FK is RESTRICT on delete, so the
// join is total.
func (r *ClassTestRepository) ListWithCourse(ctx context.Context) ([]model.ClassTestWithCourse, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT t.id, c.title, c.credit, t.syllabus, t.date_of_test,
		        t.room_number, t.total_marks, t.created_at, t.updated_at
		 FROM class_tests t
		 JOIN courses c ON c.id = t.course_id
		 ORDER BY t.date_of_test ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var tests []model.ClassTestWithCourse
	for rows.Next() {
		var t model.ClassTestWithCourse
		if err := rows.Scan(&t.ID, &t.Course.Title, &t.Course.Credit, &t.Syllabus,
			&t.DateOfTest, &t.RoomNumber, &t.TotalMarks, &t.CreatedAt, &t.UpdatedAt); err != nil {
			return nil, err
		}
		tests = append(tests, t)
	}
	return tests, rows.Err()
}

// ListByCourse returns the class tests for one course, reference unresolved.
func (r *ClassTestRepository) ListByCourse(ctx context.Context, courseID uuid.UUID) ([]model.ClassTest, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT id, course_id, syllabus, date_of_test, room_number, total_marks, created_at, updated_at
		 FROM class_tests WHERE course_id = $1
		 ORDER BY date_of_test ASC`, courseID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var tests []model.ClassTest
	for rows.Next() {
		var t model.ClassTest
		if err := rows.Scan(&t.ID, &t.CourseID, &t.Syllabus, &t.DateOfTest,
			&t.RoomNumber, &t.TotalMarks, &t.CreatedAt, &t.UpdatedAt); err != nil {
			return nil, err
		}
		tests = append(tests, t)
	}
	return tests, rows.Err()
}
