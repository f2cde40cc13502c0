package repository

import (
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// Classified repository errors. Handlers translate these to HTTP statuses;
// anything else is an unexpected failure.
var (
	// ErrNotFound means no row matched the given identifier.
	ErrNotFound = errors.New("record not found")
	// ErrDuplicateCourseCode means the unique constraint on courses.course_code fired.
	ErrDuplicateCourseCode = errors.New("course code already exists")
	// ErrCourseRefMissing means an insert referenced a course id that does not exist.
	ErrCourseRefMissing = errors.New("referenced course does not exist")
	// ErrCourseInUse means a course delete was rejected because class tests
	// or assignments still reference it.
	ErrCourseInUse = errors.New("course is referenced by class tests or assignments")
)

const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
)

// classifyWriteErr maps pgx errors raised by inserts/updates into the
// repository error taxonomy.
func classifyWriteErr(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, pgx.ErrNoRows) {
		return ErrNotFound
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgUniqueViolation:
			return ErrDuplicateCourseCode
		case pgForeignKeyViolation:
			return ErrCourseRefMissing
		}
	}
	return err
}

// classifyDeleteErr maps pgx errors raised by deletes. A foreign key
// violation here means dependants still point at the row.
func classifyDeleteErr(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, pgx.ErrNoRows) {
		return ErrNotFound
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == pgForeignKeyViolation {
		return ErrCourseInUse
	}
	return err
}
