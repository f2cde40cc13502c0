package main

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/campusdesk/coursehub-backend/internal/config"
	"github.com/campusdesk/coursehub-backend/internal/database"
	"github.com/campusdesk/coursehub-backend/internal/logger"
	"github.com/campusdesk/coursehub-backend/internal/model"
	"github.com/campusdesk/coursehub-backend/internal/repository"
	"github.com/google/uuid"
)

func main() {
	cfg := config.Load()
	log := logger.Setup(cfg.LogLevel, cfg.LogFormat)
	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	pool, err := database.NewPostgresPool(ctx, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to PostgreSQL")
	}
	defer pool.Close()

	courseRepo := repository.NewCourseRepository(pool)
	testRepo := repository.NewClassTestRepository(pool)
	assignmentRepo := repository.NewAssignmentRepository(pool)

	fmt.Println("=== Seeding demo courses ===")

	courses := []model.Course{
		{Title: "Algorithms", Credit: 3, CourseCode: "CS301"},
		{Title: "Operating Systems", Credit: 4, CourseCode: "CS350"},
		{Title: "Database Systems", Credit: 3, CourseCode: "CS360"},
		{Title: "Linear Algebra", Credit: 3, CourseCode: "MATH204"},
		{Title: "Digital Logic Design", Credit: 4, CourseCode: "EEE210"},
	}

	seeded := 0
	for i := range courses {
		c := &courses[i]
		if err := courseRepo.Create(ctx, c); err != nil {
			if errors.Is(err, repository.ErrDuplicateCourseCode) {
				fmt.Printf("Skipping %s: already seeded\n", c.CourseCode)
				continue
			}
			log.Fatal().Err(err).Str("course_code", c.CourseCode).Msg("Failed to seed course")
		}
		seeded++
	}
	fmt.Printf("Seeded %d/%d courses\n", seeded, len(courses))

	if seeded == 0 {
		fmt.Println("Nothing new to seed, leaving tests and assignments alone")
		return
	}

	// One class test and one assignment per freshly seeded course, two and
	// four weeks out.
	for i := range courses {
		c := &courses[i]
		if c.ID == uuid.Nil {
			continue // Skipped duplicate; no id to reference.
		}

		test := &model.ClassTest{
			CourseID:   c.ID,
			Syllabus:   fmt.Sprintf("Chapters 1-4 of %s", c.Title),
			DateOfTest: time.Now().AddDate(0, 0, 14),
			RoomNumber: fmt.Sprintf("R-%d0%d", i+1, i+2),
			TotalMarks: 20,
		}
		if err := testRepo.Create(ctx, test); err != nil {
			log.Fatal().Err(err).Str("course_code", c.CourseCode).Msg("Failed to seed class test")
		}

		desc := fmt.Sprintf("Problem set covering the first half of %s", c.Title)
		assignment := &model.Assignment{
			CourseID:    c.ID,
			Title:       fmt.Sprintf("%s Assignment 1", c.CourseCode),
			DueDate:     time.Now().AddDate(0, 0, 28),
			TotalMarks:  10,
			Description: &desc,
		}
		if err := assignmentRepo.Create(ctx, assignment); err != nil {
			log.Fatal().Err(err).Str("course_code", c.CourseCode).Msg("Failed to seed assignment")
		}
	}

	fmt.Println("Seed completed!")
}
