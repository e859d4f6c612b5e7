package seed

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"

	appModels "github.com/edumaster/backend/internal/app/models"
	appRepos "github.com/edumaster/backend/internal/app/repositories"
	"github.com/edumaster/backend/internal/pkg/auth"
)

// CreateDefaultData creates a default admin plus a demo instructor, student
// and course content tree if they don't exist. Duplicate-email errors mean
// the data is already there and are not failures.
func CreateDefaultData(ctx context.Context, dbPool *pgxpool.Pool, lgr zerolog.Logger) error {
	userRepo := appRepos.NewUserRepository(dbPool)
	courseRepo := appRepos.NewCourseRepository(dbPool)
	contentRepo := appRepos.NewContentRepository(dbPool)

	lgr.Info().Msg("Checking/Creating default data (admin and demo accounts)...")
	var finalErr error

	adminPassword, err := auth.HashPassword("admin123")
	if err != nil {
		return err
	}

	admin := &appModels.User{
		Name:     "Platform Admin",
		Email:    "admin@edumaster.com",
		Password: adminPassword,
		Role:     appModels.RoleAdmin,
	}
	if _, err := userRepo.CreateUser(ctx, admin); err != nil && !errors.Is(err, appRepos.ErrEmailAlreadyExists) {
		lgr.Error().Err(err).Msg("Error creating default admin")
		finalErr = errors.Join(finalErr, err)
	}

	demoPassword, err := auth.HashPassword("password123")
	if err != nil {
		return err
	}

	instructor := &appModels.User{
		Name:     "John Instructor",
		Email:    "john@edumaster.com",
		Password: demoPassword,
		Role:     appModels.RoleInstructor,
	}
	instructorID, err := userRepo.CreateUser(ctx, instructor)
	if err != nil {
		if !errors.Is(err, appRepos.ErrEmailAlreadyExists) {
			lgr.Error().Err(err).Msg("Error creating demo instructor")
			finalErr = errors.Join(finalErr, err)
		}
		// Instructor (and therefore the demo content tree) already seeded
		return finalErr
	}

	student := &appModels.User{
		Name:     "Sam Student",
		Email:    "sam@edumaster.com",
		Password: demoPassword,
		Role:     appModels.RoleStudent,
	}
	studentID, err := userRepo.CreateUser(ctx, student)
	if err != nil {
		lgr.Error().Err(err).Msg("Error creating demo student")
		return errors.Join(finalErr, err)
	}

	if err := createDemoContent(ctx, courseRepo, contentRepo, instructorID, studentID); err != nil {
		lgr.Error().Err(err).Msg("Error creating demo content tree")
		finalErr = errors.Join(finalErr, err)
	}

	return finalErr
}

// createDemoContent builds one course with a section, lessons, an enrollment
// with per-lesson progress, a review, quizzes and a graded attempt, so every
// report section and dashboard has data out of the box.
func createDemoContent(
	ctx context.Context,
	courseRepo *appRepos.CourseRepository,
	contentRepo *appRepos.ContentRepository,
	instructorID, studentID int64,
) error {
	courseID, err := courseRepo.CreateCourse(ctx, &appModels.Course{
		Title:        "Go for Backend Engineers",
		InstructorID: instructorID,
		Category:     "Programming",
		Published:    true,
		Price:        499,
		Level:        "Beginner",
	})
	if err != nil {
		return fmt.Errorf("demo course: %w", err)
	}

	sectionID, err := contentRepo.CreateSection(ctx, &appModels.Section{
		CourseID: courseID,
		Title:    "Getting Started",
		Position: 1,
	})
	if err != nil {
		return fmt.Errorf("demo section: %w", err)
	}

	lessons := []*appModels.Lesson{
		{SectionID: sectionID, Title: "Installing the Toolchain", Duration: strPtr("08:30"), Position: 1},
		{SectionID: sectionID, Title: "Your First HTTP Server", Duration: strPtr("12:45"), Position: 2},
		{SectionID: sectionID, Title: "Structs and Interfaces", Duration: strPtr("15:10"), Position: 3},
	}
	lessonIDs := make([]int64, 0, len(lessons))
	for _, lesson := range lessons {
		id, err := contentRepo.CreateLesson(ctx, lesson)
		if err != nil {
			return fmt.Errorf("demo lesson %q: %w", lesson.Title, err)
		}
		lessonIDs = append(lessonIDs, id)
	}

	lastActive := time.Now().Add(-48 * time.Hour)
	if _, err := contentRepo.CreateEnrollment(ctx, &appModels.Enrollment{
		UserID:       studentID,
		CourseID:     courseID,
		Progress:     40,
		Paid:         true,
		LastActiveAt: &lastActive,
	}); err != nil {
		return fmt.Errorf("demo enrollment: %w", err)
	}

	if _, err := contentRepo.CreateProgress(ctx, &appModels.Progress{
		UserID:    studentID,
		LessonID:  lessonIDs[0],
		Completed: true,
	}); err != nil {
		return fmt.Errorf("demo progress: %w", err)
	}

	comment := "Clear explanations and practical examples."
	if _, err := contentRepo.CreateReview(ctx, &appModels.Review{
		UserID:   studentID,
		CourseID: courseID,
		Rating:   5,
		Comment:  &comment,
	}); err != nil {
		return fmt.Errorf("demo review: %w", err)
	}

	courseQuizID, err := contentRepo.CreateQuiz(ctx, &appModels.Quiz{
		Title:    "Go Fundamentals Quiz",
		Type:     "course",
		CourseID: &courseID,
	})
	if err != nil {
		return fmt.Errorf("demo course quiz: %w", err)
	}

	questions := []string{
		"Which keyword declares a new type in Go?",
		"What does a nil map lookup return?",
	}
	for i, text := range questions {
		if _, err := contentRepo.CreateQuestion(ctx, &appModels.Question{
			QuizID:   courseQuizID,
			Text:     text,
			Position: i + 1,
		}); err != nil {
			return fmt.Errorf("demo question: %w", err)
		}
	}

	// Standalone quiz, attached to neither a course nor a lesson
	if _, err := contentRepo.CreateQuiz(ctx, &appModels.Quiz{
		Title: "Friday Knowledge Check",
		Type:  "weekly",
	}); err != nil {
		return fmt.Errorf("demo weekly quiz: %w", err)
	}

	if _, err := contentRepo.CreateAttempt(ctx, &appModels.Attempt{
		UserID: studentID,
		QuizID: courseQuizID,
		Score:  85,
		Passed: true,
	}); err != nil {
		return fmt.Errorf("demo attempt: %w", err)
	}

	return nil
}

func strPtr(s string) *string { return &s }
