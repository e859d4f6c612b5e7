package services

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/edumaster/backend/internal/app/models/dto"
	"github.com/edumaster/backend/internal/app/repositories"
)

// activityWindow is the lookback used to classify an enrollment as active.
const activityWindow = 30 * 24 * time.Hour

// Enrollment status values exposed to the dashboards.
const (
	StatusCompleted = "completed"
	StatusActive    = "active"
	StatusInactive  = "inactive"
)

// InstructorService defines the interface for instructor-facing reads
type InstructorService interface {
	MyCourses(ctx context.Context, instructorID int64) ([]*dto.InstructorCourse, error)
	StudentProgress(ctx context.Context, instructorID int64) ([]*dto.StudentRow, error)
}

// instructorServiceImpl implements the InstructorService interface
type instructorServiceImpl struct {
	courseRepo *repositories.CourseRepository
	logger     zerolog.Logger
	now        func() time.Time
}

// NewInstructorService creates a new instructor service instance
func NewInstructorService(courseRepo *repositories.CourseRepository, logger zerolog.Logger) InstructorService {
	return &instructorServiceImpl{
		courseRepo: courseRepo,
		logger:     logger,
		now:        time.Now,
	}
}

// MyCourses returns the instructor's own courses.
func (s *instructorServiceImpl) MyCourses(ctx context.Context, instructorID int64) ([]*dto.InstructorCourse, error) {
	courses, err := s.courseRepo.ListCoursesByInstructor(ctx, instructorID)
	if err != nil {
		return nil, fmt.Errorf("listing instructor courses: %w", err)
	}
	return courses, nil
}

// StudentProgress returns one row per enrollment in the instructor's courses.
func (s *instructorServiceImpl) StudentProgress(ctx context.Context, instructorID int64) ([]*dto.StudentRow, error) {
	raw, err := s.courseRepo.ListStudentProgress(ctx, instructorID)
	if err != nil {
		return nil, fmt.Errorf("listing student progress: %w", err)
	}

	now := s.now()
	rows := make([]*dto.StudentRow, 0, len(raw))
	for _, r := range raw {
		rows = append(rows, &dto.StudentRow{
			ID:               r.UserID,
			Name:             r.Name,
			Email:            r.Email,
			Course:           r.Course,
			Progress:         r.Progress,
			LessonsCompleted: r.LessonsCompleted,
			TotalLessons:     r.TotalLessons,
			QuizScore:        r.QuizScore,
			Status:           enrollmentStatus(r, now),
			LastActive:       r.LastActiveAt,
		})
	}
	return rows, nil
}

// enrollmentStatus derives the status string shown in the progress table:
// completed once the course is done, active while there was activity inside
// the 30-day window, inactive otherwise.
func enrollmentStatus(r *repositories.StudentProgressRow, now time.Time) string {
	if r.CompletedAt != nil || r.Progress >= 100 {
		return StatusCompleted
	}
	if r.LastActiveAt != nil && now.Sub(*r.LastActiveAt) <= activityWindow {
		return StatusActive
	}
	return StatusInactive
}
