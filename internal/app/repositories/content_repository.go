package repositories

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/edumaster/backend/internal/app/models"
	"github.com/edumaster/backend/internal/pkg/logger"
)

// ContentRepository handles the course content tree and student activity
// rows: sections, lessons, enrollments, per-lesson progress, reviews,
// quizzes with their questions, and quiz attempts.
type ContentRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewContentRepository creates a new ContentRepository
func NewContentRepository(db *pgxpool.Pool) *ContentRepository {
	return &ContentRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

func (r *ContentRepository) insertReturningID(ctx context.Context, builder squirrel.InsertBuilder, entity string) (int64, error) {
	sql, args, err := builder.Suffix("RETURNING id").ToSql()
	if err != nil {
		logger.Error().Err(err).Str("entity", entity).Msg("Error building insert SQL")
		return 0, fmt.Errorf("failed to build create %s query: %w", entity, err)
	}

	var id int64
	if err := r.db.QueryRow(ctx, sql, args...).Scan(&id); err != nil {
		logger.Error().Err(err).Str("entity", entity).Msg("Error executing insert query")
		return 0, fmt.Errorf("error creating %s: %w", entity, err)
	}

	return id, nil
}

// CreateSection inserts a course section and returns its id.
func (r *ContentRepository) CreateSection(ctx context.Context, section *models.Section) (int64, error) {
	return r.insertReturningID(ctx, r.sb.Insert("sections").
		Columns("course_id", "title", "position").
		Values(section.CourseID, section.Title, section.Position), "section")
}

// CreateLesson inserts a lesson and returns its id.
func (r *ContentRepository) CreateLesson(ctx context.Context, lesson *models.Lesson) (int64, error) {
	return r.insertReturningID(ctx, r.sb.Insert("lessons").
		Columns("section_id", "title", "duration", "position").
		Values(lesson.SectionID, lesson.Title, lesson.Duration, lesson.Position), "lesson")
}

// CreateEnrollment inserts an enrollment and returns its id.
func (r *ContentRepository) CreateEnrollment(ctx context.Context, enrollment *models.Enrollment) (int64, error) {
	return r.insertReturningID(ctx, r.sb.Insert("enrollments").
		Columns("user_id", "course_id", "progress", "paid", "completed_at", "last_active_at").
		Values(enrollment.UserID, enrollment.CourseID, enrollment.Progress, enrollment.Paid,
			enrollment.CompletedAt, enrollment.LastActiveAt), "enrollment")
}

// CreateProgress inserts a per-lesson completion row and returns its id.
func (r *ContentRepository) CreateProgress(ctx context.Context, progress *models.Progress) (int64, error) {
	return r.insertReturningID(ctx, r.sb.Insert("progress").
		Columns("user_id", "lesson_id", "completed").
		Values(progress.UserID, progress.LessonID, progress.Completed), "progress")
}

// CreateReview inserts a course review and returns its id.
func (r *ContentRepository) CreateReview(ctx context.Context, review *models.Review) (int64, error) {
	return r.insertReturningID(ctx, r.sb.Insert("reviews").
		Columns("user_id", "course_id", "rating", "comment").
		Values(review.UserID, review.CourseID, review.Rating, review.Comment), "review")
}

// CreateQuiz inserts a quiz and returns its id. CourseID and LessonID may
// both be nil for a standalone weekly quiz.
func (r *ContentRepository) CreateQuiz(ctx context.Context, quiz *models.Quiz) (int64, error) {
	return r.insertReturningID(ctx, r.sb.Insert("quizzes").
		Columns("title", "type", "course_id", "lesson_id").
		Values(quiz.Title, quiz.Type, quiz.CourseID, quiz.LessonID), "quiz")
}

// CreateQuestion inserts a quiz question and returns its id.
func (r *ContentRepository) CreateQuestion(ctx context.Context, question *models.Question) (int64, error) {
	return r.insertReturningID(ctx, r.sb.Insert("questions").
		Columns("quiz_id", "text", "position").
		Values(question.QuizID, question.Text, question.Position), "question")
}

// CreateAttempt inserts a quiz attempt and returns its id.
func (r *ContentRepository) CreateAttempt(ctx context.Context, attempt *models.Attempt) (int64, error) {
	return r.insertReturningID(ctx, r.sb.Insert("attempts").
		Columns("user_id", "quiz_id", "score", "passed").
		Values(attempt.UserID, attempt.QuizID, attempt.Score, attempt.Passed), "attempt")
}
