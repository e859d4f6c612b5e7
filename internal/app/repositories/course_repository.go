package repositories

import (
	"context"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/edumaster/backend/internal/app/models"
	"github.com/edumaster/backend/internal/app/models/dto"
	"github.com/edumaster/backend/internal/pkg/logger"
)

// Course error types
var (
	// ErrCourseNotFound is returned when a course is not found.
	ErrCourseNotFound = ErrNotFound
)

// CourseRepository handles course database operations
type CourseRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewCourseRepository creates a new CourseRepository
func NewCourseRepository(db *pgxpool.Pool) *CourseRepository {
	return &CourseRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// CreateCourse inserts a new course and returns its id.
func (r *CourseRepository) CreateCourse(ctx context.Context, course *models.Course) (int64, error) {
	sql, args, err := r.sb.Insert("courses").
		Columns("title", "instructor_id", "category", "published", "price", "level").
		Values(course.Title, course.InstructorID, course.Category, course.Published, course.Price, course.Level).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building create course SQL")
		return 0, fmt.Errorf("failed to build create course query: %w", err)
	}

	var id int64
	if err := r.db.QueryRow(ctx, sql, args...).Scan(&id); err != nil {
		logger.Error().Err(err).Msg("Error executing create course query")
		return 0, fmt.Errorf("error creating course: %w", err)
	}

	return id, nil
}

// courseRowColumns are the derived columns shared by the admin and instructor
// course listings.
var courseRowColumns = []string{
	"(SELECT COUNT(*) FROM enrollments e WHERE e.course_id = c.id) AS students",
	"COALESCE((SELECT ROUND(AVG(rv.rating)::numeric, 1) FROM reviews rv WHERE rv.course_id = c.id), 0)::float8 AS rating",
}

// ListCoursesForAdmin returns every course with its instructor name, derived
// status string, enrollment count and average rating, newest first.
func (r *CourseRepository) ListCoursesForAdmin(ctx context.Context) ([]*dto.AdminCourse, error) {
	sql, args, err := r.sb.Select(append([]string{
		"c.id", "c.title", "u.name AS instructor", "c.category", "c.published",
		"c.price", "c.level", "c.created_at",
	}, courseRowColumns...)...).
		From("courses c").
		Join("users u ON u.id = c.instructor_id").
		OrderBy("c.created_at DESC").
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building list courses SQL")
		return nil, fmt.Errorf("failed to build list courses query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing list courses query")
		return nil, fmt.Errorf("error querying courses: %w", err)
	}
	defer rows.Close()

	courses := []*dto.AdminCourse{}
	for rows.Next() {
		course := &dto.AdminCourse{}
		var published bool
		if err := rows.Scan(
			&course.ID, &course.Title, &course.Instructor, &course.Category, &published,
			&course.Price, &course.Level, &course.CreatedAt,
			&course.Students, &course.Rating,
		); err != nil {
			logger.Error().Err(err).Msg("Error scanning course row during list")
			return nil, fmt.Errorf("error scanning course row: %w", err)
		}
		course.Status = courseStatus(published)
		courses = append(courses, course)
	}

	if err := rows.Err(); err != nil {
		logger.Error().Err(err).Msg("Error iterating course rows")
		return nil, fmt.Errorf("error iterating course rows: %w", err)
	}

	return courses, nil
}

func courseStatus(published bool) string {
	if published {
		return "published"
	}
	return "draft"
}

// SetCoursePublished updates the publish flag of a course.
func (r *CourseRepository) SetCoursePublished(ctx context.Context, id int64, published bool) error {
	sql, args, err := r.sb.Update("courses").
		Set("published", published).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building update course status SQL")
		return fmt.Errorf("failed to build update course status query: %w", err)
	}

	tag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Int64("courseID", id).Msg("Error executing update course status query")
		return fmt.Errorf("error updating course status: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrCourseNotFound
	}

	return nil
}

// DeleteCourse removes a course. Sections, lessons, enrollments, quizzes and
// reviews go with it via ON DELETE CASCADE.
func (r *CourseRepository) DeleteCourse(ctx context.Context, id int64) error {
	sql, args, err := r.sb.Delete("courses").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building delete course SQL")
		return fmt.Errorf("failed to build delete course query: %w", err)
	}

	tag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Int64("courseID", id).Msg("Error executing delete course query")
		return fmt.Errorf("error deleting course: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrCourseNotFound
	}

	return nil
}

// ListCoursesByInstructor returns the instructor's own courses with the same
// derived counters the admin listing carries, newest first.
func (r *CourseRepository) ListCoursesByInstructor(ctx context.Context, instructorID int64) ([]*dto.InstructorCourse, error) {
	sql, args, err := r.sb.Select(append([]string{
		"c.id", "c.title", "c.category", "c.published", "c.price", "c.level", "c.created_at",
	}, courseRowColumns...)...).
		From("courses c").
		Where(squirrel.Eq{"c.instructor_id": instructorID}).
		OrderBy("c.created_at DESC").
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building instructor courses SQL")
		return nil, fmt.Errorf("failed to build instructor courses query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing instructor courses query")
		return nil, fmt.Errorf("error querying instructor courses: %w", err)
	}
	defer rows.Close()

	courses := []*dto.InstructorCourse{}
	for rows.Next() {
		course := &dto.InstructorCourse{}
		if err := rows.Scan(
			&course.ID, &course.Title, &course.Category, &course.Published,
			&course.Price, &course.Level, &course.CreatedAt,
			&course.Students, &course.Rating,
		); err != nil {
			logger.Error().Err(err).Msg("Error scanning instructor course row")
			return nil, fmt.Errorf("error scanning instructor course row: %w", err)
		}
		courses = append(courses, course)
	}

	if err := rows.Err(); err != nil {
		logger.Error().Err(err).Msg("Error iterating instructor course rows")
		return nil, fmt.Errorf("error iterating instructor course rows: %w", err)
	}

	return courses, nil
}

// StudentProgressRow is the raw per-enrollment row for an instructor's
// courses. The status string is derived later because it depends on the
// current time.
type StudentProgressRow struct {
	UserID           int64
	Name             string
	Email            string
	Course           string
	Progress         int
	LessonsCompleted int
	TotalLessons     int
	QuizScore        int
	CompletedAt      *time.Time
	LastActiveAt     *time.Time
}

// ListStudentProgress returns one row per enrollment in the instructor's
// courses, with per-course lesson and quiz aggregates.
func (r *CourseRepository) ListStudentProgress(ctx context.Context, instructorID int64) ([]*StudentProgressRow, error) {
	sql, args, err := r.sb.Select(
		"u.id", "u.name", "u.email", "c.title AS course", "e.progress",
		`(SELECT COUNT(*) FROM progress p
			JOIN lessons l ON l.id = p.lesson_id
			JOIN sections s ON s.id = l.section_id
			WHERE p.user_id = u.id AND p.completed AND s.course_id = c.id) AS lessons_completed`,
		`(SELECT COUNT(*) FROM lessons l
			JOIN sections s ON s.id = l.section_id
			WHERE s.course_id = c.id) AS total_lessons`,
		`COALESCE((SELECT ROUND(AVG(a.score)) FROM attempts a
			JOIN quizzes q ON q.id = a.quiz_id
			WHERE a.user_id = u.id AND (q.course_id = c.id OR q.lesson_id IN (
				SELECT l.id FROM lessons l
				JOIN sections s ON s.id = l.section_id
				WHERE s.course_id = c.id))), 0)::int AS quiz_score`,
		"e.completed_at", "e.last_active_at",
	).
		From("enrollments e").
		Join("users u ON u.id = e.user_id").
		Join("courses c ON c.id = e.course_id").
		Where(squirrel.Eq{"c.instructor_id": instructorID}).
		OrderBy("u.name ASC", "c.title ASC").
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building student progress SQL")
		return nil, fmt.Errorf("failed to build student progress query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing student progress query")
		return nil, fmt.Errorf("error querying student progress: %w", err)
	}
	defer rows.Close()

	result := []*StudentProgressRow{}
	for rows.Next() {
		row := &StudentProgressRow{}
		if err := rows.Scan(
			&row.UserID, &row.Name, &row.Email, &row.Course, &row.Progress,
			&row.LessonsCompleted, &row.TotalLessons, &row.QuizScore,
			&row.CompletedAt, &row.LastActiveAt,
		); err != nil {
			logger.Error().Err(err).Msg("Error scanning student progress row")
			return nil, fmt.Errorf("error scanning student progress row: %w", err)
		}
		result = append(result, row)
	}

	if err := rows.Err(); err != nil {
		logger.Error().Err(err).Msg("Error iterating student progress rows")
		return nil, fmt.Errorf("error iterating student progress rows: %w", err)
	}

	return result, nil
}
