package repositories

import (
	"context"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/edumaster/backend/internal/pkg/logger"
)

// ReportRepository serves the read-only traversals behind the text reports.
// Every listing carries the ordering the reports print in.
type ReportRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewReportRepository creates a new ReportRepository
func NewReportRepository(db *pgxpool.Pool) *ReportRepository {
	return &ReportRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// InstructorRosterRow is one instructor with the titles of the courses they created.
type InstructorRosterRow struct {
	Name         string
	Email        string
	CourseTitles []string
}

// UserReportRow is one line of the USERS report section.
type UserReportRow struct {
	Role  string
	Name  string
	Email string
}

// CourseReportRow is one entry of the COURSES report section.
type CourseReportRow struct {
	Title           string
	InstructorName  string
	InstructorEmail string
	Price           float64
	Level           string
	Published       bool
	Sections        int
	Enrollments     int
	Reviews         int
}

// SectionReportRow is one entry of the SECTIONS report section.
type SectionReportRow struct {
	CourseTitle string
	Title       string
	Lessons     []LessonReportRow
}

// LessonReportRow is one lesson line under a section.
type LessonReportRow struct {
	Position int
	Title    string
	Duration *string
}

// EnrollmentReportRow is one entry of the ENROLLMENTS report section.
type EnrollmentReportRow struct {
	UserName    string
	CourseTitle string
	Progress    int
	Paid        bool
	Completed   bool
}

// QuizReportRow is one entry of the QUIZZES report section. CourseTitle and
// LessonTitle are nil for standalone weekly quizzes.
type QuizReportRow struct {
	Title       string
	Type        string
	CourseTitle *string
	LessonTitle *string
	Questions   int
	Attempts    int
}

// ReviewReportRow is one entry of the REVIEWS report section.
type ReviewReportRow struct {
	UserName    string
	CourseTitle string
	Rating      int
	Comment     *string
}

// AttemptReportRow is one entry of the QUIZ ATTEMPTS report section.
type AttemptReportRow struct {
	UserName    string
	QuizTitle   string
	Score       int
	Passed      bool
	SubmittedAt time.Time
}

// ListInstructorRoster returns every instructor with their created course titles.
func (r *ReportRepository) ListInstructorRoster(ctx context.Context) ([]*InstructorRosterRow, error) {
	sql, args, err := r.sb.Select("u.id", "u.name", "u.email").
		From("users u").
		Where(squirrel.Eq{"u.role": "INSTRUCTOR"}).
		OrderBy("u.id ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build instructor roster query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing instructor roster query")
		return nil, fmt.Errorf("error querying instructors: %w", err)
	}
	defer rows.Close()

	var ids []int64
	roster := []*InstructorRosterRow{}
	byID := map[int64]*InstructorRosterRow{}
	for rows.Next() {
		var id int64
		row := &InstructorRosterRow{}
		if err := rows.Scan(&id, &row.Name, &row.Email); err != nil {
			return nil, fmt.Errorf("error scanning instructor row: %w", err)
		}
		ids = append(ids, id)
		byID[id] = row
		roster = append(roster, row)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating instructor rows: %w", err)
	}

	if len(ids) == 0 {
		return roster, nil
	}

	sql, args, err = r.sb.Select("c.instructor_id", "c.title").
		From("courses c").
		Where(squirrel.Eq{"c.instructor_id": ids}).
		OrderBy("c.id ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build roster courses query: %w", err)
	}

	courseRows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing roster courses query")
		return nil, fmt.Errorf("error querying roster courses: %w", err)
	}
	defer courseRows.Close()

	for courseRows.Next() {
		var instructorID int64
		var title string
		if err := courseRows.Scan(&instructorID, &title); err != nil {
			return nil, fmt.Errorf("error scanning roster course row: %w", err)
		}
		if row, ok := byID[instructorID]; ok {
			row.CourseTitles = append(row.CourseTitles, title)
		}
	}
	if err := courseRows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating roster course rows: %w", err)
	}

	return roster, nil
}

// ListUsers returns all users ordered by role.
func (r *ReportRepository) ListUsers(ctx context.Context) ([]*UserReportRow, error) {
	sql, args, err := r.sb.Select("role", "name", "email").
		From("users").
		OrderBy("role ASC", "id ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build users report query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing users report query")
		return nil, fmt.Errorf("error querying users: %w", err)
	}
	defer rows.Close()

	result := []*UserReportRow{}
	for rows.Next() {
		row := &UserReportRow{}
		if err := rows.Scan(&row.Role, &row.Name, &row.Email); err != nil {
			return nil, fmt.Errorf("error scanning user report row: %w", err)
		}
		result = append(result, row)
	}
	return result, rows.Err()
}

// ListCourses returns all courses with instructor info and relation counts,
// newest first.
func (r *ReportRepository) ListCourses(ctx context.Context) ([]*CourseReportRow, error) {
	sql, args, err := r.sb.Select(
		"c.title", "u.name", "u.email", "c.price", "c.level", "c.published",
		"(SELECT COUNT(*) FROM sections s WHERE s.course_id = c.id) AS sections",
		"(SELECT COUNT(*) FROM enrollments e WHERE e.course_id = c.id) AS enrollments",
		"(SELECT COUNT(*) FROM reviews rv WHERE rv.course_id = c.id) AS reviews",
	).
		From("courses c").
		Join("users u ON u.id = c.instructor_id").
		OrderBy("c.created_at DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build courses report query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing courses report query")
		return nil, fmt.Errorf("error querying courses: %w", err)
	}
	defer rows.Close()

	result := []*CourseReportRow{}
	for rows.Next() {
		row := &CourseReportRow{}
		if err := rows.Scan(
			&row.Title, &row.InstructorName, &row.InstructorEmail,
			&row.Price, &row.Level, &row.Published,
			&row.Sections, &row.Enrollments, &row.Reviews,
		); err != nil {
			return nil, fmt.Errorf("error scanning course report row: %w", err)
		}
		result = append(result, row)
	}
	return result, rows.Err()
}

// ListSections returns all sections ordered by position, with their course
// title and lessons.
func (r *ReportRepository) ListSections(ctx context.Context) ([]*SectionReportRow, error) {
	sql, args, err := r.sb.Select("s.id", "c.title", "s.title").
		From("sections s").
		Join("courses c ON c.id = s.course_id").
		OrderBy("s.position ASC", "s.id ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build sections report query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing sections report query")
		return nil, fmt.Errorf("error querying sections: %w", err)
	}
	defer rows.Close()

	var ids []int64
	byID := map[int64]*SectionReportRow{}
	result := []*SectionReportRow{}
	for rows.Next() {
		var id int64
		row := &SectionReportRow{}
		if err := rows.Scan(&id, &row.CourseTitle, &row.Title); err != nil {
			return nil, fmt.Errorf("error scanning section report row: %w", err)
		}
		ids = append(ids, id)
		byID[id] = row
		result = append(result, row)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	if len(ids) == 0 {
		return result, nil
	}

	sql, args, err = r.sb.Select("l.section_id", "l.position", "l.title", "l.duration").
		From("lessons l").
		Where(squirrel.Eq{"l.section_id": ids}).
		OrderBy("l.position ASC", "l.id ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build lessons report query: %w", err)
	}

	lessonRows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing lessons report query")
		return nil, fmt.Errorf("error querying lessons: %w", err)
	}
	defer lessonRows.Close()

	for lessonRows.Next() {
		var sectionID int64
		lesson := LessonReportRow{}
		if err := lessonRows.Scan(&sectionID, &lesson.Position, &lesson.Title, &lesson.Duration); err != nil {
			return nil, fmt.Errorf("error scanning lesson report row: %w", err)
		}
		if section, ok := byID[sectionID]; ok {
			section.Lessons = append(section.Lessons, lesson)
		}
	}
	return result, lessonRows.Err()
}

// ListEnrollments returns all enrollments with user and course info, newest first.
func (r *ReportRepository) ListEnrollments(ctx context.Context) ([]*EnrollmentReportRow, error) {
	sql, args, err := r.sb.Select(
		"u.name", "c.title", "e.progress", "e.paid", "e.completed_at IS NOT NULL",
	).
		From("enrollments e").
		Join("users u ON u.id = e.user_id").
		Join("courses c ON c.id = e.course_id").
		OrderBy("e.enrolled_at DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build enrollments report query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing enrollments report query")
		return nil, fmt.Errorf("error querying enrollments: %w", err)
	}
	defer rows.Close()

	result := []*EnrollmentReportRow{}
	for rows.Next() {
		row := &EnrollmentReportRow{}
		if err := rows.Scan(&row.UserName, &row.CourseTitle, &row.Progress, &row.Paid, &row.Completed); err != nil {
			return nil, fmt.Errorf("error scanning enrollment report row: %w", err)
		}
		result = append(result, row)
	}
	return result, rows.Err()
}

// ListQuizzes returns all quizzes with their location titles and counts.
func (r *ReportRepository) ListQuizzes(ctx context.Context) ([]*QuizReportRow, error) {
	sql, args, err := r.sb.Select(
		"q.title", "q.type", "c.title", "l.title",
		"(SELECT COUNT(*) FROM questions qq WHERE qq.quiz_id = q.id) AS questions",
		"(SELECT COUNT(*) FROM attempts a WHERE a.quiz_id = q.id) AS attempts",
	).
		From("quizzes q").
		LeftJoin("courses c ON c.id = q.course_id").
		LeftJoin("lessons l ON l.id = q.lesson_id").
		OrderBy("q.id ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build quizzes report query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing quizzes report query")
		return nil, fmt.Errorf("error querying quizzes: %w", err)
	}
	defer rows.Close()

	result := []*QuizReportRow{}
	for rows.Next() {
		row := &QuizReportRow{}
		if err := rows.Scan(&row.Title, &row.Type, &row.CourseTitle, &row.LessonTitle, &row.Questions, &row.Attempts); err != nil {
			return nil, fmt.Errorf("error scanning quiz report row: %w", err)
		}
		result = append(result, row)
	}
	return result, rows.Err()
}

// CountLessonProgress returns the total and completed lesson-progress counts.
func (r *ReportRepository) CountLessonProgress(ctx context.Context) (total, completed int, err error) {
	sql, args, err := r.sb.Select(
		"COUNT(*)",
		"COUNT(*) FILTER (WHERE completed)",
	).From("progress").ToSql()
	if err != nil {
		return 0, 0, fmt.Errorf("failed to build progress report query: %w", err)
	}

	if err := r.db.QueryRow(ctx, sql, args...).Scan(&total, &completed); err != nil {
		logger.Error().Err(err).Msg("Error executing progress report query")
		return 0, 0, fmt.Errorf("error counting lesson progress: %w", err)
	}
	return total, completed, nil
}

// ListReviews returns all reviews with user and course info.
func (r *ReportRepository) ListReviews(ctx context.Context) ([]*ReviewReportRow, error) {
	sql, args, err := r.sb.Select("u.name", "c.title", "rv.rating", "rv.comment").
		From("reviews rv").
		Join("users u ON u.id = rv.user_id").
		Join("courses c ON c.id = rv.course_id").
		OrderBy("rv.id ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build reviews report query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing reviews report query")
		return nil, fmt.Errorf("error querying reviews: %w", err)
	}
	defer rows.Close()

	result := []*ReviewReportRow{}
	for rows.Next() {
		row := &ReviewReportRow{}
		if err := rows.Scan(&row.UserName, &row.CourseTitle, &row.Rating, &row.Comment); err != nil {
			return nil, fmt.Errorf("error scanning review report row: %w", err)
		}
		result = append(result, row)
	}
	return result, rows.Err()
}

// ListAttempts returns all quiz attempts with user and quiz info, newest first.
func (r *ReportRepository) ListAttempts(ctx context.Context) ([]*AttemptReportRow, error) {
	sql, args, err := r.sb.Select("u.name", "q.title", "a.score", "a.passed", "a.submitted_at").
		From("attempts a").
		Join("users u ON u.id = a.user_id").
		Join("quizzes q ON q.id = a.quiz_id").
		OrderBy("a.submitted_at DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build attempts report query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing attempts report query")
		return nil, fmt.Errorf("error querying attempts: %w", err)
	}
	defer rows.Close()

	result := []*AttemptReportRow{}
	for rows.Next() {
		row := &AttemptReportRow{}
		if err := rows.Scan(&row.UserName, &row.QuizTitle, &row.Score, &row.Passed, &row.SubmittedAt); err != nil {
			return nil, fmt.Errorf("error scanning attempt report row: %w", err)
		}
		result = append(result, row)
	}
	return result, rows.Err()
}
