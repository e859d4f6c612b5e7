// Package report renders the database-inspection reports as plain text.
// Fetching goes through repositories.ReportRepository; formatting is pure
// string building so it can be tested without a database.
package report

import (
	"context"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/edumaster/backend/internal/app/repositories"
)

const lineWidth = 80

// Snapshot holds everything the full database report prints.
type Snapshot struct {
	Users             []*repositories.UserReportRow
	Courses           []*repositories.CourseReportRow
	Sections          []*repositories.SectionReportRow
	Enrollments       []*repositories.EnrollmentReportRow
	Quizzes           []*repositories.QuizReportRow
	ProgressTotal     int
	ProgressCompleted int
	Reviews           []*repositories.ReviewReportRow
	Attempts          []*repositories.AttemptReportRow
}

// CollectSnapshot fetches every report section in display order.
func CollectSnapshot(ctx context.Context, repo *repositories.ReportRepository) (*Snapshot, error) {
	s := &Snapshot{}
	var err error

	if s.Users, err = repo.ListUsers(ctx); err != nil {
		return nil, err
	}
	if s.Courses, err = repo.ListCourses(ctx); err != nil {
		return nil, err
	}
	if s.Sections, err = repo.ListSections(ctx); err != nil {
		return nil, err
	}
	if s.Enrollments, err = repo.ListEnrollments(ctx); err != nil {
		return nil, err
	}
	if s.Quizzes, err = repo.ListQuizzes(ctx); err != nil {
		return nil, err
	}
	if s.ProgressTotal, s.ProgressCompleted, err = repo.CountLessonProgress(ctx); err != nil {
		return nil, err
	}
	if s.Reviews, err = repo.ListReviews(ctx); err != nil {
		return nil, err
	}
	if s.Attempts, err = repo.ListAttempts(ctx); err != nil {
		return nil, err
	}
	return s, nil
}

// FormatInstructorRoster renders each instructor with the courses they created.
func FormatInstructorRoster(roster []*repositories.InstructorRosterRow) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Found %d instructors:\n", len(roster))
	for _, row := range roster {
		fmt.Fprintf(&b, "- %s (%s)\n", row.Name, row.Email)
		fmt.Fprintf(&b, "  Courses: %d\n", len(row.CourseTitles))
		for _, title := range row.CourseTitles {
			fmt.Fprintf(&b, "    * %s\n", title)
		}
	}
	return b.String()
}

// FormatSnapshot renders the full database contents report.
func FormatSnapshot(s *Snapshot) string {
	var b strings.Builder

	rule := strings.Repeat("=", lineWidth)
	fmt.Fprintln(&b, rule)
	fmt.Fprintln(&b, "DATABASE CONTENTS")
	fmt.Fprintln(&b, rule)

	writeUsers(&b, s.Users)
	writeCourses(&b, s.Courses)
	writeSections(&b, s.Sections)
	writeEnrollments(&b, s.Enrollments)
	writeQuizzes(&b, s.Quizzes)
	writeProgress(&b, s.ProgressTotal, s.ProgressCompleted)
	writeReviews(&b, s.Reviews)
	writeAttempts(&b, s.Attempts)

	fmt.Fprintln(&b)
	fmt.Fprintln(&b, rule)
	fmt.Fprintln(&b, "END OF DATABASE CONTENTS")
	fmt.Fprintln(&b, rule)

	return b.String()
}

func sectionHeader(b *strings.Builder, title string, count int) {
	fmt.Fprintf(b, "\n%s (%d total)\n", title, count)
	fmt.Fprintln(b, strings.Repeat("-", lineWidth))
}

func writeUsers(b *strings.Builder, users []*repositories.UserReportRow) {
	sectionHeader(b, "USERS", len(users))
	for _, u := range users {
		fmt.Fprintf(b, "%s | %s | %s\n", padRight(u.Role, 12), padRight(u.Name, 25), u.Email)
	}
}

func writeCourses(b *strings.Builder, courses []*repositories.CourseReportRow) {
	sectionHeader(b, "COURSES", len(courses))
	for _, c := range courses {
		fmt.Fprintf(b, "\nTitle: %s\n", c.Title)
		fmt.Fprintf(b, "  Instructor: %s (%s)\n", c.InstructorName, c.InstructorEmail)
		fmt.Fprintf(b, "  Price: %.2f | Level: %s | Published: %t\n", c.Price, c.Level, c.Published)
		fmt.Fprintf(b, "  Sections: %d | Enrollments: %d | Reviews: %d\n", c.Sections, c.Enrollments, c.Reviews)
	}
}

func writeSections(b *strings.Builder, sections []*repositories.SectionReportRow) {
	sectionHeader(b, "SECTIONS", len(sections))
	for _, s := range sections {
		fmt.Fprintf(b, "\n%s -> %s\n", s.CourseTitle, s.Title)
		fmt.Fprintf(b, "  Lessons: %d\n", len(s.Lessons))
		for _, l := range s.Lessons {
			duration := "N/A"
			if l.Duration != nil && *l.Duration != "" {
				duration = *l.Duration
			}
			fmt.Fprintf(b, "    %d. %s (%s)\n", l.Position, l.Title, duration)
		}
	}
}

func writeEnrollments(b *strings.Builder, enrollments []*repositories.EnrollmentReportRow) {
	sectionHeader(b, "ENROLLMENTS", len(enrollments))
	for _, e := range enrollments {
		fmt.Fprintf(b, "%s -> %s\n", padRight(e.UserName, 25), truncate(e.CourseTitle, 40))
		fmt.Fprintf(b, "  Progress: %d%% | Paid: %t | Completed: %s\n", e.Progress, e.Paid, yesNo(e.Completed))
	}
}

func writeQuizzes(b *strings.Builder, quizzes []*repositories.QuizReportRow) {
	sectionHeader(b, "QUIZZES", len(quizzes))
	for _, q := range quizzes {
		fmt.Fprintf(b, "%s (%s)\n", q.Title, q.Type)
		fmt.Fprintf(b, "  Location: %s\n", quizLocation(q))
		fmt.Fprintf(b, "  Questions: %d | Attempts: %d\n", q.Questions, q.Attempts)
	}
}

func writeProgress(b *strings.Builder, total, completed int) {
	sectionHeader(b, "LESSON PROGRESS", total)
	fmt.Fprintf(b, "Completed: %d | In Progress: %d\n", completed, total-completed)
}

func writeReviews(b *strings.Builder, reviews []*repositories.ReviewReportRow) {
	sectionHeader(b, "REVIEWS", len(reviews))
	for _, r := range reviews {
		comment := "No comment"
		if r.Comment != nil && *r.Comment != "" {
			comment = *r.Comment
		}
		fmt.Fprintf(b, "%s -> %s\n", r.UserName, r.CourseTitle)
		fmt.Fprintf(b, "  Rating: %s (%d/5)\n", strings.Repeat("*", r.Rating), r.Rating)
		fmt.Fprintf(b, "  Comment: %s\n", comment)
	}
}

func writeAttempts(b *strings.Builder, attempts []*repositories.AttemptReportRow) {
	sectionHeader(b, "QUIZ ATTEMPTS", len(attempts))
	for _, a := range attempts {
		fmt.Fprintf(b, "%s -> %s\n", a.UserName, a.QuizTitle)
		fmt.Fprintf(b, "  Score: %d | Passed: %s\n", a.Score, yesNo(a.Passed))
	}
}

// quizLocation picks the course title, then the lesson title, then "Weekly"
// for standalone quizzes.
func quizLocation(q *repositories.QuizReportRow) string {
	if q.CourseTitle != nil {
		return *q.CourseTitle
	}
	if q.LessonTitle != nil {
		return *q.LessonTitle
	}
	return "Weekly"
}

func yesNo(v bool) string {
	if v {
		return "Yes"
	}
	return "No"
}

// padRight and truncate count runes so non-ASCII names keep the columns
// aligned and never get cut mid-sequence.
func padRight(s string, width int) string {
	n := utf8.RuneCountInString(s)
	if n >= width {
		return s
	}
	return s + strings.Repeat(" ", width-n)
}

func truncate(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max])
}
