package models

import "time"

// Enrollment links a student to a course. Progress is a percentage in [0,100],
// enforced by a CHECK constraint on the table.
type Enrollment struct {
	ID           int64      `json:"id" db:"id"`
	UserID       int64      `json:"userId" db:"user_id"`
	CourseID     int64      `json:"courseId" db:"course_id"`
	Progress     int        `json:"progress" db:"progress"`
	Paid         bool       `json:"paid" db:"paid"`
	EnrolledAt   time.Time  `json:"enrolledAt" db:"enrolled_at"`
	CompletedAt  *time.Time `json:"completedAt,omitempty" db:"completed_at"`
	LastActiveAt *time.Time `json:"lastActiveAt,omitempty" db:"last_active_at"`

	// Relations (populated when needed)
	User   *User   `json:"user,omitempty"`
	Course *Course `json:"course,omitempty"`
}

// Progress is a per-user per-lesson completion flag.
type Progress struct {
	ID        int64     `json:"id" db:"id"`
	UserID    int64     `json:"userId" db:"user_id"`
	LessonID  int64     `json:"lessonId" db:"lesson_id"`
	Completed bool      `json:"completed" db:"completed"`
	UpdatedAt time.Time `json:"updatedAt" db:"updated_at"`
}

// Review is a user-to-course rating in [1,5] with an optional comment.
type Review struct {
	ID       int64   `json:"id" db:"id"`
	UserID   int64   `json:"userId" db:"user_id"`
	CourseID int64   `json:"courseId" db:"course_id"`
	Rating   int     `json:"rating" db:"rating"`
	Comment  *string `json:"comment,omitempty" db:"comment"`
}
