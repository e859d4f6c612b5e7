package models

import "time"

// Quiz is attached to a course or a lesson, or neither (a standalone weekly
// quiz). Never both; the table carries a CHECK constraint for that.
type Quiz struct {
	ID       int64  `json:"id" db:"id"`
	Title    string `json:"title" db:"title"`
	Type     string `json:"type" db:"type"`
	CourseID *int64 `json:"courseId,omitempty" db:"course_id"`
	LessonID *int64 `json:"lessonId,omitempty" db:"lesson_id"`

	// Relations (populated when needed)
	Course *Course `json:"course,omitempty"`
	Lesson *Lesson `json:"lesson,omitempty"`
}

// Question belongs to a quiz.
type Question struct {
	ID       int64  `json:"id" db:"id"`
	QuizID   int64  `json:"quizId" db:"quiz_id"`
	Text     string `json:"text" db:"text"`
	Position int    `json:"position" db:"position"`
}

// Attempt is a scored submission of a quiz by a user.
type Attempt struct {
	ID          int64     `json:"id" db:"id"`
	UserID      int64     `json:"userId" db:"user_id"`
	QuizID      int64     `json:"quizId" db:"quiz_id"`
	Score       int       `json:"score" db:"score"`
	Passed      bool      `json:"passed" db:"passed"`
	SubmittedAt time.Time `json:"submittedAt" db:"submitted_at"`

	// Relations (populated when needed)
	User *User `json:"user,omitempty"`
	Quiz *Quiz `json:"quiz,omitempty"`
}
