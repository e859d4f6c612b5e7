package dto

import "time"

// StudentRow is one per-enrollment row of the instructor's student progress
// list. A student appears once per enrolled course, so rows are keyed by
// (student id, course name).
type StudentRow struct {
	ID               int64      `json:"id" example:"7"`
	Name             string     `json:"name" example:"Sam Student"`
	Email            string     `json:"email" example:"sam@edumaster.com"`
	Course           string     `json:"course" example:"Go for Backend Engineers"`
	Progress         int        `json:"progress" example:"60"`
	LessonsCompleted int        `json:"lessonsCompleted" example:"6"`
	TotalLessons     int        `json:"totalLessons" example:"10"`
	QuizScore        int        `json:"quizScore" example:"85"`
	Status           string     `json:"status" example:"active"`
	LastActive       *time.Time `json:"lastActive,omitempty"`
}

// InstructorCourse is one row of the instructor's own course list.
type InstructorCourse struct {
	ID        int64     `json:"id" example:"1"`
	Title     string    `json:"title" example:"Go for Backend Engineers"`
	Category  string    `json:"category" example:"Programming"`
	Published bool      `json:"published" example:"true"`
	Price     float64   `json:"price" example:"499"`
	Level     string    `json:"level" example:"Beginner"`
	Students  int       `json:"students" example:"120"`
	Rating    float64   `json:"rating" example:"4.5"`
	CreatedAt time.Time `json:"createdAt"`
}
