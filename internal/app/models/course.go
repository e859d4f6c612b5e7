package models

import "time"

// Course represents a course created by an instructor.
type Course struct {
	ID           int64     `json:"id" db:"id"`
	Title        string    `json:"title" db:"title"`
	InstructorID int64     `json:"instructorId" db:"instructor_id"`
	Category     string    `json:"category" db:"category"`
	Published    bool      `json:"published" db:"published"`
	Price        float64   `json:"price" db:"price"`
	Level        string    `json:"level" db:"level"`
	CreatedAt    time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt    time.Time `json:"updatedAt" db:"updated_at"`

	// Relation (populated when needed)
	Instructor *User `json:"instructor,omitempty"`
}

// Status returns the free-text status string the dashboards filter on,
// derived from the publish flag.
func (c *Course) Status() string {
	if c.Published {
		return "published"
	}
	return "draft"
}

// Section belongs to a course and groups ordered lessons.
type Section struct {
	ID       int64  `json:"id" db:"id"`
	CourseID int64  `json:"courseId" db:"course_id"`
	Title    string `json:"title" db:"title"`
	Position int    `json:"position" db:"position"`

	Lessons []*Lesson `json:"lessons,omitempty"`
}

// Lesson belongs to a section.
type Lesson struct {
	ID        int64   `json:"id" db:"id"`
	SectionID int64   `json:"sectionId" db:"section_id"`
	Title     string  `json:"title" db:"title"`
	Duration  *string `json:"duration,omitempty" db:"duration"` // Nullable, e.g. "12:30"
	Position  int     `json:"position" db:"position"`
}
