package models

import (
	"time"
)

// Role defines the user role type
type Role string

const (
	RoleStudent    Role = "STUDENT"
	RoleInstructor Role = "INSTRUCTOR"
	RoleAdmin      Role = "ADMIN"
)

// ValidRole reports whether the given value is a known role.
func ValidRole(r Role) bool {
	switch r {
	case RoleStudent, RoleInstructor, RoleAdmin:
		return true
	}
	return false
}

// User defines the user model based on the 'users' table
type User struct {
	ID        int64     `json:"id" db:"id" example:"1"`
	Name      string    `json:"name" db:"name" example:"John Doe"`
	Email     string    `json:"email" db:"email" example:"john@edumaster.com"`
	Password  string    `json:"-" db:"password"` // Hashed, excluded from JSON
	Role      Role      `json:"role" db:"role" example:"STUDENT"`
	Avatar    *string   `json:"avatar,omitempty" db:"avatar"`
	Bio       *string   `json:"bio,omitempty" db:"bio"`
	CreatedAt time.Time `json:"createdAt" db:"created_at" example:"2024-01-01T10:00:00Z"`
	UpdatedAt time.Time `json:"updatedAt" db:"updated_at" example:"2024-01-02T15:30:00Z"`
}

// UserStats holds the derived, role-specific activity counters shown in the
// admin user list. Fields that do not apply to a role stay zero.
type UserStats struct {
	CoursesEnrolled  int `json:"coursesEnrolled"`
	CoursesCompleted int `json:"coursesCompleted"`
	CoursesCreated   int `json:"coursesCreated"`
	TotalStudents    int `json:"totalStudents"`
}
