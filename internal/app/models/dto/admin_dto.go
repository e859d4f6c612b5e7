package dto

import (
	"time"

	"github.com/edumaster/backend/internal/app/models"
)

// AdminCourse is one row of the admin course list. Instructor is flattened to
// the instructor's display name, status is the derived published/draft string,
// students and rating are computed from enrollments and reviews.
type AdminCourse struct {
	ID         int64     `json:"id" example:"1"`
	Title      string    `json:"title" example:"Go for Backend Engineers"`
	Instructor string    `json:"instructor" example:"John Doe"`
	Category   string    `json:"category" example:"Programming"`
	Status     string    `json:"status" example:"published"`
	Price      float64   `json:"price" example:"499"`
	Level      string    `json:"level" example:"Beginner"`
	Students   int       `json:"students" example:"120"`
	Rating     float64   `json:"rating" example:"4.5"`
	CreatedAt  time.Time `json:"createdAt"`
}

// AdminUser is one row of the admin user list, including the role-specific
// activity stats the detail drawer shows.
type AdminUser struct {
	ID        int64            `json:"id" example:"1"`
	Name      string           `json:"name" example:"Jane Doe"`
	Email     string           `json:"email" example:"jane@edumaster.com"`
	Role      string           `json:"role" example:"STUDENT"`
	Avatar    *string          `json:"avatar,omitempty"`
	Bio       *string          `json:"bio,omitempty"`
	CreatedAt time.Time        `json:"createdAt"`
	UpdatedAt time.Time        `json:"updatedAt"`
	Stats     models.UserStats `json:"stats"`
}

// UpdateCourseStatusRequest sets the publish flag of a course.
type UpdateCourseStatusRequest struct {
	Published *bool `json:"published" binding:"required"`
}

// UpdateUserRoleRequest changes a user's role.
type UpdateUserRoleRequest struct {
	Role string `json:"role" binding:"required" example:"INSTRUCTOR"`
}
