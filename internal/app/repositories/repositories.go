package repositories

import (
	"errors"

	"github.com/jackc/pgx/v5/pgxpool"
)

// ErrNotFound is the shared not-found sentinel used by all repositories.
var ErrNotFound = errors.New("resource not found")

// Repositories holds all the repository instances
type Repositories struct {
	UserRepository    *UserRepository
	CourseRepository  *CourseRepository
	ContentRepository *ContentRepository
	ReportRepository  *ReportRepository
}

// NewRepositories initializes all repositories
func NewRepositories(db *pgxpool.Pool) *Repositories {
	return &Repositories{
		UserRepository:    NewUserRepository(db),
		CourseRepository:  NewCourseRepository(db),
		ContentRepository: NewContentRepository(db),
		ReportRepository:  NewReportRepository(db),
	}
}
