package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"github.com/edumaster/backend/internal/app/models"
	"github.com/edumaster/backend/internal/app/models/dto"
	"github.com/edumaster/backend/internal/app/repositories"
	"github.com/edumaster/backend/internal/pkg/apperrors"
)

// AdminService defines the interface for course and user moderation
type AdminService interface {
	ListCourses(ctx context.Context) ([]*dto.AdminCourse, error)
	SetCourseStatus(ctx context.Context, courseID int64, published bool) error
	DeleteCourse(ctx context.Context, courseID int64) error
	ListUsers(ctx context.Context) ([]*dto.AdminUser, error)
	ChangeUserRole(ctx context.Context, userID int64, role string) error
	DeleteUser(ctx context.Context, userID int64) error
}

// adminServiceImpl implements the AdminService interface
type adminServiceImpl struct {
	userRepo   *repositories.UserRepository
	courseRepo *repositories.CourseRepository
	logger     zerolog.Logger
}

// NewAdminService creates a new admin service instance
func NewAdminService(userRepo *repositories.UserRepository, courseRepo *repositories.CourseRepository, logger zerolog.Logger) AdminService {
	return &adminServiceImpl{
		userRepo:   userRepo,
		courseRepo: courseRepo,
		logger:     logger,
	}
}

// ListCourses returns every course row for the moderation dashboard.
func (s *adminServiceImpl) ListCourses(ctx context.Context) ([]*dto.AdminCourse, error) {
	courses, err := s.courseRepo.ListCoursesForAdmin(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing courses: %w", err)
	}
	return courses, nil
}

// SetCourseStatus flips the publish flag of a course.
func (s *adminServiceImpl) SetCourseStatus(ctx context.Context, courseID int64, published bool) error {
	if err := s.courseRepo.SetCoursePublished(ctx, courseID, published); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return apperrors.ErrCourseNotFound
		}
		return fmt.Errorf("updating course status: %w", err)
	}

	s.logger.Info().Int64("courseID", courseID).Bool("published", published).Msg("Course status updated")
	return nil
}

// DeleteCourse removes a course and everything hanging off it.
func (s *adminServiceImpl) DeleteCourse(ctx context.Context, courseID int64) error {
	if err := s.courseRepo.DeleteCourse(ctx, courseID); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return apperrors.ErrCourseNotFound
		}
		return fmt.Errorf("deleting course: %w", err)
	}

	s.logger.Info().Int64("courseID", courseID).Msg("Course deleted")
	return nil
}

// ListUsers returns every user row, ordered by role, with activity stats.
func (s *adminServiceImpl) ListUsers(ctx context.Context) ([]*dto.AdminUser, error) {
	users, err := s.userRepo.ListUsersWithStats(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing users: %w", err)
	}
	return users, nil
}

// ChangeUserRole sets a user's role after validating it.
func (s *adminServiceImpl) ChangeUserRole(ctx context.Context, userID int64, role string) error {
	normalized := models.Role(strings.ToUpper(strings.TrimSpace(role)))
	if !models.ValidRole(normalized) {
		return fmt.Errorf("%w: %q", apperrors.ErrInvalidRole, role)
	}

	if err := s.userRepo.UpdateUserRole(ctx, userID, normalized); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return apperrors.ErrUserNotFound
		}
		return fmt.Errorf("updating user role: %w", err)
	}

	s.logger.Info().Int64("userID", userID).Str("role", string(normalized)).Msg("User role updated")
	return nil
}

// DeleteUser removes a user account.
func (s *adminServiceImpl) DeleteUser(ctx context.Context, userID int64) error {
	if err := s.userRepo.DeleteUser(ctx, userID); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return apperrors.ErrUserNotFound
		}
		return fmt.Errorf("deleting user: %w", err)
	}

	s.logger.Info().Int64("userID", userID).Msg("User deleted")
	return nil
}
