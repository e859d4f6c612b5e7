package dashboard

import (
	"context"
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"github.com/edumaster/backend/internal/app/models/dto"
	"github.com/edumaster/backend/internal/pkg/apiclient"
)

// CourseFilter is the filter state of the course management view.
type CourseFilter struct {
	Search   string
	Status   string // "all", "published" or "draft"
	Category string // "all" or a category value
}

// CourseStats are the summary numbers shown above the course list.
type CourseStats struct {
	Total       int
	Published   int
	Unpublished int
	Students    int
}

// CourseView is the course management (moderation) view controller.
type CourseView struct {
	client    *apiclient.Client
	notifier  Notifier
	confirmer Confirmer
	logger    zerolog.Logger

	Courses []*dto.AdminCourse
	Loading bool
}

// NewCourseView creates the course management view controller.
func NewCourseView(client *apiclient.Client, notifier Notifier, confirmer Confirmer, logger zerolog.Logger) *CourseView {
	return &CourseView{
		client:    client,
		notifier:  notifier,
		confirmer: confirmer,
		logger:    logger,
	}
}

// Load fetches all courses. On failure the list stays empty and the error is
// surfaced through the notifier.
func (v *CourseView) Load(ctx context.Context) {
	v.Loading = true
	defer func() { v.Loading = false }()

	courses, err := v.client.ListAdminCourses(ctx)
	if err != nil {
		v.logger.Error().Err(err).Msg("Failed to load courses")
		v.notifier.Error("Failed to load courses")
		v.Courses = nil
		return
	}
	v.Courses = courses
}

// Approve publishes a course, then reloads the list.
func (v *CourseView) Approve(ctx context.Context, courseID int64) {
	if err := v.client.SetCourseStatus(ctx, courseID, true); err != nil {
		v.logger.Error().Err(err).Int64("courseId", courseID).Msg("Failed to approve course")
		v.notifier.Error("Failed to approve course")
		return
	}
	v.notifier.Success("Course approved")
	v.Load(ctx)
}

// Unpublish moves a course back to draft, then reloads the list.
func (v *CourseView) Unpublish(ctx context.Context, courseID int64) {
	if err := v.client.SetCourseStatus(ctx, courseID, false); err != nil {
		v.logger.Error().Err(err).Int64("courseId", courseID).Msg("Failed to unpublish course")
		v.notifier.Error("Failed to unpublish course")
		return
	}
	v.notifier.Success("Course unpublished")
	v.Load(ctx)
}

// Delete removes a course after confirmation, then reloads the list.
func (v *CourseView) Delete(ctx context.Context, courseID int64) {
	if !v.confirmer.Confirm(ctx, fmt.Sprintf("Delete course %d? This cannot be undone.", courseID)) {
		return
	}
	if err := v.client.DeleteCourse(ctx, courseID); err != nil {
		v.logger.Error().Err(err).Int64("courseId", courseID).Msg("Failed to delete course")
		v.notifier.Error("Failed to delete course")
		return
	}
	v.notifier.Success("Course deleted")
	v.Load(ctx)
}

// Stats computes the summary numbers over the unfiltered list.
func (v *CourseView) Stats() CourseStats {
	stats := CourseStats{Total: len(v.Courses)}
	for _, c := range v.Courses {
		if c.Status == "published" {
			stats.Published++
		} else {
			stats.Unpublished++
		}
		stats.Students += c.Students
	}
	return stats
}

// FilterCourses returns the courses matching the filter. A course matches
// when its title or instructor name contains the search text
// (case-insensitive) and the status and category filters are "all" or equal.
func FilterCourses(courses []*dto.AdminCourse, filter CourseFilter) []*dto.AdminCourse {
	search := strings.ToLower(filter.Search)

	result := []*dto.AdminCourse{}
	for _, c := range courses {
		matchesSearch := strings.Contains(strings.ToLower(c.Title), search) ||
			strings.Contains(strings.ToLower(c.Instructor), search)
		matchesStatus := filter.Status == "all" || c.Status == filter.Status
		matchesCategory := filter.Category == "all" || c.Category == filter.Category

		if matchesSearch && matchesStatus && matchesCategory {
			result = append(result, c)
		}
	}
	return result
}

// Categories returns the distinct non-empty category values of the list, in
// first-seen order.
func Categories(courses []*dto.AdminCourse) []string {
	seen := map[string]bool{}
	result := []string{}
	for _, c := range courses {
		if c.Category == "" || seen[c.Category] {
			continue
		}
		seen[c.Category] = true
		result = append(result, c.Category)
	}
	return result
}
