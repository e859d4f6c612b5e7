package dashboard

import (
	"context"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/edumaster/backend/internal/app/models/dto"
	"github.com/edumaster/backend/internal/pkg/apiclient"
)

// StudentFilter is the filter state of the student progress view.
type StudentFilter struct {
	Search string
	Course string // "all" or a course name
}

// StudentStats are the summary numbers shown above the progress table.
type StudentStats struct {
	Total       int
	Active      int
	Completed   int
	AvgProgress int
}

// Badge is the visual status indicator of a progress row.
type Badge struct {
	Label string
	Color string
}

// StudentProgressView is the instructor's student progress view controller.
// Rows are per enrollment, so a student shows up once per enrolled course.
type StudentProgressView struct {
	client   *apiclient.Client
	notifier Notifier
	logger   zerolog.Logger

	Rows    []*dto.StudentRow
	Loading bool
}

// NewStudentProgressView creates the student progress view controller.
func NewStudentProgressView(client *apiclient.Client, notifier Notifier, logger zerolog.Logger) *StudentProgressView {
	return &StudentProgressView{
		client:   client,
		notifier: notifier,
		logger:   logger,
	}
}

// Load fetches all progress rows for the instructor's courses.
func (v *StudentProgressView) Load(ctx context.Context) {
	v.Loading = true
	defer func() { v.Loading = false }()

	rows, err := v.client.ListStudents(ctx)
	if err != nil {
		v.logger.Error().Err(err).Msg("Failed to load student progress")
		v.notifier.Error("Failed to load student progress")
		v.Rows = nil
		return
	}
	v.Rows = rows
}

// Export is a stub; no file is produced.
func (v *StudentProgressView) Export() {
	v.notifier.Info("Export is not available yet")
}

// Message is a stub; nothing is sent.
func (v *StudentProgressView) Message(studentName string) {
	v.notifier.Info(fmt.Sprintf("Messaging %s is not available yet", studentName))
}

// Stats computes the summary numbers over the unfiltered rows. The average
// progress is the rounded arithmetic mean, 0 when there are no rows.
func (v *StudentProgressView) Stats() StudentStats {
	stats := StudentStats{Total: len(v.Rows)}
	if len(v.Rows) == 0 {
		return stats
	}

	sum := 0
	for _, r := range v.Rows {
		switch r.Status {
		case "active":
			stats.Active++
		case "completed":
			stats.Completed++
		}
		sum += r.Progress
	}
	stats.AvgProgress = int(math.Round(float64(sum) / float64(len(v.Rows))))
	return stats
}

// FilterStudents returns the rows matching the filter. A row matches when
// name or email contains the search text (case-insensitive) and the course
// filter is "all" or equals the row's course name.
func FilterStudents(rows []*dto.StudentRow, filter StudentFilter) []*dto.StudentRow {
	search := strings.ToLower(filter.Search)

	result := []*dto.StudentRow{}
	for _, r := range rows {
		matchesSearch := strings.Contains(strings.ToLower(r.Name), search) ||
			strings.Contains(strings.ToLower(r.Email), search)
		matchesCourse := filter.Course == "all" || r.Course == filter.Course

		if matchesSearch && matchesCourse {
			result = append(result, r)
		}
	}
	return result
}

// Courses returns the distinct course names of the rows, in first-seen order.
func Courses(rows []*dto.StudentRow) []string {
	seen := map[string]bool{}
	result := []string{}
	for _, r := range rows {
		if r.Course == "" || seen[r.Course] {
			continue
		}
		seen[r.Course] = true
		result = append(result, r.Course)
	}
	return result
}

// TimeAgo renders a last-active timestamp relative to now. A nil timestamp
// renders "Never"; anything older than 30 days renders the calendar date.
func TimeAgo(t *time.Time, now time.Time) string {
	if t == nil {
		return "Never"
	}

	diff := now.Sub(*t)
	switch {
	case diff < time.Minute:
		return "Just now"
	case diff < time.Hour:
		return fmt.Sprintf("%dm ago", int(diff.Minutes()))
	case diff < 24*time.Hour:
		return fmt.Sprintf("%dh ago", int(diff.Hours()))
	case diff < 30*24*time.Hour:
		return fmt.Sprintf("%dd ago", int(diff.Hours()/24))
	default:
		return t.Format("Jan 2, 2006")
	}
}

// StatusBadge maps a row status to its badge.
func StatusBadge(status string) Badge {
	switch status {
	case "completed":
		return Badge{Label: "Completed", Color: "green"}
	case "active":
		return Badge{Label: "Active", Color: "blue"}
	default:
		return Badge{Label: "Inactive", Color: "gray"}
	}
}
