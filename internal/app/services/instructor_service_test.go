package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/edumaster/backend/internal/app/repositories"
)

func TestEnrollmentStatus(t *testing.T) {
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)
	at := func(d time.Duration) *time.Time {
		ts := now.Add(-d)
		return &ts
	}

	tests := []struct {
		name string
		row  *repositories.StudentProgressRow
		want string
	}{
		{
			name: "completed timestamp wins",
			row:  &repositories.StudentProgressRow{Progress: 50, CompletedAt: at(time.Hour)},
			want: StatusCompleted,
		},
		{
			name: "full progress counts as completed",
			row:  &repositories.StudentProgressRow{Progress: 100, LastActiveAt: at(time.Hour)},
			want: StatusCompleted,
		},
		{
			name: "recent activity is active",
			row:  &repositories.StudentProgressRow{Progress: 40, LastActiveAt: at(24 * time.Hour)},
			want: StatusActive,
		},
		{
			name: "activity on the window edge is active",
			row:  &repositories.StudentProgressRow{Progress: 40, LastActiveAt: at(30 * 24 * time.Hour)},
			want: StatusActive,
		},
		{
			name: "stale activity is inactive",
			row:  &repositories.StudentProgressRow{Progress: 40, LastActiveAt: at(31 * 24 * time.Hour)},
			want: StatusInactive,
		},
		{
			name: "never active is inactive",
			row:  &repositories.StudentProgressRow{Progress: 0},
			want: StatusInactive,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, enrollmentStatus(tt.row, now))
		})
	}
}
