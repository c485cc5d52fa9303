package services

import (
	"testing"
	"time"

	"backend/models"

	"github.com/stretchr/testify/assert"
)

func TestStreakFromDays(t *testing.T) {
	tests := []struct {
		name  string
		days  []string
		today string
		want  int
	}{
		{
			name:  "empty history",
			days:  nil,
			today: "2026-09-01",
			want:  0,
		},
		{
			name:  "single day today",
			days:  []string{"2026-09-01"},
			today: "2026-09-01",
			want:  1,
		},
		{
			name:  "three consecutive days ending today",
			days:  []string{"2026-08-30", "2026-08-31", "2026-09-01"},
			today: "2026-09-01",
			want:  3,
		},
		{
			name:  "streak anchored at yesterday still counts",
			days:  []string{"2026-08-30", "2026-08-31"},
			today: "2026-09-01",
			want:  2,
		},
		{
			name:  "most recent day older than yesterday",
			days:  []string{"2026-08-28", "2026-08-29", "2026-08-30"},
			today: "2026-09-01",
			want:  0,
		},
		{
			name:  "gap stops the walk",
			days:  []string{"2026-08-27", "2026-08-28", "2026-08-31", "2026-09-01"},
			today: "2026-09-01",
			want:  2,
		},
		{
			name:  "duplicate days count once",
			days:  []string{"2026-09-01", "2026-09-01", "2026-08-31", "2026-08-31"},
			today: "2026-09-01",
			want:  2,
		},
		{
			name:  "unsorted input",
			days:  []string{"2026-08-31", "2026-09-01", "2026-08-30"},
			today: "2026-09-01",
			want:  3,
		},
		{
			name:  "month rollover",
			days:  []string{"2026-08-30", "2026-08-31", "2026-09-01"},
			today: "2026-09-01",
			want:  3,
		},
		{
			name:  "year rollover",
			days:  []string{"2025-12-30", "2025-12-31", "2026-01-01"},
			today: "2026-01-01",
			want:  3,
		},
		{
			name:  "leap day",
			days:  []string{"2024-02-28", "2024-02-29", "2024-03-01"},
			today: "2024-03-01",
			want:  3,
		},
		{
			name:  "unparseable entries are skipped",
			days:  []string{"garbage", "2026-09-01", "", "2026-08-31"},
			today: "2026-09-01",
			want:  2,
		},
		{
			name:  "unparseable today",
			days:  []string{"2026-09-01"},
			today: "not-a-date",
			want:  0,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, StreakFromDays(tt.days, tt.today))
		})
	}
}

func TestHabitStreakFiltersHabitAndCompletion(t *testing.T) {
	logs := []models.HabitLog{
		{HabitID: "water", Date: "2026-09-01", Completed: true},
		{HabitID: "water", Date: "2026-08-31", Completed: true},
		{HabitID: "water", Date: "2026-08-30", Completed: false},
		{HabitID: "reading", Date: "2026-08-30", Completed: true},
	}

	// the incomplete 08-30 entry breaks water's walk at two
	assert.Equal(t, 2, HabitStreak(logs, "water", "2026-09-01"))
	// reading's only day is older than yesterday
	assert.Equal(t, 0, HabitStreak(logs, "reading", "2026-09-01"))
	assert.Equal(t, 0, HabitStreak(logs, "unknown", "2026-09-01"))
}

func TestCountTrailingDays(t *testing.T) {
	logs := []models.HabitLog{
		{HabitID: "water", Date: "2026-09-01", Completed: true},
		{HabitID: "water", Date: "2026-08-25", Completed: true}, // exactly 7 days back
		{HabitID: "water", Date: "2026-08-24", Completed: true}, // outside
		{HabitID: "water", Date: "2026-08-28", Completed: false},
		{HabitID: "reading", Date: "2026-08-30", Completed: true},
	}

	got := CountTrailingDays(logs, "water", 7, "2026-09-01")
	assert.Equal(t, 2, got, "window is inclusive on both ends and skips incomplete days")

	assert.Equal(t, 0, CountTrailingDays(logs, "water", 7, "bad-date"))
}

func TestCountSince(t *testing.T) {
	now := time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)
	dates := []time.Time{
		now,
		now.AddDate(0, 0, -6),
		now.AddDate(0, 0, -7), // boundary, still counted
		now.AddDate(0, 0, -8),
		now.AddDate(0, -1, 0).AddDate(0, 0, -1),
	}

	assert.Equal(t, 3, CountSince(dates, now.AddDate(0, 0, -7)))
	assert.Equal(t, 4, CountSince(dates, now.AddDate(0, -1, 0)))
}
