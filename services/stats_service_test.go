package services

import (
	"testing"
	"time"

	"backend/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNextMilestone(t *testing.T) {
	tests := []struct {
		streak int
		want   string
	}{
		{0, "Complete today to start your streak!"},
		{1, "2 more days until 3-day streak! 🔥"},
		{2, "1 more days until 3-day streak! 🔥"},
		{3, "4 more days until 1-week streak! 🎯"},
		{6, "1 more days until 1-week streak! 🎯"},
		{7, "7 more days until 2-week streak! 💪"},
		{13, "1 more days until 2-week streak! 💪"},
		{14, "16 more days until 1-month streak! 🏆"},
		{29, "1 more days until 1-month streak! 🏆"},
		{30, "You're on fire! Keep the momentum! 🔥🔥🔥"},
		{100, "You're on fire! Keep the momentum! 🔥🔥🔥"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, NextMilestone(tt.streak), "streak %d", tt.streak)
	}
}

func TestDailyQuoteDeterministic(t *testing.T) {
	morning := time.Date(2026, 9, 1, 6, 0, 0, 0, time.UTC)
	evening := time.Date(2026, 9, 1, 23, 0, 0, 0, time.UTC)

	assert.Equal(t, DailyQuote(morning, MotivationalQuotes), DailyQuote(evening, MotivationalQuotes),
		"same calendar day yields the same quote regardless of time")

	nextDay := morning.AddDate(0, 0, 1)
	assert.NotEqual(t, DailyQuote(morning, MotivationalQuotes), DailyQuote(nextDay, MotivationalQuotes))

	assert.Equal(t, "", DailyQuote(morning, nil))
}

func TestDailyQuoteIndex(t *testing.T) {
	// index formula: (day + (month-1)*31) mod len
	date := time.Date(2026, 3, 5, 0, 0, 0, 0, time.UTC)
	want := MotivationalQuotes[(5+2*31)%len(MotivationalQuotes)]
	assert.Equal(t, want, DailyQuote(date, MotivationalQuotes))
}

func workoutOn(day time.Time, sets ...int) models.Workout {
	w := models.Workout{Date: day, Title: "Session"}
	for _, s := range sets {
		w.Exercise = append(w.Exercise, models.Exercise{Name: "Squat", Sets: s, Reps: 5})
	}
	return w
}

func TestComputeWorkoutStatsEmpty(t *testing.T) {
	now := time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)

	stats := ComputeWorkoutStats(nil, now)

	assert.Equal(t, 0, stats.TotalWorkouts)
	assert.Equal(t, 0, stats.CurrentStreak)
	assert.Equal(t, "Complete today to start your streak!", stats.NextMilestone)
	assert.NotEmpty(t, stats.DailyQuote)
	assert.Nil(t, stats.LastWorkout)
}

func TestComputeWorkoutStatsWindows(t *testing.T) {
	now := time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)
	workouts := []models.Workout{
		workoutOn(now, 3, 4),                         // today, 2 exercises, 7 sets
		workoutOn(now.AddDate(0, 0, -1), 5),          // yesterday
		workoutOn(now.AddDate(0, 0, -10), 2),         // inside the month, outside the week
		workoutOn(now.AddDate(0, -2, 0), 6),          // outside both windows
	}
	workouts[0].ID = 42

	stats := ComputeWorkoutStats(workouts, now)

	assert.Equal(t, 4, stats.TotalWorkouts)
	assert.Equal(t, 5, stats.TotalExercises)
	assert.Equal(t, 2, stats.ThisWeek)
	assert.Equal(t, 3, stats.ThisMonth, "the month window is a calendar month, wider than the week")
	assert.Equal(t, 2, stats.CurrentStreak)
	assert.Equal(t, 3+4+5+2, stats.SetsThisMonth)

	require.NotNil(t, stats.LastWorkout)
	assert.Equal(t, uint(42), stats.LastWorkout.ID)
	assert.Equal(t, 2, stats.LastWorkout.Exercises)
	assert.Equal(t, "1 more days until 3-day streak! 🔥", stats.NextMilestone)
}

func TestComputeWorkoutStatsDuplicateDays(t *testing.T) {
	now := time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)
	workouts := []models.Workout{
		workoutOn(now.Add(-2*time.Hour), 3),
		workoutOn(now.Add(-5*time.Hour), 3), // same calendar day
		workoutOn(now.AddDate(0, 0, -1), 3),
	}

	stats := ComputeWorkoutStats(workouts, now)

	assert.Equal(t, 2, stats.CurrentStreak, "two sessions on one day count as one streak day")
	assert.Equal(t, 3, stats.ThisWeek)
}
