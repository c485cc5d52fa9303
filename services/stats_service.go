package services

import (
	"fmt"
	"time"

	"backend/apperror"
	"backend/models"

	"gorm.io/gorm"
)

// MotivationalQuotes is the fixed rotation the daily quote is picked from.
var MotivationalQuotes = []string{
	"Excellence is not a destination; it is a continuous journey that never ends.",
	"Success is the sum of small efforts repeated day in and day out.",
	"The secret of getting ahead is getting started.",
	"Don't watch the clock; do what it does. Keep going.",
	"The only way to do great work is to love what you do.",
	"Believe you can and you're halfway there.",
	"Your future is created by what you do today, not tomorrow.",
	"Small daily improvements are the key to staggering long-term results.",
	"The harder you work for something, the greater you'll feel when you achieve it.",
	"Success doesn't come from what you do occasionally, it comes from what you do consistently.",
}

// NextMilestone maps the current streak onto the next goal message. Fixed
// thresholds at 3, 7, 14, and 30 days; no randomness.
func NextMilestone(streak int) string {
	switch {
	case streak == 0:
		return "Complete today to start your streak!"
	case streak < 3:
		return fmt.Sprintf("%d more days until 3-day streak! 🔥", 3-streak)
	case streak < 7:
		return fmt.Sprintf("%d more days until 1-week streak! 🎯", 7-streak)
	case streak < 14:
		return fmt.Sprintf("%d more days until 2-week streak! 💪", 14-streak)
	case streak < 30:
		return fmt.Sprintf("%d more days until 1-month streak! 🏆", 30-streak)
	default:
		return "You're on fire! Keep the momentum! 🔥🔥🔥"
	}
}

// DailyQuote picks the quote for a calendar day. The index depends only on
// day-of-month and month, so the same date and list always yield the same
// quote, all day.
func DailyQuote(date time.Time, quotes []string) string {
	if len(quotes) == 0 {
		return ""
	}
	idx := (date.Day() + (int(date.Month())-1)*31) % len(quotes)
	return quotes[idx]
}

type LastWorkout struct {
	ID        uint      `json:"id"`
	Title     string    `json:"title"`
	Date      time.Time `json:"date"`
	Exercises int       `json:"exercises"`
}

type WorkoutStats struct {
	TotalWorkouts  int          `json:"totalWorkouts"`
	TotalExercises int          `json:"totalExercises"`
	ThisWeek       int          `json:"thisWeek"`
	ThisMonth      int          `json:"thisMonth"`
	CurrentStreak  int          `json:"currentStreak"`
	SetsThisMonth  int          `json:"setsThisMonth"`
	NextMilestone  string       `json:"nextMilestone"`
	DailyQuote     string       `json:"dailyQuote"`
	LastWorkout    *LastWorkout `json:"lastWorkout,omitempty"`
}

// ComputeWorkoutStats derives the dashboard numbers from a workout snapshot.
// "This week" is a trailing 7-day window; "this month" goes back one calendar
// month (AddDate(0,-1,0)), not a fixed 30 days. Both windows are kept as-is
// and must not be merged into one definition.
func ComputeWorkoutStats(workouts []models.Workout, now time.Time) *WorkoutStats {
	stats := &WorkoutStats{TotalWorkouts: len(workouts)}

	dates := make([]time.Time, 0, len(workouts))
	days := make([]string, 0, len(workouts))
	for _, w := range workouts {
		stats.TotalExercises += len(w.Exercise)
		dates = append(dates, w.Date)
		days = append(days, DayString(w.Date.In(now.Location())))
	}

	weekAgo := now.AddDate(0, 0, -7)
	monthAgo := now.AddDate(0, -1, 0)
	stats.ThisWeek = CountSince(dates, weekAgo)
	stats.ThisMonth = CountSince(dates, monthAgo)
	stats.CurrentStreak = StreakFromDays(days, DayString(now))

	for _, w := range workouts {
		if w.Date.Before(monthAgo) {
			continue
		}
		for _, ex := range w.Exercise {
			stats.SetsThisMonth += ex.Sets
		}
	}

	var last *models.Workout
	for i := range workouts {
		if last == nil || workouts[i].Date.After(last.Date) {
			last = &workouts[i]
		}
	}
	if last != nil {
		stats.LastWorkout = &LastWorkout{
			ID:        last.ID,
			Title:     last.Title,
			Date:      last.Date,
			Exercises: len(last.Exercise),
		}
	}

	stats.NextMilestone = NextMilestone(stats.CurrentStreak)
	stats.DailyQuote = DailyQuote(now, MotivationalQuotes)
	return stats
}

type StatsService struct {
	db *gorm.DB
}

func NewStatsService(db *gorm.DB) *StatsService {
	return &StatsService{db: db}
}

func (s *StatsService) WorkoutStats(userID uint, now time.Time) (*WorkoutStats, error) {
	var workouts []models.Workout
	err := s.db.
		Preload("Exercise").
		Where("user_id = ?", userID).
		Find(&workouts).Error
	if err != nil {
		return nil, apperror.Upstream("load workouts", err)
	}
	return ComputeWorkoutStats(workouts, now), nil
}
