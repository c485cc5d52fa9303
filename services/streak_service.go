package services

import (
	"sort"
	"time"

	"backend/models"
)

const dayLayout = "2006-01-02"

// DayString renders t as its local calendar day. All streak and window math
// runs on these strings; converting a timestamp to a calendar day happens
// here, once, at the boundary, never inside the walk itself.
func DayString(t time.Time) string {
	return t.Format(dayLayout)
}

func prevDay(day string) string {
	t, err := time.Parse(dayLayout, day)
	if err != nil {
		return ""
	}
	return t.AddDate(0, 0, -1).Format(dayLayout)
}

func dayOffset(day string, days int) string {
	t, err := time.Parse(dayLayout, day)
	if err != nil {
		return ""
	}
	return t.AddDate(0, 0, days).Format(dayLayout)
}

// StreakFromDays counts consecutive calendar days ending at today or
// yesterday. Duplicate days count once. If the most recent day is older than
// yesterday the streak is already broken and the result is 0; otherwise the
// walk moves one calendar day at a time and stops at the first gap.
func StreakFromDays(days []string, today string) int {
	if _, err := time.Parse(dayLayout, today); err != nil {
		return 0
	}

	seen := make(map[string]struct{}, len(days))
	unique := make([]string, 0, len(days))
	for _, d := range days {
		if _, err := time.Parse(dayLayout, d); err != nil {
			continue
		}
		if _, dup := seen[d]; dup {
			continue
		}
		seen[d] = struct{}{}
		unique = append(unique, d)
	}
	if len(unique) == 0 {
		return 0
	}
	sort.Sort(sort.Reverse(sort.StringSlice(unique)))

	yesterday := prevDay(today)
	mostRecent := unique[0]
	if mostRecent != today && mostRecent != yesterday {
		return 0
	}

	streak := 0
	cursor := mostRecent
	for _, d := range unique {
		if d != cursor {
			break
		}
		streak++
		cursor = prevDay(cursor)
	}
	return streak
}

// HabitStreak is the streak of one habit's completed days. Entries for other
// habits and incomplete days are ignored.
func HabitStreak(logs []models.HabitLog, habitID, today string) int {
	days := make([]string, 0, len(logs))
	for _, l := range logs {
		if l.HabitID == habitID && l.Completed {
			days = append(days, l.Date)
		}
	}
	return StreakFromDays(days, today)
}

// CountTrailingDays counts completed entries for habitID inside the trailing
// window [today-windowDays, today], inclusive on both ends. "This week" is
// windowDays=7. This is the fixed-window variant; workout stats use the
// calendar-month variant via CountSince instead, and the two are deliberately
// not unified.
func CountTrailingDays(logs []models.HabitLog, habitID string, windowDays int, today string) int {
	since := dayOffset(today, -windowDays)
	if since == "" {
		return 0
	}
	n := 0
	for _, l := range logs {
		if l.HabitID != habitID || !l.Completed {
			continue
		}
		if l.Date >= since && l.Date <= today {
			n++
		}
	}
	return n
}

// CountSince counts timestamps at or after since. Call sites pass
// now.AddDate(0,0,-7) for the trailing week and now.AddDate(0,-1,0) for the
// month window, which goes back one calendar month rather than 30 days.
func CountSince(dates []time.Time, since time.Time) int {
	n := 0
	for _, d := range dates {
		if !d.Before(since) {
			n++
		}
	}
	return n
}
