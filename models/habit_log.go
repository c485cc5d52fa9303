package models

// HabitLog is one calendar day of one habit. At most one row exists per
// (user, habit, date); saving the same day again replaces the previous row.
// Date is the caller's local calendar day, never a timestamp.
type HabitLog struct {
	ID        uint     `gorm:"primarykey" json:"-"`
	UserID    uint     `gorm:"uniqueIndex:idx_habit_day;not null" json:"-"`
	HabitID   string   `gorm:"uniqueIndex:idx_habit_day;not null" json:"habitId"`
	Date      string   `gorm:"uniqueIndex:idx_habit_day;not null" json:"date"` // YYYY-MM-DD
	Completed bool     `json:"completed"`
	Value     *float64 `json:"value,omitempty"`
}
