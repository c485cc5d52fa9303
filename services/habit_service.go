package services

import (
	"time"

	"backend/apperror"
	"backend/models"

	"gorm.io/gorm"
)

type HabitService struct {
	db *gorm.DB
}

func NewHabitService(db *gorm.DB) *HabitService {
	return &HabitService{db: db}
}

// MergeLog removes any entry with the same (habitId, date) pair and appends
// the new one. Last write wins; insertion order is otherwise preserved, so
// callers re-sort by date when they need chronology. Un-completing a day
// keeps the entry in the log with completed=false rather than deleting it,
// which is what keeps streak history honest across toggles.
func MergeLog(logs []models.HabitLog, entry models.HabitLog) []models.HabitLog {
	out := make([]models.HabitLog, 0, len(logs)+1)
	for _, l := range logs {
		if l.HabitID == entry.HabitID && l.Date == entry.Date {
			continue
		}
		out = append(out, l)
	}
	return append(out, entry)
}

func ValidateLog(entry models.HabitLog) error {
	if entry.HabitID == "" {
		return apperror.Validation("habitId", "habitId is required")
	}
	if _, err := time.Parse(dayLayout, entry.Date); err != nil {
		return apperror.Validation("date", "date must be YYYY-MM-DD")
	}
	return nil
}

func (s *HabitService) ListLogs(userID uint) ([]models.HabitLog, error) {
	var logs []models.HabitLog
	err := s.db.Where("user_id = ?", userID).Order("id ASC").Find(&logs).Error
	if err != nil {
		return nil, apperror.Upstream("load habit logs", err)
	}
	return logs, nil
}

// SaveLog upserts one day of one habit and returns the full merged log list,
// so the caller's immediately-following read sees the write. The store-level
// upsert is keyed on (user, habit, date): the existing row is overwritten in
// place, matching the remove-then-add merge applied to the in-memory list.
func (s *HabitService) SaveLog(userID uint, entry models.HabitLog) ([]models.HabitLog, error) {
	if err := ValidateLog(entry); err != nil {
		return nil, err
	}
	entry.UserID = userID

	logs, err := s.ListLogs(userID)
	if err != nil {
		return nil, err
	}

	row := models.HabitLog{UserID: userID, HabitID: entry.HabitID, Date: entry.Date}
	err = s.db.
		Where("user_id = ? AND habit_id = ? AND date = ?", userID, entry.HabitID, entry.Date).
		Assign(map[string]interface{}{"completed": entry.Completed, "value": entry.Value}).
		FirstOrCreate(&row).Error
	if err != nil {
		return nil, apperror.Upstream("save habit log", err)
	}

	return MergeLog(logs, entry), nil
}
