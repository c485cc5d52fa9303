package services

import (
	"errors"
	"strings"
	"time"

	"backend/apperror"
	"backend/models"

	"gorm.io/gorm"
)

type WorkoutService struct {
	db *gorm.DB
}

func NewWorkoutService(db *gorm.DB) *WorkoutService {
	return &WorkoutService{db: db}
}

type ExerciseInput struct {
	Name   string   `json:"name"`
	Sets   *int     `json:"sets"`
	Reps   *int     `json:"reps"`
	Weight *float64 `json:"weight"`
}

type WorkoutInput struct {
	Title string `json:"title"`
	Date  string `json:"date"`
	Notes string `json:"notes"`
	// The frontend has sent both spellings over time; either is accepted.
	Exercise  []ExerciseInput `json:"exercise"`
	Exercises []ExerciseInput `json:"exercises"`
}

func (in WorkoutInput) exerciseList() []ExerciseInput {
	if len(in.Exercise) > 0 {
		return in.Exercise
	}
	return in.Exercises
}

type WorkoutUpdate struct {
	Title     *string         `json:"title"`
	Date      *string         `json:"date"`
	Notes     *string         `json:"notes"`
	Exercise  []ExerciseInput `json:"exercise"`
	Exercises []ExerciseInput `json:"exercises"`
}

func (in WorkoutUpdate) exerciseList() []ExerciseInput {
	if len(in.Exercise) > 0 {
		return in.Exercise
	}
	return in.Exercises
}

// ValidateExercises checks every element before anything is saved. One bad
// exercise rejects the whole list; there is no partial acceptance.
func ValidateExercises(in []ExerciseInput) ([]models.Exercise, error) {
	if len(in) == 0 {
		return nil, apperror.Validation("exercise", "exercise array required")
	}
	out := make([]models.Exercise, 0, len(in))
	for _, ex := range in {
		if strings.TrimSpace(ex.Name) == "" || ex.Sets == nil || ex.Reps == nil {
			return nil, apperror.Validation("exercise",
				"each exercise must include name (string), sets (number), reps (number)")
		}
		out = append(out, models.Exercise{
			Name:   strings.TrimSpace(ex.Name),
			Sets:   *ex.Sets,
			Reps:   *ex.Reps,
			Weight: ex.Weight,
		})
	}
	return out, nil
}

// ParseDate accepts RFC 3339 or a plain calendar day; empty means "now".
func ParseDate(s string, now time.Time) (time.Time, error) {
	if strings.TrimSpace(s) == "" {
		return now, nil
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	if t, err := time.ParseInLocation(dayLayout, s, now.Location()); err == nil {
		return t, nil
	}
	return time.Time{}, apperror.Validation("date", "invalid date")
}

func (s *WorkoutService) List(userID uint) ([]models.Workout, error) {
	var workouts []models.Workout
	err := s.db.
		Preload("Exercise").
		Where("user_id = ?", userID).
		Order("date DESC").
		Find(&workouts).Error
	if err != nil {
		return nil, apperror.Upstream("list workouts", err)
	}
	return workouts, nil
}

func (s *WorkoutService) Create(userID uint, in WorkoutInput) (*models.Workout, error) {
	title := strings.TrimSpace(in.Title)
	if title == "" {
		return nil, apperror.Validation("title", "title required")
	}
	exercises, err := ValidateExercises(in.exerciseList())
	if err != nil {
		return nil, err
	}
	date, err := ParseDate(in.Date, time.Now())
	if err != nil {
		return nil, err
	}

	workout := models.Workout{
		UserID:   userID,
		Title:    title,
		Date:     date,
		Notes:    in.Notes,
		Exercise: exercises,
	}
	if err := s.db.Create(&workout).Error; err != nil {
		return nil, apperror.Upstream("create workout", err)
	}
	return &workout, nil
}

// Get fetches one workout. Existence first, ownership second: a missing ID
// is NotFound, someone else's is Forbidden.
func (s *WorkoutService) Get(userID, id uint) (*models.Workout, error) {
	var workout models.Workout
	err := s.db.Preload("Exercise").First(&workout, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperror.NotFound("workout")
	}
	if err != nil {
		return nil, apperror.Upstream("load workout", err)
	}
	if err := checkOwner(workout.UserID, userID); err != nil {
		return nil, err
	}
	return &workout, nil
}

// Update applies only whitelisted fields: title, date, notes, exercise list.
// Anything else in the body is ignored.
func (s *WorkoutService) Update(userID, id uint, in WorkoutUpdate) (*models.Workout, error) {
	workout, err := s.Get(userID, id)
	if err != nil {
		return nil, err
	}

	if in.Title != nil {
		title := strings.TrimSpace(*in.Title)
		if title == "" {
			return nil, apperror.Validation("title", "title required")
		}
		workout.Title = title
	}
	if in.Date != nil {
		date, err := ParseDate(*in.Date, time.Now())
		if err != nil {
			return nil, err
		}
		workout.Date = date
	}
	if in.Notes != nil {
		workout.Notes = *in.Notes
	}

	newExercises := in.exerciseList()
	if newExercises != nil {
		exercises, err := ValidateExercises(newExercises)
		if err != nil {
			return nil, err
		}
		workout.Exercise = exercises
	}

	// Replacing the exercise list is delete-then-insert; both run in one
	// transaction so a failed save cannot strand a workout with no exercises.
	err = s.db.Transaction(func(tx *gorm.DB) error {
		if newExercises != nil {
			if err := tx.Where("workout_id = ?", workout.ID).Delete(&models.Exercise{}).Error; err != nil {
				return err
			}
		}
		return tx.Session(&gorm.Session{FullSaveAssociations: true}).Save(workout).Error
	})
	if err != nil {
		return nil, apperror.Upstream("update workout", err)
	}
	return s.Get(userID, id)
}

func (s *WorkoutService) Delete(userID, id uint) error {
	workout, err := s.Get(userID, id)
	if err != nil {
		return err
	}
	if err := s.db.Select("Exercise").Delete(workout).Error; err != nil {
		return apperror.Upstream("delete workout", err)
	}
	return nil
}

// RecentWorkouts returns the newest n workouts with exercises loaded. Used
// to build the AI assistant's context.
func (s *WorkoutService) RecentWorkouts(userID uint, n int) ([]models.Workout, error) {
	var workouts []models.Workout
	err := s.db.
		Preload("Exercise").
		Where("user_id = ?", userID).
		Order("date DESC").
		Limit(n).
		Find(&workouts).Error
	if err != nil {
		return nil, apperror.Upstream("load recent workouts", err)
	}
	return workouts, nil
}
