package services

import (
	"errors"
	"testing"
	"time"

	"backend/apperror"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func intp(n int) *int { return &n }

func floatp(f float64) *float64 { return &f }

func TestValidateExercises(t *testing.T) {
	valid := ExerciseInput{Name: "Squat", Sets: intp(3), Reps: intp(5)}

	tests := []struct {
		name    string
		in      []ExerciseInput
		wantErr bool
	}{
		{"empty list", nil, true},
		{"valid single", []ExerciseInput{valid}, false},
		{"weight optional", []ExerciseInput{{Name: "Bench", Sets: intp(3), Reps: intp(8), Weight: floatp(135)}}, false},
		{"missing name", []ExerciseInput{{Sets: intp(3), Reps: intp(5)}}, true},
		{"blank name", []ExerciseInput{{Name: "   ", Sets: intp(3), Reps: intp(5)}}, true},
		{"missing sets", []ExerciseInput{{Name: "Squat", Reps: intp(5)}}, true},
		{"missing reps", []ExerciseInput{{Name: "Squat", Sets: intp(3)}}, true},
		{"one bad rejects all", []ExerciseInput{valid, {Name: "Bench"}}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := ValidateExercises(tt.in)
			if tt.wantErr {
				assert.True(t, errors.Is(err, apperror.ErrValidation))
				assert.Nil(t, out)
			} else {
				require.NoError(t, err)
				assert.Len(t, out, len(tt.in))
			}
		})
	}
}

func TestValidateExercisesTrimsNames(t *testing.T) {
	out, err := ValidateExercises([]ExerciseInput{{Name: "  Deadlift  ", Sets: intp(1), Reps: intp(5)}})
	require.NoError(t, err)
	assert.Equal(t, "Deadlift", out[0].Name)
}

func TestParseDate(t *testing.T) {
	now := time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)

	t.Run("empty means now", func(t *testing.T) {
		got, err := ParseDate("", now)
		require.NoError(t, err)
		assert.Equal(t, now, got)
	})

	t.Run("rfc3339", func(t *testing.T) {
		got, err := ParseDate("2026-08-15T10:30:00Z", now)
		require.NoError(t, err)
		assert.Equal(t, time.Date(2026, 8, 15, 10, 30, 0, 0, time.UTC), got)
	})

	t.Run("plain day", func(t *testing.T) {
		got, err := ParseDate("2026-08-15", now)
		require.NoError(t, err)
		assert.Equal(t, time.Date(2026, 8, 15, 0, 0, 0, 0, now.Location()), got)
	})

	t.Run("garbage", func(t *testing.T) {
		_, err := ParseDate("15/08/2026", now)
		assert.True(t, errors.Is(err, apperror.ErrValidation))
	})
}

func TestCheckOwner(t *testing.T) {
	assert.NoError(t, checkOwner(7, 7))

	err := checkOwner(7, 8)
	assert.True(t, errors.Is(err, apperror.ErrForbidden))
	assert.False(t, errors.Is(err, apperror.ErrNotFound),
		"an existing record owned by someone else is Forbidden, not NotFound")
}

func TestWorkoutInputExerciseListPrefersSingular(t *testing.T) {
	in := WorkoutInput{
		Exercise:  []ExerciseInput{{Name: "Squat", Sets: intp(3), Reps: intp(5)}},
		Exercises: []ExerciseInput{{Name: "Bench", Sets: intp(3), Reps: intp(8)}},
	}
	assert.Equal(t, "Squat", in.exerciseList()[0].Name)

	alt := WorkoutInput{Exercises: []ExerciseInput{{Name: "Bench", Sets: intp(3), Reps: intp(8)}}}
	assert.Equal(t, "Bench", alt.exerciseList()[0].Name)
}
