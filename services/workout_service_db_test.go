package services

import (
	"errors"
	"testing"
	"time"

	"backend/apperror"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var (
	workoutColumns  = []string{"id", "user_id", "title", "date", "notes", "created_at", "updated_at"}
	exerciseColumns = []string{"id", "workout_id", "name", "sets", "reps", "weight"}
)

func mockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()
	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlDB.Close() })

	db, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{})
	require.NoError(t, err)
	return db, mock
}

func TestWorkoutGetMissingIDIsNotFound(t *testing.T) {
	db, mock := mockDB(t)
	svc := NewWorkoutService(db)

	mock.ExpectQuery(`SELECT \* FROM "workouts"`).
		WillReturnRows(sqlmock.NewRows(workoutColumns))

	_, err := svc.Get(7, 99)
	assert.True(t, errors.Is(err, apperror.ErrNotFound),
		"a nonexistent record is NotFound no matter who asks")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestWorkoutGetOtherOwnerIsForbidden(t *testing.T) {
	db, mock := mockDB(t)
	svc := NewWorkoutService(db)

	now := time.Now()
	mock.ExpectQuery(`SELECT \* FROM "workouts"`).
		WillReturnRows(sqlmock.NewRows(workoutColumns).
			AddRow(5, 999, "Leg Day", now, "", now, now))
	mock.ExpectQuery(`SELECT \* FROM "exercises"`).
		WillReturnRows(sqlmock.NewRows(exerciseColumns))

	_, err := svc.Get(7, 5)
	assert.True(t, errors.Is(err, apperror.ErrForbidden),
		"a record that exists but belongs to someone else is Forbidden, not NotFound")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestWorkoutUpdateExerciseReplaceRollsBackOnFailure(t *testing.T) {
	db, mock := mockDB(t)
	svc := NewWorkoutService(db)

	now := time.Now()
	mock.ExpectQuery(`SELECT \* FROM "workouts"`).
		WillReturnRows(sqlmock.NewRows(workoutColumns).
			AddRow(5, 7, "Leg Day", now, "", now, now))
	mock.ExpectQuery(`SELECT \* FROM "exercises"`).
		WillReturnRows(sqlmock.NewRows(exerciseColumns).
			AddRow(11, 5, "Squat", 3, 5, nil))

	// delete and re-insert run inside one transaction; a failed insert must
	// roll the delete back instead of leaving the workout with no exercises
	mock.ExpectBegin()
	mock.ExpectExec(`DELETE FROM "exercises"`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(`UPDATE "workouts"`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectQuery(`INSERT INTO "exercises"`).
		WillReturnError(errors.New("connection reset"))
	mock.ExpectRollback()

	_, err := svc.Update(7, 5, WorkoutUpdate{
		Exercise: []ExerciseInput{{Name: "Front Squat", Sets: intp(3), Reps: intp(5)}},
	})
	assert.True(t, errors.Is(err, apperror.ErrUpstream))
	assert.NoError(t, mock.ExpectationsWereMet())
}
