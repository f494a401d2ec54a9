package postgres

import (
	"context"
	"net/http"
	"testing"
	"time"

	"fitlog/internal/domain/entity"
	domainerrors "fitlog/internal/domain/errors"
	"fitlog/internal/domain/repository"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var workoutColumns = []string{"id", "name", "description", "duration", "date", "user_id", "created_at"}

func TestWorkoutRepository_FindOwned(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewWorkoutRepository(db)
	createdAt := time.Date(2024, 5, 1, 8, 0, 0, 0, time.UTC)

	mock.ExpectQuery(`SELECT \* FROM "workouts" WHERE \(?id = \$1 AND user_id = \$2\)? ORDER BY "workouts"."id" LIMIT \$3`).
		WithArgs(3, 1, 1).
		WillReturnRows(sqlmock.NewRows(workoutColumns).
			AddRow(3, "Leg day", nil, 45, "2024-05-01", 1, createdAt))

	workout, err := repo.FindOwned(context.Background(), 3, 1)
	require.NoError(t, err)
	assert.Equal(t, &entity.Workout{
		ID:        3,
		Name:      "Leg day",
		Duration:  45,
		Date:      "2024-05-01",
		UserID:    1,
		CreatedAt: createdAt,
	}, workout)
}

func TestWorkoutRepository_FindOwned_OtherOwner(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewWorkoutRepository(db)

	// A row owned by someone else never matches the predicate.
	mock.ExpectQuery(`SELECT \* FROM "workouts" WHERE \(?id = \$1 AND user_id = \$2\)?`).
		WithArgs(3, 2, 1).
		WillReturnRows(sqlmock.NewRows(workoutColumns))

	workout, err := repo.FindOwned(context.Background(), 3, 2)
	assert.Nil(t, workout)
	assert.ErrorIs(t, err, repository.ErrWorkoutNotFound)
}

func TestWorkoutRepository_ListOwned(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewWorkoutRepository(db)
	description := "easy pace"

	mock.ExpectQuery(`SELECT \* FROM "workouts" WHERE user_id = \$1 ORDER BY id ASC`).
		WithArgs(1).
		WillReturnRows(sqlmock.NewRows(workoutColumns).
			AddRow(1, "Run", description, 30, "2024-05-01", 1, time.Now()).
			AddRow(2, "Swim", nil, 60, "2024-05-02", 1, time.Now()))

	workouts, err := repo.ListOwned(context.Background(), 1)
	require.NoError(t, err)
	require.Len(t, workouts, 2)
	assert.Equal(t, "Run", workouts[0].Name)
	require.NotNil(t, workouts[0].Description)
	assert.Equal(t, description, *workouts[0].Description)
	assert.Nil(t, workouts[1].Description)
}

func TestWorkoutRepository_ListOwned_Empty(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewWorkoutRepository(db)

	mock.ExpectQuery(`SELECT \* FROM "workouts" WHERE user_id = \$1`).
		WithArgs(9).
		WillReturnRows(sqlmock.NewRows(workoutColumns))

	workouts, err := repo.ListOwned(context.Background(), 9)
	require.NoError(t, err)
	assert.NotNil(t, workouts)
	assert.Empty(t, workouts)
}

func TestWorkoutRepository_Create(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewWorkoutRepository(db)

	mock.ExpectQuery(`INSERT INTO "workouts" \("name","description","duration","date","user_id","created_at"\) VALUES \(\$1,\$2,\$3,\$4,\$5,\$6\) RETURNING "id"`).
		WithArgs("Run", nil, 30, "2024-05-01", 1, sqlmock.AnyArg()).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(5))

	workout := &entity.Workout{Name: "Run", Duration: 30, Date: "2024-05-01", UserID: 1}
	require.NoError(t, repo.Create(context.Background(), workout))
	assert.Equal(t, int64(5), workout.ID)
}

func TestWorkoutRepository_Create_CheckViolation(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewWorkoutRepository(db)

	mock.ExpectQuery(`INSERT INTO "workouts"`).
		WillReturnError(&pgconn.PgError{Code: "23514", Message: "violates check constraint"})

	err := repo.Create(context.Background(), &entity.Workout{Name: "Run", Duration: -1, Date: "2024-05-01", UserID: 1})
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
}

func TestWorkoutRepository_Create_DurationOutOfRange(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewWorkoutRepository(db)

	mock.ExpectQuery(`INSERT INTO "workouts"`).
		WillReturnError(&pgconn.PgError{Code: "22003", Message: "integer out of range"})

	err := repo.Create(context.Background(), &entity.Workout{Name: "Run", Duration: 3000000000, Date: "2024-05-01", UserID: 1})
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))

	var appErr domainerrors.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, http.StatusBadRequest, appErr.HTTPCode())
}

func TestWorkoutRepository_DeleteOwned(t *testing.T) {
	tests := []struct {
		name         string
		rowsAffected int64
		expected     bool
	}{
		{name: "deleted", rowsAffected: 1, expected: true},
		{name: "missing or not owned", rowsAffected: 0, expected: false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			db, mock := newMockDB(t)
			repo := NewWorkoutRepository(db)

			mock.ExpectExec(`DELETE FROM "workouts" WHERE \(?id = \$1 AND user_id = \$2\)?`).
				WithArgs(3, 1).
				WillReturnResult(sqlmock.NewResult(0, tc.rowsAffected))

			deleted, err := repo.DeleteOwned(context.Background(), 3, 1)
			require.NoError(t, err)
			assert.Equal(t, tc.expected, deleted)
		})
	}
}

func TestWorkoutRepository_DeleteOwned_DatabaseError(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewWorkoutRepository(db)

	mock.ExpectExec(`DELETE FROM "workouts"`).
		WillReturnError(errors.New("connection reset"))

	deleted, err := repo.DeleteOwned(context.Background(), 3, 1)
	assert.False(t, deleted)
	require.Error(t, err)

	var appErr domainerrors.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, 500, appErr.HTTPCode())
}
