package postgres

import (
	"context"
	"testing"

	"fitlog/internal/domain/repository"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTransactionManager_Commit(t *testing.T) {
	db, mock := newMockDB(t)
	tm := NewTransactionManager(db)

	mock.ExpectBegin()
	mock.ExpectExec(`INSERT INTO "workout_routine"`).
		WithArgs(5, 4).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	err := tm.Execute(context.Background(), func(f repository.RepositoryFactory) error {
		assert.NotNil(t, f.UserRepo())
		assert.NotNil(t, f.WorkoutRepo())

		return f.RoutineRepo().AttachWorkout(context.Background(), 4, 5)
	})
	require.NoError(t, err)
}

func TestTransactionManager_RollbackOnError(t *testing.T) {
	db, mock := newMockDB(t)
	tm := NewTransactionManager(db)

	mock.ExpectBegin()
	mock.ExpectRollback()

	sentinel := errors.New("business failure")
	err := tm.Execute(context.Background(), func(repository.RepositoryFactory) error {
		return sentinel
	})
	assert.ErrorIs(t, err, sentinel)
}

func TestTransactionManager_RollbackOnPanic(t *testing.T) {
	db, mock := newMockDB(t)
	tm := NewTransactionManager(db)

	mock.ExpectBegin()
	mock.ExpectRollback()

	assert.Panics(t, func() {
		_ = tm.Execute(context.Background(), func(repository.RepositoryFactory) error {
			panic("boom")
		})
	})
}

func TestTransactionManager_BeginFailure(t *testing.T) {
	db, mock := newMockDB(t)
	tm := NewTransactionManager(db)

	mock.ExpectBegin().WillReturnError(errors.New("no connection"))

	err := tm.Execute(context.Background(), func(repository.RepositoryFactory) error {
		t.Fatal("callback must not run")

		return nil
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to begin transaction")
}
