package usecase

import (
	"context"

	"fitlog/internal/domain/entity"
)

// CreateRoutineInput defines the data required to create a routine.
type CreateRoutineInput struct {
	Name        string
	Description *string
	Duration    int
	Date        string
}

// RoutineUsecase defines routine operations, scoped to ownerID like WorkoutUsecase.
type RoutineUsecase interface {
	GetRoutine(ctx context.Context, ownerID, routineID int64) (*entity.Routine, error)
	ListRoutines(ctx context.Context, ownerID int64) ([]*entity.Routine, error)
	CreateRoutine(ctx context.Context, ownerID int64, input *CreateRoutineInput) (*entity.Routine, error)
	DeleteRoutine(ctx context.Context, ownerID, routineID int64) error

	// AttachWorkout links an owned workout to an owned routine. Repeating it is a no-op.
	AttachWorkout(ctx context.Context, ownerID, routineID, workoutID int64) error
	DetachWorkout(ctx context.Context, ownerID, routineID, workoutID int64) error
}
