package usecase

import (
	"context"

	"fitlog/internal/domain/entity"
)

// CreateWorkoutInput defines the data required to record a workout.
type CreateWorkoutInput struct {
	Name        string
	Description *string
	Duration    int
	Date        string
}

// WorkoutUsecase defines workout operations. Every call is scoped to ownerID,
// and a workout owned by someone else is reported as not found.
type WorkoutUsecase interface {
	GetWorkout(ctx context.Context, ownerID, workoutID int64) (*entity.Workout, error)
	ListWorkouts(ctx context.Context, ownerID int64) ([]*entity.Workout, error)
	CreateWorkout(ctx context.Context, ownerID int64, input *CreateWorkoutInput) (*entity.Workout, error)
	DeleteWorkout(ctx context.Context, ownerID, workoutID int64) error
}
