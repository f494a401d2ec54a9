package repository

import (
	"context"
	"errors"

	"fitlog/internal/domain/entity"
)

// ErrWorkoutNotFound is returned when no workout matches both the id and the owner.
var ErrWorkoutNotFound = errors.New("workout not found")

// WorkoutRepository persists workouts. Every read and delete is scoped by owner;
// there is no way to load a workout by id alone.
type WorkoutRepository interface {
	// FindOwned returns the workout with the given id if it belongs to ownerID.
	FindOwned(ctx context.Context, id, ownerID int64) (*entity.Workout, error)

	// ListOwned returns all workouts of ownerID in insertion order.
	ListOwned(ctx context.Context, ownerID int64) ([]*entity.Workout, error)

	// Create persists a new workout and fills in the assigned ID.
	Create(ctx context.Context, workout *entity.Workout) error

	// DeleteOwned removes the workout if it belongs to ownerID and reports whether a row was deleted.
	DeleteOwned(ctx context.Context, id, ownerID int64) (bool, error)
}
