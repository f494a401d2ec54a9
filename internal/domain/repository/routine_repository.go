package repository

import (
	"context"
	"errors"

	"fitlog/internal/domain/entity"
)

// ErrRoutineNotFound is returned when no routine matches both the id and the owner.
var ErrRoutineNotFound = errors.New("routine not found")

// RoutineRepository persists routines and their workout associations.
// Reads and deletes are owner-scoped the same way as WorkoutRepository.
type RoutineRepository interface {
	FindOwned(ctx context.Context, id, ownerID int64) (*entity.Routine, error)
	ListOwned(ctx context.Context, ownerID int64) ([]*entity.Routine, error)
	Create(ctx context.Context, routine *entity.Routine) error
	DeleteOwned(ctx context.Context, id, ownerID int64) (bool, error)

	// AttachWorkout links a workout to a routine. Linking twice is a no-op.
	// Callers must have checked ownership of both rows.
	AttachWorkout(ctx context.Context, routineID, workoutID int64) error

	// DetachWorkout removes the link and reports whether one existed.
	DetachWorkout(ctx context.Context, routineID, workoutID int64) (bool, error)
}
