package entity

import "time"

// Routine groups a user's workouts into a reusable program.
// The association with Workout is many-to-many.
type Routine struct {
	ID          int64
	Name        string
	Description *string
	Duration    int
	Date        string
	UserID      int64
	WorkoutIDs  []int64 // Workouts attached to this routine, ascending.
	CreatedAt   time.Time
}
