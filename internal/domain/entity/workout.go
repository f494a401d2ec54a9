package entity

import "time"

// Workout is a single exercise session owned by exactly one user.
type Workout struct {
	ID          int64
	Name        string
	Description *string // Optional free text.
	Duration    int     // Minutes.
	Date        string  // Calendar date, YYYY-MM-DD.
	UserID      int64   // Owner.
	CreatedAt   time.Time
}
