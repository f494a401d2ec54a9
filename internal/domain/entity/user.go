// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import "time"

// User is an account that owns workouts and routines.
type User struct {
	ID           int64     // Numeric primary key assigned by the store.
	Username     string    // Unique login name.
	PasswordHash string    // bcrypt hash. Never leaves the service layer.
	CreatedAt    time.Time // Timestamp of registration.
}
