package model

import (
	"time"
)

// RoutineModel mirrors the 'routines' table.
type RoutineModel struct {
	ID          int64   `gorm:"primaryKey;autoIncrement"`
	Name        string  `gorm:"type:varchar(255);not null"`
	Description *string `gorm:"type:text"`
	Duration    int     `gorm:"not null"`
	Date        string  `gorm:"type:varchar(32);not null"`
	UserID      int64   `gorm:"index;not null"`
	CreatedAt   time.Time
}

// TableName explicitly sets the table name for GORM.
func (RoutineModel) TableName() string {
	return "routines"
}

// WorkoutRoutineModel mirrors the 'workout_routine' join table.
// Both columns form the primary key; rows cascade away with either side.
type WorkoutRoutineModel struct {
	WorkoutID int64 `gorm:"primaryKey"`
	RoutineID int64 `gorm:"primaryKey"`
}

// TableName explicitly sets the table name for GORM.
func (WorkoutRoutineModel) TableName() string {
	return "workout_routine"
}
