package model

import (
	"time"
)

// WorkoutModel mirrors the 'workouts' table.
type WorkoutModel struct {
	ID          int64   `gorm:"primaryKey;autoIncrement"`
	Name        string  `gorm:"type:varchar(255);not null"`
	Description *string `gorm:"type:text"`
	Duration    int     `gorm:"not null"`
	Date        string  `gorm:"type:varchar(32);not null"`
	UserID      int64   `gorm:"index;not null"`
	CreatedAt   time.Time
}

// TableName explicitly sets the table name for GORM.
func (WorkoutModel) TableName() string {
	return "workouts"
}
