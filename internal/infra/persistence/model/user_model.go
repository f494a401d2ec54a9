package model

import (
	"time"
)

// UserModel mirrors the 'users' table. PostgreSQL assigns the bigserial ID.
type UserModel struct {
	ID             int64  `gorm:"primaryKey;autoIncrement"`
	Username       string `gorm:"type:varchar(64);uniqueIndex;not null"`
	HashedPassword string `gorm:"column:hashed_password;not null"`
	CreatedAt      time.Time

	Workouts []WorkoutModel `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	Routines []RoutineModel `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
}

// TableName explicitly sets the table name for GORM.
func (UserModel) TableName() string {
	return "users"
}
