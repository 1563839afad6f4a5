package model

import (
	"time"

	"task-manager.com/task-manager/internal/constants"
)

type User struct {
	ID           string         `gorm:"primaryKey;size:36" json:"id"`
	Email        string         `gorm:"uniqueIndex;not null" json:"email"`
	PasswordHash string         `gorm:"not null" json:"-"`
	Role         constants.Role `gorm:"type:varchar(10);not null" json:"role"`
	CreatedAt    time.Time      `json:"created_at"`
}
