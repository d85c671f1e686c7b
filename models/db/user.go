package dbmodels

import (
	"time"

	"interview-tracker-backend/models"
)

type User struct {
	ID             int             `gorm:"primaryKey;autoIncrement"`
	Username       string          `gorm:"type:varchar(20);uniqueIndex;not null"`
	PasswordHash   string          `gorm:"type:varchar(128);not null"`
	Email          string          `gorm:"type:varchar(255)"`
	ThemeDarkMode  bool            `gorm:"default:true"`
	Role           models.UserRole `gorm:"type:varchar(20);default:user"`
	ProfilePicture *string         `gorm:"type:varchar(255)"` // object name in the bucket
	CreatedAt      time.Time       `gorm:"index"`
	UpdatedAt      time.Time
}
