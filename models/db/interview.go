package dbmodels

import (
	"interview-tracker-backend/models"
)

// Interview timestamps are ISO-8601 strings stamped by the handler clock,
// gorm auto time tracking does not apply to string columns.
type Interview struct {
	ID           int                    `gorm:"primaryKey;autoIncrement"`
	UserID       int                    `gorm:"index;not null"`
	Company      string                 `gorm:"type:varchar(255);not null"`
	Position     string                 `gorm:"type:varchar(255);not null"`
	Date         string                 `gorm:"type:varchar(64);not null"`
	Status       models.InterviewStatus `gorm:"type:varchar(32);index;not null"`
	Type         models.InterviewType   `gorm:"type:varchar(32);not null"`
	Interviewer  *string                `gorm:"type:varchar(255)"`
	Location     *string                `gorm:"type:varchar(255)"`
	CallLink     *string                `gorm:"type:varchar(1024)"`
	Notes        *string                `gorm:"type:text"`
	Feedback     *string                `gorm:"type:text"`
	Rating       *int
	FollowUpDate *string `gorm:"type:varchar(64)"`
	CreatedAt    string  `gorm:"type:varchar(32);not null"`
	UpdatedAt    string  `gorm:"type:varchar(32);index;not null"`
}
