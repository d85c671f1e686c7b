package dbmodels

import (
	"interview-tracker-backend/models"
)

// InterviewRecord is one timeline entry of an interview. Rows are never updated.
type InterviewRecord struct {
	ID          int        `gorm:"primaryKey;autoIncrement"`
	InterviewID int        `gorm:"index;not null"`
	Interview   *Interview `gorm:"foreignKey:InterviewID;constraint:OnDelete:CASCADE"`
	UserID      *int
	Type        models.RecordType `gorm:"type:varchar(32);not null"`
	Message     *string           `gorm:"type:text"`
	Metadata    Metadata          `gorm:"type:jsonb"`
	CreatedAt   string            `gorm:"type:varchar(32);index;not null"`
}

type FieldChange struct {
	Field       string `json:"field"`
	OldValue    any    `json:"oldValue"`
	NewValue    any    `json:"newValue"`
	DisplayName string `json:"displayName"`
}

type ChangesMetadata struct {
	Changes []FieldChange `json:"changes"`
}
