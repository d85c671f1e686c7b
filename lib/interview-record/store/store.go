package interviewrecordstore

import (
	"github.com/pkg/errors"
	"gorm.io/gorm"
	dbmodels "interview-tracker-backend/models/db"
)

// Provider has no update method, timeline entries are append-only.
type Provider interface {
	Create(rec dbmodels.InterviewRecord) (*dbmodels.InterviewRecord, error)
	GetByID(id int) (*dbmodels.InterviewRecord, error)
	ListByInterview(interviewID int) ([]dbmodels.InterviewRecord, error)
	Delete(id int) (affected int64, err error)
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) Create(rec dbmodels.InterviewRecord) (*dbmodels.InterviewRecord, error) {
	err := i.db.
		Omit("Interview").
		Create(&rec).
		Error
	if err != nil {
		return nil, err
	}
	return &rec, nil
}

func (i impl) GetByID(id int) (*dbmodels.InterviewRecord, error) {
	var rec dbmodels.InterviewRecord
	err := i.db.
		Where("id = ?", id).
		First(&rec).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &rec, nil
}

func (i impl) ListByInterview(interviewID int) ([]dbmodels.InterviewRecord, error) {
	list := []dbmodels.InterviewRecord{}
	err := i.db.
		Model(dbmodels.InterviewRecord{}).
		Where("interview_id = ?", interviewID).
		Order("created_at desc").
		Order("id desc").
		Find(&list).
		Error
	if err != nil {
		return nil, err
	}
	return list, nil
}

func (i impl) Delete(id int) (affected int64, err error) {
	tx := i.db.
		Where("id = ?", id).
		Delete(&dbmodels.InterviewRecord{})
	return tx.RowsAffected, tx.Error
}
