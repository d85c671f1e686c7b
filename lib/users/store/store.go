package userstore

import (
	"github.com/pkg/errors"
	"gorm.io/gorm"
	apimodels "interview-tracker-backend/models/api"
	dbmodels "interview-tracker-backend/models/db"
)

type Provider interface {
	Create(rec dbmodels.User) (id int, err error)
	GetByID(id int) (*dbmodels.User, error)
	GetByUsername(username string) (*dbmodels.User, error)
	Update(id int, updMap map[string]any) error
	List(pagination apimodels.Pagination) ([]dbmodels.User, error)
	Count() (int64, error)
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) Create(rec dbmodels.User) (id int, err error) {
	err = i.db.
		Create(&rec).
		Error
	if err != nil {
		return 0, err
	}
	return rec.ID, nil
}

func (i impl) GetByID(id int) (*dbmodels.User, error) {
	return i.first(i.db.Where("id = ?", id))
}

func (i impl) GetByUsername(username string) (*dbmodels.User, error) {
	return i.first(i.db.Where("username = ?", username))
}

func (i impl) first(tx *gorm.DB) (*dbmodels.User, error) {
	var rec dbmodels.User
	err := tx.First(&rec).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &rec, nil
}

func (i impl) Update(id int, updMap map[string]any) error {
	if len(updMap) == 0 {
		return nil
	}
	return i.db.
		Model(&dbmodels.User{}).
		Where("id = ?", id).
		Updates(updMap).
		Error
}

func (i impl) List(pagination apimodels.Pagination) ([]dbmodels.User, error) {
	list := []dbmodels.User{}
	page, limit := pagination.GetPage()
	err := i.db.
		Order("id").
		Limit(limit).
		Offset((page - 1) * limit).
		Find(&list).
		Error
	if err != nil {
		return nil, err
	}
	return list, nil
}

func (i impl) Count() (int64, error) {
	var rowCount int64
	err := i.db.
		Model(&dbmodels.User{}).
		Count(&rowCount).
		Error
	return rowCount, err
}
