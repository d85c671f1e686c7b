package interviewstore

import (
	"strings"

	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"interview-tracker-backend/models"
	interviewapimodels "interview-tracker-backend/models/api/interview"
	dbmodels "interview-tracker-backend/models/db"
)

type Provider interface {
	Create(rec dbmodels.Interview) (id int, err error)
	Save(rec dbmodels.Interview) error
	GetByID(id int) (*dbmodels.Interview, error)
	// GetByIDForUpdate locks the row until the surrounding transaction ends.
	GetByIDForUpdate(id int) (*dbmodels.Interview, error)
	Delete(id, userID int) (affected int64, err error)
	ListAll(userID int) ([]dbmodels.Interview, error)
	List(userID int, filter interviewapimodels.InterviewFilter) ([]dbmodels.Interview, error)
	ListCount(userID int, filter interviewapimodels.InterviewFilter) (int64, error)
	CountByStatus(userID int) (map[models.InterviewStatus]int64, error)
	Recent(userID, limit int) ([]dbmodels.Interview, error)
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) Create(rec dbmodels.Interview) (id int, err error) {
	err = i.db.
		Create(&rec).
		Error
	if err != nil {
		return 0, err
	}
	return rec.ID, nil
}

func (i impl) Save(rec dbmodels.Interview) error {
	return i.db.
		Save(&rec).
		Error
}

func (i impl) GetByID(id int) (*dbmodels.Interview, error) {
	return i.getByID(i.db, id)
}

func (i impl) GetByIDForUpdate(id int) (*dbmodels.Interview, error) {
	return i.getByID(i.db.Clauses(clause.Locking{Strength: "UPDATE"}), id)
}

func (i impl) getByID(tx *gorm.DB, id int) (*dbmodels.Interview, error) {
	var rec dbmodels.Interview
	err := tx.
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

func (i impl) Delete(id, userID int) (affected int64, err error) {
	tx := i.db.
		Where("id = ?", id).
		Where("user_id = ?", userID).
		Delete(&dbmodels.Interview{})
	return tx.RowsAffected, tx.Error
}

func (i impl) ListAll(userID int) ([]dbmodels.Interview, error) {
	list := []dbmodels.Interview{}
	err := i.db.
		Where("user_id = ?", userID).
		Order("date desc").
		Order("id desc").
		Find(&list).
		Error
	if err != nil {
		return nil, err
	}
	return list, nil
}

func (i impl) List(userID int, filter interviewapimodels.InterviewFilter) ([]dbmodels.Interview, error) {
	list := []dbmodels.Interview{}
	tx := i.filteredQuery(userID, filter)
	page, limit := filter.GetPage()
	i.setPage(tx, page, limit)
	err := tx.
		Order("date desc").
		Order("id desc").
		Find(&list).
		Error
	if err != nil {
		return nil, err
	}
	return list, nil
}

func (i impl) ListCount(userID int, filter interviewapimodels.InterviewFilter) (int64, error) {
	var rowCount int64
	err := i.filteredQuery(userID, filter).
		Count(&rowCount).
		Error
	if err != nil {
		return 0, err
	}
	return rowCount, nil
}

func (i impl) CountByStatus(userID int) (map[models.InterviewStatus]int64, error) {
	type statusCount struct {
		Status models.InterviewStatus
		Count  int64
	}
	var rows []statusCount
	err := i.db.
		Model(dbmodels.Interview{}).
		Select("status, count(*) as count").
		Where("user_id = ?", userID).
		Group("status").
		Scan(&rows).
		Error
	if err != nil {
		return nil, err
	}
	result := make(map[models.InterviewStatus]int64, len(rows))
	for _, row := range rows {
		result[row.Status] = row.Count
	}
	return result, nil
}

func (i impl) Recent(userID, limit int) ([]dbmodels.Interview, error) {
	list := []dbmodels.Interview{}
	err := i.db.
		Where("user_id = ?", userID).
		Order("updated_at desc").
		Order("id desc").
		Limit(limit).
		Find(&list).
		Error
	if err != nil {
		return nil, err
	}
	return list, nil
}

func (i impl) filteredQuery(userID int, filter interviewapimodels.InterviewFilter) *gorm.DB {
	tx := i.db.
		Model(dbmodels.Interview{}).
		Where("user_id = ?", userID)
	if len(filter.Status) != 0 {
		tx = tx.Where("status in (?)", filter.Status)
	}
	if len(filter.Type) != 0 {
		tx = tx.Where("type in (?)", filter.Type)
	}
	if filter.Search != "" {
		search := containsPattern(filter.Search)
		tx = tx.Where(`(company ilike ? escape '\' or position ilike ? escape '\')`, search, search)
	}
	return tx
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// containsPattern matches search literally anywhere in the column.
func containsPattern(search string) string {
	return "%" + likeEscaper.Replace(search) + "%"
}

func (i impl) setPage(tx *gorm.DB, page, limit int) {
	offset := (page - 1) * limit
	tx.Limit(limit).Offset(offset)
}
