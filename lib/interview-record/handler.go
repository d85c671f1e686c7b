package interviewrecordhandler

import (
	"sort"
	"time"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"interview-tracker-backend/db"
	interviewrecordstore "interview-tracker-backend/lib/interview-record/store"
	interviewstore "interview-tracker-backend/lib/interview/store"
	"interview-tracker-backend/lib/utils/helpers"
	"interview-tracker-backend/models"
	interviewrecordapimodels "interview-tracker-backend/models/api/interview-record"
	dbmodels "interview-tracker-backend/models/db"
)

type Provider interface {
	Create(interviewID, userID int, data interviewrecordapimodels.RecordData) (*interviewrecordapimodels.RecordView, error)
	FindByInterview(interviewID, userID int) ([]interviewrecordapimodels.RecordView, error)
	FindOne(id int) (*interviewrecordapimodels.RecordView, error)
	Remove(id, userID int) (bool, error)
	CheckAccess(interviewID, userID int) error
}

var Instance Provider

func NewHandler() {
	Instance = NewInstance(interviewstore.NewInstance(db.DB), interviewrecordstore.NewInstance(db.DB), time.Now)
}

func NewInstance(interviewStore interviewstore.Provider, recordStore interviewrecordstore.Provider, now func() time.Time) Provider {
	return impl{
		interviewStore: interviewStore,
		recordStore:    recordStore,
		now:            now,
	}
}

type impl struct {
	interviewStore interviewstore.Provider
	recordStore    interviewrecordstore.Provider
	now            func() time.Time
}

func (i impl) Create(interviewID, userID int, data interviewrecordapimodels.RecordData) (*interviewrecordapimodels.RecordView, error) {
	logger := log.
		WithField("interview_id", interviewID).
		WithField("user_id", userID).
		WithField("record_type", data.Type)
	if err := i.CheckAccess(interviewID, userID); err != nil {
		return nil, err
	}
	rec := dbmodels.InterviewRecord{
		InterviewID: interviewID,
		UserID:      &userID,
		Type:        data.Type,
		Message:     data.Message,
		Metadata:    data.Metadata,
		CreatedAt:   helpers.FormatISO(i.now()),
	}
	if rec.Metadata.IsNull() {
		rec.Metadata = nil
	}
	saved, err := i.recordStore.Create(rec)
	if err != nil {
		logger.WithError(err).Error("failed to save timeline entry")
		return nil, errors.New("failed to save timeline entry")
	}
	view := interviewrecordapimodels.Convert(*saved)
	return &view, nil
}

func (i impl) FindByInterview(interviewID, userID int) ([]interviewrecordapimodels.RecordView, error) {
	if err := i.CheckAccess(interviewID, userID); err != nil {
		return nil, err
	}
	list, err := i.recordStore.ListByInterview(interviewID)
	if err != nil {
		log.
			WithField("interview_id", interviewID).
			WithError(err).
			Error("failed to load interview timeline")
		return nil, errors.New("failed to load interview timeline")
	}
	// createdAt values share one layout, so they order as strings
	sort.SliceStable(list, func(a, b int) bool {
		if list[a].CreatedAt != list[b].CreatedAt {
			return list[a].CreatedAt > list[b].CreatedAt
		}
		return list[a].ID > list[b].ID
	})
	return interviewrecordapimodels.ConvertList(list), nil
}

func (i impl) FindOne(id int) (*interviewrecordapimodels.RecordView, error) {
	rec, err := i.recordStore.GetByID(id)
	if err != nil {
		log.
			WithField("record_id", id).
			WithError(err).
			Error("failed to load timeline entry")
		return nil, errors.New("failed to load timeline entry")
	}
	if rec == nil {
		return nil, nil
	}
	view := interviewrecordapimodels.Convert(*rec)
	return &view, nil
}

func (i impl) Remove(id, userID int) (bool, error) {
	logger := log.
		WithField("record_id", id).
		WithField("user_id", userID)
	rec, err := i.recordStore.GetByID(id)
	if err != nil {
		logger.WithError(err).Error("failed to load timeline entry")
		return false, errors.New("failed to load timeline entry")
	}
	if rec == nil {
		return false, nil
	}
	err = i.CheckAccess(rec.InterviewID, userID)
	if errors.Is(err, models.ErrNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	affected, err := i.recordStore.Delete(id)
	if err != nil {
		logger.WithError(err).Error("failed to delete timeline entry")
		return false, errors.New("failed to delete timeline entry")
	}
	return affected > 0, nil
}

func (i impl) CheckAccess(interviewID, userID int) error {
	interview, err := i.interviewStore.GetByID(interviewID)
	if err != nil {
		log.
			WithField("interview_id", interviewID).
			WithError(err).
			Error("failed to load interview")
		return errors.New("failed to load interview")
	}
	if interview == nil {
		return models.ErrNotFound
	}
	if interview.UserID != userID {
		return models.ErrForbidden
	}
	return nil
}
