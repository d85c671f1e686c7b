package interviewhandler

import (
	"bytes"
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"interview-tracker-backend/db"
	"interview-tracker-backend/lib/cache"
	changetracker "interview-tracker-backend/lib/change-tracker"
	pdfexport "interview-tracker-backend/lib/export/pdf"
	xlsexport "interview-tracker-backend/lib/export/xls"
	interviewrecordhandler "interview-tracker-backend/lib/interview-record"
	interviewrecordstore "interview-tracker-backend/lib/interview-record/store"
	interviewstore "interview-tracker-backend/lib/interview/store"
	"interview-tracker-backend/lib/utils/helpers"
	"interview-tracker-backend/models"
	interviewapimodels "interview-tracker-backend/models/api/interview"
	interviewrecordapimodels "interview-tracker-backend/models/api/interview-record"
	dbmodels "interview-tracker-backend/models/db"
)

const (
	recentLimit      = 5
	createdMessage   = "Interview created"
	statsCachePrefix = "interviews:stats:"
	// statsGenerationPrefix keys the per-user stats generation
	statsGenerationPrefix = "interviews:stats-generation:"
)

type Provider interface {
	Create(userID int, data interviewapimodels.InterviewData) (*interviewapimodels.InterviewView, error)
	Get(userID, id int) (*interviewapimodels.InterviewView, error)
	ListAll(userID int) ([]interviewapimodels.InterviewView, error)
	List(userID int, filter interviewapimodels.InterviewFilter) ([]interviewapimodels.InterviewView, int64, error)
	Update(userID, id int, upd interviewapimodels.InterviewUpdate) (*interviewapimodels.InterviewView, error)
	Delete(userID, id int) error
	Stats(ctx context.Context, userID int) (*interviewapimodels.InterviewStats, error)
	Recent(userID int) ([]interviewapimodels.InterviewView, error)
	ExportXls(userID int) (*bytes.Buffer, error)
	ExportTimelinePdf(userID, id int) ([]byte, error)
}

var Instance Provider

func NewHandler() {
	Instance = NewInstance(
		interviewstore.NewInstance(db.DB),
		interviewrecordstore.NewInstance(db.DB),
		GormTransactor(db.DB),
		cache.Instance,
		time.Now,
	)
}

func NewInstance(store interviewstore.Provider, recordStore interviewrecordstore.Provider, transactor Transactor, statsCache cache.Provider, now func() time.Time) Provider {
	return impl{
		store:       store,
		recordStore: recordStore,
		transactor:  transactor,
		cache:       statsCache,
		now:         now,
	}
}

type impl struct {
	store       interviewstore.Provider
	recordStore interviewrecordstore.Provider
	transactor  Transactor
	cache       cache.Provider
	now         func() time.Time
}

func (i impl) Create(userID int, data interviewapimodels.InterviewData) (*interviewapimodels.InterviewView, error) {
	logger := log.
		WithField("user_id", userID).
		WithField("company", data.Company)
	rec := data.ToDB(userID, helpers.FormatISO(i.now()))
	err := i.transactor(func(interviewStore interviewstore.Provider, recordStore interviewrecordstore.Provider) error {
		id, err := interviewStore.Create(rec)
		if err != nil {
			return errors.Wrap(err, "failed to save interview")
		}
		rec.ID = id
		message := createdMessage
		recorder := interviewrecordhandler.NewInstance(interviewStore, recordStore, i.now)
		_, err = recorder.Create(id, userID, interviewrecordapimodels.RecordData{
			Type:    models.RecordTypeCreated,
			Message: &message,
		})
		return err
	})
	if err != nil {
		logger.WithError(err).Error("failed to create interview")
		return nil, errors.New("failed to create interview")
	}
	i.invalidateStats(userID)
	view := interviewapimodels.Convert(rec)
	return &view, nil
}

func (i impl) Get(userID, id int) (*interviewapimodels.InterviewView, error) {
	rec, err := i.getOwned(userID, id)
	if err != nil {
		return nil, err
	}
	view := interviewapimodels.Convert(*rec)
	return &view, nil
}

func (i impl) ListAll(userID int) ([]interviewapimodels.InterviewView, error) {
	list, err := i.store.ListAll(userID)
	if err != nil {
		log.WithField("user_id", userID).WithError(err).Error("failed to load interviews")
		return nil, errors.New("failed to load interviews")
	}
	return interviewapimodels.ConvertList(list), nil
}

func (i impl) List(userID int, filter interviewapimodels.InterviewFilter) ([]interviewapimodels.InterviewView, int64, error) {
	logger := log.WithField("user_id", userID)
	rowCount, err := i.store.ListCount(userID, filter)
	if err != nil {
		logger.WithError(err).Error("failed to count interviews")
		return nil, 0, errors.New("failed to load interviews")
	}
	if int64(filter.GetOffset()) > rowCount {
		return []interviewapimodels.InterviewView{}, rowCount, nil
	}
	list, err := i.store.List(userID, filter)
	if err != nil {
		logger.WithError(err).Error("failed to load interviews")
		return nil, 0, errors.New("failed to load interviews")
	}
	return interviewapimodels.ConvertList(list), rowCount, nil
}

// Update applies a partial update and appends a field_change entry describing
// it. Both writes share one transaction with the row locked for the diff.
func (i impl) Update(userID, id int, upd interviewapimodels.InterviewUpdate) (*interviewapimodels.InterviewView, error) {
	logger := log.
		WithField("user_id", userID).
		WithField("interview_id", id)
	if upd.IsEmpty() {
		// nothing to apply or record
		return i.Get(userID, id)
	}
	var result dbmodels.Interview
	err := i.transactor(func(interviewStore interviewstore.Provider, recordStore interviewrecordstore.Provider) error {
		rec, err := interviewStore.GetByIDForUpdate(id)
		if err != nil {
			return errors.Wrap(err, "failed to load interview")
		}
		if rec == nil || rec.UserID != userID {
			return models.ErrNotFound
		}
		changes := changetracker.DetectInterviewChanges(*rec, upd)
		upd.Apply(rec)
		rec.UpdatedAt = helpers.FormatISO(i.now())
		if err = interviewStore.Save(*rec); err != nil {
			return errors.Wrap(err, "failed to save interview")
		}
		result = *rec
		if !changes.HasChanges {
			return nil
		}
		metadata, err := dbmodels.NewMetadata(dbmodels.ChangesMetadata{Changes: changes.Changes})
		if err != nil {
			return errors.Wrap(err, "failed to encode changes")
		}
		recorder := interviewrecordhandler.NewInstance(interviewStore, recordStore, i.now)
		_, err = recorder.Create(id, userID, interviewrecordapimodels.RecordData{
			Type:     models.RecordTypeFieldChange,
			Message:  &changes.Message,
			Metadata: metadata,
		})
		return err
	})
	if errors.Is(err, models.ErrNotFound) {
		return nil, errors.Wrap(models.ErrNotFound, "interview not found")
	}
	if err != nil {
		logger.WithError(err).Error("failed to update interview")
		return nil, errors.New("failed to update interview")
	}
	i.invalidateStats(userID)
	view := interviewapimodels.Convert(result)
	return &view, nil
}

// Delete removes the interview, its timeline goes with it by cascade.
func (i impl) Delete(userID, id int) error {
	affected, err := i.store.Delete(id, userID)
	if err != nil {
		log.
			WithField("user_id", userID).
			WithField("interview_id", id).
			WithError(err).
			Error("failed to delete interview")
		return errors.New("failed to delete interview")
	}
	if affected == 0 {
		return errors.Wrap(models.ErrNotFound, "interview not found")
	}
	i.invalidateStats(userID)
	return nil
}

// Stats serves cached counts only while the entry carries the user's current
// generation. Mutations replace the generation after they commit, so counts taken
// before a concurrent mutation are never served after it.
func (i impl) Stats(ctx context.Context, userID int) (*interviewapimodels.InterviewStats, error) {
	logger := log.WithField("user_id", userID)
	key := statsCacheKey(userID)
	generation := i.statsGeneration(ctx, userID)
	var cached cachedStats
	found, err := i.cache.GetJSON(ctx, key, &cached)
	if err != nil {
		logger.WithError(err).Warn("failed to read statistics from cache")
	}
	if found && generation != "" && cached.Generation == generation {
		return &cached.Stats, nil
	}
	counts, err := i.store.CountByStatus(userID)
	if err != nil {
		logger.WithError(err).Error("failed to calculate statistics")
		return nil, errors.New("failed to calculate statistics")
	}
	stats := interviewapimodels.NewInterviewStats(counts)
	if generation != "" {
		err = i.cache.SetJSON(ctx, key, cachedStats{Generation: generation, Stats: stats})
		if err != nil {
			logger.WithError(err).Warn("failed to cache statistics")
		}
	}
	return &stats, nil
}

func (i impl) Recent(userID int) ([]interviewapimodels.InterviewView, error) {
	list, err := i.store.Recent(userID, recentLimit)
	if err != nil {
		log.WithField("user_id", userID).WithError(err).Error("failed to load recent interviews")
		return nil, errors.New("failed to load recent interviews")
	}
	return interviewapimodels.ConvertList(list), nil
}

func (i impl) ExportXls(userID int) (*bytes.Buffer, error) {
	logger := log.WithField("user_id", userID)
	list, err := i.store.ListAll(userID)
	if err != nil {
		logger.WithError(err).Error("failed to load interviews for export")
		return nil, errors.New("failed to export interviews")
	}
	buf, err := xlsexport.Instance.ExportInterviewList(list)
	if err != nil {
		logger.WithError(err).Error("failed to build xlsx")
		return nil, errors.New("failed to export interviews")
	}
	return buf, nil
}

func (i impl) ExportTimelinePdf(userID, id int) ([]byte, error) {
	logger := log.
		WithField("user_id", userID).
		WithField("interview_id", id)
	rec, err := i.getOwned(userID, id)
	if err != nil {
		return nil, err
	}
	records, err := i.recordStore.ListByInterview(id)
	if err != nil {
		logger.WithError(err).Error("failed to load interview timeline")
		return nil, errors.New("failed to export interview")
	}
	body, err := pdfexport.GenerateTimelineReport(*rec, records)
	if err != nil {
		logger.WithError(err).Error("failed to build pdf")
		return nil, errors.New("failed to export interview")
	}
	return body, nil
}

// getOwned hides interviews of other users behind ErrNotFound.
func (i impl) getOwned(userID, id int) (*dbmodels.Interview, error) {
	rec, err := i.store.GetByID(id)
	if err != nil {
		log.
			WithField("user_id", userID).
			WithField("interview_id", id).
			WithError(err).
			Error("failed to load interview")
		return nil, errors.New("failed to load interview")
	}
	if rec == nil || rec.UserID != userID {
		return nil, errors.Wrap(models.ErrNotFound, "interview not found")
	}
	return rec, nil
}

type cachedStats struct {
	Generation string                            `json:"generation"`
	Stats      interviewapimodels.InterviewStats `json:"stats"`
}

// statsGeneration returns the current generation, starting a new one when none
// is stored. An empty result disables caching for the call.
func (i impl) statsGeneration(ctx context.Context, userID int) string {
	logger := log.WithField("user_id", userID)
	var generation string
	found, err := i.cache.GetJSON(ctx, statsGenerationKey(userID), &generation)
	if err != nil {
		logger.WithError(err).Warn("failed to read statistics generation")
		return ""
	}
	if found && generation != "" {
		return generation
	}
	generation = uuid.NewString()
	if err = i.cache.SetJSON(ctx, statsGenerationKey(userID), generation); err != nil {
		logger.WithError(err).Warn("failed to store statistics generation")
		return ""
	}
	return generation
}

func (i impl) invalidateStats(userID int) {
	ctx := context.Background()
	logger := log.WithField("user_id", userID)
	if err := i.cache.SetJSON(ctx, statsGenerationKey(userID), uuid.NewString()); err != nil {
		logger.WithError(err).Warn("failed to advance statistics generation")
	}
	if err := i.cache.Delete(ctx, statsCacheKey(userID)); err != nil {
		logger.WithError(err).Warn("failed to invalidate statistics cache")
	}
}

func statsCacheKey(userID int) string {
	return fmt.Sprintf("%s%d", statsCachePrefix, userID)
}

func statsGenerationKey(userID int) string {
	return fmt.Sprintf("%s%d", statsGenerationPrefix, userID)
}
