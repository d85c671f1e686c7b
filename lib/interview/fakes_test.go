package interviewhandler

import (
	"context"
	"encoding/json"
	"sort"
	"strings"
	"time"

	"github.com/pkg/errors"
	interviewrecordstore "interview-tracker-backend/lib/interview-record/store"
	interviewstore "interview-tracker-backend/lib/interview/store"
	"interview-tracker-backend/models"
	interviewapimodels "interview-tracker-backend/models/api/interview"
	dbmodels "interview-tracker-backend/models/db"
)

type fakeInterviewStore struct {
	rows map[int]dbmodels.Interview
	next int
}

func newFakeInterviewStore() *fakeInterviewStore {
	return &fakeInterviewStore{rows: map[int]dbmodels.Interview{}}
}

func (f *fakeInterviewStore) Create(rec dbmodels.Interview) (int, error) {
	f.next++
	rec.ID = f.next
	f.rows[rec.ID] = rec
	return rec.ID, nil
}

func (f *fakeInterviewStore) Save(rec dbmodels.Interview) error {
	f.rows[rec.ID] = rec
	return nil
}

func (f *fakeInterviewStore) GetByID(id int) (*dbmodels.Interview, error) {
	rec, ok := f.rows[id]
	if !ok {
		return nil, nil
	}
	return &rec, nil
}

func (f *fakeInterviewStore) GetByIDForUpdate(id int) (*dbmodels.Interview, error) {
	return f.GetByID(id)
}

func (f *fakeInterviewStore) Delete(id, userID int) (int64, error) {
	rec, ok := f.rows[id]
	if !ok || rec.UserID != userID {
		return 0, nil
	}
	delete(f.rows, id)
	return 1, nil
}

func (f *fakeInterviewStore) ListAll(userID int) ([]dbmodels.Interview, error) {
	return f.filtered(userID, interviewapimodels.InterviewFilter{}), nil
}

func (f *fakeInterviewStore) List(userID int, filter interviewapimodels.InterviewFilter) ([]dbmodels.Interview, error) {
	list := f.filtered(userID, filter)
	page, limit := filter.GetPage()
	from := (page - 1) * limit
	if from > len(list) {
		return []dbmodels.Interview{}, nil
	}
	to := from + limit
	if to > len(list) {
		to = len(list)
	}
	return list[from:to], nil
}

func (f *fakeInterviewStore) ListCount(userID int, filter interviewapimodels.InterviewFilter) (int64, error) {
	return int64(len(f.filtered(userID, filter))), nil
}

func (f *fakeInterviewStore) CountByStatus(userID int) (map[models.InterviewStatus]int64, error) {
	result := map[models.InterviewStatus]int64{}
	for _, rec := range f.rows {
		if rec.UserID == userID {
			result[rec.Status]++
		}
	}
	return result, nil
}

func (f *fakeInterviewStore) Recent(userID, limit int) ([]dbmodels.Interview, error) {
	list := f.filtered(userID, interviewapimodels.InterviewFilter{})
	sort.SliceStable(list, func(a, b int) bool {
		if list[a].UpdatedAt != list[b].UpdatedAt {
			return list[a].UpdatedAt > list[b].UpdatedAt
		}
		return list[a].ID > list[b].ID
	})
	if len(list) > limit {
		list = list[:limit]
	}
	return list, nil
}

func (f *fakeInterviewStore) filtered(userID int, filter interviewapimodels.InterviewFilter) []dbmodels.Interview {
	list := []dbmodels.Interview{}
	for _, rec := range f.rows {
		if rec.UserID != userID {
			continue
		}
		if len(filter.Status) != 0 && !containsStatus(filter.Status, rec.Status) {
			continue
		}
		if len(filter.Type) != 0 && !containsType(filter.Type, rec.Type) {
			continue
		}
		if filter.Search != "" {
			search := strings.ToLower(filter.Search)
			if !strings.Contains(strings.ToLower(rec.Company), search) && !strings.Contains(strings.ToLower(rec.Position), search) {
				continue
			}
		}
		list = append(list, rec)
	}
	sort.Slice(list, func(a, b int) bool {
		if list[a].Date != list[b].Date {
			return list[a].Date > list[b].Date
		}
		return list[a].ID > list[b].ID
	})
	return list
}

func containsStatus(list []models.InterviewStatus, value models.InterviewStatus) bool {
	for _, item := range list {
		if item == value {
			return true
		}
	}
	return false
}

func containsType(list []models.InterviewType, value models.InterviewType) bool {
	for _, item := range list {
		if item == value {
			return true
		}
	}
	return false
}

// fakeRecordStore keeps insertion order, ordering is up to the caller.
type fakeRecordStore struct {
	rows       []dbmodels.InterviewRecord
	next       int
	failCreate bool
}

func (f *fakeRecordStore) Create(rec dbmodels.InterviewRecord) (*dbmodels.InterviewRecord, error) {
	if f.failCreate {
		return nil, errors.New("insert failed")
	}
	f.next++
	rec.ID = f.next
	f.rows = append(f.rows, rec)
	return &rec, nil
}

func (f *fakeRecordStore) GetByID(id int) (*dbmodels.InterviewRecord, error) {
	for _, rec := range f.rows {
		if rec.ID == id {
			return &rec, nil
		}
	}
	return nil, nil
}

func (f *fakeRecordStore) ListByInterview(interviewID int) ([]dbmodels.InterviewRecord, error) {
	list := []dbmodels.InterviewRecord{}
	for _, rec := range f.rows {
		if rec.InterviewID == interviewID {
			list = append(list, rec)
		}
	}
	return list, nil
}

func (f *fakeRecordStore) Delete(id int) (int64, error) {
	for idx, rec := range f.rows {
		if rec.ID == id {
			f.rows = append(f.rows[:idx], f.rows[idx+1:]...)
			return 1, nil
		}
	}
	return 0, nil
}

// fakeTransactor restores both stores when fn fails.
func fakeTransactor(interviews *fakeInterviewStore, records *fakeRecordStore) Transactor {
	return func(fn TxFunc) error {
		savedRows := make(map[int]dbmodels.Interview, len(interviews.rows))
		for id, rec := range interviews.rows {
			savedRows[id] = rec
		}
		savedNext := interviews.next
		savedRecords := append([]dbmodels.InterviewRecord{}, records.rows...)
		savedRecordNext := records.next

		var (
			interviewStore interviewstore.Provider       = interviews
			recordStore    interviewrecordstore.Provider = records
		)
		if err := fn(interviewStore, recordStore); err != nil {
			interviews.rows = savedRows
			interviews.next = savedNext
			records.rows = savedRecords
			records.next = savedRecordNext
			return err
		}
		return nil
	}
}

type fakeCache struct {
	values map[string][]byte
	gets   int
}

func (f *fakeCache) GetJSON(_ context.Context, key string, out any) (bool, error) {
	f.gets++
	body, ok := f.values[key]
	if !ok {
		return false, nil
	}
	return true, json.Unmarshal(body, out)
}

func (f *fakeCache) SetJSON(_ context.Context, key string, value any) error {
	body, err := json.Marshal(value)
	if err != nil {
		return err
	}
	f.values[key] = body
	return nil
}

func (f *fakeCache) Delete(_ context.Context, keys ...string) error {
	for _, key := range keys {
		delete(f.values, key)
	}
	return nil
}

// tickingClock advances one second on every call.
func tickingClock() func() time.Time {
	current := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)
	return func() time.Time {
		current = current.Add(time.Second)
		return current
	}
}
