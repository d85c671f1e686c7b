package apiv1

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
	"interview-tracker-backend/config"
	interviewhandler "interview-tracker-backend/lib/interview"
	interviewrecordhandler "interview-tracker-backend/lib/interview-record"
	interviewstore "interview-tracker-backend/lib/interview/store"
	authutils "interview-tracker-backend/lib/utils/auth-utils"
	"interview-tracker-backend/models"
	apimodels "interview-tracker-backend/models/api"
	interviewapimodels "interview-tracker-backend/models/api/interview"
	dbmodels "interview-tracker-backend/models/db"
)

const (
	ownerID    = 5
	strangerID = 7
)

type interviewOwners struct {
	interviewstore.Provider
	owners map[int]int
}

func (f interviewOwners) GetByID(id int) (*dbmodels.Interview, error) {
	owner, ok := f.owners[id]
	if !ok {
		return nil, nil
	}
	return &dbmodels.Interview{ID: id, UserID: owner}, nil
}

type memRecordStore struct {
	rows []dbmodels.InterviewRecord
}

func (f *memRecordStore) Create(rec dbmodels.InterviewRecord) (*dbmodels.InterviewRecord, error) {
	rec.ID = len(f.rows) + 1
	f.rows = append(f.rows, rec)
	return &rec, nil
}

func (f *memRecordStore) GetByID(id int) (*dbmodels.InterviewRecord, error) {
	for _, rec := range f.rows {
		if rec.ID == id {
			return &rec, nil
		}
	}
	return nil, nil
}

func (f *memRecordStore) ListByInterview(interviewID int) ([]dbmodels.InterviewRecord, error) {
	list := []dbmodels.InterviewRecord{}
	for _, rec := range f.rows {
		if rec.InterviewID == interviewID {
			list = append(list, rec)
		}
	}
	return list, nil
}

func (f *memRecordStore) Delete(id int) (int64, error) {
	for idx, rec := range f.rows {
		if rec.ID == id {
			f.rows = append(f.rows[:idx], f.rows[idx+1:]...)
			return 1, nil
		}
	}
	return 0, nil
}

// fakeInterviews records the update it receives and owns interview 1 only.
type fakeInterviews struct {
	interviewhandler.Provider
	lastUpdate *interviewapimodels.InterviewUpdate
	created    int
}

func (f *fakeInterviews) Create(userID int, data interviewapimodels.InterviewData) (*interviewapimodels.InterviewView, error) {
	f.created++
	return &interviewapimodels.InterviewView{ID: 1, UserID: userID, Company: data.Company}, nil
}

func (f *fakeInterviews) Get(userID, id int) (*interviewapimodels.InterviewView, error) {
	if id != 1 || userID != ownerID {
		return nil, errors.Wrap(models.ErrNotFound, "interview not found")
	}
	return &interviewapimodels.InterviewView{ID: 1, UserID: ownerID, Company: "Acme"}, nil
}

func (f *fakeInterviews) Update(userID, id int, upd interviewapimodels.InterviewUpdate) (*interviewapimodels.InterviewView, error) {
	if id != 1 || userID != ownerID {
		return nil, errors.Wrap(models.ErrNotFound, "interview not found")
	}
	f.lastUpdate = &upd
	return &interviewapimodels.InterviewView{ID: 1, UserID: ownerID, Company: "Acme"}, nil
}

func (f *fakeInterviews) Delete(userID, id int) error {
	return errors.New("connection reset")
}

type testEnv struct {
	app        *fiber.App
	interviews *fakeInterviews
	records    *memRecordStore
}

func newTestEnv(t *testing.T) *testEnv {
	config.Conf = &config.Configuration{}
	config.Conf.Auth.JWTSecret = "test-secret"
	config.Conf.Auth.JWTExpireInSec = 60
	config.Conf.Auth.JWTRefreshExpireInSec = 120

	env := &testEnv{
		interviews: &fakeInterviews{},
		records:    &memRecordStore{},
	}
	interviewhandler.Instance = env.interviews
	interviewrecordhandler.Instance = interviewrecordhandler.NewInstance(
		interviewOwners{owners: map[int]int{1: ownerID, 2: strangerID}},
		env.records,
		func() time.Time { return time.Date(2024, 1, 15, 10, 0, 0, 0, time.UTC) },
	)

	env.app = fiber.New()
	apiV1 := fiber.New()
	env.app.Mount("/api/v1", apiV1)
	InitRouters(apiV1)
	return env
}

func token(t *testing.T, userID int, role models.UserRole) string {
	tokenString, err := authutils.GetToken(userID, "user", role)
	require.NoError(t, err)
	return tokenString
}

func (e *testEnv) do(t *testing.T, method, path, tokenString, body string) (int, apimodels.Response) {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	}
	if tokenString != "" {
		req.Header.Set(fiber.HeaderAuthorization, "Bearer "+tokenString)
	}
	resp, err := e.app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	var result apimodels.Response
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	if len(raw) > 0 {
		require.NoError(t, json.Unmarshal(raw, &result))
	}
	return resp.StatusCode, result
}

func TestAuthorization(t *testing.T) {
	env := newTestEnv(t)

	t.Run(`missing token`, func(t *testing.T) {
		code, resp := env.do(t, http.MethodGet, "/api/v1/interviews/1", "", "")
		require.Equal(t, http.StatusBadRequest, code)
		require.Equal(t, apimodels.StatusFail, resp.Status)
	})
	t.Run(`foreign signature`, func(t *testing.T) {
		config.Conf.Auth.JWTSecret = "other-secret"
		forged := token(t, ownerID, models.UserRoleUser)
		config.Conf.Auth.JWTSecret = "test-secret"

		code, _ := env.do(t, http.MethodGet, "/api/v1/interviews/1", forged, "")
		require.Equal(t, http.StatusUnauthorized, code)
	})
	t.Run(`refresh token is not an access token`, func(t *testing.T) {
		refresh, err := authutils.GetRefreshToken(ownerID, "user")
		require.NoError(t, err)

		code, _ := env.do(t, http.MethodGet, "/api/v1/interviews/1", refresh, "")
		require.Equal(t, http.StatusUnauthorized, code)
	})
	t.Run(`admin area needs admin role`, func(t *testing.T) {
		code, _ := env.do(t, http.MethodGet, "/api/v1/admin/users", token(t, ownerID, models.UserRoleUser), "")
		require.Equal(t, http.StatusForbidden, code)
	})
}

func TestInterviewApi(t *testing.T) {
	env := newTestEnv(t)
	owner := token(t, ownerID, models.UserRoleUser)

	t.Run(`create validates the body`, func(t *testing.T) {
		code, resp := env.do(t, http.MethodPost, "/api/v1/interviews", owner, `{"company":"","position":"Dev"}`)
		require.Equal(t, http.StatusBadRequest, code)
		require.Equal(t, "company must not be empty", resp.Message)
		require.Equal(t, 0, env.interviews.created)
	})
	t.Run(`create`, func(t *testing.T) {
		body := `{"company":"Acme","position":"Dev","date":"2024-02-01T10:00:00.000Z","status":"scheduled","type":"video"}`
		code, resp := env.do(t, http.MethodPost, "/api/v1/interviews", owner, body)
		require.Equal(t, http.StatusCreated, code)
		require.Equal(t, apimodels.StatusSuccess, resp.Status)
		require.Equal(t, 1, env.interviews.created)
	})
	t.Run(`foreign interview is not found`, func(t *testing.T) {
		code, resp := env.do(t, http.MethodGet, "/api/v1/interviews/1", token(t, strangerID, models.UserRoleUser), "")
		require.Equal(t, http.StatusNotFound, code)
		require.Contains(t, resp.Message, "not found")
	})
	t.Run(`patch keeps only supplied keys`, func(t *testing.T) {
		code, _ := env.do(t, http.MethodPatch, "/api/v1/interviews/1", owner, `{"status":"completed","rating":null}`)
		require.Equal(t, http.StatusOK, code)
		require.NotNil(t, env.interviews.lastUpdate)

		fields := env.interviews.lastUpdate.Fields()
		require.Len(t, fields, 2)
		require.Equal(t, "status", fields[0].Name)
		require.Equal(t, "rating", fields[1].Name)
		require.Nil(t, fields[1].Value)
	})
	t.Run(`unknown key is rejected`, func(t *testing.T) {
		code, _ := env.do(t, http.MethodPut, "/api/v1/interviews/1", owner, `{"salary":100}`)
		require.Equal(t, http.StatusBadRequest, code)
	})
	t.Run(`invalid enum is rejected`, func(t *testing.T) {
		code, _ := env.do(t, http.MethodPut, "/api/v1/interviews/1", owner, `{"status":"lost"}`)
		require.Equal(t, http.StatusBadRequest, code)
	})
	t.Run(`unexpected failure hides the cause`, func(t *testing.T) {
		code, resp := env.do(t, http.MethodDelete, "/api/v1/interviews/1", owner, "")
		require.Equal(t, http.StatusInternalServerError, code)
		require.Equal(t, "failed to delete interview", resp.Message)
	})
}

func TestInterviewRecordApi(t *testing.T) {
	env := newTestEnv(t)
	owner := token(t, ownerID, models.UserRoleUser)
	stranger := token(t, strangerID, models.UserRoleUser)

	t.Run(`owner adds an entry`, func(t *testing.T) {
		code, resp := env.do(t, http.MethodPost, "/api/v1/interviews/1/records", owner, `{"type":"note","message":"called HR","metadata":{"k":"v"}}`)
		require.Equal(t, http.StatusCreated, code)
		require.Equal(t, apimodels.StatusSuccess, resp.Status)
		require.Len(t, env.records.rows, 1)
		require.Equal(t, "2024-01-15T10:00:00.000Z", env.records.rows[0].CreatedAt)
	})
	t.Run(`invalid type`, func(t *testing.T) {
		code, _ := env.do(t, http.MethodPost, "/api/v1/interviews/1/records", owner, `{"type":"rumour"}`)
		require.Equal(t, http.StatusBadRequest, code)
	})
	t.Run(`metadata must be an object`, func(t *testing.T) {
		code, _ := env.do(t, http.MethodPost, "/api/v1/interviews/1/records", owner, `{"type":"note","metadata":[1,2]}`)
		require.Equal(t, http.StatusBadRequest, code)
	})
	t.Run(`stranger is forbidden`, func(t *testing.T) {
		code, _ := env.do(t, http.MethodPost, "/api/v1/interviews/1/records", stranger, `{"type":"note"}`)
		require.Equal(t, http.StatusForbidden, code)

		code, _ = env.do(t, http.MethodGet, "/api/v1/interviews/1/records", stranger, "")
		require.Equal(t, http.StatusForbidden, code)

		code, _ = env.do(t, http.MethodGet, "/api/v1/interviews/1/records/1", stranger, "")
		require.Equal(t, http.StatusForbidden, code)

		code, _ = env.do(t, http.MethodDelete, "/api/v1/interviews/1/records/1", stranger, "")
		require.Equal(t, http.StatusForbidden, code)
		require.Len(t, env.records.rows, 1)
	})
	t.Run(`missing interview`, func(t *testing.T) {
		code, _ := env.do(t, http.MethodGet, "/api/v1/interviews/99/records", owner, "")
		require.Equal(t, http.StatusNotFound, code)
	})
	t.Run(`entry under another interview`, func(t *testing.T) {
		code, _ := env.do(t, http.MethodGet, "/api/v1/interviews/2/records/1", owner, "")
		require.Equal(t, http.StatusNotFound, code)
	})
	t.Run(`owner reads and deletes`, func(t *testing.T) {
		code, resp := env.do(t, http.MethodGet, "/api/v1/interviews/1/records", owner, "")
		require.Equal(t, http.StatusOK, code)
		require.Len(t, resp.Data, 1)

		code, _ = env.do(t, http.MethodDelete, "/api/v1/interviews/1/records/1", owner, "")
		require.Equal(t, http.StatusOK, code)
		require.Empty(t, env.records.rows)

		code, _ = env.do(t, http.MethodDelete, "/api/v1/interviews/1/records/1", owner, "")
		require.Equal(t, http.StatusNotFound, code)
	})
}
