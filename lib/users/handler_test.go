package usershandler

import (
	"context"
	"io"
	"strings"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"interview-tracker-backend/models"
	apimodels "interview-tracker-backend/models/api"
	authapimodels "interview-tracker-backend/models/api/auth"
	dbmodels "interview-tracker-backend/models/db"
)

type fakeUserStore struct {
	users map[int]*dbmodels.User
	next  int
}

func newFakeUserStore() *fakeUserStore {
	return &fakeUserStore{users: map[int]*dbmodels.User{}}
}

func (f *fakeUserStore) Create(rec dbmodels.User) (int, error) {
	f.next++
	rec.ID = f.next
	f.users[rec.ID] = &rec
	return rec.ID, nil
}

func (f *fakeUserStore) GetByID(id int) (*dbmodels.User, error) {
	rec, ok := f.users[id]
	if !ok {
		return nil, nil
	}
	result := *rec
	return &result, nil
}

func (f *fakeUserStore) GetByUsername(username string) (*dbmodels.User, error) {
	for _, rec := range f.users {
		if rec.Username == username {
			result := *rec
			return &result, nil
		}
	}
	return nil, nil
}

func (f *fakeUserStore) Update(id int, updMap map[string]any) error {
	rec := f.users[id]
	for key, value := range updMap {
		switch key {
		case "theme_dark_mode":
			rec.ThemeDarkMode = value.(bool)
		case "profile_picture":
			if value == nil {
				rec.ProfilePicture = nil
			} else {
				name := value.(string)
				rec.ProfilePicture = &name
			}
		}
	}
	return nil
}

func (f *fakeUserStore) List(_ apimodels.Pagination) ([]dbmodels.User, error) {
	list := []dbmodels.User{}
	for id := 1; id <= f.next; id++ {
		if rec, ok := f.users[id]; ok {
			list = append(list, *rec)
		}
	}
	return list, nil
}

func (f *fakeUserStore) Count() (int64, error) {
	return int64(len(f.users)), nil
}

type fakeFileStorage struct {
	files map[string][]byte
}

func (f *fakeFileStorage) UploadProfilePicture(_ context.Context, userID int, fileReader io.Reader, _ int64, _ string) (string, error) {
	body, err := io.ReadAll(fileReader)
	if err != nil {
		return "", err
	}
	name := "pic-" + string(body)
	f.files[name] = body
	return name, nil
}

func (f *fakeFileStorage) GetFile(_ context.Context, objectName string) ([]byte, string, error) {
	body, ok := f.files[objectName]
	if !ok {
		return nil, "", errors.New("no such object")
	}
	return body, "image/png", nil
}

func (f *fakeFileStorage) DeleteFile(_ context.Context, objectName string) error {
	delete(f.files, objectName)
	return nil
}

func TestRegister(t *testing.T) {
	store := newFakeUserStore()
	handler := NewInstance(store, &fakeFileStorage{files: map[string][]byte{}})

	t.Run(`new user`, func(t *testing.T) {
		view, err := handler.Register(authapimodels.RegisterRequest{Username: "alice", Password: "secret123", Email: "a@example.com"})
		require.NoError(t, err)
		require.Equal(t, 1, view.ID)
		require.Equal(t, models.UserRoleUser, view.Role)
		require.True(t, view.ThemeDarkMode)
		require.NoError(t, bcrypt.CompareHashAndPassword([]byte(store.users[1].PasswordHash), []byte("secret123")))
	})
	t.Run(`duplicate username`, func(t *testing.T) {
		_, err := handler.Register(authapimodels.RegisterRequest{Username: "alice", Password: "secret456", Email: "b@example.com"})
		require.True(t, errors.Is(err, models.ErrConflict))
	})
}

func TestSetTheme(t *testing.T) {
	store := newFakeUserStore()
	handler := NewInstance(store, &fakeFileStorage{files: map[string][]byte{}})
	id, _ := store.Create(dbmodels.User{Username: "bob", ThemeDarkMode: true})

	require.NoError(t, handler.SetTheme(id, false))
	view, err := handler.GetByID(id)
	require.NoError(t, err)
	require.False(t, view.ThemeDarkMode)

	require.True(t, errors.Is(handler.SetTheme(99, true), models.ErrNotFound))
}

func TestProfilePicture(t *testing.T) {
	ctx := context.Background()
	store := newFakeUserStore()
	files := &fakeFileStorage{files: map[string][]byte{}}
	handler := NewInstance(store, files)
	id, _ := store.Create(dbmodels.User{Username: "carol"})

	_, _, err := handler.GetProfilePicture(ctx, id)
	require.True(t, errors.Is(err, models.ErrNotFound))

	view, err := handler.UploadProfilePicture(ctx, id, strings.NewReader("one"), 3, "image/png")
	require.NoError(t, err)
	require.True(t, view.HasProfilePicture)

	_, err = handler.UploadProfilePicture(ctx, id, strings.NewReader("two"), 3, "image/png")
	require.NoError(t, err)
	require.NotContains(t, files.files, "pic-one")

	body, contentType, err := handler.GetProfilePicture(ctx, id)
	require.NoError(t, err)
	require.Equal(t, "two", string(body))
	require.Equal(t, "image/png", contentType)

	require.NoError(t, handler.DeleteProfilePicture(ctx, id))
	require.Empty(t, files.files)
	view, err = handler.GetByID(id)
	require.NoError(t, err)
	require.False(t, view.HasProfilePicture)
}

func TestList(t *testing.T) {
	store := newFakeUserStore()
	handler := NewInstance(store, &fakeFileStorage{files: map[string][]byte{}})
	store.Create(dbmodels.User{Username: "u1"})
	store.Create(dbmodels.User{Username: "u2"})

	list, rowCount, err := handler.List(apimodels.Pagination{})
	require.NoError(t, err)
	require.Equal(t, int64(2), rowCount)
	require.Len(t, list, 2)
	require.Equal(t, "u1", list[0].Username)

	list, rowCount, err = handler.List(apimodels.Pagination{Page: 5, Limit: 1})
	require.NoError(t, err)
	require.Equal(t, int64(2), rowCount)
	require.Empty(t, list)
}
