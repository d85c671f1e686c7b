package usershandler

import (
	"context"
	"io"
	"strings"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
	"interview-tracker-backend/db"
	filestorage "interview-tracker-backend/lib/file-storage"
	userstore "interview-tracker-backend/lib/users/store"
	"interview-tracker-backend/models"
	apimodels "interview-tracker-backend/models/api"
	authapimodels "interview-tracker-backend/models/api/auth"
	userapimodels "interview-tracker-backend/models/api/user"
	dbmodels "interview-tracker-backend/models/db"
)

type Provider interface {
	Register(request authapimodels.RegisterRequest) (*userapimodels.UserView, error)
	GetByID(userID int) (*userapimodels.UserView, error)
	SetTheme(userID int, darkMode bool) error
	UploadProfilePicture(ctx context.Context, userID int, fileReader io.Reader, fileSize int64, contentType string) (*userapimodels.UserView, error)
	GetProfilePicture(ctx context.Context, userID int) (body []byte, contentType string, err error)
	DeleteProfilePicture(ctx context.Context, userID int) error
	List(pagination apimodels.Pagination) ([]userapimodels.UserView, int64, error)
}

var Instance Provider

func NewHandler() {
	Instance = NewInstance(userstore.NewInstance(db.DB), filestorage.Instance)
}

func NewInstance(store userstore.Provider, fileStorage filestorage.Provider) Provider {
	return impl{
		store:       store,
		fileStorage: fileStorage,
	}
}

type impl struct {
	store       userstore.Provider
	fileStorage filestorage.Provider
}

func (i impl) Register(request authapimodels.RegisterRequest) (*userapimodels.UserView, error) {
	logger := log.WithField("username", request.Username)
	username := strings.TrimSpace(request.Username)
	existed, err := i.store.GetByUsername(username)
	if err != nil {
		logger.WithError(err).Error("failed to check username")
		return nil, errors.New("failed to check username")
	}
	if existed != nil {
		return nil, errors.Wrap(models.ErrConflict, "username is already taken")
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(request.Password), bcrypt.DefaultCost)
	if err != nil {
		logger.WithError(err).Error("failed to hash password")
		return nil, errors.New("failed to register user")
	}
	rec := dbmodels.User{
		Username:      username,
		PasswordHash:  string(hash),
		Email:         strings.TrimSpace(request.Email),
		ThemeDarkMode: true,
		Role:          models.UserRoleUser,
	}
	id, err := i.store.Create(rec)
	if err != nil {
		logger.WithError(err).Error("failed to create user")
		return nil, errors.New("failed to register user")
	}
	rec.ID = id
	view := userapimodels.Convert(rec)
	return &view, nil
}

func (i impl) GetByID(userID int) (*userapimodels.UserView, error) {
	rec, err := i.getUser(userID)
	if err != nil {
		return nil, err
	}
	view := userapimodels.Convert(*rec)
	return &view, nil
}

func (i impl) SetTheme(userID int, darkMode bool) error {
	if _, err := i.getUser(userID); err != nil {
		return err
	}
	err := i.store.Update(userID, map[string]any{"theme_dark_mode": darkMode})
	if err != nil {
		log.WithField("user_id", userID).WithError(err).Error("failed to save theme")
		return errors.New("failed to save theme")
	}
	return nil
}

func (i impl) UploadProfilePicture(ctx context.Context, userID int, fileReader io.Reader, fileSize int64, contentType string) (*userapimodels.UserView, error) {
	logger := log.WithField("user_id", userID)
	rec, err := i.getUser(userID)
	if err != nil {
		return nil, err
	}
	objectName, err := i.fileStorage.UploadProfilePicture(ctx, userID, fileReader, fileSize, contentType)
	if err != nil {
		logger.WithError(err).Error("failed to upload profile picture")
		return nil, errors.New("failed to upload profile picture")
	}
	err = i.store.Update(userID, map[string]any{"profile_picture": objectName})
	if err != nil {
		logger.WithError(err).Error("failed to save profile picture")
		return nil, errors.New("failed to save profile picture")
	}
	if rec.ProfilePicture != nil && *rec.ProfilePicture != "" {
		if err = i.fileStorage.DeleteFile(ctx, *rec.ProfilePicture); err != nil {
			logger.WithError(err).Warn("failed to delete previous profile picture")
		}
	}
	rec.ProfilePicture = &objectName
	view := userapimodels.Convert(*rec)
	return &view, nil
}

func (i impl) GetProfilePicture(ctx context.Context, userID int) ([]byte, string, error) {
	rec, err := i.getUser(userID)
	if err != nil {
		return nil, "", err
	}
	if rec.ProfilePicture == nil || *rec.ProfilePicture == "" {
		return nil, "", errors.Wrap(models.ErrNotFound, "profile picture is not set")
	}
	body, contentType, err := i.fileStorage.GetFile(ctx, *rec.ProfilePicture)
	if err != nil {
		log.WithField("user_id", userID).WithError(err).Error("failed to load profile picture")
		return nil, "", errors.New("failed to load profile picture")
	}
	return body, contentType, nil
}

func (i impl) DeleteProfilePicture(ctx context.Context, userID int) error {
	logger := log.WithField("user_id", userID)
	rec, err := i.getUser(userID)
	if err != nil {
		return err
	}
	if rec.ProfilePicture == nil || *rec.ProfilePicture == "" {
		return nil
	}
	err = i.store.Update(userID, map[string]any{"profile_picture": nil})
	if err != nil {
		logger.WithError(err).Error("failed to clear profile picture")
		return errors.New("failed to delete profile picture")
	}
	if err = i.fileStorage.DeleteFile(ctx, *rec.ProfilePicture); err != nil {
		logger.WithError(err).Warn("failed to delete profile picture file")
	}
	return nil
}

func (i impl) List(pagination apimodels.Pagination) ([]userapimodels.UserView, int64, error) {
	rowCount, err := i.store.Count()
	if err != nil {
		log.WithError(err).Error("failed to count users")
		return nil, 0, errors.New("failed to load users")
	}
	if int64(pagination.GetOffset()) > rowCount {
		return []userapimodels.UserView{}, rowCount, nil
	}
	list, err := i.store.List(pagination)
	if err != nil {
		log.WithError(err).Error("failed to load users")
		return nil, 0, errors.New("failed to load users")
	}
	result := make([]userapimodels.UserView, 0, len(list))
	for _, rec := range list {
		result = append(result, userapimodels.Convert(rec))
	}
	return result, rowCount, nil
}

func (i impl) getUser(userID int) (*dbmodels.User, error) {
	rec, err := i.store.GetByID(userID)
	if err != nil {
		log.WithField("user_id", userID).WithError(err).Error("failed to load user")
		return nil, errors.New("failed to load user")
	}
	if rec == nil {
		return nil, errors.Wrap(models.ErrNotFound, "user not found")
	}
	return rec, nil
}
