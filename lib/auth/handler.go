package authhandler

import (
	"strings"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
	"interview-tracker-backend/db"
	userstore "interview-tracker-backend/lib/users/store"
	authutils "interview-tracker-backend/lib/utils/auth-utils"
	authapimodels "interview-tracker-backend/models/api/auth"
	dbmodels "interview-tracker-backend/models/db"
)

var ErrInvalidCredentials = errors.New("invalid username or password")

type Provider interface {
	Login(request authapimodels.LoginRequest) (*authapimodels.JWTResponse, error)
	RefreshToken(refreshToken string) (*authapimodels.JWTResponse, error)
}

var Instance Provider

func NewHandler() {
	Instance = NewInstance(userstore.NewInstance(db.DB))
}

func NewInstance(store userstore.Provider) Provider {
	return impl{
		store: store,
	}
}

type impl struct {
	store userstore.Provider
}

func (i impl) Login(request authapimodels.LoginRequest) (*authapimodels.JWTResponse, error) {
	logger := log.WithField("username", request.Username)
	rec, err := i.store.GetByUsername(strings.TrimSpace(request.Username))
	if err != nil {
		logger.WithError(err).Error("failed to load user")
		return nil, errors.New("failed to log in")
	}
	if rec == nil {
		return nil, ErrInvalidCredentials
	}
	if bcrypt.CompareHashAndPassword([]byte(rec.PasswordHash), []byte(request.Password)) != nil {
		return nil, ErrInvalidCredentials
	}
	return i.issueTokens(*rec)
}

func (i impl) RefreshToken(refreshToken string) (*authapimodels.JWTResponse, error) {
	userID, err := authutils.ParseRefreshToken(refreshToken)
	if err != nil {
		return nil, ErrInvalidCredentials
	}
	rec, err := i.store.GetByID(userID)
	if err != nil {
		log.WithField("user_id", userID).WithError(err).Error("failed to load user")
		return nil, errors.New("failed to refresh token")
	}
	if rec == nil {
		return nil, ErrInvalidCredentials
	}
	return i.issueTokens(*rec)
}

func (i impl) issueTokens(rec dbmodels.User) (*authapimodels.JWTResponse, error) {
	token, err := authutils.GetToken(rec.ID, rec.Username, rec.Role)
	if err != nil {
		log.WithField("user_id", rec.ID).WithError(err).Error("failed to sign token")
		return nil, errors.New("failed to issue token")
	}
	refreshToken, err := authutils.GetRefreshToken(rec.ID, rec.Username)
	if err != nil {
		log.WithField("user_id", rec.ID).WithError(err).Error("failed to sign refresh token")
		return nil, errors.New("failed to issue token")
	}
	return &authapimodels.JWTResponse{
		Token:        token,
		RefreshToken: refreshToken,
	}, nil
}
