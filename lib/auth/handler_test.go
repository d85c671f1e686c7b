package authhandler

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"interview-tracker-backend/config"
	authutils "interview-tracker-backend/lib/utils/auth-utils"
	"interview-tracker-backend/models"
	apimodels "interview-tracker-backend/models/api"
	authapimodels "interview-tracker-backend/models/api/auth"
	dbmodels "interview-tracker-backend/models/db"
)

type fakeUserStore struct {
	user dbmodels.User
}

func (f fakeUserStore) Create(rec dbmodels.User) (int, error) { return 0, errors.New("not supported") }

func (f fakeUserStore) GetByID(id int) (*dbmodels.User, error) {
	if id != f.user.ID {
		return nil, nil
	}
	rec := f.user
	return &rec, nil
}

func (f fakeUserStore) GetByUsername(username string) (*dbmodels.User, error) {
	if username != f.user.Username {
		return nil, nil
	}
	rec := f.user
	return &rec, nil
}

func (f fakeUserStore) Update(int, map[string]any) error { return nil }

func (f fakeUserStore) List(apimodels.Pagination) ([]dbmodels.User, error) { return nil, nil }

func (f fakeUserStore) Count() (int64, error) { return 1, nil }

func newHandler(t *testing.T) Provider {
	config.Conf = &config.Configuration{}
	config.Conf.Auth.JWTSecret = "test-secret"
	config.Conf.Auth.JWTExpireInSec = 60
	config.Conf.Auth.JWTRefreshExpireInSec = 120
	hash, err := bcrypt.GenerateFromPassword([]byte("secret123"), bcrypt.MinCost)
	require.NoError(t, err)
	return NewInstance(fakeUserStore{user: dbmodels.User{
		ID:           5,
		Username:     "alice",
		PasswordHash: string(hash),
		Role:         models.UserRoleUser,
	}})
}

func TestLogin(t *testing.T) {
	handler := newHandler(t)
	t.Run(`valid credentials`, func(t *testing.T) {
		tokens, err := handler.Login(authapimodels.LoginRequest{Username: "alice", Password: "secret123"})
		require.NoError(t, err)
		require.NotEmpty(t, tokens.Token)
		userID, err := authutils.ParseRefreshToken(tokens.RefreshToken)
		require.NoError(t, err)
		require.Equal(t, 5, userID)
	})
	t.Run(`wrong password`, func(t *testing.T) {
		_, err := handler.Login(authapimodels.LoginRequest{Username: "alice", Password: "wrong1234"})
		require.True(t, errors.Is(err, ErrInvalidCredentials))
	})
	t.Run(`unknown user`, func(t *testing.T) {
		_, err := handler.Login(authapimodels.LoginRequest{Username: "mallory", Password: "secret123"})
		require.True(t, errors.Is(err, ErrInvalidCredentials))
	})
}

func TestRefreshToken(t *testing.T) {
	handler := newHandler(t)
	tokens, err := handler.Login(authapimodels.LoginRequest{Username: "alice", Password: "secret123"})
	require.NoError(t, err)

	refreshed, err := handler.RefreshToken(tokens.RefreshToken)
	require.NoError(t, err)
	require.NotEmpty(t, refreshed.Token)

	_, err = handler.RefreshToken(tokens.Token)
	require.True(t, errors.Is(err, ErrInvalidCredentials))
}
