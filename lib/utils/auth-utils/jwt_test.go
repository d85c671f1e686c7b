package authutils

import (
	"testing"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"
	"interview-tracker-backend/config"
	"interview-tracker-backend/models"
)

func setConfig() {
	config.Conf = &config.Configuration{}
	config.Conf.Auth.JWTSecret = "test-secret"
	config.Conf.Auth.JWTExpireInSec = 60
	config.Conf.Auth.JWTRefreshExpireInSec = 120
}

func parse(t *testing.T, tokenString string) jwt.MapClaims {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (any, error) {
		return []byte("test-secret"), nil
	})
	require.NoError(t, err)
	return token.Claims.(jwt.MapClaims)
}

func TestGetToken(t *testing.T) {
	setConfig()
	tokenString, err := GetToken(5, "alice", models.UserRoleAdmin)
	require.NoError(t, err)

	claims := parse(t, tokenString)
	require.Equal(t, 5, GetUserID(claims))
	require.Equal(t, models.UserRoleAdmin, GetRole(claims))
	require.False(t, IsRefreshToken(claims))
}

func TestParseRefreshToken(t *testing.T) {
	setConfig()
	t.Run(`refresh token`, func(t *testing.T) {
		tokenString, err := GetRefreshToken(7, "bob")
		require.NoError(t, err)
		userID, err := ParseRefreshToken(tokenString)
		require.NoError(t, err)
		require.Equal(t, 7, userID)
	})
	t.Run(`access token is rejected`, func(t *testing.T) {
		tokenString, err := GetToken(7, "bob", models.UserRoleUser)
		require.NoError(t, err)
		_, err = ParseRefreshToken(tokenString)
		require.Error(t, err)
	})
	t.Run(`garbage`, func(t *testing.T) {
		_, err := ParseRefreshToken("not-a-token")
		require.Error(t, err)
	})
	t.Run(`wrong secret`, func(t *testing.T) {
		tokenString, err := GetRefreshToken(7, "bob")
		require.NoError(t, err)
		config.Conf.Auth.JWTSecret = "other"
		defer setConfig()
		_, err = ParseRefreshToken(tokenString)
		require.Error(t, err)
	})
}

func TestGetUserID(t *testing.T) {
	require.Equal(t, 0, GetUserID(jwt.MapClaims{}))
	require.Equal(t, 0, GetUserID(jwt.MapClaims{"sub": "abc"}))
	require.Equal(t, 0, GetUserID(jwt.MapClaims{"sub": 5.0}))
	require.Equal(t, 12, GetUserID(jwt.MapClaims{"sub": "12"}))
}
