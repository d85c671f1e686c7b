package authutils

import (
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/pkg/errors"
	"interview-tracker-backend/config"
	"interview-tracker-backend/models"
)

const refreshTokenType = "refresh"

func GetToken(userID int, name string, role models.UserRole) (tokenString string, err error) {
	claims := jwt.MapClaims{
		"name": name,
		"sub":  strconv.Itoa(userID),
		"role": string(role),
		"exp":  time.Now().Add(time.Second * time.Duration(config.Conf.Auth.JWTExpireInSec)).Unix(),
		"iat":  time.Now().Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(config.Conf.Auth.JWTSecret))
}

func GetRefreshToken(userID int, name string) (tokenString string, err error) {
	claims := jwt.MapClaims{
		"name": name,
		"sub":  strconv.Itoa(userID),
		"typ":  refreshTokenType,
		"exp":  time.Now().Add(time.Second * time.Duration(config.Conf.Auth.JWTRefreshExpireInSec)).Unix(),
		"iat":  time.Now().Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(config.Conf.Auth.JWTSecret))
}

// ParseRefreshToken validates a refresh token and returns its user id.
func ParseRefreshToken(tokenString string) (userID int, err error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (any, error) {
		return []byte(config.Conf.Auth.JWTSecret), nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return 0, errors.Wrap(err, "invalid refresh token")
	}
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !IsRefreshToken(claims) {
		return 0, errors.New("not a refresh token")
	}
	userID = GetUserID(claims)
	if userID == 0 {
		return 0, errors.New("refresh token has no subject")
	}
	return userID, nil
}

func GetClaims(ctx *fiber.Ctx) jwt.MapClaims {
	token, ok := ctx.Locals("user").(*jwt.Token)
	if !ok {
		return jwt.MapClaims{}
	}
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return jwt.MapClaims{}
	}
	return claims
}

func GetUserID(claims jwt.MapClaims) int {
	sub, ok := claims["sub"].(string)
	if !ok {
		return 0
	}
	userID, err := strconv.Atoi(sub)
	if err != nil {
		return 0
	}
	return userID
}

func GetRole(claims jwt.MapClaims) models.UserRole {
	role, _ := claims["role"].(string)
	return models.UserRole(role)
}

func IsRefreshToken(claims jwt.MapClaims) bool {
	typ, _ := claims["typ"].(string)
	return typ == refreshTokenType
}
