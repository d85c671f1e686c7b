package middleware

import (
	"github.com/gofiber/fiber/v2"
	authutils "interview-tracker-backend/lib/utils/auth-utils"
	"interview-tracker-backend/models"
)

// GetUserID returns the id of the authenticated user, 0 for anonymous requests.
func GetUserID(ctx *fiber.Ctx) int {
	return authutils.GetUserID(authutils.GetClaims(ctx))
}

func GetUserRole(ctx *fiber.Ctx) models.UserRole {
	return authutils.GetRole(authutils.GetClaims(ctx))
}
