package middleware

import (
	"fmt"

	"github.com/gofiber/fiber/v2"
	apimodels "interview-tracker-backend/models/api"
)

// WithBodyLimit rejects requests that declare a body larger than limit bytes.
func WithBodyLimit(limit int64) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if size := int64(c.Request().Header.ContentLength()); size > limit {
			return c.Status(fiber.StatusRequestEntityTooLarge).
				JSON(apimodels.NewError(fmt.Sprintf("request body too large, maximum allowed: %d bytes", limit)))
		}
		return c.Next()
	}
}
