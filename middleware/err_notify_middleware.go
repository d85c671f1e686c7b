package middleware

import (
	"encoding/json"

	"github.com/gofiber/fiber/v2"
	log "github.com/sirupsen/logrus"
)

type errNotification struct {
	Code   int    `json:"code"`
	Method string `json:"method"`
	Path   string `json:"path"`
	Error  string `json:"error"`
}

// ErrNotify posts every 5xx response to addr in the background.
func ErrNotify(addr string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		err := c.Next()
		statusCode := c.Response().StatusCode()
		if statusCode < fiber.StatusInternalServerError {
			return err
		}

		var data struct {
			Message string `json:"message"`
		}
		if unmErr := json.Unmarshal(c.Response().Body(), &data); unmErr != nil || data.Message == "" {
			data.Message = string(c.Response().Body())
		}
		path := c.OriginalURL()
		if r := c.Route(); r != nil {
			path = r.Path
		}
		payload := errNotification{
			Code:   statusCode,
			Method: c.Method(),
			Path:   path,
			Error:  data.Message,
		}
		go func() {
			agent := fiber.Post(addr).JSON(payload)
			if code, _, errs := agent.Bytes(); len(errs) != 0 {
				log.WithError(errs[0]).Warn("error sending error notification")
			} else if code >= fiber.StatusBadRequest {
				log.WithField("status", code).Warn("error notification rejected")
			}
		}()
		return err
	}
}
