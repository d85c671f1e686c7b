package controllers

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"interview-tracker-backend/middleware"
	"interview-tracker-backend/models"
	apimodels "interview-tracker-backend/models/api"
)

type BaseAPIController struct{}

func (c *BaseAPIController) BodyParser(ctx *fiber.Ctx, out any) error {
	if err := ctx.BodyParser(out); err != nil {
		c.GetLogger(ctx).WithError(err).Warn("failed to parse request body")
		return errors.Wrap(err, "invalid request body")
	}
	return nil
}

// GetIntParam reads a positive integer route parameter.
func (c *BaseAPIController) GetIntParam(ctx *fiber.Ctx, name string) (int, error) {
	value, err := strconv.Atoi(ctx.Params(name))
	if err != nil || value <= 0 {
		return 0, errors.Errorf("invalid %s", name)
	}
	return value, nil
}

func (c *BaseAPIController) GetLogger(ctx *fiber.Ctx) *log.Entry {
	logger := log.WithField("path", ctx.Path())
	if requestID, ok := ctx.Locals("requestid").(string); ok {
		logger = logger.WithField("request_id", requestID)
	}
	if userID := middleware.GetUserID(ctx); userID != 0 {
		logger = logger.WithField("user_id", userID)
	}
	return logger
}

// SendError maps ErrNotFound to 404, ErrForbidden to 403 and ErrConflict to 409.
// Anything else is logged and answered with 500 and msg.
func (c *BaseAPIController) SendError(ctx *fiber.Ctx, logger *log.Entry, err error, msg string) error {
	switch {
	case errors.Is(err, models.ErrNotFound):
		return ctx.Status(fiber.StatusNotFound).JSON(apimodels.NewError(err.Error()))
	case errors.Is(err, models.ErrForbidden):
		return ctx.Status(fiber.StatusForbidden).JSON(apimodels.NewError(err.Error()))
	case errors.Is(err, models.ErrConflict):
		return ctx.Status(fiber.StatusConflict).JSON(apimodels.NewError(err.Error()))
	}
	logger.WithError(err).Error(msg)
	return ctx.Status(fiber.StatusInternalServerError).JSON(apimodels.NewError(msg))
}
