package apiv1

import (
	"github.com/gofiber/fiber/v2"
	"interview-tracker-backend/controllers"
	"interview-tracker-backend/db"
	apimodels "interview-tracker-backend/models/api"
)

type healthApiController struct {
	controllers.BaseAPIController
}

func InitHealthApiRouters(app *fiber.App) {
	controller := healthApiController{}
	app.Get("health", controller.health)
}

// @Summary Health check
// @Tags Service
// @Description Reports whether the database is reachable
// @Success 200 {object} apimodels.Response
// @Failure 503 {object} apimodels.Response
// @router /api/v1/health [get]
func (c *healthApiController) health(ctx *fiber.Ctx) error {
	if err := db.PingDB(); err != nil {
		c.GetLogger(ctx).WithError(err).Warn("database is unreachable")
		return ctx.Status(fiber.StatusServiceUnavailable).JSON(apimodels.NewError("database is unreachable"))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(fiber.Map{"database": "ok"}))
}
