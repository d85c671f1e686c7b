package apiv1

import (
	"github.com/gofiber/fiber/v2"
	"interview-tracker-backend/controllers"
	usershandler "interview-tracker-backend/lib/users"
	apimodels "interview-tracker-backend/models/api"
)

type adminApiController struct {
	controllers.BaseAPIController
}

func InitAdminApiRouters(app *fiber.App) {
	controller := adminApiController{}
	app.Route("users", func(router fiber.Router) {
		router.Get("", controller.listUsers)
	})
}

// @Summary List users
// @Tags Administration
// @Description List registered users, administrators only
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   page		query		int	false	"page number"
// @Param   limit		query		int	false	"rows per page"
// @Success 200 {object} apimodels.ScrollerResponse{data=[]userapimodels.UserView}
// @Failure 400 {object} apimodels.Response
// @Failure 401 {object} apimodels.Response
// @Failure 403 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/admin/users [get]
func (c *adminApiController) listUsers(ctx *fiber.Ctx) error {
	var pagination apimodels.Pagination
	if err := ctx.QueryParser(&pagination); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError("invalid pagination"))
	}
	list, rowCount, err := usershandler.Instance.List(pagination)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "failed to load users")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewScrollerResponse(list, rowCount))
}
