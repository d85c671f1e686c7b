package apiv1

import (
	"github.com/gofiber/fiber/v2"
	"interview-tracker-backend/controllers"
	filestorage "interview-tracker-backend/lib/file-storage"
	usershandler "interview-tracker-backend/lib/users"
	"interview-tracker-backend/middleware"
	apimodels "interview-tracker-backend/models/api"
	userapimodels "interview-tracker-backend/models/api/user"
)

const profilePictureLimit = 5 * 1024 * 1024

type userApiController struct {
	controllers.BaseAPIController
}

func InitUserApiRouters(app *fiber.App) {
	controller := userApiController{}
	app.Route("me", func(router fiber.Router) {
		router.Get("", controller.me)
		router.Put("theme", controller.setTheme)
		router.Post("profile-picture", middleware.WithBodyLimit(profilePictureLimit), controller.uploadProfilePicture)
		router.Get("profile-picture", controller.getProfilePicture)
		router.Delete("profile-picture", controller.deleteProfilePicture)
	})
}

// @Summary Profile
// @Tags Users
// @Description Get the profile of the authenticated user
// @Param   Authorization		header		string	true	"Authorization token"
// @Success 200 {object} apimodels.Response{data=userapimodels.UserView}
// @Failure 401 {object} apimodels.Response
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/users/me [get]
func (c *userApiController) me(ctx *fiber.Ctx) error {
	resp, err := usershandler.Instance.GetByID(middleware.GetUserID(ctx))
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "failed to load user")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

// @Summary Set theme
// @Tags Users
// @Description Switch dark mode for the authenticated user
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body				body		userapimodels.SetThemeRequest	true	"request body"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 401 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/users/me/theme [put]
func (c *userApiController) setTheme(ctx *fiber.Ctx) error {
	var payload userapimodels.SetThemeRequest
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	err := usershandler.Instance.SetTheme(middleware.GetUserID(ctx), payload.ThemeDarkMode)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "failed to save theme")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}

// @Summary Upload profile picture
// @Tags Users
// @Description Upload a jpeg, png, gif or webp picture
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   picture		formData	file 	true 	"file to upload"
// @Success 200 {object} apimodels.Response{data=userapimodels.UserView}
// @Failure 400 {object} apimodels.Response
// @Failure 401 {object} apimodels.Response
// @Failure 413 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/users/me/profile-picture [post]
func (c *userApiController) uploadProfilePicture(ctx *fiber.Ctx) error {
	file, err := ctx.FormFile("picture")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError("picture file is required"))
	}
	contentType := file.Header.Get(fiber.HeaderContentType)
	if !filestorage.IsPictureContentType(contentType) {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError("unsupported picture format"))
	}
	reader, err := file.Open()
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "failed to read picture")
	}
	defer reader.Close()
	resp, err := usershandler.Instance.UploadProfilePicture(ctx.UserContext(), middleware.GetUserID(ctx), reader, file.Size, contentType)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "failed to upload profile picture")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

// @Summary Download profile picture
// @Tags Users
// @Description Download the profile picture of the authenticated user
// @Param   Authorization		header		string	true	"Authorization token"
// @Success 200
// @Failure 401 {object} apimodels.Response
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/users/me/profile-picture [get]
func (c *userApiController) getProfilePicture(ctx *fiber.Ctx) error {
	body, contentType, err := usershandler.Instance.GetProfilePicture(ctx.UserContext(), middleware.GetUserID(ctx))
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "failed to load profile picture")
	}
	if contentType != "" {
		ctx.Set(fiber.HeaderContentType, contentType)
	}
	return ctx.Send(body)
}

// @Summary Delete profile picture
// @Tags Users
// @Description Delete the profile picture of the authenticated user
// @Param   Authorization		header		string	true	"Authorization token"
// @Success 200 {object} apimodels.Response
// @Failure 401 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/users/me/profile-picture [delete]
func (c *userApiController) deleteProfilePicture(ctx *fiber.Ctx) error {
	err := usershandler.Instance.DeleteProfilePicture(ctx.UserContext(), middleware.GetUserID(ctx))
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "failed to delete profile picture")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}
