package apiv1

import (
	"github.com/gofiber/fiber/v2"
	"interview-tracker-backend/controllers"
	interviewrecordhandler "interview-tracker-backend/lib/interview-record"
	"interview-tracker-backend/middleware"
	apimodels "interview-tracker-backend/models/api"
	interviewrecordapimodels "interview-tracker-backend/models/api/interview-record"
)

type interviewRecordApiController struct {
	controllers.BaseAPIController
}

func InitInterviewRecordApiRouters(app *fiber.App) {
	controller := interviewRecordApiController{}
	app.Route(":interviewId<int>/records", func(router fiber.Router) {
		router.Get("", controller.list)
		router.Post("", controller.create)
		router.Get(":id<int>", controller.get)
		router.Delete(":id<int>", controller.delete)
	})
}

// @Summary Add timeline entry
// @Tags Timeline
// @Description Append a note, status change or other entry to the interview timeline
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   interviewId  		path    	int  	true    "interview ID"
// @Param	body				body		interviewrecordapimodels.RecordData	true	"request body"
// @Success 201 {object} apimodels.Response{data=interviewrecordapimodels.RecordView}
// @Failure 400 {object} apimodels.Response
// @Failure 401 {object} apimodels.Response
// @Failure 403 {object} apimodels.Response
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/interviews/{interviewId}/records [post]
func (c *interviewRecordApiController) create(ctx *fiber.Ctx) error {
	interviewID, err := c.GetIntParam(ctx, "interviewId")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	var payload interviewrecordapimodels.RecordData
	if err = c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err = payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	resp, err := interviewrecordhandler.Instance.Create(interviewID, middleware.GetUserID(ctx), payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "failed to save timeline entry")
	}
	return ctx.Status(fiber.StatusCreated).JSON(apimodels.NewResponse(resp))
}

// @Summary Interview timeline
// @Tags Timeline
// @Description Timeline entries of the interview, newest first
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   interviewId  		path    	int  	true    "interview ID"
// @Success 200 {object} apimodels.Response{data=[]interviewrecordapimodels.RecordView}
// @Failure 400 {object} apimodels.Response
// @Failure 401 {object} apimodels.Response
// @Failure 403 {object} apimodels.Response
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/interviews/{interviewId}/records [get]
func (c *interviewRecordApiController) list(ctx *fiber.Ctx) error {
	interviewID, err := c.GetIntParam(ctx, "interviewId")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	resp, err := interviewrecordhandler.Instance.FindByInterview(interviewID, middleware.GetUserID(ctx))
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "failed to load interview timeline")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

// @Summary Get timeline entry
// @Tags Timeline
// @Description Get timeline entry by ID
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   interviewId  		path    	int  	true    "interview ID"
// @Param   id          		path    	int  	true    "entry ID"
// @Success 200 {object} apimodels.Response{data=interviewrecordapimodels.RecordView}
// @Failure 400 {object} apimodels.Response
// @Failure 401 {object} apimodels.Response
// @Failure 403 {object} apimodels.Response
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/interviews/{interviewId}/records/{id} [get]
func (c *interviewRecordApiController) get(ctx *fiber.Ctx) error {
	interviewID, err := c.GetIntParam(ctx, "interviewId")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	id, err := c.GetIntParam(ctx, "id")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	logger := c.GetLogger(ctx)
	resp, err := interviewrecordhandler.Instance.FindOne(id)
	if err != nil {
		return c.SendError(ctx, logger, err, "failed to load timeline entry")
	}
	if resp == nil || resp.InterviewID != interviewID {
		return ctx.Status(fiber.StatusNotFound).JSON(apimodels.NewError("timeline entry not found"))
	}
	// the entry lookup itself is unscoped
	err = interviewrecordhandler.Instance.CheckAccess(interviewID, middleware.GetUserID(ctx))
	if err != nil {
		return c.SendError(ctx, logger, err, "failed to load timeline entry")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

// @Summary Delete timeline entry
// @Tags Timeline
// @Description Delete timeline entry by ID
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   interviewId  		path    	int  	true    "interview ID"
// @Param   id          		path    	int  	true    "entry ID"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 401 {object} apimodels.Response
// @Failure 403 {object} apimodels.Response
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/interviews/{interviewId}/records/{id} [delete]
func (c *interviewRecordApiController) delete(ctx *fiber.Ctx) error {
	interviewID, err := c.GetIntParam(ctx, "interviewId")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	id, err := c.GetIntParam(ctx, "id")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	logger := c.GetLogger(ctx)
	entry, err := interviewrecordhandler.Instance.FindOne(id)
	if err != nil {
		return c.SendError(ctx, logger, err, "failed to delete timeline entry")
	}
	if entry == nil || entry.InterviewID != interviewID {
		return ctx.Status(fiber.StatusNotFound).JSON(apimodels.NewError("timeline entry not found"))
	}
	removed, err := interviewrecordhandler.Instance.Remove(id, middleware.GetUserID(ctx))
	if err != nil {
		return c.SendError(ctx, logger, err, "failed to delete timeline entry")
	}
	if !removed {
		return ctx.Status(fiber.StatusNotFound).JSON(apimodels.NewError("timeline entry not found"))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}
