package apiv1

import (
	"fmt"

	"github.com/gofiber/fiber/v2"
	"interview-tracker-backend/controllers"
	interviewhandler "interview-tracker-backend/lib/interview"
	"interview-tracker-backend/middleware"
	apimodels "interview-tracker-backend/models/api"
	interviewapimodels "interview-tracker-backend/models/api/interview"
)

type interviewApiController struct {
	controllers.BaseAPIController
}

func InitInterviewApiRouters(app *fiber.App) {
	controller := interviewApiController{}
	app.Get("", controller.listAll)
	app.Post("", controller.create)
	app.Post("list", controller.list)
	app.Get("stats", controller.stats)
	app.Get("recent", controller.recent)
	app.Get("export", controller.exportXls)
	app.Route(":id<int>", func(router fiber.Router) {
		router.Get("", controller.get)
		router.Put("", controller.update)
		router.Patch("", controller.update)
		router.Delete("", controller.delete)
		router.Get("export", controller.exportPdf)
	})
}

// @Summary Create interview
// @Tags Interviews
// @Description Create an interview, a "created" timeline entry is written with it
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body				body		interviewapimodels.InterviewData	true	"request body"
// @Success 201 {object} apimodels.Response{data=interviewapimodels.InterviewView}
// @Failure 400 {object} apimodels.Response
// @Failure 401 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/interviews [post]
func (c *interviewApiController) create(ctx *fiber.Ctx) error {
	var payload interviewapimodels.InterviewData
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err := payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	resp, err := interviewhandler.Instance.Create(middleware.GetUserID(ctx), payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "failed to create interview")
	}
	return ctx.Status(fiber.StatusCreated).JSON(apimodels.NewResponse(resp))
}

// @Summary List interviews
// @Tags Interviews
// @Description All interviews of the user, newest date first
// @Param   Authorization		header		string	true	"Authorization token"
// @Success 200 {object} apimodels.Response{data=[]interviewapimodels.InterviewView}
// @Failure 401 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/interviews [get]
func (c *interviewApiController) listAll(ctx *fiber.Ctx) error {
	resp, err := interviewhandler.Instance.ListAll(middleware.GetUserID(ctx))
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "failed to load interviews")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

// @Summary Filtered list of interviews
// @Tags Interviews
// @Description Filter by status, type and search text, with pagination
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body				body		interviewapimodels.InterviewFilter	true	"request body"
// @Success 200 {object} apimodels.ScrollerResponse{data=[]interviewapimodels.InterviewView}
// @Failure 400 {object} apimodels.Response
// @Failure 401 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/interviews/list [post]
func (c *interviewApiController) list(ctx *fiber.Ctx) error {
	var payload interviewapimodels.InterviewFilter
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err := payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	list, rowCount, err := interviewhandler.Instance.List(middleware.GetUserID(ctx), payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "failed to load interviews")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewScrollerResponse(list, rowCount))
}

// @Summary Get interview
// @Tags Interviews
// @Description Get interview by ID
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    	int  	true    "interview ID"
// @Success 200 {object} apimodels.Response{data=interviewapimodels.InterviewView}
// @Failure 400 {object} apimodels.Response
// @Failure 401 {object} apimodels.Response
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/interviews/{id} [get]
func (c *interviewApiController) get(ctx *fiber.Ctx) error {
	id, err := c.GetIntParam(ctx, "id")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	resp, err := interviewhandler.Instance.Get(middleware.GetUserID(ctx), id)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "failed to load interview")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

// @Summary Update interview
// @Tags Interviews
// @Description Partial update, only the supplied fields change. Changed fields are written to the timeline
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    	int  	true    "interview ID"
// @Param	body				body		interviewapimodels.InterviewData	true	"request body, any subset of fields"
// @Success 200 {object} apimodels.Response{data=interviewapimodels.InterviewView}
// @Failure 400 {object} apimodels.Response
// @Failure 401 {object} apimodels.Response
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/interviews/{id} [put]
func (c *interviewApiController) update(ctx *fiber.Ctx) error {
	id, err := c.GetIntParam(ctx, "id")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	var payload interviewapimodels.InterviewUpdate
	if err = c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err = payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	resp, err := interviewhandler.Instance.Update(middleware.GetUserID(ctx), id, payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "failed to update interview")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

// @Summary Delete interview
// @Tags Interviews
// @Description Delete interview with its timeline
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    	int  	true    "interview ID"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 401 {object} apimodels.Response
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/interviews/{id} [delete]
func (c *interviewApiController) delete(ctx *fiber.Ctx) error {
	id, err := c.GetIntParam(ctx, "id")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	err = interviewhandler.Instance.Delete(middleware.GetUserID(ctx), id)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "failed to delete interview")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}

// @Summary Statistics
// @Tags Interviews
// @Description Counts by status and success rate
// @Param   Authorization		header		string	true	"Authorization token"
// @Success 200 {object} apimodels.Response{data=interviewapimodels.InterviewStats}
// @Failure 401 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/interviews/stats [get]
func (c *interviewApiController) stats(ctx *fiber.Ctx) error {
	resp, err := interviewhandler.Instance.Stats(ctx.UserContext(), middleware.GetUserID(ctx))
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "failed to load statistics")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

// @Summary Recent activity
// @Tags Interviews
// @Description Most recently updated interviews
// @Param   Authorization		header		string	true	"Authorization token"
// @Success 200 {object} apimodels.Response{data=[]interviewapimodels.InterviewView}
// @Failure 401 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/interviews/recent [get]
func (c *interviewApiController) recent(ctx *fiber.Ctx) error {
	resp, err := interviewhandler.Instance.Recent(middleware.GetUserID(ctx))
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "failed to load recent interviews")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

// @Summary Export to xlsx
// @Tags Interviews
// @Description Export all interviews of the user to an Excel file
// @Param   Authorization		header		string	true	"Authorization token"
// @Success 200
// @Failure 401 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/interviews/export [get]
func (c *interviewApiController) exportXls(ctx *fiber.Ctx) error {
	body, err := interviewhandler.Instance.ExportXls(middleware.GetUserID(ctx))
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "failed to export interviews")
	}
	ctx.Set(fiber.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	ctx.Set(fiber.HeaderContentDisposition, `attachment; filename="interviews.xlsx"`)
	return ctx.SendStream(body, body.Len())
}

// @Summary Timeline report
// @Tags Interviews
// @Description Export the interview and its timeline to PDF
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    	int  	true    "interview ID"
// @Success 200
// @Failure 400 {object} apimodels.Response
// @Failure 401 {object} apimodels.Response
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/interviews/{id}/export [get]
func (c *interviewApiController) exportPdf(ctx *fiber.Ctx) error {
	id, err := c.GetIntParam(ctx, "id")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	body, err := interviewhandler.Instance.ExportTimelinePdf(middleware.GetUserID(ctx), id)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "failed to export timeline")
	}
	ctx.Set(fiber.HeaderContentType, "application/pdf")
	ctx.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename="interview-%d.pdf"`, id))
	return ctx.Send(body)
}
