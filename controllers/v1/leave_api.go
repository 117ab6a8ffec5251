package apiv1

import (
	"github.com/gofiber/fiber/v2"
	"hr-ops-backend/controllers"
	leavehandler "hr-ops-backend/lib/leave"
	requesthandler "hr-ops-backend/lib/request"
	"hr-ops-backend/middleware"
	"hr-ops-backend/models"
	apimodels "hr-ops-backend/models/api"
	requestapimodels "hr-ops-backend/models/api/request"
)

type leaveApiController struct {
	controllers.BaseAPIController
}

func InitLeaveApiRouters(app *fiber.App) {
	controller := leaveApiController{}
	app.Route("leave", func(router fiber.Router) {
		router.Post("", controller.create)
		router.Post("list", controller.list)
	})
}

// @Summary Submit a leave request
// @Tags Leave
// @Description Submit a leave request
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body body	 requestapimodels.LeaveCreateData	true	"request body"
// @Success 200 {object} apimodels.Response{data=string}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/leave [post]
func (c *leaveApiController) create(ctx *fiber.Ctx) error {
	var payload requestapimodels.LeaveCreateData
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	if err := payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	id, err := leavehandler.Instance.Create(middleware.GetUserID(ctx), payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "failed to submit the leave request")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(id))
}

// @Summary Leave request list
// @Tags Leave
// @Description Leave request list
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body body	 requestapimodels.RequestFilter	true	"request body"
// @Success 200 {object} apimodels.ScrollerResponse{data=[]requestapimodels.RequestView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/leave/list [post]
func (c *leaveApiController) list(ctx *fiber.Ctx) error {
	var filter requestapimodels.RequestFilter
	if err := c.BodyParser(ctx, &filter); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	list, rowCount, err := requesthandler.Instance.List(models.KindLeave, filter)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "failed to load the leave request list")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewScrollerResponse(list, rowCount))
}
