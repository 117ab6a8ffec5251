package apiv1

import (
	"github.com/gofiber/fiber/v2"
	"hr-ops-backend/controllers"
	cashhandler "hr-ops-backend/lib/cash"
	requesthandler "hr-ops-backend/lib/request"
	"hr-ops-backend/middleware"
	"hr-ops-backend/models"
	apimodels "hr-ops-backend/models/api"
	requestapimodels "hr-ops-backend/models/api/request"
)

type cashApiController struct {
	controllers.BaseAPIController
}

func InitCashApiRouters(app *fiber.App) {
	controller := cashApiController{}
	app.Route("cash", func(router fiber.Router) {
		router.Post("", controller.create)
		router.Post("list", controller.list)
	})
}

// @Summary Submit a cash request
// @Tags Cash
// @Description Submit a cash request
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body body	 requestapimodels.CashCreateData	true	"request body"
// @Success 200 {object} apimodels.Response{data=string}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/cash [post]
func (c *cashApiController) create(ctx *fiber.Ctx) error {
	var payload requestapimodels.CashCreateData
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	if err := payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	id, err := cashhandler.Instance.Create(middleware.GetUserID(ctx), payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "failed to submit the cash request")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(id))
}

// @Summary Cash request list
// @Tags Cash
// @Description Cash request list
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body body	 requestapimodels.RequestFilter	true	"request body"
// @Success 200 {object} apimodels.ScrollerResponse{data=[]requestapimodels.RequestView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/cash/list [post]
func (c *cashApiController) list(ctx *fiber.Ctx) error {
	var filter requestapimodels.RequestFilter
	if err := c.BodyParser(ctx, &filter); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	list, rowCount, err := requesthandler.Instance.List(models.KindCash, filter)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "failed to load the cash request list")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewScrollerResponse(list, rowCount))
}
