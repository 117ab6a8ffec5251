package apiv1

import (
	"github.com/gofiber/fiber/v2"
	"hr-ops-backend/controllers"
	requesthandler "hr-ops-backend/lib/request"
	warninghandler "hr-ops-backend/lib/warning"
	"hr-ops-backend/middleware"
	"hr-ops-backend/models"
	apimodels "hr-ops-backend/models/api"
	requestapimodels "hr-ops-backend/models/api/request"
)

type warningApiController struct {
	controllers.BaseAPIController
}

func InitWarningApiRouters(app *fiber.App) {
	controller := warningApiController{}
	app.Route("warning", func(router fiber.Router) {
		router.Post("list", controller.list)
		router.Post("pip/list", controller.pipList)
		router.Use(middleware.RoleRequired(models.ManagerRole, models.HRRole, models.AdminRole)).
			Post("", controller.create)
	})
}

// @Summary Issue a warning or start a PIP
// @Tags Discipline
// @Description Issue a warning or start a PIP
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body body	 requestapimodels.WarningCreateData	true	"request body"
// @Success 200 {object} apimodels.Response{data=string}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/warning [post]
func (c *warningApiController) create(ctx *fiber.Ctx) error {
	var payload requestapimodels.WarningCreateData
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	if err := payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	id, hMsg, err := warninghandler.Instance.Create(middleware.GetUserID(ctx), payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "failed to create the disciplinary record")
	}
	if hMsg != "" {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(hMsg))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(id))
}

// @Summary Disciplinary record list
// @Tags Discipline
// @Description Disciplinary record list
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body body	 requestapimodels.RequestFilter	true	"request body"
// @Success 200 {object} apimodels.ScrollerResponse{data=[]requestapimodels.RequestView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/warning/list [post]
func (c *warningApiController) list(ctx *fiber.Ctx) error {
	var filter requestapimodels.RequestFilter
	if err := c.BodyParser(ctx, &filter); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	list, rowCount, err := requesthandler.Instance.List(models.KindWarning, filter)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "failed to load the disciplinary record list")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewScrollerResponse(list, rowCount))
}

// @Summary PIP list
// @Tags Discipline
// @Description PIP list
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body body	 requestapimodels.RequestFilter	true	"request body"
// @Success 200 {object} apimodels.ScrollerResponse{data=[]requestapimodels.RequestView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/warning/pip/list [post]
func (c *warningApiController) pipList(ctx *fiber.Ctx) error {
	var filter requestapimodels.RequestFilter
	if err := c.BodyParser(ctx, &filter); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	list, rowCount, err := requesthandler.Instance.List(models.KindPIP, filter)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "failed to load the PIP list")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewScrollerResponse(list, rowCount))
}
