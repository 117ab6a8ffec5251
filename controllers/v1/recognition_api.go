package apiv1

import (
	"github.com/gofiber/fiber/v2"
	"hr-ops-backend/controllers"
	recognitionhandler "hr-ops-backend/lib/recognition"
	"hr-ops-backend/middleware"
	apimodels "hr-ops-backend/models/api"
	recognitionapimodels "hr-ops-backend/models/api/recognition"
)

type recognitionApiController struct {
	controllers.BaseAPIController
}

func InitRecognitionApiRouters(app *fiber.App) {
	controller := recognitionApiController{}
	app.Route("recognition", func(router fiber.Router) {
		router.Post("", controller.give)
		router.Get("employee/:id", controller.listForEmployee)
	})
}

// @Summary Recognize a colleague
// @Tags Recognition
// @Description Recognize a colleague
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body body	 recognitionapimodels.RecognitionData	true	"request body"
// @Success 200 {object} apimodels.Response{data=string}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/recognition [post]
func (c *recognitionApiController) give(ctx *fiber.Ctx) error {
	var payload recognitionapimodels.RecognitionData
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	if err := payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	id, hMsg, err := recognitionhandler.Instance.Give(middleware.GetUserID(ctx), payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "failed to save the recognition")
	}
	if hMsg != "" {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(hMsg))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(id))
}

// @Summary Recognitions of an employee
// @Tags Recognition
// @Description Recognitions of an employee
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  true    "employee rec ID"
// @Success 200 {object} apimodels.Response{data=[]recognitionapimodels.RecognitionView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/recognition/employee/{id} [get]
func (c *recognitionApiController) listForEmployee(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	list, err := recognitionhandler.Instance.ListForEmployee(id)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "failed to load the recognition list")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(list))
}
