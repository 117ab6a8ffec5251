package apiv1

import (
	"github.com/gofiber/fiber/v2"
	"hr-ops-backend/controllers"
	attendancehandler "hr-ops-backend/lib/attendance"
	"hr-ops-backend/middleware"
	apimodels "hr-ops-backend/models/api"
	attendanceapimodels "hr-ops-backend/models/api/attendance"
)

type attendanceApiController struct {
	controllers.BaseAPIController
}

func InitAttendanceApiRouters(app *fiber.App) {
	controller := attendanceApiController{}
	app.Route("attendance", func(router fiber.Router) {
		router.Post("check-in", controller.checkIn)
		router.Post("check-out", controller.checkOut)
		router.Post("list", controller.list)
	})
}

// @Summary Check in for the day
// @Tags Attendance
// @Description Check in for the day
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body body	 attendanceapimodels.CheckInData	true	"request body"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/attendance/check-in [post]
func (c *attendanceApiController) checkIn(ctx *fiber.Ctx) error {
	var payload attendanceapimodels.CheckInData
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	hMsg, err := attendancehandler.Instance.CheckIn(middleware.GetUserID(ctx), payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "failed to record the check-in")
	}
	if hMsg != "" {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(hMsg))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}

// @Summary Check out for the day
// @Tags Attendance
// @Description Check out for the day
// @Param   Authorization		header		string	true	"Authorization token"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/attendance/check-out [post]
func (c *attendanceApiController) checkOut(ctx *fiber.Ctx) error {
	hMsg, err := attendancehandler.Instance.CheckOut(middleware.GetUserID(ctx))
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "failed to record the check-out")
	}
	if hMsg != "" {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(hMsg))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}

// @Summary Attendance list
// @Tags Attendance
// @Description Attendance list
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body body	 attendanceapimodels.AttendanceFilter	true	"request body"
// @Success 200 {object} apimodels.ScrollerResponse{data=[]attendanceapimodels.AttendanceView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/attendance/list [post]
func (c *attendanceApiController) list(ctx *fiber.Ctx) error {
	var filter attendanceapimodels.AttendanceFilter
	if err := c.BodyParser(ctx, &filter); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	if err := filter.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	list, rowCount, err := attendancehandler.Instance.List(filter)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "failed to load the attendance list")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewScrollerResponse(list, rowCount))
}
