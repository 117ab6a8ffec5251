package apiv1

import (
	"github.com/gofiber/fiber/v2"
	"hr-ops-backend/controllers"
	xlsexport "hr-ops-backend/lib/export/xls"
	statshandler "hr-ops-backend/lib/stats"
	"hr-ops-backend/middleware"
	"hr-ops-backend/models"
	apimodels "hr-ops-backend/models/api"
)

type statsApiController struct {
	controllers.BaseAPIController
}

func InitStatsApiRouters(app *fiber.App) {
	controller := statsApiController{}
	app.Route("stats", func(router fiber.Router) {
		router.Use(middleware.RoleRequired(models.HRRole, models.CEORole, models.CFORole, models.AdminRole)).
			Get("dashboard", controller.dashboard).
			Get("export", controller.export)
	})
}

// @Summary Workflow dashboard
// @Tags Statistics
// @Description Workflow dashboard
// @Param   Authorization		header		string	true	"Authorization token"
// @Success 200 {object} apimodels.Response{data=statsapimodels.DashboardView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/stats/dashboard [get]
func (c *statsApiController) dashboard(ctx *fiber.Ctx) error {
	result, err := statshandler.Instance.Dashboard()
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "failed to build the dashboard")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(result))
}

// @Summary Export the dashboard to xlsx
// @Tags Statistics
// @Description Export the dashboard to xlsx
// @Param   Authorization		header		string	true	"Authorization token"
// @Success 200 {file} file
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/stats/export [get]
func (c *statsApiController) export(ctx *fiber.Ctx) error {
	view, err := statshandler.Instance.Dashboard()
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "failed to build the dashboard")
	}
	buf, err := xlsexport.Instance.ExportDashboard(view)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "failed to build the export file")
	}
	ctx.Set(fiber.HeaderContentDisposition, `attachment; filename="dashboard.xlsx"`)
	ctx.Set(fiber.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	return ctx.SendStream(buf)
}
