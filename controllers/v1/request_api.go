package apiv1

import (
	"fmt"
	"io"

	"github.com/gofiber/fiber/v2"
	"hr-ops-backend/controllers"
	audithandler "hr-ops-backend/lib/audit"
	xlsexport "hr-ops-backend/lib/export/xls"
	filestorage "hr-ops-backend/lib/file-storage"
	requesthandler "hr-ops-backend/lib/request"
	"hr-ops-backend/lib/workflow"
	"hr-ops-backend/middleware"
	"hr-ops-backend/models"
	apimodels "hr-ops-backend/models/api"
	requestapimodels "hr-ops-backend/models/api/request"
)

type requestApiController struct {
	controllers.BaseAPIController
}

func InitRequestApiRouters(app *fiber.App) {
	controller := requestApiController{}
	app.Route("request", func(router fiber.Router) {
		router.Get("export/:kind", controller.export)
		router.Route(":id", func(idRoute fiber.Router) {
			idRoute.Get("", controller.get)
			idRoute.Get("history", controller.history)
			idRoute.Put("approve", controller.approve)
			idRoute.Put("reject", controller.reject)
			idRoute.Put("escalate", controller.escalate)
			idRoute.Put("disburse", controller.disburse)
			idRoute.Post("attachment", controller.uploadAttachment)
			idRoute.Get("attachment", controller.listAttachments)
			idRoute.Get("attachment/:attachmentId", controller.getAttachment)
		})
	})
}

// @Summary Request details with audit trail
// @Tags Requests
// @Description Request details with audit trail
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  true    "rec ID"
// @Success 200 {object} apimodels.Response{data=requestapimodels.RequestView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/request/{id} [get]
func (c *requestApiController) get(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	result, err := requesthandler.Instance.GetByID(id)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "failed to load the request")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(result))
}

// @Summary Decision history of a request
// @Tags Requests
// @Description Decision history of a request
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  true    "rec ID"
// @Success 200 {object} apimodels.Response{data=[]requestapimodels.AuditEntryView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/request/{id}/history [get]
func (c *requestApiController) history(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	list, err := audithandler.Instance.History(id)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "failed to load the decision history")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(list))
}

// @Summary Approve at the current stage
// @Tags Requests
// @Description Approve at the current stage
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  true    "rec ID"
// @Param	body body	 requestapimodels.DecisionData	true	"request body"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/request/{id}/approve [put]
func (c *requestApiController) approve(ctx *fiber.Ctx) error {
	return c.decide(ctx, models.ActionApprove)
}

// @Summary Reject with a mandatory note
// @Tags Requests
// @Description Reject with a mandatory note
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  true    "rec ID"
// @Param	body body	 requestapimodels.DecisionData	true	"request body"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/request/{id}/reject [put]
func (c *requestApiController) reject(ctx *fiber.Ctx) error {
	return c.decide(ctx, models.ActionReject)
}

// @Summary Escalate a disciplinary record
// @Tags Requests
// @Description Escalate a disciplinary record
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  true    "rec ID"
// @Param	body body	 requestapimodels.DecisionData	true	"request body"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/request/{id}/escalate [put]
func (c *requestApiController) escalate(ctx *fiber.Ctx) error {
	return c.decide(ctx, models.ActionEscalate)
}

// @Summary Mark an approved cash request paid
// @Tags Requests
// @Description Mark an approved cash request paid
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  true    "rec ID"
// @Param	body body	 requestapimodels.DecisionData	true	"request body"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/request/{id}/disburse [put]
func (c *requestApiController) disburse(ctx *fiber.Ctx) error {
	return c.decide(ctx, models.ActionDisburse)
}

func (c *requestApiController) decide(ctx *fiber.Ctx, action models.WorkflowAction) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	var payload requestapimodels.DecisionData
	if err = c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	if action == models.ActionReject {
		err = payload.ValidateRejection()
	} else {
		err = payload.Validate()
	}
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	actor := workflow.Actor{
		ID:   middleware.GetUserID(ctx),
		Role: middleware.GetUserRole(ctx),
	}
	hMsg, err := requesthandler.Instance.Transition(ctx.Context(), id, actor, action, payload.Note)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "failed to process the decision")
	}
	if hMsg != "" {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(hMsg))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}

// @Summary Export the request register to xlsx
// @Tags Requests
// @Description Export the request register to xlsx
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   kind          		path    string  true    "request kind"
// @Success 200 {file} file
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/request/export/{kind} [get]
func (c *requestApiController) export(ctx *fiber.Ctx) error {
	kind, err := c.GetIDByKey(ctx, "kind")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	buf, err := xlsexport.Instance.ExportRegisterByKind(models.RequestKind(kind))
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "failed to build the export file")
	}
	ctx.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename="requests_%v.xlsx"`, kind))
	ctx.Set(fiber.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	return ctx.SendStream(buf)
}

// @Summary Attach a supporting document
// @Tags Requests
// @Description Attach a supporting document
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  true    "rec ID"
// @Param   file				formData	file	true	"attachment body"
// @Success 200 {object} apimodels.Response{data=string}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/request/{id}/attachment [post]
func (c *requestApiController) uploadAttachment(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	fileHeader, err := ctx.FormFile("file")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError("attachment file is missing"))
	}
	file, err := fileHeader.Open()
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError("could not read the attachment"))
	}
	defer file.Close()
	body, err := io.ReadAll(file)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError("could not read the attachment"))
	}

	attachmentID, err := filestorage.Instance.Upload(ctx.Context(), id, fileHeader.Filename, middleware.GetUserID(ctx), body)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "failed to store the attachment")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(attachmentID))
}

// @Summary Attachments of a request
// @Tags Requests
// @Description Attachments of a request
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  true    "rec ID"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/request/{id}/attachment [get]
func (c *requestApiController) listAttachments(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	list, err := filestorage.Instance.ListForRequest(id)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "failed to load the attachment list")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(list))
}

// @Summary Download an attachment
// @Tags Requests
// @Description Download an attachment
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  true    "rec ID"
// @Param   attachmentId   		path    string  true    "attachment rec ID"
// @Success 200 {file} file
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/request/{id}/attachment/{attachmentId} [get]
func (c *requestApiController) getAttachment(ctx *fiber.Ctx) error {
	attachmentID, err := c.GetIDByKey(ctx, "attachmentId")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	body, fileName, err := filestorage.Instance.Get(ctx.Context(), attachmentID)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "failed to fetch the attachment")
	}
	ctx.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename="%v"`, fileName))
	return ctx.Send(body)
}
