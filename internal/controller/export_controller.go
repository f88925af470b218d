package controller

import (
	"smart-summary-be/internal/dto"
	"smart-summary-be/internal/pkg/serverutils"
	"smart-summary-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IExportController interface {
	RegisterRoutes(r fiber.Router)
	PDF(ctx *fiber.Ctx) error
	DOCX(ctx *fiber.Ctx) error
	XLSX(ctx *fiber.Ctx) error
	Clipboard(ctx *fiber.Ctx) error
	Email(ctx *fiber.Ctx) error
}

type exportController struct {
	exportService service.IExportService
}

func NewExportController(exportService service.IExportService) IExportController {
	return &exportController{
		exportService: exportService,
	}
}

func (c *exportController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/session/v1")
	h.Use(serverutils.JwtMiddleware)
	h.Get(":id/export/pdf", c.PDF)
	h.Get(":id/export/docx", c.DOCX)
	h.Get(":id/export/xlsx", c.XLSX)
	h.Get(":id/export/clipboard", c.Clipboard)
	h.Post(":id/export/email", c.Email)
}

func sendArtifact(ctx *fiber.Ctx, artifact *service.Artifact) error {
	ctx.Set(fiber.HeaderContentType, artifact.ContentType)
	ctx.Set(fiber.HeaderContentDisposition, `attachment; filename="`+artifact.Filename+`"`)
	return ctx.Send(artifact.Data)
}

func (c *exportController) PDF(ctx *fiber.Ctx) error {
	userId := ctx.Locals("user_id").(string)
	sessionId := ctx.Params("id")

	artifact, err := c.exportService.PDF(ctx.Context(), userId, sessionId)
	if err != nil {
		return err
	}
	return sendArtifact(ctx, artifact)
}

func (c *exportController) DOCX(ctx *fiber.Ctx) error {
	userId := ctx.Locals("user_id").(string)
	sessionId := ctx.Params("id")

	artifact, err := c.exportService.DOCX(ctx.Context(), userId, sessionId)
	if err != nil {
		return err
	}
	return sendArtifact(ctx, artifact)
}

func (c *exportController) XLSX(ctx *fiber.Ctx) error {
	userId := ctx.Locals("user_id").(string)
	sessionId := ctx.Params("id")

	artifact, err := c.exportService.XLSX(ctx.Context(), userId, sessionId)
	if err != nil {
		return err
	}
	return sendArtifact(ctx, artifact)
}

func (c *exportController) Clipboard(ctx *fiber.Ctx) error {
	userId := ctx.Locals("user_id").(string)
	sessionId := ctx.Params("id")
	mode := ctx.Query("mode", "plain")

	artifact, err := c.exportService.Clipboard(ctx.Context(), userId, sessionId, mode)
	if err != nil {
		return err
	}

	// Clipboard payloads are consumed inline, not downloaded
	ctx.Set(fiber.HeaderContentType, artifact.ContentType)
	return ctx.Send(artifact.Data)
}

func (c *exportController) Email(ctx *fiber.Ctx) error {
	userId := ctx.Locals("user_id").(string)
	sessionId := ctx.Params("id")

	var req dto.EmailReportRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	if err := c.exportService.Email(ctx.Context(), userId, sessionId, &req); err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success send report email", nil))
}
