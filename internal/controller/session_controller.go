package controller

import (
	"smart-summary-be/internal/dto"
	"smart-summary-be/internal/pkg/serverutils"
	"smart-summary-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type ISessionController interface {
	RegisterRoutes(r fiber.Router)
	Create(ctx *fiber.Ctx) error
	Show(ctx *fiber.Ctx) error
	UpdateProfile(ctx *fiber.Ctx) error
	UpdateTemplate(ctx *fiber.Ctx) error
	AddIndicators(ctx *fiber.Ctx) error
	RemoveIndicator(ctx *fiber.Ctx) error
	UploadSlot(ctx *fiber.Ctx) error
	UploadBatch(ctx *fiber.Ctx) error
	RemoveUpload(ctx *fiber.Ctx) error
}

type sessionController struct {
	sessionService   service.ISessionService
	profileService   service.IProfileService
	indicatorService service.IIndicatorService
	intakeService    service.IIntakeService
}

func NewSessionController(
	sessionService service.ISessionService,
	profileService service.IProfileService,
	indicatorService service.IIndicatorService,
	intakeService service.IIntakeService,
) ISessionController {
	return &sessionController{
		sessionService:   sessionService,
		profileService:   profileService,
		indicatorService: indicatorService,
		intakeService:    intakeService,
	}
}

func (c *sessionController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/session/v1")
	h.Use(serverutils.JwtMiddleware)
	h.Post("", c.Create)
	h.Get(":id", c.Show)
	h.Put(":id/profile", c.UpdateProfile)
	h.Put(":id/template", c.UpdateTemplate)
	h.Post(":id/indicators", c.AddIndicators)
	h.Delete(":id/indicators", c.RemoveIndicator)
	h.Post(":id/files/batch", c.UploadBatch)
	h.Post(":id/files/:slot", c.UploadSlot)
	h.Delete(":id/files/:key", c.RemoveUpload)
}

func (c *sessionController) Create(ctx *fiber.Ctx) error {
	userId := ctx.Locals("user_id").(string)

	res, err := c.sessionService.Create(ctx.Context(), userId)
	if err != nil {
		return err
	}

	return ctx.Status(fiber.StatusCreated).JSON(serverutils.SuccessResponse("Success create session", res))
}

func (c *sessionController) Show(ctx *fiber.Ctx) error {
	userId := ctx.Locals("user_id").(string)
	sessionId := ctx.Params("id")

	res, err := c.sessionService.Show(ctx.Context(), userId, sessionId)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success show session", res))
}

func (c *sessionController) UpdateProfile(ctx *fiber.Ctx) error {
	userId := ctx.Locals("user_id").(string)
	sessionId := ctx.Params("id")

	var req dto.UpdateProfileRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.profileService.UpdateProfile(ctx.Context(), userId, sessionId, &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success update profile", res))
}

func (c *sessionController) UpdateTemplate(ctx *fiber.Ctx) error {
	userId := ctx.Locals("user_id").(string)
	sessionId := ctx.Params("id")

	var req dto.UpdateTemplateRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	if err := c.sessionService.UpdateTemplate(ctx.Context(), userId, sessionId, &req); err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success update template", nil))
}

func (c *sessionController) AddIndicators(ctx *fiber.Ctx) error {
	userId := ctx.Locals("user_id").(string)
	sessionId := ctx.Params("id")

	var req dto.AddIndicatorsRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	selected, err := c.indicatorService.Add(ctx.Context(), userId, sessionId, req.Labels)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success add indicators", selected))
}

func (c *sessionController) RemoveIndicator(ctx *fiber.Ctx) error {
	userId := ctx.Locals("user_id").(string)
	sessionId := ctx.Params("id")

	var req dto.RemoveIndicatorRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	selected, err := c.indicatorService.Remove(ctx.Context(), userId, sessionId, req.Label)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success remove indicator", selected))
}

func (c *sessionController) UploadSlot(ctx *fiber.Ctx) error {
	userId := ctx.Locals("user_id").(string)
	sessionId := ctx.Params("id")
	slot := ctx.Params("slot")

	file, err := ctx.FormFile("file")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "Missing file"))
	}

	res, err := c.intakeService.AssignSlot(ctx.Context(), userId, sessionId, slot, file)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success upload file", res))
}

func (c *sessionController) UploadBatch(ctx *fiber.Ctx) error {
	userId := ctx.Locals("user_id").(string)
	sessionId := ctx.Params("id")

	form, err := ctx.MultipartForm()
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "Missing multipart form"))
	}
	files := form.File["files"]
	if len(files) == 0 {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "Missing files"))
	}

	res, err := c.intakeService.AssignBatch(ctx.Context(), userId, sessionId, files)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success upload files", res))
}

func (c *sessionController) RemoveUpload(ctx *fiber.Ctx) error {
	userId := ctx.Locals("user_id").(string)
	sessionId := ctx.Params("id")
	key := ctx.Params("key")

	if err := c.intakeService.Remove(ctx.Context(), userId, sessionId, key); err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success remove file", nil))
}
