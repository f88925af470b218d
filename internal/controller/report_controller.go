package controller

import (
	"strconv"

	"smart-summary-be/internal/pkg/serverutils"
	"smart-summary-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IReportController interface {
	RegisterRoutes(r fiber.Router)
	Suggestions(ctx *fiber.Ctx) error
	Generate(ctx *fiber.Ctx) error
	Show(ctx *fiber.Ctx) error
	History(ctx *fiber.Ctx) error
	HistoryDetail(ctx *fiber.Ctx) error
}

type reportController struct {
	reportService service.IReportService
}

func NewReportController(reportService service.IReportService) IReportController {
	return &reportController{
		reportService: reportService,
	}
}

func (c *reportController) RegisterRoutes(r fiber.Router) {
	s := r.Group("/session/v1")
	s.Use(serverutils.JwtMiddleware)
	s.Get(":id/competitors", c.Suggestions)
	s.Post(":id/generate", c.Generate)
	s.Get(":id/report", c.Show)

	h := r.Group("/history/v1")
	h.Use(serverutils.JwtMiddleware)
	h.Get("", c.History)
	h.Get(":id", c.HistoryDetail)
}

func (c *reportController) Suggestions(ctx *fiber.Ctx) error {
	userId := ctx.Locals("user_id").(string)
	sessionId := ctx.Params("id")

	res, err := c.reportService.Suggestions(ctx.Context(), userId, sessionId)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success fetch suggestions", res))
}

func (c *reportController) Generate(ctx *fiber.Ctx) error {
	userId := ctx.Locals("user_id").(string)
	sessionId := ctx.Params("id")

	res, err := c.reportService.Generate(ctx.Context(), userId, sessionId)
	if err != nil {
		return err
	}

	// A backend failure still renders: the summary is replaced with
	// the failure text and any previous tables stay, so this is a 200
	// with Failed set rather than an error status.
	if res.Failed {
		return ctx.JSON(serverutils.SuccessResponse("Report generation failed", res))
	}
	return ctx.JSON(serverutils.SuccessResponse("Success generate report", res))
}

func (c *reportController) Show(ctx *fiber.Ctx) error {
	userId := ctx.Locals("user_id").(string)
	sessionId := ctx.Params("id")

	res, err := c.reportService.Show(ctx.Context(), userId, sessionId)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success show report", res))
}

func (c *reportController) History(ctx *fiber.Ctx) error {
	userId := ctx.Locals("user_id").(string)
	limit := ctx.QueryInt("limit", 20)
	offset := ctx.QueryInt("offset", 0)

	res, err := c.reportService.History(ctx.Context(), userId, limit, offset)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success fetch history", res))
}

func (c *reportController) HistoryDetail(ctx *fiber.Ctx) error {
	userId := ctx.Locals("user_id").(string)

	id, err := strconv.ParseUint(ctx.Params("id"), 10, 64)
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid report id")
	}

	res, err := c.reportService.HistoryDetail(ctx.Context(), userId, uint(id))
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success fetch report detail", res))
}
