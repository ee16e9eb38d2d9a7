package controller

import (
	"github.com/gofiber/fiber/v2"

	"mm-voicenote-be/internal/dto"
	"mm-voicenote-be/internal/entity"
	"mm-voicenote-be/internal/pkg/apperrors"
	"mm-voicenote-be/internal/pkg/serverutils"
	"mm-voicenote-be/internal/service"
)

type IReportController interface {
	RegisterRoutes(r fiber.Router, auth fiber.Handler)
	Generate(ctx *fiber.Ctx) error
	List(ctx *fiber.Ctx) error
}

type reportController struct {
	reportService service.IReportService
}

func NewReportController(reportService service.IReportService) IReportController {
	return &reportController{
		reportService: reportService,
	}
}

func (c *reportController) RegisterRoutes(r fiber.Router, auth fiber.Handler) {
	h := r.Group("/report/v1")
	h.Use(auth)
	h.Post("", c.Generate)
	h.Get("", c.List)
}

func (c *reportController) Generate(ctx *fiber.Ctx) error {
	userId := ctx.Locals("user_id").(string)

	var req dto.GenerateReportRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	report, err := c.reportService.Generate(ctx.Context(), userId, &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success generate report", dto.GenerateReportResponse{Report: report}))
}

func (c *reportController) List(ctx *fiber.Ctx) error {
	userId := ctx.Locals("user_id").(string)

	reports, err := c.reportService.List(ctx.Context(), userId)
	if err != nil {
		return err
	}

	// Period filtering is a view concern, not a repository one: the stored
	// list is always read whole and narrowed here.
	if period := entity.ReportPeriod(ctx.Query("period")); period != "" {
		if !period.Valid() {
			return apperrors.Validation("period must be one of: daily, weekly, monthly")
		}
		filtered := make([]*entity.Report, 0, len(reports))
		for _, r := range reports {
			if r.Period == period {
				filtered = append(filtered, r)
			}
		}
		reports = filtered
	}

	return ctx.JSON(serverutils.SuccessResponse("Success list reports", dto.ListReportsResponse{Reports: reports}))
}
