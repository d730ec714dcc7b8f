package handlers

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"Sistem-Absensi-QR/service"
)

type ReportHandler struct {
	svc *service.ReportService
	log *zap.Logger
}

func NewReportHandler(svc *service.ReportService, log *zap.Logger) *ReportHandler {
	return &ReportHandler{svc: svc, log: log}
}

// Daily godoc
// @Summary Daily summary
// @Tags Reports
// @Produce json
// @Security BearerAuth
// @Param date query string false "Date YYYY-MM-DD, defaults to today"
// @Param employee_id query string false "Employee ID (admin only)"
// @Success 200 {object} models.DailySummary
// @Failure 400 {object} models.ErrorResponse
// @Failure 403 {object} models.ErrorResponse
// @Router /reports/daily [get]
func (h *ReportHandler) Daily(c *fiber.Ctx) error {
	employeeID, err := targetEmployee(c)
	if err != nil {
		return respondError(c, h.log, err)
	}

	ctx, cancel := requestContext(c)
	defer cancel()

	summary, err := h.svc.Daily(ctx, employeeID, c.Query("date"))
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(summary)
}

// Weekly godoc
// @Summary Weekly summary
// @Description Monday to Sunday week containing date
// @Tags Reports
// @Produce json
// @Security BearerAuth
// @Param date query string false "Any date in the week, defaults to today"
// @Param employee_id query string false "Employee ID (admin only)"
// @Success 200 {object} models.PeriodSummary
// @Failure 400 {object} models.ErrorResponse
// @Failure 403 {object} models.ErrorResponse
// @Router /reports/weekly [get]
func (h *ReportHandler) Weekly(c *fiber.Ctx) error {
	employeeID, err := targetEmployee(c)
	if err != nil {
		return respondError(c, h.log, err)
	}

	ctx, cancel := requestContext(c)
	defer cancel()

	summary, err := h.svc.Weekly(ctx, employeeID, c.Query("date"))
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(summary)
}

// Monthly godoc
// @Summary Monthly summary
// @Tags Reports
// @Produce json
// @Security BearerAuth
// @Param month query string false "Month YYYY-MM, defaults to the current month"
// @Param employee_id query string false "Employee ID (admin only)"
// @Success 200 {object} models.PeriodSummary
// @Failure 400 {object} models.ErrorResponse
// @Failure 403 {object} models.ErrorResponse
// @Router /reports/monthly [get]
func (h *ReportHandler) Monthly(c *fiber.Ctx) error {
	employeeID, err := targetEmployee(c)
	if err != nil {
		return respondError(c, h.log, err)
	}

	ctx, cancel := requestContext(c)
	defer cancel()

	summary, err := h.svc.Monthly(ctx, employeeID, c.Query("month"))
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(summary)
}

// AdminDay godoc
// @Summary Attendance of every employee on a date
// @Tags Admin
// @Produce json
// @Security BearerAuth
// @Param date query string false "Date YYYY-MM-DD, defaults to today"
// @Success 200 {object} models.AdminDayView
// @Failure 400 {object} models.ErrorResponse
// @Failure 403 {object} models.ErrorResponse
// @Router /admin/attendance/day [get]
func (h *ReportHandler) AdminDay(c *fiber.Ctx) error {
	ctx, cancel := requestContext(c)
	defer cancel()

	view, err := h.svc.AdminDay(ctx, c.Query("date"))
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(view)
}
