package handlers

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"Sistem-Absensi-QR/models"
	"Sistem-Absensi-QR/pkg/apperror"
	util "Sistem-Absensi-QR/pkg/utils"
	"Sistem-Absensi-QR/service"
)

type AttendanceHandler struct {
	svc *service.AttendanceService
	log *zap.Logger
}

func NewAttendanceHandler(svc *service.AttendanceService, log *zap.Logger) *AttendanceHandler {
	return &AttendanceHandler{svc: svc, log: log}
}

// Scan godoc
// @Summary Scan QR code
// @Description Verifies a signed QR payload from the companion app and records the next attendance event of the day
// @Tags Attendance
// @Accept json
// @Produce json
// @Param scan body models.ScanRequest true "Raw QR text"
// @Success 201 {object} models.ScanResult
// @Failure 400 {object} models.ErrorResponse "Malformed QR payload"
// @Failure 401 {object} models.ErrorResponse "Signature mismatch"
// @Failure 409 {object} models.ErrorResponse "On leave, duplicate scan or lunch window not open"
// @Failure 410 {object} models.ErrorResponse "QR code older than the freshness window"
// @Failure 503 {object} models.ErrorResponse "Scanner or backend not configured"
// @Router /attendance/scan [post]
func (h *AttendanceHandler) Scan(c *fiber.Ctx) error {
	var req models.ScanRequest
	if err := c.BodyParser(&req); err != nil {
		return respondError(c, h.log, apperror.InvalidPayload.With("invalid request body: "+err.Error()))
	}
	if errs := util.ValidateStruct(req); len(errs) > 0 {
		return respondError(c, h.log, apperror.InvalidPayload.With(errs[0].Msg))
	}

	ctx, cancel := requestContext(c)
	defer cancel()

	result, err := h.svc.Scan(ctx, req.QRData)
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.Status(fiber.StatusCreated).JSON(result)
}

// GetRecords godoc
// @Summary List attendance records
// @Description Own records by default; admins may pass employee_id. Defaults to the last 30 days.
// @Tags Attendance
// @Produce json
// @Security BearerAuth
// @Param employee_id query string false "Employee ID (admin only)"
// @Param from query string false "Start date YYYY-MM-DD"
// @Param to query string false "End date YYYY-MM-DD"
// @Success 200 {array} models.AttendanceRecord
// @Failure 400 {object} models.ErrorResponse
// @Failure 401 {object} models.ErrorResponse
// @Failure 403 {object} models.ErrorResponse
// @Router /attendance/records [get]
func (h *AttendanceHandler) GetRecords(c *fiber.Ctx) error {
	employeeID, err := targetEmployee(c)
	if err != nil {
		return respondError(c, h.log, err)
	}

	ctx, cancel := requestContext(c)
	defer cancel()

	records, err := h.svc.Records(ctx, models.AttendanceFilter{
		EmployeeID: employeeID,
		From:       c.Query("from"),
		To:         c.Query("to"),
	})
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.Status(fiber.StatusOK).JSON(records)
}
