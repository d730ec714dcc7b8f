package handlers

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"Sistem-Absensi-QR/config/middleware"
	"Sistem-Absensi-QR/models"
	"Sistem-Absensi-QR/pkg/apperror"
	util "Sistem-Absensi-QR/pkg/utils"
	"Sistem-Absensi-QR/service"
)

type LeaveRequestHandler struct {
	svc *service.LeaveService
	log *zap.Logger
}

func NewLeaveRequestHandler(svc *service.LeaveService, log *zap.Logger) *LeaveRequestHandler {
	return &LeaveRequestHandler{svc: svc, log: log}
}

// CreateLeaveRequest godoc
// @Summary Request leave
// @Description Files a pending leave request for the authenticated employee
// @Tags Leave Request
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body models.LeaveRequestCreatePayload true "Leave request"
// @Success 201 {object} models.LeaveRequest
// @Failure 400 {object} models.ErrorResponse
// @Failure 409 {object} models.ErrorResponse "A request already exists for the date"
// @Failure 422 {object} models.ValidationErrorResponse
// @Router /leave-requests [post]
func (h *LeaveRequestHandler) CreateLeaveRequest(c *fiber.Ctx) error {
	claims, ok := middleware.CurrentUser(c)
	if !ok {
		return respondError(c, h.log, apperror.Unauthorized)
	}

	var payload models.LeaveRequestCreatePayload
	if err := c.BodyParser(&payload); err != nil {
		return respondError(c, h.log, apperror.BadRequest.With("invalid request body: "+err.Error()))
	}
	if errs := util.ValidateStruct(payload); len(errs) > 0 {
		return respondValidation(c, errs)
	}

	ctx, cancel := requestContext(c)
	defer cancel()

	req, err := h.svc.Create(ctx, claims, payload)
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.Status(fiber.StatusCreated).JSON(req)
}

// GetMyLeaveRequests godoc
// @Summary My leave requests
// @Tags Leave Request
// @Produce json
// @Security BearerAuth
// @Success 200 {array} models.LeaveRequest
// @Router /leave-requests/me [get]
func (h *LeaveRequestHandler) GetMyLeaveRequests(c *fiber.Ctx) error {
	claims, ok := middleware.CurrentUser(c)
	if !ok {
		return respondError(c, h.log, apperror.Unauthorized)
	}

	ctx, cancel := requestContext(c)
	defer cancel()

	requests, err := h.svc.List(ctx, models.LeaveFilter{EmployeeID: claims.EmployeeID})
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(requests)
}

// GetAllLeaveRequests godoc
// @Summary List leave requests
// @Tags Admin
// @Produce json
// @Security BearerAuth
// @Param status query string false "pending, approved or rejected"
// @Param employee_id query string false "Employee ID"
// @Success 200 {array} models.LeaveRequest
// @Failure 400 {object} models.ErrorResponse
// @Router /admin/leave-requests [get]
func (h *LeaveRequestHandler) GetAllLeaveRequests(c *fiber.Ctx) error {
	ctx, cancel := requestContext(c)
	defer cancel()

	requests, err := h.svc.List(ctx, models.LeaveFilter{
		EmployeeID: c.Query("employee_id"),
		Status:     c.Query("status"),
	})
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(requests)
}

// UpdateLeaveRequestStatus godoc
// @Summary Approve or reject a leave request
// @Description Only pending requests can be decided
// @Tags Admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Leave request ID"
// @Param status body models.LeaveRequestUpdatePayload true "Decision"
// @Success 200 {object} models.LeaveRequest
// @Failure 400 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Failure 409 {object} models.ErrorResponse "Already decided"
// @Failure 422 {object} models.ValidationErrorResponse
// @Router /admin/leave-requests/{id}/status [put]
func (h *LeaveRequestHandler) UpdateLeaveRequestStatus(c *fiber.Ctx) error {
	claims, ok := middleware.CurrentUser(c)
	if !ok {
		return respondError(c, h.log, apperror.Unauthorized)
	}

	var payload models.LeaveRequestUpdatePayload
	if err := c.BodyParser(&payload); err != nil {
		return respondError(c, h.log, apperror.BadRequest.With("invalid request body: "+err.Error()))
	}
	if errs := util.ValidateStruct(payload); len(errs) > 0 {
		return respondValidation(c, errs)
	}

	ctx, cancel := requestContext(c)
	defer cancel()

	updated, err := h.svc.Decide(ctx, c.Params("id"), payload.Status, claims)
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(updated)
}
