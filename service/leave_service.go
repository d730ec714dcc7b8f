package service

import (
	"context"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"

	"Sistem-Absensi-QR/models"
	"Sistem-Absensi-QR/pkg/apperror"
	util "Sistem-Absensi-QR/pkg/utils"
	"Sistem-Absensi-QR/repository"
)

type LeaveService struct {
	repo repository.LeaveRequestRepository
	log  *zap.Logger
	now  func() time.Time
}

func NewLeaveService(repo repository.LeaveRequestRepository, log *zap.Logger) *LeaveService {
	if log == nil {
		log = zap.NewNop()
	}
	return &LeaveService{repo: repo, log: log, now: time.Now}
}

func (s *LeaveService) WithClock(now func() time.Time) *LeaveService {
	s.now = now
	return s
}

// Create files a pending leave request for the authenticated employee.
func (s *LeaveService) Create(ctx context.Context, requester *models.Claims, payload models.LeaveRequestCreatePayload) (*models.LeaveRequest, error) {
	if requester == nil {
		return nil, apperror.Unauthorized
	}
	if errs := util.ValidateStruct(payload); len(errs) > 0 {
		return nil, apperror.ValidationFailed.With(errs[0].Msg)
	}

	name := strings.TrimSpace(payload.EmployeeName)
	if name == "" {
		name = requester.Name
	}
	now := s.now()
	req := &models.LeaveRequest{
		EmployeeID:   requester.EmployeeID,
		EmployeeName: name,
		LeaveDate:    payload.LeaveDate,
		LeaveType:    payload.LeaveType,
		Reason:       strings.TrimSpace(payload.Reason),
		Status:       models.LeaveStatusPending,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := s.repo.Create(ctx, req); err != nil {
		return nil, err
	}

	s.log.Info("leave request created",
		zap.String("employee_id", req.EmployeeID),
		zap.String("leave_date", req.LeaveDate),
		zap.String("leave_type", req.LeaveType),
	)
	return req, nil
}

// List returns requests matching filter, newest leave date first.
func (s *LeaveService) List(ctx context.Context, filter models.LeaveFilter) ([]models.LeaveRequest, error) {
	switch filter.Status {
	case "", models.LeaveStatusPending, models.LeaveStatusApproved, models.LeaveStatusRejected:
	default:
		return nil, apperror.BadRequest.With("status must be one of pending, approved, rejected")
	}
	return s.repo.FindAll(ctx, filter)
}

// Decide moves a pending request to approved or rejected. Decided requests
// cannot change again.
func (s *LeaveService) Decide(ctx context.Context, id, status string, approver *models.Claims) (*models.LeaveRequest, error) {
	if !approver.IsAdmin() {
		return nil, apperror.Forbidden
	}
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, apperror.BadRequest.With("invalid leave request id")
	}
	if errs := util.ValidateStruct(models.LeaveRequestUpdatePayload{Status: status}); len(errs) > 0 {
		return nil, apperror.ValidationFailed.With(errs[0].Msg)
	}

	updated, err := s.repo.UpdateStatus(ctx, objID, status, approver.EmployeeID, s.now())
	if err != nil {
		return nil, err
	}

	s.log.Info("leave request decided",
		zap.String("id", id),
		zap.String("status", status),
		zap.String("approved_by", approver.EmployeeID),
	)
	return updated, nil
}
