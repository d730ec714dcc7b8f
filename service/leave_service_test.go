package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"Sistem-Absensi-QR/models"
	"Sistem-Absensi-QR/pkg/apperror"
	"Sistem-Absensi-QR/repository"
)

var (
	employee = &models.Claims{EmployeeID: "EMP-001", Name: "Budi Santoso", Role: models.RoleEmployee}
	admin    = &models.Claims{EmployeeID: "ADM-001", Name: "Admin", Role: models.RoleAdmin}
)

func newLeaveService() (*LeaveService, *repository.MockLeaveRequestRepository) {
	repo := repository.NewMockLeaveRequestRepository()
	now := at("2025-03-01", 10, 0)
	return NewLeaveService(repo, nil).WithClock(func() time.Time { return now }), repo
}

func validPayload(date string) models.LeaveRequestCreatePayload {
	return models.LeaveRequestCreatePayload{
		LeaveDate: date,
		LeaveType: models.LeaveHalfDayMorning,
		Reason:    "  doctor appointment ",
	}
}

func TestLeaveService_Create(t *testing.T) {
	svc, _ := newLeaveService()
	ctx := context.Background()

	req, err := svc.Create(ctx, employee, validPayload("2025-03-05"))
	require.NoError(t, err)
	assert.Equal(t, models.LeaveStatusPending, req.Status)
	assert.Equal(t, "Budi Santoso", req.EmployeeName)
	assert.Equal(t, "doctor appointment", req.Reason)
	assert.False(t, req.ID.IsZero())

	_, err = svc.Create(ctx, employee, validPayload("2025-03-05"))
	assert.True(t, errors.Is(err, apperror.LeaveExists))

	bad := validPayload("05-03-2025")
	_, err = svc.Create(ctx, employee, bad)
	assert.True(t, errors.Is(err, apperror.ValidationFailed))

	bad = validPayload("2025-03-06")
	bad.LeaveType = "sabbatical"
	_, err = svc.Create(ctx, employee, bad)
	assert.True(t, errors.Is(err, apperror.ValidationFailed))

	_, err = svc.Create(ctx, nil, validPayload("2025-03-07"))
	assert.True(t, errors.Is(err, apperror.Unauthorized))
}

func TestLeaveService_Decide(t *testing.T) {
	svc, _ := newLeaveService()
	ctx := context.Background()

	req, err := svc.Create(ctx, employee, validPayload("2025-03-05"))
	require.NoError(t, err)
	id := req.ID.Hex()

	_, err = svc.Decide(ctx, id, models.LeaveStatusApproved, employee)
	assert.True(t, errors.Is(err, apperror.Forbidden))

	_, err = svc.Decide(ctx, "not-an-id", models.LeaveStatusApproved, admin)
	assert.True(t, errors.Is(err, apperror.BadRequest))

	_, err = svc.Decide(ctx, id, models.LeaveStatusPending, admin)
	assert.True(t, errors.Is(err, apperror.ValidationFailed))

	_, err = svc.Decide(ctx, primitive.NewObjectID().Hex(), models.LeaveStatusApproved, admin)
	assert.True(t, errors.Is(err, apperror.LeaveNotFound))

	decided, err := svc.Decide(ctx, id, models.LeaveStatusApproved, admin)
	require.NoError(t, err)
	assert.Equal(t, models.LeaveStatusApproved, decided.Status)
	assert.Equal(t, "ADM-001", decided.ApprovedBy)
	require.NotNil(t, decided.ApprovedAt)

	_, err = svc.Decide(ctx, id, models.LeaveStatusRejected, admin)
	assert.True(t, errors.Is(err, apperror.LeaveAlreadyDecided))
}

func TestLeaveService_List(t *testing.T) {
	svc, _ := newLeaveService()
	ctx := context.Background()

	for _, date := range []string{"2025-03-05", "2025-03-12", "2025-03-07"} {
		_, err := svc.Create(ctx, employee, validPayload(date))
		require.NoError(t, err)
	}
	other := &models.Claims{EmployeeID: "EMP-002", Name: "Ani", Role: models.RoleEmployee}
	_, err := svc.Create(ctx, other, validPayload("2025-03-05"))
	require.NoError(t, err)

	mine, err := svc.List(ctx, models.LeaveFilter{EmployeeID: "EMP-001"})
	require.NoError(t, err)
	require.Len(t, mine, 3)
	assert.Equal(t, "2025-03-12", mine[0].LeaveDate)
	assert.Equal(t, "2025-03-05", mine[2].LeaveDate)

	pending, err := svc.List(ctx, models.LeaveFilter{Status: models.LeaveStatusPending})
	require.NoError(t, err)
	assert.Len(t, pending, 4)

	_, err = svc.List(ctx, models.LeaveFilter{Status: "cancelled"})
	assert.True(t, errors.Is(err, apperror.BadRequest))
}
