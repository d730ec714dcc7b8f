package service

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"Sistem-Absensi-QR/models"
	"Sistem-Absensi-QR/pkg/attendance"
	"Sistem-Absensi-QR/pkg/signature"
	"Sistem-Absensi-QR/repository"
)

const testSecret = "qr-secret-for-tests"

var jakarta = time.FixedZone("WIB", 7*60*60)

func at(date string, h, m int) time.Time {
	d, err := time.ParseInLocation(attendance.DateLayout, date, jakarta)
	if err != nil {
		panic(err)
	}
	return d.Add(time.Duration(h)*time.Hour + time.Duration(m)*time.Minute)
}

type fixture struct {
	svc        *AttendanceService
	verifier   *signature.Verifier
	attendance *repository.MockAttendanceRepository
	leaves     *repository.MockLeaveRequestRepository
	now        time.Time
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	f := &fixture{
		verifier:   signature.NewVerifier(testSecret, signature.DefaultFreshness),
		attendance: repository.NewMockAttendanceRepository(),
		leaves:     repository.NewMockLeaveRequestRepository(),
		now:        at("2025-03-03", 8, 55),
	}
	f.svc = NewAttendanceService(f.verifier, attendance.DefaultSchedule(), jakarta, f.attendance, f.leaves, nil).
		WithClock(func() time.Time { return f.now })
	return f
}

// qr returns the raw text a companion app would encode, signed at the
// fixture's current time minus age.
func (f *fixture) qr(t *testing.T, employeeID string, age time.Duration) string {
	t.Helper()
	p := models.QRPayload{
		EmployeeID:  employeeID,
		FirstName:   "Budi",
		LastName:    "Santoso",
		Role:        "Engineer",
		Department:  "IT",
		CheckInTime: f.now.Add(-age).UTC().Format("2006-01-02T15:04:05.000Z"),
	}
	p.Signature = f.verifier.Sign(p)
	raw, err := json.Marshal(p)
	require.NoError(t, err)
	return string(raw)
}

func (f *fixture) scanAt(t *testing.T, employeeID string, h, m int) (*models.ScanResult, error) {
	t.Helper()
	f.now = at(f.now.In(jakarta).Format(attendance.DateLayout), h, m)
	return f.svc.Scan(context.Background(), f.qr(t, employeeID, 5*time.Second))
}

func record(employeeID, name, date string, scanType models.ScanType, h, m int) *models.AttendanceRecord {
	return &models.AttendanceRecord{
		EmployeeID:   employeeID,
		EmployeeName: name,
		ScannedAt:    at(date, h, m),
		ScannedDate:  date,
		ScanType:     scanType,
	}
}

func seedLeave(t *testing.T, repo *repository.MockLeaveRequestRepository, employeeID, name, date, status string) {
	t.Helper()
	require.NoError(t, repo.Create(context.Background(), &models.LeaveRequest{
		EmployeeID:   employeeID,
		EmployeeName: name,
		LeaveDate:    date,
		LeaveType:    models.LeaveFullDay,
		Reason:       "family matters",
		Status:       status,
	}))
}
