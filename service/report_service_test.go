package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"Sistem-Absensi-QR/models"
	"Sistem-Absensi-QR/pkg/apperror"
	"Sistem-Absensi-QR/pkg/attendance"
	"Sistem-Absensi-QR/repository"
)

type stubHolidays struct {
	days map[string]bool
	err  error
}

func (s stubHolidays) HolidayMap(ctx context.Context, year int) (map[string]bool, error) {
	return s.days, s.err
}

func newReportService(t *testing.T, holidays HolidayProvider, now time.Time) (*ReportService, *repository.MockAttendanceRepository, *repository.MockLeaveRequestRepository) {
	t.Helper()
	rule, err := attendance.NewWorkdayRule(attendance.DefaultWorkdayRule)
	require.NoError(t, err)

	attendanceRepo := repository.NewMockAttendanceRepository()
	leaveRepo := repository.NewMockLeaveRequestRepository()
	svc := NewReportService(attendanceRepo, leaveRepo, rule, holidays, jakarta, nil).
		WithClock(func() time.Time { return now })
	return svc, attendanceRepo, leaveRepo
}

func seedDay(t *testing.T, repo *repository.MockAttendanceRepository, employeeID, name, date string, scans ...[2]int) {
	t.Helper()
	for i, hm := range scans {
		r := record(employeeID, name, date, models.ScanTypes[i], hm[0], hm[1])
		require.NoError(t, repo.Create(context.Background(), r))
	}
}

func TestDaily_FullDay(t *testing.T) {
	svc, repo, _ := newReportService(t, nil, at("2025-03-03", 20, 0))
	seedDay(t, repo, "EMP-001", "Budi", "2025-03-03", [2]int{9, 0}, [2]int{12, 0}, [2]int{13, 0}, [2]int{18, 0})

	day, err := svc.Daily(context.Background(), "EMP-001", "2025-03-03")
	require.NoError(t, err)
	assert.Equal(t, 8.0, day.TotalHours)
	assert.Equal(t, 60, day.LunchDuration)
	assert.True(t, day.IsComplete)

	today, err := svc.Daily(context.Background(), "EMP-001", "")
	require.NoError(t, err)
	assert.Equal(t, "2025-03-03", today.Date)

	_, err = svc.Daily(context.Background(), "EMP-001", "03/03/2025")
	assert.True(t, errors.Is(err, apperror.BadRequest))
}

func TestWeekly(t *testing.T) {
	svc, repo, leaves := newReportService(t, nil, at("2025-03-07", 10, 0))
	ctx := context.Background()

	seedDay(t, repo, "EMP-001", "Budi", "2025-03-03", [2]int{9, 0}, [2]int{12, 0}, [2]int{13, 0}, [2]int{18, 0})
	late := record("EMP-001", "Budi", "2025-03-06", models.ScanCheckIn, 9, 30)
	late.IsLate = true
	require.NoError(t, repo.Create(ctx, late))
	seedLeave(t, leaves, "EMP-001", "Budi", "2025-03-04", models.LeaveStatusApproved)

	week, err := svc.Weekly(ctx, "EMP-001", "2025-03-05")
	require.NoError(t, err)
	assert.Equal(t, "2025-03-03", week.StartDate)
	assert.Equal(t, "2025-03-09", week.EndDate)
	assert.Len(t, week.Days, 7)
	assert.Equal(t, 8.0, week.TotalHours)
	assert.Equal(t, 2, week.WorkingDays)
	assert.Equal(t, 1, week.LeaveDays)
	assert.Equal(t, 1, week.LateCount)
	assert.Equal(t, 4.0, week.AverageHours)
	// Wednesday only; Friday is today and the weekend is not a workday.
	assert.Equal(t, 1, week.AbsentDays)
}

func TestMonthly_Holidays(t *testing.T) {
	now := at("2025-03-07", 10, 0)

	svc, _, _ := newReportService(t, stubHolidays{days: map[string]bool{"2025-02-10": true}}, now)
	month, err := svc.Monthly(context.Background(), "EMP-001", "2025-02")
	require.NoError(t, err)
	assert.Equal(t, "2025-02-01", month.StartDate)
	assert.Equal(t, "2025-02-28", month.EndDate)
	assert.Len(t, month.Days, 28)
	assert.Equal(t, 0, month.WorkingDays)
	assert.Equal(t, 0.0, month.AverageHours)
	assert.Equal(t, 19, month.AbsentDays)

	svc, _, _ = newReportService(t, stubHolidays{err: errors.New("feed down")}, now)
	month, err = svc.Monthly(context.Background(), "EMP-001", "2025-02")
	require.NoError(t, err)
	assert.Equal(t, 20, month.AbsentDays)

	_, err = svc.Monthly(context.Background(), "EMP-001", "Feb 2025")
	assert.True(t, errors.Is(err, apperror.BadRequest))
}

func TestAdminDay(t *testing.T) {
	svc, repo, leaves := newReportService(t, nil, at("2025-03-03", 20, 0))
	ctx := context.Background()

	seedDay(t, repo, "EMP-001", "Budi", "2025-03-03", [2]int{9, 0}, [2]int{12, 0}, [2]int{13, 0}, [2]int{18, 0})
	late := record("EMP-002", "Ani", "2025-03-03", models.ScanCheckIn, 9, 40)
	late.IsLate = true
	require.NoError(t, repo.Create(ctx, late))
	seedLeave(t, leaves, "EMP-003", "Citra", "2025-03-03", models.LeaveStatusApproved)
	seedLeave(t, leaves, "EMP-004", "Dewi", "2025-03-10", models.LeaveStatusPending)

	view, err := svc.AdminDay(ctx, "2025-03-03")
	require.NoError(t, err)
	require.Len(t, view.Employees, 3)
	assert.Equal(t, "Ani", view.Employees[0].EmployeeName)
	assert.Equal(t, "Budi", view.Employees[1].EmployeeName)
	assert.Equal(t, "Citra", view.Employees[2].EmployeeName)
	assert.True(t, view.Employees[2].OnLeave)
	assert.False(t, view.Employees[2].Present())

	assert.Equal(t, 2, view.PresentCount)
	assert.Equal(t, 1, view.CompleteCount)
	assert.Equal(t, 1, view.LateCount)
	assert.Equal(t, 1, view.OnLeaveCount)
	assert.Equal(t, int64(1), view.PendingLeaveRequests)
}
