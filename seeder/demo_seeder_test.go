package seeder

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"Sistem-Absensi-QR/models"
	"Sistem-Absensi-QR/pkg/attendance"
	"Sistem-Absensi-QR/repository"
)

func TestSeedDemoData(t *testing.T) {
	loc := time.FixedZone("WIB", 7*60*60)
	now := time.Date(2025, 3, 12, 10, 0, 0, 0, loc)
	attendanceRepo := repository.NewMockAttendanceRepository()
	leaveRepo := repository.NewMockLeaveRequestRepository()
	ctx := context.Background()

	res, err := SeedDemoData(ctx, attendanceRepo, leaveRepo, attendance.DefaultSchedule(), loc, now, zap.NewNop())
	require.NoError(t, err)
	// 3 employees x 5 days x 4 scans, minus the leave day of one employee
	assert.Equal(t, 56, res.Records)
	assert.Equal(t, 2, res.Leaves)
	assert.Equal(t, 56, attendanceRepo.Len())

	late, err := attendanceRepo.FindByEmployeeAndDate(ctx, "EMP-002", "2025-03-03")
	require.NoError(t, err)
	require.Len(t, late, 4)
	assert.True(t, late[0].IsLate)

	day := attendance.FoldDay("2025-03-03", late, nil)
	assert.True(t, day.IsComplete)
	assert.Equal(t, 50, day.LunchDuration)

	leave, err := leaveRepo.FindApprovedByEmployeeAndDate(ctx, "EMP-003", "2025-03-05")
	require.NoError(t, err)
	require.NotNil(t, leave)
	assert.Equal(t, models.LeaveFullDay, leave.LeaveType)

	again, err := SeedDemoData(ctx, attendanceRepo, leaveRepo, attendance.DefaultSchedule(), loc, now, zap.NewNop())
	require.NoError(t, err)
	assert.Equal(t, 0, again.Records)
	assert.Equal(t, 58, again.SkippedExists)
	assert.Equal(t, 56, attendanceRepo.Len())
}

func TestSeedDemoData_FlagsFollowSchedule(t *testing.T) {
	loc := time.FixedZone("WIB", 7*60*60)
	now := time.Date(2025, 3, 12, 10, 0, 0, 0, loc)
	schedule, err := attendance.ParseSchedule("10:00", 0, "12:30", "13:30", "17:00")
	require.NoError(t, err)
	attendanceRepo := repository.NewMockAttendanceRepository()
	ctx := context.Background()

	_, err = SeedDemoData(ctx, attendanceRepo, repository.NewMockLeaveRequestRepository(), schedule, loc, now, zap.NewNop())
	require.NoError(t, err)

	onTime, err := attendanceRepo.FindByEmployeeAndDate(ctx, "EMP-001", "2025-03-04")
	require.NoError(t, err)
	require.Len(t, onTime, 4)
	assert.Equal(t, []models.ScanType{models.ScanCheckIn, models.ScanLunchOut, models.ScanLunchIn, models.ScanCheckOut},
		[]models.ScanType{onTime[0].ScanType, onTime[1].ScanType, onTime[2].ScanType, onTime[3].ScanType})
	assert.False(t, onTime[0].IsLate)
	assert.True(t, onTime[0].IsHalfDay)
	assert.False(t, onTime[3].IsEarlyDeparture)

	late, err := attendanceRepo.FindByEmployeeAndDate(ctx, "EMP-002", "2025-03-04")
	require.NoError(t, err)
	require.Len(t, late, 4)
	assert.True(t, late[0].IsLate)
	assert.Equal(t, 10, late[0].ScannedAt.Hour())
	assert.Equal(t, 20, late[0].ScannedAt.Minute())
}
