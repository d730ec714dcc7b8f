package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/integration/mtest"

	"Sistem-Absensi-QR/config"
	"Sistem-Absensi-QR/models"
	"Sistem-Absensi-QR/pkg/apperror"
)

func sampleRecord(scanType models.ScanType) *models.AttendanceRecord {
	now := time.Date(2025, 3, 3, 9, 0, 0, 0, time.UTC)
	return &models.AttendanceRecord{
		EmployeeID:        "EMP-001",
		EmployeeName:      "Budi Santoso",
		ScannedAt:         now,
		ScannedDate:       "2025-03-03",
		ScanType:          scanType,
		SignatureVerified: true,
		CreatedAt:         now,
		UpdatedAt:         now,
	}
}

func TestAttendanceRepository_Mongo(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("create assigns an id", func(mt *mtest.T) {
		repo := NewAttendanceRepository(mt.DB)
		mt.AddMockResponses(mtest.CreateSuccessResponse())

		record := sampleRecord(models.ScanCheckIn)
		require.NoError(mt, repo.Create(context.Background(), record))
		assert.False(mt, record.ID.IsZero())
	})

	mt.Run("duplicate key maps to duplicate scan", func(mt *mtest.T) {
		repo := NewAttendanceRepository(mt.DB)
		mt.AddMockResponses(mtest.CreateWriteErrorsResponse(mtest.WriteError{
			Index:   0,
			Code:    11000,
			Message: "E11000 duplicate key error collection: attendance_records index: uniq_employee_date_scan_type",
		}))

		err := repo.Create(context.Background(), sampleRecord(models.ScanLunchOut))
		require.Error(mt, err)
		assert.True(mt, errors.Is(err, apperror.DuplicateScan))
		assert.Contains(mt, err.Error(), "lunch-out")
	})

	mt.Run("other write errors surface unmodified", func(mt *mtest.T) {
		repo := NewAttendanceRepository(mt.DB)
		mt.AddMockResponses(mtest.CreateCommandErrorResponse(mtest.CommandError{
			Code:    13,
			Name:    "Unauthorized",
			Message: "not authorized on absensi to execute command",
		}))

		err := repo.Create(context.Background(), sampleRecord(models.ScanCheckIn))
		require.Error(mt, err)
		assert.False(mt, errors.Is(err, apperror.DuplicateScan))
		assert.Contains(mt, err.Error(), "not authorized")
	})

	mt.Run("find by employee and date", func(mt *mtest.T) {
		repo := NewAttendanceRepository(mt.DB)
		ns := mt.DB.Name() + "." + config.AttendanceCollection
		mt.AddMockResponses(mtest.CreateCursorResponse(0, ns, mtest.FirstBatch,
			bson.D{
				{Key: "_id", Value: primitive.NewObjectID()},
				{Key: "employee_id", Value: "EMP-001"},
				{Key: "scanned_date", Value: "2025-03-03"},
				{Key: "scan_type", Value: "check_in"},
				{Key: "is_late", Value: true},
			},
			bson.D{
				{Key: "_id", Value: primitive.NewObjectID()},
				{Key: "employee_id", Value: "EMP-001"},
				{Key: "scanned_date", Value: "2025-03-03"},
				{Key: "scan_type", Value: "lunch_out"},
			},
		))

		records, err := repo.FindByEmployeeAndDate(context.Background(), "EMP-001", "2025-03-03")
		require.NoError(mt, err)
		require.Len(mt, records, 2)
		assert.Equal(mt, models.ScanCheckIn, records[0].ScanType)
		assert.True(mt, records[0].IsLate)
		assert.Equal(mt, models.ScanLunchOut, records[1].ScanType)
	})

	mt.Run("empty result is an empty slice", func(mt *mtest.T) {
		repo := NewAttendanceRepository(mt.DB)
		ns := mt.DB.Name() + "." + config.AttendanceCollection
		mt.AddMockResponses(mtest.CreateCursorResponse(0, ns, mtest.FirstBatch))

		records, err := repo.FindByDate(context.Background(), "2025-03-03")
		require.NoError(mt, err)
		assert.NotNil(mt, records)
		assert.Empty(mt, records)
	})

	mt.Run("ensure indexes", func(mt *mtest.T) {
		repo := NewAttendanceRepository(mt.DB)
		mt.AddMockResponses(mtest.CreateSuccessResponse())

		assert.NoError(mt, repo.EnsureIndexes(context.Background()))
	})
}

func TestMockAttendanceRepository_RejectsDuplicate(t *testing.T) {
	repo := NewMockAttendanceRepository()
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, sampleRecord(models.ScanCheckIn)))
	err := repo.Create(ctx, sampleRecord(models.ScanCheckIn))

	assert.True(t, errors.Is(err, apperror.DuplicateScan))
	assert.Equal(t, 1, repo.Len())

	other := sampleRecord(models.ScanCheckIn)
	other.ScannedDate = "2025-03-04"
	require.NoError(t, repo.Create(ctx, other))

	records, err := repo.FindByEmployeeAndRange(ctx, "EMP-001", "2025-03-01", "2025-03-31")
	require.NoError(t, err)
	assert.Len(t, records, 2)
}
