package repository

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"Sistem-Absensi-QR/config"
	"Sistem-Absensi-QR/models"
	"Sistem-Absensi-QR/pkg/apperror"
)

type AttendanceRepository interface {
	// Create inserts one record. A record for the same employee, date and
	// scan type fails with apperror.DuplicateScan and nothing is written.
	Create(ctx context.Context, record *models.AttendanceRecord) error
	FindByEmployeeAndDate(ctx context.Context, employeeID, date string) ([]models.AttendanceRecord, error)
	FindByEmployeeAndRange(ctx context.Context, employeeID, from, to string) ([]models.AttendanceRecord, error)
	FindByDate(ctx context.Context, date string) ([]models.AttendanceRecord, error)
	EnsureIndexes(ctx context.Context) error
}

type attendanceRepository struct {
	collection *mongo.Collection
}

func NewAttendanceRepository(db *mongo.Database) AttendanceRepository {
	return &attendanceRepository{
		collection: db.Collection(config.AttendanceCollection),
	}
}

func (r *attendanceRepository) EnsureIndexes(ctx context.Context) error {
	_, err := r.collection.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{
			Keys: bson.D{
				{Key: "employee_id", Value: 1},
				{Key: "scanned_date", Value: 1},
				{Key: "scan_type", Value: 1},
			},
			Options: options.Index().SetUnique(true).SetName("uniq_employee_date_scan_type"),
		},
		{
			Keys:    bson.D{{Key: "scanned_date", Value: 1}},
			Options: options.Index().SetName("idx_scanned_date"),
		},
	})
	if err != nil {
		return fmt.Errorf("failed to create attendance indexes: %w", err)
	}
	return nil
}

func (r *attendanceRepository) Create(ctx context.Context, record *models.AttendanceRecord) error {
	if record.ID.IsZero() {
		record.ID = primitive.NewObjectID()
	}
	_, err := r.collection.InsertOne(ctx, record)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return apperror.DuplicateScan.With(fmt.Sprintf("%s already recorded today", record.ScanType.Label()))
		}
		// Returned as is: the scanner shows the driver's own message.
		return err
	}
	return nil
}

func (r *attendanceRepository) FindByEmployeeAndDate(ctx context.Context, employeeID, date string) ([]models.AttendanceRecord, error) {
	filter := bson.M{"employee_id": employeeID, "scanned_date": date}
	return r.find(ctx, filter, "failed to find attendance by employee and date")
}

func (r *attendanceRepository) FindByEmployeeAndRange(ctx context.Context, employeeID, from, to string) ([]models.AttendanceRecord, error) {
	filter := bson.M{
		"employee_id":  employeeID,
		"scanned_date": bson.M{"$gte": from, "$lte": to},
	}
	return r.find(ctx, filter, "failed to find attendance history")
}

func (r *attendanceRepository) FindByDate(ctx context.Context, date string) ([]models.AttendanceRecord, error) {
	return r.find(ctx, bson.M{"scanned_date": date}, "failed to find attendance for date")
}

func (r *attendanceRepository) find(ctx context.Context, filter bson.M, errMsg string) ([]models.AttendanceRecord, error) {
	opts := options.Find().SetSort(bson.D{{Key: "scanned_date", Value: 1}, {Key: "scanned_at", Value: 1}})

	cursor, err := r.collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", errMsg, err)
	}
	defer cursor.Close(ctx)

	var results []models.AttendanceRecord
	if err = cursor.All(ctx, &results); err != nil {
		return nil, fmt.Errorf("failed to decode attendance records: %w", err)
	}

	if len(results) == 0 {
		return []models.AttendanceRecord{}, nil
	}
	return results, nil
}
