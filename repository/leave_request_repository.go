package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"Sistem-Absensi-QR/config"
	"Sistem-Absensi-QR/models"
	"Sistem-Absensi-QR/pkg/apperror"
)

type LeaveRequestRepository interface {
	Create(ctx context.Context, req *models.LeaveRequest) error
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.LeaveRequest, error)
	FindAll(ctx context.Context, filter models.LeaveFilter) ([]models.LeaveRequest, error)
	// FindApprovedByEmployeeAndDate returns nil, nil when there is no approved leave.
	FindApprovedByEmployeeAndDate(ctx context.Context, employeeID, date string) (*models.LeaveRequest, error)
	FindApprovedByEmployeeAndRange(ctx context.Context, employeeID, from, to string) ([]models.LeaveRequest, error)
	FindApprovedByDate(ctx context.Context, date string) ([]models.LeaveRequest, error)
	// UpdateStatus moves a pending request to status. Decided requests are
	// left untouched and answer apperror.LeaveAlreadyDecided.
	UpdateStatus(ctx context.Context, id primitive.ObjectID, status, approvedBy string, approvedAt time.Time) (*models.LeaveRequest, error)
	CountPendingRequests(ctx context.Context) (int64, error)
	EnsureIndexes(ctx context.Context) error
}

type leaveRequestRepository struct {
	collection *mongo.Collection
}

func NewLeaveRequestRepository(db *mongo.Database) LeaveRequestRepository {
	return &leaveRequestRepository{
		collection: db.Collection(config.LeaveRequestCollection),
	}
}

func (r *leaveRequestRepository) EnsureIndexes(ctx context.Context) error {
	_, err := r.collection.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "employee_id", Value: 1}, {Key: "leave_date", Value: 1}},
			Options: options.Index().SetUnique(true).SetName("uniq_employee_leave_date"),
		},
		{
			Keys:    bson.D{{Key: "status", Value: 1}, {Key: "leave_date", Value: -1}},
			Options: options.Index().SetName("idx_status_leave_date"),
		},
	})
	if err != nil {
		return fmt.Errorf("failed to create leave request indexes: %w", err)
	}
	return nil
}

func (r *leaveRequestRepository) Create(ctx context.Context, req *models.LeaveRequest) error {
	if req.ID.IsZero() {
		req.ID = primitive.NewObjectID()
	}
	_, err := r.collection.InsertOne(ctx, req)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return apperror.LeaveExists.With("a leave request already exists for " + req.LeaveDate)
		}
		return fmt.Errorf("failed to create leave request: %w", err)
	}
	return nil
}

func (r *leaveRequestRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*models.LeaveRequest, error) {
	var request models.LeaveRequest
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&request)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find leave request by ID: %w", err)
	}
	return &request, nil
}

func (r *leaveRequestRepository) FindAll(ctx context.Context, filter models.LeaveFilter) ([]models.LeaveRequest, error) {
	query := bson.M{}
	if filter.EmployeeID != "" {
		query["employee_id"] = filter.EmployeeID
	}
	if filter.Status != "" {
		query["status"] = filter.Status
	}
	opts := options.Find().SetSort(bson.D{{Key: "leave_date", Value: -1}, {Key: "created_at", Value: -1}})
	return r.find(ctx, query, opts)
}

func (r *leaveRequestRepository) FindApprovedByEmployeeAndDate(ctx context.Context, employeeID, date string) (*models.LeaveRequest, error) {
	var request models.LeaveRequest
	filter := bson.M{
		"employee_id": employeeID,
		"leave_date":  date,
		"status":      models.LeaveStatusApproved,
	}
	err := r.collection.FindOne(ctx, filter).Decode(&request)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find approved leave: %w", err)
	}
	return &request, nil
}

func (r *leaveRequestRepository) FindApprovedByEmployeeAndRange(ctx context.Context, employeeID, from, to string) ([]models.LeaveRequest, error) {
	filter := bson.M{
		"employee_id": employeeID,
		"leave_date":  bson.M{"$gte": from, "$lte": to},
		"status":      models.LeaveStatusApproved,
	}
	return r.find(ctx, filter, options.Find().SetSort(bson.D{{Key: "leave_date", Value: 1}}))
}

func (r *leaveRequestRepository) FindApprovedByDate(ctx context.Context, date string) ([]models.LeaveRequest, error) {
	filter := bson.M{"leave_date": date, "status": models.LeaveStatusApproved}
	return r.find(ctx, filter, options.Find())
}

func (r *leaveRequestRepository) UpdateStatus(ctx context.Context, id primitive.ObjectID, status, approvedBy string, approvedAt time.Time) (*models.LeaveRequest, error) {
	filter := bson.M{"_id": id, "status": models.LeaveStatusPending}
	update := bson.M{
		"$set": bson.M{
			"status":      status,
			"approved_by": approvedBy,
			"approved_at": approvedAt,
			"updated_at":  approvedAt,
		},
	}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var updated models.LeaveRequest
	err := r.collection.FindOneAndUpdate(ctx, filter, update, opts).Decode(&updated)
	if err == nil {
		return &updated, nil
	}
	if !errors.Is(err, mongo.ErrNoDocuments) {
		return nil, fmt.Errorf("failed to update leave request status: %w", err)
	}

	existing, findErr := r.FindByID(ctx, id)
	if findErr != nil {
		return nil, findErr
	}
	if existing == nil {
		return nil, apperror.LeaveNotFound
	}
	return nil, apperror.LeaveAlreadyDecided.With("leave request is already " + existing.Status)
}

func (r *leaveRequestRepository) CountPendingRequests(ctx context.Context) (int64, error) {
	count, err := r.collection.CountDocuments(ctx, bson.M{"status": models.LeaveStatusPending})
	if err != nil {
		return 0, fmt.Errorf("failed to count pending leave requests: %w", err)
	}
	return count, nil
}

func (r *leaveRequestRepository) find(ctx context.Context, filter bson.M, opts *options.FindOptions) ([]models.LeaveRequest, error) {
	cursor, err := r.collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to find leave requests: %w", err)
	}
	defer cursor.Close(ctx)

	var requests []models.LeaveRequest
	if err = cursor.All(ctx, &requests); err != nil {
		return nil, fmt.Errorf("failed to decode leave requests: %w", err)
	}

	if len(requests) == 0 {
		return []models.LeaveRequest{}, nil
	}
	return requests, nil
}
