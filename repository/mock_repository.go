package repository

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"Sistem-Absensi-QR/models"
	"Sistem-Absensi-QR/pkg/apperror"
)

// MockAttendanceRepository is an in-memory AttendanceRepository for tests.
// It enforces the same (employee, date, scan type) uniqueness as the index.
type MockAttendanceRepository struct {
	mu      sync.RWMutex
	records []models.AttendanceRecord

	// Err, when set, is returned by every call.
	Err error
}

func NewMockAttendanceRepository() *MockAttendanceRepository {
	return &MockAttendanceRepository{}
}

func (m *MockAttendanceRepository) EnsureIndexes(ctx context.Context) error {
	return m.Err
}

func (m *MockAttendanceRepository) Create(ctx context.Context, record *models.AttendanceRecord) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.Err != nil {
		return m.Err
	}
	for _, r := range m.records {
		if r.EmployeeID == record.EmployeeID && r.ScannedDate == record.ScannedDate && r.ScanType == record.ScanType {
			return apperror.DuplicateScan.With(fmt.Sprintf("%s already recorded today", record.ScanType.Label()))
		}
	}
	if record.ID.IsZero() {
		record.ID = primitive.NewObjectID()
	}
	m.records = append(m.records, *record)
	return nil
}

func (m *MockAttendanceRepository) FindByEmployeeAndDate(ctx context.Context, employeeID, date string) ([]models.AttendanceRecord, error) {
	return m.filter(func(r models.AttendanceRecord) bool {
		return r.EmployeeID == employeeID && r.ScannedDate == date
	})
}

func (m *MockAttendanceRepository) FindByEmployeeAndRange(ctx context.Context, employeeID, from, to string) ([]models.AttendanceRecord, error) {
	return m.filter(func(r models.AttendanceRecord) bool {
		return r.EmployeeID == employeeID && r.ScannedDate >= from && r.ScannedDate <= to
	})
}

func (m *MockAttendanceRepository) FindByDate(ctx context.Context, date string) ([]models.AttendanceRecord, error) {
	return m.filter(func(r models.AttendanceRecord) bool {
		return r.ScannedDate == date
	})
}

// Len returns the number of stored records.
func (m *MockAttendanceRepository) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.records)
}

func (m *MockAttendanceRepository) filter(keep func(models.AttendanceRecord) bool) ([]models.AttendanceRecord, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.Err != nil {
		return nil, m.Err
	}
	result := []models.AttendanceRecord{}
	for _, r := range m.records {
		if keep(r) {
			result = append(result, r)
		}
	}
	sort.SliceStable(result, func(i, j int) bool {
		if result[i].ScannedDate != result[j].ScannedDate {
			return result[i].ScannedDate < result[j].ScannedDate
		}
		return result[i].ScannedAt.Before(result[j].ScannedAt)
	})
	return result, nil
}

// MockLeaveRequestRepository is an in-memory LeaveRequestRepository for tests.
type MockLeaveRequestRepository struct {
	mu       sync.RWMutex
	requests map[primitive.ObjectID]*models.LeaveRequest

	Err error
}

func NewMockLeaveRequestRepository() *MockLeaveRequestRepository {
	return &MockLeaveRequestRepository{
		requests: make(map[primitive.ObjectID]*models.LeaveRequest),
	}
}

func (m *MockLeaveRequestRepository) EnsureIndexes(ctx context.Context) error {
	return m.Err
}

func (m *MockLeaveRequestRepository) Create(ctx context.Context, req *models.LeaveRequest) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.Err != nil {
		return m.Err
	}
	for _, r := range m.requests {
		if r.EmployeeID == req.EmployeeID && r.LeaveDate == req.LeaveDate {
			return apperror.LeaveExists.With("a leave request already exists for " + req.LeaveDate)
		}
	}
	if req.ID.IsZero() {
		req.ID = primitive.NewObjectID()
	}
	stored := *req
	m.requests[stored.ID] = &stored
	return nil
}

func (m *MockLeaveRequestRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*models.LeaveRequest, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.Err != nil {
		return nil, m.Err
	}
	r, ok := m.requests[id]
	if !ok {
		return nil, nil
	}
	found := *r
	return &found, nil
}

func (m *MockLeaveRequestRepository) FindAll(ctx context.Context, filter models.LeaveFilter) ([]models.LeaveRequest, error) {
	result, err := m.filter(func(r models.LeaveRequest) bool {
		return (filter.EmployeeID == "" || r.EmployeeID == filter.EmployeeID) &&
			(filter.Status == "" || r.Status == filter.Status)
	})
	if err != nil {
		return nil, err
	}
	sort.SliceStable(result, func(i, j int) bool {
		return result[i].LeaveDate > result[j].LeaveDate
	})
	return result, nil
}

func (m *MockLeaveRequestRepository) FindApprovedByEmployeeAndDate(ctx context.Context, employeeID, date string) (*models.LeaveRequest, error) {
	result, err := m.filter(func(r models.LeaveRequest) bool {
		return r.EmployeeID == employeeID && r.LeaveDate == date && r.Status == models.LeaveStatusApproved
	})
	if err != nil || len(result) == 0 {
		return nil, err
	}
	return &result[0], nil
}

func (m *MockLeaveRequestRepository) FindApprovedByEmployeeAndRange(ctx context.Context, employeeID, from, to string) ([]models.LeaveRequest, error) {
	return m.filter(func(r models.LeaveRequest) bool {
		return r.EmployeeID == employeeID && r.LeaveDate >= from && r.LeaveDate <= to && r.Status == models.LeaveStatusApproved
	})
}

func (m *MockLeaveRequestRepository) FindApprovedByDate(ctx context.Context, date string) ([]models.LeaveRequest, error) {
	return m.filter(func(r models.LeaveRequest) bool {
		return r.LeaveDate == date && r.Status == models.LeaveStatusApproved
	})
}

func (m *MockLeaveRequestRepository) UpdateStatus(ctx context.Context, id primitive.ObjectID, status, approvedBy string, approvedAt time.Time) (*models.LeaveRequest, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.Err != nil {
		return nil, m.Err
	}
	r, ok := m.requests[id]
	if !ok {
		return nil, apperror.LeaveNotFound
	}
	if r.Status != models.LeaveStatusPending {
		return nil, apperror.LeaveAlreadyDecided.With("leave request is already " + r.Status)
	}
	r.Status = status
	r.ApprovedBy = approvedBy
	at := approvedAt
	r.ApprovedAt = &at
	r.UpdatedAt = approvedAt
	updated := *r
	return &updated, nil
}

func (m *MockLeaveRequestRepository) CountPendingRequests(ctx context.Context) (int64, error) {
	pending, err := m.filter(func(r models.LeaveRequest) bool {
		return r.Status == models.LeaveStatusPending
	})
	return int64(len(pending)), err
}

func (m *MockLeaveRequestRepository) filter(keep func(models.LeaveRequest) bool) ([]models.LeaveRequest, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.Err != nil {
		return nil, m.Err
	}
	result := []models.LeaveRequest{}
	for _, r := range m.requests {
		if keep(*r) {
			result = append(result, *r)
		}
	}
	sort.SliceStable(result, func(i, j int) bool {
		return result[i].LeaveDate < result[j].LeaveDate
	})
	return result, nil
}

var (
	_ AttendanceRepository   = (*MockAttendanceRepository)(nil)
	_ LeaveRequestRepository = (*MockLeaveRequestRepository)(nil)
)
