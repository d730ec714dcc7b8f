package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"Sistem-Absensi-QR/models"
	"Sistem-Absensi-QR/pkg/apperror"
	"Sistem-Absensi-QR/pkg/attendance"
	"Sistem-Absensi-QR/pkg/signature"
	"Sistem-Absensi-QR/repository"
)

// ResumeAfter is how long the scanner page waits before decoding again.
const ResumeAfter = 3 * time.Second

const defaultRecordsWindowDays = 30

type AttendanceService struct {
	verifier       *signature.Verifier
	schedule       attendance.Schedule
	loc            *time.Location
	attendanceRepo repository.AttendanceRepository
	leaveRepo      repository.LeaveRequestRepository
	log            *zap.Logger
	now            func() time.Time
}

// NewAttendanceService wires the scan pipeline. A nil verifier disables
// scanning; reads still work.
func NewAttendanceService(
	verifier *signature.Verifier,
	schedule attendance.Schedule,
	loc *time.Location,
	attendanceRepo repository.AttendanceRepository,
	leaveRepo repository.LeaveRequestRepository,
	log *zap.Logger,
) *AttendanceService {
	if log == nil {
		log = zap.NewNop()
	}
	return &AttendanceService{
		verifier:       verifier,
		schedule:       schedule,
		loc:            loc,
		attendanceRepo: attendanceRepo,
		leaveRepo:      leaveRepo,
		log:            log,
		now:            time.Now,
	}
}

// WithClock replaces the wall clock, for tests.
func (s *AttendanceService) WithClock(now func() time.Time) *AttendanceService {
	s.now = now
	return s
}

// Scan verifies raw QR text and records the resulting attendance event.
func (s *AttendanceService) Scan(ctx context.Context, raw string) (*models.ScanResult, error) {
	if s.verifier == nil {
		return nil, apperror.ScannerDisabled
	}

	payload, err := signature.Parse(raw)
	if err != nil {
		s.log.Info("scan rejected", zap.String("reason", apperror.Lookup(err).Code))
		return nil, err
	}

	claimed, err := s.verifier.Check(payload, s.now())
	if err != nil {
		s.log.Info("scan rejected",
			zap.String("employee_id", payload.EmployeeID),
			zap.String("reason", apperror.Lookup(err).Code),
		)
		return nil, err
	}

	return s.MarkAttendance(ctx, payload, claimed, raw)
}

// MarkAttendance records a scan for an already verified payload. Each step is
// a hard gate: approved leave, classification, duplicate check, insert.
func (s *AttendanceService) MarkAttendance(ctx context.Context, payload models.QRPayload, claimed time.Time, raw string) (*models.ScanResult, error) {
	now := s.now().In(s.loc)
	today := now.Format(attendance.DateLayout)
	logger := s.log.With(zap.String("employee_id", payload.EmployeeID), zap.String("date", today))

	leave, err := s.leaveRepo.FindApprovedByEmployeeAndDate(ctx, payload.EmployeeID, today)
	if err != nil {
		return nil, err
	}
	if leave != nil {
		logger.Info("scan rejected", zap.String("reason", apperror.OnLeave.Code))
		return nil, apperror.OnLeave.With(fmt.Sprintf("%s is on approved %s leave today", payload.FullName(), leaveTypeLabel(leave.LeaveType)))
	}

	existing, err := s.attendanceRepo.FindByEmployeeAndDate(ctx, payload.EmployeeID, today)
	if err != nil {
		return nil, err
	}
	types := make([]models.ScanType, 0, len(existing))
	for _, r := range existing {
		types = append(types, r.ScanType)
	}

	class, err := s.schedule.Classify(types, now)
	if err != nil {
		logger.Info("scan rejected", zap.String("reason", apperror.Lookup(err).Code))
		return nil, err
	}
	for _, t := range types {
		if t == class.ScanType {
			logger.Info("scan rejected", zap.String("reason", apperror.DuplicateScan.Code), zap.String("scan_type", string(t)))
			return nil, apperror.DuplicateScan.With(fmt.Sprintf("%s already recorded today", capitalize(t.Label())))
		}
	}

	record := &models.AttendanceRecord{
		EmployeeID:        payload.EmployeeID,
		EmployeeName:      payload.FullName(),
		EmployeeRole:      payload.Role,
		Department:        payload.Department,
		CheckInTime:       claimed,
		ScannedAt:         now,
		ScannedDate:       today,
		ScanType:          class.ScanType,
		IsLate:            class.IsLate,
		IsEarlyDeparture:  class.IsEarly,
		IsHalfDay:         class.ScanType == models.ScanCheckIn && class.IsHalfDay,
		SignatureVerified: true,
		QRData:            raw,
		CreatedAt:         now,
		UpdatedAt:         now,
	}
	if err := s.attendanceRepo.Create(ctx, record); err != nil {
		logger.Warn("scan insert failed", zap.String("scan_type", string(class.ScanType)), zap.Error(err))
		return nil, err
	}

	logger.Info("scan accepted",
		zap.String("scan_type", string(record.ScanType)),
		zap.Bool("is_late", record.IsLate),
		zap.Bool("is_early_departure", record.IsEarlyDeparture),
	)
	return &models.ScanResult{
		Message:       scanMessage(record),
		Record:        record,
		ResumeAfterMs: ResumeAfter.Milliseconds(),
	}, nil
}

// Records lists an employee's scans between filter.From and filter.To
// inclusive, defaulting to the last 30 days.
func (s *AttendanceService) Records(ctx context.Context, filter models.AttendanceFilter) ([]models.AttendanceRecord, error) {
	if filter.EmployeeID == "" {
		return nil, apperror.BadRequest.With("employee_id is required")
	}
	today := s.now().In(s.loc)
	if filter.To == "" {
		filter.To = today.Format(attendance.DateLayout)
	}
	if filter.From == "" {
		to, err := parseDate(filter.To, s.loc)
		if err != nil {
			return nil, err
		}
		filter.From = to.AddDate(0, 0, -defaultRecordsWindowDays).Format(attendance.DateLayout)
	}
	if _, err := parseDate(filter.From, s.loc); err != nil {
		return nil, err
	}
	if _, err := parseDate(filter.To, s.loc); err != nil {
		return nil, err
	}
	if filter.From > filter.To {
		return nil, apperror.BadRequest.With("from must not be after to")
	}
	return s.attendanceRepo.FindByEmployeeAndRange(ctx, filter.EmployeeID, filter.From, filter.To)
}

func scanMessage(r *models.AttendanceRecord) string {
	msg := fmt.Sprintf("%s recorded for %s at %s", capitalize(r.ScanType.Label()), r.EmployeeName, r.ScannedAt.Format("15:04"))
	switch {
	case r.IsLate:
		msg += " (late)"
	case r.IsEarlyDeparture:
		msg += " (early departure)"
	}
	return msg
}

func leaveTypeLabel(t string) string {
	switch t {
	case models.LeaveFullDay:
		return "full day"
	case models.LeaveHalfDayMorning:
		return "half day (morning)"
	case models.LeaveHalfDayAfternoon:
		return "half day (afternoon)"
	}
	return t
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

func parseDate(value string, loc *time.Location) (time.Time, error) {
	t, err := time.ParseInLocation(attendance.DateLayout, value, loc)
	if err != nil {
		return time.Time{}, apperror.BadRequest.With(fmt.Sprintf("invalid date %q, expected YYYY-MM-DD", value))
	}
	return t, nil
}
