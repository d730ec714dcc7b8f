package seeder

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"Sistem-Absensi-QR/models"
	"Sistem-Absensi-QR/pkg/apperror"
	"Sistem-Absensi-QR/pkg/attendance"
	"Sistem-Absensi-QR/repository"
)

type demoEmployee struct {
	ID         string
	Name       string
	Role       string
	Department string
	// minutes after the schedule's expected check-in
	LateBy int
}

var demoEmployees = []demoEmployee{
	{ID: "EMP-001", Name: "Budi Santoso", Role: "Engineer", Department: "Teknologi Informasi (IT)"},
	{ID: "EMP-002", Name: "Siti Rahma", Role: "Accountant", Department: "Keuangan", LateBy: 25},
	{ID: "EMP-003", Name: "Andi Wijaya", Role: "Recruiter", Department: "Sumber Daya Manusia (HRD)"},
}

// Result counts what a seeding run inserted and skipped.
type Result struct {
	Records       int
	Leaves        int
	SkippedExists int
}

// SeedDemoData fills the working days of the week before now with complete
// attendance days for a few demo employees, plus one approved and one pending
// leave request. Rows that already exist are skipped, so reruns are safe.
func SeedDemoData(
	ctx context.Context,
	attendanceRepo repository.AttendanceRepository,
	leaveRepo repository.LeaveRequestRepository,
	schedule attendance.Schedule,
	loc *time.Location,
	now time.Time,
	log *zap.Logger,
) (Result, error) {
	var res Result
	log.Info("seeding demo data")

	monday, _ := attendance.WeekRange(now.In(loc).AddDate(0, 0, -7))
	leaveDay := monday.AddDate(0, 0, 2).Format(attendance.DateLayout)

	for d := 0; d < 5; d++ {
		day := monday.AddDate(0, 0, d)
		date := day.Format(attendance.DateLayout)

		for _, emp := range demoEmployees {
			if emp.ID == demoEmployees[2].ID && date == leaveDay {
				continue
			}
			records, err := demoDay(emp, day, date, schedule)
			if err != nil {
				return res, fmt.Errorf("seeding %s %s: %w", emp.ID, date, err)
			}
			for _, rec := range records {
				err := attendanceRepo.Create(ctx, rec)
				switch {
				case errors.Is(err, apperror.DuplicateScan):
					res.SkippedExists++
				case err != nil:
					return res, fmt.Errorf("seeding %s %s %s: %w", emp.ID, date, rec.ScanType, err)
				default:
					res.Records++
				}
			}
		}
	}

	approvedAt := now
	leaves := []*models.LeaveRequest{
		{
			EmployeeID: demoEmployees[2].ID, EmployeeName: demoEmployees[2].Name,
			LeaveDate: leaveDay, LeaveType: models.LeaveFullDay, Reason: "Family event",
			Status: models.LeaveStatusApproved, ApprovedBy: "ADM-001", ApprovedAt: &approvedAt,
		},
		{
			EmployeeID: demoEmployees[0].ID, EmployeeName: demoEmployees[0].Name,
			LeaveDate: now.In(loc).AddDate(0, 0, 7).Format(attendance.DateLayout), LeaveType: models.LeaveHalfDayMorning,
			Reason: "Doctor appointment", Status: models.LeaveStatusPending,
		},
	}
	for _, l := range leaves {
		l.CreatedAt, l.UpdatedAt = now, now
		err := leaveRepo.Create(ctx, l)
		switch {
		case errors.Is(err, apperror.LeaveExists):
			res.SkippedExists++
		case err != nil:
			return res, fmt.Errorf("seeding leave for %s: %w", l.EmployeeID, err)
		default:
			res.Leaves++
		}
	}

	log.Info("demo data seeded",
		zap.Int("records", res.Records),
		zap.Int("leaves", res.Leaves),
		zap.Int("skipped", res.SkippedExists),
	)
	return res, nil
}

// demoDay classifies each scan of a full day against s the way a live scan
// would be, so seeded flags follow the configured schedule.
func demoDay(emp demoEmployee, day time.Time, date string, s attendance.Schedule) ([]*models.AttendanceRecord, error) {
	scanAt := []int{
		s.ExpectedIn - 5 + emp.LateBy,
		s.LunchStart + 5,
		s.LunchStart + 55,
		s.ExpectedOut + 10,
	}

	records := make([]*models.AttendanceRecord, 0, len(scanAt))
	seen := make([]models.ScanType, 0, len(scanAt))
	for _, minutes := range scanAt {
		ts := day.Add(time.Duration(minutes) * time.Minute)
		class, err := s.Classify(seen, ts)
		if err != nil {
			return nil, err
		}
		seen = append(seen, class.ScanType)
		records = append(records, &models.AttendanceRecord{
			EmployeeID:        emp.ID,
			EmployeeName:      emp.Name,
			EmployeeRole:      emp.Role,
			Department:        emp.Department,
			CheckInTime:       ts,
			ScannedAt:         ts,
			ScannedDate:       date,
			ScanType:          class.ScanType,
			IsLate:            class.IsLate,
			IsEarlyDeparture:  class.IsEarly,
			IsHalfDay:         class.IsHalfDay,
			SignatureVerified: true,
			QRData:            "seed",
			CreatedAt:         ts,
			UpdatedAt:         ts,
		})
	}
	return records, nil
}
