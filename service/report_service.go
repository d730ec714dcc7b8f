package service

import (
	"context"
	"fmt"
	"sort"
	"time"

	"go.uber.org/zap"

	"Sistem-Absensi-QR/models"
	"Sistem-Absensi-QR/pkg/apperror"
	"Sistem-Absensi-QR/pkg/attendance"
	"Sistem-Absensi-QR/repository"
)

// HolidayProvider returns the public holidays of a year keyed by YYYY-MM-DD.
type HolidayProvider interface {
	HolidayMap(ctx context.Context, year int) (map[string]bool, error)
}

// ReportService folds stored records into summaries. Nothing is cached.
type ReportService struct {
	attendanceRepo repository.AttendanceRepository
	leaveRepo      repository.LeaveRequestRepository
	workdays       *attendance.WorkdayRule
	holidays       HolidayProvider
	loc            *time.Location
	log            *zap.Logger
	now            func() time.Time
}

// NewReportService builds a ReportService. holidays may be nil.
func NewReportService(
	attendanceRepo repository.AttendanceRepository,
	leaveRepo repository.LeaveRequestRepository,
	workdays *attendance.WorkdayRule,
	holidays HolidayProvider,
	loc *time.Location,
	log *zap.Logger,
) *ReportService {
	if log == nil {
		log = zap.NewNop()
	}
	return &ReportService{
		attendanceRepo: attendanceRepo,
		leaveRepo:      leaveRepo,
		workdays:       workdays,
		holidays:       holidays,
		loc:            loc,
		log:            log,
		now:            time.Now,
	}
}

func (s *ReportService) WithClock(now func() time.Time) *ReportService {
	s.now = now
	return s
}

// Daily summarizes one employee's date. An empty date means today.
func (s *ReportService) Daily(ctx context.Context, employeeID, date string) (models.DailySummary, error) {
	day, err := s.resolveDate(date)
	if err != nil {
		return models.DailySummary{}, err
	}
	date = day.Format(attendance.DateLayout)

	records, err := s.attendanceRepo.FindByEmployeeAndDate(ctx, employeeID, date)
	if err != nil {
		return models.DailySummary{}, err
	}
	leave, err := s.leaveRepo.FindApprovedByEmployeeAndDate(ctx, employeeID, date)
	if err != nil {
		return models.DailySummary{}, err
	}

	summary := attendance.FoldDay(date, records, leave)
	summary.EmployeeID = employeeID
	return summary, nil
}

// Weekly summarizes the Monday to Sunday week containing date.
func (s *ReportService) Weekly(ctx context.Context, employeeID, date string) (models.PeriodSummary, error) {
	day, err := s.resolveDate(date)
	if err != nil {
		return models.PeriodSummary{}, err
	}
	start, end := attendance.WeekRange(day)
	return s.period(ctx, employeeID, start, end)
}

// Monthly summarizes a calendar month given as YYYY-MM. An empty month means
// the current one.
func (s *ReportService) Monthly(ctx context.Context, employeeID, month string) (models.PeriodSummary, error) {
	day := s.now().In(s.loc)
	if month != "" {
		parsed, err := time.ParseInLocation("2006-01", month, s.loc)
		if err != nil {
			return models.PeriodSummary{}, apperror.BadRequest.With(fmt.Sprintf("invalid month %q, expected YYYY-MM", month))
		}
		day = parsed
	}
	start, end := attendance.MonthRange(day)
	return s.period(ctx, employeeID, start, end)
}

// AdminDay summarizes every employee seen on date, including employees with
// approved leave and no scans.
func (s *ReportService) AdminDay(ctx context.Context, date string) (models.AdminDayView, error) {
	day, err := s.resolveDate(date)
	if err != nil {
		return models.AdminDayView{}, err
	}
	date = day.Format(attendance.DateLayout)

	records, err := s.attendanceRepo.FindByDate(ctx, date)
	if err != nil {
		return models.AdminDayView{}, err
	}
	leaves, err := s.leaveRepo.FindApprovedByDate(ctx, date)
	if err != nil {
		return models.AdminDayView{}, err
	}

	byEmployee := make(map[string][]models.AttendanceRecord)
	for _, r := range records {
		byEmployee[r.EmployeeID] = append(byEmployee[r.EmployeeID], r)
	}
	leaveOf := make(map[string]*models.LeaveRequest, len(leaves))
	for i := range leaves {
		leaveOf[leaves[i].EmployeeID] = &leaves[i]
		if _, ok := byEmployee[leaves[i].EmployeeID]; !ok {
			byEmployee[leaves[i].EmployeeID] = nil
		}
	}

	view := models.AdminDayView{Date: date, Employees: make([]models.DailySummary, 0, len(byEmployee))}
	for employeeID, recs := range byEmployee {
		summary := attendance.FoldDay(date, recs, leaveOf[employeeID])
		summary.EmployeeID = employeeID
		view.Employees = append(view.Employees, summary)

		if summary.Present() {
			view.PresentCount++
		}
		if summary.IsComplete {
			view.CompleteCount++
		}
		if summary.IsLate {
			view.LateCount++
		}
		if summary.OnLeave {
			view.OnLeaveCount++
		}
	}
	sort.Slice(view.Employees, func(i, j int) bool {
		a, b := view.Employees[i], view.Employees[j]
		if a.EmployeeName != b.EmployeeName {
			return a.EmployeeName < b.EmployeeName
		}
		return a.EmployeeID < b.EmployeeID
	})

	pending, err := s.leaveRepo.CountPendingRequests(ctx)
	if err != nil {
		return models.AdminDayView{}, err
	}
	view.PendingLeaveRequests = pending
	return view, nil
}

func (s *ReportService) period(ctx context.Context, employeeID string, start, end time.Time) (models.PeriodSummary, error) {
	from, to := start.Format(attendance.DateLayout), end.Format(attendance.DateLayout)

	records, err := s.attendanceRepo.FindByEmployeeAndRange(ctx, employeeID, from, to)
	if err != nil {
		return models.PeriodSummary{}, err
	}
	leaves, err := s.leaveRepo.FindApprovedByEmployeeAndRange(ctx, employeeID, from, to)
	if err != nil {
		return models.PeriodSummary{}, err
	}

	byDate := make(map[string][]models.AttendanceRecord)
	for _, r := range records {
		byDate[r.ScannedDate] = append(byDate[r.ScannedDate], r)
	}
	leaveOn := make(map[string]*models.LeaveRequest, len(leaves))
	for i := range leaves {
		leaveOn[leaves[i].LeaveDate] = &leaves[i]
	}

	dates := attendance.Dates(start, end)
	days := make([]models.DailySummary, 0, len(dates))
	for _, date := range dates {
		summary := attendance.FoldDay(date, byDate[date], leaveOn[date])
		summary.EmployeeID = employeeID
		days = append(days, summary)
	}

	period := attendance.FoldPeriod(employeeID, from, to, days)
	absent, err := s.absentDays(ctx, start, end, days)
	if err != nil {
		return models.PeriodSummary{}, err
	}
	period.AbsentDays = absent
	return period, nil
}

// absentDays counts expected working days before today that are neither
// public holidays nor covered by a check-in or approved leave.
func (s *ReportService) absentDays(ctx context.Context, start, end time.Time, days []models.DailySummary) (int, error) {
	if s.workdays == nil {
		return 0, nil
	}
	expected, err := s.workdays.Between(start, end)
	if err != nil {
		return 0, fmt.Errorf("failed to expand workday rule: %w", err)
	}

	holidays := make(map[string]bool)
	if s.holidays != nil {
		for year := start.Year(); year <= end.Year(); year++ {
			m, err := s.holidays.HolidayMap(ctx, year)
			if err != nil {
				s.log.Warn("holiday lookup failed, counting without holidays", zap.Int("year", year), zap.Error(err))
				continue
			}
			for d := range m {
				holidays[d] = true
			}
		}
	}

	today := s.now().In(s.loc).Format(attendance.DateLayout)
	absent := 0
	for _, d := range days {
		if d.Date >= today || !expected[d.Date] || holidays[d.Date] {
			continue
		}
		if !d.Present() && !d.OnLeave {
			absent++
		}
	}
	return absent, nil
}

func (s *ReportService) resolveDate(date string) (time.Time, error) {
	if date == "" {
		now := s.now().In(s.loc)
		return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, s.loc), nil
	}
	return parseDate(date, s.loc)
}
