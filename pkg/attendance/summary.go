package attendance

import (
	"math"
	"time"

	"Sistem-Absensi-QR/models"
)

const DateLayout = "2006-01-02"

// FoldDay folds one employee's records for a single date into a summary.
// Only the first record of each scan type is used. leave is the employee's
// approved leave for the date, or nil.
func FoldDay(date string, records []models.AttendanceRecord, leave *models.LeaveRequest) models.DailySummary {
	summary := models.DailySummary{Date: date}

	byType := make(map[models.ScanType]*models.AttendanceRecord, len(models.ScanTypes))
	for i := range records {
		r := &records[i]
		if r.ScannedDate != date || !r.ScanType.Valid() {
			continue
		}
		if _, seen := byType[r.ScanType]; seen {
			continue
		}
		byType[r.ScanType] = r
		if summary.EmployeeID == "" {
			summary.EmployeeID = r.EmployeeID
			summary.EmployeeName = r.EmployeeName
			summary.Department = r.Department
		}
	}

	at := func(t models.ScanType) *time.Time {
		if r, ok := byType[t]; ok {
			ts := r.ScannedAt
			return &ts
		}
		return nil
	}
	summary.CheckIn = at(models.ScanCheckIn)
	summary.LunchOut = at(models.ScanLunchOut)
	summary.LunchIn = at(models.ScanLunchIn)
	summary.CheckOut = at(models.ScanCheckOut)

	if summary.LunchOut != nil && summary.LunchIn != nil {
		summary.LunchDuration = int(summary.LunchIn.Sub(*summary.LunchOut).Minutes())
	}
	if summary.CheckIn != nil && summary.CheckOut != nil {
		worked := summary.CheckOut.Sub(*summary.CheckIn).Minutes() - float64(summary.LunchDuration)
		summary.TotalHours = roundHours(worked / 60)
	}
	summary.IsComplete = summary.CheckIn != nil && summary.CheckOut != nil

	if r, ok := byType[models.ScanCheckIn]; ok {
		summary.IsLate = r.IsLate
		summary.IsHalfDay = r.IsHalfDay && summary.CheckOut == nil
	}
	if r, ok := byType[models.ScanCheckOut]; ok {
		summary.IsEarlyDeparture = r.IsEarlyDeparture
	}

	if leave != nil && leave.Status == models.LeaveStatusApproved {
		summary.OnLeave = true
		summary.LeaveType = leave.LeaveType
		if summary.EmployeeID == "" {
			summary.EmployeeID = leave.EmployeeID
			summary.EmployeeName = leave.EmployeeName
		}
	}
	return summary
}

// FoldPeriod accumulates daily summaries. Working days are days with a
// check-in; the average is taken over working days only.
func FoldPeriod(employeeID, start, end string, days []models.DailySummary) models.PeriodSummary {
	period := models.PeriodSummary{
		EmployeeID: employeeID,
		StartDate:  start,
		EndDate:    end,
		Days:       days,
	}
	for _, d := range days {
		period.TotalHours += d.TotalHours
		if d.Present() {
			period.WorkingDays++
		}
		if d.OnLeave {
			period.LeaveDays++
		}
		if d.IsLate {
			period.LateCount++
		}
		if d.IsEarlyDeparture {
			period.EarlyDepartureCount++
		}
	}
	period.TotalHours = roundHours(period.TotalHours)
	if period.WorkingDays > 0 {
		period.AverageHours = roundHours(period.TotalHours / float64(period.WorkingDays))
	}
	return period
}

func roundHours(h float64) float64 {
	return math.Round(h*100) / 100
}

// WeekRange returns the Monday and Sunday of the week containing day.
func WeekRange(day time.Time) (time.Time, time.Time) {
	offset := (int(day.Weekday()) + 6) % 7
	start := startOfDay(day).AddDate(0, 0, -offset)
	return start, start.AddDate(0, 0, 6)
}

// MonthRange returns the first and last day of the month containing day.
func MonthRange(day time.Time) (time.Time, time.Time) {
	start := time.Date(day.Year(), day.Month(), 1, 0, 0, 0, 0, day.Location())
	return start, start.AddDate(0, 1, -1)
}

// Dates lists every date from start to end inclusive as YYYY-MM-DD.
func Dates(start, end time.Time) []string {
	var dates []string
	for d := startOfDay(start); !d.After(end); d = d.AddDate(0, 0, 1) {
		dates = append(dates, d.Format(DateLayout))
	}
	return dates
}

func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
