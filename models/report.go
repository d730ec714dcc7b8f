package models

import "time"

type DailySummary struct {
	Date             string     `json:"date"`
	EmployeeID       string     `json:"employee_id"`
	EmployeeName     string     `json:"employee_name,omitempty"`
	Department       string     `json:"department,omitempty"`
	CheckIn          *time.Time `json:"check_in"`
	LunchOut         *time.Time `json:"lunch_out"`
	LunchIn          *time.Time `json:"lunch_in"`
	CheckOut         *time.Time `json:"check_out"`
	LunchDuration    int        `json:"lunch_duration"`
	TotalHours       float64    `json:"total_hours"`
	IsComplete       bool       `json:"is_complete"`
	IsLate           bool       `json:"is_late"`
	IsEarlyDeparture bool       `json:"is_early_departure"`
	IsHalfDay        bool       `json:"is_half_day"`
	OnLeave          bool       `json:"on_leave"`
	LeaveType        string     `json:"leave_type,omitempty"`
}

// Present reports whether the employee checked in on the day.
func (d DailySummary) Present() bool {
	return d.CheckIn != nil
}

type PeriodSummary struct {
	EmployeeID          string         `json:"employee_id"`
	StartDate           string         `json:"start_date"`
	EndDate             string         `json:"end_date"`
	Days                []DailySummary `json:"days"`
	TotalHours          float64        `json:"total_hours"`
	WorkingDays         int            `json:"working_days"`
	LeaveDays           int            `json:"leave_days"`
	AbsentDays          int            `json:"absent_days"`
	LateCount           int            `json:"late_count"`
	EarlyDepartureCount int            `json:"early_departure_count"`
	AverageHours        float64        `json:"average_hours"`
}

type AdminDayView struct {
	Date                 string         `json:"date"`
	Employees            []DailySummary `json:"employees"`
	PresentCount         int            `json:"present_count"`
	CompleteCount        int            `json:"complete_count"`
	LateCount            int            `json:"late_count"`
	OnLeaveCount         int            `json:"on_leave_count"`
	PendingLeaveRequests int64          `json:"pending_leave_requests"`
}
