package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type ScanType string

const (
	ScanCheckIn  ScanType = "check_in"
	ScanLunchOut ScanType = "lunch_out"
	ScanLunchIn  ScanType = "lunch_in"
	ScanCheckOut ScanType = "check_out"
)

// ScanTypes lists the four daily events in the order they are expected.
var ScanTypes = []ScanType{ScanCheckIn, ScanLunchOut, ScanLunchIn, ScanCheckOut}

func (s ScanType) Valid() bool {
	switch s {
	case ScanCheckIn, ScanLunchOut, ScanLunchIn, ScanCheckOut:
		return true
	}
	return false
}

// Label is the human readable name used in scanner messages.
func (s ScanType) Label() string {
	switch s {
	case ScanCheckIn:
		return "check-in"
	case ScanLunchOut:
		return "lunch-out"
	case ScanLunchIn:
		return "lunch-in"
	case ScanCheckOut:
		return "check-out"
	}
	return string(s)
}

// AttendanceRecord is one scan event. Records are never updated after insert.
type AttendanceRecord struct {
	ID                primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	EmployeeID        string             `json:"employee_id" bson:"employee_id"`
	EmployeeName      string             `json:"employee_name" bson:"employee_name"`
	EmployeeRole      string             `json:"employee_role" bson:"employee_role"`
	Department        string             `json:"department" bson:"department"`
	CheckInTime       time.Time          `json:"check_in_time" bson:"check_in_time"`
	ScannedAt         time.Time          `json:"scanned_at" bson:"scanned_at"`
	ScannedDate       string             `json:"scanned_date" bson:"scanned_date"`
	ScanType          ScanType           `json:"scan_type" bson:"scan_type"`
	IsLate            bool               `json:"is_late" bson:"is_late"`
	IsEarlyDeparture  bool               `json:"is_early_departure" bson:"is_early_departure"`
	IsHalfDay         bool               `json:"is_half_day" bson:"is_half_day"`
	SignatureVerified bool               `json:"signature_verified" bson:"signature_verified"`
	QRData            string             `json:"qr_data" bson:"qr_data"`
	CreatedAt         time.Time          `json:"created_at" bson:"created_at"`
	UpdatedAt         time.Time          `json:"updated_at" bson:"updated_at"`
}

type ScanRequest struct {
	QRData string `json:"qr_data" validate:"required"`
}

// ScanResult is returned to the scanner page after a successful write.
type ScanResult struct {
	Message       string            `json:"message" example:"Check-in recorded for Budi Santoso"`
	Record        *AttendanceRecord `json:"record"`
	ResumeAfterMs int64             `json:"resume_after_ms" example:"3000"`
}

type AttendanceFilter struct {
	EmployeeID string
	From       string
	To         string
}
