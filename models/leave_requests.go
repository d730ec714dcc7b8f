package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	LeaveFullDay          = "full_day"
	LeaveHalfDayMorning   = "half_day_morning"
	LeaveHalfDayAfternoon = "half_day_afternoon"

	LeaveStatusPending  = "pending"
	LeaveStatusApproved = "approved"
	LeaveStatusRejected = "rejected"
)

type LeaveRequest struct {
	ID           primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	EmployeeID   string             `json:"employee_id" bson:"employee_id"`
	EmployeeName string             `json:"employee_name,omitempty" bson:"employee_name,omitempty"`
	LeaveDate    string             `json:"leave_date" bson:"leave_date"`
	LeaveType    string             `json:"leave_type" bson:"leave_type"`
	Reason       string             `json:"reason" bson:"reason"`
	Status       string             `json:"status" bson:"status"`
	ApprovedBy   string             `json:"approved_by,omitempty" bson:"approved_by,omitempty"`
	ApprovedAt   *time.Time         `json:"approved_at,omitempty" bson:"approved_at,omitempty"`
	CreatedAt    time.Time          `json:"created_at" bson:"created_at"`
	UpdatedAt    time.Time          `json:"updated_at" bson:"updated_at"`
}

type LeaveRequestCreatePayload struct {
	EmployeeName string `json:"employee_name" validate:"omitempty,max=200"`
	LeaveDate    string `json:"leave_date" validate:"required,datetime=2006-01-02"`
	LeaveType    string `json:"leave_type" validate:"required,oneof=full_day half_day_morning half_day_afternoon"`
	Reason       string `json:"reason" validate:"required,min=3,max=500"`
}

type LeaveRequestUpdatePayload struct {
	Status string `json:"status" validate:"required,oneof=approved rejected"`
}

type LeaveFilter struct {
	EmployeeID string
	Status     string
}
