package models

// QRPayload is the JSON object encoded in the companion app's QR code.
// Department is optional; every other field must be present before the
// signature is checked.
type QRPayload struct {
	EmployeeID  string `json:"employeeId" validate:"required"`
	FirstName   string `json:"firstName" validate:"required"`
	LastName    string `json:"lastName" validate:"required"`
	Role        string `json:"role" validate:"required"`
	Department  string `json:"department,omitempty"`
	CheckInTime string `json:"checkInTime" validate:"required"`
	Signature   string `json:"signature" validate:"required"`
}

func (p QRPayload) FullName() string {
	return p.FirstName + " " + p.LastName
}
