package models

// Response shapes referenced by the swagger annotations.

type ErrorResponse struct {
	Error   string `json:"error" example:"QR signature does not match"`
	Code    string `json:"code" example:"SIGNATURE_MISMATCH"`
	Details string `json:"details,omitempty" example:"scan type: check-in"`
}

type ValidationErrorResponse struct {
	Error  string             `json:"error" example:"Validation failed"`
	Code   string             `json:"code" example:"VALIDATION_FAILED"`
	Errors []ValidationDetail `json:"errors"`
}

type ValidationDetail struct {
	Field string `json:"field" example:"LeaveDate"`
	Tag   string `json:"tag" example:"required"`
	Msg   string `json:"message" example:"Field 'LeaveDate' is required."`
}

type HealthResponse struct {
	Message string `json:"message" example:"QR Attendance Scanner API"`
	Status  string `json:"status" example:"running"`
	Backend bool   `json:"backend" example:"true"`
	Scanner bool   `json:"scanner" example:"true"`
	Docs    string `json:"docs" example:"/docs/index.html"`
}
