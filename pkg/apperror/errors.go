package apperror

import (
	"errors"
	"net/http"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/x/mongo/driver/topology"
)

// Definition is a business error with a stable code, a default message and
// the HTTP status the API answers with.
type Definition struct {
	Code    string
	Message string
	Status  int
}

func (d Definition) Error() string {
	return d.Message
}

// With returns an error carrying d's code and status and a more specific message.
func (d Definition) With(message string) error {
	return &detailed{def: d, message: message}
}

type detailed struct {
	def     Definition
	message string
}

func (e *detailed) Error() string { return e.message }

func (e *detailed) Is(target error) bool {
	t, ok := target.(Definition)
	return ok && t.Code == e.def.Code
}

func (e *detailed) Unwrap() error { return e.def }

// Scan errors.
var (
	InvalidPayload     = Definition{Code: "INVALID_PAYLOAD", Message: "QR code is not a valid attendance payload", Status: http.StatusBadRequest}
	SignatureMismatch  = Definition{Code: "SIGNATURE_MISMATCH", Message: "QR signature does not match", Status: http.StatusUnauthorized}
	PayloadExpired     = Definition{Code: "PAYLOAD_EXPIRED", Message: "QR code has expired, generate a new one", Status: http.StatusGone}
	OnLeave            = Definition{Code: "ON_LEAVE", Message: "Employee is on approved leave today", Status: http.StatusConflict}
	DuplicateScan      = Definition{Code: "DUPLICATE_SCAN", Message: "Scan already recorded today", Status: http.StatusConflict}
	LunchWindowNotOpen = Definition{Code: "LUNCH_WINDOW_NOT_OPEN", Message: "Already checked in; the lunch window has not opened yet", Status: http.StatusConflict}
	ScannerDisabled    = Definition{Code: "SCANNER_DISABLED", Message: "Scanner is not configured", Status: http.StatusServiceUnavailable}
)

// Leave errors.
var (
	LeaveExists         = Definition{Code: "LEAVE_EXISTS", Message: "A leave request already exists for this date", Status: http.StatusConflict}
	LeaveNotFound       = Definition{Code: "LEAVE_NOT_FOUND", Message: "Leave request not found", Status: http.StatusNotFound}
	LeaveAlreadyDecided = Definition{Code: "LEAVE_ALREADY_DECIDED", Message: "Leave request has already been decided", Status: http.StatusConflict}
)

// Generic errors.
var (
	BackendUnavailable = Definition{Code: "BACKEND_UNAVAILABLE", Message: "Attendance backend is not configured", Status: http.StatusServiceUnavailable}
	ValidationFailed   = Definition{Code: "VALIDATION_FAILED", Message: "Validation failed", Status: http.StatusUnprocessableEntity}
	BadRequest         = Definition{Code: "BAD_REQUEST", Message: "Invalid request", Status: http.StatusBadRequest}
	Unauthorized       = Definition{Code: "UNAUTHORIZED", Message: "Unauthorized", Status: http.StatusUnauthorized}
	Forbidden          = Definition{Code: "FORBIDDEN", Message: "Access denied", Status: http.StatusForbidden}
	AuthDisabled       = Definition{Code: "AUTH_DISABLED", Message: "Token authentication is not configured", Status: http.StatusServiceUnavailable}
)

// Lookup finds the Definition behind err. A database that cannot be reached
// maps to BackendUnavailable. Anything else outside the catalogue maps to an
// internal error. Either way the message is err's own, unmodified.
func Lookup(err error) Definition {
	var def Definition
	if errors.As(err, &def) {
		return def
	}
	if backendDown(err) {
		return Definition{Code: BackendUnavailable.Code, Message: err.Error(), Status: BackendUnavailable.Status}
	}
	return Definition{Code: "INTERNAL_ERROR", Message: err.Error(), Status: http.StatusInternalServerError}
}

func backendDown(err error) bool {
	var selection topology.ServerSelectionError
	return mongo.IsNetworkError(err) ||
		mongo.IsTimeout(err) ||
		errors.Is(err, mongo.ErrClientDisconnected) ||
		errors.As(err, &selection)
}
