// Package signature checks that a QR attendance payload was produced by the
// companion app and is still inside its freshness window.
package signature

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"Sistem-Absensi-QR/models"
	"Sistem-Absensi-QR/pkg/apperror"
	util "Sistem-Absensi-QR/pkg/utils"
)

// DefaultFreshness is how long a payload stays valid after checkInTime.
const DefaultFreshness = 60 * time.Second

type Verifier struct {
	secret    []byte
	freshness time.Duration
}

func NewVerifier(secret string, freshness time.Duration) *Verifier {
	if freshness <= 0 {
		freshness = DefaultFreshness
	}
	return &Verifier{secret: []byte(secret), freshness: freshness}
}

// CanonicalString joins the signed fields with "|". A missing department
// contributes an empty segment.
func CanonicalString(p models.QRPayload) string {
	return strings.Join([]string{
		p.EmployeeID,
		p.FirstName,
		p.LastName,
		p.Role,
		p.Department,
		p.CheckInTime,
	}, "|")
}

// Sign returns the lowercase hex HMAC-SHA256 of the payload's canonical string.
func (v *Verifier) Sign(p models.QRPayload) string {
	mac := hmac.New(sha256.New, v.secret)
	mac.Write([]byte(CanonicalString(p)))
	return hex.EncodeToString(mac.Sum(nil))
}

// Verify reports whether p.Signature equals the recomputed digest. The hex
// comparison is exact, so an uppercase signature does not match.
func (v *Verifier) Verify(p models.QRPayload) bool {
	expected := v.Sign(p)
	return hmac.Equal([]byte(expected), []byte(p.Signature))
}

// IsFresh holds iff 0 <= now-checkInTime <= the freshness window. Payloads
// from the future are rejected rather than clamped.
func (v *Verifier) IsFresh(checkInTime, now time.Time) bool {
	age := now.Sub(checkInTime)
	return age >= 0 && age <= v.freshness
}

// Parse decodes raw QR text and checks that every required field is present.
func Parse(raw string) (models.QRPayload, error) {
	var p models.QRPayload
	if err := json.Unmarshal([]byte(strings.TrimSpace(raw)), &p); err != nil {
		return p, apperror.InvalidPayload.With("QR code is not a valid attendance payload: " + err.Error())
	}
	if errs := util.ValidateStruct(p); len(errs) > 0 {
		return p, apperror.InvalidPayload.With("QR payload is incomplete: " + errs[0].Msg)
	}
	return p, nil
}

// ParseCheckInTime accepts ISO-8601 timestamps with or without fractional seconds.
func ParseCheckInTime(value string) (time.Time, error) {
	t, err := time.Parse(time.RFC3339Nano, value)
	if err != nil {
		return time.Time{}, apperror.InvalidPayload.With(fmt.Sprintf("checkInTime %q is not an ISO-8601 timestamp", value))
	}
	return t, nil
}

// Check runs the whole gate: signature first, then freshness. It returns the
// parsed claimed timestamp on success.
func (v *Verifier) Check(p models.QRPayload, now time.Time) (time.Time, error) {
	if !v.Verify(p) {
		return time.Time{}, apperror.SignatureMismatch
	}
	claimed, err := ParseCheckInTime(p.CheckInTime)
	if err != nil {
		return time.Time{}, err
	}
	if !v.IsFresh(claimed, now) {
		if claimed.After(now) {
			return time.Time{}, apperror.PayloadExpired.With("QR timestamp is in the future; check the device clock")
		}
		return time.Time{}, apperror.PayloadExpired
	}
	return claimed, nil
}
