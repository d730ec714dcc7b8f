package attendance

import (
	"time"

	"Sistem-Absensi-QR/models"
	"Sistem-Absensi-QR/pkg/apperror"
)

type Classification struct {
	ScanType  models.ScanType
	IsLate    bool
	IsEarly   bool
	IsHalfDay bool
}

// Classify decides which of the four daily events a scan at now represents,
// given the scan types already recorded for the employee today. now must be
// expressed in the attendance time zone.
//
// Rules, first match wins:
//  1. no check-in: check_in, late after expected-in plus grace
//  2. check-in, no lunch-out, lunch window open: lunch_out
//  3. lunch-out, no lunch-in: lunch_in
//  4. lunch-in, no check-out: check_out, early before expected-out
//  5. all four recorded: check_out again, which the writer rejects as a duplicate
//
// A second scan after check-in but before the lunch window opens matches none
// of the rules and is refused with LunchWindowNotOpen.
func (s Schedule) Classify(existing []models.ScanType, now time.Time) (Classification, error) {
	have := make(map[models.ScanType]bool, len(existing))
	for _, t := range existing {
		have[t] = true
	}
	minutes := MinutesOfDay(now)

	switch {
	case !have[models.ScanCheckIn]:
		return Classification{
			ScanType:  models.ScanCheckIn,
			IsLate:    minutes > s.LateAfter(),
			IsHalfDay: minutes < s.LunchStart,
		}, nil
	case !have[models.ScanLunchOut] && minutes >= s.LunchStart:
		return Classification{ScanType: models.ScanLunchOut}, nil
	case have[models.ScanLunchOut] && !have[models.ScanLunchIn]:
		return Classification{ScanType: models.ScanLunchIn}, nil
	case have[models.ScanLunchIn] && !have[models.ScanCheckOut]:
		return Classification{
			ScanType: models.ScanCheckOut,
			IsEarly:  minutes < s.ExpectedOut,
		}, nil
	case have[models.ScanCheckOut]:
		return Classification{ScanType: models.ScanCheckOut}, nil
	}

	return Classification{}, apperror.LunchWindowNotOpen.With(
		"Already checked in; lunch-out opens at " + FormatClock(s.LunchStart) + " (lunch " +
			FormatClock(s.LunchStart) + "-" + FormatClock(s.LunchEnd) + ")")
}
