// Package attendance holds the pure attendance rules: the working-day
// schedule, the scan-type classifier and the report folds.
package attendance

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Schedule holds the time-of-day thresholds, as minutes after midnight.
type Schedule struct {
	ExpectedIn   int
	GraceMinutes int
	LunchStart   int
	LunchEnd     int
	ExpectedOut  int
}

// DefaultSchedule is 09:00 in with 15 minutes grace, lunch 12:00-14:00 and 18:00 out.
func DefaultSchedule() Schedule {
	return Schedule{
		ExpectedIn:   9 * 60,
		GraceMinutes: 15,
		LunchStart:   12 * 60,
		LunchEnd:     14 * 60,
		ExpectedOut:  18 * 60,
	}
}

// ParseSchedule builds a Schedule from HH:MM strings.
func ParseSchedule(checkIn string, graceMinutes int, lunchStart, lunchEnd, checkOut string) (Schedule, error) {
	var s Schedule
	var err error
	if s.ExpectedIn, err = ParseClock(checkIn); err != nil {
		return s, fmt.Errorf("check-in time: %w", err)
	}
	if s.LunchStart, err = ParseClock(lunchStart); err != nil {
		return s, fmt.Errorf("lunch start: %w", err)
	}
	if s.LunchEnd, err = ParseClock(lunchEnd); err != nil {
		return s, fmt.Errorf("lunch end: %w", err)
	}
	if s.ExpectedOut, err = ParseClock(checkOut); err != nil {
		return s, fmt.Errorf("check-out time: %w", err)
	}
	s.GraceMinutes = graceMinutes
	return s, s.Validate()
}

func (s Schedule) Validate() error {
	if s.GraceMinutes < 0 {
		return fmt.Errorf("grace minutes must not be negative, got %d", s.GraceMinutes)
	}
	if !(s.ExpectedIn+s.GraceMinutes <= s.LunchStart && s.LunchStart < s.LunchEnd && s.LunchEnd <= s.ExpectedOut) {
		return fmt.Errorf("schedule must satisfy check-in+grace <= lunch start < lunch end <= check-out, got %s+%d, %s-%s, %s",
			FormatClock(s.ExpectedIn), s.GraceMinutes, FormatClock(s.LunchStart), FormatClock(s.LunchEnd), FormatClock(s.ExpectedOut))
	}
	return nil
}

// LateAfter is the last minute of day that still counts as on time.
func (s Schedule) LateAfter() int {
	return s.ExpectedIn + s.GraceMinutes
}

// ParseClock turns "HH:MM" into minutes after midnight.
func ParseClock(value string) (int, error) {
	parts := strings.Split(strings.TrimSpace(value), ":")
	if len(parts) != 2 {
		return 0, fmt.Errorf("%q is not HH:MM", value)
	}
	h, err := strconv.Atoi(parts[0])
	if err != nil || h < 0 || h > 23 {
		return 0, fmt.Errorf("%q has an invalid hour", value)
	}
	m, err := strconv.Atoi(parts[1])
	if err != nil || m < 0 || m > 59 {
		return 0, fmt.Errorf("%q has an invalid minute", value)
	}
	return h*60 + m, nil
}

func FormatClock(minutes int) string {
	return fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)
}

// MinutesOfDay reads the wall clock of t in its own location.
func MinutesOfDay(t time.Time) int {
	return t.Hour()*60 + t.Minute()
}
