package attendance

import (
	"fmt"
	"time"

	"github.com/teambition/rrule-go"
)

// DefaultWorkdayRule is Monday to Friday.
const DefaultWorkdayRule = "FREQ=WEEKLY;BYDAY=MO,TU,WE,TH,FR"

// ruleAnchor is the Monday that INTERVAL counts from, so a rule keeps the
// same phase whatever range it is expanded over.
var ruleAnchor = time.Date(2000, time.January, 3, 0, 0, 0, 0, time.UTC)

// WorkdayRule expands an RFC 5545 recurrence rule into the dates an employee
// is expected at work.
type WorkdayRule struct {
	option rrule.ROption
}

func NewWorkdayRule(rule string) (*WorkdayRule, error) {
	opt, err := rrule.StrToROption(rule)
	if err != nil {
		return nil, fmt.Errorf("invalid workday rule %q: %w", rule, err)
	}
	if opt.Freq != rrule.DAILY && opt.Freq != rrule.WEEKLY {
		return nil, fmt.Errorf("workday rule %q must be DAILY or WEEKLY", rule)
	}
	return &WorkdayRule{option: *opt}, nil
}

// Between returns the expected working dates from start to end inclusive,
// keyed by YYYY-MM-DD.
func (w *WorkdayRule) Between(start, end time.Time) (map[string]bool, error) {
	opt := w.option
	opt.Dtstart = w.dtstart(start)
	opt.Until = time.Time{}
	opt.Count = 0

	r, err := rrule.NewRRule(opt)
	if err != nil {
		return nil, err
	}

	dates := make(map[string]bool)
	for _, d := range r.Between(startOfDay(start), startOfDay(end), true) {
		dates[d.Format(DateLayout)] = true
	}
	return dates, nil
}

// dtstart is the last period boundary on or before start that is a whole
// number of intervals after ruleAnchor. Weekly rules start on a Monday.
func (w *WorkdayRule) dtstart(start time.Time) time.Time {
	day := startOfDay(start)
	unit := 1
	if w.option.Freq == rrule.WEEKLY {
		unit = 7
		day = day.AddDate(0, 0, -((int(day.Weekday()) + 6) % 7))
	}
	interval := w.option.Interval
	if interval <= 1 {
		return day
	}

	civil := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, time.UTC)
	periods := int(civil.Sub(ruleAnchor).Hours()/24) / unit
	offset := ((periods % interval) + interval) % interval
	return day.AddDate(0, 0, -offset*unit)
}
