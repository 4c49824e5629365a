package schedule

import (
	"fmt"
	"strings"
	"time"
)

var weekdays = map[string]time.Weekday{
	"sunday":    time.Sunday,
	"monday":    time.Monday,
	"tuesday":   time.Tuesday,
	"wednesday": time.Wednesday,
	"thursday":  time.Thursday,
	"friday":    time.Friday,
	"saturday":  time.Saturday,
}

// ParseWeekday maps a weekday name from the Clinics tab to a time.Weekday.
func ParseWeekday(name string) (time.Weekday, error) {
	w, ok := weekdays[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return 0, fmt.Errorf("unrecognized weekday %q", name)
	}
	return w, nil
}

// PreviousOccurrence returns the most recent date strictly before ref whose
// weekday is w. When ref itself falls on w, the result is exactly one week
// back, never ref. The result is midnight in ref's location; occurrence
// dates are calendar-local to avoid day drift near midnight.
func PreviousOccurrence(ref time.Time, w time.Weekday) time.Time {
	d := midnight(ref)
	diff := (int(d.Weekday()) - int(w) + 7) % 7
	if diff == 0 {
		diff = 7
	}
	return d.AddDate(0, 0, -diff)
}

// NextOccurrence returns the nearest date strictly after ref whose weekday
// is w, stepping a full week when ref already falls on w.
func NextOccurrence(ref time.Time, w time.Weekday) time.Time {
	d := midnight(ref)
	diff := (int(w) - int(d.Weekday()) + 7) % 7
	if diff == 0 {
		diff = 7
	}
	return d.AddDate(0, 0, diff)
}

// ISODate formats an occurrence as the local calendar date used for
// matching appointment rows.
func ISODate(t time.Time) string {
	return t.Format("2006-01-02")
}

func midnight(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}
