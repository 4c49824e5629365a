package schedule

import (
	"regexp"

	"github.com/jwalitptl/receptionist-dashboard/internal/model"
)

// Appointment statuses are free text typed by reception staff. All matching
// is case-insensitive; the checks are independent, so one status can count
// toward several buckets at once.
var (
	noShowRe   = regexp.MustCompile(`(?i)no\s*show`)
	followRe   = regexp.MustCompile(`(?i)follow`)
	bookedRe   = regexp.MustCompile(`(?i)appointment`)
	attendRe   = regexp.MustCompile(`(?i)attend`)
	attendPre  = regexp.MustCompile(`(?i)^attend`)
	confirmPre = regexp.MustCompile(`(?i)^confirm`)
	noShowPre  = regexp.MustCompile(`(?i)^no\s*show`)
)

// IsNoShow reports a "no show" marker anywhere in the status.
func IsNoShow(status string) bool { return noShowRe.MatchString(status) }

// NeedsFollowUp reports a follow-up marker anywhere in the status.
func NeedsFollowUp(status string) bool { return followRe.MatchString(status) }

// IsAttended reports an attendance marker anywhere in the status.
func IsAttended(status string) bool { return attendRe.MatchString(status) }

// IsBooked reports an upcoming booking; staff record these as variants of
// "Appointment booked".
func IsBooked(status string) bool { return bookedRe.MatchString(status) }

// PrimaryStatus normalizes a status into the single badge shown on a
// patient row. Ribbons are matched separately and do not affect it.
func PrimaryStatus(status string) model.PatientStatus {
	switch {
	case attendPre.MatchString(status):
		return model.PatientAttended
	case confirmPre.MatchString(status):
		return model.PatientConfirmed
	case noShowPre.MatchString(status):
		return model.PatientNoShow
	default:
		return model.PatientPending
	}
}

// Ribbons returns the status tags attached to a patient row.
func Ribbons(status string) []string {
	var ribbons []string
	if IsNoShow(status) {
		ribbons = append(ribbons, model.RibbonNoShow)
	}
	if NeedsFollowUp(status) {
		ribbons = append(ribbons, model.RibbonFollowUp)
	}
	return ribbons
}
