package model

import "time"

// Mode selects which weekly occurrence of a clinic a view describes.
type Mode string

const (
	ModeCompleted Mode = "completed"
	ModeUpcoming  Mode = "upcoming"
)

// ParseMode maps the ?type= query value to a Mode. Anything other than
// "upcoming" defaults to completed.
func ParseMode(s string) Mode {
	if s == string(ModeUpcoming) {
		return ModeUpcoming
	}
	return ModeCompleted
}

// PatientStatus is the normalized primary status shown on a patient row.
type PatientStatus string

const (
	PatientAttended  PatientStatus = "Attended"
	PatientConfirmed PatientStatus = "Confirmed"
	PatientNoShow    PatientStatus = "No-Show"
	PatientPending   PatientStatus = "Pending"
)

// Ribbons attached to a patient row; independent of the primary status.
const (
	RibbonNoShow   = "No show"
	RibbonFollowUp = "Follow-up needed"
)

// ClinicSummary is the per-clinic card on the dashboard. Completed cards
// carry the attendance counters, upcoming cards the booking counters.
type ClinicSummary struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	Mode       Mode      `json:"mode"`
	TargetDate time.Time `json:"target_date"`
	Date       string    `json:"date"`       // "Oct 16"
	TimeRange  string    `json:"time_range"` // "Wednesday 2:00 PM–6:00 PM"
	Capacity   int       `json:"capacity"`

	// completed
	Attended        int `json:"attended"`
	NoShows         int `json:"no_shows"`
	FollowupsNeeded int `json:"followups_needed"`

	// upcoming
	Booked    int `json:"booked"`
	OpenSlots int `json:"open_slots"`
}

// PatientRow is one row of the clinic detail patient list.
type PatientRow struct {
	Time     string        `json:"time"` // 12-hour display time
	Name     string        `json:"name"`
	Subtitle string        `json:"subtitle"`
	Ribbons  []string      `json:"ribbons,omitempty"`
	Status   PatientStatus `json:"status"`
}

// ClinicDetail is the clinic page: header info plus the patient list for
// the resolved target date.
type ClinicDetail struct {
	ID              string       `json:"id"`
	Name            string       `json:"name"`
	Mode            Mode         `json:"mode"`
	Weekday         string       `json:"weekday"`
	TargetDate      time.Time    `json:"target_date"`
	TimeRange       string       `json:"time_range"`
	FollowupsNeeded int          `json:"followups_needed"`
	Patients        []PatientRow `json:"patients"`
}
