package model

import "time"

// Call directions.
const (
	DirectionInbound  = "Inbound"
	DirectionOutbound = "Outbound"
)

// Call is a phone call record. The canonical source is the calls table in
// Postgres; the dashboard additionally reads a lighter copy from the Calls
// spreadsheet tab for the weekly stat bar. Status is free text; the canonical
// values are "Appointment Booked", "Rescheduled" and "Cancelled" but nothing
// enforces them.
type Call struct {
	ID           int64      `db:"id" json:"id"`
	When         time.Time  `db:"when" json:"when"`
	Name         string     `db:"name" json:"name"`
	Direction    string     `db:"direction" json:"direction"`
	Reason       string     `db:"reason" json:"reason"`
	Status       string     `db:"status" json:"status"`
	DurationSec  int        `db:"duration_sec" json:"duration_sec"`
	Age          *int       `db:"age" json:"age,omitempty"`
	ApptDate     *time.Time `db:"appt_date" json:"appt_date,omitempty"`
	ClinicID     *string    `db:"clinic_id" json:"clinic_id,omitempty"`
	Insurance    *string    `db:"insurance" json:"insurance,omitempty"`
	Phone        *string    `db:"phone" json:"phone,omitempty"`
	Email        *string    `db:"email" json:"email,omitempty"`
	RecordingURL *string    `db:"recording_url" json:"recording_url,omitempty"`
	Note         *string    `db:"note" json:"note,omitempty"`
}

// WeeklyStats summarizes call outcomes for the stat bar. The three counters
// are independent substring matches over free text, so they need not sum to
// Total.
type WeeklyStats struct {
	Total       int `json:"total"`
	Booked      int `json:"booked"`
	Rescheduled int `json:"rescheduled"`
	Cancelled   int `json:"cancelled"`
}
