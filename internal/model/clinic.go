package model

import "strings"

// NormalizeID canonicalizes a clinic identifier for matching: sheet rows
// carry stray whitespace and inconsistent casing.
func NormalizeID(id string) string {
	return strings.ToLower(strings.TrimSpace(id))
}

// Clinic is a weekly recurring clinic slot, sourced read-only from the
// Clinics tab of the scheduling spreadsheet.
type Clinic struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Weekday   string `json:"weekday"`
	StartTime string `json:"start_time"` // "HH:MM", 24-hour
	EndTime   string `json:"end_time"`   // "HH:MM", 24-hour
	Capacity  int    `json:"capacity"`
}

// Appointment is a single patient booking for a clinic date, sourced
// read-only from the Appointments tab.
type Appointment struct {
	ClinicID    string `json:"clinic_id"`
	Date        string `json:"date"` // ISO date, optionally with time suffix
	Time        string `json:"time"` // "HH:MM", 24-hour
	PatientName string `json:"patient_name"`
	Status      string `json:"status"` // free text, normalized by the aggregator
	Reason      string `json:"reason"`
	Notes       string `json:"notes"`
}
